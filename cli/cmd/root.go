package cmd

import (
	"fmt"
	"strings"

	"github.com/anubhaparashar/mcp2/pkg/version"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	apiAddr    string
	secretPath string
	verbose    bool
)

// RootCmd represents the root Cobra command
var RootCmd = &cobra.Command{
	Use:   "mcp2",
	Short: "mcp2 interacts with the MCP fabric services",
	Long:  `mcp2 interacts with the MCP fabric services.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.PanicLevel)
		}
	},
}

func init() {
	RootCmd.Version = version.Version

	RootCmd.PersistentFlags().StringVar(&apiAddr, "addr", "localhost:8086", "address of the service to call")
	RootCmd.PersistentFlags().StringVar(&secretPath, "secret-file", "", "path to the shared token signing secret (token subcommands only)")
	RootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "turn on debug logging")

	RootCmd.AddCommand(newCmdToken())
	RootCmd.AddCommand(newCmdRegistry())
	RootCmd.AddCommand(newCmdContext())
	RootCmd.AddCommand(newCmdTool())
	RootCmd.AddCommand(newCmdEvent())
}

// parsePairs turns repeated key=value flags into a map.
func parsePairs(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		out[key] = value
	}
	return out, nil
}
