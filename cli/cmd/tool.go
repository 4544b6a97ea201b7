package cmd

import (
	"context"
	"fmt"

	"github.com/anubhaparashar/mcp2/controller/api/contexttool"
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/spf13/cobra"
)

func newCmdTool() *cobra.Command {
	var (
		token    string
		toolName string
		proof    string
		toolArgs []string
	)

	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Invoke a named tool on a ContextTool endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			arguments, err := parsePairs(toolArgs)
			if err != nil {
				return err
			}
			client, conn, err := contexttool.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := client.InvokeTool(context.Background(), &pb.ToolRequest{
				ToolName:             toolName,
				Arguments:            arguments,
				CapabilityToken:      token,
				AgentDelegationProof: proof,
			})
			if err != nil {
				return err
			}
			for _, warning := range resp.GetWarnings() {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", warning)
			}
			for key, value := range resp.GetOutputs() {
				fmt.Printf("%s: %s\n", key, value)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "capability token covering tool:<name>")
	cmd.Flags().StringVar(&toolName, "name", "", "tool to invoke")
	cmd.Flags().StringVar(&proof, "proof", "", "delegation proof, when acting on behalf of another agent")
	cmd.Flags().StringArrayVar(&toolArgs, "arg", nil, "tool argument key=value (repeatable)")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("name")
	return cmd
}
