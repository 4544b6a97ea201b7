package cmd

import (
	"context"
	"fmt"

	"github.com/anubhaparashar/mcp2/controller/api/contexttool"
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/spf13/cobra"
)

func newCmdContext() *cobra.Command {
	var (
		token  string
		key    string
		proof  string
		params []string
	)

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Fetch a context value from a ContextTool endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parameters, err := parsePairs(params)
			if err != nil {
				return err
			}
			client, conn, err := contexttool.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := client.RequestContext(context.Background(), &pb.ContextRequest{
				ContextKey:           key,
				Parameters:           parameters,
				CapabilityToken:      token,
				AgentDelegationProof: proof,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", resp.GetSerializedValue())
			for _, m := range resp.GetMetadata() {
				fmt.Printf("# %s\n", m)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "capability token for the context scope")
	cmd.Flags().StringVar(&key, "key", "", "context key to fetch")
	cmd.Flags().StringVar(&proof, "proof", "", "delegation proof, when acting on behalf of another agent")
	cmd.Flags().StringArrayVar(&params, "param", nil, "request parameter key=value (repeatable)")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("key")
	return cmd
}
