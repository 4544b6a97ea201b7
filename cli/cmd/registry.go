package cmd

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/anubhaparashar/mcp2/controller/api/registry"
	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/spf13/cobra"
	"google.golang.org/grpc/metadata"
)

func newCmdRegistry() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Register and look up fabric endpoints",
	}
	cmd.AddCommand(newCmdRegistryRegister())
	cmd.AddCommand(newCmdRegistryLookup())
	return cmd
}

func newCmdRegistryRegister() *cobra.Command {
	var (
		token        string
		serverName   string
		grpcURL      string
		capabilities []string
	)

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register an endpoint with the discovery registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := registry.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			ctx := metadata.AppendToOutgoingContext(context.Background(),
				registry.AddressMetadataKey, grpcURL)
			resp, err := client.Register(ctx, &pb.RegisterRequest{
				ServerName:        serverName,
				Capabilities:      capabilities,
				RegistrationToken: token,
			})
			if err != nil {
				return err
			}
			fmt.Println(resp.GetMessage())
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "registration token carrying registry:register")
	cmd.Flags().StringVar(&serverName, "server-name", "", "unique name to register under")
	cmd.Flags().StringVar(&grpcURL, "grpc-url", "", "externally reachable address of the endpoint")
	cmd.Flags().StringArrayVar(&capabilities, "capability", nil, "capability scope the endpoint offers (repeatable)")
	cmd.MarkFlagRequired("token")
	cmd.MarkFlagRequired("server-name")
	cmd.MarkFlagRequired("grpc-url")
	return cmd
}

func newCmdRegistryLookup() *cobra.Command {
	var (
		token  string
		filter []string
	)

	cmd := &cobra.Command{
		Use:   "lookup",
		Short: "Look up endpoints by required capability",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, conn, err := registry.NewClient(apiAddr)
			if err != nil {
				return err
			}
			defer conn.Close()

			resp, err := client.Lookup(context.Background(), &pb.LookupRequest{
				RequesterToken:   token,
				CapabilityFilter: filter,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tADDRESS\tCAPABILITIES")
			for _, endpoint := range resp.GetEndpoints() {
				fmt.Fprintf(w, "%s\t%s\t%s\n",
					endpoint.GetServerName(),
					endpoint.GetGrpcUrl(),
					strings.Join(endpoint.GetCapabilities(), ","))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "requester token carrying registry:lookup")
	cmd.Flags().StringArrayVar(&filter, "capability", nil, "capability scope to filter by (repeatable)")
	cmd.MarkFlagRequired("token")
	return cmd
}
