package cmd

import (
	"fmt"
	"time"

	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"github.com/spf13/cobra"
)

func newCmdToken() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue capability tokens and delegation proofs",
	}
	cmd.AddCommand(newCmdTokenIssue())
	cmd.AddCommand(newCmdTokenDelegate())
	return cmd
}

func newCmdTokenIssue() *cobra.Command {
	var (
		subject      string
		capabilities []string
		audience     []string
		ttl          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "issue",
		Short: "Issue a capability token signed with the shared secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := tokens.LoadSecret(secretPath)
			if err != nil {
				return err
			}
			token, err := tokens.NewIssuer(secret).Issue(subject, capabilities, audience, ttl)
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "token subject (the acting agent)")
	cmd.Flags().StringArrayVar(&capabilities, "capability", nil, "capability scope to grant (repeatable)")
	cmd.Flags().StringArrayVar(&audience, "audience", nil, "audience pattern (repeatable)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime")
	cmd.MarkFlagRequired("subject")
	cmd.MarkFlagRequired("capability")
	cmd.MarkFlagRequired("audience")
	return cmd
}

func newCmdTokenDelegate() *cobra.Command {
	var (
		delegator    string
		delegatee    string
		capabilities []string
		ttl          time.Duration
	)

	cmd := &cobra.Command{
		Use:   "delegate",
		Short: "Issue a delegation proof for a scope subset",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := tokens.LoadSecret(secretPath)
			if err != nil {
				return err
			}
			proof, err := tokens.NewIssuer(secret).IssueDelegation(delegator, delegatee, capabilities, ttl)
			if err != nil {
				return err
			}
			fmt.Println(proof)
			return nil
		},
	}

	cmd.Flags().StringVar(&delegator, "delegator", "", "agent granting the capabilities")
	cmd.Flags().StringVar(&delegatee, "delegatee", "", "agent receiving the capabilities")
	cmd.Flags().StringArrayVar(&capabilities, "capability", nil, "capability scope to delegate (repeatable)")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "proof lifetime")
	cmd.MarkFlagRequired("delegator")
	cmd.MarkFlagRequired("delegatee")
	cmd.MarkFlagRequired("capability")
	return cmd
}
