package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
)

func registerVoterCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "register-voter IDENTITY",
		Short: "Register a voter (admin) and print its identity key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().RegisterVoter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "registered %s\nkey: %s\n", resp.Identity, resp.IdentityKey)
			return nil
		},
	}
}

func voterCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "voter IDENTITY",
		Short: "Show a voter record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Voter(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			v := resp.Voter
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s registered=%t voted=%t", resp.Identity, v.IsRegistered, v.HasVoted)
			if v.HasVoted {
				fmt.Fprintf(out, " proposal=%d", v.VotedProposalID)
			}
			fmt.Fprintln(out)
			return nil
		},
	}
}
