package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
)

func workflowCmd(newClient func() *client.Client, use, step, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short + " (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Advance(cmd.Context(), step)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", resp.PreviousName, resp.StatusName)
			return nil
		},
	}
}

func tallyCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "tally",
		Short: "Tally the votes (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Tally(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "winning proposal: %d\n", resp.WinningProposalID)
			return nil
		},
	}
}
