package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
)

func proposeCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "propose DESCRIPTION...",
		Short: "Submit a proposal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().SubmitProposal(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "proposal %d submitted\n", resp.ProposalID)
			return nil
		},
	}
}

func proposalCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "proposal INDEX",
		Short: "Show one proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid proposal index %q", args[0])
			}
			resp, err := newClient().Proposal(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s votes\n",
				resp.ProposalID, resp.Proposal.Description, humanize.Comma(int64(resp.Proposal.VoteCount)))
			return nil
		},
	}
}

func proposalsCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "proposals",
		Short: "List every proposal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Proposals(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tDESCRIPTION\tVOTES")
			for _, p := range resp.Proposals {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", p.ProposalID, p.Proposal.Description, humanize.Comma(int64(p.Proposal.VoteCount)))
			}
			return tw.Flush()
		},
	}
}

func voteCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "vote INDEX",
		Short: "Vote for a proposal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid proposal index %q", args[0])
			}
			resp, err := newClient().Vote(cmd.Context(), index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "voted for proposal %d\n", resp.ProposalID)
			return nil
		},
	}
}
