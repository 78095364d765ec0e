package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
	"github.com/danielhkuo/quickly-vote/voting"
)

func resultsCmd(newClient func() *client.Client) *cobra.Command {
	return &cobra.Command{
		Use:   "results",
		Short: "Show the election outcome",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Results(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Summary)
			return nil
		},
	}
}

func statusCmd(newClient func() *client.Client) *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the election status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var want voting.WorkflowStatus
			if expect != "" {
				var err error
				if want, err = voting.ParseWorkflowStatus(expect); err != nil {
					return err
				}
			}
			resp, err := newClient().Election(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "election:  %s\n", resp.ElectionID)
			fmt.Fprintf(out, "admin:     %s\n", resp.Admin)
			fmt.Fprintf(out, "status:    %s (%d)\n", resp.StatusName, resp.Status)
			fmt.Fprintf(out, "voters:    %s\n", humanize.Comma(int64(resp.VoterCount)))
			fmt.Fprintf(out, "proposals: %s\n", humanize.Comma(int64(resp.ProposalCount)))
			if expect != "" && resp.Status != want {
				return fmt.Errorf("election is %s, expected %s", resp.StatusName, want)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&expect, "expect", "e", "", "fail unless the election is in this phase (name or 0..5)")
	return cmd
}

func eventsCmd(newClient func() *client.Client) *cobra.Command {
	var after uint64
	cmd := &cobra.Command{
		Use:   "events",
		Short: "List election notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := newClient().Events(cmd.Context(), after)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, ev := range resp.Events {
				fmt.Fprintf(out, "%d\t%s\t%s\t%s\n", ev.Seq, humanize.Time(ev.At), ev.Kind, describe(ev))
			}
			return nil
		},
	}
	cmd.Flags().Uint64VarP(&after, "after", "a", 0, "only events with a greater sequence number")
	return cmd
}

func describe(ev voting.Event) string {
	switch ev.Kind {
	case voting.EventVoterRegistered:
		return string(ev.Voter)
	case voting.EventProposalRegistered:
		return fmt.Sprintf("proposal %d", ev.ProposalID)
	case voting.EventVoted:
		return fmt.Sprintf("%s -> %d", ev.Voter, ev.ProposalID)
	case voting.EventWorkflowStatusChange:
		return ev.Previous.String() + " -> " + ev.Next.String()
	}
	return ""
}
