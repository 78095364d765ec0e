package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-vote/client"
)

type globalArguments struct {
	Url      string
	Identity string
	Key      string
}

func newRootCmd() *cobra.Command {
	args := &globalArguments{}
	root := &cobra.Command{
		Use:           "votingctl",
		Short:         "Command line client for a Quickly Vote server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	envOr := func(key, def string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return def
	}
	root.PersistentFlags().StringVarP(&args.Url, "url", "u", envOr("VOTINGCTL_URL", "http://127.0.0.1:3318"), "server url")
	root.PersistentFlags().StringVarP(&args.Identity, "identity", "i", os.Getenv("VOTINGCTL_IDENTITY"), "identity to act as")
	root.PersistentFlags().StringVarP(&args.Key, "key", "k", os.Getenv("VOTINGCTL_KEY"), "identity key")

	newClient := func() *client.Client {
		return client.NewClient(args.Url, args.Identity, args.Key)
	}

	root.AddCommand(registerVoterCmd(newClient))
	root.AddCommand(voterCmd(newClient))
	root.AddCommand(workflowCmd(newClient, "start-proposals", client.StepStartPropose, "Open proposal registration"))
	root.AddCommand(workflowCmd(newClient, "end-proposals", client.StepEndPropose, "Close proposal registration"))
	root.AddCommand(workflowCmd(newClient, "start-voting", client.StepStartVoting, "Open the voting session"))
	root.AddCommand(workflowCmd(newClient, "end-voting", client.StepEndVoting, "Close the voting session"))
	root.AddCommand(tallyCmd(newClient))
	root.AddCommand(proposeCmd(newClient))
	root.AddCommand(proposalCmd(newClient))
	root.AddCommand(proposalsCmd(newClient))
	root.AddCommand(voteCmd(newClient))
	root.AddCommand(resultsCmd(newClient))
	root.AddCommand(eventsCmd(newClient))
	root.AddCommand(statusCmd(newClient))
	return root
}
