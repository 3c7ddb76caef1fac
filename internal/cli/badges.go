package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "badges",
		Short: "List badges and their state",
		Run:   runBadges,
	}
	cmd.Flags().Bool("unseen", false, "Only show unlocked badges not yet acknowledged")

	ack := &cobra.Command{
		Use:   "ack [badge-id...]",
		Short: "Acknowledge unlocked badges",
		Long:  "Mark unlocked badges as seen. With no ids every unseen badge is acknowledged.",
		Run:   runBadgesAck,
	}

	cmd.AddCommand(ack)
	RootCmd.AddCommand(cmd)
}

func runBadges(cmd *cobra.Command, args []string) {
	unseen, _ := cmd.Flags().GetBool("unseen")

	svc, s := openService()
	defer s.Close()

	if unseen {
		notices, err := svc.Unseen(cmd.Context())
		if err != nil {
			exitErr("badges", err)
		}
		printJSON(cmd, notices)
		return
	}

	list, err := svc.Badges(cmd.Context())
	if err != nil {
		exitErr("badges", err)
	}
	printJSON(cmd, list)
}

func runBadgesAck(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	acked, err := svc.Acknowledge(cmd.Context(), args...)
	if err != nil {
		exitErr("badges ack", err)
	}
	printJSON(cmd, acked)
}
