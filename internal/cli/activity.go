package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Energy lab activities",
	}

	next := &cobra.Command{
		Use:   "next",
		Short: "Suggest an activity",
		Long:  "Suggest an activity for a mood. Without --mood the last check-in is used.",
		Run:   runActivityNext,
	}
	next.Flags().StringP("mood", "m", "", "Mood to suggest for")

	done := &cobra.Command{
		Use:   "done <activity-id>",
		Short: "Mark an activity as completed",
		Args:  cobra.ExactArgs(1),
		Run:   runActivityDone,
	}

	cmd.AddCommand(next, done)
	RootCmd.AddCommand(cmd)
}

func runActivityNext(cmd *cobra.Command, args []string) {
	mood, _ := cmd.Flags().GetString("mood")

	svc, s := openService()
	defer s.Close()

	a, err := svc.NextActivity(cmd.Context(), mood)
	if err != nil {
		exitErr("activity next", err)
	}
	printJSON(cmd, a)
}

func runActivityDone(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	out, err := svc.CompleteActivity(cmd.Context(), args[0])
	if err != nil {
		exitErr("activity done", err)
	}
	printJSON(cmd, out)
}
