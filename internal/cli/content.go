package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	distractCmd := &cobra.Command{
		Use:   "distract",
		Short: "Show a fact, joke, riddle or puzzle",
		Run:   runDistract,
	}

	affirmCmd := &cobra.Command{
		Use:   "affirm",
		Short: "Show an affirmation",
		Run:   runAffirm,
	}

	favoriteCmd := &cobra.Command{
		Use:   "favorite [affirmation-id]",
		Short: "Toggle or list favorite affirmations",
		Long:  "With an id, toggle that affirmation as a favorite. Without one, list favorites.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runFavorite,
	}

	thoughtCmd := &cobra.Command{
		Use:   "thought",
		Short: "Show today's power thought",
		Run:   runThought,
	}

	RootCmd.AddCommand(distractCmd, affirmCmd, favoriteCmd, thoughtCmd)
}

func runDistract(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	d, err := svc.NextDistraction(cmd.Context())
	if err != nil {
		exitErr("distract", err)
	}
	printJSON(cmd, d)
}

func runAffirm(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	a, err := svc.NextAffirmation(cmd.Context())
	if err != nil {
		exitErr("affirm", err)
	}
	printJSON(cmd, a)
}

func runFavorite(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	if len(args) == 0 {
		favs, err := svc.Favorites(cmd.Context())
		if err != nil {
			exitErr("favorites", err)
		}
		printJSON(cmd, favs)
		return
	}

	on, err := svc.ToggleFavorite(cmd.Context(), args[0])
	if err != nil {
		exitErr("favorite", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), `{"ok":true,"id":%q,"favorite":%t}`+"\n", args[0], on)
}

func runThought(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	t, err := svc.PowerThought(cmd.Context())
	if err != nil {
		exitErr("thought", err)
	}
	printJSON(cmd, t)
}
