package cli

import (
	"github.com/rcliao/neuronest/internal/aggregate"
	"github.com/rcliao/neuronest/internal/model"
	"github.com/rcliao/neuronest/internal/store"
	"github.com/spf13/cobra"
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show activity statistics",
		Long:  "Summarize recorded events for a window (week, month, all). With --storage, show database statistics instead.",
		Run:   runStats,
	}
	statsCmd.Flags().StringP("window", "w", "all", "Window: week, month or all")
	statsCmd.Flags().Bool("storage", false, "Show database statistics")

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded events",
		Run:   runHistory,
	}
	historyCmd.Flags().StringP("category", "c", "", "Filter by category: mood, tool, journal, chat, activity")
	historyCmd.Flags().IntP("limit", "l", 20, "Max results, newest kept (0 for all)")

	RootCmd.AddCommand(statsCmd, historyCmd)
}

func runStats(cmd *cobra.Command, args []string) {
	storage, _ := cmd.Flags().GetBool("storage")
	if storage {
		runStorageStats(cmd)
		return
	}

	windowStr, _ := cmd.Flags().GetString("window")
	window, err := aggregate.ParseWindow(windowStr)
	if err != nil {
		exitErr("stats", err)
	}

	svc, s := openService()
	defer s.Close()

	summary, err := svc.Stats(cmd.Context(), window)
	if err != nil {
		exitErr("stats", err)
	}
	printJSON(cmd, summary)
}

func runStorageStats(cmd *cobra.Command) {
	s, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer s.Close()

	stats, err := store.CollectStats(cmd.Context(), s, s.Path())
	if err != nil {
		exitErr("stats", err)
	}
	printJSON(cmd, stats)
}

func runHistory(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	limit, _ := cmd.Flags().GetInt("limit")

	svc, s := openService()
	defer s.Close()

	events, err := svc.History(cmd.Context(), model.Category(category))
	if err != nil {
		exitErr("history", err)
	}
	if limit > 0 && len(events) > limit {
		events = events[len(events)-limit:]
	}
	if events == nil {
		events = []model.Event{}
	}
	printJSON(cmd, events)
}
