package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rcliao/neuronest/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	moodCmd := &cobra.Command{
		Use:   "mood <mood>",
		Short: "Check in with how you feel",
		Long:  "Record a mood check-in. One of: " + strings.Join(sortedKeys(model.ValidMoods), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		Run:   runMood,
	}

	toolCmd := &cobra.Command{
		Use:   "tool <tool>",
		Short: "Record that a tool was used",
		Long:  "Record a tool use. One of: " + strings.Join(sortedKeys(model.ValidTools), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		Run:   runTool,
	}

	journalCmd := &cobra.Command{
		Use:   "journal [text]",
		Short: "Write to the dump zone",
		Long:  "Write a journal entry. Text can be a positional arg or piped via stdin.",
		Run:   runJournal,
	}

	chatCmd := &cobra.Command{
		Use:   "chat [message]",
		Short: "Talk to NeuroBot",
		Long:  "Send a message to NeuroBot. Message can be a positional arg or piped via stdin.",
		Run:   runChat,
	}

	RootCmd.AddCommand(moodCmd, toolCmd, journalCmd, chatCmd)
}

func runMood(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	out, err := svc.LogMood(cmd.Context(), strings.ToLower(args[0]))
	if err != nil {
		exitErr("mood", err)
	}
	printJSON(cmd, out)
}

func runTool(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	out, err := svc.UseTool(cmd.Context(), strings.ToLower(args[0]))
	if err != nil {
		exitErr("tool", err)
	}
	printJSON(cmd, out)
}

func runJournal(cmd *cobra.Command, args []string) {
	text, err := readText(args, os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}
	if strings.TrimSpace(text) == "" {
		exitErr("journal", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	svc, s := openService()
	defer s.Close()

	out, err := svc.Journal(cmd.Context(), text)
	if err != nil {
		exitErr("journal", err)
	}
	printJSON(cmd, out)
}

func runChat(cmd *cobra.Command, args []string) {
	text, err := readText(args, os.Stdin)
	if err != nil {
		exitErr("read stdin", err)
	}
	if strings.TrimSpace(text) == "" {
		exitErr("chat", fmt.Errorf("message is required (positional arg or stdin)"))
	}

	svc, s := openService()
	defer s.Close()

	out, err := svc.Chat(cmd.Context(), text)
	if err != nil {
		exitErr("chat", err)
	}
	printJSON(cmd, out)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
