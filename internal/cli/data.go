package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as JSON",
		Run:   runExport,
	}

	importCmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import data from JSON",
		Long:  "Import data from JSON (file or stdin). Expects the format produced by export. Existing keys are overwritten.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all data",
		Run:   runReset,
	}
	resetCmd.Flags().Bool("yes", false, "Confirm deletion (irreversible)")

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the local profile id",
		Run:   runWhoami,
	}

	RootCmd.AddCommand(exportCmd, importCmd, resetCmd, whoamiCmd)
}

func runExport(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	all, err := svc.Export(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	printJSON(cmd, all)
}

func runImport(cmd *cobra.Command, args []string) {
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		exitErr("read input", err)
	}

	var entries map[string]json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		exitErr("parse json", err)
	}

	svc, s := openService()
	defer s.Close()

	res, err := svc.Import(cmd.Context(), entries)
	if err != nil {
		exitErr("import", err)
	}
	printJSON(cmd, res)
}

func runReset(cmd *cobra.Command, args []string) {
	yes, _ := cmd.Flags().GetBool("yes")
	if !yes {
		exitErr("reset", fmt.Errorf("refusing to delete data without --yes"))
	}

	svc, s := openService()
	defer s.Close()

	if err := svc.Reset(cmd.Context()); err != nil {
		exitErr("reset", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}

func runWhoami(cmd *cobra.Command, args []string) {
	svc, s := openService()
	defer s.Close()

	p, err := svc.Profile(cmd.Context())
	if err != nil {
		exitErr("whoami", err)
	}
	printJSON(cmd, p)
}
