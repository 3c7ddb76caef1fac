// Package cli implements the neuronest CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rcliao/neuronest/internal/companion"
	"github.com/rcliao/neuronest/internal/config"
	"github.com/rcliao/neuronest/internal/store"
	"github.com/spf13/cobra"
)

var (
	dbPath  string
	tzFlag  string
	verbose bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "neuronest",
	Short: "A small well-being companion",
	Long:  "Check in with your mood, journal, chat and earn badges. SQLite-backed, single binary, JSON out.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "", "Database path (default: $NEURONEST_DB or ~/.neuronest/neuronest.db)")
	RootCmd.PersistentFlags().StringVar(&tzFlag, "tz", "", "Time zone for calendar days (default: $NEURONEST_TZ or local)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log recoverable data problems to stderr")
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if tzFlag != "" {
		cfg.TimeZone = tzFlag
	}
	if verbose {
		cfg.Verbose = true
	}
	return cfg
}

func getDBPath() string {
	return loadConfig().DBPath
}

func openStore() (*store.SQLiteStore, error) {
	return store.NewSQLiteStore(getDBPath())
}

// openService opens the store and wraps it in a Service. Callers close the
// returned store.
func openService() (*companion.Service, *store.SQLiteStore) {
	cfg := loadConfig()
	loc, err := cfg.Location()
	if err != nil {
		exitErr("config", err)
	}
	s, err := store.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		exitErr("open store", err)
	}
	svc := companion.New(s,
		companion.WithLocation(loc),
		companion.WithRand(cfg.Rand()),
		companion.WithLogger(cfg.Logger(os.Stderr)),
	)
	return svc, s
}

// readText joins args, or reads in when there are none and it is piped.
func readText(args []string, in *os.File) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	stat, _ := in.Stat()
	if stat != nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		b, err := io.ReadAll(in)
		if err != nil {
			return "", err
		}
		return strings.TrimRight(string(b), "\r\n"), nil
	}
	return "", nil
}

func printJSON(cmd *cobra.Command, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
