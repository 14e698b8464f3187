package cmd

import (
	"fmt"
	"log/slog"

	"github.com/abhisek/mathdrill/internal/config"
	"github.com/abhisek/mathdrill/internal/store"
	"github.com/spf13/cobra"
)

// cfg is the merged configuration, loaded before any command runs.
var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "mathdrill",
	Short: "Arithmetic and fraction drills for the terminal",
	Long: `mathdrill generates practice exercises for place value, addition,
subtraction, multiplication, order of operations and fractions across five
difficulty levels, grades the answers and keeps a local history.

Run without a subcommand to start a drill with the configured defaults.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runDrill,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHDRILL_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides MATHDRILL_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error")
	addDrillFlags(rootCmd)

	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig merges defaults, the config file and the environment, then
// installs the default logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	c, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.LogLevel = lvl
	}
	level, err := config.ParseLogLevel(c.LogLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	cfg = c
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path (file or MATHDRILL_DB), then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore opens the history database.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	slog.Debug("database opened", "path", dbPath)
	return s, nil
}
