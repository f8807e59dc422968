package cmd

import (
	"os"

	"github.com/lernio/lernio/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lernio",
	Short: "Offline-first terminal learning app",
	Long:  "Lernio — terminal learning app that works fully offline: imported lesson content, local progress tracking, deferred sync.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LERNIO_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "User ID (overrides LERNIO_USER env var; defaults to \"local\")")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LERNIO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveUserID returns the user ID from the --user flag, the
// LERNIO_USER env var, or "local". The app is single-user per profile;
// the ID exists so synced uploads attribute sessions correctly.
func resolveUserID(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("LERNIO_USER"); u != "" {
		return u
	}
	return "local"
}
