package cmd

import (
	"fmt"

	"github.com/lernio/lernio/internal/app"
	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		Content:  st.ContentRepo(),
		Recorder: sessionlog.NewRecorder(st.SessionRepo(), st.OutboxRepo()),
		Progress: progress.NewService(st.ContentRepo(), st.SessionRepo(), st.SnapshotRepo()),
		UserID:   resolveUserID(cmd),
	}

	return app.Run(opts)
}
