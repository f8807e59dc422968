package cmd

import (
	"fmt"
	"os"

	"github.com/lernio/lernio/internal/outbox"
	"github.com/lernio/lernio/internal/store"
	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Upload queued session results",
	Long:  "Drains the outbox once: every due entry is posted to the results endpoint, failures are rescheduled with backoff.",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint, _ := cmd.Flags().GetString("endpoint")
		if endpoint == "" {
			endpoint = os.Getenv("LERNIO_SYNC_URL")
		}
		if endpoint == "" {
			return fmt.Errorf("no endpoint configured: pass --endpoint or set LERNIO_SYNC_URL")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		drainer := outbox.NewDrainer(st.OutboxRepo(), outbox.NewHTTPUploader(endpoint))
		res, err := drainer.Drain(cmd.Context())
		if err != nil {
			return fmt.Errorf("drain outbox: %w", err)
		}

		fmt.Printf("Uploaded: %d   Failed: %d   Still queued: %d\n",
			res.Uploaded, res.Failed, res.Pending)
		return nil
	},
}

func init() {
	syncCmd.Flags().String("endpoint", "", "Results upload URL (overrides LERNIO_SYNC_URL env var)")
}
