package cmd

import (
	"errors"
	"fmt"

	"github.com/lernio/lernio/internal/content"
	"github.com/lernio/lernio/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <bundle.json>",
	Short: "Import a content bundle into the local cache",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		importer := content.NewImporter(st.ContentRepo())
		summary, err := importer.ImportFile(cmd.Context(), args[0])
		if err != nil {
			if errors.Is(err, content.ErrInvalidBundle) {
				return fmt.Errorf("bundle rejected, nothing imported: %w", err)
			}
			return err
		}

		fmt.Printf("Imported %q (%s)\n", summary.Title, summary.UnitID)
		fmt.Printf("  %d objective(s), %d lesson(s), %d exercise(s)\n",
			summary.Objectives, summary.Lessons, summary.Exercises)
		return nil
	},
}
