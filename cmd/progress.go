package cmd

import (
	"fmt"
	"strings"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/store"
	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show the objective breakdown for a unit",
	RunE: func(cmd *cobra.Command, args []string) error {
		unitID, _ := cmd.Flags().GetString("unit")
		if unitID == "" {
			return fmt.Errorf("--unit is required")
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

		ctx := cmd.Context()
		unit, err := st.ContentRepo().Unit(ctx, unitID)
		if err != nil {
			return fmt.Errorf("load unit: %w", err)
		}
		if unit == nil {
			return fmt.Errorf("unit %q is not cached", unitID)
		}

		svc := progress.NewService(st.ContentRepo(), st.SessionRepo(), st.SnapshotRepo())
		p, err := svc.CachedUnitProgress(ctx, unitID, resolveUserID(cmd))
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Println(unit.Title)
		fmt.Println(strings.Repeat("─", len(unit.Title)))

		if p == nil {
			fmt.Println("No progress recorded yet. Finish a lesson first.")
			return nil
		}

		for _, item := range p.Items {
			marker := " "
			switch item.Status {
			case progress.StatusCompleted:
				marker = "✓"
			case progress.StatusPartial:
				marker = "~"
			}
			fmt.Printf("%s %-40s %d/%d %s\n",
				marker, item.Text, item.ExercisesCorrect, item.ExercisesTotal, item.Status)
		}
		fmt.Printf("\nComputed at %s\n", p.ComputedAt.Local().Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	progressCmd.Flags().String("unit", "", "Unit ID to show progress for")
}
