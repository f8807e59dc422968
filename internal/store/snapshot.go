package store

import (
	"context"
	"fmt"

	"github.com/lernio/lernio/ent"
	"github.com/lernio/lernio/ent/progresssnapshot"
	entschema "github.com/lernio/lernio/ent/schema"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
}

func (r *snapshotRepo) Get(ctx context.Context, unitID, userID string) (*ProgressSnapshot, error) {
	s, err := r.client.ProgressSnapshot.Query().
		Where(
			progresssnapshot.UnitID(unitID),
			progresssnapshot.UserID(userID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	items := make([]ObjectiveProgressData, 0, len(s.Items))
	for _, row := range s.Items {
		items = append(items, ObjectiveProgressData{
			ObjectiveID:      row.ObjectiveID,
			Text:             row.Text,
			ExercisesTotal:   row.ExercisesTotal,
			ExercisesCorrect: row.ExercisesDone,
			Status:           row.Status,
			NewlyCompleted:   row.NewlyCompleted,
		})
	}

	return &ProgressSnapshot{
		UnitID:     s.UnitID,
		UserID:     s.UserID,
		Items:      items,
		ComputedAt: s.ComputedAt,
	}, nil
}

// Put replaces the pair's snapshot in one transaction so a failed
// write never leaves a half-written snapshot behind.
func (r *snapshotRepo) Put(ctx context.Context, snap *ProgressSnapshot) error {
	rows := make([]entschema.ObjectiveProgressRow, 0, len(snap.Items))
	for _, item := range snap.Items {
		rows = append(rows, entschema.ObjectiveProgressRow{
			ObjectiveID:    item.ObjectiveID,
			Text:           item.Text,
			ExercisesTotal: item.ExercisesTotal,
			ExercisesDone:  item.ExercisesCorrect,
			Status:         item.Status,
			NewlyCompleted: item.NewlyCompleted,
		})
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	_, err = tx.ProgressSnapshot.Delete().
		Where(
			progresssnapshot.UnitID(snap.UnitID),
			progresssnapshot.UserID(snap.UserID),
		).
		Exec(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("delete previous snapshot: %w", err)
	}

	_, err = tx.ProgressSnapshot.Create().
		SetUnitID(snap.UnitID).
		SetUserID(snap.UserID).
		SetItems(rows).
		SetComputedAt(snap.ComputedAt).
		Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("save snapshot: %w", err)
	}

	return tx.Commit()
}
