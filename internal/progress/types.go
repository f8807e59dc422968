package progress

import (
	"time"

	"github.com/lernio/lernio/internal/store"
)

// Status represents an objective's place in the completion lifecycle.
type Status string

const (
	StatusNotStarted Status = "not_started"
	StatusPartial    Status = "partial"
	StatusCompleted  Status = "completed"
)

// ObjectiveProgress is the computed progress for one objective.
// ExercisesTotal counts distinct exercises tagged with the objective
// across every cached lesson of the unit; ExercisesCorrect counts the
// distinct exercises the user has ever answered correctly.
type ObjectiveProgress struct {
	ObjectiveID      string
	Text             string
	ExercisesTotal   int
	ExercisesCorrect int
	Status           Status
	NewlyCompleted   bool
}

// UnitProgress is the per-objective progress of one user in one unit,
// in canonical objective order.
type UnitProgress struct {
	UnitID     string
	UserID     string
	Items      []ObjectiveProgress
	ComputedAt time.Time
}

// toSnapshot converts a UnitProgress for persistence.
func toSnapshot(p *UnitProgress) *store.ProgressSnapshot {
	items := make([]store.ObjectiveProgressData, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, store.ObjectiveProgressData{
			ObjectiveID:      item.ObjectiveID,
			Text:             item.Text,
			ExercisesTotal:   item.ExercisesTotal,
			ExercisesCorrect: item.ExercisesCorrect,
			Status:           string(item.Status),
			NewlyCompleted:   item.NewlyCompleted,
		})
	}
	return &store.ProgressSnapshot{
		UnitID:     p.UnitID,
		UserID:     p.UserID,
		Items:      items,
		ComputedAt: p.ComputedAt,
	}
}

// fromSnapshot converts a persisted snapshot back to a UnitProgress.
func fromSnapshot(snap *store.ProgressSnapshot) *UnitProgress {
	items := make([]ObjectiveProgress, 0, len(snap.Items))
	for _, item := range snap.Items {
		items = append(items, ObjectiveProgress{
			ObjectiveID:      item.ObjectiveID,
			Text:             item.Text,
			ExercisesTotal:   item.ExercisesTotal,
			ExercisesCorrect: item.ExercisesCorrect,
			Status:           Status(item.Status),
			NewlyCompleted:   item.NewlyCompleted,
		})
	}
	return &UnitProgress{
		UnitID:     snap.UnitID,
		UserID:     snap.UserID,
		Items:      items,
		ComputedAt: snap.ComputedAt,
	}
}
