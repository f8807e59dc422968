// Package progress computes per-objective completion for a unit from
// the locally cached content and the session event log. Everything is
// a local read: the engine works with whatever has been synced to the
// device and never touches the network.
//
// Correctness rests on two choices. Outcome history is append-only and
// folded in full on every computation, so an exercise stays correct
// once any attempt answered it correctly and completion never
// regresses. Newly-completed detection diffs against the previous
// persisted snapshot rather than recomputing a baseline, which is
// sufficient precisely because completion is monotonic.
package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lernio/lernio/internal/store"
)

var (
	// ErrUnitNotCached is returned when the unit hasn't been imported.
	// Progress can't be computed offline for undownloaded content.
	ErrUnitNotCached = errors.New("unit not in local cache")

	// ErrInvalidArgument is returned for empty identifiers or a
	// just-completed session that doesn't belong to the unit and user.
	ErrInvalidArgument = errors.New("invalid argument")
)

// ContentReader is the slice of the content cache the engine reads.
type ContentReader interface {
	Unit(ctx context.Context, unitID string) (*store.Unit, error)
	LessonPackages(ctx context.Context, unitID string) ([]*store.LessonPackage, error)
}

// SessionReader is the slice of the session store the engine reads.
type SessionReader interface {
	FinalizedRecords(ctx context.Context, unitID, userID string) ([]*store.SessionRecord, error)
	FinalizedRecord(ctx context.Context, sessionID string) (*store.SessionRecord, error)
}

// SnapshotStore persists the last computed snapshot per (unit, user).
type SnapshotStore interface {
	Get(ctx context.Context, unitID, userID string) (*store.ProgressSnapshot, error)
	Put(ctx context.Context, snap *store.ProgressSnapshot) error
}

// Service is the progress engine.
type Service struct {
	content   ContentReader
	sessions  SessionReader
	snapshots SnapshotStore
	now       func() time.Time
}

// NewService creates a progress Service over the given readers.
func NewService(content ContentReader, sessions SessionReader, snapshots SnapshotStore) *Service {
	return &Service{
		content:   content,
		sessions:  sessions,
		snapshots: snapshots,
		now:       time.Now,
	}
}

// ComputeUnitProgress recomputes the user's per-objective progress for
// the unit and replaces the cached snapshot with the result.
//
// When justCompletedSessionID is non-empty it must name a finalized
// session of this unit and user; objectives whose status moved to
// completed since the previous snapshot are then flagged
// NewlyCompleted. The flag stays false on every item when no session
// ID is given or no previous snapshot exists — with no baseline,
// nothing is "newly" completed.
func (s *Service) ComputeUnitProgress(ctx context.Context, unitID, userID, justCompletedSessionID string) (*UnitProgress, error) {
	if unitID == "" || userID == "" {
		return nil, fmt.Errorf("%w: unit and user IDs are required", ErrInvalidArgument)
	}

	if justCompletedSessionID != "" {
		rec, err := s.sessions.FinalizedRecord(ctx, justCompletedSessionID)
		if err != nil {
			return nil, fmt.Errorf("load session %s: %w", justCompletedSessionID, err)
		}
		if rec == nil || rec.UnitID != unitID || rec.UserID != userID {
			return nil, fmt.Errorf("%w: session %s is not a finalized session of unit %s",
				ErrInvalidArgument, justCompletedSessionID, unitID)
		}
	}

	unit, err := s.content.Unit(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("load unit %s: %w", unitID, err)
	}
	if unit == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnitNotCached, unitID)
	}

	packages, err := s.content.LessonPackages(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("load lesson packages for %s: %w", unitID, err)
	}

	records, err := s.sessions.FinalizedRecords(ctx, unitID, userID)
	if err != nil {
		return nil, fmt.Errorf("load sessions for %s: %w", unitID, err)
	}

	// Distinct exercises per objective, across all cached lessons.
	// A zero-lesson unit is valid (partially synced) and simply shows
	// every objective as not started.
	exercisesByObjective := make(map[string]map[string]bool, len(unit.Objectives))
	for _, obj := range unit.Objectives {
		exercisesByObjective[obj.ID] = make(map[string]bool)
	}
	for _, lp := range packages {
		for _, e := range lp.Exercises {
			set, ok := exercisesByObjective[e.ObjectiveID]
			if !ok {
				// Exercise tagged with an objective outside the unit's
				// canonical list; the importer rejects these, so a row
				// like this predates validation. It can't count toward
				// any objective.
				continue
			}
			set[e.ID] = true
		}
	}

	// Fold the full outcome history: an exercise is correct if any
	// attempt ever answered it correctly. Later incorrect retries
	// don't erase that, which makes completion monotonic.
	attempted := make(map[string]bool)
	everCorrect := make(map[string]bool)
	for _, rec := range records {
		for _, o := range rec.Outcomes {
			attempted[o.ExerciseID] = true
			if o.Correct {
				everCorrect[o.ExerciseID] = true
			}
		}
	}

	prev, err := s.snapshots.Get(ctx, unitID, userID)
	if err != nil {
		return nil, fmt.Errorf("load previous snapshot: %w", err)
	}
	prevStatus := make(map[string]Status)
	if prev != nil {
		for _, item := range prev.Items {
			prevStatus[item.ObjectiveID] = Status(item.Status)
		}
	}
	diffable := justCompletedSessionID != "" && prev != nil

	result := &UnitProgress{
		UnitID:     unitID,
		UserID:     userID,
		Items:      make([]ObjectiveProgress, 0, len(unit.Objectives)),
		ComputedAt: s.now().UTC(),
	}

	for _, obj := range unit.Objectives {
		set := exercisesByObjective[obj.ID]

		correct := 0
		anyAttempt := false
		for exerciseID := range set {
			if everCorrect[exerciseID] {
				correct++
			}
			if attempted[exerciseID] {
				anyAttempt = true
			}
		}

		item := ObjectiveProgress{
			ObjectiveID:      obj.ID,
			Text:             obj.Text,
			ExercisesTotal:   len(set),
			ExercisesCorrect: correct,
			Status:           deriveStatus(len(set), correct, anyAttempt),
		}
		if diffable {
			item.NewlyCompleted = item.Status == StatusCompleted &&
				prevStatus[item.ObjectiveID] != StatusCompleted
		}
		result.Items = append(result.Items, item)
	}

	if err := s.snapshots.Put(ctx, toSnapshot(result)); err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	return result, nil
}

// CachedUnitProgress returns the last computed snapshot for the pair
// without recomputing, or nil if none has been computed yet.
func (s *Service) CachedUnitProgress(ctx context.Context, unitID, userID string) (*UnitProgress, error) {
	if unitID == "" || userID == "" {
		return nil, fmt.Errorf("%w: unit and user IDs are required", ErrInvalidArgument)
	}

	snap, err := s.snapshots.Get(ctx, unitID, userID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap == nil {
		return nil, nil
	}
	return fromSnapshot(snap), nil
}

// deriveStatus derives an objective's status from its counts. An
// objective with no assessable exercises is never more than
// not_started, whatever stray outcomes exist.
func deriveStatus(total, correct int, anyAttempt bool) Status {
	switch {
	case total == 0:
		return StatusNotStarted
	case correct == total:
		return StatusCompleted
	case correct == 0 && !anyAttempt:
		return StatusNotStarted
	default:
		return StatusPartial
	}
}
