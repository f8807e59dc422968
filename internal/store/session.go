package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/lernio/lernio/ent"
	"github.com/lernio/lernio/ent/outcomeevent"
	"github.com/lernio/lernio/ent/sessionevent"
)

const (
	actionStart    = "start"
	actionComplete = "complete"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *sessionRepo) AppendStart(ctx context.Context, data SessionStartData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetUnitID(data.UnitID).
		SetLessonID(data.LessonID).
		SetAction(actionStart).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session start: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendOutcome(ctx context.Context, data OutcomeData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.OutcomeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetUnitID(data.UnitID).
		SetLessonID(data.LessonID).
		SetExerciseID(data.ExerciseID).
		SetObjectiveID(data.ObjectiveID).
		SetCorrect(data.Correct).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save outcome: %w", err)
	}
	return nil
}

func (r *sessionRepo) AppendComplete(ctx context.Context, data SessionCompleteData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetUserID(data.UserID).
		SetUnitID(data.UnitID).
		SetLessonID(data.LessonID).
		SetAction(actionComplete).
		SetExercisesAnswered(data.ExercisesAnswered).
		SetExercisesCorrect(data.ExercisesCorrect).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session complete: %w", err)
	}
	return nil
}

func (r *sessionRepo) FinalizedRecords(ctx context.Context, unitID, userID string) ([]*SessionRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Where(
			sessionevent.UnitID(unitID),
			sessionevent.UserID(userID),
		).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := assembleRecords(events)
	if len(records) == 0 {
		return nil, nil
	}

	outcomes, err := r.client.OutcomeEvent.Query().
		Where(
			outcomeevent.UnitID(unitID),
			outcomeevent.UserID(userID),
		).
		Order(ent.Asc(outcomeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query outcome events: %w", err)
	}

	attachOutcomes(records, outcomes)

	result := make([]*SessionRecord, 0, len(records))
	for _, rec := range records {
		result = append(result, rec)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result, nil
}

func (r *sessionRepo) FinalizedRecord(ctx context.Context, sessionID string) (*SessionRecord, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.SessionID(sessionID)).
		Order(ent.Asc(sessionevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session events: %w", err)
	}

	records := assembleRecords(events)
	rec, ok := records[sessionID]
	if !ok {
		return nil, nil
	}

	outcomes, err := r.client.OutcomeEvent.Query().
		Where(outcomeevent.SessionID(sessionID)).
		Order(ent.Asc(outcomeevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query outcome events: %w", err)
	}

	attachOutcomes(records, outcomes)
	return rec, nil
}

// assembleRecords pairs start and complete events into finalized
// records. Sessions missing a complete event are dropped.
func assembleRecords(events []*ent.SessionEvent) map[string]*SessionRecord {
	started := make(map[string]*SessionRecord)
	finalized := make(map[string]*SessionRecord)

	for _, ev := range events {
		switch ev.Action {
		case actionStart:
			started[ev.SessionID] = &SessionRecord{
				SessionID: ev.SessionID,
				UserID:    ev.UserID,
				UnitID:    ev.UnitID,
				LessonID:  ev.LessonID,
				StartedAt: ev.Timestamp,
			}
		case actionComplete:
			rec, ok := started[ev.SessionID]
			if !ok {
				// Complete without a start row shouldn't happen, but a
				// record with only the finalize timestamp is still usable.
				rec = &SessionRecord{
					SessionID: ev.SessionID,
					UserID:    ev.UserID,
					UnitID:    ev.UnitID,
					LessonID:  ev.LessonID,
					StartedAt: ev.Timestamp,
				}
			}
			rec.CompletedAt = ev.Timestamp
			finalized[ev.SessionID] = rec
		}
	}
	return finalized
}

// attachOutcomes folds outcome rows into their owning records,
// preserving event order. Outcomes of unfinalized sessions are ignored.
func attachOutcomes(records map[string]*SessionRecord, outcomes []*ent.OutcomeEvent) {
	for _, oe := range outcomes {
		rec, ok := records[oe.SessionID]
		if !ok {
			continue
		}
		rec.Outcomes = append(rec.Outcomes, Outcome{
			ExerciseID:  oe.ExerciseID,
			ObjectiveID: oe.ObjectiveID,
			Correct:     oe.Correct,
			AttemptedAt: oe.Timestamp,
		})
	}
}
