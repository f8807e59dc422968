// Package sessionlog is the write path of the local session store.
// One Session is created per lesson attempt; outcomes are appended as
// the learner answers and the session becomes immutable once
// finalized. Finalizing also queues the session for upload.
package sessionlog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lernio/lernio/internal/store"
)

var (
	ErrEmptyID   = errors.New("empty identifier")
	ErrFinalized = errors.New("session already finalized")
)

// Session is one in-progress lesson attempt.
type Session struct {
	ID       string
	UserID   string
	UnitID   string
	LessonID string

	outcomes  []store.Outcome
	correct   int
	finalized bool
}

// Answered returns the number of outcomes recorded so far.
func (s *Session) Answered() int { return len(s.outcomes) }

// Correct returns the number of correct outcomes recorded so far.
func (s *Session) Correct() int { return s.correct }

// Recorder writes lesson attempts to the session event log.
type Recorder struct {
	sessions store.SessionRepo
	outbox   store.OutboxRepo
}

// NewRecorder creates a Recorder over the given repos.
func NewRecorder(sessions store.SessionRepo, outbox store.OutboxRepo) *Recorder {
	return &Recorder{sessions: sessions, outbox: outbox}
}

// Start begins a new session for one lesson attempt.
func (r *Recorder) Start(ctx context.Context, userID, unitID, lessonID string) (*Session, error) {
	if userID == "" || unitID == "" || lessonID == "" {
		return nil, ErrEmptyID
	}

	s := &Session{
		ID:       uuid.New().String(),
		UserID:   userID,
		UnitID:   unitID,
		LessonID: lessonID,
	}

	err := r.sessions.AppendStart(ctx, store.SessionStartData{
		SessionID: s.ID,
		UserID:    s.UserID,
		UnitID:    s.UnitID,
		LessonID:  s.LessonID,
	})
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return s, nil
}

// Record appends one exercise outcome to the session. Outcomes are
// never edited: answering the same exercise again appends a new one.
func (r *Recorder) Record(ctx context.Context, s *Session, exerciseID, objectiveID string, correct bool) error {
	if s.finalized {
		return ErrFinalized
	}
	if exerciseID == "" || objectiveID == "" {
		return ErrEmptyID
	}

	err := r.sessions.AppendOutcome(ctx, store.OutcomeData{
		SessionID:   s.ID,
		UserID:      s.UserID,
		UnitID:      s.UnitID,
		LessonID:    s.LessonID,
		ExerciseID:  exerciseID,
		ObjectiveID: objectiveID,
		Correct:     correct,
	})
	if err != nil {
		return fmt.Errorf("record outcome: %w", err)
	}

	s.outcomes = append(s.outcomes, store.Outcome{
		ExerciseID:  exerciseID,
		ObjectiveID: objectiveID,
		Correct:     correct,
		AttemptedAt: time.Now(),
	})
	if correct {
		s.correct++
	}
	return nil
}

// Finalize marks the session complete and enqueues it for upload.
// After Finalize the session accepts no further outcomes.
func (r *Recorder) Finalize(ctx context.Context, s *Session) error {
	if s.finalized {
		return ErrFinalized
	}

	err := r.sessions.AppendComplete(ctx, store.SessionCompleteData{
		SessionID:         s.ID,
		UserID:            s.UserID,
		UnitID:            s.UnitID,
		LessonID:          s.LessonID,
		ExercisesAnswered: len(s.outcomes),
		ExercisesCorrect:  s.correct,
	})
	if err != nil {
		return fmt.Errorf("finalize session: %w", err)
	}
	s.finalized = true

	err = r.outbox.Enqueue(ctx, &store.OutboxEntry{
		SessionID:     s.ID,
		UserID:        s.UserID,
		UnitID:        s.UnitID,
		Payload:       uploadPayload(s),
		NextAttemptAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("enqueue session upload: %w", err)
	}
	return nil
}

// CompletedLessons reports which of the unit's lessons the user has
// already finished, keyed by lesson ID. A lesson counts as finished
// once any session for it has been finalized.
func (r *Recorder) CompletedLessons(ctx context.Context, userID, unitID string) (map[string]bool, error) {
	records, err := r.sessions.FinalizedRecords(ctx, unitID, userID)
	if err != nil {
		return nil, fmt.Errorf("load finalized sessions: %w", err)
	}
	done := make(map[string]bool, len(records))
	for _, rec := range records {
		done[rec.LessonID] = true
	}
	return done, nil
}

// uploadPayload serializes a finalized session for the outbox.
func uploadPayload(s *Session) map[string]any {
	outcomes := make([]map[string]any, 0, len(s.outcomes))
	for _, o := range s.outcomes {
		outcomes = append(outcomes, map[string]any{
			"exercise_id":  o.ExerciseID,
			"objective_id": o.ObjectiveID,
			"correct":      o.Correct,
			"attempted_at": o.AttemptedAt.UTC().Format(time.RFC3339),
		})
	}
	return map[string]any{
		"session_id":         s.ID,
		"user_id":            s.UserID,
		"unit_id":            s.UnitID,
		"lesson_id":          s.LessonID,
		"exercises_answered": len(s.outcomes),
		"exercises_correct":  s.correct,
		"outcomes":           outcomes,
	}
}
