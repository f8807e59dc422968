package sessionlog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernio/lernio/internal/store"
)

type fakeSessionRepo struct {
	starts    []store.SessionStartData
	outcomes  []store.OutcomeData
	completes []store.SessionCompleteData
}

func (f *fakeSessionRepo) AppendStart(_ context.Context, data store.SessionStartData) error {
	f.starts = append(f.starts, data)
	return nil
}

func (f *fakeSessionRepo) AppendOutcome(_ context.Context, data store.OutcomeData) error {
	f.outcomes = append(f.outcomes, data)
	return nil
}

func (f *fakeSessionRepo) AppendComplete(_ context.Context, data store.SessionCompleteData) error {
	f.completes = append(f.completes, data)
	return nil
}

func (f *fakeSessionRepo) FinalizedRecords(_ context.Context, unitID, userID string) ([]*store.SessionRecord, error) {
	var out []*store.SessionRecord
	for _, c := range f.completes {
		if c.UnitID != unitID || c.UserID != userID {
			continue
		}
		out = append(out, &store.SessionRecord{
			SessionID: c.SessionID,
			UserID:    c.UserID,
			UnitID:    c.UnitID,
			LessonID:  c.LessonID,
		})
	}
	return out, nil
}

func (f *fakeSessionRepo) FinalizedRecord(_ context.Context, _ string) (*store.SessionRecord, error) {
	return nil, nil
}

type fakeOutboxRepo struct {
	entries []*store.OutboxEntry
}

func (f *fakeOutboxRepo) Enqueue(_ context.Context, entry *store.OutboxEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeOutboxRepo) Due(_ context.Context, _ time.Time, _ int) ([]*store.OutboxEntry, error) {
	return nil, nil
}

func (f *fakeOutboxRepo) RecordFailure(_ context.Context, _ int, _ time.Time) error { return nil }
func (f *fakeOutboxRepo) Ack(_ context.Context, _ int) error                        { return nil }
func (f *fakeOutboxRepo) Pending(_ context.Context) (int, error)                    { return len(f.entries), nil }

func TestRecorderLifecycle(t *testing.T) {
	sessions := &fakeSessionRepo{}
	outbox := &fakeOutboxRepo{}
	rec := NewRecorder(sessions, outbox)
	ctx := context.Background()

	s, err := rec.Start(ctx, "local", "u1", "l1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if s.ID == "" {
		t.Fatal("expected generated session id")
	}
	if len(sessions.starts) != 1 {
		t.Fatalf("start events = %d, want 1", len(sessions.starts))
	}

	if err := rec.Record(ctx, s, "e1", "ob1", true); err != nil {
		t.Fatalf("record e1: %v", err)
	}
	if err := rec.Record(ctx, s, "e2", "ob1", false); err != nil {
		t.Fatalf("record e2: %v", err)
	}
	if s.Answered() != 2 || s.Correct() != 1 {
		t.Errorf("answered=%d correct=%d, want 2/1", s.Answered(), s.Correct())
	}

	if err := rec.Finalize(ctx, s); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if len(sessions.completes) != 1 {
		t.Fatalf("complete events = %d, want 1", len(sessions.completes))
	}
	if sessions.completes[0].ExercisesAnswered != 2 || sessions.completes[0].ExercisesCorrect != 1 {
		t.Errorf("complete = %+v, want 2 answered / 1 correct", sessions.completes[0])
	}

	if len(outbox.entries) != 1 {
		t.Fatalf("outbox entries = %d, want 1", len(outbox.entries))
	}
	payload := outbox.entries[0].Payload
	if payload["session_id"] != s.ID {
		t.Errorf("payload session_id = %v, want %s", payload["session_id"], s.ID)
	}
	if outs, ok := payload["outcomes"].([]map[string]any); !ok || len(outs) != 2 {
		t.Errorf("payload outcomes = %v, want 2 entries", payload["outcomes"])
	}
}

func TestRecorderCompletedLessons(t *testing.T) {
	sessions := &fakeSessionRepo{}
	rec := NewRecorder(sessions, &fakeOutboxRepo{})
	ctx := context.Background()

	// Two finished lessons for the user, one abandoned, one from
	// someone else.
	for _, lesson := range []string{"l1", "l2"} {
		s, err := rec.Start(ctx, "local", "u1", lesson)
		if err != nil {
			t.Fatalf("start %s: %v", lesson, err)
		}
		if err := rec.Finalize(ctx, s); err != nil {
			t.Fatalf("finalize %s: %v", lesson, err)
		}
	}
	if _, err := rec.Start(ctx, "local", "u1", "l3"); err != nil {
		t.Fatalf("start l3: %v", err)
	}
	other, err := rec.Start(ctx, "other", "u1", "l4")
	if err != nil {
		t.Fatalf("start l4: %v", err)
	}
	if err := rec.Finalize(ctx, other); err != nil {
		t.Fatalf("finalize l4: %v", err)
	}

	done, err := rec.CompletedLessons(ctx, "local", "u1")
	if err != nil {
		t.Fatalf("completed lessons: %v", err)
	}
	if len(done) != 2 || !done["l1"] || !done["l2"] {
		t.Errorf("completed = %v, want l1 and l2 only", done)
	}
}

func TestRecorderRejectsEmptyIDs(t *testing.T) {
	rec := NewRecorder(&fakeSessionRepo{}, &fakeOutboxRepo{})
	ctx := context.Background()

	if _, err := rec.Start(ctx, "", "u1", "l1"); !errors.Is(err, ErrEmptyID) {
		t.Errorf("start with empty user: err = %v, want ErrEmptyID", err)
	}
	if _, err := rec.Start(ctx, "local", "", "l1"); !errors.Is(err, ErrEmptyID) {
		t.Errorf("start with empty unit: err = %v, want ErrEmptyID", err)
	}

	s, err := rec.Start(ctx, "local", "u1", "l1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rec.Record(ctx, s, "", "ob1", true); !errors.Is(err, ErrEmptyID) {
		t.Errorf("record with empty exercise: err = %v, want ErrEmptyID", err)
	}
}

func TestRecorderFinalizedIsImmutable(t *testing.T) {
	rec := NewRecorder(&fakeSessionRepo{}, &fakeOutboxRepo{})
	ctx := context.Background()

	s, err := rec.Start(ctx, "local", "u1", "l1")
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := rec.Finalize(ctx, s); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if err := rec.Record(ctx, s, "e1", "ob1", true); !errors.Is(err, ErrFinalized) {
		t.Errorf("record after finalize: err = %v, want ErrFinalized", err)
	}
	if err := rec.Finalize(ctx, s); !errors.Is(err, ErrFinalized) {
		t.Errorf("double finalize: err = %v, want ErrFinalized", err)
	}
}
