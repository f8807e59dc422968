package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestContentRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	// Absent unit reads as nil, not an error.
	u, err := repo.Unit(ctx, "u-missing")
	if err != nil {
		t.Fatalf("unit (absent): %v", err)
	}
	if u != nil {
		t.Fatal("expected nil for uncached unit")
	}

	err = repo.PutUnit(ctx, &Unit{
		UnitID: "u1",
		Title:  "Fractions",
		Objectives: []Objective{
			{ID: "ob1", Text: "Understand halves"},
			{ID: "ob2", Text: "Compare fractions"},
		},
		LessonOrder: []string{"l1", "l2"},
	})
	if err != nil {
		t.Fatalf("put unit: %v", err)
	}

	err = repo.PutLessonPackage(ctx, &LessonPackage{
		PackageID: "l1",
		UnitID:    "u1",
		Title:     "Halves",
		Position:  0,
		Exercises: []Exercise{
			{ID: "e1", ObjectiveID: "ob1", Prompt: "1/2 of 4?", Choices: []string{"1", "2"}, AnswerIndex: 1},
		},
	})
	if err != nil {
		t.Fatalf("put lesson package: %v", err)
	}

	u, err = repo.Unit(ctx, "u1")
	if err != nil {
		t.Fatalf("unit: %v", err)
	}
	if u == nil {
		t.Fatal("expected cached unit")
	}
	if len(u.Objectives) != 2 || u.Objectives[0].ID != "ob1" {
		t.Errorf("objectives = %+v, want ob1 first of 2", u.Objectives)
	}
	if len(u.LessonOrder) != 2 {
		t.Errorf("lesson order = %v, want 2 entries", u.LessonOrder)
	}

	lps, err := repo.LessonPackages(ctx, "u1")
	if err != nil {
		t.Fatalf("lesson packages: %v", err)
	}
	if len(lps) != 1 {
		t.Fatalf("lesson packages = %d, want 1", len(lps))
	}
	if lps[0].Exercises[0].ObjectiveID != "ob1" {
		t.Errorf("exercise objective = %q, want ob1", lps[0].Exercises[0].ObjectiveID)
	}
}

func TestPutUnitReplaces(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	for _, title := range []string{"Old title", "New title"} {
		err := repo.PutUnit(ctx, &Unit{
			UnitID:     "u1",
			Title:      title,
			Objectives: []Objective{{ID: "ob1", Text: "One"}},
		})
		if err != nil {
			t.Fatalf("put unit %q: %v", title, err)
		}
	}

	u, err := repo.Unit(ctx, "u1")
	if err != nil {
		t.Fatalf("unit: %v", err)
	}
	if u.Title != "New title" {
		t.Errorf("title = %q, want replacement to win", u.Title)
	}

	count, err := s.Client().Unit.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("unit rows = %d, want 1", count)
	}
}

func TestPruneLessonPackages(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	for i, id := range []string{"l1", "l2", "l3"} {
		err := repo.PutLessonPackage(ctx, &LessonPackage{
			PackageID: id,
			UnitID:    "u1",
			Title:     id,
			Position:  i,
		})
		if err != nil {
			t.Fatalf("put lesson package %s: %v", id, err)
		}
	}
	// A package of another unit must survive any prune of u1.
	err := repo.PutLessonPackage(ctx, &LessonPackage{
		PackageID: "other", UnitID: "u2", Title: "Other", Position: 0,
	})
	if err != nil {
		t.Fatalf("put lesson package other: %v", err)
	}

	if err := repo.PruneLessonPackages(ctx, "u1", []string{"l1", "l3"}); err != nil {
		t.Fatalf("prune: %v", err)
	}

	lps, err := repo.LessonPackages(ctx, "u1")
	if err != nil {
		t.Fatalf("lesson packages: %v", err)
	}
	if len(lps) != 2 || lps[0].PackageID != "l1" || lps[1].PackageID != "l3" {
		t.Errorf("packages after prune = %+v, want l1 and l3", lps)
	}

	other, err := repo.LessonPackages(ctx, "u2")
	if err != nil {
		t.Fatalf("lesson packages u2: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("u2 packages = %d, want 1", len(other))
	}
}

func TestFinalizedRecordsExcludeInProgress(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Finalized session with two outcomes.
	mustAppendSession(t, repo, "s1", true, []OutcomeData{
		{SessionID: "s1", UserID: "local", UnitID: "u1", LessonID: "l1", ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
		{SessionID: "s1", UserID: "local", UnitID: "u1", LessonID: "l1", ExerciseID: "e2", ObjectiveID: "ob1", Correct: false},
	})

	// In-progress session: started, outcome recorded, never finalized.
	mustAppendSession(t, repo, "s2", false, []OutcomeData{
		{SessionID: "s2", UserID: "local", UnitID: "u1", LessonID: "l1", ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
	})

	records, err := repo.FinalizedRecords(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("finalized records: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("records = %d, want only the finalized one", len(records))
	}
	if records[0].SessionID != "s1" {
		t.Errorf("session = %q, want s1", records[0].SessionID)
	}
	if len(records[0].Outcomes) != 2 {
		t.Errorf("outcomes = %d, want 2", len(records[0].Outcomes))
	}
}

func TestFinalizedRecordByID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	mustAppendSession(t, repo, "s1", true, []OutcomeData{
		{SessionID: "s1", UserID: "local", UnitID: "u1", LessonID: "l1", ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
	})

	rec, err := repo.FinalizedRecord(ctx, "s1")
	if err != nil {
		t.Fatalf("finalized record: %v", err)
	}
	if rec == nil || rec.UnitID != "u1" {
		t.Fatalf("record = %+v, want unit u1", rec)
	}

	rec, err = repo.FinalizedRecord(ctx, "nope")
	if err != nil {
		t.Fatalf("finalized record (absent): %v", err)
	}
	if rec != nil {
		t.Error("expected nil for unknown session")
	}
}

func TestSnapshotGetPut(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Get(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Put(ctx, &ProgressSnapshot{
		UnitID: "u1",
		UserID: "local",
		Items: []ObjectiveProgressData{
			{ObjectiveID: "ob1", Text: "One", ExercisesTotal: 2, ExercisesCorrect: 1, Status: "partial"},
		},
		ComputedAt: now,
	})
	if err != nil {
		t.Fatalf("put: %v", err)
	}

	snap, err = repo.Get(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if snap == nil {
		t.Fatal("expected snapshot")
	}
	if len(snap.Items) != 1 || snap.Items[0].Status != "partial" {
		t.Errorf("items = %+v, want one partial row", snap.Items)
	}

	// Second put replaces, never accumulates.
	err = repo.Put(ctx, &ProgressSnapshot{
		UnitID: "u1",
		UserID: "local",
		Items: []ObjectiveProgressData{
			{ObjectiveID: "ob1", Text: "One", ExercisesTotal: 2, ExercisesCorrect: 2, Status: "completed", NewlyCompleted: true},
		},
		ComputedAt: now.Add(time.Minute),
	})
	if err != nil {
		t.Fatalf("put (replace): %v", err)
	}

	snap, err = repo.Get(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("get (replaced): %v", err)
	}
	if snap.Items[0].Status != "completed" || !snap.Items[0].NewlyCompleted {
		t.Errorf("items = %+v, want completed+newly", snap.Items)
	}

	count, err := s.Client().ProgressSnapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("snapshot rows = %d, want 1", count)
	}
}

func TestOutboxLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.OutboxRepo()
	ctx := context.Background()

	now := time.Now().UTC()
	entry := &OutboxEntry{
		SessionID:     "s1",
		UserID:        "local",
		UnitID:        "u1",
		Payload:       map[string]any{"session_id": "s1"},
		NextAttemptAt: now,
	}
	if err := repo.Enqueue(ctx, entry); err != nil {
		t.Fatalf("enqueue: %v", err)
	}
	// Duplicate enqueue of the same session is a no-op.
	if err := repo.Enqueue(ctx, entry); err != nil {
		t.Fatalf("enqueue (dup): %v", err)
	}

	pending, err := repo.Pending(ctx)
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if pending != 1 {
		t.Fatalf("pending = %d, want 1", pending)
	}

	due, err := repo.Due(ctx, now.Add(time.Second), 0)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 {
		t.Fatalf("due = %d, want 1", len(due))
	}

	// Failed attempt pushes the entry beyond the horizon.
	later := now.Add(time.Hour)
	if err := repo.RecordFailure(ctx, due[0].ID, later); err != nil {
		t.Fatalf("record failure: %v", err)
	}
	due, err = repo.Due(ctx, now.Add(time.Second), 0)
	if err != nil {
		t.Fatalf("due (after failure): %v", err)
	}
	if len(due) != 0 {
		t.Fatalf("due = %d, want 0 after reschedule", len(due))
	}

	due, err = repo.Due(ctx, later.Add(time.Second), 0)
	if err != nil {
		t.Fatalf("due (past reschedule): %v", err)
	}
	if len(due) != 1 || due[0].Attempts != 1 {
		t.Fatalf("due = %+v, want one entry with attempts=1", due)
	}

	if err := repo.Ack(ctx, due[0].ID); err != nil {
		t.Fatalf("ack: %v", err)
	}
	pending, err = repo.Pending(ctx)
	if err != nil {
		t.Fatalf("pending (after ack): %v", err)
	}
	if pending != 0 {
		t.Errorf("pending = %d, want 0", pending)
	}
}

func TestResetLearnerDataKeepsContent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	err := s.ContentRepo().PutUnit(ctx, &Unit{
		UnitID:     "u1",
		Title:      "Fractions",
		Objectives: []Objective{{ID: "ob1", Text: "One"}},
	})
	if err != nil {
		t.Fatalf("put unit: %v", err)
	}
	mustAppendSession(t, s.SessionRepo(), "s1", true, []OutcomeData{
		{SessionID: "s1", UserID: "local", UnitID: "u1", LessonID: "l1", ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
	})

	if err := s.ResetLearnerData(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	records, err := s.SessionRepo().FinalizedRecords(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("finalized records: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("records = %d, want 0 after reset", len(records))
	}

	u, err := s.ContentRepo().Unit(ctx, "u1")
	if err != nil {
		t.Fatalf("unit: %v", err)
	}
	if u == nil {
		t.Error("expected content to survive reset")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

// mustAppendSession writes a start event, the given outcomes, and
// (when finalize is set) a complete event for the session.
func mustAppendSession(t *testing.T, repo SessionRepo, sessionID string, finalize bool, outcomes []OutcomeData) {
	t.Helper()
	ctx := context.Background()

	var userID, unitID, lessonID string
	if len(outcomes) > 0 {
		userID, unitID, lessonID = outcomes[0].UserID, outcomes[0].UnitID, outcomes[0].LessonID
	} else {
		userID, unitID, lessonID = "local", "u1", "l1"
	}

	err := repo.AppendStart(ctx, SessionStartData{
		SessionID: sessionID, UserID: userID, UnitID: unitID, LessonID: lessonID,
	})
	if err != nil {
		t.Fatalf("append start: %v", err)
	}

	correct := 0
	for _, o := range outcomes {
		if err := repo.AppendOutcome(ctx, o); err != nil {
			t.Fatalf("append outcome: %v", err)
		}
		if o.Correct {
			correct++
		}
	}

	if finalize {
		err := repo.AppendComplete(ctx, SessionCompleteData{
			SessionID:         sessionID,
			UserID:            userID,
			UnitID:            unitID,
			LessonID:          lessonID,
			ExercisesAnswered: len(outcomes),
			ExercisesCorrect:  correct,
		})
		if err != nil {
			t.Fatalf("append complete: %v", err)
		}
	}
}
