package lesson

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screens/results"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
)

// fakeContentRepo implements store.ContentRepo for testing.
type fakeContentRepo struct {
	unit     *store.Unit
	packages []*store.LessonPackage
}

func (f *fakeContentRepo) PutUnit(_ context.Context, u *store.Unit) error {
	f.unit = u
	return nil
}
func (f *fakeContentRepo) PutLessonPackage(_ context.Context, lp *store.LessonPackage) error {
	f.packages = append(f.packages, lp)
	return nil
}
func (f *fakeContentRepo) Unit(_ context.Context, unitID string) (*store.Unit, error) {
	if f.unit != nil && f.unit.UnitID == unitID {
		return f.unit, nil
	}
	return nil, nil
}
func (f *fakeContentRepo) Units(_ context.Context) ([]*store.Unit, error) {
	if f.unit == nil {
		return nil, nil
	}
	return []*store.Unit{f.unit}, nil
}
func (f *fakeContentRepo) LessonPackages(_ context.Context, unitID string) ([]*store.LessonPackage, error) {
	var out []*store.LessonPackage
	for _, lp := range f.packages {
		if lp.UnitID == unitID {
			out = append(out, lp)
		}
	}
	return out, nil
}
func (f *fakeContentRepo) PruneLessonPackages(_ context.Context, unitID string, keep []string) error {
	kept := make(map[string]bool, len(keep))
	for _, id := range keep {
		kept[id] = true
	}
	var out []*store.LessonPackage
	for _, lp := range f.packages {
		if lp.UnitID == unitID && !kept[lp.PackageID] {
			continue
		}
		out = append(out, lp)
	}
	f.packages = out
	return nil
}

// fakeSessionRepo implements store.SessionRepo over in-memory event lists.
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
		out = append(out, f.record(c))
	}
	return out, nil
}
func (f *fakeSessionRepo) FinalizedRecord(_ context.Context, sessionID string) (*store.SessionRecord, error) {
	for _, c := range f.completes {
		if c.SessionID == sessionID {
			return f.record(c), nil
		}
	}
	return nil, nil
}

func (f *fakeSessionRepo) record(c store.SessionCompleteData) *store.SessionRecord {
	rec := &store.SessionRecord{
		SessionID:   c.SessionID,
		UserID:      c.UserID,
		UnitID:      c.UnitID,
		LessonID:    c.LessonID,
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
	}
	for _, o := range f.outcomes {
		if o.SessionID == c.SessionID {
			rec.Outcomes = append(rec.Outcomes, store.Outcome{
				ExerciseID:  o.ExerciseID,
				ObjectiveID: o.ObjectiveID,
				Correct:     o.Correct,
			})
		}
	}
	return rec
}

// fakeOutboxRepo implements store.OutboxRepo for testing.
type fakeOutboxRepo struct {
	entries []*store.OutboxEntry
}

func (f *fakeOutboxRepo) Enqueue(_ context.Context, entry *store.OutboxEntry) error {
	for _, e := range f.entries {
		if e.SessionID == entry.SessionID {
			return nil
		}
	}
	f.entries = append(f.entries, entry)
	return nil
}
func (f *fakeOutboxRepo) Due(_ context.Context, _ time.Time, _ int) ([]*store.OutboxEntry, error) {
	return f.entries, nil
}
func (f *fakeOutboxRepo) RecordFailure(_ context.Context, _ int, _ time.Time) error { return nil }
func (f *fakeOutboxRepo) Ack(_ context.Context, _ int) error                        { return nil }
func (f *fakeOutboxRepo) Pending(_ context.Context) (int, error)                    { return len(f.entries), nil }

// fakeSnapshots implements progress.SnapshotStore for testing.
type fakeSnapshots struct {
	snaps map[string]*store.ProgressSnapshot
}

func (f *fakeSnapshots) Get(_ context.Context, unitID, userID string) (*store.ProgressSnapshot, error) {
	return f.snaps[unitID+"/"+userID], nil
}
func (f *fakeSnapshots) Put(_ context.Context, snap *store.ProgressSnapshot) error {
	if f.snaps == nil {
		f.snaps = make(map[string]*store.ProgressSnapshot)
	}
	f.snaps[snap.UnitID+"/"+snap.UserID] = snap
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testFixture() (*LessonScreen, *fakeSessionRepo, *fakeOutboxRepo) {
	content := &fakeContentRepo{
		unit: &store.Unit{
			UnitID: "unit-1",
			Title:  "Fractions",
			Objectives: []store.Objective{
				{ID: "ob-1", Text: "Compare fractions"},
			},
			LessonOrder: []string{"lp-1", "lp-2"},
		},
		packages: []*store.LessonPackage{
			{
				PackageID: "lp-1",
				UnitID:    "unit-1",
				Title:     "Halves",
				Position:  1,
				Exercises: []store.Exercise{
					{ID: "ex-1", ObjectiveID: "ob-1", Prompt: "1/2 vs 1/3?", Choices: []string{"1/2", "1/3"}, AnswerIndex: 0},
					{ID: "ex-2", ObjectiveID: "ob-1", Prompt: "1/4 vs 1/2?", Choices: []string{"1/4", "1/2"}, AnswerIndex: 1},
				},
			},
			{
				PackageID: "lp-2",
				UnitID:    "unit-1",
				Title:     "Thirds",
				Position:  2,
				Exercises: []store.Exercise{
					{ID: "ex-3", ObjectiveID: "ob-1", Prompt: "1/3 vs 1/6?", Choices: []string{"1/3", "1/6"}, AnswerIndex: 0},
				},
			},
		},
	}
	sessions := &fakeSessionRepo{}
	outbox := &fakeOutboxRepo{}
	recorder := sessionlog.NewRecorder(sessions, outbox)
	svc := progress.NewService(content, sessions, &fakeSnapshots{})

	return New(content, recorder, svc, "learner-1", "unit-1", "lp-1"), sessions, outbox
}

// startLesson runs the load command and feeds the resulting message back in.
func startLesson(t *testing.T, l *LessonScreen) {
	t.Helper()
	msg := l.start()()
	ready, ok := msg.(lessonReadyMsg)
	if !ok {
		t.Fatalf("expected lessonReadyMsg, got %T", msg)
	}
	if ready.Err != nil {
		t.Fatalf("lesson start failed: %v", ready.Err)
	}
	l.Update(ready)
}

func TestLessonScreen_StartsSession(t *testing.T) {
	l, sessions, _ := testFixture()
	startLesson(t, l)

	if len(sessions.starts) != 1 {
		t.Fatalf("expected 1 start event, got %d", len(sessions.starts))
	}
	if sessions.starts[0].LessonID != "lp-1" {
		t.Errorf("start LessonID = %q, want %q", sessions.starts[0].LessonID, "lp-1")
	}
	if l.Title() != "Halves" {
		t.Errorf("Title = %q, want %q", l.Title(), "Halves")
	}
}

func TestLessonScreen_AnswerRecordsOutcome(t *testing.T) {
	l, sessions, _ := testFixture()
	startLesson(t, l)

	// "1" answers with the first choice, which is correct for ex-1.
	l.Update(keyPress('1'))

	if len(sessions.outcomes) != 1 {
		t.Fatalf("expected 1 outcome event, got %d", len(sessions.outcomes))
	}
	o := sessions.outcomes[0]
	if o.ExerciseID != "ex-1" || !o.Correct {
		t.Errorf("outcome = %+v, want correct ex-1", o)
	}
}

func TestLessonScreen_WrongAnswerRecordedIncorrect(t *testing.T) {
	l, sessions, _ := testFixture()
	startLesson(t, l)

	l.Update(keyPress('2'))

	if len(sessions.outcomes) != 1 {
		t.Fatalf("expected 1 outcome event, got %d", len(sessions.outcomes))
	}
	if sessions.outcomes[0].Correct {
		t.Error("expected incorrect outcome")
	}
}

func TestLessonScreen_CompletesAndShowsResults(t *testing.T) {
	l, sessions, outbox := testFixture()
	startLesson(t, l)

	// Answer first exercise, dismiss feedback.
	l.Update(keyPress('1'))
	l.Update(keyPress(' '))

	// Answer second exercise; dismissing feedback triggers finalize.
	l.Update(keyPress('2'))
	_, cmd := l.handleKey(keyPress(' '))
	if cmd == nil {
		t.Fatal("expected finalize command after last exercise")
	}
	done, ok := l.finalize()().(lessonDoneMsg)
	if !ok {
		t.Fatal("expected lessonDoneMsg")
	}
	if done.Err != nil || done.AggregateErr != nil {
		t.Fatalf("finalize failed: %v / %v", done.Err, done.AggregateErr)
	}
	if done.Progress == nil {
		t.Fatal("expected computed progress")
	}
	if done.Next == nil || done.Next.PackageID != "lp-2" {
		t.Fatalf("Next = %+v, want lp-2", done.Next)
	}

	if len(sessions.completes) != 1 {
		t.Fatalf("expected 1 complete event, got %d", len(sessions.completes))
	}
	if len(outbox.entries) != 1 {
		t.Fatalf("expected 1 outbox entry, got %d", len(outbox.entries))
	}

	// The done message must hand off to the results screen.
	_, cmd = l.Update(done)
	if cmd == nil {
		t.Fatal("expected a replace command")
	}
	replace, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	if _, ok := replace.Screen.(*results.ResultsScreen); !ok {
		t.Errorf("expected results screen, got %T", replace.Screen)
	}
}

func TestLessonScreen_NoNextWhenNextLessonAlreadyFinished(t *testing.T) {
	l, sessions, _ := testFixture()

	// The learner already finished Thirds in an earlier session, so the
	// results screen must not offer it again.
	sessions.completes = append(sessions.completes, store.SessionCompleteData{
		SessionID: "earlier-session",
		UserID:    "learner-1",
		UnitID:    "unit-1",
		LessonID:  "lp-2",
	})

	startLesson(t, l)
	l.Update(keyPress('1'))
	l.Update(keyPress(' '))
	l.Update(keyPress('2'))

	done, ok := l.finalize()().(lessonDoneMsg)
	if !ok {
		t.Fatal("expected lessonDoneMsg")
	}
	if done.Err != nil {
		t.Fatalf("finalize failed: %v", done.Err)
	}
	if done.Next != nil {
		t.Errorf("Next = %q, want none", done.Next.PackageID)
	}
}

func TestLessonScreen_AbandonLeavesSessionUnfinalized(t *testing.T) {
	l, sessions, _ := testFixture()
	startLesson(t, l)

	l.Update(keyPress('1'))
	l.Update(keyPress(' '))

	// Esc opens the confirm dialog, y leaves.
	l.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := l.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a pop command on confirmed abandon")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if len(sessions.completes) != 0 {
		t.Errorf("expected no complete events, got %d", len(sessions.completes))
	}
}

func TestLessonScreen_EscThenNoKeepsGoing(t *testing.T) {
	l, _, _ := testFixture()
	startLesson(t, l)

	l.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	l.Update(keyPress('n'))

	if l.showingQuit {
		t.Error("expected quit dialog to close on n")
	}
}
