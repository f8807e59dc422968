package progress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lernio/lernio/internal/store"
)

// fixture is an in-memory implementation of the engine's three reader
// interfaces.
type fixture struct {
	units     map[string]*store.Unit
	packages  map[string][]*store.LessonPackage
	records   []*store.SessionRecord
	snapshots map[string]*store.ProgressSnapshot

	unitErr     error
	snapshotErr error
}

func newFixture() *fixture {
	return &fixture{
		units:     make(map[string]*store.Unit),
		packages:  make(map[string][]*store.LessonPackage),
		snapshots: make(map[string]*store.ProgressSnapshot),
	}
}

func (f *fixture) Unit(_ context.Context, unitID string) (*store.Unit, error) {
	if f.unitErr != nil {
		return nil, f.unitErr
	}
	return f.units[unitID], nil
}

func (f *fixture) LessonPackages(_ context.Context, unitID string) ([]*store.LessonPackage, error) {
	return f.packages[unitID], nil
}

func (f *fixture) FinalizedRecords(_ context.Context, unitID, userID string) ([]*store.SessionRecord, error) {
	var out []*store.SessionRecord
	for _, rec := range f.records {
		if rec.UnitID == unitID && rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fixture) FinalizedRecord(_ context.Context, sessionID string) (*store.SessionRecord, error) {
	for _, rec := range f.records {
		if rec.SessionID == sessionID {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fixture) Get(_ context.Context, unitID, userID string) (*store.ProgressSnapshot, error) {
	if f.snapshotErr != nil {
		return nil, f.snapshotErr
	}
	return f.snapshots[unitID+"/"+userID], nil
}

func (f *fixture) Put(_ context.Context, snap *store.ProgressSnapshot) error {
	if f.snapshotErr != nil {
		return f.snapshotErr
	}
	f.snapshots[snap.UnitID+"/"+snap.UserID] = snap
	return nil
}

// seedUnit installs the unit used by most tests: two objectives, one
// lesson with exercises e1,e2 on ob1 and e3 on ob2.
func (f *fixture) seedUnit() {
	f.units["u1"] = &store.Unit{
		UnitID: "u1",
		Title:  "Fractions",
		Objectives: []store.Objective{
			{ID: "ob1", Text: "Understand halves"},
			{ID: "ob2", Text: "Compare fractions"},
		},
		LessonOrder: []string{"l1"},
	}
	f.packages["u1"] = []*store.LessonPackage{
		{
			PackageID: "l1",
			UnitID:    "u1",
			Exercises: []store.Exercise{
				{ID: "e1", ObjectiveID: "ob1"},
				{ID: "e2", ObjectiveID: "ob1"},
				{ID: "e3", ObjectiveID: "ob2"},
			},
		},
	}
}

func (f *fixture) addSession(sessionID string, outcomes ...store.Outcome) {
	f.records = append(f.records, &store.SessionRecord{
		SessionID:   sessionID,
		UserID:      "local",
		UnitID:      "u1",
		LessonID:    "l1",
		StartedAt:   time.Now(),
		CompletedAt: time.Now(),
		Outcomes:    outcomes,
	})
}

func newTestService(f *fixture) *Service {
	return NewService(f, f, f)
}

func itemByID(t *testing.T, p *UnitProgress, objectiveID string) ObjectiveProgress {
	t.Helper()
	for _, item := range p.Items {
		if item.ObjectiveID == objectiveID {
			return item
		}
	}
	t.Fatalf("objective %s not in result", objectiveID)
	return ObjectiveProgress{}
}

func TestNoSessionsAllNotStarted(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	svc := newTestService(f)

	p, err := svc.ComputeUnitProgress(context.Background(), "u1", "local", "")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if len(p.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(p.Items))
	}
	ob1 := itemByID(t, p, "ob1")
	if ob1.ExercisesTotal != 2 || ob1.ExercisesCorrect != 0 || ob1.Status != StatusNotStarted {
		t.Errorf("ob1 = %+v, want 0/2 not_started", ob1)
	}
	ob2 := itemByID(t, p, "ob2")
	if ob2.ExercisesTotal != 1 || ob2.ExercisesCorrect != 0 || ob2.Status != StatusNotStarted {
		t.Errorf("ob2 = %+v, want 0/1 not_started", ob2)
	}
}

func TestFirstComputationNeverFlagsNewlyCompleted(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
		store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: false},
		store.Outcome{ExerciseID: "e3", ObjectiveID: "ob2", Correct: true},
	)
	svc := newTestService(f)

	p, err := svc.ComputeUnitProgress(context.Background(), "u1", "local", "s1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	ob1 := itemByID(t, p, "ob1")
	if ob1.ExercisesCorrect != 1 || ob1.Status != StatusPartial || ob1.NewlyCompleted {
		t.Errorf("ob1 = %+v, want 1/2 partial, not newly completed", ob1)
	}
	// ob2 reached completed, but there is no prior snapshot to diff
	// against, so nothing counts as newly completed.
	ob2 := itemByID(t, p, "ob2")
	if ob2.Status != StatusCompleted || ob2.NewlyCompleted {
		t.Errorf("ob2 = %+v, want completed but not newly completed", ob2)
	}
}

func TestNewlyCompletedOnTransitionOnly(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
		store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: false},
		store.Outcome{ExerciseID: "e3", ObjectiveID: "ob2", Correct: true},
	)
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.ComputeUnitProgress(ctx, "u1", "local", "s1"); err != nil {
		t.Fatalf("first compute: %v", err)
	}

	// Second session fixes e2, completing ob1.
	f.addSession("s2", store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: true})

	p, err := svc.ComputeUnitProgress(ctx, "u1", "local", "s2")
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	ob1 := itemByID(t, p, "ob1")
	if ob1.ExercisesCorrect != 2 || ob1.Status != StatusCompleted || !ob1.NewlyCompleted {
		t.Errorf("ob1 = %+v, want 2/2 completed and newly completed", ob1)
	}
	// ob2 was already completed in the previous snapshot.
	ob2 := itemByID(t, p, "ob2")
	if ob2.Status != StatusCompleted || ob2.NewlyCompleted {
		t.Errorf("ob2 = %+v, want completed but not newly completed", ob2)
	}
}

func TestIncorrectRetryNeverRegresses(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
		store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: true},
	)
	svc := newTestService(f)
	ctx := context.Background()

	p, err := svc.ComputeUnitProgress(ctx, "u1", "local", "s1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if itemByID(t, p, "ob1").Status != StatusCompleted {
		t.Fatal("ob1 should be completed after s1")
	}

	// Retry both exercises and get them wrong.
	f.addSession("s2",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: false},
		store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: false},
	)

	p, err = svc.ComputeUnitProgress(ctx, "u1", "local", "s2")
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	ob1 := itemByID(t, p, "ob1")
	if ob1.Status != StatusCompleted || ob1.ExercisesCorrect != 2 {
		t.Errorf("ob1 = %+v, want completion to survive incorrect retries", ob1)
	}
	if ob1.NewlyCompleted {
		t.Error("already-completed objective flagged newly completed")
	}
}

func TestRepeatsDontInflateCounts(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	// e1 answered three times across two sessions.
	f.addSession("s1",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: false},
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
	)
	f.addSession("s2", store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true})
	svc := newTestService(f)

	p, err := svc.ComputeUnitProgress(context.Background(), "u1", "local", "")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	ob1 := itemByID(t, p, "ob1")
	if ob1.ExercisesTotal != 2 || ob1.ExercisesCorrect != 1 {
		t.Errorf("ob1 = %+v, want total 2 and correct 1 despite repeats", ob1)
	}
	if ob1.Status != StatusPartial {
		t.Errorf("ob1 status = %s, want partial", ob1.Status)
	}
}

func TestZeroExerciseObjectiveStaysNotStarted(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.units["u1"].Objectives = append(f.units["u1"].Objectives,
		store.Objective{ID: "ob3", Text: "No exercises yet"})
	f.addSession("s1", store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true})
	svc := newTestService(f)

	p, err := svc.ComputeUnitProgress(context.Background(), "u1", "local", "s1")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	ob3 := itemByID(t, p, "ob3")
	if ob3.ExercisesTotal != 0 || ob3.Status != StatusNotStarted || ob3.NewlyCompleted {
		t.Errorf("ob3 = %+v, want 0 exercises, not_started, not newly completed", ob3)
	}
}

func TestNoLessonsCachedIsNotAnError(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.packages["u1"] = nil
	svc := newTestService(f)

	p, err := svc.ComputeUnitProgress(context.Background(), "u1", "local", "")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	for _, item := range p.Items {
		if item.ExercisesTotal != 0 || item.Status != StatusNotStarted {
			t.Errorf("item %s = %+v, want 0-total not_started", item.ObjectiveID, item)
		}
	}
}

func TestIdempotentWithoutNewData(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1",
		store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true},
		store.Outcome{ExerciseID: "e2", ObjectiveID: "ob1", Correct: true},
		store.Outcome{ExerciseID: "e3", ObjectiveID: "ob2", Correct: true},
	)
	svc := newTestService(f)
	ctx := context.Background()

	first, err := svc.ComputeUnitProgress(ctx, "u1", "local", "s1")
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := svc.ComputeUnitProgress(ctx, "u1", "local", "s1")
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}

	for i := range first.Items {
		a, b := first.Items[i], second.Items[i]
		if a.ExercisesTotal != b.ExercisesTotal || a.ExercisesCorrect != b.ExercisesCorrect || a.Status != b.Status {
			t.Errorf("item %s changed between identical runs: %+v vs %+v", a.ObjectiveID, a, b)
		}
		if b.NewlyCompleted {
			t.Errorf("item %s newly completed on a re-run with no new data", b.ObjectiveID)
		}
	}
}

func TestUnitNotCached(t *testing.T) {
	f := newFixture()
	svc := newTestService(f)

	_, err := svc.ComputeUnitProgress(context.Background(), "ghost", "local", "")
	if !errors.Is(err, ErrUnitNotCached) {
		t.Errorf("err = %v, want ErrUnitNotCached", err)
	}
}

func TestInvalidArguments(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.records = append(f.records, &store.SessionRecord{
		SessionID: "other", UserID: "local", UnitID: "u2", LessonID: "lx",
	})
	svc := newTestService(f)
	ctx := context.Background()

	tests := []struct {
		name                  string
		unitID, userID, sessionID string
	}{
		{"empty unit", "", "local", ""},
		{"empty user", "u1", "", ""},
		{"unknown session", "u1", "local", "ghost"},
		{"session from another unit", "u1", "local", "other"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ComputeUnitProgress(ctx, tt.unitID, tt.userID, tt.sessionID)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("err = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestStorageFailureLeavesSnapshotIntact(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1", store.Outcome{ExerciseID: "e1", ObjectiveID: "ob1", Correct: true})
	svc := newTestService(f)
	ctx := context.Background()

	if _, err := svc.ComputeUnitProgress(ctx, "u1", "local", ""); err != nil {
		t.Fatalf("compute: %v", err)
	}
	before := f.snapshots["u1/local"]

	f.snapshotErr = errors.New("disk full")
	if _, err := svc.ComputeUnitProgress(ctx, "u1", "local", ""); err == nil {
		t.Fatal("expected storage error to propagate")
	}
	f.snapshotErr = nil

	if f.snapshots["u1/local"] != before {
		t.Error("failed computation must not replace the snapshot")
	}
}

func TestCachedUnitProgress(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	svc := newTestService(f)
	ctx := context.Background()

	p, err := svc.CachedUnitProgress(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("cached (empty): %v", err)
	}
	if p != nil {
		t.Fatal("expected nil before any computation")
	}

	if _, err := svc.ComputeUnitProgress(ctx, "u1", "local", ""); err != nil {
		t.Fatalf("compute: %v", err)
	}

	p, err = svc.CachedUnitProgress(ctx, "u1", "local")
	if err != nil {
		t.Fatalf("cached: %v", err)
	}
	if p == nil || len(p.Items) != 2 {
		t.Fatalf("cached = %+v, want the stored snapshot", p)
	}
}

func TestDisplayComputationDoesNotFlagNewlyCompleted(t *testing.T) {
	f := newFixture()
	f.seedUnit()
	f.addSession("s1",
		store.Outcome{ExerciseID: "e3", ObjectiveID: "ob2", Correct: true},
	)
	svc := newTestService(f)
	ctx := context.Background()

	// Prior snapshot exists with ob2 incomplete.
	f.snapshots["u1/local"] = &store.ProgressSnapshot{
		UnitID: "u1", UserID: "local",
		Items: []store.ObjectiveProgressData{
			{ObjectiveID: "ob1", Status: string(StatusNotStarted)},
			{ObjectiveID: "ob2", Status: string(StatusNotStarted)},
		},
	}

	// On-demand display recomputation, no just-completed session.
	p, err := svc.ComputeUnitProgress(ctx, "u1", "local", "")
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	ob2 := itemByID(t, p, "ob2")
	if ob2.Status != StatusCompleted || ob2.NewlyCompleted {
		t.Errorf("ob2 = %+v, want completed without the newly flag", ob2)
	}
}
