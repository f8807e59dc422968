package store

import (
	"context"
	"time"
)

// Objective is one canonical learning objective of a unit.
type Objective struct {
	ID   string
	Text string
}

// Unit is a locally cached learning unit. Units are read-only once
// imported: the objective list is canonical and in display order.
type Unit struct {
	UnitID      string
	Title       string
	Objectives  []Objective
	LessonOrder []string
	ImportedAt  time.Time
}

// Exercise is one exercise within a lesson package, tagged with
// exactly one objective of the owning unit.
type Exercise struct {
	ID          string
	ObjectiveID string
	Prompt      string
	Choices     []string
	AnswerIndex int
}

// LessonPackage is the locally cached content for one lesson.
type LessonPackage struct {
	PackageID  string
	UnitID     string
	Title      string
	Position   int
	Exercises  []Exercise
	ImportedAt time.Time
}

// ContentRepo provides access to the local content cache. All reads
// are purely local; nothing here touches the network.
type ContentRepo interface {
	// PutUnit stores a unit, replacing any previous version.
	PutUnit(ctx context.Context, u *Unit) error

	// PutLessonPackage stores a lesson package, replacing any previous version.
	PutLessonPackage(ctx context.Context, lp *LessonPackage) error

	// Unit returns the unit with the given ID, or nil if not cached.
	Unit(ctx context.Context, unitID string) (*Unit, error)

	// Units returns all cached units ordered by title.
	Units(ctx context.Context) ([]*Unit, error)

	// LessonPackages returns the cached lesson packages of a unit
	// ordered by position. Empty for a unit with no lessons cached yet.
	LessonPackages(ctx context.Context, unitID string) ([]*LessonPackage, error)

	// PruneLessonPackages deletes the unit's cached packages whose IDs
	// are not in keep. Run on re-import so a bundle that drops a
	// lesson also drops its stale exercises.
	PruneLessonPackages(ctx context.Context, unitID string, keep []string) error
}

// Outcome is one recorded exercise outcome within a session.
type Outcome struct {
	ExerciseID  string
	ObjectiveID string
	Correct     bool
	AttemptedAt time.Time
}

// SessionRecord is one user's attempt at one lesson, reconstructed
// from the session and outcome event tables.
type SessionRecord struct {
	SessionID   string
	UserID      string
	UnitID      string
	LessonID    string
	StartedAt   time.Time
	CompletedAt time.Time
	Outcomes    []Outcome
}

// SessionStartData captures a session start event.
type SessionStartData struct {
	SessionID string
	UserID    string
	UnitID    string
	LessonID  string
}

// SessionCompleteData captures a session finalize event.
type SessionCompleteData struct {
	SessionID         string
	UserID            string
	UnitID            string
	LessonID          string
	ExercisesAnswered int
	ExercisesCorrect  int
}

// OutcomeData captures a single exercise outcome event.
type OutcomeData struct {
	SessionID   string
	UserID      string
	UnitID      string
	LessonID    string
	ExerciseID  string
	ObjectiveID string
	Correct     bool
}

// SessionRepo provides append access to the session event log and
// read access to reconstructed session records.
type SessionRepo interface {
	// AppendStart records a session start event.
	AppendStart(ctx context.Context, data SessionStartData) error

	// AppendOutcome records one exercise outcome. Append-only: a retry
	// of the same exercise adds a new event, it never edits history.
	AppendOutcome(ctx context.Context, data OutcomeData) error

	// AppendComplete records a session finalize event.
	AppendComplete(ctx context.Context, data SessionCompleteData) error

	// FinalizedRecords returns every finalized session of the user in
	// the unit, each with its outcomes in recorded order. Sessions
	// without a complete event are in progress and excluded.
	FinalizedRecords(ctx context.Context, unitID, userID string) ([]*SessionRecord, error)

	// FinalizedRecord returns one finalized session by ID, or nil if
	// it doesn't exist or isn't finalized yet.
	FinalizedRecord(ctx context.Context, sessionID string) (*SessionRecord, error)
}

// ObjectiveProgressData is the persisted form of one objective's progress.
type ObjectiveProgressData struct {
	ObjectiveID      string
	Text             string
	ExercisesTotal   int
	ExercisesCorrect int
	Status           string
	NewlyCompleted   bool
}

// ProgressSnapshot is the most recently computed per-objective
// progress for one (unit, user) pair.
type ProgressSnapshot struct {
	UnitID     string
	UserID     string
	Items      []ObjectiveProgressData
	ComputedAt time.Time
}

// SnapshotRepo manages progress snapshots, one per (unit, user) pair.
type SnapshotRepo interface {
	// Get returns the cached snapshot, or nil if none exists.
	Get(ctx context.Context, unitID, userID string) (*ProgressSnapshot, error)

	// Put replaces the snapshot for the pair atomically. Either the
	// whole new snapshot lands or the previous one stays intact.
	Put(ctx context.Context, snap *ProgressSnapshot) error
}

// OutboxEntry is one finalized session queued for upload.
type OutboxEntry struct {
	ID            int
	SessionID     string
	UserID        string
	UnitID        string
	Payload       map[string]any
	Attempts      int
	NextAttemptAt time.Time
	CreatedAt     time.Time
}

// OutboxRepo manages the durable upload queue. The progress engine
// never reads it; it is owned by the sync path alone.
type OutboxRepo interface {
	// Enqueue adds an entry for a finalized session. Enqueueing the
	// same session twice is a no-op.
	Enqueue(ctx context.Context, entry *OutboxEntry) error

	// Due returns entries whose next attempt time has passed, oldest
	// first, up to limit (0 = all).
	Due(ctx context.Context, now time.Time, limit int) ([]*OutboxEntry, error)

	// RecordFailure bumps the attempt count and reschedules the entry.
	RecordFailure(ctx context.Context, id int, nextAttemptAt time.Time) error

	// Ack deletes an entry after confirmed upload.
	Ack(ctx context.Context, id int) error

	// Pending returns the number of queued entries.
	Pending(ctx context.Context) (int, error)
}
