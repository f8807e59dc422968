package lesson

import (
	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
)

// lessonReadyMsg is sent when the lesson package is loaded and a
// session has started.
type lessonReadyMsg struct {
	Unit     *store.Unit
	Packages []*store.LessonPackage
	Package  *store.LessonPackage
	Session  *sessionlog.Session
	Err      error
}

// lessonDoneMsg is sent after the final exercise: the session is
// finalized and progress has been recomputed. AggregateErr is set when
// finalization succeeded but the progress computation failed; the
// results screen then degrades to a completion confirmation.
// Next carries the lesson to offer next, or nil when there is none left
// to offer: either the unit is out of lessons, or the next one in order
// was already finished in an earlier session.
type lessonDoneMsg struct {
	Progress     *progress.UnitProgress
	Next         *store.LessonPackage
	AggregateErr error
	Err          error
}
