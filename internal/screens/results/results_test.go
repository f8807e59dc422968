package results

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screen"
	"github.com/lernio/lernio/internal/store"
)

func testUnit() *store.Unit {
	return &store.Unit{
		UnitID: "unit-fractions",
		Title:  "Fractions",
		Objectives: []store.Objective{
			{ID: "ob-1", Text: "Compare fractions"},
			{ID: "ob-2", Text: "Add fractions"},
		},
	}
}

func testLesson() *store.LessonPackage {
	return &store.LessonPackage{
		PackageID: "lp-1",
		UnitID:    "unit-fractions",
		Title:     "Comparing halves",
		Position:  1,
	}
}

func testProgress() *progress.UnitProgress {
	return &progress.UnitProgress{
		UnitID:     "unit-fractions",
		UserID:     "learner-1",
		ComputedAt: time.Now(),
		Items: []progress.ObjectiveProgress{
			{
				ObjectiveID:      "ob-1",
				Text:             "Compare fractions",
				ExercisesTotal:   4,
				ExercisesCorrect: 4,
				Status:           progress.StatusCompleted,
				NewlyCompleted:   true,
			},
			{
				ObjectiveID:      "ob-2",
				Text:             "Add fractions",
				ExercisesTotal:   5,
				ExercisesCorrect: 2,
				Status:           progress.StatusPartial,
			},
		},
	}
}

func testParams() Params {
	return Params{
		UserID:       "learner-1",
		Unit:         testUnit(),
		Lesson:       testLesson(),
		SessionID:    "sess-1",
		Answered:     6,
		Correct:      5,
		UnitProgress: testProgress(),
	}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New(testParams())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_ShowsObjectiveRows(t *testing.T) {
	s := New(testParams())
	view := s.View(80, 24)
	if !strings.Contains(view, "Compare fractions") {
		t.Error("expected first objective row in view")
	}
	if !strings.Contains(view, "Add fractions") {
		t.Error("expected second objective row in view")
	}
	if !strings.Contains(view, "NEW") {
		t.Error("expected NEW badge for newly completed objective")
	}
}

func TestResultsScreen_NoBadgeWithoutTransition(t *testing.T) {
	params := testParams()
	params.UnitProgress.Items[0].NewlyCompleted = false
	s := New(params)
	view := s.View(80, 24)
	if strings.Contains(view, "NEW") {
		t.Error("did not expect NEW badge")
	}
}

func TestResultsScreen_Esc_Pops(t *testing.T) {
	s := New(testParams())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Esc")
	}
}

func TestResultsScreen_Enter_WithoutNext_Pops(t *testing.T) {
	s := New(testParams())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg when no next lesson exists")
	}
}

func TestResultsScreen_Enter_WithNext_OpensNextLesson(t *testing.T) {
	opened := ""
	params := testParams()
	params.Next = &store.LessonPackage{PackageID: "lp-2", UnitID: "unit-fractions", Title: "Adding halves", Position: 2}
	params.OpenLesson = func(pkgID string) screen.Screen {
		opened = pkgID
		return nil
	}
	s := New(params)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg when a next lesson exists")
	}
	if opened != "lp-2" {
		t.Errorf("opened lesson = %q, want %q", opened, "lp-2")
	}
}

func TestResultsScreen_Retry_ReopensSameLesson(t *testing.T) {
	opened := ""
	params := testParams()
	params.OpenLesson = func(pkgID string) screen.Screen {
		opened = pkgID
		return nil
	}
	s := New(params)
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg on retry")
	}
	if opened != "lp-1" {
		t.Errorf("opened lesson = %q, want %q", opened, "lp-1")
	}
}

func TestResultsScreen_Degraded_ShowsConfirmation(t *testing.T) {
	params := testParams()
	params.UnitProgress = nil
	params.AggregateErr = errors.New("disk full")
	s := New(params)
	view := s.View(80, 24)
	if !strings.Contains(view, "answers are saved") {
		t.Error("expected completion confirmation in degraded view")
	}
	if strings.Contains(view, "Compare fractions") {
		t.Error("did not expect objective rows in degraded view")
	}
}

func TestResultsScreen_Degraded_RetryRecovers(t *testing.T) {
	params := testParams()
	fresh := params.UnitProgress
	params.UnitProgress = nil
	params.AggregateErr = errors.New("disk full")
	s := New(params)

	updated, _ := s.Update(retryMsg{Progress: fresh})
	view := updated.View(80, 24)
	if !strings.Contains(view, "Compare fractions") {
		t.Error("expected objective rows after successful retry")
	}
}

func TestResultsScreen_KeyHints_NextOnlyWhenAvailable(t *testing.T) {
	s := New(testParams())
	for _, h := range s.KeyHints() {
		if h.Description == "Next lesson" {
			t.Error("did not expect a next-lesson hint without a next lesson")
		}
	}

	params := testParams()
	params.Next = &store.LessonPackage{PackageID: "lp-2"}
	s = New(params)
	found := false
	for _, h := range s.KeyHints() {
		if h.Description == "Next lesson" {
			found = true
		}
	}
	if !found {
		t.Error("expected a next-lesson hint")
	}
}
