package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screen"
	"github.com/lernio/lernio/internal/store"
	"github.com/lernio/lernio/internal/ui/layout"
	"github.com/lernio/lernio/internal/ui/theme"
)

// Params carries everything the results screen needs: the finished
// session's stats, the freshly computed progress (or the error that
// prevented computing it), and a way to open follow-up lessons.
type Params struct {
	Progress *progress.Service
	UserID   string

	Unit   *store.Unit
	Lesson *store.LessonPackage
	Next   *store.LessonPackage

	SessionID string
	Answered  int
	Correct   int

	UnitProgress *progress.UnitProgress
	AggregateErr error

	// OpenLesson builds a lesson screen for the given package. Injected
	// by the caller so this package does not depend on the lesson one.
	OpenLesson func(pkgID string) screen.Screen
}

// retryMsg carries the outcome of re-running the progress computation
// after a failure.
type retryMsg struct {
	Progress *progress.UnitProgress
	Err      error
}

// ResultsScreen shows the end-of-lesson objective breakdown.
type ResultsScreen struct {
	params   Params
	retrying bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a new ResultsScreen.
func New(params Params) *ResultsScreen {
	return &ResultsScreen{params: params}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

func (r *ResultsScreen) degraded() bool {
	return r.params.UnitProgress == nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if r.params.Next != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Next lesson"})
	}
	if r.degraded() {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry progress"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Retry lesson"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Unit overview"})
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case retryMsg:
		r.retrying = false
		if msg.Err != nil {
			r.params.AggregateErr = msg.Err
			return r, nil
		}
		r.params.UnitProgress = msg.Progress
		r.params.AggregateErr = nil
		return r, nil

	case tea.KeyMsg:
		if r.retrying {
			return r, nil
		}
		switch msg.String() {
		case "esc":
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if r.params.Next != nil && r.params.OpenLesson != nil {
				next := r.params.OpenLesson(r.params.Next.PackageID)
				return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
			}
			return r, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			if r.degraded() {
				r.retrying = true
				return r, r.retryCompute()
			}
			if r.params.OpenLesson != nil {
				again := r.params.OpenLesson(r.params.Lesson.PackageID)
				return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: again} }
			}
		}
	}
	return r, nil
}

// retryCompute re-runs the aggregation for the session that just
// finished. The outcome log is already persisted, so this is safe to
// repeat any number of times.
func (r *ResultsScreen) retryCompute() tea.Cmd {
	return func() tea.Msg {
		p, err := r.params.Progress.ComputeUnitProgress(context.Background(),
			r.params.Unit.UnitID, r.params.UserID, r.params.SessionID)
		return retryMsg{Progress: p, Err: err}
	}
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Lesson complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s — %d of %d correct",
			r.params.Lesson.Title, r.params.Correct, r.params.Answered)))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Objectives")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if r.retrying {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Updating progress..."))
		return b.String()
	}

	if r.degraded() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Your answers are saved, but progress could not be updated."))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press R to try again."))
		return b.String()
	}

	for _, item := range r.params.UnitProgress.Items {
		line := fmt.Sprintf("  %s    %d/%d    %s",
			item.Text, item.ExercisesCorrect, item.ExercisesTotal,
			statusLabel(item.Status))
		rendered := statusStyle(item.Status).Render(line)
		if item.NewlyCompleted {
			rendered += "  " + lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Success).
				Bold(true).
				Render(" NEW ")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rendered))
		b.WriteString("\n")
	}

	if r.params.Next != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("Up next: %s", r.params.Next.Title)))
	}

	return b.String()
}

func statusLabel(s progress.Status) string {
	switch s {
	case progress.StatusCompleted:
		return "completed"
	case progress.StatusPartial:
		return "in progress"
	default:
		return "not started"
	}
}

func statusStyle(s progress.Status) lipgloss.Style {
	switch s {
	case progress.StatusCompleted:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case progress.StatusPartial:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
