package lesson

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernio/lernio/internal/content"
	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screen"
	"github.com/lernio/lernio/internal/screens/results"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
	"github.com/lernio/lernio/internal/ui/components"
	"github.com/lernio/lernio/internal/ui/layout"
	"github.com/lernio/lernio/internal/ui/theme"
)

// LessonScreen runs one lesson: it walks the exercises of a lesson
// package, records each outcome, and finalizes the session at the end.
type LessonScreen struct {
	content  store.ContentRepo
	recorder *sessionlog.Recorder
	progress *progress.Service
	userID   string
	unitID   string
	pkgID    string

	unit     *store.Unit
	packages []*store.LessonPackage
	pkg      *store.LessonPackage
	session  *sessionlog.Session

	index       int
	mc          components.MultiChoice
	spinner     components.Spinner
	finalizing  bool
	showingQuit bool
	errMsg      string
}

var _ screen.Screen = (*LessonScreen)(nil)
var _ screen.KeyHintProvider = (*LessonScreen)(nil)

// New creates a new LessonScreen for one lesson package.
func New(contentRepo store.ContentRepo, recorder *sessionlog.Recorder, progressSvc *progress.Service, userID, unitID, pkgID string) *LessonScreen {
	return &LessonScreen{
		content:  contentRepo,
		recorder: recorder,
		progress: progressSvc,
		userID:   userID,
		unitID:   unitID,
		pkgID:    pkgID,
		spinner:  components.NewSpinner("Loading lesson..."),
	}
}

func (l *LessonScreen) Init() tea.Cmd {
	// Re-entry after a pop would restart the lesson mid-session.
	if l.session != nil {
		return nil
	}
	return tea.Batch(l.start(), l.spinner.Init())
}

func (l *LessonScreen) Title() string {
	if l.pkg != nil {
		return l.pkg.Title
	}
	return "Lesson"
}

func (l *LessonScreen) KeyHints() []layout.KeyHint {
	if l.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave lesson"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if l.mc.Submitted {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4/↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Leave"},
	}
}

// start loads the content and opens a session.
func (l *LessonScreen) start() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		unit, err := l.content.Unit(ctx, l.unitID)
		if err != nil {
			return lessonReadyMsg{Err: err}
		}
		if unit == nil {
			return lessonReadyMsg{Err: fmt.Errorf("unit %s is not cached", l.unitID)}
		}
		packages, err := l.content.LessonPackages(ctx, l.unitID)
		if err != nil {
			return lessonReadyMsg{Err: err}
		}
		pkg := content.FindLesson(packages, l.pkgID)
		if pkg == nil {
			return lessonReadyMsg{Err: fmt.Errorf("lesson %s is not cached", l.pkgID)}
		}
		if len(pkg.Exercises) == 0 {
			return lessonReadyMsg{Err: fmt.Errorf("lesson %s has no exercises", l.pkgID)}
		}
		sess, err := l.recorder.Start(ctx, l.userID, l.unitID, l.pkgID)
		if err != nil {
			return lessonReadyMsg{Err: err}
		}
		return lessonReadyMsg{Unit: unit, Packages: packages, Package: pkg, Session: sess}
	}
}

func (l *LessonScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case lessonReadyMsg:
		if msg.Err != nil {
			l.errMsg = msg.Err.Error()
			return l, nil
		}
		l.unit = msg.Unit
		l.packages = msg.Packages
		l.pkg = msg.Package
		l.session = msg.Session
		l.index = 0
		l.mc = newChoice(l.pkg.Exercises[0])
		return l, nil

	case lessonDoneMsg:
		return l.handleDone(msg)

	case tea.KeyMsg:
		return l.handleKey(msg)
	}

	if l.session == nil || l.finalizing {
		var cmd tea.Cmd
		l.spinner, cmd = l.spinner.Update(msg)
		return l, cmd
	}
	return l, nil
}

func (l *LessonScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if l.errMsg != "" {
		return l, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if l.session == nil || l.finalizing {
		return l, nil
	}

	if l.showingQuit {
		switch key {
		case "y", "Y":
			// Abandon: the session stays unfinalized and never
			// counts toward progress.
			return l, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			l.showingQuit = false
		}
		return l, nil
	}

	// Feedback: any key advances.
	if l.mc.Submitted {
		return l.advance()
	}

	switch key {
	case "esc":
		l.showingQuit = true
		return l, nil
	case "1", "2", "3", "4":
		i := int(key[0] - '1')
		if i < len(l.mc.Options) {
			l.mc.Selected = i
			l.mc.Submitted = true
			l.mc.ChosenIndex = i
			return l.recordOutcome()
		}
		return l, nil
	}

	wasSubmitted := l.mc.Submitted
	var cmd tea.Cmd
	l.mc, cmd = l.mc.Update(msg)
	if !wasSubmitted && l.mc.Submitted {
		return l.recordOutcome()
	}
	return l, cmd
}

// recordOutcome appends the outcome for the just-answered exercise.
func (l *LessonScreen) recordOutcome() (screen.Screen, tea.Cmd) {
	ex := l.pkg.Exercises[l.index]
	err := l.recorder.Record(context.Background(), l.session, ex.ID, ex.ObjectiveID, l.mc.IsCorrect())
	if err != nil {
		l.errMsg = err.Error()
	}
	return l, nil
}

// advance moves to the next exercise, or finalizes after the last one.
func (l *LessonScreen) advance() (screen.Screen, tea.Cmd) {
	if l.index+1 < len(l.pkg.Exercises) {
		l.index++
		l.mc = newChoice(l.pkg.Exercises[l.index])
		return l, nil
	}
	l.finalizing = true
	l.spinner.Label = "Wrapping up..."
	return l, tea.Batch(l.finalize(), l.spinner.Init())
}

// finalize completes the session and recomputes unit progress.
func (l *LessonScreen) finalize() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if err := l.recorder.Finalize(ctx, l.session); err != nil {
			return lessonDoneMsg{Err: err}
		}
		next := l.nextLesson(ctx)
		p, err := l.progress.ComputeUnitProgress(ctx, l.unitID, l.userID, l.session.ID)
		if err != nil {
			return lessonDoneMsg{AggregateErr: err, Next: next}
		}
		return lessonDoneMsg{Progress: p, Next: next}
	}
}

// nextLesson picks the lesson the results screen should offer next: the
// one after this lesson in unit order, unless the user has already
// finished it in an earlier session.
func (l *LessonScreen) nextLesson(ctx context.Context) *store.LessonPackage {
	next := content.NextLesson(l.unit, l.packages, l.pkgID)
	if next == nil {
		return nil
	}
	done, err := l.recorder.CompletedLessons(ctx, l.userID, l.unitID)
	if err != nil || done[next.PackageID] {
		return nil
	}
	return next
}

func (l *LessonScreen) handleDone(msg lessonDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		l.finalizing = false
		l.errMsg = msg.Err.Error()
		return l, nil
	}

	params := results.Params{
		Progress:  l.progress,
		UserID:    l.userID,
		Unit:      l.unit,
		Lesson:    l.pkg,
		Next:      msg.Next,
		SessionID: l.session.ID,
		Answered:  l.session.Answered(),
		Correct:   l.session.Correct(),
		OpenLesson: func(pkgID string) screen.Screen {
			return New(l.content, l.recorder, l.progress, l.userID, l.unitID, pkgID)
		},
	}
	if msg.AggregateErr != nil {
		params.AggregateErr = msg.AggregateErr
	} else {
		params.UnitProgress = msg.Progress
	}

	// Replace rather than push so Esc from results lands on the unit
	// overview, not back inside the finished lesson.
	return l, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(params)}
	}
}

func newChoice(ex store.Exercise) components.MultiChoice {
	return components.NewMultiChoice(ex.Prompt, ex.Choices, ex.AnswerIndex)
}

func (l *LessonScreen) View(width, height int) string {
	center := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	if l.errMsg != "" {
		return center.Foreground(theme.Error).Render(l.errMsg)
	}
	if l.session == nil || l.finalizing {
		return center.Render(l.spinner.View())
	}
	if l.showingQuit {
		return center.Render(lipgloss.JoinVertical(lipgloss.Center,
			theme.Body.Bold(true).Render("Leave this lesson?"),
			"",
			theme.Hint.Render("Your answers so far will not count."),
		))
	}

	counter := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Exercise %d of %d", l.index+1, len(l.pkg.Exercises)))

	bar := components.NewProgressBar("", float64(l.index)/float64(len(l.pkg.Exercises)), false, min(width-8, 40))

	body := lipgloss.JoinVertical(lipgloss.Left,
		counter,
		bar.View(),
		"",
		l.mc.View(),
	)
	return center.Render(body)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
