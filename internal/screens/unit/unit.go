package unit

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screen"
	lessonscreen "github.com/lernio/lernio/internal/screens/lesson"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
	"github.com/lernio/lernio/internal/ui/components"
	"github.com/lernio/lernio/internal/ui/theme"
)

// unitLoadedMsg carries the unit, its cached lessons, and the last
// persisted progress snapshot (nil when nothing computed yet).
type unitLoadedMsg struct {
	Unit     *store.Unit
	Packages []*store.LessonPackage
	Progress *progress.UnitProgress
	Err      error
}

// UnitScreen shows a unit's lesson list next to its cached objective
// progress.
type UnitScreen struct {
	content  store.ContentRepo
	recorder *sessionlog.Recorder
	progress *progress.Service
	userID   string
	unitID   string

	unit     *store.Unit
	packages []*store.LessonPackage
	cached   *progress.UnitProgress
	menu     components.Menu
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*UnitScreen)(nil)

// New creates a new UnitScreen for the given unit.
func New(content store.ContentRepo, recorder *sessionlog.Recorder, progressSvc *progress.Service, userID, unitID string) *UnitScreen {
	return &UnitScreen{
		content:  content,
		recorder: recorder,
		progress: progressSvc,
		userID:   userID,
		unitID:   unitID,
	}
}

func (u *UnitScreen) Init() tea.Cmd {
	return u.load()
}

func (u *UnitScreen) Title() string {
	if u.unit != nil {
		return u.unit.Title
	}
	return "Unit"
}

func (u *UnitScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		unit, err := u.content.Unit(ctx, u.unitID)
		if err != nil {
			return unitLoadedMsg{Err: err}
		}
		if unit == nil {
			return unitLoadedMsg{Err: fmt.Errorf("unit %s is not cached", u.unitID)}
		}
		packages, err := u.content.LessonPackages(ctx, u.unitID)
		if err != nil {
			return unitLoadedMsg{Err: err}
		}
		// Cached snapshot only; never recompute on a display path.
		cached, err := u.progress.CachedUnitProgress(ctx, u.unitID, u.userID)
		if err != nil {
			// Progress display is best-effort; the lesson list still works.
			cached = nil
		}
		return unitLoadedMsg{Unit: unit, Packages: packages, Progress: cached}
	}
}

func (u *UnitScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case unitLoadedMsg:
		if msg.Err != nil {
			u.errMsg = msg.Err.Error()
			u.loaded = true
			return u, nil
		}
		u.unit = msg.Unit
		u.packages = msg.Packages
		u.cached = msg.Progress
		u.menu = components.NewMenu(u.menuItems())
		u.loaded = true
		return u, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return u, func() tea.Msg { return router.PopScreenMsg{} }
		}
		if !u.loaded {
			return u, nil
		}
		var cmd tea.Cmd
		u.menu, cmd = u.menu.Update(msg)
		return u, cmd
	}

	return u, nil
}

func (u *UnitScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(u.packages))
	for _, lp := range u.packages {
		pkg := lp
		label := fmt.Sprintf("%s  (%d exercises)", pkg.Title, len(pkg.Exercises))
		items = append(items, components.MenuItem{
			Label:    label,
			Disabled: len(pkg.Exercises) == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: lessonscreen.New(u.content, u.recorder, u.progress, u.userID, u.unitID, pkg.PackageID),
					}
				}
			},
		})
	}
	return items
}

func (u *UnitScreen) View(width, height int) string {
	if !u.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading...")
	}
	if u.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render(u.errMsg)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(u.unit.Title))
	b.WriteString("\n\n")

	if len(u.packages) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No lessons cached for this unit yet."))
		b.WriteString("\n\n")
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, u.menu.View()))
		b.WriteString("\n")
	}

	b.WriteString(u.renderProgressPanel(width))
	return b.String()
}

// renderProgressPanel shows the last computed objective breakdown, or a
// placeholder when no session of this unit has finished yet.
func (u *UnitScreen) renderProgressPanel(width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Objectives")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if u.cached == nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Finish a lesson to see your progress here."))
		return b.String()
	}

	for _, item := range u.cached.Items {
		line := fmt.Sprintf("  %s    %d/%d    %s",
			item.Text, item.ExercisesCorrect, item.ExercisesTotal,
			statusLabel(item.Status))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			statusStyle(item.Status).Render(line)))
		b.WriteString("\n")
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
