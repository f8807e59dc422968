package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernio/lernio/internal/progress"
	"github.com/lernio/lernio/internal/router"
	"github.com/lernio/lernio/internal/screen"
	unitscreen "github.com/lernio/lernio/internal/screens/unit"
	"github.com/lernio/lernio/internal/sessionlog"
	"github.com/lernio/lernio/internal/store"
	"github.com/lernio/lernio/internal/ui/components"
	"github.com/lernio/lernio/internal/ui/theme"
)

// unitsLoadedMsg carries the cached unit list after the initial load.
type unitsLoadedMsg struct {
	Units []*store.Unit
	Err   error
}

// HomeScreen lists the cached units and is the entry point of the app.
type HomeScreen struct {
	content  store.ContentRepo
	recorder *sessionlog.Recorder
	progress *progress.Service
	userID   string

	units   []*store.Unit
	menu    components.Menu
	spinner components.Spinner
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(content store.ContentRepo, recorder *sessionlog.Recorder, progressSvc *progress.Service, userID string) *HomeScreen {
	return &HomeScreen{
		content:  content,
		recorder: recorder,
		progress: progressSvc,
		userID:   userID,
		spinner:  components.NewSpinner("Loading units..."),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	h.loaded = false
	return tea.Batch(h.loadUnits(), h.spinner.Init())
}

func (h *HomeScreen) Title() string {
	return "Units"
}

func (h *HomeScreen) loadUnits() tea.Cmd {
	return func() tea.Msg {
		units, err := h.content.Units(context.Background())
		return unitsLoadedMsg{Units: units, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case unitsLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			h.loaded = true
			return h, nil
		}
		h.units = msg.Units
		h.menu = components.NewMenu(h.menuItems())
		h.loaded = true
		return h, nil

	case tea.KeyMsg:
		if !h.loaded {
			return h, nil
		}
		var cmd tea.Cmd
		h.menu, cmd = h.menu.Update(msg)
		return h, cmd
	}

	if !h.loaded {
		var cmd tea.Cmd
		h.spinner, cmd = h.spinner.Update(msg)
		return h, cmd
	}
	return h, nil
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(h.units)+1)
	for _, u := range h.units {
		unit := u
		items = append(items, components.MenuItem{
			Label: unit.Title,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: unitscreen.New(h.content, h.recorder, h.progress, h.userID, unit.UnitID),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "Exit",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})
	return items
}

func (h *HomeScreen) View(width, height int) string {
	if !h.loaded {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(h.spinner.View())
	}

	if h.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.Error).
			Render("Could not load units: " + h.errMsg)
	}

	if len(h.units) == 0 {
		hint := lipgloss.JoinVertical(lipgloss.Center,
			theme.Title.Render("No units yet"),
			"",
			theme.Subtitle.Render("Import a content bundle to get started:"),
			"",
			lipgloss.NewStyle().Foreground(theme.Secondary).Render("lernio import <bundle.json>"),
		)
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(hint)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Pick a unit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d unit(s) cached", len(h.units))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}
