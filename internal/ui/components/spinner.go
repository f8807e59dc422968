package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lernio/lernio/internal/ui/theme"
)

// Spinner wraps the bubbles spinner with the app's styling and a label.
type Spinner struct {
	Label string
	model spinner.Model
}

// NewSpinner creates a spinner with the given label.
func NewSpinner(label string) Spinner {
	m := spinner.New()
	m.Spinner = spinner.Dot
	m.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return Spinner{Label: label, model: m}
}

// Init returns the tick command that drives the animation.
func (s Spinner) Init() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation on tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(msg)
	return s, cmd
}

// View renders the spinner and its label.
func (s Spinner) View() string {
	return s.model.View() + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.Label)
}
