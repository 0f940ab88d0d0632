package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/theme"
)

// Model is the help overlay view.
type Model struct {
	keys   *keys.KeyMap
	help   help.Model
	width  int
	height int
}

// New creates a new help view model.
func New(keys *keys.KeyMap, width, height int) Model {
	h := help.New()
	h.Width = width
	h.ShowAll = true
	return Model{
		keys:   keys,
		help:   h,
		width:  width,
		height: height,
	}
}

// View renders the help overlay.
func (m Model) View() string {
	title := theme.TitleStyle.MarginBottom(1).Render("Keyboard Shortcuts")
	footer := theme.HelpStyle.Render("Forms: tab/enter next field · esc cancel · ctrl+c quit")

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.help.View(m.keys), "", footer)

	return theme.PanelStyle.
		Width(m.width - 4).
		Render(content)
}

// Update is a no-op; the overlay is closed by the root model.
func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width - 4
}
