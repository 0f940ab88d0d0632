// Package alert is a blocking message box with a single OK button.
package alert

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/theme"
)

// DismissedMsg is emitted when the user acknowledges the alert.
type DismissedMsg struct{}

var okKey = key.NewBinding(key.WithKeys("enter", "esc", " ", "o"))

// Model is an alert box. The zero value is hidden.
type Model struct {
	title   string
	message string
	visible bool
	width   int
}

// Show makes the alert visible with the given content.
func (m *Model) Show(title, message string) {
	m.title = title
	m.message = message
	m.visible = true
}

// Visible reports whether the alert is blocking input.
func (m Model) Visible() bool { return m.visible }

// Message returns the current message text.
func (m Model) Message() string { return m.message }

// Update swallows every key until OK is pressed.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, okKey) {
		m.visible = false
		return m, func() tea.Msg { return DismissedMsg{} }
	}
	return m, nil
}

// View renders the alert box, or nothing when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.TitleStyle.Foreground(theme.ColorRed).Render(m.title),
		"",
		lipgloss.NewStyle().Width(min(m.width, 50)).Align(lipgloss.Center).Render(m.message),
		"",
		theme.ButtonStyle.Render("OK"),
	)
	return theme.AlertStyle.Render(body)
}

// SetWidth sets the wrap width of the message.
func (m *Model) SetWidth(width int) {
	m.width = width - 10
	if m.width < 20 {
		m.width = 20
	}
}
