// Package calories is the calorie log screen.
package calories

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/calorie"
	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/theme"
	"github.com/nhle/kitchen-tracker/internal/ui"
	"github.com/nhle/kitchen-tracker/internal/ui/alert"
)

// EntryAddedMsg is emitted after a food entry was logged.
type EntryAddedMsg struct {
	Entry model.FoodEntry
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeAlert
)

// Model is the Bubble Tea model for the calorie log.
type Model struct {
	mode        mode
	tracker     *calorie.Tracker
	keys        *keys.KeyMap
	fb          *calorie.Form
	form        *huh.Form
	alert       alert.Model
	bar         progress.Model
	selectedIdx int
	statusMsg   string
	now         func() time.Time
	width       int
	height      int
}

// New creates the calorie screen around t.
func New(t *calorie.Tracker, k *keys.KeyMap, width, height int) Model {
	bar := progress.New(progress.WithGradient("#6BCB77", "#FFA94D"), progress.WithoutPercentage())
	m := Model{
		tracker: t,
		keys:    k,
		fb:      &calorie.Form{},
		bar:     bar,
		now:     time.Now,
	}
	m.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Capturing reports whether the screen consumes every key.
func (m Model) Capturing() bool { return m.mode != modeList }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alert.DismissedMsg:
		return m.openForm()

	case tea.KeyMsg:
		switch m.mode {
		case modeList:
			return m.handleListKey(msg)
		case modeForm:
			if key.Matches(msg, m.keys.Back) {
				m.mode = modeList
				return m, nil
			}
		case modeAlert:
			var cmd tea.Cmd
			m.alert, cmd = m.alert.Update(msg)
			return m, cmd
		}
	}

	if m.mode == modeForm {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.statusMsg = ""
		return m.openForm()

	case key.Matches(msg, m.keys.Down):
		if n := m.tracker.Len(); n > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % n
		}

	case key.Matches(msg, m.keys.Up):
		if n := m.tracker.Len(); n > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = n - 1
			}
		}
	}
	return m, nil
}

// openForm shows the add form bound to the retained buffer.
func (m Model) openForm() (Model, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Food name").
				Placeholder("e.g. Grilled chicken salad").
				Value(&m.fb.Name),
			huh.NewInput().
				Title("Calories").
				Placeholder("e.g. 450").
				Value(&m.fb.Calories),
		).Title("Add Food"),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
	m.mode = modeForm
	return m, m.form.Init()
}

func (m Model) updateForm(msg tea.Msg) (Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	mdl, cmd := m.form.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m.submit()
	case huh.StateAborted:
		m.mode = modeList
		return m, nil
	}
	return m, cmd
}

// submit validates the buffer. A failure raises the alert and keeps the
// buffer for the reopened form.
func (m Model) submit() (Model, tea.Cmd) {
	entry, err := m.fb.Submit(m.tracker)
	if err != nil {
		m.alert.Show(ui.AlertText(err))
		m.mode = modeAlert
		return m, nil
	}
	m.mode = modeList
	m.selectedIdx = m.tracker.Len() - 1
	m.statusMsg = fmt.Sprintf("Logged %s (%d kcal)", entry.Name, entry.Calories)
	return m, func() tea.Msg { return EntryAddedMsg{Entry: entry} }
}

// View renders the screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case modeAlert:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Calorie Tracker"))
	b.WriteString("\n\n")
	b.WriteString(m.viewStats())
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.tracker.BarPercent() / 100))
	b.WriteString("\n")
	b.WriteString(theme.DimmedStyle.Render(fmt.Sprintf("%d%% of daily goal", m.tracker.RoundedPercent())))
	b.WriteString("\n\n")
	b.WriteString(theme.SectionStyle.Render("Today's Meals"))
	b.WriteString("\n")
	b.WriteString(m.viewEntries())

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewStats() string {
	box := func(label string, value int) string {
		return theme.PanelStyle.Width(16).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				theme.TitleStyle.Render(fmt.Sprintf("%d", value)),
				theme.DimmedStyle.Render(label),
			),
		)
	}
	last := "no meals yet"
	if ago, ok := m.tracker.LastMealAgo(m.now()); ok {
		last = formatAgo(ago)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		box("consumed", m.tracker.TotalCalories()),
		box("goal", m.tracker.Goal()),
		box("remaining", m.tracker.Remaining()),
		theme.PanelStyle.Width(18).Render(lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render(last),
			theme.DimmedStyle.Render("last meal"),
		)),
	)
}

func (m Model) viewEntries() string {
	entries := m.tracker.Entries()
	if len(entries) == 0 {
		return theme.HelpStyle.Render("Nothing logged yet. Press 'a' to add food.")
	}
	var b strings.Builder
	for i, e := range entries {
		line := fmt.Sprintf("%-28s %5d kcal  %s", e.Name, e.Calories, e.LoggedAt.Format("15:04"))
		if i == m.selectedIdx {
			b.WriteString(theme.SelectedItemStyle.Render(line))
		} else {
			b.WriteString(theme.ListItemStyle.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// formatAgo renders a duration the way the stats box shows it.
func formatAgo(d time.Duration) string {
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

// KeyHints returns the status bar hints for the current mode.
func (m Model) KeyHints() string {
	switch m.mode {
	case modeForm:
		return "enter next/submit | esc cancel"
	case modeAlert:
		return "enter OK"
	default:
		return "a add food | j/k move | tab next tab | : command | ? help | q quit"
	}
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = max(width-8, 10)
	m.alert.SetWidth(width)
}
