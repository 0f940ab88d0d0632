// Package pantry is the pantry expiry screen.
package pantry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/model"
	pantrydomain "github.com/nhle/kitchen-tracker/internal/pantry"
	"github.com/nhle/kitchen-tracker/internal/theme"
	"github.com/nhle/kitchen-tracker/internal/ui"
	"github.com/nhle/kitchen-tracker/internal/ui/alert"
)

// ItemAddedMsg is emitted after a pantry item was stored.
type ItemAddedMsg struct {
	Item model.PantryItem
}

// Categories offered as completions in the add form.
var Categories = []string{
	"Produce", "Dairy", "Meat", "Bakery", "Canned goods", "Frozen", "Pantry", model.DefaultCategory,
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeAlert
)

// statsHeight is the number of lines above the list.
const statsHeight = 6

// Model is the Bubble Tea model for the pantry tracker.
type Model struct {
	mode      mode
	tracker   *pantrydomain.Tracker
	keys      *keys.KeyMap
	fb        *pantrydomain.Form
	form      *huh.Form
	alert     alert.Model
	list      list.Model
	statusMsg string
	width     int
	height    int
}

// New creates the pantry screen around t.
func New(t *pantrydomain.Tracker, k *keys.KeyMap, width, height int) Model {
	l := list.New(nil, ItemDelegate{}, width, height-statsHeight)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetStatusBarItemName("item", "items")
	l.DisableQuitKeybindings()

	m := Model{
		tracker: t,
		keys:    k,
		fb:      &pantrydomain.Form{},
		list:    l,
	}
	m.SetSize(width, height)
	m.refresh()
	return m
}

// refresh reloads the list rows, most urgent first.
func (m *Model) refresh() tea.Cmd {
	sorted := m.tracker.SortedByUrgency()
	items := make([]list.Item, len(sorted))
	for i, it := range sorted {
		items[i] = Item{PantryItem: it}
	}
	return m.list.SetItems(items)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Capturing reports whether the screen consumes every key.
func (m Model) Capturing() bool {
	return m.mode != modeList || m.list.SettingFilter()
}

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
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.list.SettingFilter() && key.Matches(msg, m.keys.Add) {
		m.statusMsg = ""
		return m.openForm()
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) openForm() (Model, tea.Cmd) {
	category := huh.NewInput().
		Title("Category").
		Placeholder(model.DefaultCategory).
		Suggestions(Categories).
		Value(&m.fb.Category)

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Item name").
				Placeholder("e.g. Cheddar cheese").
				Value(&m.fb.Name),
			category,
			huh.NewInput().
				Title("Expiration date").
				Placeholder("YYYY-MM-DD").
				Value(&m.fb.Expiration),
			huh.NewInput().
				Title("Quantity").
				Placeholder("1").
				Value(&m.fb.Quantity),
		).Title("Add Pantry Item"),
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

func (m Model) submit() (Model, tea.Cmd) {
	item, err := m.fb.Submit(m.tracker)
	if err != nil {
		m.alert.Show(ui.AlertText(err))
		m.mode = modeAlert
		return m, nil
	}
	m.mode = modeList
	m.statusMsg = fmt.Sprintf("Added %s (%s)", item.Name, pantrydomain.ClassifyExpiry(item.DaysUntilExpiry).Label)
	return m, tea.Batch(
		m.refresh(),
		func() tea.Msg { return ItemAddedMsg{Item: item} },
	)
}

// View renders the screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case modeAlert:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
	}

	box := func(label string, value int, color lipgloss.TerminalColor) string {
		return theme.PanelStyle.Width(18).Render(lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Foreground(color).Render(fmt.Sprintf("%d", value)),
			theme.DimmedStyle.Render(label),
		))
	}
	stats := lipgloss.JoinHorizontal(lipgloss.Top,
		box("total items", m.tracker.Len(), theme.ColorWhite),
		box("expiring soon", m.tracker.ExpiringSoonCount(), theme.ColorOrange),
		box("expired", m.tracker.ExpiredCount(), theme.ColorRed),
	)

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Pantry Tracker"))
	b.WriteString("\n")
	b.WriteString(stats)
	b.WriteString("\n")
	if m.tracker.Len() == 0 {
		b.WriteString(theme.HelpStyle.Render("Your pantry is empty. Press 'a' to add an item."))
	} else {
		b.WriteString(m.list.View())
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

// KeyHints returns the status bar hints for the current mode.
func (m Model) KeyHints() string {
	switch {
	case m.mode == modeForm:
		return "enter next/submit | esc cancel"
	case m.mode == modeAlert:
		return "enter OK"
	case m.list.SettingFilter():
		return "enter apply filter | esc clear"
	default:
		return "a add | / filter | j/k move | tab next tab | q quit"
	}
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width-4, max(height-statsHeight-1, 4))
	m.alert.SetWidth(width)
}
