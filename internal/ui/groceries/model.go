// Package groceries is the grocery list screen.
package groceries

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/grocery"
	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/theme"
	"github.com/nhle/kitchen-tracker/internal/ui"
	"github.com/nhle/kitchen-tracker/internal/ui/alert"
)

// ItemSavedMsg is emitted after an item was added or checked off.
type ItemSavedMsg struct {
	Item model.GroceryItem
}

// ItemDeletedMsg is emitted after a deletion was confirmed.
type ItemDeletedMsg struct {
	ID string
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeAlert
	modeConfirmDelete
)

type formBindings struct {
	item    grocery.Form
	confirm bool
}

// Model is the Bubble Tea model for the grocery list.
type Model struct {
	mode        mode
	list        *grocery.List
	keys        *keys.KeyMap
	fb          *formBindings
	form        *huh.Form
	confirmForm *huh.Form
	alert       alert.Model
	bar         progress.Model
	selectedIdx int
	statusMsg   string
	width       int
	height      int
}

// New creates the grocery screen around l.
func New(l *grocery.List, k *keys.KeyMap, width, height int) Model {
	m := Model{
		list: l,
		keys: k,
		fb:   &formBindings{},
		bar:  progress.New(progress.WithSolidFill("#6BCB77"), progress.WithoutPercentage()),
	}
	m.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Capturing reports whether the screen consumes every key.
func (m Model) Capturing() bool { return m.mode != modeList }

// SetStatus shows a transient message under the list.
func (m *Model) SetStatus(s string) { m.statusMsg = s }

// rows returns the items in display order: grouped by category.
func (m Model) rows() []model.GroceryItem {
	var out []model.GroceryItem
	for _, g := range m.list.GroupByCategory() {
		out = append(out, g.Items...)
	}
	return out
}

func (m Model) selected() (model.GroceryItem, bool) {
	rows := m.rows()
	if m.selectedIdx < 0 || m.selectedIdx >= len(rows) {
		return model.GroceryItem{}, false
	}
	return rows[m.selectedIdx], true
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
		case modeConfirmDelete:
			if key.Matches(msg, m.keys.Back) {
				return m.finishDelete(false)
			}
		case modeAlert:
			var cmd tea.Cmd
			m.alert, cmd = m.alert.Update(msg)
			return m, cmd
		}
	}

	switch m.mode {
	case modeForm:
		return m.updateForm(msg)
	case modeConfirmDelete:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	n := m.list.Len()
	switch {
	case key.Matches(msg, m.keys.Add):
		m.statusMsg = ""
		return m.openForm()

	case key.Matches(msg, m.keys.Down):
		if n > 0 {
			m.selectedIdx = (m.selectedIdx + 1) % n
		}

	case key.Matches(msg, m.keys.Up):
		if n > 0 {
			m.selectedIdx--
			if m.selectedIdx < 0 {
				m.selectedIdx = n - 1
			}
		}

	case key.Matches(msg, m.keys.Toggle):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		toggled, err := m.list.Toggle(item.ID)
		if err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		return m, func() tea.Msg { return ItemSavedMsg{Item: toggled} }

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.selected()
		if !ok {
			return m, nil
		}
		if _, err := m.list.RequestDelete(item.ID); err != nil {
			m.statusMsg = fmt.Sprintf("Error: %v", err)
			return m, nil
		}
		m.fb.confirm = false
		m.confirmForm = m.buildConfirmForm(item.Name)
		m.mode = modeConfirmDelete
		return m, m.confirmForm.Init()
	}
	return m, nil
}

func (m Model) openForm() (Model, tea.Cmd) {
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Item name").
				Placeholder("e.g. Almond milk").
				Value(&m.fb.item.Name),
			huh.NewInput().
				Title("Quantity").
				Placeholder("1").
				Value(&m.fb.item.Quantity),
		).Title("Add Grocery Item"),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
	m.mode = modeForm
	return m, m.form.Init()
}

func (m Model) buildConfirmForm(name string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete Item").
				Description(fmt.Sprintf("Are you sure you want to delete %q?", name)).
				Affirmative("Delete").
				Negative("Cancel").
				Value(&m.fb.confirm),
		),
	).WithWidth(ui.FormWidth(m.width)).WithHeight(ui.FormHeight(m.height))
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
	item, err := m.fb.item.Submit(m.list)
	if err != nil {
		m.alert.Show(ui.AlertText(err))
		m.mode = modeAlert
		return m, nil
	}
	m.mode = modeList
	m.statusMsg = fmt.Sprintf("Added %s", item.Name)
	return m, func() tea.Msg { return ItemSavedMsg{Item: item} }
}

func (m Model) updateConfirm(msg tea.Msg) (Model, tea.Cmd) {
	if m.confirmForm == nil {
		return m, nil
	}
	mdl, cmd := m.confirmForm.Update(msg)
	if f, ok := mdl.(*huh.Form); ok {
		m.confirmForm = f
	}
	switch m.confirmForm.State {
	case huh.StateCompleted:
		return m.finishDelete(m.fb.confirm)
	case huh.StateAborted:
		return m.finishDelete(false)
	}
	return m, cmd
}

// finishDelete resolves the pending deletion.
func (m Model) finishDelete(confirmed bool) (Model, tea.Cmd) {
	m.mode = modeList
	if !confirmed {
		m.list.CancelDelete()
		return m, nil
	}
	removed, err := m.list.ConfirmDelete()
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	if m.selectedIdx >= m.list.Len() && m.selectedIdx > 0 {
		m.selectedIdx = m.list.Len() - 1
	}
	m.statusMsg = fmt.Sprintf("Deleted %s", removed.Name)
	return m, func() tea.Msg { return ItemDeletedMsg{ID: removed.ID} }
}

// View renders the screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case modeConfirmDelete:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.confirmForm.View())
	case modeAlert:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Grocery List"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%d of %d items  %d%% complete\n",
		m.list.CompletedCount(), m.list.Len(), m.list.CompletionPercent()))
	b.WriteString(m.bar.ViewAs(float64(m.list.CompletionPercent()) / 100))
	b.WriteString("\n\n")

	if m.list.Len() == 0 {
		b.WriteString(theme.HelpStyle.Render("Your list is empty. Press 'a' to add an item."))
	}

	row := 0
	for _, g := range m.list.GroupByCategory() {
		b.WriteString(theme.SectionStyle.Render(g.Category))
		b.WriteString("\n")
		for _, item := range g.Items {
			b.WriteString(m.renderItem(item, row == m.selectedIdx))
			b.WriteString("\n")
			row++
		}
	}

	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) renderItem(item model.GroceryItem, selected bool) string {
	check := "[ ]"
	name := item.Name
	if item.Completed {
		check = "[x]"
		name = theme.CompletedStyle.Render(name)
	}
	line := fmt.Sprintf("%s %s %s", check, name, theme.DimmedStyle.Render(item.Quantity))
	if selected {
		return theme.SelectedItemStyle.Render(line)
	}
	return theme.ListItemStyle.Render(line)
}

// KeyHints returns the status bar hints for the current mode.
func (m Model) KeyHints() string {
	switch m.mode {
	case modeForm:
		return "enter next/submit | esc cancel"
	case modeConfirmDelete:
		return "←/→ choose | enter confirm | esc cancel"
	case modeAlert:
		return "enter OK"
	default:
		return "a add | x check | d delete | :share | tab next tab | q quit"
	}
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.bar.Width = max(width-8, 10)
	m.alert.SetWidth(width)
}
