// Package meals is the meal planner screen with its recipe browser.
package meals

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/meal"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/theme"
	"github.com/nhle/kitchen-tracker/internal/ui"
	"github.com/nhle/kitchen-tracker/internal/ui/alert"
)

// PlanSavedMsg is emitted after a plan was created or a recipe assigned.
type PlanSavedMsg struct {
	Plan model.MealPlan
}

// ViewMode selects between the weekly plans and the recipe browser.
type ViewMode int

const (
	ViewPlans ViewMode = iota
	ViewRecipes
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeAlert
	modeCard
)

// Model is the Bubble Tea model for the meal planner.
type Model struct {
	mode      mode
	viewMode  ViewMode
	planner   *meal.Planner
	keys      *keys.KeyMap
	fb        *meal.Form
	form      *huh.Form
	alert     alert.Model
	viewport  viewport.Model
	style     string
	planIdx   int
	recipeIdx int
	statusMsg string
	width     int
	height    int
}

// New creates the meal screen around p. style names the glamour style of
// the recipe card.
func New(p *meal.Planner, k *keys.KeyMap, style string, width, height int) Model {
	m := Model{
		planner:  p,
		keys:     k,
		fb:       &meal.Form{},
		style:    style,
		viewport: viewport.New(width, height-2),
	}
	m.SetSize(width, height)
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Capturing reports whether the screen consumes every key.
func (m Model) Capturing() bool { return m.mode == modeForm || m.mode == modeAlert }

// InCard reports whether the recipe card is open; esc closes it.
func (m Model) InCard() bool { return m.mode == modeCard }

// Mode returns the current view mode.
func (m Model) Mode() ViewMode { return m.viewMode }

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case alert.DismissedMsg:
		return m.openForm()

	case tea.KeyMsg:
		switch m.mode {
		case modeBrowse:
			return m.handleBrowseKey(msg)
		case modeCard:
			return m.handleCardKey(msg)
		case modeForm:
			if key.Matches(msg, m.keys.Back) {
				m.mode = modeBrowse
				return m, nil
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
	case modeCard:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ViewMode):
		m.ToggleViewMode()

	case key.Matches(msg, m.keys.Down):
		m.move(1)

	case key.Matches(msg, m.keys.Up):
		m.move(-1)

	case key.Matches(msg, m.keys.Add):
		m.statusMsg = ""
		return m.openForm()

	case key.Matches(msg, m.keys.Select):
		if m.viewMode == ViewRecipes {
			return m.openCard()
		}

	case key.Matches(msg, m.keys.Assign):
		if m.viewMode == ViewRecipes {
			return m.assignSelected()
		}
	}
	return m, nil
}

func (m Model) handleCardKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.mode = modeBrowse
		return m, nil
	case key.Matches(msg, m.keys.Assign):
		return m.assignSelected()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// ToggleViewMode switches between plans and recipes.
func (m *Model) ToggleViewMode() {
	if m.viewMode == ViewPlans {
		m.viewMode = ViewRecipes
	} else {
		m.viewMode = ViewPlans
	}
}

// recipes returns the catalog grouped by meal type, in display order.
func (m Model) recipes() []model.Recipe {
	var out []model.Recipe
	for _, t := range model.MealTypes {
		out = append(out, m.planner.RecipesByType(t)...)
	}
	return out
}

func (m *Model) move(delta int) {
	idx, n := &m.planIdx, m.planner.Len()
	if m.viewMode == ViewRecipes {
		idx, n = &m.recipeIdx, len(m.recipes())
	}
	if n == 0 {
		return
	}
	*idx = ((*idx+delta)%n + n) % n
}

func (m Model) selectedRecipe() (model.Recipe, bool) {
	recipes := m.recipes()
	if m.recipeIdx < 0 || m.recipeIdx >= len(recipes) {
		return model.Recipe{}, false
	}
	return recipes[m.recipeIdx], true
}

func (m Model) openCard() (Model, tea.Cmd) {
	r, ok := m.selectedRecipe()
	if !ok {
		return m, nil
	}
	m.viewport.SetContent(renderCard(m.style, m.viewport.Width-4, r))
	m.viewport.GotoTop()
	m.mode = modeCard
	return m, nil
}

// assignSelected puts the selected recipe into the matching slot of the
// plan last highlighted in the plans view.
func (m Model) assignSelected() (Model, tea.Cmd) {
	r, ok := m.selectedRecipe()
	if !ok {
		return m, nil
	}
	plans := m.planner.Plans()
	if len(plans) == 0 {
		m.statusMsg = "Plan a day first"
		return m, nil
	}
	plan, err := m.planner.AssignRecipe(plans[m.planIdx].ID, r.ID)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Error: %v", err)
		return m, nil
	}
	m.statusMsg = fmt.Sprintf("%s added to %s %s", r.Name, plan.Day, r.MealType)
	return m, func() tea.Msg { return PlanSavedMsg{Plan: plan} }
}

func (m Model) openForm() (Model, tea.Cmd) {
	options := []huh.Option[string]{huh.NewOption("Select a day", "")}
	for _, d := range model.Weekdays {
		options = append(options, huh.NewOption(d, d))
	}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Day").
				Options(options...).
				Value(&m.fb.Day),
		).Title("Plan a Day"),
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
		m.mode = modeBrowse
		return m, nil
	}
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	plan, err := m.fb.Submit(m.planner)
	if err != nil {
		m.alert.Show(ui.AlertText(err))
		m.mode = modeAlert
		return m, nil
	}
	m.mode = modeBrowse
	m.viewMode = ViewPlans
	m.planIdx = m.planner.Len() - 1
	m.statusMsg = fmt.Sprintf("Planned %s", plan.Day)
	return m, func() tea.Msg { return PlanSavedMsg{Plan: plan} }
}

// View renders the screen.
func (m Model) View() string {
	switch m.mode {
	case modeForm:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.form.View())
	case modeAlert:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.alert.View())
	case modeCard:
		return lipgloss.JoinVertical(lipgloss.Left,
			m.viewport.View(),
			theme.HelpStyle.Render("p add to plan · esc back · j/k scroll"),
		)
	}

	var b strings.Builder
	b.WriteString(theme.TitleStyle.Render("Meal Planner"))
	b.WriteString("  ")
	b.WriteString(m.viewTabs())
	b.WriteString("\n\n")
	if m.viewMode == ViewPlans {
		b.WriteString(m.viewPlans())
	} else {
		b.WriteString(m.viewRecipes())
	}
	if m.statusMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.StatusMsgStyle.Render(m.statusMsg))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (m Model) viewTabs() string {
	plans, recipes := theme.TabStyle, theme.TabStyle
	if m.viewMode == ViewPlans {
		plans = theme.ActiveTabStyle
	} else {
		recipes = theme.ActiveTabStyle
	}
	return plans.Render("Meal Plans") + recipes.Render("Recipes")
}

func (m Model) viewPlans() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Avg calories/day: %d\n\n", m.planner.RoundedAverage())

	plans := m.planner.Plans()
	if len(plans) == 0 {
		b.WriteString(theme.HelpStyle.Render("No days planned. Press 'a' to plan one."))
		return b.String()
	}
	for i, p := range plans {
		var slots []string
		for _, t := range model.MealTypes {
			dish := p.Meals.Slot(t)
			if dish == "" {
				dish = theme.DimmedStyle.Render("-")
			}
			slots = append(slots, fmt.Sprintf("%s %s", theme.MealTypeStyle(t).Render(t.Label()+":"), dish))
		}
		header := fmt.Sprintf("%s  %d kcal", p.Day, p.TotalCalories)
		card := lipgloss.JoinVertical(lipgloss.Left, append([]string{header}, slots...)...)
		if i == m.planIdx {
			b.WriteString(theme.SelectedItemStyle.Render(card))
		} else {
			b.WriteString(theme.ListItemStyle.Render(card))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewRecipes() string {
	var b strings.Builder
	i := 0
	for _, t := range model.MealTypes {
		recipes := m.planner.RecipesByType(t)
		if len(recipes) == 0 {
			continue
		}
		b.WriteString(theme.MealTypeStyle(t).Render(t.Label()))
		b.WriteString("\n")
		for _, r := range recipes {
			line := fmt.Sprintf("%-24s %d kcal · %d min", r.Name, r.Calories, r.PrepTimeMinutes)
			if i == m.recipeIdx {
				b.WriteString(theme.SelectedItemStyle.Render(line))
			} else {
				b.WriteString(theme.ListItemStyle.Render(line))
			}
			b.WriteString("\n")
			i++
		}
	}
	return b.String()
}

// KeyHints returns the status bar hints for the current mode.
func (m Model) KeyHints() string {
	switch m.mode {
	case modeForm:
		return "↑/↓ choose | enter submit | esc cancel"
	case modeAlert:
		return "enter OK"
	case modeCard:
		return "p add to plan | esc back | j/k scroll"
	}
	if m.viewMode == ViewRecipes {
		return "enter view recipe | p add to plan | v plans | tab next tab | q quit"
	}
	return "a plan a day | j/k move | v recipes | tab next tab | q quit"
}

// SetSize updates dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-2, 1)
	m.alert.SetWidth(width)
}
