package app

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/nhle/kitchen-tracker/internal/keys"
	"github.com/nhle/kitchen-tracker/internal/kitchen"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/share"
	"github.com/nhle/kitchen-tracker/internal/store"
	"github.com/nhle/kitchen-tracker/internal/ui"
	"github.com/nhle/kitchen-tracker/internal/ui/calories"
	"github.com/nhle/kitchen-tracker/internal/ui/command"
	"github.com/nhle/kitchen-tracker/internal/ui/groceries"
	helpview "github.com/nhle/kitchen-tracker/internal/ui/help"
	"github.com/nhle/kitchen-tracker/internal/ui/meals"
	"github.com/nhle/kitchen-tracker/internal/ui/pantry"
)

// ViewState represents the overlay drawn over the active tab, if any.
type ViewState int

const (
	ViewTabs ViewState = iota
	ViewHelp
	ViewCommand
)

// Tab identifies one of the four trackers.
type Tab int

const (
	TabCalories Tab = iota
	TabGroceries
	TabPantry
	TabMeals
)

var tabLabels = []string{"Calories", "Groceries", "Pantry", "Meals"}

// String returns the tab label.
func (t Tab) String() string {
	if t < 0 || int(t) >= len(tabLabels) {
		return "unknown"
	}
	return tabLabels[t]
}

// AppenderFunc builds the mailbox client used by the share command.
type AppenderFunc func(cfg model.EmailShareConfig) (share.Appender, error)

// Options configures the root model.
type Options struct {
	Config  *model.AppConfig
	Kitchen *kitchen.Kitchen
	// Store receives every change. Nil runs the session in memory only.
	Store    store.Store
	Logger   *zap.Logger
	Appender AppenderFunc
	Now      func() time.Time
}

// Model is the Bubble Tea model that routes between the four tracker
// tabs and the help and command overlays.
type Model struct {
	currentView ViewState
	activeTab   Tab
	layout      ui.Layout
	cfg         *model.AppConfig
	kitchen     *kitchen.Kitchen
	store       store.Store
	writer      *writer
	log         *zap.Logger
	appender    AppenderFunc
	now         func() time.Time
	keys        *keys.KeyMap
	calories    calories.Model
	groceries   groceries.Model
	pantry      pantry.Model
	meals       meals.Model
	helpView    helpview.Model
	commandView command.Model
	status      string
	ready       bool
}

// New creates the root model.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = model.DefaultAppConfig()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	k := opts.Kitchen
	if k == nil {
		k = kitchen.Seeded(cfg.Calories.DailyGoal, now)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	appender := opts.Appender
	if appender == nil {
		appender = keyringAppender
	}

	var w *writer
	if opts.Store != nil {
		w = newWriter(opts.Store)
	}

	km := keys.DefaultKeyMap()
	return Model{
		activeTab:   TabCalories,
		layout:      ui.NewLayout(80, 24),
		cfg:         cfg,
		kitchen:     k,
		store:       opts.Store,
		writer:      w,
		log:         log,
		appender:    appender,
		now:         now,
		keys:        km,
		calories:    calories.New(k.Calories, km, 80, 20),
		groceries:   groceries.New(k.Groceries, km, 80, 20),
		pantry:      pantry.New(k.Pantry, km, 80, 20),
		meals:       meals.New(k.Meals, km, cfg.Display.Theme, 80, 20),
		helpView:    helpview.New(km, 80, 20),
		commandView: command.New(80, 20),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Close flushes queued store writes. Call it once the program has exited.
func (m Model) Close() {
	if m.writer != nil {
		m.writer.Close()
	}
}

// ActiveTab returns the selected tab.
func (m Model) ActiveTab() Tab { return m.activeTab }

// CurrentView returns the overlay state.
func (m Model) CurrentView() ViewState { return m.currentView }

// Status returns the last status message.
func (m Model) Status() string { return m.status }

// capturing reports whether the active tab is consuming every key, such as
// while a form or alert is open.
func (m Model) capturing() bool {
	switch m.activeTab {
	case TabCalories:
		return m.calories.Capturing()
	case TabGroceries:
		return m.groceries.Capturing()
	case TabPantry:
		return m.pantry.Capturing()
	case TabMeals:
		return m.meals.Capturing() || m.meals.InCard()
	}
	return false
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		w, h := m.layout.ContentWidth(), m.layout.ContentHeight()
		m.calories.SetSize(w, h)
		m.groceries.SetSize(w, h)
		m.pantry.SetSize(w, h)
		m.meals.SetSize(w, h)
		m.helpView.SetSize(w, h)
		m.commandView.SetSize(w, h)
		// Forward to the active tab so an open huh form can lay itself out.
		return m.updateActiveTab(msg)

	case calories.EntryAddedMsg:
		m.log.Info("food entry logged",
			zap.String("id", msg.Entry.ID), zap.Int("calories", msg.Entry.Calories))
		return m, m.saveFoodEntry(msg.Entry)

	case groceries.ItemSavedMsg:
		m.log.Info("grocery item saved",
			zap.String("id", msg.Item.ID), zap.Bool("completed", msg.Item.Completed))
		return m, m.saveGroceryItem(msg.Item)

	case groceries.ItemDeletedMsg:
		m.log.Info("grocery item deleted", zap.String("id", msg.ID))
		return m, m.deleteGroceryItem(msg.ID)

	case pantry.ItemAddedMsg:
		m.log.Info("pantry item added",
			zap.String("id", msg.Item.ID), zap.Int("days_until_expiry", msg.Item.DaysUntilExpiry))
		return m, m.savePantryItem(msg.Item)

	case meals.PlanSavedMsg:
		m.log.Info("meal plan saved", zap.String("id", msg.Plan.ID), zap.String("day", msg.Plan.Day))
		return m, m.saveMealPlan(msg.Plan)

	case persistResultMsg:
		if msg.err != nil {
			m.log.Error("persisting change", zap.String("what", msg.what), zap.Error(msg.err))
			m.status = fmt.Sprintf("Could not save %s: %v", msg.what, msg.err)
		}
		return m, nil

	case shareResultMsg:
		if msg.err != nil {
			m.log.Warn("sharing grocery list", zap.Error(msg.err))
			m.status = fmt.Sprintf("Share failed: %v", msg.err)
			return m, nil
		}
		m.log.Info("grocery list shared",
			zap.String("mailbox", msg.result.Mailbox), zap.Int("items", msg.result.Items))
		m.status = fmt.Sprintf("Saved %d items to %s", msg.result.Items, msg.result.Mailbox)
		return m, nil

	case command.CommandMsg:
		m.currentView = ViewTabs
		return m, m.executeCommand(string(msg))

	case command.CancelMsg:
		m.currentView = ViewTabs
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.currentView == ViewCommand {
			break
		}
		if m.currentView == ViewHelp {
			if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
				m.currentView = ViewTabs
			}
			return m, nil
		}
		if m.capturing() {
			break
		}

		m.status = ""
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.currentView = ViewHelp
			return m, nil
		case ":":
			m.currentView = ViewCommand
			return m, m.commandView.Focus()
		case "tab", "l", "right":
			m.activeTab = (m.activeTab + 1) % Tab(len(tabLabels))
			return m, nil
		case "shift+tab", "h", "left":
			m.activeTab = (m.activeTab + Tab(len(tabLabels)) - 1) % Tab(len(tabLabels))
			return m, nil
		case "1", "2", "3", "4":
			m.activeTab = Tab(msg.String()[0] - '1')
			return m, nil
		}
	}

	if m.currentView == ViewCommand {
		var cmd tea.Cmd
		m.commandView, cmd = m.commandView.Update(msg)
		return m, cmd
	}
	return m.updateActiveTab(msg)
}

// updateActiveTab dispatches the message to the selected tracker.
func (m Model) updateActiveTab(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.activeTab {
	case TabCalories:
		m.calories, cmd = m.calories.Update(msg)
	case TabGroceries:
		m.groceries, cmd = m.groceries.Update(msg)
	case TabPantry:
		m.pantry, cmd = m.pantry.Update(msg)
	case TabMeals:
		m.meals, cmd = m.meals.Update(msg)
	}

	return m, cmd
}

// View renders the full terminal UI using the layout manager.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	header := m.layout.RenderHeader("Kitchen", m.storageStatus())
	tabs := m.layout.RenderTabs(tabLabels, int(m.activeTab))
	statusBar := m.layout.RenderStatusBar(m.keyHints())

	return m.layout.RenderWithFrame(header, tabs, m.renderContent(), statusBar)
}

// renderContent returns the active overlay or tab.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewHelp:
		return m.helpView.View()
	case ViewCommand:
		return m.commandView.View()
	}

	switch m.activeTab {
	case TabCalories:
		return m.calories.View()
	case TabGroceries:
		return m.groceries.View()
	case TabPantry:
		return m.pantry.View()
	case TabMeals:
		return m.meals.View()
	default:
		return ""
	}
}

// storageStatus names where changes go.
func (m Model) storageStatus() string {
	if m.store == nil {
		return "in memory"
	}
	return "saved to " + m.cfg.Storage.Path
}

// keyHints returns keyboard shortcut hints for the status bar.
func (m Model) keyHints() string {
	if m.status != "" {
		return m.status
	}

	switch m.currentView {
	case ViewHelp:
		return "? close help | esc back"
	case ViewCommand:
		return "enter execute | tab complete | esc back"
	}

	switch m.activeTab {
	case TabCalories:
		return m.calories.KeyHints()
	case TabGroceries:
		return m.groceries.KeyHints()
	case TabPantry:
		return m.pantry.KeyHints()
	case TabMeals:
		return m.meals.KeyHints()
	default:
		return ""
	}
}

// executeCommand handles a command string from the command palette.
func (m *Model) executeCommand(cmd string) tea.Cmd {
	switch cmd {
	case "calories", "1":
		m.activeTab = TabCalories
	case "groceries", "grocery", "2":
		m.activeTab = TabGroceries
	case "pantry", "3":
		m.activeTab = TabPantry
	case "meals", "meal", "4":
		m.activeTab = TabMeals
	case "share":
		m.status = "Sharing grocery list..."
		return m.shareGroceries()
	case "help":
		m.currentView = ViewHelp
	case "quit", "q":
		return tea.Quit
	default:
		m.status = fmt.Sprintf("Unknown command %q", cmd)
	}
	return nil
}
