package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the global keybindings for the application.
type KeyMap struct {
	// Navigation
	Down key.Binding
	Up   key.Binding

	// Tabs
	NextTab     key.Binding
	PrevTab     key.Binding
	TabCalories key.Binding
	TabGrocery  key.Binding
	TabPantry   key.Binding
	TabMeals    key.Binding

	// Selection
	Select key.Binding

	// Back / Quit
	Back key.Binding
	Quit key.Binding

	// Command palette
	Command key.Binding

	// Help toggle
	Help key.Binding

	// Actions
	Add      key.Binding
	Toggle   key.Binding
	Delete   key.Binding
	ViewMode key.Binding
	Assign   key.Binding
}

// DefaultKeyMap returns the default set of keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous tab"),
		),
		TabCalories: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "calories"),
		),
		TabGrocery: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "groceries"),
		),
		TabPantry: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "pantry"),
		),
		TabMeals: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "meals"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Command: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Add: key.NewBinding(
			key.WithKeys("a", "n"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("x", " "),
			key.WithHelp("x/space", "check off"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		ViewMode: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "plans/recipes"),
		),
		Assign: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "add recipe to plan"),
		),
	}
}

// ShortHelp returns the most essential keybindings for the compact help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.NextTab, k.Up, k.Down, k.Add,
		k.Quit, k.Help,
	}
}

// FullHelp returns all keybindings grouped by category for the expanded
// help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.Quit},
		{k.NextTab, k.PrevTab, k.TabCalories, k.TabGrocery, k.TabPantry, k.TabMeals},
		{k.Add, k.Toggle, k.Delete, k.ViewMode, k.Assign},
		{k.Command, k.Help},
	}
}
