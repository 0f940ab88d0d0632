package pantry

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kitchen-tracker/internal/model"
	pantrydomain "github.com/nhle/kitchen-tracker/internal/pantry"
	"github.com/nhle/kitchen-tracker/internal/theme"
)

// Item wraps a model.PantryItem so it can be used in a bubbles/list.
type Item struct {
	model.PantryItem
}

// FilterValue returns the string used for fuzzy filtering.
func (i Item) FilterValue() string { return i.Name + " " + i.Category }

// Title returns the item name for the list.
func (i Item) Title() string { return i.Name }

// Description returns the category, quantity and date line.
func (i Item) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.Category, i.Quantity, i.ExpirationDate.Format(model.DateLayout))
}

// ItemDelegate implements list.ItemDelegate for pantry rows.
type ItemDelegate struct{}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 2 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render draws one item: its name with the expiry badge, then the details.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(Item)
	if !ok {
		return
	}
	status := pantrydomain.ClassifyExpiry(it.DaysUntilExpiry)
	badge := theme.BandStyle(status.Band).Render(status.Label)

	title := fmt.Sprintf("%s %s", it.Name, badge)
	desc := theme.DimmedStyle.Render(it.Description())

	if index == m.Index() {
		fmt.Fprintf(w, "%s\n%s", theme.SelectedItemStyle.Render(title), theme.SelectedItemStyle.Render(desc))
		return
	}
	fmt.Fprintf(w, "%s\n%s", theme.ListItemStyle.Render(title), theme.ListItemStyle.Render(desc))
}
