// Package grocery implements the shopping list: items that can be checked
// off, grouped by store category, and deleted after confirmation.
package grocery

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// ErrNotFound is returned when an id does not match any item.
var ErrNotFound = errors.New("grocery item not found")

// ErrNoPendingDelete is returned by ConfirmDelete when nothing was requested.
var ErrNoPendingDelete = errors.New("no deletion pending")

// CategoryGroup is one section of the grouped list.
type CategoryGroup struct {
	Category string
	Items    []model.GroceryItem
}

// List owns the shopping list.
type List struct {
	items     []model.GroceryItem
	pendingID string
}

// NewList creates a list holding the given items in order.
func NewList(items ...model.GroceryItem) *List {
	l := &List{}
	for _, it := range items {
		if it.Category == "" {
			it.Category = model.DefaultCategory
		}
		l.items = append(l.items, it)
	}
	return l
}

// AddItem appends a new unchecked item. Quantity defaults to "1" and
// user-added items always land in the "Other" category.
func (l *List) AddItem(name, quantity string) (model.GroceryItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.GroceryItem{}, model.Invalid("name", "please enter an item name")
	}
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		quantity = model.DefaultQuantity
	}

	item := model.GroceryItem{
		ID:        model.NewID(),
		Name:      name,
		Quantity:  quantity,
		Category:  model.DefaultCategory,
		SortOrder: l.nextSortOrder(),
	}
	l.items = append(l.items, item)
	return item, nil
}

func (l *List) nextSortOrder() int {
	highest := 0
	for _, it := range l.items {
		highest = max(highest, it.SortOrder)
	}
	return highest + 1
}

func (l *List) indexOf(id string) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Toggle flips the completed flag of the item and returns its new state.
func (l *List) Toggle(id string) (model.GroceryItem, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.GroceryItem{}, fmt.Errorf("toggling %s: %w", id, ErrNotFound)
	}
	l.items[i].Completed = !l.items[i].Completed
	return l.items[i], nil
}

// RequestDelete marks the item as pending deletion. Nothing is removed until
// ConfirmDelete is called.
func (l *List) RequestDelete(id string) (model.GroceryItem, error) {
	i := l.indexOf(id)
	if i < 0 {
		return model.GroceryItem{}, fmt.Errorf("deleting %s: %w", id, ErrNotFound)
	}
	l.pendingID = id
	return l.items[i], nil
}

// Pending returns the item awaiting confirmation, if any.
func (l *List) Pending() (model.GroceryItem, bool) {
	if l.pendingID == "" {
		return model.GroceryItem{}, false
	}
	i := l.indexOf(l.pendingID)
	if i < 0 {
		return model.GroceryItem{}, false
	}
	return l.items[i], true
}

// ConfirmDelete removes the pending item and returns it.
func (l *List) ConfirmDelete() (model.GroceryItem, error) {
	if l.pendingID == "" {
		return model.GroceryItem{}, ErrNoPendingDelete
	}
	id := l.pendingID
	l.pendingID = ""

	i := l.indexOf(id)
	if i < 0 {
		return model.GroceryItem{}, fmt.Errorf("deleting %s: %w", id, ErrNotFound)
	}
	removed := l.items[i]
	l.items = slices.Delete(l.items, i, i+1)
	return removed, nil
}

// CancelDelete abandons the pending deletion.
func (l *List) CancelDelete() {
	l.pendingID = ""
}

// Items returns a copy of the list in insertion order.
func (l *List) Items() []model.GroceryItem {
	out := make([]model.GroceryItem, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int { return len(l.items) }

// CompletedCount returns the number of checked-off items.
func (l *List) CompletedCount() int {
	n := 0
	for _, it := range l.items {
		if it.Completed {
			n++
		}
	}
	return n
}

// CompletionPercent is the rounded share of checked-off items, 0 when the
// list is empty.
func (l *List) CompletionPercent() int {
	if len(l.items) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(l.CompletedCount()) / float64(len(l.items))))
}

// GroupByCategory partitions the list by category. Categories appear in the
// order they are first seen and items keep their relative order.
func (l *List) GroupByCategory() []CategoryGroup {
	return GroupByCategory(l.items)
}

// GroupByCategory partitions items by category in first-seen order.
func GroupByCategory(items []model.GroceryItem) []CategoryGroup {
	var groups []CategoryGroup
	index := make(map[string]int)
	for _, it := range items {
		i, ok := index[it.Category]
		if !ok {
			i = len(groups)
			index[it.Category] = i
			groups = append(groups, CategoryGroup{Category: it.Category})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// Open returns the items that are not yet checked off.
func (l *List) Open() []model.GroceryItem {
	return OpenItems(l.items)
}

// OpenItems returns the items of items that are not checked off.
func OpenItems(items []model.GroceryItem) []model.GroceryItem {
	var out []model.GroceryItem
	for _, it := range items {
		if !it.Completed {
			out = append(out, it)
		}
	}
	return out
}
