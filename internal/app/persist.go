package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/store"
)

// persistResultMsg is sent after a change was written to the store.
type persistResultMsg struct {
	what string
	err  error
}

// persist queues fn on the writer. Without a store the change only lives
// in memory and no command is returned.
func (m Model) persist(what string, fn func(ctx context.Context, s store.Store) error) tea.Cmd {
	if m.writer == nil {
		return nil
	}
	return m.writer.enqueue(writeJob{what: what, fn: fn})
}

func (m Model) saveFoodEntry(e model.FoodEntry) tea.Cmd {
	return m.persist("food entry", func(ctx context.Context, s store.Store) error {
		return s.InsertFoodEntry(ctx, e)
	})
}

func (m Model) saveGroceryItem(item model.GroceryItem) tea.Cmd {
	return m.persist("grocery item", func(ctx context.Context, s store.Store) error {
		return s.UpsertGroceryItem(ctx, item)
	})
}

func (m Model) deleteGroceryItem(id string) tea.Cmd {
	return m.persist("grocery item", func(ctx context.Context, s store.Store) error {
		return s.DeleteGroceryItem(ctx, id)
	})
}

func (m Model) savePantryItem(item model.PantryItem) tea.Cmd {
	return m.persist("pantry item", func(ctx context.Context, s store.Store) error {
		return s.InsertPantryItem(ctx, item)
	})
}

func (m Model) saveMealPlan(plan model.MealPlan) tea.Cmd {
	return m.persist("meal plan", func(ctx context.Context, s store.Store) error {
		return s.UpsertMealPlan(ctx, plan)
	})
}
