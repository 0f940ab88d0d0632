package store

import (
	"context"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// Data is a full copy of every tracker's records, in display order.
type Data struct {
	FoodEntries  []model.FoodEntry
	GroceryItems []model.GroceryItem
	PantryItems  []model.PantryItem
	MealPlans    []model.MealPlan
}

// Store defines the persistence interface for the four trackers.
type Store interface {
	// === Calorie log ===

	InsertFoodEntry(ctx context.Context, e model.FoodEntry) error
	GetFoodEntries(ctx context.Context) ([]model.FoodEntry, error)

	// === Grocery list ===

	UpsertGroceryItem(ctx context.Context, item model.GroceryItem) error
	DeleteGroceryItem(ctx context.Context, id string) error
	GetGroceryItems(ctx context.Context) ([]model.GroceryItem, error)

	// === Pantry ===

	InsertPantryItem(ctx context.Context, item model.PantryItem) error
	GetPantryItems(ctx context.Context) ([]model.PantryItem, error)

	// === Meal plans ===

	UpsertMealPlan(ctx context.Context, plan model.MealPlan) error
	GetMealPlans(ctx context.Context) ([]model.MealPlan, error)

	// === Bulk ===

	// Load reads every tracker's records.
	Load(ctx context.Context) (Data, error)
	// SeedOnce writes data the first time it is called on a database and
	// reports whether it did.
	SeedOnce(ctx context.Context, data Data) (bool, error)

	Close() error
}
