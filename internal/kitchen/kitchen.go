// Package kitchen bundles the four trackers and moves them in and out of
// the store.
package kitchen

import (
	"context"
	"fmt"
	"time"

	"github.com/nhle/kitchen-tracker/internal/calorie"
	"github.com/nhle/kitchen-tracker/internal/grocery"
	"github.com/nhle/kitchen-tracker/internal/meal"
	"github.com/nhle/kitchen-tracker/internal/pantry"
	"github.com/nhle/kitchen-tracker/internal/store"
)

// Kitchen holds one instance of every tracker. The trackers never reference
// each other.
type Kitchen struct {
	Calories  *calorie.Tracker
	Groceries *grocery.List
	Pantry    *pantry.Tracker
	Meals     *meal.Planner
}

// SeedData returns the sample records every tracker starts with.
func SeedData(now time.Time) store.Data {
	return store.Data{
		FoodEntries:  calorie.SeedEntries(now),
		GroceryItems: grocery.SeedItems(),
		PantryItems:  pantry.SeedItems(now),
		MealPlans:    meal.SeedPlans(),
	}
}

// FromData builds the trackers around d.
func FromData(d store.Data, goal int, now func() time.Time) *Kitchen {
	return &Kitchen{
		Calories:  calorie.NewTracker(goal, calorie.WithClock(now), calorie.WithEntries(d.FoodEntries...)),
		Groceries: grocery.NewList(d.GroceryItems...),
		Pantry:    pantry.NewTracker(pantry.WithClock(now), pantry.WithItems(d.PantryItems...)),
		Meals:     meal.NewPlanner(d.MealPlans, meal.Catalog()),
	}
}

// Seeded returns a kitchen holding only the sample data.
func Seeded(goal int, now func() time.Time) *Kitchen {
	return FromData(SeedData(now()), goal, now)
}

// Load seeds s on first use and builds the trackers from its contents.
func Load(ctx context.Context, s store.Store, goal int, now func() time.Time) (*Kitchen, error) {
	if _, err := s.SeedOnce(ctx, SeedData(now())); err != nil {
		return nil, fmt.Errorf("seeding store: %w", err)
	}
	d, err := s.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading store: %w", err)
	}
	return FromData(d, goal, now), nil
}

// Data copies the current records of every tracker.
func (k *Kitchen) Data() store.Data {
	return store.Data{
		FoodEntries:  k.Calories.Entries(),
		GroceryItems: k.Groceries.Items(),
		PantryItems:  k.Pantry.Items(),
		MealPlans:    k.Meals.Plans(),
	}
}
