// Package report derives the summary figures of every tracker for the
// summary and export commands.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/nhle/kitchen-tracker/internal/kitchen"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/pantry"
)

// CalorieSummary holds the calorie log aggregates.
type CalorieSummary struct {
	Goal            int               `yaml:"goal"`
	Total           int               `yaml:"total"`
	Remaining       int               `yaml:"remaining"`
	ProgressPercent int               `yaml:"progress_percent"`
	Entries         []model.FoodEntry `yaml:"entries"`
}

// GrocerySummary holds the grocery list aggregates.
type GrocerySummary struct {
	Total             int                 `yaml:"total"`
	Completed         int                 `yaml:"completed"`
	CompletionPercent int                 `yaml:"completion_percent"`
	Items             []model.GroceryItem `yaml:"items"`
}

// PantryItem is a pantry record with its expiry label.
type PantryItem struct {
	model.PantryItem `yaml:",inline"`
	Status           string `yaml:"status"`
}

// PantrySummary holds the pantry aggregates. Items are sorted by urgency.
type PantrySummary struct {
	Total        int          `yaml:"total"`
	ExpiringSoon int          `yaml:"expiring_soon"`
	Expired      int          `yaml:"expired"`
	Items        []PantryItem `yaml:"items"`
}

// MealSummary holds the meal planner aggregates.
type MealSummary struct {
	Plans           int              `yaml:"plans"`
	AverageCalories int              `yaml:"average_calories"`
	Week            []model.MealPlan `yaml:"week"`
	Recipes         []model.Recipe   `yaml:"recipes"`
}

// Snapshot is a point-in-time view of the whole kitchen.
type Snapshot struct {
	GeneratedAt time.Time      `yaml:"generated_at"`
	Calories    CalorieSummary `yaml:"calories"`
	Groceries   GrocerySummary `yaml:"groceries"`
	Pantry      PantrySummary  `yaml:"pantry"`
	Meals       MealSummary    `yaml:"meals"`
}

// Take builds a snapshot of k.
func Take(k *kitchen.Kitchen, now time.Time) Snapshot {
	var items []PantryItem
	for _, it := range k.Pantry.SortedByUrgency() {
		items = append(items, PantryItem{
			PantryItem: it,
			Status:     pantry.ClassifyExpiry(it.DaysUntilExpiry).Label,
		})
	}

	return Snapshot{
		GeneratedAt: now,
		Calories: CalorieSummary{
			Goal:            k.Calories.Goal(),
			Total:           k.Calories.TotalCalories(),
			Remaining:       k.Calories.Remaining(),
			ProgressPercent: k.Calories.RoundedPercent(),
			Entries:         k.Calories.Entries(),
		},
		Groceries: GrocerySummary{
			Total:             k.Groceries.Len(),
			Completed:         k.Groceries.CompletedCount(),
			CompletionPercent: k.Groceries.CompletionPercent(),
			Items:             k.Groceries.Items(),
		},
		Pantry: PantrySummary{
			Total:        k.Pantry.Len(),
			ExpiringSoon: k.Pantry.ExpiringSoonCount(),
			Expired:      k.Pantry.ExpiredCount(),
			Items:        items,
		},
		Meals: MealSummary{
			Plans:           k.Meals.Len(),
			AverageCalories: k.Meals.RoundedAverage(),
			Week:            k.Meals.Plans(),
			Recipes:         k.Meals.Recipes(),
		},
	}
}

// WriteYAML encodes s as YAML.
func WriteYAML(w io.Writer, s Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing snapshot: %w", err)
	}
	return nil
}

var headingStyle = lipgloss.NewStyle().Bold(true)

// WriteSummary prints the aggregates of every tracker.
func WriteSummary(w io.Writer, s Snapshot) error {
	c, g, p, m := s.Calories, s.Groceries, s.Pantry, s.Meals
	_, err := fmt.Fprintf(w,
		"%s\n  %d / %d kcal (%d%%), %d remaining\n"+
			"%s\n  %d of %d items (%d%%)\n"+
			"%s\n  %d items, %d expiring soon, %d expired\n"+
			"%s\n  %d plans, avg %d kcal/day\n",
		headingStyle.Render("Calories"), c.Total, c.Goal, c.ProgressPercent, c.Remaining,
		headingStyle.Render("Groceries"), g.Completed, g.Total, g.CompletionPercent,
		headingStyle.Render("Pantry"), p.Total, p.ExpiringSoon, p.Expired,
		headingStyle.Render("Meals"), m.Plans, m.AverageCalories,
	)
	return err
}
