// Package meal implements the weekly meal planner and its recipe catalog.
package meal

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// ErrPlanNotFound is returned when a plan id does not exist.
var ErrPlanNotFound = errors.New("meal plan not found")

// ErrRecipeNotFound is returned when a recipe id does not exist.
var ErrRecipeNotFound = errors.New("recipe not found")

// Planner owns the meal plans and the read-only recipe catalog.
type Planner struct {
	plans   []model.MealPlan
	recipes []model.Recipe
}

// NewPlanner creates a planner with the given plans and recipe catalog.
func NewPlanner(plans []model.MealPlan, recipes []model.Recipe) *Planner {
	return &Planner{
		plans:   slices.Clone(plans),
		recipes: slices.Clone(recipes),
	}
}

// AddPlan creates an empty plan for day. The day must be one of
// model.Weekdays; several plans may share a day.
func (p *Planner) AddPlan(day string) (model.MealPlan, error) {
	day = strings.TrimSpace(day)
	if day == "" {
		return model.MealPlan{}, model.Invalid("day", "please select a day")
	}
	if !slices.Contains(model.Weekdays, day) {
		return model.MealPlan{}, model.Invalid("day", "%q is not a day of the week", day)
	}

	plan := model.MealPlan{
		ID:        model.NewID(),
		Day:       day,
		SortOrder: len(p.plans) + 1,
	}
	p.plans = append(p.plans, plan)
	return plan, nil
}

// AssignRecipe writes the recipe's name into the matching meal slot of the
// plan. The plan's TotalCalories is left as it is.
func (p *Planner) AssignRecipe(planID, recipeID string) (model.MealPlan, error) {
	r, err := p.Recipe(recipeID)
	if err != nil {
		return model.MealPlan{}, err
	}
	i := slices.IndexFunc(p.plans, func(mp model.MealPlan) bool { return mp.ID == planID })
	if i < 0 {
		return model.MealPlan{}, fmt.Errorf("assigning to %s: %w", planID, ErrPlanNotFound)
	}
	p.plans[i].Meals.SetSlot(r.MealType, r.Name)
	return p.plans[i], nil
}

// Plans returns a copy of the plans in insertion order.
func (p *Planner) Plans() []model.MealPlan {
	return slices.Clone(p.plans)
}

// Len returns the number of plans.
func (p *Planner) Len() int { return len(p.plans) }

// AverageCalories is the mean TotalCalories across plans, 0 with no plans.
func (p *Planner) AverageCalories() float64 {
	if len(p.plans) == 0 {
		return 0
	}
	sum := 0
	for _, plan := range p.plans {
		sum += plan.TotalCalories
	}
	return float64(sum) / float64(len(p.plans))
}

// RoundedAverage is AverageCalories rounded for display.
func (p *Planner) RoundedAverage() int {
	return int(math.Round(p.AverageCalories()))
}

// Recipes returns the recipe catalog.
func (p *Planner) Recipes() []model.Recipe {
	return slices.Clone(p.recipes)
}

// RecipesByType returns the recipes for one meal type, in catalog order.
func (p *Planner) RecipesByType(t model.MealType) []model.Recipe {
	var out []model.Recipe
	for _, r := range p.recipes {
		if r.MealType == t {
			out = append(out, r)
		}
	}
	return out
}

// Recipe looks up a recipe by id.
func (p *Planner) Recipe(id string) (model.Recipe, error) {
	for _, r := range p.recipes {
		if r.ID == id {
			return r, nil
		}
	}
	return model.Recipe{}, fmt.Errorf("recipe %s: %w", id, ErrRecipeNotFound)
}
