package model

import "fmt"

// MealType identifies a slot in a day's meal plan.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

// MealTypes lists every meal slot in display order.
var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

// Label returns the capitalized display name of the meal type.
func (t MealType) Label() string {
	switch t {
	case MealBreakfast:
		return "Breakfast"
	case MealLunch:
		return "Lunch"
	case MealDinner:
		return "Dinner"
	case MealSnack:
		return "Snack"
	default:
		return string(t)
	}
}

// ParseMealType validates a meal type name.
func ParseMealType(s string) (MealType, error) {
	for _, t := range MealTypes {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown meal type %q", s)
}

// Weekdays lists the day names a meal plan may be created for.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// Meals holds the free-text dish for each slot of a day.
type Meals struct {
	Breakfast string `json:"breakfast" yaml:"breakfast" db:"breakfast"`
	Lunch     string `json:"lunch" yaml:"lunch" db:"lunch"`
	Dinner    string `json:"dinner" yaml:"dinner" db:"dinner"`
	Snack     string `json:"snack" yaml:"snack" db:"snack"`
}

// Slot returns the dish planned for the given meal type.
func (m Meals) Slot(t MealType) string {
	switch t {
	case MealBreakfast:
		return m.Breakfast
	case MealLunch:
		return m.Lunch
	case MealDinner:
		return m.Dinner
	case MealSnack:
		return m.Snack
	default:
		return ""
	}
}

// SetSlot assigns a dish to the given meal type.
func (m *Meals) SetSlot(t MealType, dish string) {
	switch t {
	case MealBreakfast:
		m.Breakfast = dish
	case MealLunch:
		m.Lunch = dish
	case MealDinner:
		m.Dinner = dish
	case MealSnack:
		m.Snack = dish
	}
}

// MealPlan is the plan for one day of the week.
type MealPlan struct {
	ID    string `json:"id" yaml:"id" db:"id"`
	Day   string `json:"day" yaml:"day" db:"day"`
	Meals Meals  `json:"meals" yaml:"meals"`

	// TotalCalories is tracked independently of the planned dishes.
	TotalCalories int `json:"total_calories" yaml:"total_calories" db:"total_calories"`

	SortOrder int `json:"-" yaml:"-" db:"sort_order"`
}

// Recipe is static reference data shown in the meal planner.
type Recipe struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Calories        int      `json:"calories" yaml:"calories"`
	PrepTimeMinutes int      `json:"prep_time_minutes" yaml:"prep_time_minutes"`
	Ingredients     []string `json:"ingredients" yaml:"ingredients"`
	MealType        MealType `json:"meal_type" yaml:"meal_type"`
}
