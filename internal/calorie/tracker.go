// Package calorie implements the daily calorie log: an ordered list of food
// entries measured against a daily goal.
package calorie

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// DefaultDailyGoal is used when no goal is configured.
const DefaultDailyGoal = 2000

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to timestamp new entries.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithEntries pre-populates the log.
func WithEntries(entries ...model.FoodEntry) Option {
	return func(t *Tracker) { t.entries = append(t.entries, entries...) }
}

// Tracker owns the food log for one day.
type Tracker struct {
	goal    int
	entries []model.FoodEntry
	now     func() time.Time
}

// NewTracker creates a calorie log with the given daily goal. A goal of zero
// or less falls back to DefaultDailyGoal.
func NewTracker(goal int, opts ...Option) *Tracker {
	if goal <= 0 {
		goal = DefaultDailyGoal
	}
	t := &Tracker{goal: goal, now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// AddEntry validates the raw form values and appends a new entry.
// Calories must be a whole number of zero or more.
func (t *Tracker) AddEntry(name, calories string) (model.FoodEntry, error) {
	name = strings.TrimSpace(name)
	calories = strings.TrimSpace(calories)
	if name == "" || calories == "" {
		return model.FoodEntry{}, model.Invalid("food", "please fill in both food name and calories")
	}

	kcal, err := strconv.Atoi(calories)
	if err != nil {
		return model.FoodEntry{}, model.Invalid("calories", "%q is not a whole number", calories)
	}
	if kcal < 0 {
		return model.FoodEntry{}, model.Invalid("calories", "must not be negative")
	}

	entry := model.FoodEntry{
		ID:       model.NewID(),
		Name:     name,
		Calories: kcal,
		LoggedAt: t.now(),
	}
	t.entries = append(t.entries, entry)
	return entry, nil
}

// Entries returns a copy of the log in insertion order.
func (t *Tracker) Entries() []model.FoodEntry {
	out := make([]model.FoodEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of logged entries.
func (t *Tracker) Len() int { return len(t.entries) }

// Goal returns the daily calorie goal.
func (t *Tracker) Goal() int { return t.goal }

// TotalCalories sums every entry.
func (t *Tracker) TotalCalories() int {
	total := 0
	for _, e := range t.entries {
		total += e.Calories
	}
	return total
}

// Remaining returns the calories left before the goal, never below zero.
func (t *Tracker) Remaining() int {
	r := t.goal - t.TotalCalories()
	if r < 0 {
		return 0
	}
	return r
}

// ProgressPercent returns consumption as a percentage of the goal. It is not
// clamped and may exceed 100.
func (t *Tracker) ProgressPercent() float64 {
	if t.goal <= 0 {
		return 0
	}
	return 100 * float64(t.TotalCalories()) / float64(t.goal)
}

// BarPercent is ProgressPercent clamped to [0, 100] for the progress bar.
func (t *Tracker) BarPercent() float64 {
	return math.Max(0, math.Min(t.ProgressPercent(), 100))
}

// RoundedPercent is the progress label value.
func (t *Tracker) RoundedPercent() int {
	return int(math.Round(t.ProgressPercent()))
}

// LastMealAgo reports how long ago the most recent entry was logged.
func (t *Tracker) LastMealAgo(now time.Time) (time.Duration, bool) {
	if len(t.entries) == 0 {
		return 0, false
	}
	latest := t.entries[0].LoggedAt
	for _, e := range t.entries[1:] {
		if e.LoggedAt.After(latest) {
			latest = e.LoggedAt
		}
	}
	ago := now.Sub(latest)
	if ago < 0 {
		ago = 0
	}
	return ago, true
}
