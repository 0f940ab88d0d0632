package calorie

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/model"
)

var fixedNow = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

func newTestTracker(goal int) *Tracker {
	return NewTracker(goal, WithClock(func() time.Time { return fixedNow }))
}

func TestAddEntry_IncreasesTotalByCalories(t *testing.T) {
	tr := newTestTracker(2000)

	_, err := tr.AddEntry("Apple", "95")
	require.NoError(t, err)
	before := tr.TotalCalories()
	remainingBefore := tr.Remaining()

	entry, err := tr.AddEntry("Pasta", "600")
	require.NoError(t, err)

	assert.Equal(t, before+600, tr.TotalCalories())
	assert.Equal(t, remainingBefore-600, tr.Remaining())
	assert.Equal(t, "Pasta", entry.Name)
	assert.Equal(t, fixedNow, entry.LoggedAt)
	assert.NotEmpty(t, entry.ID)
}

func TestRemaining_FlooredAtZero(t *testing.T) {
	tr := newTestTracker(500)

	_, err := tr.AddEntry("Burger", "800")
	require.NoError(t, err)

	assert.Equal(t, 0, tr.Remaining())
	assert.InDelta(t, 160.0, tr.ProgressPercent(), 0.001)
	assert.InDelta(t, 100.0, tr.BarPercent(), 0.001)
	assert.Equal(t, 160, tr.RoundedPercent())
}

func TestProgressPercent(t *testing.T) {
	tr := NewTracker(2000, WithEntries(SeedEntries(fixedNow)...))

	assert.Equal(t, 770, tr.TotalCalories())
	assert.Equal(t, 1230, tr.Remaining())
	assert.InDelta(t, 38.5, tr.ProgressPercent(), 0.001)
	assert.Equal(t, 39, tr.RoundedPercent())
}

func TestNewTracker_DefaultGoal(t *testing.T) {
	assert.Equal(t, DefaultDailyGoal, NewTracker(0).Goal())
	assert.Equal(t, 0.0, NewTracker(-5).ProgressPercent())
}

func TestAddEntry_Validation(t *testing.T) {
	tests := []struct {
		name     string
		food     string
		calories string
		field    string
	}{
		{name: "empty name", food: "", calories: "100", field: "food"},
		{name: "empty calories", food: "Toast", calories: "", field: "food"},
		{name: "whitespace only", food: "   ", calories: " ", field: "food"},
		{name: "non-numeric", food: "Toast", calories: "lots", field: "calories"},
		{name: "fractional", food: "Toast", calories: "12.5", field: "calories"},
		{name: "negative", food: "Toast", calories: "-40", field: "calories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(2000)
			_, err := tr.AddEntry(tt.food, tt.calories)

			var v *model.ValidationError
			require.ErrorAs(t, err, &v)
			assert.Equal(t, tt.field, v.Field)
			assert.Equal(t, 0, tr.Len())
		})
	}
}

func TestAddEntry_ZeroCaloriesAllowed(t *testing.T) {
	tr := newTestTracker(2000)
	_, err := tr.AddEntry("Water", "0")
	require.NoError(t, err)
	assert.Equal(t, 1, tr.Len())
}

func TestForm_RetainedOnFailureClearedOnSuccess(t *testing.T) {
	tr := newTestTracker(2000)
	f := Form{Name: "Granola"}

	_, err := f.Submit(tr)
	require.Error(t, err)
	assert.Equal(t, "Granola", f.Name, "buffer kept after validation failure")
	assert.Equal(t, 0, tr.Len())

	f.Calories = "210"
	_, err = f.Submit(tr)
	require.NoError(t, err)
	assert.Equal(t, Form{}, f)
	assert.Equal(t, 1, tr.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	tr := NewTracker(2000, WithEntries(SeedEntries(fixedNow)...))
	entries := tr.Entries()
	entries[0].Calories = 9999

	assert.Equal(t, 320, tr.Entries()[0].Calories)
}

func TestLastMealAgo(t *testing.T) {
	tr := newTestTracker(2000)
	_, ok := tr.LastMealAgo(fixedNow)
	assert.False(t, ok)

	tr = NewTracker(2000, WithEntries(SeedEntries(fixedNow)...))
	ago, ok := tr.LastMealAgo(fixedNow)
	require.True(t, ok)
	assert.Equal(t, 5*time.Hour+15*time.Minute, ago)
}
