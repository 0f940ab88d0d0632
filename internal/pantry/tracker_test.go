package pantry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/model"
)

var today = time.Date(2026, 7, 18, 21, 30, 0, 0, time.Local)

func newTestTracker(opts ...Option) *Tracker {
	opts = append([]Option{WithClock(func() time.Time { return today })}, opts...)
	return NewTracker(opts...)
}

func TestClassifyExpiry_Bands(t *testing.T) {
	tests := []struct {
		days  int
		band  Band
		label string
	}{
		{days: -30, band: BandExpired, label: "Expired"},
		{days: -1, band: BandExpired, label: "Expired"},
		{days: 0, band: BandCritical, label: "0d left"},
		{days: 3, band: BandCritical, label: "3d left"},
		{days: 4, band: BandWarning, label: "4d left"},
		{days: 7, band: BandWarning, label: "7d left"},
		{days: 8, band: BandGood, label: "8d left"},
		{days: 365, band: BandGood, label: "365d left"},
	}

	for _, tt := range tests {
		got := ClassifyExpiry(tt.days)
		assert.Equal(t, tt.band, got.Band, "days=%d", tt.days)
		assert.Equal(t, tt.label, got.Label, "days=%d", tt.days)
	}
}

func TestClassifyExpiry_Exhaustive(t *testing.T) {
	prev := ClassifyExpiry(-100).Band
	transitions := 0
	for d := -99; d <= 100; d++ {
		b := ClassifyExpiry(d).Band
		if b != prev {
			transitions++
			prev = b
		}
	}
	assert.Equal(t, 3, transitions, "four bands, each contiguous")
}

func TestDaysUntil_CalendarDays(t *testing.T) {
	exp := time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysUntil(exp, today), "late evening still counts tomorrow as one day")
	assert.Equal(t, 0, DaysUntil(time.Date(2026, 7, 18, 0, 0, 0, 0, time.UTC), today))
	assert.Equal(t, -3, DaysUntil(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC), today))

	// Across a DST change in a zone that observes it.
	ny, err := time.LoadLocation("America/New_York")
	if err == nil {
		before := time.Date(2026, 3, 7, 12, 0, 0, 0, ny)
		after := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, 2, DaysUntil(after, before))
	}
}

func TestAddItem_ComputesDaysOnce(t *testing.T) {
	now := today
	tr := NewTracker(WithClock(func() time.Time { return now }))

	item, err := tr.AddItem("Milk", "", "2026-07-23", "")
	require.NoError(t, err)
	assert.Equal(t, 5, item.DaysUntilExpiry)
	assert.Equal(t, model.DefaultCategory, item.Category)
	assert.Equal(t, model.DefaultQuantity, item.Quantity)

	now = now.AddDate(0, 0, 10)
	assert.Equal(t, 5, tr.Items()[0].DaysUntilExpiry, "not refreshed as time passes")
}

func TestAddItem_Validation(t *testing.T) {
	tests := []struct {
		name, item, exp string
	}{
		{name: "missing name", item: "", exp: "2026-08-01"},
		{name: "missing date", item: "Rice", exp: ""},
		{name: "bad date", item: "Rice", exp: "next week"},
		{name: "wrong layout", item: "Rice", exp: "08/01/2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(WithItems(SeedItems(today)...))
			f := Form{Name: tt.item, Expiration: tt.exp, Category: "Grains"}

			_, err := f.Submit(tr)
			require.True(t, model.IsValidationError(err))
			assert.Equal(t, 4, tr.Len())
			assert.Equal(t, "Grains", f.Category)
		})
	}
}

func TestForm_SubmitClearsBuffer(t *testing.T) {
	tr := newTestTracker()
	f := Form{Name: "Rice", Category: "Grains", Expiration: "2027-01-01", Quantity: "2 kg"}

	item, err := f.Submit(tr)
	require.NoError(t, err)
	assert.Equal(t, "Grains", item.Category)
	assert.Equal(t, Form{}, f)
}

func daysOf(items []model.PantryItem) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.DaysUntilExpiry
	}
	return out
}

func TestSortedByUrgency_Stable(t *testing.T) {
	items := []model.PantryItem{
		{ID: "a", DaysUntilExpiry: 4},
		{ID: "b", DaysUntilExpiry: -1},
		{ID: "c", DaysUntilExpiry: 7},
		{ID: "d", DaysUntilExpiry: -1},
	}
	tr := newTestTracker(WithItems(items...))

	sorted := tr.SortedByUrgency()
	assert.Equal(t, []int{-1, -1, 4, 7}, daysOf(sorted))
	assert.Equal(t, "b", sorted[0].ID)
	assert.Equal(t, "d", sorted[1].ID)
	assert.Equal(t, "a", tr.Items()[0].ID, "store order untouched")
}

func TestCounts(t *testing.T) {
	items := []model.PantryItem{
		{ID: "a", DaysUntilExpiry: -2},
		{ID: "b", DaysUntilExpiry: 0},
		{ID: "c", DaysUntilExpiry: 7},
		{ID: "d", DaysUntilExpiry: 8},
	}
	tr := newTestTracker(WithItems(items...))

	assert.Equal(t, 3, tr.ExpiringSoonCount())
	assert.Equal(t, 1, tr.ExpiredCount())
	assert.Equal(t, 4, tr.Len())
}

func TestSeedItems_ConsistentWithToday(t *testing.T) {
	for _, it := range SeedItems(today) {
		assert.Equal(t, it.DaysUntilExpiry, DaysUntil(it.ExpirationDate, today), it.Name)
	}
	tr := newTestTracker(WithItems(SeedItems(today)...))
	assert.Equal(t, []int{1, 2, 4, 240}, daysOf(tr.SortedByUrgency()))
	assert.Equal(t, 3, tr.ExpiringSoonCount())
	assert.Equal(t, 0, tr.ExpiredCount())
}
