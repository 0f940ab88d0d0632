// Package pantry tracks stocked items and how soon they expire.
package pantry

import (
	"slices"
	"strings"
	"time"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// SoonThresholdDays is the cutoff for the "expiring soon" count.
const SoonThresholdDays = 7

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the clock used to compute days until expiry.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) { t.now = now }
}

// WithItems pre-populates the pantry.
func WithItems(items ...model.PantryItem) Option {
	return func(t *Tracker) { t.items = append(t.items, items...) }
}

// Tracker owns the pantry inventory.
type Tracker struct {
	items []model.PantryItem
	now   func() time.Time
}

// NewTracker creates an empty pantry.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{now: time.Now}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Today returns the tracker's current time.
func (t *Tracker) Today() time.Time { return t.now() }

// AddItem validates the raw form values and stores a new item. The
// expiration date must be in YYYY-MM-DD form. DaysUntilExpiry is computed
// here, once, against today's date.
func (t *Tracker) AddItem(name, category, expiration, quantity string) (model.PantryItem, error) {
	name = strings.TrimSpace(name)
	expiration = strings.TrimSpace(expiration)
	if name == "" || expiration == "" {
		return model.PantryItem{}, model.Invalid("item", "please fill in item name and expiration date")
	}

	exp, err := time.Parse(model.DateLayout, expiration)
	if err != nil {
		return model.PantryItem{}, model.Invalid("expiration", "%q is not a date, use YYYY-MM-DD", expiration)
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = model.DefaultCategory
	}
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		quantity = model.DefaultQuantity
	}

	item := model.PantryItem{
		ID:              model.NewID(),
		Name:            name,
		Category:        category,
		ExpirationDate:  exp,
		Quantity:        quantity,
		DaysUntilExpiry: DaysUntil(exp, t.now()),
		SortOrder:       len(t.items) + 1,
	}
	t.items = append(t.items, item)
	return item, nil
}

// Items returns a copy of the pantry in insertion order.
func (t *Tracker) Items() []model.PantryItem {
	return slices.Clone(t.items)
}

// Len returns the number of items.
func (t *Tracker) Len() int { return len(t.items) }

// SortedByUrgency returns the items ordered by days until expiry, most
// urgent first. Ties keep insertion order.
func (t *Tracker) SortedByUrgency() []model.PantryItem {
	return SortByUrgency(t.items)
}

// SortByUrgency returns a stably sorted copy of items.
func SortByUrgency(items []model.PantryItem) []model.PantryItem {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b model.PantryItem) int {
		return a.DaysUntilExpiry - b.DaysUntilExpiry
	})
	return out
}

// ExpiringSoonCount counts items expiring within SoonThresholdDays,
// including those already expired.
func (t *Tracker) ExpiringSoonCount() int {
	n := 0
	for _, it := range t.items {
		if it.DaysUntilExpiry <= SoonThresholdDays {
			n++
		}
	}
	return n
}

// ExpiredCount counts items past their expiration date.
func (t *Tracker) ExpiredCount() int {
	n := 0
	for _, it := range t.items {
		if it.DaysUntilExpiry < 0 {
			n++
		}
	}
	return n
}
