package pantry

import (
	"time"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// SeedItems returns the sample pantry, with expiration dates relative to
// today so the sample always shows every band but "expired".
func SeedItems(today time.Time) []model.PantryItem {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	item := func(order int, name, category, quantity string, days int) model.PantryItem {
		return model.PantryItem{
			ID:              model.NewID(),
			Name:            name,
			Category:        category,
			ExpirationDate:  day.AddDate(0, 0, days),
			Quantity:        quantity,
			DaysUntilExpiry: days,
			SortOrder:       order,
		}
	}
	return []model.PantryItem{
		item(1, "Whole wheat bread", "Bakery", "1 loaf", 2),
		item(2, "Canned tomatoes", "Canned goods", "3 cans", 240),
		item(3, "Greek yogurt", "Dairy", "4 cups", 4),
		item(4, "Bananas", "Produce", "6", 1),
	}
}
