package calorie

import (
	"time"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// SeedEntries returns the sample log shown on first launch, timestamped on
// the day of now.
func SeedEntries(now time.Time) []model.FoodEntry {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return []model.FoodEntry{
		{ID: model.NewID(), Name: "Oatmeal with berries", Calories: 320, LoggedAt: day.Add(8*time.Hour + 30*time.Minute)},
		{ID: model.NewID(), Name: "Grilled chicken salad", Calories: 450, LoggedAt: day.Add(12*time.Hour + 45*time.Minute)},
	}
}
