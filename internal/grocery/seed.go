package grocery

import "github.com/nhle/kitchen-tracker/internal/model"

// SeedItems returns the sample shopping list shown on first launch.
func SeedItems() []model.GroceryItem {
	return []model.GroceryItem{
		{ID: model.NewID(), Name: "Organic apples", Quantity: "6", Category: "Produce", SortOrder: 1},
		{ID: model.NewID(), Name: "Greek yogurt", Quantity: "2 cups", Completed: true, Category: "Dairy", SortOrder: 2},
		{ID: model.NewID(), Name: "Chicken breast", Quantity: "1 lb", Category: "Meat", SortOrder: 3},
		{ID: model.NewID(), Name: "Brown rice", Quantity: "1 bag", Category: "Pantry", SortOrder: 4},
	}
}
