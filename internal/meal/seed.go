package meal

import "github.com/nhle/kitchen-tracker/internal/model"

// SeedPlans returns the sample week shown on first launch.
func SeedPlans() []model.MealPlan {
	return []model.MealPlan{
		{
			ID:  model.NewID(),
			Day: "Monday",
			Meals: model.Meals{
				Breakfast: "Overnight oats with berries",
				Lunch:     "Grilled chicken salad",
				Dinner:    "Salmon with quinoa",
				Snack:     "Greek yogurt",
			},
			TotalCalories: 1850,
			SortOrder:     1,
		},
		{
			ID:  model.NewID(),
			Day: "Tuesday",
			Meals: model.Meals{
				Breakfast: "Avocado toast",
				Lunch:     "Turkey wrap",
				Dinner:    "Stir-fry vegetables",
				Snack:     "Almonds",
			},
			TotalCalories: 1750,
			SortOrder:     2,
		},
	}
}

// Catalog is the built-in recipe list.
func Catalog() []model.Recipe {
	return []model.Recipe{
		{
			ID:              "protein-smoothie-bowl",
			Name:            "Protein Smoothie Bowl",
			Calories:        320,
			PrepTimeMinutes: 10,
			Ingredients:     []string{"Banana", "Protein powder", "Almond milk", "Berries"},
			MealType:        model.MealBreakfast,
		},
		{
			ID:              "mediterranean-bowl",
			Name:            "Mediterranean Bowl",
			Calories:        450,
			PrepTimeMinutes: 15,
			Ingredients:     []string{"Quinoa", "Chickpeas", "Cucumber", "Feta", "Olive oil"},
			MealType:        model.MealLunch,
		},
		{
			ID:              "grilled-salmon",
			Name:            "Grilled Salmon",
			Calories:        380,
			PrepTimeMinutes: 20,
			Ingredients:     []string{"Salmon fillet", "Asparagus", "Lemon", "Herbs"},
			MealType:        model.MealDinner,
		},
		{
			ID:              "trail-mix",
			Name:            "Trail Mix",
			Calories:        180,
			PrepTimeMinutes: 2,
			Ingredients:     []string{"Almonds", "Dried cranberries", "Dark chocolate chips"},
			MealType:        model.MealSnack,
		},
	}
}
