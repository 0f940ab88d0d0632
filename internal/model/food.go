package model

import "time"

// FoodEntry is a single logged food item in the calorie log.
type FoodEntry struct {
	ID       string    `json:"id" yaml:"id" db:"id"`
	Name     string    `json:"name" yaml:"name" db:"name"`
	Calories int       `json:"calories" yaml:"calories" db:"calories"`
	LoggedAt time.Time `json:"logged_at" yaml:"logged_at" db:"logged_at"`
}
