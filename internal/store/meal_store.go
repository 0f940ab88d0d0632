package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// UpsertMealPlan inserts a plan or replaces it by id.
func (s *SQLiteStore) UpsertMealPlan(ctx context.Context, plan model.MealPlan) error {
	return upsertMealPlan(ctx, s.db, plan)
}

func upsertMealPlan(ctx context.Context, db sqlx.ExecerContext, plan model.MealPlan) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO meal_plans (
			id, day, breakfast, lunch, dinner, snack, total_calories, sort_order
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		plan.ID, plan.Day,
		plan.Meals.Breakfast, plan.Meals.Lunch, plan.Meals.Dinner, plan.Meals.Snack,
		plan.TotalCalories, plan.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("upserting meal plan %s: %w", plan.ID, err)
	}
	return nil
}

// GetMealPlans returns the plans in insertion order.
func (s *SQLiteStore) GetMealPlans(ctx context.Context) ([]model.MealPlan, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, day, breakfast, lunch, dinner, snack, total_calories, sort_order
		FROM meal_plans ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying meal plans: %w", err)
	}
	defer rows.Close()

	var plans []model.MealPlan
	for rows.Next() {
		var p model.MealPlan
		err := rows.Scan(
			&p.ID, &p.Day,
			&p.Meals.Breakfast, &p.Meals.Lunch, &p.Meals.Dinner, &p.Meals.Snack,
			&p.TotalCalories, &p.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning meal plan row: %w", err)
		}
		plans = append(plans, p)
	}
	return plans, rows.Err()
}
