package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// InsertFoodEntry appends an entry to the calorie log.
func (s *SQLiteStore) InsertFoodEntry(ctx context.Context, e model.FoodEntry) error {
	return insertFoodEntry(ctx, s.db, e)
}

func insertFoodEntry(ctx context.Context, db sqlx.ExecerContext, e model.FoodEntry) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO food_entries (id, name, calories, logged_at) VALUES (?, ?, ?, ?)",
		e.ID, e.Name, e.Calories, e.LoggedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting food entry %s: %w", e.ID, err)
	}
	return nil
}

// GetFoodEntries returns the calorie log oldest first.
func (s *SQLiteStore) GetFoodEntries(ctx context.Context) ([]model.FoodEntry, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, calories, logged_at FROM food_entries ORDER BY logged_at, rowid")
	if err != nil {
		return nil, fmt.Errorf("querying food entries: %w", err)
	}
	defer rows.Close()

	var entries []model.FoodEntry
	for rows.Next() {
		var e model.FoodEntry
		if err := rows.Scan(&e.ID, &e.Name, &e.Calories, &e.LoggedAt); err != nil {
			return nil, fmt.Errorf("scanning food entry row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
