package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// UpsertGroceryItem inserts an item or replaces it by id. Toggling an item
// goes through here too.
func (s *SQLiteStore) UpsertGroceryItem(ctx context.Context, item model.GroceryItem) error {
	return upsertGroceryItem(ctx, s.db, item)
}

func upsertGroceryItem(ctx context.Context, db sqlx.ExecerContext, item model.GroceryItem) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO grocery_items (
			id, name, quantity, completed, category, sort_order
		) VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Quantity, boolToInt(item.Completed),
		item.Category, item.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("upserting grocery item %s: %w", item.ID, err)
	}
	return nil
}

// DeleteGroceryItem removes an item by id.
func (s *SQLiteStore) DeleteGroceryItem(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM grocery_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting grocery item %s: %w", id, err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("grocery item %s not found", id)
	}
	return nil
}

// GetGroceryItems returns the list in insertion order.
func (s *SQLiteStore) GetGroceryItems(ctx context.Context) ([]model.GroceryItem, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, quantity, completed, category, sort_order
		FROM grocery_items ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying grocery items: %w", err)
	}
	defer rows.Close()

	var items []model.GroceryItem
	for rows.Next() {
		var (
			item      model.GroceryItem
			completed int
		)
		err := rows.Scan(
			&item.ID, &item.Name, &item.Quantity, &completed,
			&item.Category, &item.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning grocery item row: %w", err)
		}
		item.Completed = completed != 0
		items = append(items, item)
	}
	return items, rows.Err()
}
