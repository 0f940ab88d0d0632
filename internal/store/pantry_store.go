package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// InsertPantryItem stores a pantry item. Expiration dates are kept as
// YYYY-MM-DD text.
func (s *SQLiteStore) InsertPantryItem(ctx context.Context, item model.PantryItem) error {
	return insertPantryItem(ctx, s.db, item)
}

func insertPantryItem(ctx context.Context, db sqlx.ExecerContext, item model.PantryItem) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO pantry_items (
			id, name, category, expiration_date, quantity, days_until_expiry, sort_order
		) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.Name, item.Category,
		item.ExpirationDate.Format(model.DateLayout),
		item.Quantity, item.DaysUntilExpiry, item.SortOrder,
	)
	if err != nil {
		return fmt.Errorf("inserting pantry item %s: %w", item.ID, err)
	}
	return nil
}

// GetPantryItems returns the pantry in insertion order. DaysUntilExpiry is
// returned as stored.
func (s *SQLiteStore) GetPantryItems(ctx context.Context) ([]model.PantryItem, error) {
	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, name, category, expiration_date, quantity, days_until_expiry, sort_order
		FROM pantry_items ORDER BY sort_order, rowid`)
	if err != nil {
		return nil, fmt.Errorf("querying pantry items: %w", err)
	}
	defer rows.Close()

	var items []model.PantryItem
	for rows.Next() {
		var (
			item       model.PantryItem
			expiration string
		)
		err := rows.Scan(
			&item.ID, &item.Name, &item.Category, &expiration,
			&item.Quantity, &item.DaysUntilExpiry, &item.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning pantry item row: %w", err)
		}
		item.ExpirationDate, err = time.Parse(model.DateLayout, expiration)
		if err != nil {
			return nil, fmt.Errorf("parsing expiration of pantry item %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
