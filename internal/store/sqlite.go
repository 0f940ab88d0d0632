package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// A single connection keeps ":memory:" databases shared and serializes
	// the write-through commands.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// SchemaVersion returns the highest applied migration.
func (s *SQLiteStore) SchemaVersion(ctx context.Context) (int, error) {
	var v int
	if err := s.db.GetContext(ctx, &v, "SELECT COALESCE(MAX(version), 0) FROM schema_version"); err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// Load reads every tracker's records.
func (s *SQLiteStore) Load(ctx context.Context) (Data, error) {
	var (
		d   Data
		err error
	)
	if d.FoodEntries, err = s.GetFoodEntries(ctx); err != nil {
		return Data{}, err
	}
	if d.GroceryItems, err = s.GetGroceryItems(ctx); err != nil {
		return Data{}, err
	}
	if d.PantryItems, err = s.GetPantryItems(ctx); err != nil {
		return Data{}, err
	}
	if d.MealPlans, err = s.GetMealPlans(ctx); err != nil {
		return Data{}, err
	}
	return d, nil
}

// SeedOnce inserts data in a single transaction unless the database has been
// seeded before. Deleting every record afterwards does not trigger a reseed.
func (s *SQLiteStore) SeedOnce(ctx context.Context, data Data) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO seeded (id) VALUES (1)")
	if err != nil {
		return false, fmt.Errorf("marking database seeded: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return false, nil
	}

	for _, e := range data.FoodEntries {
		if err := insertFoodEntry(ctx, tx, e); err != nil {
			return false, err
		}
	}
	for _, item := range data.GroceryItems {
		if err := upsertGroceryItem(ctx, tx, item); err != nil {
			return false, err
		}
	}
	for _, item := range data.PantryItems {
		if err := insertPantryItem(ctx, tx, item); err != nil {
			return false, err
		}
	}
	for _, plan := range data.MealPlans {
		if err := upsertMealPlan(ctx, tx, plan); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing seed: %w", err)
	}
	return true, nil
}

// boolToInt converts a boolean to 0 or 1 for SQLite storage.
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
