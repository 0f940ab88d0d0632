package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/nhle/kitchen-tracker/internal/kitchen"
	"github.com/nhle/kitchen-tracker/internal/store"
)

// NewTestStore creates an empty in-memory SQLiteStore with all migrations
// applied. The store is closed when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// NewSeededStore creates an in-memory store already holding the sample
// records of every tracker, computed against now, and returns them.
func NewSeededStore(t *testing.T, now time.Time) (*store.SQLiteStore, store.Data) {
	t.Helper()

	s := NewTestStore(t)
	data := kitchen.SeedData(now)
	seeded, err := s.SeedOnce(context.Background(), data)
	if err != nil {
		t.Fatalf("seeding test store: %v", err)
	}
	if !seeded {
		t.Fatalf("seeding test store: fresh database reported as already seeded")
	}
	return s, data
}
