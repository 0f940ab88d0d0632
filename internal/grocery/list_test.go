package grocery

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/model"
)

func names(items []model.GroceryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestAddItem_Defaults(t *testing.T) {
	l := NewList()

	item, err := l.AddItem("  Milk ", "")
	require.NoError(t, err)

	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, "1", item.Quantity)
	assert.Equal(t, model.DefaultCategory, item.Category)
	assert.False(t, item.Completed)
	assert.Equal(t, 1, l.Len())
}

func TestAddItem_RequiresName(t *testing.T) {
	l := NewList(SeedItems()...)
	f := Form{Name: " ", Quantity: "2"}

	_, err := f.Submit(l)
	require.True(t, model.IsValidationError(err))
	assert.Equal(t, 4, l.Len())
	assert.Equal(t, "2", f.Quantity, "buffer kept after failure")

	f.Name = "Eggs"
	_, err = f.Submit(l)
	require.NoError(t, err)
	assert.Equal(t, Form{}, f)
	assert.Equal(t, 5, l.Len())
}

func TestToggle_Involution(t *testing.T) {
	l := NewList(SeedItems()...)
	items := l.Items()

	for _, it := range items {
		_, err := l.Toggle(it.ID)
		require.NoError(t, err)
		toggled, err := l.Toggle(it.ID)
		require.NoError(t, err)
		assert.Equal(t, it.Completed, toggled.Completed)
	}
	assert.Equal(t, items, l.Items())
}

func TestToggle_UnknownID(t *testing.T) {
	l := NewList(SeedItems()...)
	_, err := l.Toggle("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_TwoPhase(t *testing.T) {
	l := NewList(SeedItems()...)
	target := l.Items()[2]

	pending, err := l.RequestDelete(target.ID)
	require.NoError(t, err)
	assert.Equal(t, target, pending)
	assert.Equal(t, 4, l.Len(), "request alone must not remove")

	got, ok := l.Pending()
	require.True(t, ok)
	assert.Equal(t, target.ID, got.ID)

	removed, err := l.ConfirmDelete()
	require.NoError(t, err)
	assert.Equal(t, target.ID, removed.ID)
	assert.Equal(t, []string{"Organic apples", "Greek yogurt", "Brown rice"}, names(l.Items()))

	_, ok = l.Pending()
	assert.False(t, ok)
	_, err = l.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoPendingDelete)
}

func TestDelete_CancelLeavesStoreUntouched(t *testing.T) {
	l := NewList(SeedItems()...)
	before := l.Items()

	_, err := l.RequestDelete(before[0].ID)
	require.NoError(t, err)
	l.CancelDelete()

	assert.Equal(t, before, l.Items())
	_, err = l.ConfirmDelete()
	assert.ErrorIs(t, err, ErrNoPendingDelete)
}

func TestRequestDelete_UnknownID(t *testing.T) {
	l := NewList(SeedItems()...)
	_, err := l.RequestDelete("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := l.Pending()
	assert.False(t, ok)
}

func TestGroupByCategory_FirstSeenOrder(t *testing.T) {
	items := []model.GroceryItem{
		{ID: "a", Name: "A", Category: "cat1"},
		{ID: "b", Name: "B", Category: "cat2"},
		{ID: "c", Name: "C", Category: "cat1"},
	}

	got := GroupByCategory(items)
	want := []CategoryGroup{
		{Category: "cat1", Items: []model.GroceryItem{items[0], items[2]}},
		{Category: "cat2", Items: []model.GroceryItem{items[1]}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GroupByCategory mismatch (-want +got):\n%s", diff)
	}
}

func TestGroupByCategory_UserItemsInOther(t *testing.T) {
	l := NewList(SeedItems()...)
	_, err := l.AddItem("Paper towels", "")
	require.NoError(t, err)

	groups := l.GroupByCategory()
	require.Len(t, groups, 5)
	assert.Equal(t, "Other", groups[4].Category)
	assert.Equal(t, []string{"Paper towels"}, names(groups[4].Items))
}

func TestCompletionPercent(t *testing.T) {
	assert.Equal(t, 0, NewList().CompletionPercent())

	l := NewList(SeedItems()...)
	assert.Equal(t, 1, l.CompletedCount())
	assert.Equal(t, 25, l.CompletionPercent())

	items := l.Items()
	_, _ = l.Toggle(items[0].ID)
	_, _ = l.Toggle(items[2].ID)
	assert.Equal(t, 75, l.CompletionPercent())

	l = NewList(SeedItems()[:3]...)
	assert.Equal(t, 33, l.CompletionPercent())
}

func TestOpen(t *testing.T) {
	l := NewList(SeedItems()...)
	assert.Equal(t, []string{"Organic apples", "Chicken breast", "Brown rice"}, names(l.Open()))
}

func TestNewList_DefaultsCategory(t *testing.T) {
	l := NewList(model.GroceryItem{ID: "x", Name: "Salt"})
	assert.Equal(t, model.DefaultCategory, l.Items()[0].Category)
}
