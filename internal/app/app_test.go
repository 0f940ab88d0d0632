package app

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/kitchen"
	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/share"
	"github.com/nhle/kitchen-tracker/internal/ui/command"
	"github.com/nhle/kitchen-tracker/internal/ui/groceries"
	"github.com/nhle/kitchen-tracker/tests/testutil"
)

var fixedNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

type fakeAppender struct {
	mailbox string
	msg     []byte
}

func (f *fakeAppender) Append(_ context.Context, mailbox string, msg []byte) error {
	f.mailbox = mailbox
	f.msg = msg
	return nil
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.Now == nil {
		opts.Now = clock
	}
	m := New(opts)
	t.Cleanup(m.Close)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTabNavigation(t *testing.T) {
	m := newTestModel(t, Options{})
	assert.Equal(t, TabCalories, m.ActiveTab())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabGroceries, m.ActiveTab())

	m, _ = press(t, m, runeKey("4"))
	assert.Equal(t, TabMeals, m.ActiveTab())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabCalories, m.ActiveTab())

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabMeals, m.ActiveTab())
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := press(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestOpenFormBlocksTabSwitching(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, runeKey("a"))
	require.True(t, m.capturing())

	m, _ = press(t, m, runeKey("2"))
	assert.Equal(t, TabCalories, m.ActiveTab())
}

func TestHelpOverlay(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, runeKey("?"))
	assert.Equal(t, ViewHelp, m.CurrentView())
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ViewTabs, m.CurrentView())
}

func TestView_ShowsTabsAndStorageMode(t *testing.T) {
	v := newTestModel(t, Options{}).View()

	assert.Contains(t, v, "1 Calories")
	assert.Contains(t, v, "4 Meals")
	assert.Contains(t, v, "in memory")
}

func TestCommandPalette_SwitchesTab(t *testing.T) {
	m := newTestModel(t, Options{})

	m, _ = press(t, m, runeKey(":"))
	require.Equal(t, ViewCommand, m.CurrentView())

	updated, _ := m.Update(command.CommandMsg("pantry"))
	m = updated.(Model)
	assert.Equal(t, ViewTabs, m.CurrentView())
	assert.Equal(t, TabPantry, m.ActiveTab())
}

func TestScreenMessages_WithoutStoreStayInMemory(t *testing.T) {
	m := newTestModel(t, Options{})

	_, cmd := m.Update(groceries.ItemDeletedMsg{ID: "x"})
	assert.Nil(t, cmd)
}

func TestScreenMessages_WriteThroughToStore(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	k, err := kitchen.Load(ctx, s, 2000, clock)
	require.NoError(t, err)
	m := newTestModel(t, Options{Kitchen: k, Store: s})

	m, _ = press(t, m, runeKey("2"))
	m, cmd := press(t, m, runeKey("x"))
	require.NotNil(t, cmd)
	saved := cmd()
	require.IsType(t, groceries.ItemSavedMsg{}, saved)

	updated, cmd := m.Update(saved)
	m = updated.(Model)
	require.NotNil(t, cmd)
	res, ok := cmd().(persistResultMsg)
	require.True(t, ok)
	require.NoError(t, res.err)

	items, err := s.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.True(t, items[0].Completed)

	updated, _ = m.Update(persistResultMsg{what: "grocery item", err: errors.New("disk full")})
	assert.Contains(t, updated.(Model).Status(), "Could not save grocery item: disk full")
}

func TestShareCommand(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.Share.Email.Host = "imap.example.com"
	cfg.Share.Email.Username = "me@example.com"
	cfg.Share.Email.To = "family@example.com"

	fake := &fakeAppender{}
	m := newTestModel(t, Options{
		Config: cfg,
		Appender: func(model.EmailShareConfig) (share.Appender, error) {
			return fake, nil
		},
	})

	updated, cmd := m.Update(command.CommandMsg("share"))
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, "Sharing grocery list...", m.Status())

	updated, _ = m.Update(cmd())
	m = updated.(Model)
	assert.Equal(t, "Saved 3 items to Drafts", m.Status())
	assert.Equal(t, "Drafts", fake.mailbox)
	assert.Contains(t, string(fake.msg), "Organic apples")
}

func TestShareCommand_NotConfigured(t *testing.T) {
	m := newTestModel(t, Options{
		Appender: func(model.EmailShareConfig) (share.Appender, error) {
			t.Fatal("appender must not be built")
			return nil, nil
		},
	})

	updated, cmd := m.Update(command.CommandMsg("share"))
	require.NotNil(t, cmd)
	updated, _ = updated.(Model).Update(cmd())
	assert.Equal(t, "Share failed: email sharing is not configured", updated.(Model).Status())
}

func TestEscClosesAddForm(t *testing.T) {
	for _, tab := range []string{"1", "2", "3", "4"} {
		m := newTestModel(t, Options{})
		m, _ = press(t, m, runeKey(tab))
		before := m.kitchen.Data()

		m, _ = press(t, m, runeKey("a"))
		require.True(t, m.capturing(), "tab %s", tab)

		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, m.capturing(), "tab %s", tab)
		assert.Equal(t, len(before.FoodEntries), m.kitchen.Calories.Len())
		assert.Equal(t, len(before.GroceryItems), m.kitchen.Groceries.Len())
		assert.Equal(t, len(before.PantryItems), m.kitchen.Pantry.Len())
		assert.Equal(t, len(before.MealPlans), m.kitchen.Meals.Len())
		assert.NotContains(t, m.keyHints(), "ctrl+c")

		active := m.ActiveTab()
		m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
		assert.NotEqual(t, active, m.ActiveTab(), "tab %s", tab)
	}
}

func toggleFirstGrocery(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	m, cmd := press(t, m, runeKey("x"))
	require.NotNil(t, cmd)
	updated, persistCmd := m.Update(cmd())
	require.NotNil(t, persistCmd)
	return updated.(Model), persistCmd
}

func TestWriteThrough_KeepsOrderWhenResultsAreReadOutOfOrder(t *testing.T) {
	s, _ := testutil.NewSeededStore(t, fixedNow)
	ctx := context.Background()
	k, err := kitchen.Load(ctx, s, 2000, clock)
	require.NoError(t, err)
	m := newTestModel(t, Options{Kitchen: k, Store: s})
	m, _ = press(t, m, runeKey("2"))

	m, first := toggleFirstGrocery(t, m)
	m, second := toggleFirstGrocery(t, m)

	for _, cmd := range []tea.Cmd{second, first} {
		res, ok := cmd().(persistResultMsg)
		require.True(t, ok)
		require.NoError(t, res.err)
	}

	items, err := s.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, m.kitchen.Groceries.Items()[0].Completed, items[0].Completed)
	assert.False(t, items[0].Completed)
}

func TestClose_FlushesQueuedWrites(t *testing.T) {
	s, _ := testutil.NewSeededStore(t, fixedNow)
	ctx := context.Background()
	k, err := kitchen.Load(ctx, s, 2000, clock)
	require.NoError(t, err)
	m := newTestModel(t, Options{Kitchen: k, Store: s})
	m, _ = press(t, m, runeKey("2"))

	m, _ = toggleFirstGrocery(t, m)
	m.Close()

	items, err := s.GetGroceryItems(ctx)
	require.NoError(t, err)
	assert.True(t, items[0].Completed)
}
