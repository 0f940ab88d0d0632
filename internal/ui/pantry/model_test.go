package pantry

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/keys"
	pantrydomain "github.com/nhle/kitchen-tracker/internal/pantry"
)

var today = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestModel() Model {
	clock := func() time.Time { return today }
	tr := pantrydomain.NewTracker(
		pantrydomain.WithClock(clock),
		pantrydomain.WithItems(pantrydomain.SeedItems(today)...),
	)
	return New(tr, keys.DefaultKeyMap(), 100, 40)
}

func TestList_SortedByUrgency(t *testing.T) {
	m := newTestModel()

	var names []string
	for _, it := range m.list.Items() {
		names = append(names, it.(Item).Name)
	}
	assert.Equal(t, []string{"Bananas", "Whole wheat bread", "Greek yogurt", "Canned tomatoes"}, names)
}

func TestView_StatsAndBadges(t *testing.T) {
	v := newTestModel().View()

	assert.Contains(t, v, "expiring soon")
	assert.Contains(t, v, "1d left")
	assert.Contains(t, v, "240d left")
}

func TestSubmit_BadDateShowsAlert(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	require.Equal(t, modeForm, m.mode)

	m.fb.Name = "Milk"
	m.fb.Expiration = "next week"
	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, modeAlert, m.mode)
	assert.Contains(t, m.alert.Message(), "YYYY-MM-DD")
	assert.Equal(t, 4, m.tracker.Len())
	assert.Equal(t, "Milk", m.fb.Name)
}

func TestSubmit_AddsAndResorts(t *testing.T) {
	m := newTestModel()
	m, _ = m.openForm()
	m.fb.Name = "Milk"
	m.fb.Expiration = "2026-03-09"

	m, cmd := m.submit()
	require.NotNil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 5, m.tracker.Len())
	assert.Equal(t, 1, m.tracker.ExpiredCount())

	first := m.list.Items()[0].(Item)
	assert.Equal(t, "Milk", first.Name)
	assert.Equal(t, "Other", first.Category)
}

func TestCapturing(t *testing.T) {
	m := newTestModel()
	assert.False(t, m.Capturing())
	m, _ = m.openForm()
	assert.True(t, m.Capturing())
}
