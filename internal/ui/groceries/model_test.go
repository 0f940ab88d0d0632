package groceries

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/kitchen-tracker/internal/grocery"
	"github.com/nhle/kitchen-tracker/internal/keys"
)

func newTestModel() Model {
	return New(grocery.NewList(grocery.SeedItems()...), keys.DefaultKeyMap(), 100, 30)
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestView_GroupsAndStats(t *testing.T) {
	v := newTestModel().View()

	assert.Contains(t, v, "1 of 4 items  25% complete")
	assert.Contains(t, v, "Produce")
	assert.Contains(t, v, "[x] Greek yogurt")
	assert.Contains(t, v, "[ ] Chicken breast")
}

func TestToggleKey_EmitsSavedItem(t *testing.T) {
	m := newTestModel()

	m, cmd := m.Update(runeKey("x"))
	require.NotNil(t, cmd)
	saved, ok := cmd().(ItemSavedMsg)
	require.True(t, ok)
	assert.Equal(t, "Organic apples", saved.Item.Name)
	assert.True(t, saved.Item.Completed)
	assert.Equal(t, 2, m.list.CompletedCount())
}

func TestDeleteKey_ConfirmCancelLeavesList(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(runeKey("j"))
	m, _ = m.Update(runeKey("d"))

	require.Equal(t, modeConfirmDelete, m.mode)
	pending, ok := m.list.Pending()
	require.True(t, ok)
	assert.Equal(t, "Greek yogurt", pending.Name)

	m, cmd := m.finishDelete(false)
	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 4, m.list.Len())
	_, ok = m.list.Pending()
	assert.False(t, ok)
}

func TestDeleteKey_EscCancels(t *testing.T) {
	m := newTestModel()
	m, _ = m.Update(runeKey("d"))
	require.Equal(t, modeConfirmDelete, m.mode)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, modeList, m.mode)
	assert.Equal(t, 4, m.list.Len())
	_, ok := m.list.Pending()
	assert.False(t, ok)
}

func TestDeleteKey_ConfirmRemoves(t *testing.T) {
	m := newTestModel()
	for range 3 {
		m, _ = m.Update(runeKey("j"))
	}
	m, _ = m.Update(runeKey("d"))

	m, cmd := m.finishDelete(true)
	require.NotNil(t, cmd)
	deleted, ok := cmd().(ItemDeletedMsg)
	require.True(t, ok)
	assert.NotEmpty(t, deleted.ID)
	assert.Equal(t, 3, m.list.Len())
	assert.Equal(t, 2, m.selectedIdx)
	assert.Contains(t, m.View(), "Deleted Brown rice")
}

func TestSubmit_EmptyNameShowsAlert(t *testing.T) {
	m := newTestModel()
	m, _ = m.openForm()
	m.fb.item.Quantity = "3"

	m, cmd := m.submit()
	assert.Nil(t, cmd)
	assert.Equal(t, modeAlert, m.mode)
	assert.Equal(t, "please enter an item name", m.alert.Message())
	assert.Equal(t, "3", m.fb.item.Quantity)
	assert.Equal(t, 4, m.list.Len())
}

func TestSubmit_AddsToOther(t *testing.T) {
	m := newTestModel()
	m, _ = m.openForm()
	m.fb.item.Name = "Almond milk"

	m, cmd := m.submit()
	require.NotNil(t, cmd)
	saved := cmd().(ItemSavedMsg)
	assert.Equal(t, "Other", saved.Item.Category)
	assert.Equal(t, "1", saved.Item.Quantity)
	assert.Contains(t, m.View(), "Other")
}
