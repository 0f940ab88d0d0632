package model

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_Wrapped(t *testing.T) {
	err := fmt.Errorf("adding entry: %w", Invalid("name", "is required"))

	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(errors.New("boom")))

	var v *ValidationError
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "name", v.Field)
	assert.Equal(t, "name: is required", v.Error())
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}

func TestMeals_Slots(t *testing.T) {
	var m Meals
	for _, mt := range MealTypes {
		m.SetSlot(mt, mt.Label())
	}
	assert.Equal(t, "Breakfast", m.Breakfast)
	assert.Equal(t, "Snack", m.Slot(MealSnack))

	_, err := ParseMealType("brunch")
	assert.Error(t, err)
	mt, err := ParseMealType("dinner")
	require.NoError(t, err)
	assert.Equal(t, MealDinner, mt)
}
