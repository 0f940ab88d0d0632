package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/nhle/kitchen-tracker/internal/model"
)

func TestLayout_ContentHeight(t *testing.T) {
	l := NewLayout(100, 40)
	assert.Equal(t, 36, l.ContentHeight())
	assert.Equal(t, 100, l.ContentWidth())
}

func TestRenderWithFrame_FillsTerminal(t *testing.T) {
	l := NewLayout(60, 20)

	out := l.RenderWithFrame(
		l.RenderHeader("Kitchen", "in memory"),
		l.RenderTabs([]string{"Calories", "Groceries"}, 1),
		"body",
		l.RenderStatusBar("q quit"),
	)

	assert.Equal(t, 20, lipgloss.Height(out))
	assert.True(t, strings.Contains(out, "2 Groceries"))
	assert.True(t, strings.Contains(out, "body"))
}

func TestAlertText(t *testing.T) {
	title, msg := AlertText(model.Invalid("name", "please enter an item name"))
	assert.Equal(t, "Error", title)
	assert.Equal(t, "please enter an item name", msg)

	_, msg = AlertText(errors.New("disk full"))
	assert.Equal(t, "disk full", msg)
}
