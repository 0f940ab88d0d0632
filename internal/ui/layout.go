package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/theme"
)

// Layout manages the multi-panel terminal layout dimensions.
type Layout struct {
	Width           int
	Height          int
	HeaderHeight    int
	TabBarHeight    int
	StatusBarHeight int
}

// NewLayout creates a Layout with the given terminal dimensions.
// HeaderHeight and StatusBarHeight default to 1; the tab bar and its
// bottom border take 2.
func NewLayout(width, height int) Layout {
	return Layout{
		Width:           width,
		Height:          height,
		HeaderHeight:    1,
		TabBarHeight:    2,
		StatusBarHeight: 1,
	}
}

// ContentWidth returns the full available width.
func (l Layout) ContentWidth() int {
	return l.Width
}

// ContentHeight returns the height available for the main content area,
// accounting for the header, tab bar and status bar.
func (l Layout) ContentHeight() int {
	return l.Height - l.HeaderHeight - l.TabBarHeight - l.StatusBarHeight
}

// RenderHeader renders the top header bar with a title and a right-aligned
// status such as the persistence mode.
func (l Layout) RenderHeader(title string, syncStatus string) string {
	titleRendered := theme.HeaderStyle.Render(title)

	statusRendered := theme.HeaderStyle.
		Align(lipgloss.Right).
		Render(syncStatus)

	gap := l.Width -
		lipgloss.Width(titleRendered) -
		lipgloss.Width(statusRendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.HeaderStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.HeaderStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		titleRendered,
		filler,
		statusRendered,
	)
}

// RenderStatusBar renders the bottom status bar with keyboard hints.
func (l Layout) RenderStatusBar(hints string) string {
	rendered := theme.StatusBarStyle.Render(hints)

	gap := l.Width - lipgloss.Width(rendered)
	if gap < 0 {
		gap = 0
	}

	filler := theme.StatusBarStyle.Render(
		lipgloss.NewStyle().
			Width(gap).
			Background(theme.StatusBarStyle.GetBackground()).
			Render(""),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, filler)
}

// RenderTabs renders the tab bar, highlighting the tab at active.
func (l Layout) RenderTabs(labels []string, active int) string {
	tabs := make([]string, 0, len(labels))
	for i, label := range labels {
		style := theme.TabStyle
		if i == active {
			style = theme.ActiveTabStyle
		}
		tabs = append(tabs, style.Render(fmt.Sprintf("%d %s", i+1, label)))
	}
	return lipgloss.NewStyle().
		Width(l.Width).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.ColorBorder).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

// RenderWithFrame composes a full terminal view by vertically joining
// the header, tab bar, content area, and status bar.
func (l Layout) RenderWithFrame(
	header string,
	tabs string,
	content string,
	statusBar string,
) string {
	content = lipgloss.NewStyle().
		Width(l.ContentWidth()).
		Height(l.ContentHeight()).
		MaxHeight(l.ContentHeight()).
		Render(content)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		tabs,
		content,
		statusBar,
	)
}
