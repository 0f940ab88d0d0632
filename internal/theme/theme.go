package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nhle/kitchen-tracker/internal/model"
	"github.com/nhle/kitchen-tracker/internal/pantry"
)

// Adaptive color pairs (dark terminal value, light terminal value).
var (
	ColorBlue    = lipgloss.AdaptiveColor{Dark: "#5B9BD5", Light: "#2B6CB0"}
	ColorGreen   = lipgloss.AdaptiveColor{Dark: "#6BCB77", Light: "#2F855A"}
	ColorYellow  = lipgloss.AdaptiveColor{Dark: "#FFD93D", Light: "#B7791F"}
	ColorRed     = lipgloss.AdaptiveColor{Dark: "#FF6B6B", Light: "#C53030"}
	ColorOrange  = lipgloss.AdaptiveColor{Dark: "#FFA94D", Light: "#C05621"}
	ColorMagenta = lipgloss.AdaptiveColor{Dark: "#CC5DE8", Light: "#805AD5"}
	ColorGray    = lipgloss.AdaptiveColor{Dark: "#868E96", Light: "#718096"}
	ColorWhite   = lipgloss.AdaptiveColor{Dark: "#F8F9FA", Light: "#1A202C"}
	ColorSubtle  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#CBD5E0"}
	ColorBorder  = lipgloss.AdaptiveColor{Dark: "#495057", Light: "#E2E8F0"}
)

// HeaderStyle is used for top-level section headers and the application title.
var HeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorGreen).
	Padding(0, 1)

// StatusBarStyle is used for the bottom status bar.
var StatusBarStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Background(ColorSubtle).
	Padding(0, 1)

// PanelStyle wraps cards such as the recipe card and the stat boxes.
var PanelStyle = lipgloss.NewStyle().
	Padding(0, 1).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder)

// ListItemStyle is the base style for items in a list.
var ListItemStyle = lipgloss.NewStyle().
	PaddingLeft(2)

// SelectedItemStyle highlights the currently focused list item.
var SelectedItemStyle = lipgloss.NewStyle().
	PaddingLeft(1).
	Bold(true).
	Foreground(ColorBlue).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(ColorBlue)

// HelpStyle is used for keyboard shortcut hints and help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Italic(true)

// TitleStyle is used for screen titles.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite)

// SectionStyle is used for category headings inside a list.
var SectionStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorMagenta)

// DimmedStyle renders secondary text.
var DimmedStyle = lipgloss.NewStyle().Foreground(ColorGray)

// CompletedStyle renders checked-off grocery items.
var CompletedStyle = lipgloss.NewStyle().
	Foreground(ColorGray).
	Strikethrough(true)

// StatusMsgStyle renders transient status messages.
var StatusMsgStyle = lipgloss.NewStyle().Foreground(ColorYellow).Italic(true)

// TabStyle and ActiveTabStyle render the tab bar.
var (
	TabStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorGreen).
			Padding(0, 2).
			Underline(true)
)

// AlertStyle frames the blocking validation alert.
var AlertStyle = lipgloss.NewStyle().
	Padding(1, 3).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(ColorRed)

// ButtonStyle renders the alert's acknowledgement button.
var ButtonStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(ColorWhite).
	Background(ColorBlue).
	Padding(0, 2)

// BandStyle returns the badge style for a pantry expiry band.
func BandStyle(band pantry.Band) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Padding(0, 1)

	switch band {
	case pantry.BandExpired:
		return base.Foreground(ColorRed).Strikethrough(true)
	case pantry.BandCritical:
		return base.Foreground(ColorRed)
	case pantry.BandWarning:
		return base.Foreground(ColorOrange)
	case pantry.BandGood:
		return base.Foreground(ColorGreen)
	default:
		return base.Foreground(ColorGray)
	}
}

// MealTypeStyle returns a color-coded style for a meal slot label.
func MealTypeStyle(t model.MealType) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)

	switch t {
	case model.MealBreakfast:
		return base.Foreground(ColorYellow)
	case model.MealLunch:
		return base.Foreground(ColorGreen)
	case model.MealDinner:
		return base.Foreground(ColorBlue)
	case model.MealSnack:
		return base.Foreground(ColorMagenta)
	default:
		return base.Foreground(ColorGray)
	}
}
