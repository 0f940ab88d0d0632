package meals

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/nhle/kitchen-tracker/internal/model"
)

// RecipeMarkdown renders a recipe as a Markdown card.
func RecipeMarkdown(r model.Recipe) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", r.Name)
	fmt.Fprintf(&b, "**%s** · %d kcal · %d min\n\n", r.MealType.Label(), r.Calories, r.PrepTimeMinutes)
	b.WriteString("## Ingredients\n\n")
	for _, ing := range r.Ingredients {
		fmt.Fprintf(&b, "- %s\n", ing)
	}
	return b.String()
}

// newRenderer builds the Markdown renderer for the card. An empty or
// "default" style follows the terminal background.
func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style {
	case "", "default", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	default:
		opts = append(opts, glamour.WithStandardStyle(style))
	}
	return glamour.NewTermRenderer(opts...)
}

// renderCard renders r for the viewport, falling back to the raw Markdown.
func renderCard(style string, width int, r model.Recipe) string {
	md := RecipeMarkdown(r)
	renderer, err := newRenderer(style, width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return out
}
