// Package styles derives the preview UI's lipgloss styles from a resolved
// theme, so the preview is painted with the palette it shows.
package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glaze-ui/glaze/internal/theme"
)

// Styles contains lipgloss styles derived from a resolved theme.
type Styles struct {
	Theme    *theme.Theme
	Title    lipgloss.Style
	Text     lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Positive lipgloss.Style
	Warning  lipgloss.Style
	Negative lipgloss.Style
	Border   lipgloss.Style
}

// FromTheme builds the preview styles from the theme's highest layer.
func FromTheme(t *theme.Theme) Styles {
	layer := t.Highest
	return Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Base.Default.Foreground)).Bold(true),
		Text:     lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Base.Default.Foreground)),
		Muted:    lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Variant.Default.Foreground)),
		Accent:   lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Accent.Default.Foreground)),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Positive.Default.Foreground)),
		Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Warning.Default.Foreground)),
		Negative: lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Negative.Default.Foreground)),
		Border:   lipgloss.NewStyle().Foreground(lipgloss.Color(layer.Base.Default.Border)),
	}
}

// Swatch renders a fixed-width block painted with the given color.
func Swatch(hex string, width int) string {
	if width <= 0 {
		width = 2
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(hex)).
		Render(strings.Repeat(" ", width))
}
