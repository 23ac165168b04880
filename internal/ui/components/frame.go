package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/theme"
)

// ContentWidth returns the inner width for cards and dialogs. Cards stay
// readable on wide terminals by capping the line length.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Panel wraps content in a rounded-border box of the given content width,
// tinted with accent.
func Panel(content string, cw int, accent color.Color) string {
	style := theme.Panel.Width(cw)
	if accent != nil {
		style = style.BorderForeground(accent)
	}
	return style.Render(content)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
