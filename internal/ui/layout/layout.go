// Package layout draws the frame around every screen: a header bar with the
// brand, the screen title and the tagline, and a footer bar of key hints.
package layout

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/fffcards/fff/internal/ui/theme"
)

const (
	MinWidth  = 40
	MinHeight = 14

	// Below CompactWidth the header drops the tagline and hints sit closer.
	CompactWidth = 60

	Brand   = "fff"
	Tagline = "Fuck, Friends or Family."
)

// barChrome is the horizontal space taken by a bar's border and padding.
const barChrome = 4

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func (h KeyHint) render() string {
	return theme.HintKey.Render(h.Key) + " " + theme.HintText.Render(h.Description)
}

// IsCompactWidth reports whether width is too narrow for the full header.
func IsCompactWidth(width int) bool {
	return width < CompactWidth
}

// IsTooSmall reports whether the terminal cannot fit the card UI.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage fills the terminal with a request to enlarge it.
func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal zu klein!\n\nBitte auf mindestens\n%d x %d vergrößern\n\nAktuell: %d x %d",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Body.Render(msg))
}

// RenderHeader centres title between the brand and the tagline.
func RenderHeader(title string, width int) string {
	inner := max(width-barChrome, 0)
	brand := theme.Brand.Render(Brand)

	tagline := ""
	if !IsCompactWidth(width) {
		tagline = theme.Tagline.Render(Tagline)
	}

	side := max(lipgloss.Width(brand), lipgloss.Width(tagline))
	middle := max(inner-2*side, 0)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(side, lipgloss.Left, brand),
		lipgloss.PlaceHorizontal(middle, lipgloss.Center, ansi.Truncate(theme.Body.Render(title), middle, "…")),
		lipgloss.PlaceHorizontal(side, lipgloss.Right, tagline),
	)
	return theme.Bar.Width(width).Render(row)
}

// RenderFooter lists hints left to right. Hints that do not fit on one line
// are left out.
func RenderFooter(hints []KeyHint, width int) string {
	sep := "   "
	if IsCompactWidth(width) {
		sep = "  "
	}

	inner := max(width-barChrome, 0)
	line := ""
	for _, h := range hints {
		next := h.render()
		if line != "" {
			next = line + sep + next
		}
		if lipgloss.Width(next) > inner {
			break
		}
		line = next
	}
	return theme.Bar.Width(width).Render(line)
}

// RenderFrame stacks header, content and footer, giving content whatever
// height the bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).MaxHeight(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
