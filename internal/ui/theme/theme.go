// Package theme holds the colours and styles of the card UI.
package theme

import (
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"
)

// Palette: stone neutrals with a pink accent.
var (
	Primary   = lipgloss.Color("#DB2777")
	Secondary = lipgloss.Color("#8B5CF6")
	Error     = lipgloss.Color("#DC2626")
	Text      = lipgloss.Color("#FAFAF9")
	TextDim   = lipgloss.Color("#A8A29E")
	BgDark    = lipgloss.Color("#1C1917")
	Border    = lipgloss.Color("#44403C")
)

// Category colours, keyed by lowercased category name.
var categoryColors = map[string]color.Color{
	"fuck":            lipgloss.Color("#EF4444"),
	"friends":         lipgloss.Color("#A855F7"),
	"family":          lipgloss.Color("#22C55E"),
	"self reflection": lipgloss.Color("#3B82F6"),
	"party":           lipgloss.Color("#EAB308"),
	"impuls":          lipgloss.Color("#F97316"),
	"abschluss":       lipgloss.Color("#14B8A6"),
}

// CategoryDefault colours categories without an entry of their own.
var CategoryDefault = lipgloss.Color("#64748B")

// CategoryColor returns the accent colour for a category. Lookup ignores
// case and surrounding space.
func CategoryColor(category string) color.Color {
	if c, ok := categoryColors[strings.ToLower(strings.TrimSpace(category))]; ok {
		return c
	}
	return CategoryDefault
}

func fg(c color.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func boxed(vertical, horizontal int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(vertical, horizontal)
}

// Text styles.
var (
	Title    = fg(Primary).Bold(true).Align(lipgloss.Center)
	Body     = fg(Text)
	Hint     = fg(TextDim).Italic(true)
	Question = fg(Text).Bold(true).Align(lipgloss.Center)
	Failure  = fg(Error).Bold(true)
)

// Frame styles. Bar wraps the header and footer rows.
var (
	Panel    = boxed(1, 2)
	Bar      = boxed(0, 1)
	Brand    = fg(Primary).Bold(true)
	Tagline  = Hint
	HintKey  = fg(Text).Bold(true)
	HintText = fg(TextDim)
)

// Checklist rows, buttons and the progress bar.
var (
	Selected       = fg(Primary).Bold(true)
	Unselected     = fg(Text)
	ButtonActive   = fg(Text).Background(Primary).Bold(true).Padding(0, 2)
	ButtonInactive = fg(TextDim).Padding(0, 2)
	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
