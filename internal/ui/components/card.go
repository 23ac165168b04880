package components

import (
	"strings"

	"charm.land/lipgloss/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fffcards/fff/internal/ui/theme"
)

// StripWidth is the width of the category strip on the card's left edge.
const StripWidth = 3

var upper = cases.Upper(language.German)

// CategoryLabel returns the category as shown on cards.
func CategoryLabel(category string) string {
	return upper.String(category)
}

// CategoryStrip renders a vertical band of the given height in the
// category's colour, spelling the uppercased category top to bottom and
// repeating it until the band is full.
func CategoryStrip(category string, height int) string {
	if height <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Width(StripWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.CategoryColor(category))

	label := []rune(CategoryLabel(category) + " ")
	if strings.TrimSpace(category) == "" {
		label = []rune{' '}
	}

	rows := make([]string, height)
	for i := range rows {
		rows[i] = style.Render(string(label[i%len(label)]))
	}
	return strings.Join(rows, "\n")
}

// Card is one question as a card: a category strip, the centred question
// text and arrows for the neighbouring cards.
type Card struct {
	Category string
	Text     string
	HasPrev  bool
	HasNext  bool
}

// View renders the card into a width x height area.
func (c Card) View(width, height int) string {
	if width <= StripWidth+4 || height <= 0 {
		return ""
	}
	strip := CategoryStrip(c.Category, height)

	textWidth := width - StripWidth - 6
	lines := Wrap(c.Text, textWidth)

	label := lipgloss.NewStyle().
		Foreground(theme.CategoryColor(c.Category)).
		Bold(true).
		Render(CategoryLabel(c.Category))
	text := theme.Question.Width(textWidth).Render(strings.Join(lines, "\n"))
	body := Center(label+"\n\n"+text, textWidth, height)

	prev, next := " ", " "
	if c.HasPrev {
		prev = "‹"
	}
	if c.HasNext {
		next = "›"
	}
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim).Width(2).Height(height).AlignVertical(lipgloss.Center)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		strip,
		" ",
		arrow.Align(lipgloss.Left).Render(prev),
		body,
		arrow.Align(lipgloss.Right).Render(next),
		" ",
	)
}
