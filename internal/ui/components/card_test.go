package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "FAMILY", CategoryLabel("Family"))
	assert.Equal(t, "GRÜSSE", CategoryLabel("Grüße"))
}

func TestCategoryStrip(t *testing.T) {
	rows := strings.Split(ansi.Strip(CategoryStrip("Fuck", 7)), "\n")
	assert.Len(t, rows, 7)

	var letters []string
	for _, r := range rows {
		letters = append(letters, strings.TrimSpace(r))
	}
	assert.Equal(t, []string{"F", "U", "C", "K", "", "F", "U"}, letters)
	assert.Empty(t, CategoryStrip("Fuck", 0))
}

func TestCardView(t *testing.T) {
	c := Card{Category: "Friends", Text: "Wer ist euer bester Freund?", HasNext: true}
	out := ansi.Strip(c.View(60, 12))

	assert.Contains(t, out, "FRIENDS")
	assert.Contains(t, out, "Wer ist euer bester Freund?")
	assert.Contains(t, out, "›")
	assert.NotContains(t, out, "‹")
}

func TestCardViewWrapsText(t *testing.T) {
	c := Card{Category: "Family", Text: "Eifer\u00adsucht in der Fa\u00admi\u00adlie", HasPrev: true}
	out := ansi.Strip(c.View(StripWidth+6+8, 12))

	assert.Contains(t, out, "Eifer-")
	assert.Contains(t, out, "‹")
	assert.NotContains(t, out, "\u00ad")
}
