package keys

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/fffcards/fff/internal/ui/layout"
)

func TestNextPrevBindings(t *testing.T) {
	tests := []struct {
		msg  tea.KeyPressMsg
		next bool
		prev bool
	}{
		{tea.KeyPressMsg{Code: tea.KeyRight}, true, false},
		{tea.KeyPressMsg{Code: tea.KeyEnter}, true, false},
		{tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}, true, false},
		{tea.KeyPressMsg{Code: 'l', Text: "l"}, true, false},
		{tea.KeyPressMsg{Code: tea.KeyLeft}, false, true},
		{tea.KeyPressMsg{Code: 'h', Text: "h"}, false, true},
		{tea.KeyPressMsg{Code: 'c', Text: "c"}, false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.next, key.Matches(tt.msg, Default.Next), "next %q", tt.msg.String())
		assert.Equal(t, tt.prev, key.Matches(tt.msg, Default.Prev), "prev %q", tt.msg.String())
	}
}

func TestHints(t *testing.T) {
	hints := Hints(Default.Prev, Default.Next, Default.Down, Default.Categories)
	assert.Equal(t, []layout.KeyHint{
		{Key: "←", Description: "zurück"},
		{Key: "→", Description: "weiter"},
		{Key: "c", Description: "Kategorien"},
	}, hints)
}

func TestFocusBindings(t *testing.T) {
	tab := tea.KeyPressMsg{Code: tea.KeyTab}
	shiftTab := tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}

	assert.True(t, key.Matches(tab, Default.FocusNext))
	assert.False(t, key.Matches(tab, Default.FocusPrev))
	assert.True(t, key.Matches(shiftTab, Default.FocusPrev))
	assert.False(t, key.Matches(shiftTab, Default.FocusNext))
}
