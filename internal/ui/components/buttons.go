package components

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/theme"
)

// ButtonRow is a horizontal row of buttons. Focus is the index of the
// focused button, or -1 when focus is elsewhere.
type ButtonRow struct {
	Labels []string
	Focus  int
}

// Pressed reports the index of the button activated by msg.
func (r ButtonRow) Pressed(msg tea.Msg) (int, bool) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || r.Focus < 0 || r.Focus >= len(r.Labels) {
		return -1, false
	}
	if !key.Matches(kmsg, keys.Default.Apply) {
		return -1, false
	}
	return r.Focus, true
}

func (r ButtonRow) View() string {
	parts := make([]string, 0, 2*len(r.Labels))
	for i, label := range r.Labels {
		if i > 0 {
			parts = append(parts, "  ")
		}
		if i == r.Focus {
			parts = append(parts, theme.ButtonActive.Render("▸ "+label))
		} else {
			parts = append(parts, theme.ButtonInactive.Render("  "+label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
