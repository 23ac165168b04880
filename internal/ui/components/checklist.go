package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/theme"
)

// ChecklistItem is one row of a Checklist.
type ChecklistItem struct {
	Label   string
	Count   int
	Color   color.Color
	Checked bool
}

// Checklist is a vertical list of toggleable items.
type Checklist struct {
	Items    []ChecklistItem
	Selected int
}

// NewChecklist creates a checklist with the cursor on the first item.
func NewChecklist(items []ChecklistItem) Checklist {
	return Checklist{Items: items}
}

// Update handles cursor movement and toggling.
func (c Checklist) Update(msg tea.Msg) (Checklist, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || len(c.Items) == 0 {
		return c, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.Up):
		if c.Selected > 0 {
			c.Selected--
		}
	case key.Matches(kmsg, keys.Default.Down):
		if c.Selected < len(c.Items)-1 {
			c.Selected++
		}
	case key.Matches(kmsg, keys.Default.Toggle):
		c = c.Toggle(c.Selected)
	}
	return c, nil
}

// Toggle flips item i. Items are copied so earlier values stay unchanged.
func (c Checklist) Toggle(i int) Checklist {
	if i < 0 || i >= len(c.Items) {
		return c
	}
	items := append([]ChecklistItem(nil), c.Items...)
	items[i].Checked = !items[i].Checked
	c.Items = items
	return c
}

// SetAll checks or unchecks every item.
func (c Checklist) SetAll(checked bool) Checklist {
	items := append([]ChecklistItem(nil), c.Items...)
	for i := range items {
		items[i].Checked = checked
	}
	c.Items = items
	return c
}

// AllChecked reports whether every item is checked.
func (c Checklist) AllChecked() bool {
	for _, it := range c.Items {
		if !it.Checked {
			return false
		}
	}
	return true
}

// Checked returns the labels of the checked items in list order.
func (c Checklist) Checked() []string {
	var out []string
	for _, it := range c.Items {
		if it.Checked {
			out = append(out, it.Label)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var b strings.Builder
	for i, it := range c.Items {
		box := "[ ]"
		if it.Checked {
			box = "[x]"
		}
		marker := "■"
		if it.Color != nil {
			marker = lipgloss.NewStyle().Foreground(it.Color).Render(marker)
		}
		count := theme.Hint.Render(fmt.Sprintf("(%d)", it.Count))

		row := box + " " + marker + " " + it.Label
		if i == c.Selected {
			b.WriteString(theme.Selected.Render("▸ "+row) + " " + count)
		} else {
			b.WriteString(theme.Unselected.Render("  "+row) + " " + count)
		}
		if i < len(c.Items)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
