// Package categories is the dialog for choosing which categories the deck
// shows. It edits a copy of the selection; nothing changes until the user
// applies it.
package categories

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/deck"
	"github.com/fffcards/fff/internal/router"
	"github.com/fffcards/fff/internal/screen"
	"github.com/fffcards/fff/internal/ui/components"
	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/layout"
	"github.com/fffcards/fff/internal/ui/theme"
)

// AppliedMsg carries the committed selection to the screen below the dialog.
type AppliedMsg struct {
	Selection deck.Selection
}

type focus int

const (
	focusList focus = iota
	focusApply
	focusCancel
	focusCount
)

// Screen implements screen.Screen for the category dialog.
type Screen struct {
	list  components.Checklist
	focus focus
	done  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates the dialog listing categories in the given order, with
// counts per category and the current selection pre-checked.
func New(categories []string, counts map[string]int, selected deck.Selection) *Screen {
	items := make([]components.ChecklistItem, len(categories))
	for i, c := range categories {
		items[i] = components.ChecklistItem{
			Label:   c,
			Count:   counts[c],
			Color:   theme.CategoryColor(c),
			Checked: selected.Contains(c),
		}
	}
	return &Screen{list: components.NewChecklist(items)}
}

func (s *Screen) Title() string {
	return "Kategorien"
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return keys.Hints(
		keys.Default.Up,
		keys.Default.Toggle,
		keys.Default.ToggleAll,
		keys.Default.Apply,
		keys.Default.FocusNext,
		keys.Default.Back,
	)
}

// Selection returns the pending selection.
func (s *Screen) Selection() deck.Selection {
	return deck.NewSelection(s.list.Checked()...)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok || s.done {
		return s, nil
	}

	switch {
	case key.Matches(kmsg, keys.Default.FocusNext):
		s.focus = (s.focus + 1) % focusCount
		return s, nil
	case key.Matches(kmsg, keys.Default.FocusPrev):
		s.focus = (s.focus + focusCount - 1) % focusCount
		return s, nil
	case key.Matches(kmsg, keys.Default.ToggleAll):
		s.list = s.list.SetAll(!s.list.AllChecked())
		return s, nil
	}

	if s.focus != focusList {
		switch i, ok := s.buttons().Pressed(kmsg); {
		case !ok:
			return s, nil
		case i == 0:
			return s, s.apply()
		default:
			return s, s.cancel()
		}
	}

	if key.Matches(kmsg, keys.Default.Apply) {
		return s, s.apply()
	}
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(kmsg)
	return s, cmd
}

// buttons lists apply then cancel, matching focusApply and focusCancel.
func (s *Screen) buttons() components.ButtonRow {
	return components.ButtonRow{
		Labels: []string{"Übernehmen", "Abbrechen"},
		Focus:  int(s.focus - focusApply),
	}
}

// apply closes the dialog and then delivers the selection.
func (s *Screen) apply() tea.Cmd {
	s.done = true
	sel := s.Selection()
	return tea.Sequence(router.Pop, func() tea.Msg {
		return AppliedMsg{Selection: sel}
	})
}

func (s *Screen) cancel() tea.Cmd {
	s.done = true
	return router.Pop
}

func (s *Screen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := theme.Title.Render("Kategorien wählen")
	summary := theme.Hint.Render(fmt.Sprintf("%d von %d ausgewählt", len(s.list.Checked()), len(s.list.Items)))

	list := s.list.View()
	if len(s.list.Items) == 0 {
		list = theme.Hint.Render("Keine Kategorien vorhanden.")
	}
	if s.focus != focusList {
		list = lipgloss.NewStyle().Faint(true).Render(list)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, heading, summary, "", list, "", s.buttons().View())
	return components.Center(components.Panel(body, cw, theme.Primary), width, height)
}
