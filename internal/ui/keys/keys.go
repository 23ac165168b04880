// Package keys holds the key bindings shared by all screens.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/fffcards/fff/internal/ui/layout"
)

// KeyMap is the full set of bindings.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Categories key.Binding
	Reshuffle  key.Binding
	Reload     key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	ToggleAll  key.Binding
	Apply      key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// Default is the key map used by the UI.
var Default = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("right", "l", "space", "enter"),
		key.WithHelp("→", "weiter"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "zurück"),
	),
	Categories: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "Kategorien"),
	),
	Reshuffle: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "mischen"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "neu laden"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "auswählen"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("space", "x"),
		key.WithHelp("Leertaste", "an/aus"),
	),
	ToggleAll: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "alle"),
	),
	Apply: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "übernehmen"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "wechseln"),
	),
	FocusPrev: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "abbrechen"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "beenden"),
	),
}

// Hints turns bindings into footer hints, skipping bindings without help
// text or that are disabled.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if !b.Enabled() || h.Key == "" {
			continue
		}
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
