// Package intro shows the slides that open the deck.
package intro

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/fffcards/fff/internal/router"
	"github.com/fffcards/fff/internal/screen"
	"github.com/fffcards/fff/internal/ui/components"
	"github.com/fffcards/fff/internal/ui/gesture"
	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/layout"
	"github.com/fffcards/fff/internal/ui/theme"
)

const (
	WelcomeTitle = "Offene Beziehung: Wie gehen wir das richtig an?"
	SwipeHint    = "Swipe oder → um weiter zu navigieren"

	Description = "In einer monogamen Beziehung herrschen allgemein bekannte universelle Regeln. " +
		"Wohingegen es für offene Beziehungen keinen Standard gibt: ihr gestaltet eure Regeln selbst, " +
		"so wie es zu euch passt. Dieses Kartenspiel unterstützt euch dabei, ins Gespräch zu kommen: " +
		"über eure Wünsche, Motivation, Ängste, Bedürfnisse und Grenzen. Zwischendurch erhaltet ihr " +
		"Impulse, die Nähe schaffen und eure Verbindung stärken. So entdeckt ihr Schritt für Schritt, " +
		"ob sich eine offene Beziehung für euch richtig anfühlt und wie ihr sie gestalten wollt. " +
		"Die Fragen sind zufällig angeordnet, wenn ihr Thema für Thema vorgehen möchtet, könnt ihr " +
		"die Filterfunktion nutzen. Seid ehrlich zu euch selbst, bleibt euch treu, hört eurem Partner " +
		"zu und respektiert dessen Meinung, auch wenn sie gegensätzlich ist. Ihr solltet gemeinsam " +
		"agieren und das tun, was für euch als Team am besten ist."
)

type slide int

const (
	slideWelcome slide = iota
	slideDescription
	slideCount
)

// IntroScreen pages through the intro slides and then hands over to the
// screen built by next.
type IntroScreen struct {
	next         func() screen.Screen
	slide        slide
	swipe        gesture.Tracker
	width        int
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen that replaces itself with next() after the
// last slide.
func New(next func() screen.Screen) *IntroScreen {
	return &IntroScreen{
		next:  next,
		swipe: gesture.NewTracker(),
	}
}

func (s *IntroScreen) Title() string {
	return "Intro"
}

func (s *IntroScreen) Init() tea.Cmd {
	return nil
}

func (s *IntroScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Default.Prev, keys.Default.Next, keys.Default.Quit)
}

func (s *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Next):
			return s, s.forward()
		case key.Matches(msg, keys.Default.Prev):
			s.back()
		}
		return s, nil

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		switch s.swipe.Update(msg, s.width) {
		case gesture.Left:
			return s, s.forward()
		case gesture.Right:
			s.back()
		}
	}
	return s, nil
}

func (s *IntroScreen) forward() tea.Cmd {
	if s.slide < slideCount-1 {
		s.slide++
		return nil
	}
	if s.transitioned {
		return nil
	}
	s.transitioned = true
	return router.Replace(s.next())
}

func (s *IntroScreen) back() {
	if s.slide > 0 {
		s.slide--
	}
}

func (s *IntroScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var body string
	switch s.slide {
	case slideWelcome:
		title := theme.Title.Italic(true).Render(strings.Join(components.Wrap(WelcomeTitle, cw-6), "\n"))
		body = lipgloss.JoinVertical(lipgloss.Center,
			RenderBanner(width, height),
			"",
			title,
			"",
			theme.Hint.Render(SwipeHint),
		)
	default:
		body = theme.Body.Render(strings.Join(components.Wrap(Description, cw-6), "\n"))
	}

	dots := make([]string, slideCount)
	for i := range dots {
		if slide(i) == s.slide {
			dots[i] = theme.Selected.Render("●")
		} else {
			dots[i] = theme.Hint.Render("○")
		}
	}

	panel := components.Panel(body, cw, nil)
	return components.Center(lipgloss.JoinVertical(lipgloss.Center, panel, strings.Join(dots, " ")), width, height)
}
