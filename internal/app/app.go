package app

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/router"
	"github.com/fffcards/fff/internal/screen"
	"github.com/fffcards/fff/internal/screens/cards"
	"github.com/fffcards/fff/internal/screens/intro"
	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/layout"
)

// Options configures the program.
type Options struct {
	Cards  cards.Options
	Intro  bool // show the intro slides before the deck
	Mouse  bool // enable mouse swipes and clicks
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	mouse  bool
	width  int
	height int
}

// newAppModel creates an AppModel starting at the intro or the deck.
func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.Cards.Logger == nil {
		opts.Cards.Logger = opts.Logger
	}
	deckScreen := func() screen.Screen {
		return cards.New(ctx, opts.Cards)
	}

	var first screen.Screen
	if opts.Intro {
		first = intro.New(deckScreen)
	} else {
		first = deckScreen()
	}
	return AppModel{
		router: router.New(first),
		mouse:  opts.Mouse,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Default.Back):
			if m.router.Depth() > 1 {
				return m, router.Pop
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	v.WindowTitle = layout.Brand
	if m.mouse {
		v.MouseMode = tea.MouseModeCellMotion
	}
	return v
}

func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}
	header := layout.RenderHeader(title, m.width)

	var footerHints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		footerHints = p.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = keys.Hints(keys.Default.Back, keys.Default.Quit)
	} else {
		footerHints = keys.Hints(keys.Default.Quit)
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		opts.Logger.Error("program exited with error", zap.Error(err))
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
