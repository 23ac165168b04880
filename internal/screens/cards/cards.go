// Package cards is the main screen: the deck of question cards.
package cards

import (
	"context"
	"math/rand/v2"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/fffcards/fff/internal/deck"
	"github.com/fffcards/fff/internal/router"
	"github.com/fffcards/fff/internal/screen"
	"github.com/fffcards/fff/internal/screens/categories"
	"github.com/fffcards/fff/internal/source"
	"github.com/fffcards/fff/internal/ui/gesture"
	"github.com/fffcards/fff/internal/ui/keys"
	"github.com/fffcards/fff/internal/ui/layout"
	"github.com/fffcards/fff/internal/ui/theme"
)

// Loader produces the question list. *source.Loader implements it.
type Loader interface {
	Load(ctx context.Context) source.Result
}

type phase int

const (
	phaseLoading phase = iota
	phaseFailed
	phaseReady
)

// Options configures a CardsScreen.
type Options struct {
	Loader     Loader
	Policy     deck.Policy
	Categories []string // initial selection, empty for all
	Logger     *zap.Logger
	Rand       *rand.Rand // nil for a random seed
}

// CardsScreen implements screen.Screen for the card deck.
type CardsScreen struct {
	ctx     context.Context
	opts    Options
	logger  *zap.Logger
	phase   phase
	result  source.Result
	deck    *deck.Deck
	spinner spinner.Model
	swipe   gesture.Tracker
	width   int
}

var _ screen.Screen = (*CardsScreen)(nil)
var _ screen.KeyHintProvider = (*CardsScreen)(nil)

// New creates a CardsScreen. Loading starts in Init and is bounded by ctx.
func New(ctx context.Context, opts Options) *CardsScreen {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardsScreen{
		ctx:    ctx,
		opts:   opts,
		logger: logger.Named("cards"),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
		),
		swipe: gesture.NewTracker(),
	}
}

func (s *CardsScreen) Init() tea.Cmd {
	return tea.Batch(s.spinner.Tick, s.load())
}

func (s *CardsScreen) Title() string {
	if s.phase == phaseReady && s.result.FellBack {
		return "Karten (offline)"
	}
	return "Karten"
}

func (s *CardsScreen) KeyHints() []layout.KeyHint {
	k := keys.Default
	switch {
	case s.phase == phaseLoading:
		return keys.Hints(k.Quit)
	case s.phase == phaseFailed:
		return keys.Hints(k.Reload, k.Quit)
	case s.deck.Empty():
		return keys.Hints(k.Categories, k.Quit)
	}
	return keys.Hints(k.Prev, k.Next, k.Categories, k.Reshuffle, k.Quit)
}

// Deck returns the deck once loaded, or nil.
func (s *CardsScreen) Deck() *deck.Deck {
	return s.deck
}

func (s *CardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		return s.handleLoaded(msg)

	case spinner.TickMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case categories.AppliedMsg:
		return s.handleApplied(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyPressMsg:
		return s.handleKey(msg)

	case tea.MouseClickMsg, tea.MouseMotionMsg, tea.MouseReleaseMsg:
		if s.phase != phaseReady {
			return s, nil
		}
		switch s.swipe.Update(msg, s.width) {
		case gesture.Left:
			s.deck.Next()
		case gesture.Right:
			s.deck.Prev()
		}
	}
	return s, nil
}

func (s *CardsScreen) load() tea.Cmd {
	ctx, loader := s.ctx, s.opts.Loader
	return func() tea.Msg {
		return loadedMsg{Result: loader.Load(ctx)}
	}
}

func (s *CardsScreen) handleLoaded(msg loadedMsg) (screen.Screen, tea.Cmd) {
	s.result = msg.Result
	if msg.Result.Failed {
		s.phase = phaseFailed
		s.deck = nil
		s.logger.Error("no questions available", zap.Error(msg.Result.Err))
		return s, nil
	}

	s.deck = deck.New(msg.Result.Questions, s.opts.Policy, s.opts.Rand)
	if len(s.opts.Categories) > 0 {
		s.deck.Select(deck.NewSelection(s.opts.Categories...))
	}
	s.phase = phaseReady
	s.logger.Info("deck ready",
		zap.String("source", msg.Result.Source),
		zap.Bool("fell_back", msg.Result.FellBack),
		zap.Int("questions", s.deck.Total()),
		zap.Int("visible", s.deck.Len()),
	)
	return s, nil
}

func (s *CardsScreen) handleApplied(msg categories.AppliedMsg) (screen.Screen, tea.Cmd) {
	if s.deck == nil {
		return s, nil
	}
	s.deck.Select(msg.Selection)
	s.logger.Info("selection changed",
		zap.Strings("categories", s.deck.Selection().Categories()),
		zap.Int("visible", s.deck.Len()),
	)
	return s, nil
}

func (s *CardsScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	k := keys.Default

	if key.Matches(msg, k.Reload) && s.phase != phaseLoading {
		s.phase = phaseLoading
		s.logger.Info("reloading questions")
		return s, tea.Batch(s.spinner.Tick, s.load())
	}
	if s.phase != phaseReady {
		return s, nil
	}

	switch {
	case key.Matches(msg, k.Next):
		s.deck.Next()
	case key.Matches(msg, k.Prev):
		s.deck.Prev()
	case key.Matches(msg, k.Reshuffle):
		s.deck.Reshuffle()
	case key.Matches(msg, k.Categories):
		return s, router.Push(categories.New(s.deck.Categories(), s.deck.Counts(), s.deck.Selection()))
	}
	return s, nil
}
