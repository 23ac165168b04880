package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/fffcards/fff/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	width   int
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		s.width = size.Width
	}
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestReplaceScreenMsg(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Update(ReplaceScreenMsg{Screen: s2})

	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via ReplaceScreenMsg")
	}
}

func TestReplacePreservesStackDepth(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	s3 := &stubScreen{title: "third"}
	r.Replace(s3)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "third" {
		t.Errorf("expected active 'third', got %q", r.Active().Title())
	}
}

func TestPopScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "cards"})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "categories"}})
	r.Update(Pop())

	if r.Active().Title() != "cards" {
		t.Errorf("expected active 'cards', got %q", r.Active().Title())
	}
}

func TestCommandHelpers(t *testing.T) {
	s := &stubScreen{title: "x"}
	if msg, ok := Push(s)().(PushScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Push produced %#v", msg)
	}
	if msg, ok := Replace(s)().(ReplaceScreenMsg); !ok || msg.Screen != s {
		t.Errorf("Replace produced %#v", msg)
	}
}

func TestNewScreensReceiveWindowSize(t *testing.T) {
	r := New(&stubScreen{title: "intro"})
	r.Update(tea.WindowSizeMsg{Width: 90, Height: 30})

	pushed := &stubScreen{title: "categories"}
	r.Push(pushed)
	if pushed.width != 90 {
		t.Errorf("pushed screen width = %d, want 90", pushed.width)
	}

	replaced := &stubScreen{title: "cards"}
	r.Replace(replaced)
	if replaced.width != 90 {
		t.Errorf("replaced screen width = %d, want 90", replaced.width)
	}
}

func TestPopReplaysWindowSize(t *testing.T) {
	cards := &stubScreen{title: "cards"}
	r := New(cards)
	r.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	r.Update(PushScreenMsg{Screen: &stubScreen{title: "categories"}})

	r.Update(tea.WindowSizeMsg{Width: 200, Height: 50})
	if cards.width != 100 {
		t.Fatalf("covered screen got resized early: width %d", cards.width)
	}

	r.Update(PopScreenMsg{})
	if cards.width != 200 {
		t.Errorf("width after pop = %d, want 200", cards.width)
	}
}

func TestPopBeforeAnyResize(t *testing.T) {
	cards := &stubScreen{title: "cards"}
	r := New(cards)
	r.Push(&stubScreen{title: "categories"})

	if cmd := r.Pop(); cmd != nil {
		t.Error("expected nil command when no size is known")
	}
	if cards.width != 0 {
		t.Errorf("width = %d, want 0", cards.width)
	}
}
