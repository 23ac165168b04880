// Package gesture turns horizontal mouse drags and edge clicks into swipes.
package gesture

import tea "charm.land/bubbletea/v2"

// Direction is the direction of a completed swipe.
type Direction int

const (
	None  Direction = iota
	Left            // towards the left edge: next card
	Right           // towards the right edge: previous card
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

const (
	// DefaultMinDistance is the drag distance, in columns, that counts as a swipe.
	DefaultMinDistance = 6
	// DefaultEdgeWidth is the width, in columns, of the click zones at each edge.
	DefaultEdgeWidth = 8
)

// Tracker follows one press-drag-release sequence at a time.
type Tracker struct {
	MinDistance int
	EdgeWidth   int

	start  int
	last   int
	active bool
	moved  bool
}

// NewTracker returns a Tracker with default thresholds.
func NewTracker() Tracker {
	return Tracker{MinDistance: DefaultMinDistance, EdgeWidth: DefaultEdgeWidth}
}

// Press starts tracking at column x.
func (t *Tracker) Press(x int) {
	t.start = x
	t.last = x
	t.active = true
	t.moved = false
}

// Move records a drag to column x.
func (t *Tracker) Move(x int) {
	if !t.active {
		return
	}
	if x != t.start {
		t.moved = true
	}
	t.last = x
}

// Cancel drops the current sequence.
func (t *Tracker) Cancel() {
	t.active = false
	t.moved = false
}

// Active reports whether a press is being tracked.
func (t *Tracker) Active() bool {
	return t.active
}

// Release ends the sequence at column x in a view of the given width. A drag
// of at least MinDistance columns is a swipe. A release without a drag is a
// click: the left edge zone means Right (previous), the right zone Left (next).
func (t *Tracker) Release(x, width int) Direction {
	if !t.active {
		return None
	}
	t.Move(x)
	moved := t.moved
	t.Cancel()

	if moved {
		distance := t.start - t.last
		switch {
		case distance >= t.MinDistance:
			return Left
		case distance <= -t.MinDistance:
			return Right
		}
		return None
	}

	switch {
	case x < t.EdgeWidth:
		return Right
	case width > 0 && x >= width-t.EdgeWidth:
		return Left
	}
	return None
}

// Update feeds a mouse message to the tracker and returns the swipe it
// completes, if any. Only the left button starts a sequence.
func (t *Tracker) Update(msg tea.Msg, width int) Direction {
	switch msg := msg.(type) {
	case tea.MouseClickMsg:
		if msg.Button == tea.MouseLeft {
			t.Press(msg.X)
		}
	case tea.MouseMotionMsg:
		t.Move(msg.X)
	case tea.MouseReleaseMsg:
		return t.Release(msg.X, width)
	}
	return None
}
