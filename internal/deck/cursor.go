package deck

// Cursor is a position in a sequence of a fixed length. It never leaves
// [0, length-1] and does not wrap around.
type Cursor struct {
	index  int
	length int
}

// NewCursor returns a cursor at the start of a sequence of length n.
func NewCursor(n int) Cursor {
	if n < 0 {
		n = 0
	}
	return Cursor{length: n}
}

// Index returns the current position.
func (c Cursor) Index() int {
	return c.index
}

// Len returns the sequence length.
func (c Cursor) Len() int {
	return c.length
}

// AtStart reports whether there is no previous position.
func (c Cursor) AtStart() bool {
	return c.index == 0
}

// AtEnd reports whether there is no next position.
func (c Cursor) AtEnd() bool {
	return c.index >= c.length-1
}

// Next moves one step forward and reports whether it moved.
func (c *Cursor) Next() bool {
	if c.AtEnd() {
		return false
	}
	c.index++
	return true
}

// Prev moves one step back and reports whether it moved.
func (c *Cursor) Prev() bool {
	if c.AtStart() {
		return false
	}
	c.index--
	return true
}

// Reset moves to the start of a sequence of length n.
func (c *Cursor) Reset(n int) {
	*c = NewCursor(n)
}
