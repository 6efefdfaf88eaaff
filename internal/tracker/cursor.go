package tracker

// Cursor is the highlighted row, as a position in the sorted sequence.
// It does not track which network sits at that position.
type Cursor struct {
	index int
}

// Index returns the current position.
func (c Cursor) Index() int {
	return c.index
}

// MoveUp moves one row up, stopping at the first row.
func (c *Cursor) MoveUp(length int) {
	if length == 0 {
		return
	}
	c.index = max(0, c.index-1)
}

// MoveDown moves one row down, stopping at the last row.
func (c *Cursor) MoveDown(length int) {
	if length == 0 {
		return
	}
	c.index = min(length-1, c.index+1)
}
