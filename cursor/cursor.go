package cursor

import "fmt"

// Cursor tracks an index into a sequence along with the wraparound policy.
// It does not hold the sequence itself: every operation that depends on the
// sequence takes its current length, so the cursor can never act on a stale
// size after the sequence is mutated elsewhere.
type Cursor struct {
	index     int
	rotatable bool
}

// New creates a cursor at the given index.
// Negative indexes clamp to 0.
func New(index int) *Cursor {
	if index < 0 {
		index = 0
	}
	return &Cursor{index: index}
}

// Index returns the cursor's current index.
func (c *Cursor) Index() int {
	return c.index
}

// Set moves the cursor to an arbitrary index with no bounds checking.
// Negative indexes clamp to 0. The index may be out of range for the
// sequence; validity is only decided against a length at query time.
func (c *Cursor) Set(index int) {
	if index < 0 {
		index = 0
	}
	c.index = index
}

// Rotatable reports whether movement wraps around sequence bounds.
func (c *Cursor) Rotatable() bool {
	return c.rotatable
}

// SetRotatable sets the wraparound policy.
func (c *Cursor) SetRotatable(rotatable bool) {
	c.rotatable = rotatable
}

// InRange reports whether the cursor addresses an element of a sequence
// with the given length.
func (c *Cursor) InRange(length int) bool {
	return length > 0 && c.index < length
}

// AtStart returns true if the cursor is at index 0.
func (c *Cursor) AtStart() bool {
	return c.index == 0
}

// AtEnd returns true if the cursor is at the last index of a sequence
// with the given length.
func (c *Cursor) AtEnd(length int) bool {
	return length > 0 && c.index == length-1
}

// Next advances the cursor by one.
// It is equivalent to NextN(1, length).
func (c *Cursor) Next(length int) bool {
	return c.NextN(1, length)
}

// Prev retreats the cursor by one.
// It is equivalent to PrevN(1, length).
func (c *Cursor) Prev(length int) bool {
	return c.PrevN(1, length)
}

// NextN advances the cursor by n against a sequence of the given length.
// The boundary policy applies to the net displacement: in rotatable mode
// the target index wraps modulo length and NextN returns true; otherwise
// the cursor clamps to the last index when the displacement would cross
// the end, and NextN returns false for that clamp.
//
// If the cursor is not in range for the given length (empty sequence or
// desynced index), the cursor does not move and NextN returns false.
// Negative n is treated as zero.
func (c *Cursor) NextN(n, length int) bool {
	if n < 0 {
		n = 0
	}
	if !c.InRange(length) {
		return false
	}
	if c.rotatable {
		c.index = (c.index + n%length) % length
		return true
	}
	if n > length-1-c.index {
		c.index = length - 1
		return false
	}
	c.index += n
	return true
}

// PrevN retreats the cursor by n against a sequence of the given length.
// See NextN for the boundary policy; the clamp target is index 0.
func (c *Cursor) PrevN(n, length int) bool {
	if n < 0 {
		n = 0
	}
	if !c.InRange(length) {
		return false
	}
	if c.rotatable {
		c.index = (c.index - n%length + length) % length
		return true
	}
	if n > c.index {
		c.index = 0
		return false
	}
	c.index -= n
	return true
}

// Clamp pulls an out-of-range cursor back to the last valid index of a
// sequence with the given length. An in-range cursor is left untouched,
// as is the cursor of an empty sequence (emptiness has no valid index to
// clamp to). Clamp is idempotent.
func (c *Cursor) Clamp(length int) {
	if length <= 0 {
		return
	}
	if c.index >= length {
		c.index = length - 1
	}
}

// String returns a string representation of the cursor.
func (c *Cursor) String() string {
	return fmt.Sprintf("Cursor(%d)", c.index)
}
