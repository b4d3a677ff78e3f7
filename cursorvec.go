package cursorvec

import (
	"github.com/dshills/cursorvec/cursor"
	"github.com/dshills/cursorvec/seq"
)

// CursorVec is a sequence container with a built-in cursor. The cursor
// survives mutation of the underlying sequence: shrinking the sequence
// out from under it leaves the cursor observably desynced rather than
// silently clamped, and UpdateCursor or Modify restores validity.
//
// CursorVec is not safe for concurrent use.
type CursorVec[T any] struct {
	items *seq.Slice[T]
	cur   *cursor.Cursor
}

// New creates a container over items, taking ownership of the slice.
// The cursor starts at index 0; on an empty sequence it is unset until
// elements are added. Pass nil for an empty container.
func New[T any](items []T, opts ...Option) *CursorVec[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	v := &CursorVec[T]{
		items: seq.FromSlice(items),
		cur:   cursor.New(0),
	}
	v.cur.SetRotatable(cfg.rotatable)
	return v
}

// Len returns the number of elements in the backing sequence.
func (v *CursorVec[T]) Len() int {
	return v.items.Len()
}

// IsEmpty returns true if the backing sequence has no elements.
func (v *CursorVec[T]) IsEmpty() bool {
	return v.items.IsEmpty()
}

// Rotatable reports whether cursor movement wraps around sequence bounds.
func (v *CursorVec[T]) Rotatable() bool {
	return v.cur.Rotatable()
}

// SetRotatable sets the wraparound policy.
func (v *CursorVec[T]) SetRotatable(rotatable bool) {
	v.cur.SetRotatable(rotatable)
}

// SetContainer installs a new backing sequence, taking ownership of
// items. The cursor is not adjusted: if its index is out of range for
// the new sequence it stays desynced until UpdateCursor or Modify.
func (v *CursorVec[T]) SetContainer(items []T) {
	v.items = seq.FromSlice(items)
}

// Container returns the backing sequence for direct mutation. Edits made
// through it never auto-resync the cursor; callers batch their changes
// and then call UpdateCursor, or inspect the resulting desync through
// Current and Cursor.
func (v *CursorVec[T]) Container() *seq.Slice[T] {
	return v.items
}

// Cursor returns the raw cursor index. It is present even while the
// cursor is out of range, so callers can inspect the desync amount;
// it is absent only on an empty sequence.
func (v *CursorVec[T]) Cursor() (int, bool) {
	if v.items.IsEmpty() {
		return 0, false
	}
	return v.cur.Index(), true
}

// SetCursor moves the cursor to an arbitrary index with no bounds
// checking; desync is a legitimate outcome. Negative indexes clamp to 0.
func (v *CursorVec[T]) SetCursor(index int) {
	v.cur.Set(index)
}

// UpdateCursor clamps a desynced cursor to the nearest valid boundary
// index. A synced cursor is left untouched, and an empty sequence keeps
// its cursor unset. UpdateCursor is idempotent.
func (v *CursorVec[T]) UpdateCursor() {
	v.cur.Clamp(v.items.Len())
}

// Modify applies an in-place edit to the backing sequence and then
// resyncs the cursor exactly like UpdateCursor. This is the recommended
// path for "mutate and keep the cursor sane".
func (v *CursorVec[T]) Modify(f func(*seq.Slice[T])) {
	f(v.items)
	v.UpdateCursor()
}

// Append adds elements to the end of the backing sequence. Appending
// never desyncs the cursor; growing an empty sequence makes index 0
// valid again.
func (v *CursorVec[T]) Append(vs ...T) {
	v.items.Append(vs...)
}

// Retain keeps only the elements for which keep returns true. Like all
// direct mutation it does not resync the cursor; route through Modify
// for that.
func (v *CursorVec[T]) Retain(keep func(T) bool) {
	v.items.Retain(keep)
}

// Drain removes the elements in the half-open range [start, end) without
// resyncing the cursor.
func (v *CursorVec[T]) Drain(start, end int) bool {
	return v.items.Drain(start, end)
}

// Current returns the tagged result for the cursor's position without
// moving it: StateValid with the element when synced, StateOutOfRange
// when desynced or empty.
func (v *CursorVec[T]) Current() State[T] {
	return v.stateHere()
}

// Next advances the cursor by one and returns the tagged result.
func (v *CursorVec[T]) Next() State[T] {
	return v.NextN(1)
}

// Prev retreats the cursor by one and returns the tagged result.
func (v *CursorVec[T]) Prev() State[T] {
	return v.PrevN(1)
}

// NextN advances the cursor by n and returns the tagged result. Under
// the bounded policy a displacement past the end clamps at the last
// index and reports StateMaxOut; under the rotatable policy the index
// wraps and the result is StateValid. A desynced cursor or an empty
// sequence reports StateOutOfRange without moving.
func (v *CursorVec[T]) NextN(n int) State[T] {
	length := v.items.Len()
	if !v.cur.InRange(length) {
		return outOfRange[T]()
	}
	if !v.cur.NextN(n, length) {
		return maxOut[T]()
	}
	return v.stateHere()
}

// PrevN retreats the cursor by n and returns the tagged result. See
// NextN; the clamped variant is StateMinOut.
func (v *CursorVec[T]) PrevN(n int) State[T] {
	length := v.items.Len()
	if !v.cur.InRange(length) {
		return outOfRange[T]()
	}
	if !v.cur.PrevN(n, length) {
		return minOut[T]()
	}
	return v.stateHere()
}

// NextAlways advances the cursor by one and returns the element at the
// landing position whether or not the move was clamped. It reports false
// only on an empty sequence or a desynced cursor.
func (v *CursorVec[T]) NextAlways() (*T, bool) {
	return v.NextNAlways(1)
}

// PrevAlways retreats the cursor by one and returns the element at the
// landing position. See NextAlways.
func (v *CursorVec[T]) PrevAlways() (*T, bool) {
	return v.PrevNAlways(1)
}

// NextNAlways advances the cursor by n and returns the element at the
// landing position, boundary-clamped or wrapped as configured.
func (v *CursorVec[T]) NextNAlways(n int) (*T, bool) {
	length := v.items.Len()
	if !v.cur.InRange(length) {
		return nil, false
	}
	v.cur.NextN(n, length)
	return v.elemHere()
}

// PrevNAlways retreats the cursor by n and returns the element at the
// landing position. See NextNAlways.
func (v *CursorVec[T]) PrevNAlways(n int) (*T, bool) {
	length := v.items.Len()
	if !v.cur.InRange(length) {
		return nil, false
	}
	v.cur.PrevN(n, length)
	return v.elemHere()
}

// MoveNext advances the cursor by one without producing a value.
// It returns true if the cursor moved; a wrap counts as a move.
func (v *CursorVec[T]) MoveNext() bool {
	return v.cur.Next(v.items.Len())
}

// MovePrev retreats the cursor by one without producing a value.
// It returns true if the cursor moved; a wrap counts as a move.
func (v *CursorVec[T]) MovePrev() bool {
	return v.cur.Prev(v.items.Len())
}

func (v *CursorVec[T]) stateHere() State[T] {
	if p := v.items.At(v.cur.Index()); p != nil {
		return valid(p)
	}
	return outOfRange[T]()
}

func (v *CursorVec[T]) elemHere() (*T, bool) {
	p := v.items.At(v.cur.Index())
	return p, p != nil
}
