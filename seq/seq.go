package seq

import (
	"iter"
	"slices"
)

// Slice is a generic dynamic array: indexed access, append, insertion,
// range drains, and predicate retention over a single backing slice.
type Slice[T any] struct {
	items []T
}

// New creates a slice from the given elements.
func New[T any](items ...T) *Slice[T] {
	return &Slice[T]{items: items}
}

// FromSlice creates a Slice that takes ownership of items.
// The caller must not use items afterwards.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// IsEmpty returns true if the slice has no elements.
func (s *Slice[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// At returns a pointer to the element at index i.
// Returns nil if i is out of range.
func (s *Slice[T]) At(i int) *T {
	if i < 0 || i >= len(s.items) {
		return nil
	}
	return &s.items[i]
}

// Get returns the element at index i by value.
func (s *Slice[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.items) {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Set replaces the element at index i.
// Returns false if i is out of range.
func (s *Slice[T]) Set(i int, v T) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items[i] = v
	return true
}

// Append adds elements to the end of the slice.
func (s *Slice[T]) Append(vs ...T) {
	s.items = append(s.items, vs...)
}

// Insert inserts elements at index i, shifting later elements right.
// i may equal Len to append. Returns false if i is out of range.
func (s *Slice[T]) Insert(i int, vs ...T) bool {
	if i < 0 || i > len(s.items) {
		return false
	}
	s.items = slices.Insert(s.items, i, vs...)
	return true
}

// Delete removes the element at index i.
// Returns false if i is out of range.
func (s *Slice[T]) Delete(i int) bool {
	if i < 0 || i >= len(s.items) {
		return false
	}
	s.items = slices.Delete(s.items, i, i+1)
	return true
}

// Drain removes the elements in the half-open range [start, end).
// The range is clamped to the slice bounds. Returns true if at least
// one element was removed.
func (s *Slice[T]) Drain(start, end int) bool {
	if start < 0 {
		start = 0
	}
	if end > len(s.items) {
		end = len(s.items)
	}
	if start >= end {
		return false
	}
	s.items = slices.Delete(s.items, start, end)
	return true
}

// DrainFrom removes every element from index start to the end.
func (s *Slice[T]) DrainFrom(start int) bool {
	return s.Drain(start, len(s.items))
}

// Retain keeps only the elements for which keep returns true,
// preserving order.
func (s *Slice[T]) Retain(keep func(T) bool) {
	s.items = slices.DeleteFunc(s.items, func(v T) bool {
		return !keep(v)
	})
}

// Values returns an iterator over the elements in order.
func (s *Slice[T]) Values() iter.Seq[T] {
	return slices.Values(s.items)
}

// All returns an iterator over index/element pairs in order.
func (s *Slice[T]) All() iter.Seq2[int, T] {
	return slices.All(s.items)
}

// Slice returns the backing slice. Mutating elements through it is
// visible in the Slice; growing it is not.
func (s *Slice[T]) Slice() []T {
	return s.items
}

// Clone returns a deep copy of the slice.
func (s *Slice[T]) Clone() *Slice[T] {
	return &Slice[T]{items: slices.Clone(s.items)}
}
