// Package seq provides a generic contiguous sequence with inline
// storage for small element counts.
//
// A Seq keeps up to InlineCap elements inside the struct itself, with
// no heap allocation. The first time the element count has to exceed
// InlineCap the sequence moves to a single heap-allocated backing
// array and stays heap-backed for the rest of its lifetime; it never
// shrinks back into the inline region. Whichever tier is active, the
// elements occupy one contiguous range.
package seq

import "fmt"

// InlineCap is the number of elements a Seq stores without touching
// the heap. Go generics carry no constant parameters, so the threshold
// is fixed per package rather than per instantiation.
const InlineCap = 16

// Seq is a growable contiguous sequence of T.
//
// The zero value is an empty, inline-backed sequence ready for use.
// A Seq must not be copied by value after first use: slices returned
// by Slice alias the active storage, and a shallow copy of a
// heap-backed Seq would share its backing array. Use Clone for a deep
// copy.
type Seq[T any] struct {
	size   int
	heap   []T // nil while the inline tier is active; len == cap otherwise
	inline [InlineCap]T
}

// WithLen returns a sequence of n zero-valued elements. The inline
// region is used when n fits, otherwise the heap tier is entered
// immediately.
func WithLen[T any](n int) *Seq[T] {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	s := &Seq[T]{size: n}
	if n > InlineCap {
		s.heap = make([]T, n)
	}
	return s
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int { return s.size }

// Cap returns the capacity of the active storage tier.
func (s *Seq[T]) Cap() int {
	if s.heap != nil {
		return len(s.heap)
	}
	return InlineCap
}

// Inline reports whether the inline tier is still active.
func (s *Seq[T]) Inline() bool { return s.heap == nil }

// Slice returns the contiguous element range [0, Len). The slice
// aliases the active storage: writes through it are visible to the
// sequence, and it is invalidated by any operation that grows the
// sequence.
func (s *Seq[T]) Slice() []T { return s.active()[:s.size] }

func (s *Seq[T]) active() []T {
	if s.heap != nil {
		return s.heap
	}
	return s.inline[:]
}

// grow moves the elements to a fresh heap array of at least need
// capacity. Element order is preserved and the previous tier is
// released: the old heap array is dropped for collection, or the
// inline region is cleared so it retains no references.
func (s *Seq[T]) grow(need int) {
	newCap := 2 * s.Cap()
	if newCap < need {
		newCap = need
	}
	fresh := make([]T, newCap)
	copy(fresh, s.active()[:s.size])
	if s.heap == nil {
		clear(s.inline[:s.size])
	}
	s.heap = fresh
}

// Grow reserves capacity for n more elements beyond the current
// length. It never changes Len.
func (s *Seq[T]) Grow(n int) {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative grow count %d", n))
	}
	if need := s.size + n; need > s.Cap() {
		s.grow(need)
	}
}

// Append adds vs to the end of the sequence, growing the backing
// storage when required.
func (s *Seq[T]) Append(vs ...T) {
	if need := s.size + len(vs); need > s.Cap() {
		s.grow(need)
	}
	copy(s.active()[s.size:], vs)
	s.size += len(vs)
}

// Resize sets the length to n. New elements are zero-valued; removed
// elements are cleared so the storage retains no references to them.
func (s *Seq[T]) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("seq: negative length %d", n))
	}
	switch {
	case n > s.size:
		if n > s.Cap() {
			s.grow(n)
		}
		// Clear the re-exposed region: it may hold stale values from
		// an earlier Resize or Truncate.
		clear(s.active()[s.size:n])
	case n < s.size:
		clear(s.active()[n:s.size])
	}
	s.size = n
}

// Truncate discards all but the first n elements. It panics if n is
// negative or greater than Len.
func (s *Seq[T]) Truncate(n int) {
	if n < 0 || n > s.size {
		panic(fmt.Sprintf("seq: truncate length %d out of range [0, %d]", n, s.size))
	}
	clear(s.active()[n:s.size])
	s.size = n
}

// Reset empties the sequence. The active tier is kept: a heap-backed
// sequence stays heap-backed with its capacity intact.
func (s *Seq[T]) Reset() { s.Truncate(0) }

// Clone returns a deep copy holding the same elements. The copy picks
// its own tier from its length, so a short heap-backed sequence clones
// into an inline one.
func (s *Seq[T]) Clone() *Seq[T] {
	c := WithLen[T](s.size)
	copy(c.active(), s.Slice())
	return c
}
