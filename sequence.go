package safesub

import "github.com/samber/mo"

// Indexable is an ordered, finite container with native indexed access.
// At may panic if i is out of bounds; the safe operations in this
// package never call it with an out-of-bounds index.
type Indexable[E any] interface {
	Len() int
	At(i int) E
}

// Sequence is an Indexable that can produce a sub-sequence of itself.
// Slice is only called with 0 <= start <= end <= Len().
type Sequence[E any] interface {
	Indexable[E]
	Slice(start, end int) []E
}

// MutableSequence is an Indexable whose elements can be replaced in
// place. SetAt never changes the container's length.
type MutableSequence[E any] interface {
	Indexable[E]
	SetAt(i int, v E)
}

// RangeReplaceable is a Sequence that supports replacing a contiguous
// sub-range with a new sequence of elements, possibly changing the
// container's length.
type RangeReplaceable[E any] interface {
	Sequence[E]
	ReplaceSubrange(start, end int, elems []E)
}

// Get returns the element of c at index i, or an absent option if i is
// outside [0, c.Len()).
func Get[E any](c Indexable[E], i int) mo.Option[E] {
	if i < 0 || i >= c.Len() {
		return mo.None[E]()
	}
	return mo.Some(c.At(i))
}

// Set replaces the element of c at index i with v. If i is out of
// bounds or v is absent the call is a no-op; the container's length
// never changes.
func Set[E any](c MutableSequence[E], i int, v mo.Option[E]) {
	if i < 0 || i >= c.Len() {
		return
	}
	if elem, ok := v.Get(); ok {
		c.SetAt(i, elem)
	}
}

// GetRange returns the elements of c covered by r after clamping r to
// c's valid span. If r lies entirely outside the valid span the result
// is empty.
func GetRange[E any](c Sequence[E], r Range) []E {
	start, end := r.Resolve(c.Len())
	return c.Slice(start, end)
}

// SetRange replaces the elements of c covered by r, after clamping,
// with elems. If the clamped range is empty, elems is discarded and c
// is left unchanged.
func SetRange[E any](c RangeReplaceable[E], r Range, elems []E) {
	start, end := r.Resolve(c.Len())
	if start == end {
		return
	}
	c.ReplaceSubrange(start, end, elems)
}
