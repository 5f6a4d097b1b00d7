package safesub

import "slices"

var (
	_ MutableSequence[int]  = (*SliceSequence[int])(nil)
	_ RangeReplaceable[int] = (*SliceSequence[int])(nil)
)

// SliceSequence adapts a Go slice to the capability interfaces of this
// package. It holds a pointer to the caller's slice, so length-changing
// replacements are visible to the caller.
type SliceSequence[E any] struct {
	elements *[]E
}

// WrapSlice returns a SliceSequence operating on *s.
func WrapSlice[E any](s *[]E) *SliceSequence[E] {
	return &SliceSequence[E]{elements: s}
}

func (l *SliceSequence[E]) Len() int {
	return len(*l.elements)
}

func (l *SliceSequence[E]) At(i int) E {
	return (*l.elements)[i]
}

func (l *SliceSequence[E]) SetAt(i int, v E) {
	(*l.elements)[i] = v
}

// Slice returns a copy of the elements in [start, end); the caller can
// modify the result.
func (l *SliceSequence[E]) Slice(start, end int) []E {
	sliceCopy := make([]E, end-start)
	copy(sliceCopy, (*l.elements)[start:end])
	return sliceCopy
}

func (l *SliceSequence[E]) ReplaceSubrange(start, end int, elems []E) {
	*l.elements = slices.Replace(*l.elements, start, end, elems...)
}
