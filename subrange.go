package safesub

import "slices"

// Subrange returns the sub-slice of s covered by r after clamping r to
// s's valid span. If r lies entirely outside the valid span the result
// is empty. The result is a view over s, not a copy.
func Subrange[S ~[]E, E any](s S, r Range) S {
	start, end := r.Resolve(len(s))
	return s[start:end]
}

// ReplaceSubrange replaces the elements of s covered by r, after
// clamping, with elems and returns the updated slice. The length of the
// result grows or shrinks by len(elems) minus the clamped range length.
// If the clamped range is empty, elems is discarded and s is returned
// unchanged.
//
// Like append, ReplaceSubrange may reuse s's backing array; callers
// should use the returned slice.
func ReplaceSubrange[S ~[]E, E any](s S, r Range, elems ...E) S {
	start, end := r.Resolve(len(s))
	if start == end {
		return s
	}
	return slices.Replace(s, start, end, elems...)
}
