package safesub

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// At returns the element of s at index i, or an absent option if i is
// outside [0, len(s)).
func At[S ~[]E, E any](s S, i int) mo.Option[E] {
	if i < 0 || i >= len(s) {
		return mo.None[E]()
	}
	return mo.Some(s[i])
}

// SetAt replaces the element of s at index i with v, in place. If i is
// outside [0, len(s)) or v is absent the call is a no-op. An absent v
// means "skip", not "remove": the length of s never changes.
func SetAt[S ~[]E, E any](s S, i int, v mo.Option[E]) {
	if i < 0 || i >= len(s) {
		return
	}
	if elem, ok := v.Get(); ok {
		s[i] = elem
	}
}

// AtOrZero returns the element at index i, or the zero value of E if i
// is out of bounds.
func AtOrZero[S ~[]E, E any](s S, i int) E {
	return At(s, i).OrElse(lo.Empty[E]())
}

// AtOr returns the element at index i, or fallback if i is out of bounds.
func AtOr[S ~[]E, E any](s S, i int, fallback E) E {
	return At(s, i).OrElse(fallback)
}

// First returns the first element of s, or an absent option if s is empty.
func First[S ~[]E, E any](s S) mo.Option[E] {
	return At(s, 0)
}

// Last returns the last element of s, or an absent option if s is empty.
func Last[S ~[]E, E any](s S) mo.Option[E] {
	return At(s, len(s)-1)
}
