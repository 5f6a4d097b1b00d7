// Package safesub provides bounds-safe element and subrange access for
// ordered containers.
//
// Every operation resolves out-of-bounds conditions locally instead of
// panicking: single-element reads return an absent mo.Option, range reads
// clamp the requested range to the container's valid span, and writes
// outside the valid span are silent no-ops. There is no error type.
//
// The package offers two parallel API families with identical semantics:
// generic functions over plain slices (At, SetAt, Subrange,
// ReplaceSubrange) and generic functions over capability interfaces
// (Get, Set, GetRange, SetRange) for containers that are not slices.
package safesub
