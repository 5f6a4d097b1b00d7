package safesub

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// A Range is a half-open interval [Start, End) over container indices.
// An absent bound extends to the corresponding edge of the container the
// range is resolved against, so ranges may be open-ended on either side.
// The zero value covers the whole container.
type Range struct {
	Start mo.Option[int]
	End   mo.Option[int]
}

// NewRange returns the range [start, end).
func NewRange(start, end int) Range {
	return Range{Start: mo.Some(start), End: mo.Some(end)}
}

// From returns the range [start, container end).
func From(start int) Range {
	return Range{Start: mo.Some(start)}
}

// UpTo returns the range [container start, end).
func UpTo(end int) Range {
	return Range{End: mo.Some(end)}
}

// Whole returns the range covering the whole container.
func Whole() Range {
	return Range{}
}

// Resolve resolves r against a container of length n and intersects the
// result with the valid span [0, n). The returned bounds always satisfy
// 0 <= start <= end <= n; an empty intersection yields start == end.
func (r Range) Resolve(n int) (start, end int) {
	start = lo.Clamp(r.Start.OrEmpty(), 0, n)
	end = lo.Clamp(r.End.OrElse(n), start, n)
	return start, end
}

// IsEmptyIn reports whether r resolves to an empty range in a container
// of length n.
func (r Range) IsEmptyIn(n int) bool {
	start, end := r.Resolve(n)
	return start == end
}
