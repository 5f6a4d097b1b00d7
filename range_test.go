package safesub

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeResolve(t *testing.T) {
	testCases := []struct {
		name      string
		r         Range
		length    int
		wantStart int
		wantEnd   int
	}{
		{"fully inside", NewRange(1, 4), 5, 1, 4},
		{"whole span", NewRange(0, 5), 5, 0, 5},
		{"end clamped", NewRange(3, 100), 5, 3, 5},
		{"start clamped", NewRange(-3, 2), 5, 0, 2},
		{"both clamped", NewRange(-10, 100), 5, 0, 5},
		{"fully past the end", NewRange(10, 20), 5, 5, 5},
		{"fully before the start", NewRange(-20, -10), 5, 0, 0},
		{"inverted", NewRange(4, 1), 5, 4, 4},
		{"empty in bounds", NewRange(2, 2), 5, 2, 2},

		{"open end", From(3), 5, 3, 5},
		{"open end, start clamped", From(10), 5, 5, 5},
		{"open end, negative start", From(-2), 5, 0, 5},
		{"open start", UpTo(3), 5, 0, 3},
		{"open start, end clamped", UpTo(100), 5, 0, 5},
		{"open both", Whole(), 5, 0, 5},
		{"zero value", Range{}, 5, 0, 5},

		{"empty container", NewRange(0, 3), 0, 0, 0},
		{"empty container, open", Whole(), 0, 0, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			start, end := testCase.r.Resolve(testCase.length)
			assert.Equal(t, testCase.wantStart, start)
			assert.Equal(t, testCase.wantEnd, end)
			assert.LessOrEqual(t, start, end)
		})
	}
}

func TestRangeIsEmptyIn(t *testing.T) {
	assert.False(t, NewRange(1, 4).IsEmptyIn(5))
	assert.True(t, NewRange(2, 2).IsEmptyIn(5))
	assert.True(t, NewRange(10, 20).IsEmptyIn(5))
	assert.True(t, NewRange(4, 1).IsEmptyIn(5))
	assert.True(t, Whole().IsEmptyIn(0))
	assert.False(t, Whole().IsEmptyIn(1))
}
