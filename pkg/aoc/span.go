package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Span is the half-open range [Start, End).
type Span[T constraints.Integer] struct {
	Start, End T
}

func (s Span[T]) String() string {
	return fmt.Sprintf("%v..%v", s.Start, s.End)
}

// Len returns the number of values in the span.
func (s Span[T]) Len() T {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// Contains reports whether v lies inside the span.
func (s Span[T]) Contains(v T) bool {
	return s.Start <= v && v < s.End
}

// Overlaps reports whether the two spans share at least one value.
func (s Span[T]) Overlaps(o Span[T]) bool {
	return s.Start < o.End && o.Start < s.End
}

// AdjacentTo reports whether one span ends exactly where the other starts.
func (s Span[T]) AdjacentTo(o Span[T]) bool {
	return s.End == o.Start || s.Start == o.End
}

func (s Span[T]) OverlapsOrAdjacent(o Span[T]) bool {
	return s.Overlaps(o) || s.AdjacentTo(o)
}
