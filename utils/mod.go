package utils

import "golang.org/x/exp/constraints"

// Span accumulates the minimum, maximum and total of a series of samples.
type Span[T constraints.Integer] struct {
	Min   T
	Max   T
	Total T
	Count int
}

func (s *Span[T]) Add(v T) {
	if s.Count == 0 || v < s.Min {
		s.Min = v
	}
	if s.Count == 0 || v > s.Max {
		s.Max = v
	}
	s.Total += v
	s.Count++
}

func (s Span[T]) Mean() float64 {
	if s.Count == 0 {
		return 0
	}
	return float64(s.Total) / float64(s.Count)
}
