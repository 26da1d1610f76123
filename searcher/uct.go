package searcher

import "math"

type uct struct {
	numerator float64
}

// newUCT prepares the exploration numerator c^2*ln(N) for a parent visited N
// times.
func newUCT(c float64, N float64) *uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return &uct{numerator: c * c * math.Log(N)}
}

// evaluate scores a child from its parent's perspective. A child counts wins
// for its own side to move, so the parent is rewarded by the child's losses.
func (u uct) evaluate(wins float64, n float64) float64 {
	if n == 0 {
		panic("n cannot be 0")
	}
	// UCT = 1 - wins/n + sqrt(c^2*ln(N)/n)
	return (n-wins)/n + math.Sqrt(u.numerator/n)
}
