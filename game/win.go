package game

import "math/bits"

type disjointSet [Squares]int8

func newDisjointSet() *disjointSet {
	var s disjointSet
	for i := range s {
		s[i] = -1
	}
	return &s
}

func (s *disjointSet) root(i int) int {
	if s[i] < 0 {
		return i
	}
	r := s.root(int(s[i]))
	s[i] = int8(r)
	return r
}

func (s *disjointSet) join(a, b int) {
	ra, rb := s.root(a), s.root(b)
	if ra != rb {
		s[rb] = int8(ra)
	}
}

// Connected reports whether side id counts as connected: either the opponent
// is down to a single piece, or every piece of id sits in one 8-connected
// group. A side with no pieces is connected.
func (b Board) Connected(id int) bool {
	if count(b[1-id]) == 1 {
		return true
	}

	mine := b[id]
	set := newDisjointSet()
	for bb := mine; bb != 0; bb &= bb - 1 {
		pos := bits.TrailingZeros64(bb)
		near := adjacency[pos] & mine
		if near == 0 {
			return false
		}
		for ; near != 0; near &= near - 1 {
			set.join(pos, bits.TrailingZeros64(near))
		}
	}

	root := -1
	for bb := mine; bb != 0; bb &= bb - 1 {
		r := set.root(bits.TrailingZeros64(bb))
		if root >= 0 && r != root {
			return false
		}
		root = r
	}
	return true
}

// Terminal classifies a position from the side to move. ok is false while
// neither side is connected; otherwise win reports whether the side to move
// is connected, which takes precedence when both are.
func (b Board) Terminal() (win bool, ok bool) {
	if b.Connected(0) {
		return true, true
	}
	if b.Connected(1) {
		return false, true
	}
	return false, false
}
