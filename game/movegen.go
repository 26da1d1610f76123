package game

import "math/bits"

type direction struct {
	dx, dy int
	line   line
}

// Order matters: rollouts take the first legal destination.
var directions = [8]direction{
	{0, 1, lineCol},
	{0, -1, lineCol},
	{1, 0, lineRow},
	{-1, 0, lineRow},
	{-1, 1, lineSlash},
	{1, -1, lineSlash},
	{1, 1, lineBackslash},
	{-1, -1, lineBackslash},
}

// MoveIter lazily yields the legal destinations of one piece. A piece slides
// exactly as many squares as there are pieces of either side on the line of
// travel, may jump its own pieces but not the opponent's, and may not land on
// its own piece.
type MoveIter struct {
	own, opp uint64
	pos      int
	x, y     int
	next     int
	counts   [4]int
}

// NewMoveIter returns an iterator over the destinations of the piece at pos.
// If pos does not hold a piece of the side to move the iterator is empty.
func NewMoveIter(b Board, pos int) *MoveIter {
	it := &MoveIter{
		own:  b[0],
		opp:  b[1],
		pos:  pos,
		next: len(directions),
	}
	if pos < 0 || pos >= Squares || b[0]&Bit(pos) == 0 {
		return it
	}
	it.x, it.y = Coord2D(pos)
	it.next = 0
	return it
}

// Next returns the next legal destination, or false once exhausted.
func (it *MoveIter) Next() (int, bool) {
	for it.next < len(directions) {
		d := directions[it.next]
		it.next++

		mask := lineMask(d.line, it.x, it.y)
		if it.counts[d.line] == 0 {
			it.counts[d.line] = count((it.own | it.opp) & mask)
		}
		n := it.counts[d.line]

		x, y := it.x+n*d.dx, it.y+n*d.dy
		if !onBoard(x, y) {
			continue
		}
		dst := Index(x, y)
		if it.legal(dst, mask) {
			return dst, true
		}
	}
	return 0, false
}

func (it *MoveIter) legal(dst int, mask uint64) bool {
	if it.own&Bit(dst) != 0 {
		return false
	}
	var between uint64
	if dst > it.pos {
		between = ^(HigherEq(dst) | LowerEq(it.pos))
	} else {
		between = ^(HigherEq(it.pos) | LowerEq(dst))
	}
	return between&mask&it.opp == 0
}

// GenMoves collects every legal destination of the piece at pos.
func GenMoves(b Board, pos int) []int {
	var dsts []int
	it := NewMoveIter(b, pos)
	for dst, ok := it.Next(); ok; dst, ok = it.Next() {
		dsts = append(dsts, dst)
	}
	return dsts
}

// AppendMoves appends every legal move of the side to move, by ascending
// source square, to moves.
func AppendMoves(moves []Move, b Board) []Move {
	for own := b[0]; own != 0; own &= own - 1 {
		src := bits.TrailingZeros64(own)
		it := NewMoveIter(b, src)
		for dst, ok := it.Next(); ok; dst, ok = it.Next() {
			moves = append(moves, NewMove(src, dst))
		}
	}
	return moves
}

// GenAllMoves lists every legal move of the side to move.
func GenAllMoves(b Board) []Move {
	return AppendMoves(nil, b)
}

func HasMove(b Board) bool {
	for own := b[0]; own != 0; own &= own - 1 {
		if _, ok := NewMoveIter(b, bits.TrailingZeros64(own)).Next(); ok {
			return true
		}
	}
	return false
}

func IsLegal(b Board, m Move) bool {
	it := NewMoveIter(b, int(m.Src))
	for dst, ok := it.Next(); ok; dst, ok = it.Next() {
		if dst == int(m.Dst) {
			return true
		}
	}
	return false
}

// FirstMoveFrom scans the occupied squares of the side to move starting at
// square start and wrapping around, returning the first legal move found.
func FirstMoveFrom(b Board, start int) (Move, bool) {
	upper := b[0] & HigherEq(start)
	for _, part := range [2]uint64{upper, b[0] &^ upper} {
		for ; part != 0; part &= part - 1 {
			src := bits.TrailingZeros64(part)
			if dst, ok := NewMoveIter(b, src).Next(); ok {
				return NewMove(src, dst), true
			}
		}
	}
	return NoMove, false
}
