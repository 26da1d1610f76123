package game

import (
	"errors"
	"fmt"

)

const (
	Black = 0 // moves first
	White = 1

	Empty = -1
)

var (
	ErrInvalidSparse = errors.New("invalid sparse board")
)

// Board holds the occupancy of both sides, always from the perspective of the
// side to move: index 0 is the side to move, index 1 its opponent.
type Board [2]uint64

// Move is a (src, dst) pair of square indices.
type Move struct {
	Src, Dst int8
}

// NoMove is the sentinel carried by the root of a search tree.
var NoMove = Move{Src: 100, Dst: 100}

func NewMove(src, dst int) Move {
	return Move{Src: int8(src), Dst: int8(dst)}
}

func (m Move) Coords() (x0, y0, x1, y1 int) {
	x0, y0 = Coord2D(int(m.Src))
	x1, y1 = Coord2D(int(m.Dst))
	return
}

func (m Move) String() string {
	if m == NoMove {
		return "empty"
	}
	x0, y0, x1, y1 := m.Coords()
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", x0, y0, x1, y1)
}

// StartingBoard returns the opening layout with Black to move.
func StartingBoard() Board {
	return Board{
		0x7E0000000000007E,
		0x0081818181818100,
	}
}

// FromSparse builds a board from 64 row-major cells holding Empty, Black or
// White, oriented so that side turn is to move.
func FromSparse(sparse []int, turn int) (Board, error) {
	if len(sparse) != Squares {
		return Board{}, fmt.Errorf("%w: got %d cells", ErrInvalidSparse, len(sparse))
	}
	if turn != Black && turn != White {
		return Board{}, fmt.Errorf("%w: turn %d", ErrInvalidSparse, turn)
	}

	var b Board
	for pos, id := range sparse {
		switch id {
		case Empty:
		case Black, White:
			b[id] |= Bit(pos)
		default:
			return Board{}, fmt.Errorf("%w: cell %d holds %d", ErrInvalidSparse, pos, id)
		}
	}
	if turn == White {
		return b.Swap(), nil
	}
	return b, nil
}

// Sparse is the inverse of FromSparse.
func (b Board) Sparse(turn int) []int {
	if turn == White {
		b = b.Swap()
	}
	sparse := make([]int, Squares)
	for pos := range sparse {
		switch {
		case b[Black]&Bit(pos) != 0:
			sparse[pos] = Black
		case b[White]&Bit(pos) != 0:
			sparse[pos] = White
		default:
			sparse[pos] = Empty
		}
	}
	return sparse
}

// Swap hands the move to the other side without moving a piece.
func (b Board) Swap() Board {
	return Board{b[1], b[0]}
}

// Apply moves the piece at m.Src to m.Dst, capturing whatever stood there, and
// returns the board from the opponent's perspective. NoMove is a pass.
func (b Board) Apply(m Move) Board {
	if m == NoMove {
		return b.Swap()
	}
	dst := Bit(int(m.Dst))
	return Board{b[1] &^ dst, b[0]&^Bit(int(m.Src)) | dst}
}

func (b Board) Pieces(id int) int {
	return count(b[id])
}
