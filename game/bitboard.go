package game

import "math/bits"

const (
	Width   = 8
	Height  = 8
	Squares = Width * Height
)

// Line masks through square 0 (row, column) or along the two long diagonals.
const (
	maskRow       uint64 = 0xFF
	maskCol       uint64 = 0x0101010101010101
	maskSlash     uint64 = 0x0102040810204080 // x+y == 7
	maskBackslash uint64 = 0x8040201008040201 // x == y
)

type line uint8

const (
	lineCol line = iota
	lineRow
	lineSlash
	lineBackslash
)

// Bit returns the single-bit mask of square pos.
func Bit(pos int) uint64 {
	return 1 << uint(pos)
}

// HigherEq returns a mask of every square with index >= pos.
func HigherEq(pos int) uint64 {
	return -Bit(pos)
}

// LowerEq returns a mask of every square with index <= pos.
func LowerEq(pos int) uint64 {
	return ^HigherEq(pos) | Bit(pos)
}

// Coord2D splits a square index into (x, y).
func Coord2D(pos int) (x, y int) {
	return pos & 7, pos >> 3
}

// Index joins (x, y) into a square index.
func Index(x, y int) int {
	return x | y<<3
}

func onBoard(x, y int) bool {
	return x >= 0 && y >= 0 && x < Width && y < Height
}

func count(bb uint64) int {
	return bits.OnesCount64(bb)
}

// lineMask returns the occupancy mask of line l passing through (x, y).
func lineMask(l line, x, y int) uint64 {
	switch l {
	case lineCol:
		return maskCol << uint(x)
	case lineRow:
		return maskRow << uint(y<<3)
	case lineSlash:
		if pl := x + y; pl < 7 {
			return maskSlash >> uint((7-pl)<<3)
		} else {
			return maskSlash << uint((pl-7)<<3)
		}
	default:
		if pl := x - y; pl > 0 {
			return maskBackslash >> uint(pl<<3)
		} else {
			return maskBackslash << uint((-pl)<<3)
		}
	}
}

// adjacency[pos] holds the 8-neighbourhood of pos.
var adjacency [Squares]uint64

func init() {
	for pos := 0; pos < Squares; pos++ {
		x0, y0 := Coord2D(pos)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if (dx != 0 || dy != 0) && onBoard(x0+dx, y0+dy) {
					adjacency[pos] |= Bit(Index(x0+dx, y0+dy))
				}
			}
		}
	}
}
