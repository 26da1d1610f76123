package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// parse reads a diagram with y = 7 on the first row. 'x' marks the side to
// move, 'o' its opponent.
func parse(t *testing.T, rows ...string) Board {
	t.Helper()
	require.Len(t, rows, Height)

	var b Board
	for i, row := range rows {
		require.Len(t, row, Width)
		y := Height - 1 - i
		for x, c := range row {
			switch c {
			case 'x':
				b[0] |= Bit(Index(x, y))
			case 'o':
				b[1] |= Bit(Index(x, y))
			}
		}
	}
	return b
}

func TestMasks(t *testing.T) {
	t.Run("higher and lower masks overlap only at the square", func(t *testing.T) {
		for pos := 0; pos < Squares; pos++ {
			require.Equal(t, Bit(pos), HigherEq(pos)&LowerEq(pos), "Masks should share exactly square %d", pos)
			require.Equal(t, ^uint64(0), HigherEq(pos)|LowerEq(pos), "Masks should cover the board")
		}
	})

	t.Run("diagonal masks hold the squares on the diagonal", func(t *testing.T) {
		for pos := 0; pos < Squares; pos++ {
			x0, y0 := Coord2D(pos)
			var slash, backslash uint64
			for p := 0; p < Squares; p++ {
				x, y := Coord2D(p)
				if x+y == x0+y0 {
					slash |= Bit(p)
				}
				if x-y == x0-y0 {
					backslash |= Bit(p)
				}
			}
			require.Equal(t, slash, lineMask(lineSlash, x0, y0), "Slash mask should match at %d", pos)
			require.Equal(t, backslash, lineMask(lineBackslash, x0, y0), "Backslash mask should match at %d", pos)
		}
	})
}

func TestStartingBoard(t *testing.T) {
	b := StartingBoard()

	require.Equal(t, 12, b.Pieces(Black), "Black should start with 12 pieces")
	require.Equal(t, 12, b.Pieces(White), "White should start with 12 pieces")
	require.Zero(t, b[0]&b[1], "Sides should not share a square")

	sparse := b.Sparse(Black)
	require.Equal(t, []int{-1, 0, 0, 0, 0, 0, 0, -1}, sparse[:8], "Bottom row should hold black pieces")
	require.Equal(t, []int{1, -1, -1, -1, -1, -1, -1, 1}, sparse[8:16], "Side columns should hold white pieces")
}

func TestSparse(t *testing.T) {
	t.Run("round trip from both sides", func(t *testing.T) {
		sparse := StartingBoard().Sparse(Black)

		for _, turn := range []int{Black, White} {
			b, err := FromSparse(sparse, turn)
			require.NoError(t, err)
			require.Equal(t, sparse, b.Sparse(turn), "Sparse form should survive a round trip")
		}
	})

	t.Run("white to move swaps the sides", func(t *testing.T) {
		b, err := FromSparse(StartingBoard().Sparse(Black), White)

		require.NoError(t, err)
		require.Equal(t, StartingBoard().Swap(), b, "White should become the side to move")
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := FromSparse(make([]int, 10), Black)
		require.ErrorIs(t, err, ErrInvalidSparse, "Short boards should be rejected")

		cells := StartingBoard().Sparse(Black)
		cells[20] = 2
		_, err = FromSparse(cells, Black)
		require.ErrorIs(t, err, ErrInvalidSparse, "Unknown cell values should be rejected")

		_, err = FromSparse(StartingBoard().Sparse(Black), 3)
		require.ErrorIs(t, err, ErrInvalidSparse, "Unknown turns should be rejected")
	})
}

func TestApply(t *testing.T) {
	t.Run("quiet move swaps perspective", func(t *testing.T) {
		b := StartingBoard()

		next := b.Apply(NewMove(1, 17))

		require.Equal(t, b[1], next[0], "Opponent should be to move")
		require.Equal(t, b[0]&^Bit(1)|Bit(17), next[1], "Piece should leave its source for its destination")
	})

	t.Run("capture removes the opponent piece", func(t *testing.T) {
		b := parse(t,
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"........",
			"x.o....o",
		)

		next := b.Apply(NewMove(0, 2))

		require.Equal(t, Bit(7), next[0], "Captured piece should be removed")
		require.Equal(t, Bit(2), next[1], "Mover should stand on the captured square")
	})

	t.Run("no move passes", func(t *testing.T) {
		b := StartingBoard()
		require.Equal(t, b.Swap(), b.Apply(NoMove), "Passing should only swap sides")
	})
}

func TestMoveString(t *testing.T) {
	require.Equal(t, "(1, 0) -> (1, 2)", NewMove(1, 17).String())
	require.Equal(t, "empty", NoMove.String())
}
