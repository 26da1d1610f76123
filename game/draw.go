package game

import (
	"strings"

	"github.com/fatih/color"
)

var (
	blackPiece = color.New(color.FgHiRed, color.Bold).Sprint("●")
	whitePiece = color.New(color.FgHiWhite, color.Bold).Sprint("○")
	emptyCell  = color.New(color.FgHiBlack).Sprint("·")
	axisLabel  = color.New(color.FgCyan).SprintFunc()
)

// Draw renders the board with y = 7 on top. turn names the side to move so
// that pieces are drawn in their absolute colours.
func (b Board) Draw(turn int) string {
	sparse := b.Sparse(turn)

	var sb strings.Builder
	for y := Height - 1; y >= 0; y-- {
		sb.WriteString(axisLabel(y))
		for x := 0; x < Width; x++ {
			sb.WriteByte(' ')
			switch sparse[Index(x, y)] {
			case Black:
				sb.WriteString(blackPiece)
			case White:
				sb.WriteString(whitePiece)
			default:
				sb.WriteString(emptyCell)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(' ')
	for x := 0; x < Width; x++ {
		sb.WriteByte(' ')
		sb.WriteString(axisLabel(x))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func SideName(id int) string {
	switch id {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "none"
}
