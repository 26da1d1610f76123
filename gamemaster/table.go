package gamemaster

import (
	"errors"
	"fmt"
	"loa/game"

	"github.com/rs/zerolog/log"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrGameOver    = errors.New("game is over - no moves allowed")
)

const None = -1

const (
	ReasonConnected     = "connected"
	ReasonBothConnected = "both connected"
	ReasonStalemate     = "no moves"
	ReasonIllegalMove   = "illegal move"
	ReasonAgentError    = "agent error"
	ReasonTurnLimit     = "turn limit"
)

type Result struct {
	Over   bool
	Winner int // game.Black, game.White or None
	Reason string
}

// WinnerName names the winning side, "both" when both sides connected at once
// and "draw" otherwise.
func (r Result) WinnerName() string {
	switch {
	case !r.Over:
		return ""
	case r.Reason == ReasonBothConnected:
		return "both"
	case r.Winner == None:
		return "draw"
	}
	return game.SideName(r.Winner)
}

type Update struct {
	Step   int
	Side   int // side that moved
	Move   game.Move
	Passed bool // the other side had no move and Side moves again
	Turn   int  // side to move next
	Sparse []int
	Result Result
}

type UpdateGetter func() (Update, bool)

const updateBuffer = 16

// Table is the authority on a game: it holds the real position, accepts
// only legal moves and decides when the game ends.
type Table struct {
	board    game.Board // from the perspective of turn
	turn     int
	step     int
	result   Result
	updateCh chan Update
}

// NewTable starts a game from the opening layout with Black to move.
func NewTable() *Table {
	return NewTableFrom(game.StartingBoard(), game.Black)
}

// NewTableFrom starts a game from board with side turn to move.
func NewTableFrom(board game.Board, turn int) *Table {
	return &Table{
		board:    board,
		turn:     turn,
		result:   Result{Winner: None},
		updateCh: make(chan Update, updateBuffer),
	}
}

// Updates returns a non-blocking getter for published updates. ok is false
// when no update is pending.
func (t *Table) Updates() UpdateGetter {
	return func() (Update, bool) {
		select {
		case u := <-t.updateCh:
			return u, true
		default:
			return Update{}, false
		}
	}
}

func (t *Table) Board() game.Board {
	return t.board
}

func (t *Table) Turn() int {
	return t.turn
}

func (t *Table) Step() int {
	return t.step
}

func (t *Table) Result() Result {
	return t.result
}

func (t *Table) Sparse() []int {
	return t.board.Sparse(t.turn)
}

// Play applies a move for the side to move.
func (t *Table) Play(move game.Move) error {
	if t.result.Over {
		return ErrGameOver
	}
	if !game.IsLegal(t.board, move) {
		return fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}

	mover, opponent := t.turn, 1-t.turn
	next := t.board.Apply(move)
	t.step++
	u := Update{Step: t.step, Side: mover, Move: move}

	moverConnected, opponentConnected := next.Connected(1), next.Connected(0)
	switch {
	case moverConnected && opponentConnected:
		t.finish(None, ReasonBothConnected)
	case moverConnected:
		t.finish(mover, ReasonConnected)
	case opponentConnected:
		t.finish(opponent, ReasonConnected)
	case !game.HasMove(next) && !game.HasMove(next.Swap()):
		t.finish(None, ReasonStalemate)
	case !game.HasMove(next):
		// Opponent is stuck and passes.
		next = next.Swap()
		opponent = mover
		u.Passed = true
	}

	t.board, t.turn = next, opponent
	u.Turn = t.turn
	t.publish(u)
	return nil
}

// Forfeit ends the game in favour of side's opponent.
func (t *Table) Forfeit(side int, reason string) error {
	if t.result.Over {
		return ErrGameOver
	}
	t.finish(1-side, reason)
	t.publish(Update{Step: t.step, Side: side, Move: game.NoMove, Turn: t.turn})
	return nil
}

// Stop ends the game as a draw.
func (t *Table) Stop(reason string) error {
	if t.result.Over {
		return ErrGameOver
	}
	t.finish(None, reason)
	t.publish(Update{Step: t.step, Side: None, Move: game.NoMove, Turn: t.turn})
	return nil
}

func (t *Table) finish(winner int, reason string) {
	t.result = Result{Over: true, Winner: winner, Reason: reason}
}

func (t *Table) publish(u Update) {
	u.Sparse = t.Sparse()
	u.Result = t.result
	select {
	case t.updateCh <- u:
	default:
		log.Warn().Msgf("update for step %d dropped, nobody is reading", u.Step)
	}
}
