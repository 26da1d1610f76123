package engine

import (
	"errors"
	"loa/experiments/metrics"
	"loa/game"
	"loa/gamemaster"
	"loa/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
)

type scriptedAgent struct {
	moves []game.Move
	err   error
	calls int
}

func (a *scriptedAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	if a.err != nil {
		return game.NoMove, metrics.SearchMetric{}, a.err
	}
	m := a.moves[a.calls%len(a.moves)]
	a.calls++
	return m, metrics.SearchMetric{Passes: 1}, nil
}

func TestLocalEngine(t *testing.T) {
	t.Run("random agents finish a game", func(t *testing.T) {
		var updates []gamemaster.Update
		e := LocalEngine(agent.NewRandomAgent(1), agent.NewRandomAgent(2),
			WithObserver(func(u gamemaster.Update) { updates = append(updates, u) }))

		result, gameMetric, moveMetrics := e.Run()

		require.True(t, result.Over, "Game should end")
		require.Equal(t, game.Black, gameMetric.StartingPlayer)
		require.Equal(t, result.WinnerName(), gameMetric.Winner)
		require.Len(t, moveMetrics, gameMetric.TotalMoves, "Every move should be recorded")
		require.NotEmpty(t, updates, "Observer should see the moves")
		require.True(t, updates[len(updates)-1].Result.Over, "Last update should carry the result")
	})

	t.Run("turn limit draws", func(t *testing.T) {
		e := LocalEngine(agent.NewRandomAgent(3), agent.NewRandomAgent(4), WithMaxTurns(2))

		result, gameMetric, _ := e.Run()

		if result.Reason != gamemaster.ReasonConnected && result.Reason != gamemaster.ReasonBothConnected {
			require.Equal(t, gamemaster.ReasonTurnLimit, result.Reason)
			require.Equal(t, "draw", gameMetric.Winner)
			require.Equal(t, 2, gameMetric.TotalMoves)
		}
	})

	t.Run("illegal move forfeits", func(t *testing.T) {
		black := &scriptedAgent{moves: []game.Move{game.NewMove(1, 9)}}
		e := LocalEngine(black, agent.NewRandomAgent(5))

		result, gameMetric, moveMetrics := e.Run()

		require.Equal(t, game.White, result.Winner)
		require.Equal(t, gamemaster.ReasonIllegalMove, result.Reason)
		require.Equal(t, "white", gameMetric.Winner)
		require.Len(t, moveMetrics, 1)
		require.Zero(t, gameMetric.TotalMoves)
	})

	t.Run("agent error forfeits", func(t *testing.T) {
		white := &scriptedAgent{err: errors.New("offline")}
		e := LocalEngine(agent.NewRandomAgent(6), white)

		result, _, moveMetrics := e.Run()

		require.Equal(t, game.Black, result.Winner)
		require.Equal(t, gamemaster.ReasonAgentError, result.Reason)
		require.Len(t, moveMetrics, 2)
	})

	t.Run("plays on a given table", func(t *testing.T) {
		black := game.Bit(0) | game.Bit(1) | game.Bit(3)
		white := game.Bit(63) | game.Bit(39)
		table := gamemaster.NewTableFrom(game.Board{black, white}, game.Black)
		e := LocalEngine(&scriptedAgent{moves: []game.Move{game.NewMove(3, 10)}}, agent.NewRandomAgent(7), WithTable(table))

		result, gameMetric, _ := e.Run()

		require.Equal(t, game.Black, result.Winner, "Connecting move should win at once")
		require.Equal(t, 1, gameMetric.TotalMoves)
	})

	t.Run("needs two agents", func(t *testing.T) {
		require.Panics(t, func() { LocalEngine(nil, agent.NewRandomAgent(1)) })
	})
}
