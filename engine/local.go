package engine

import (
	"loa/experiments/metrics"
	"loa/game"
	"loa/gamemaster"
	"loa/meta"
	"loa/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxTurns caps the number of moves before the game is drawn.
func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// WithObserver receives every update published by the table.
func WithObserver(observer func(gamemaster.Update)) Option {
	return func(e *Local) {
		if observer != nil {
			e.observers = append(e.observers, observer)
		}
	}
}

// WithTable plays on table instead of a fresh opening.
func WithTable(table *gamemaster.Table) Option {
	return func(e *Local) {
		if table != nil {
			e.table = table
		}
	}
}

var _ Engine = (*Local)(nil)

type Local struct {
	table     *gamemaster.Table
	agents    [2]agent.Agent
	maxTurns  int
	observers []func(gamemaster.Update)
}

func LocalEngine(black, white agent.Agent, options ...Option) *Local {
	if black == nil || white == nil {
		panic("need an agent for each side")
	}
	e := &Local{
		agents:   [2]agent.Agent{black, white},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	if e.table == nil {
		e.table = gamemaster.NewTable()
	}
	return e
}

// Run executes the entire game loop until the table declares the game over.
func (e *Local) Run() (gamemaster.Result, metrics.GameMetric, []metrics.MoveMetric) {
	getUpdate := e.table.Updates()
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.table.Turn(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", game.SideName(e.table.Turn()))

	for turn := 1; !e.table.Result().Over; turn++ {
		if turn > e.maxTurns {
			_ = e.table.Stop(gamemaster.ReasonTurnLimit) // cannot be over inside the loop
			break
		}

		side := e.table.Turn()
		move, searchMetric, err := e.agents[side].FindMove(e.table.Board())
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side,
			Move:         move.String(),
			SearchMetric: searchMetric,
		})
		if err != nil {
			log.Warn().Err(err).Msgf("%s failed to find a move", game.SideName(side))
			_ = e.table.Forfeit(side, gamemaster.ReasonAgentError)
			break
		}

		err = e.table.Play(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%s played an illegal move", game.SideName(side))
			_ = e.table.Forfeit(side, gamemaster.ReasonIllegalMove)
			break
		}
		e.notify(getUpdate)
	}
	e.notify(getUpdate)

	result := e.table.Result()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.Winner = result.WinnerName()
	gameMetric.Reason = result.Reason
	gameMetric.TotalMoves = e.table.Step()

	log.Info().Msgf("game over after %d moves: %s (%s)", gameMetric.TotalMoves, gameMetric.Winner, result.Reason)
	return result, gameMetric, moveMetrics
}

func (e *Local) notify(getUpdate gamemaster.UpdateGetter) {
	for u, ok := getUpdate(); ok; u, ok = getUpdate() {
		for _, observer := range e.observers {
			observer(u)
		}
	}
}
