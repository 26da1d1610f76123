package agent

import (
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns an agent that plays uniformly at random.
func NewRandomAgent(seed int64) Agent {
	return &randomAgent{rng: newRand(seed)}
}

func (a *randomAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	moves := game.GenAllMoves(board)
	if len(moves) == 0 {
		return game.NoMove, metrics.SearchMetric{}, searcher.ErrNoMove
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{}, nil
}
