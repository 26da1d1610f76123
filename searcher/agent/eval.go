package agent

import (
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"
)

type evaluationAgent struct {
	mcts *searcher.MCTS
}

// NewEvaluationAgent returns a new agent that plays the engine's best move.
func NewEvaluationAgent(mcts *searcher.MCTS) Agent {
	return evaluationAgent{mcts: mcts}
}

func (a evaluationAgent) Snapshot() *searcher.Snapshot {
	return a.mcts.Snapshot()
}

func (a evaluationAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	return a.mcts.Search(board)
}
