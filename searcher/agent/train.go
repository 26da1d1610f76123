package agent

import (
	"loa/experiments/metrics"
	"loa/game"
	"loa/searcher"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type trainingAgent struct {
	mcts        *searcher.MCTS
	temperature float64
	rng         *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play that samples moves by
// root visit counts. A zero seed draws one from entropy.
func NewTrainingAgent(mcts *searcher.MCTS, temperature float64, seed int64) Agent {
	if temperature <= 0 {
		temperature = 1.0
	}
	return &trainingAgent{mcts: mcts, temperature: temperature, rng: newRand(seed)}
}

func (a *trainingAgent) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	_, metric, err := a.mcts.Search(board)
	if err != nil {
		return game.NoMove, metric, err
	}
	policy := adjustTemperature(a.mcts.Policy(), a.temperature)
	return sample(policy, a.rng.Float64()), metric, nil
}

func (a *trainingAgent) Snapshot() *searcher.Snapshot {
	return a.mcts.Snapshot()
}

type weightedMove struct {
	move game.Move
	prob float64
}

// adjustTemperature turns visit counts into probabilities sharpened (or
// flattened) by temperature, ordered by move for reproducible sampling.
func adjustTemperature(policy map[game.Move]float64, temperature float64) []weightedMove {
	exponent := 1.0 / temperature
	sum := 0.0
	adjusted := make([]weightedMove, 0, len(policy))
	for move, visit := range policy {
		prob := math.Pow(visit, exponent)
		sum += prob
		adjusted = append(adjusted, weightedMove{move: move, prob: prob})
	}
	sort.Slice(adjusted, func(i, j int) bool {
		if adjusted[i].move.Src != adjusted[j].move.Src {
			return adjusted[i].move.Src < adjusted[j].move.Src
		}
		return adjusted[i].move.Dst < adjusted[j].move.Dst
	})
	for i := range adjusted {
		adjusted[i].prob /= sum
	}
	return adjusted
}

func sample(policy []weightedMove, sampled float64) game.Move {
	cumulative := 0.0
	lastMove := game.NoMove
	for _, w := range policy {
		lastMove = w.move
		cumulative += w.prob
		if sampled < cumulative {
			return w.move
		}
	}
	return lastMove // Fallback in case of rounding errors
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = int64(frand.Uint64n(math.MaxInt64))
	}
	return rand.New(rand.NewSource(uint64(seed)))
}
