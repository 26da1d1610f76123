package searcher

import (
	"errors"
	"fmt"
	"loa/experiments/metrics"
	"loa/game"
	"loa/meta"

	"github.com/rs/zerolog"
)

var ErrNoMove = errors.New("no move found")

type Option func(mcts *MCTS)

type MCTS struct {
	passes      int
	maxSteps    int
	exploration float64
	source      Source
	metrics     metrics.Collector
	logger      zerolog.Logger
	tree        *tree
	path        []int32
}

func WithPasses(passes int) Option {
	return func(m *MCTS) {
		m.passes = passes
	}
}

func WithMaxSteps(steps int) Option {
	return func(m *MCTS) {
		if steps > 0 {
			m.maxSteps = steps
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithSource(source Source) Option {
	return func(m *MCTS) {
		if source != nil {
			m.source = source
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.metrics = collector
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(m *MCTS) {
		m.logger = logger
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		passes:      meta.MAX_NODE,
		maxSteps:    meta.MAX_STEP,
		exploration: meta.EXPLORATION,
		metrics:     metrics.NewCollector(),
		logger:      zerolog.Nop(),
	}
	for _, option := range options {
		option(m)
	}
	if m.passes <= 0 {
		panic("Must specify a positive number of search passes")
	}
	if m.source == nil {
		m.source = NewEntropySource()
	}
	return m
}

// Search builds a fresh tree for board, the position of the side to move,
// and returns the most promising move after the configured passes.
func (m *MCTS) Search(board game.Board) (game.Move, metrics.SearchMetric, error) {
	m.tree = newTree(board)
	rng := newByteStream(m.source)

	m.metrics.Start(m.passes, m.maxSteps)
	for i := 0; i < m.passes; i++ {
		m.pass(board, rng)
	}
	metric := m.metrics.Complete()
	m.report(metric)

	best, ok := m.tree.bestChild(rootIndex, m.exploration)
	if !ok {
		return game.NoMove, metric, ErrNoMove
	}
	return m.tree.nodes[best].move, metric, nil
}

func (m *MCTS) pass(board game.Board, rng *byteStream) {
	target, parent, ok, path := m.tree.selectPath(board, m.exploration, m.path[:0])
	m.path = path

	win, hit, term, depth := false, false, false, 0
	if ok {
		term = m.tree.expand(target, parent)
		win, hit, depth = m.tree.simulate(target, rng, m.maxSteps)
	}
	// Inconclusive passes are still backed up, as losses.
	m.tree.backup(path, hit && win)
	m.metrics.AddPass(hit, term, len(path), depth)
}

func (m *MCTS) report(metric metrics.SearchMetric) {
	e := m.logger.Debug()
	if !e.Enabled() {
		return
	}
	e.Int("passes", metric.Passes).
		Int("hits", metric.Hits).
		Int("term_expansions", metric.TermExpansions).
		Int("expand_depth_min", metric.ExpandDepth.Min).
		Int("expand_depth_max", metric.ExpandDepth.Max).
		Float64("expand_depth_avg", metric.ExpandDepth.Mean()).
		Int("simulate_depth_min", metric.SimulateDepth.Min).
		Int("simulate_depth_max", metric.SimulateDepth.Max).
		Float64("simulate_depth_avg", metric.SimulateDepth.Mean()).
		Dur("duration", metric.Duration).
		Int("size", m.Size()).
		Str("digest", fmt.Sprintf("%016x", m.Digest())).
		Msg("search complete")
}

// Policy returns the visit counts of the expanded children of the last
// searched root.
func (m *MCTS) Policy() map[game.Move]float64 {
	policy := make(map[game.Move]float64)
	if m.tree == nil {
		return policy
	}
	root := &m.tree.nodes[rootIndex]
	if root.kind != internal {
		return policy
	}
	for j := root.first; j < root.first+root.count; j++ {
		if child := &m.tree.nodes[j]; child.expanded() {
			policy[child.move] = float64(child.visits)
		}
	}
	return policy
}

// Size returns the number of nodes in the last searched tree.
func (m *MCTS) Size() int {
	if m.tree == nil {
		return 0
	}
	return len(m.tree.nodes)
}
