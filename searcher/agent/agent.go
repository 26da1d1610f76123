package agent

import (
	"errors"
	"fmt"
	"loa/experiments/metrics"
	"loa/game"
	"loa/meta"
	"loa/searcher"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"
)

var ErrUnknownAgent = errors.New("unknown agent")

type Agent interface {
	// FindMove returns a move for the side to move on board and performance metrics (if collected) from the search
	FindMove(board game.Board) (game.Move, metrics.SearchMetric, error)
}

// Inspector is implemented by agents that can export their last search tree.
type Inspector interface {
	Snapshot() *searcher.Snapshot
}

// Config tunes the agents built by the registry. Zero fields fall back to
// the engine defaults.
type Config struct {
	Passes      int     `json:"passes"`
	MaxSteps    int     `json:"max_steps"`
	Exploration float64 `json:"exploration"`
	Source      string  `json:"source"`
	Seed        int64   `json:"seed"`
	Temperature float64 `json:"temperature"`
}

func DefaultConfig() Config {
	return Config{
		Passes:      meta.MAX_NODE,
		MaxSteps:    meta.MAX_STEP,
		Exploration: meta.EXPLORATION,
		Source:      searcher.SourceEntropy,
		Temperature: 1.0,
	}
}

// NewMCTS builds a search engine from c.
func (c Config) NewMCTS(options ...searcher.Option) (*searcher.MCTS, error) {
	source, err := searcher.NewSource(c.Source, c.Seed)
	if err != nil {
		return nil, err
	}
	opts := []searcher.Option{
		searcher.WithSource(source),
		searcher.WithMaxSteps(c.MaxSteps),
	}
	if c.Passes > 0 {
		opts = append(opts, searcher.WithPasses(c.Passes))
	}
	if c.Exploration > 0 {
		opts = append(opts, searcher.WithExploration(c.Exploration))
	}
	return searcher.NewMCTS(append(opts, options...)...), nil
}

type Factory func(config Config) (Agent, error)

var (
	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

// Register makes an agent available by name. The first registration of a
// name wins.
func Register(name string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := registry[name]; ok {
		log.Warn().Msgf("agent %s has already been registered", name)
		return
	}
	registry[name] = factory
}

// New builds the agent registered as name.
func New(name string, config Config) (Agent, error) {
	mu.RLock()
	factory, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAgent, name)
	}
	return factory(config)
}

// List returns the registered agent names in order.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register("plain", func(config Config) (Agent, error) {
		mcts, err := config.NewMCTS(searcher.WithLogger(log.Logger))
		if err != nil {
			return nil, err
		}
		return NewEvaluationAgent(mcts), nil
	})
	Register("training", func(config Config) (Agent, error) {
		mcts, err := config.NewMCTS()
		if err != nil {
			return nil, err
		}
		return NewTrainingAgent(mcts, config.Temperature, config.Seed), nil
	})
	Register("idiot", func(config Config) (Agent, error) {
		return NewRandomAgent(config.Seed), nil
	})
}
