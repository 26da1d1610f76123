package experiments

import (
	"context"
	"fmt"
	"loa/engine"
	"loa/experiments/metrics"
	"loa/game"
	"loa/gamemaster"
	"loa/meta"
	"loa/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const NumGames = 10 // Per match up

type MatchUp struct {
	First  metrics.AgentConfig
	Second metrics.AgentConfig
}

type Experiment struct {
	Name     string
	OutDir   string
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
	Games    int // Per match up, colours alternate between games
	Parallel int
	MaxTurns int
}

type Summary struct {
	Games int
	Wins  map[int]int // AgentConfig.ID -> games won
	Draws int
	Dir   string
}

// BaselineExperiment pits the search agent against the random agent.
func BaselineExperiment(passes int) Experiment {
	plain := metrics.AgentConfig{ID: 0, Agent: "plain", Passes: passes, MaxSteps: meta.MAX_STEP,
		Exploration: meta.EXPLORATION, Source: "entropy"}
	idiot := metrics.AgentConfig{ID: 1, Agent: "idiot"}
	return Experiment{
		Name:     "baseline",
		OutDir:   "experiments",
		Configs:  []metrics.AgentConfig{plain, idiot},
		MatchUps: []MatchUp{{First: plain, Second: idiot}},
		Games:    NumGames,
		Parallel: meta.GO_ROUTINES,
		MaxTurns: meta.MAX_TURNS,
	}
}

type gameResult struct {
	record gamemaster.Result
	game   metrics.GameRecord
	moves  []metrics.MoveRecord
}

// Run plays every match up, several games at a time, and stores the records
// under OutDir/Name.
func Run(ctx context.Context, x Experiment) (Summary, error) {
	if x.Games <= 0 {
		x.Games = NumGames
	}
	if x.Parallel <= 0 {
		x.Parallel = 1
	}

	log.Info().Msgf("starting %s experiment...", x.Name)

	results := make([]gameResult, len(x.MatchUps)*x.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(x.Parallel)
	for mi, matchUp := range x.MatchUps {
		for i := 0; i < x.Games; i++ {
			id := mi*x.Games + i
			black, white := matchUp.First, matchUp.Second
			if i%2 == 1 {
				black, white = white, black
			}
			mi, i := mi, i
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := runGame(id, black, white, x.MaxTurns)
				if err != nil {
					return err
				}
				results[id] = result
				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s",
					mi+1, len(x.MatchUps), i+1, result.game.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("completed %s experiment", x.Name)

	summary := Summary{Games: len(results), Wins: make(map[int]int)}
	gameRecords := make([]metrics.GameRecord, 0, len(results))
	var moveRecords []metrics.MoveRecord
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
		switch r.record.Winner {
		case game.Black:
			summary.Wins[r.game.Black]++
		case game.White:
			summary.Wins[r.game.White]++
		default:
			summary.Draws++
		}
	}

	dir, err := store(x, gameRecords, moveRecords)
	if err != nil {
		return summary, err
	}
	summary.Dir = dir
	return summary, nil
}

func store(x Experiment, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(x.OutDir, x.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err = writer.WriteAgentConfigs(x.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")
	if err = writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to store game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err = writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to store move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}

// runGame executes a single game between two agent configs.
func runGame(id int, black, white metrics.AgentConfig, maxTurns int) (gameResult, error) {
	blackAgent, err := newAgent(black, id)
	if err != nil {
		return gameResult{}, err
	}
	whiteAgent, err := newAgent(white, id)
	if err != nil {
		return gameResult{}, err
	}

	e := engine.LocalEngine(blackAgent, whiteAgent, engine.WithMaxTurns(maxTurns))
	result, gameMetric, moveMetrics := e.Run()

	r := gameResult{
		record: result,
		game: metrics.GameRecord{
			ID:         id,
			Black:      black.ID,
			White:      white.ID,
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{Game: id, MoveMetric: mm})
	}
	return r, nil
}

// newAgent builds the agent for config. Seeded configs are offset by the game
// so that games differ but stay reproducible.
func newAgent(config metrics.AgentConfig, game int) (agent.Agent, error) {
	c := agent.DefaultConfig()
	if config.Passes > 0 {
		c.Passes = config.Passes
	}
	if config.MaxSteps > 0 {
		c.MaxSteps = config.MaxSteps
	}
	if config.Exploration > 0 {
		c.Exploration = config.Exploration
	}
	if config.Source != "" {
		c.Source = config.Source
	}
	if config.Seed != 0 {
		c.Seed = config.Seed + int64(game)
	}
	a, err := agent.New(config.Agent, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create agent %d: %w", config.ID, err)
	}
	return a, nil
}
