package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"loa/communication/client"
	"loa/communication/server"
	"loa/engine"
	"loa/experiments"
	"loa/experiments/metrics"
	"loa/game"
	"loa/gamemaster"
	"loa/searcher/agent"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const usage = `usage: loa <move|match|serve|experiment> [flags]`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	mode := os.Args[1]

	fs := flag.NewFlagSet(mode, flag.ExitOnError)
	configPath := fs.String("config", "", "JSON config file")
	logLevel := fs.String("log-level", "", "Log level (debug, info, warn, error)")
	agentName := fs.String("agent", "", "Agent to search with")
	passes := fs.Int("passes", 0, "Search passes per move")
	source := fs.String("source", "", "Randomness source (entropy, table, mt)")
	seed := fs.Int64("seed", 0, "Seed or table cursor of the randomness source")
	maxTurns := fs.Int("max-turns", 0, "Plies before a match is stopped")

	turn := fs.Int("turn", game.Black, "Side to move (0 black, 1 white)")
	board := fs.String("board", "", "64 cells, row-major from (0, 0): -1 empty, 0 black, 1 white")
	black := fs.String("black", "plain", "Black agent, or the URL of an agent server")
	white := fs.String("white", "idiot", "White agent, or the URL of an agent server")
	addr := fs.String("addr", "", "Address to serve on")
	games := fs.Int("games", 0, "Games per match up")
	out := fs.String("out", "", "Directory for experiment records")
	tree := fs.String("tree", "", "Directory to export the searched tree to (move mode)")
	_ = fs.Parse(os.Args[2:])

	config, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			config.LogLevel = *logLevel
		case "agent":
			config.Agent = *agentName
		case "passes":
			config.Search.Passes = *passes
		case "source":
			config.Search.Source = *source
		case "seed":
			config.Search.Seed = *seed
		case "max-turns":
			config.MaxTurns = *maxTurns
		case "addr":
			config.Addr = *addr
		case "games":
			config.Games = *games
		case "out":
			config.OutDir = *out
		}
	})

	setupLogger(config)

	switch mode {
	case "move":
		err = runMove(config, *board, *turn, *tree)
	case "match":
		err = runMatch(config, *black, *white)
	case "serve":
		err = server.New(config.Agent, config.Search, config.MaxTurns).ListenAndServe(config.Addr)
	case "experiment":
		err = runExperiment(config)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msgf("%s failed", mode)
	}
}

func setupLogger(config Config) {
	zerolog.SetGlobalLevel(config.Level())
	if isatty.IsTerminal(os.Stderr.Fd()) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	}
}

func runMove(config Config, cells string, turn int, treeDir string) error {
	sparse, err := parseBoard(cells)
	if err != nil {
		return err
	}
	b, err := game.FromSparse(sparse, turn)
	if err != nil {
		return err
	}
	a, err := agent.New(config.Agent, config.Search)
	if err != nil {
		return err
	}

	move, metric, err := a.FindMove(b)
	if err != nil {
		return err
	}
	x0, y0, x1, y1 := move.Coords()
	fmt.Printf("%d %d %d %d\n", x0, y0, x1, y1)
	printSearch(metric)

	if treeDir != "" {
		path, err := writeTree(a, treeDir)
		if err != nil {
			return err
		}
		log.Info().Msgf("stored search tree in %s", path)
	}
	return nil
}

// writeTree exports the last tree searched by a under root.
func writeTree(a agent.Agent, root string) (string, error) {
	inspector, ok := a.(agent.Inspector)
	if !ok {
		return "", fmt.Errorf("agent %T keeps no search tree", a)
	}
	snapshot := inspector.Snapshot()
	if snapshot == nil {
		return "", errors.New("no search tree to export")
	}
	writer, err := metrics.NewWriter(root, "tree")
	if err != nil {
		return "", fmt.Errorf("failed to create tree writer: %w", err)
	}
	if err := writer.WriteJSON("tree.json", snapshot); err != nil {
		return "", err
	}
	return filepath.Join(writer.Dir(), "tree.json"), nil
}

func printSearch(m metrics.SearchMetric) {
	if m.Passes == 0 {
		return
	}
	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "passes %d, hits %d (%.1f%%), terminal expansions %d\n",
		m.Passes, m.Hits, 100*m.HitRate(), m.TermExpansions)
	p.Fprintf(os.Stderr, "expand depth %d..%d avg %.2f, simulate depth %d..%d avg %.2f, %v\n",
		m.ExpandDepth.Min, m.ExpandDepth.Max, m.ExpandDepth.Mean(),
		m.SimulateDepth.Min, m.SimulateDepth.Max, m.SimulateDepth.Mean(), m.Duration)
}

func newPlayer(config Config, name string) (agent.Agent, error) {
	if strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://") {
		return client.NewRemote(name, config.Agent, 60*time.Second), nil
	}
	return agent.New(name, config.Search)
}

func runMatch(config Config, blackName, whiteName string) error {
	black, err := newPlayer(config, blackName)
	if err != nil {
		return err
	}
	white, err := newPlayer(config, whiteName)
	if err != nil {
		return err
	}

	fmt.Print(game.StartingBoard().Draw(game.Black))
	e := engine.LocalEngine(black, white,
		engine.WithMaxTurns(config.MaxTurns),
		engine.WithObserver(drawUpdate),
	)
	result, gameMetric, _ := e.Run()

	p := message.NewPrinter(language.English)
	p.Printf("%s after %d moves (%s), %v\n", describe(result), gameMetric.TotalMoves, result.Reason, gameMetric.Duration)
	return nil
}

func drawUpdate(u gamemaster.Update) {
	if u.Move == game.NoMove {
		return
	}
	b, err := game.FromSparse(u.Sparse, u.Turn)
	if err != nil {
		log.Error().Err(err).Msg("failed to rebuild board")
		return
	}
	fmt.Printf("%d. %s %v\n", u.Step, game.SideName(u.Side), u.Move)
	if u.Passed {
		fmt.Printf("%s has no move and passes\n", game.SideName(1-u.Side))
	}
	fmt.Print(b.Draw(u.Turn))
}

func describe(r gamemaster.Result) string {
	switch name := r.WinnerName(); name {
	case "draw", "both":
		return "draw"
	default:
		return name + " wins"
	}
}

func runExperiment(config Config) error {
	x := experiments.BaselineExperiment(config.Search.Passes)
	x.OutDir = config.OutDir
	x.Games = config.Games
	x.Parallel = config.Parallel
	x.MaxTurns = config.MaxTurns

	summary, err := experiments.Run(context.Background(), x)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	for _, c := range x.Configs {
		p.Printf("%-6s won %d of %d games\n", c.Agent, summary.Wins[c.ID], summary.Games)
	}
	p.Printf("%d draws, records in %s\n", summary.Draws, summary.Dir)
	return nil
}
