package main

import (
	"encoding/json"
	"fmt"
	"loa/meta"
	"loa/searcher/agent"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

type Config struct {
	LogLevel string       `json:"log_level"`
	Agent    string       `json:"agent"`
	Search   agent.Config `json:"search"`
	MaxTurns int          `json:"max_turns"`

	// serve
	Addr string `json:"addr"`

	// experiment
	OutDir   string `json:"out_dir"`
	Games    int    `json:"games"`
	Parallel int    `json:"parallel"`
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Agent:    "plain",
		Search:   agent.DefaultConfig(),
		MaxTurns: meta.MAX_TURNS,
		Addr:     ":8080",
		OutDir:   "experiments",
		Games:    10,
		Parallel: meta.GO_ROUTINES,
	}
}

// LoadConfig reads a JSON config on top of the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config: %w", err)
	}
	if err := json.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

func (c Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

// parseBoard reads 64 cells separated by spaces or commas.
func parseBoard(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\t' || r == '[' || r == ']'
	})
	cells := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("failed to parse cell %q: %w", f, err)
		}
		cells = append(cells, v)
	}
	return cells, nil
}
