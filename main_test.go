package main

import (
	"encoding/json"
	"loa/game"
	"loa/searcher"
	"loa/searcher/agent"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without a file", func(t *testing.T) {
		config, err := LoadConfig("")

		require.NoError(t, err)
		require.Equal(t, DefaultConfig(), config)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loa.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"agent":"idiot","search":{"passes":64},"log_level":"debug"}`), 0o644))

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Equal(t, "idiot", config.Agent)
		require.Equal(t, 64, config.Search.Passes)
		require.Equal(t, DefaultConfig().Search.MaxSteps, config.Search.MaxSteps, "Missing fields should keep their default")
		require.Equal(t, zerolog.DebugLevel, config.Level())
	})

	t.Run("broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "loa.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"agent":`), 0o644))

		_, err := LoadConfig(path)
		require.Error(t, err)
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		config := DefaultConfig()
		config.LogLevel = "loud"
		require.Equal(t, zerolog.InfoLevel, config.Level())
	})
}

func TestWriteTree(t *testing.T) {
	config := DefaultConfig()
	config.Search.Passes = 30
	config.Search.Source = searcher.SourceTable
	config.Search.Seed = 2

	t.Run("stores the searched tree", func(t *testing.T) {
		a, err := agent.New("plain", config.Search)
		require.NoError(t, err)
		_, _, err = a.FindMove(game.StartingBoard())
		require.NoError(t, err)

		path, err := writeTree(a, t.TempDir())
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var snapshot searcher.Snapshot
		require.NoError(t, json.Unmarshal(data, &snapshot))
		require.Equal(t, "empty", snapshot.Move)
		require.Len(t, snapshot.Children, 30, "Each pass should expand one root child")
	})

	t.Run("nothing searched yet", func(t *testing.T) {
		a, err := agent.New("plain", config.Search)
		require.NoError(t, err)

		_, err = writeTree(a, t.TempDir())
		require.Error(t, err)
	})

	t.Run("agent without a tree", func(t *testing.T) {
		a, err := agent.New("idiot", config.Search)
		require.NoError(t, err)

		_, err = writeTree(a, t.TempDir())
		require.Error(t, err)
	})
}

func TestParseBoard(t *testing.T) {
	cells, err := parseBoard("[-1, 0,1]\n-1")
	require.NoError(t, err)
	require.Equal(t, []int{-1, 0, 1, -1}, cells)

	_, err = parseBoard("0 x 1")
	require.Error(t, err)
}
