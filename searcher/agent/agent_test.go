package agent

import (
	"loa/game"
	"loa/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Passes = 200
	c.Source = searcher.SourceTable
	c.Seed = 11
	return c
}

func TestRegistry(t *testing.T) {
	t.Run("lists built-in agents", func(t *testing.T) {
		require.Subset(t, List(), []string{"idiot", "plain", "training"})
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := New("genius", testConfig())
		require.ErrorIs(t, err, ErrUnknownAgent)
	})

	t.Run("first registration wins", func(t *testing.T) {
		Register("idiot", func(Config) (Agent, error) { return nil, nil })

		a, err := New("idiot", testConfig())
		require.NoError(t, err)
		require.IsType(t, &randomAgent{}, a, "Duplicate registration should be ignored")
	})

	t.Run("bad source", func(t *testing.T) {
		c := testConfig()
		c.Source = "dice"
		_, err := New("plain", c)
		require.Error(t, err)
	})
}

func TestAgents(t *testing.T) {
	for _, name := range []string{"plain", "training", "idiot"} {
		t.Run(name+" plays a legal move", func(t *testing.T) {
			a, err := New(name, testConfig())
			require.NoError(t, err)

			move, _, err := a.FindMove(game.StartingBoard())

			require.NoError(t, err)
			require.True(t, game.IsLegal(game.StartingBoard(), move), "Move %v should be legal", move)
		})
	}

	t.Run("plain agent is reproducible with a table source", func(t *testing.T) {
		a, _ := New("plain", testConfig())
		b, _ := New("plain", testConfig())

		moveA, metric, _ := a.FindMove(game.StartingBoard())
		moveB, _, _ := b.FindMove(game.StartingBoard())

		require.Equal(t, moveA, moveB)
		require.Equal(t, 200, metric.Passes)
	})

	t.Run("random agent with no moves", func(t *testing.T) {
		_, _, err := NewRandomAgent(1).FindMove(game.Board{})
		require.ErrorIs(t, err, searcher.ErrNoMove)
	})

	t.Run("training agent reports search failure", func(t *testing.T) {
		mcts := searcher.NewMCTS(searcher.WithPasses(5))
		a := NewTrainingAgent(mcts, 1, 3)

		_, _, err := a.FindMove(game.Board{})
		require.ErrorIs(t, err, searcher.ErrNoMove)
	})
}

func TestInspector(t *testing.T) {
	for _, name := range []string{"plain", "training"} {
		a, err := New(name, testConfig())
		require.NoError(t, err)
		inspector, ok := a.(Inspector)
		require.True(t, ok, "%s should expose its tree", name)
		require.Nil(t, inspector.Snapshot(), "Nothing to export before a search")

		_, _, err = a.FindMove(game.StartingBoard())
		require.NoError(t, err)
		require.NotNil(t, inspector.Snapshot())
	}

	_, ok := NewRandomAgent(1).(Inspector)
	require.False(t, ok, "Random agent keeps no tree")
}

func TestTemperature(t *testing.T) {
	policy := map[game.Move]float64{
		game.NewMove(1, 17): 30,
		game.NewMove(2, 18): 10,
	}

	t.Run("unit temperature keeps visit ratios", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 1)

		require.Equal(t, game.NewMove(1, 17), adjusted[0].move, "Moves should be ordered")
		require.InDelta(t, 0.75, adjusted[0].prob, 1e-9)
		require.InDelta(t, 0.25, adjusted[1].prob, 1e-9)
	})

	t.Run("low temperature sharpens", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 0.5)
		require.InDelta(t, 0.9, adjusted[0].prob, 1e-9)
	})

	t.Run("sampling walks the cumulative distribution", func(t *testing.T) {
		adjusted := adjustTemperature(policy, 1)

		require.Equal(t, game.NewMove(1, 17), sample(adjusted, 0.5))
		require.Equal(t, game.NewMove(2, 18), sample(adjusted, 0.8))
		require.Equal(t, game.NewMove(2, 18), sample(adjusted, 1.0), "Rounding should fall back to the last move")
		require.Equal(t, game.NoMove, sample(nil, 0.3))
	})
}
