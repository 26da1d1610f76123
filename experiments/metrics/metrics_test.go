package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start(3, 256)
	c.AddPass(true, false, 2, 10)
	c.AddPass(false, true, 4, 256)
	c.AddPass(true, true, 3, 0)

	m := c.Complete()

	require.Equal(t, 3, m.Passes, "Should count every pass")
	require.Equal(t, 2, m.Hits, "Should count conclusive passes")
	require.Equal(t, 2, m.TermExpansions, "Should count terminal expansions")
	require.Equal(t, 256, m.MaxSteps)
	require.Equal(t, 2, m.ExpandDepth.Min)
	require.Equal(t, 4, m.ExpandDepth.Max)
	require.Equal(t, 3.0, m.ExpandDepth.Mean())
	require.Equal(t, 0, m.SimulateDepth.Min)
	require.Equal(t, 256, m.SimulateDepth.Max)
	require.InDelta(t, 2.0/3.0, m.HitRate(), 1e-9)

	c.Start(1, 8)
	require.Zero(t, c.Complete().Passes, "Start should reset the counters")
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	c.Start(1, 1)
	c.AddPass(true, true, 1, 1)
	require.Equal(t, SearchMetric{}, c.Complete(), "Dummy collector should record nothing")
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "unit")
	require.NoError(t, err)

	err = w.WriteAgentConfigs([]AgentConfig{{ID: 0, Agent: "plain", Passes: 100, MaxSteps: 256, Source: "table", Seed: 3}})
	require.NoError(t, err)
	err = w.WriteGameRecords([]GameRecord{{ID: 0, Black: 0, White: 1, GameMetric: GameMetric{Winner: "black", TotalMoves: 9}}})
	require.NoError(t, err)
	err = w.WriteMoveRecords([]MoveRecord{{Game: 0, MoveMetric: MoveMetric{Step: 1, Move: "(1, 0) -> (1, 2)"}}})
	require.NoError(t, err)
	err = w.WriteJSON("tree.json", map[string]int{"passes": 1})
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(w.Dir(), "agent_configs.csv"))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2, "Should write a header and one row")
	require.Equal(t, []string{"0", "plain", "100", "256", "0", "table", "3"}, rows[1])

	require.FileExists(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.FileExists(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.FileExists(t, filepath.Join(w.Dir(), "tree.json"))
}
