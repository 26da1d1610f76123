package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID          int
	Agent       string // Registered agent name
	Passes      int
	MaxSteps    int
	Exploration float64
	Source      string
	Seed        int64
}

type GameRecord struct {
	ID     int
	Black  int // AgentConfig.ID
	White  int // AgentConfig.ID
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates root/name/<timestamp> to hold the records of one run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "agent", "passes", "max_steps", "exploration", "source", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Agent,
			strconv.Itoa(config.Passes),
			strconv.Itoa(config.MaxSteps),
			strconv.FormatFloat(config.Exploration, 'f', -1, 64),
			config.Source,
			strconv.FormatInt(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", "agent configs", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "starting_player", "winner", "reason", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			record.Reason,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.writeCSV("game_records.csv", "game records", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "duration", "passes", "hits", "term_expansions",
		"expand_depth_avg", "simulate_depth_avg"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Move,
			record.Duration.String(),
			strconv.Itoa(record.Passes),
			strconv.Itoa(record.Hits),
			strconv.Itoa(record.TermExpansions),
			strconv.FormatFloat(record.ExpandDepth.Mean(), 'f', 2, 64),
			strconv.FormatFloat(record.SimulateDepth.Mean(), 'f', 2, 64),
		})
	}
	return w.writeCSV("move_records.csv", "move records", header, rows)
}

// WriteJSON stores v, indented, under name.
func (w *Writer) WriteJSON(name string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	err = os.WriteFile(filepath.Join(w.baseDir, name), b, 0644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (w *Writer) writeCSV(file, what string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, file))
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", what, err)
	}
	return nil
}
