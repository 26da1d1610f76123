package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"loa/communication"
	"loa/experiments/metrics"
	"loa/game"
	"net/http"
	"strings"
	"time"
)

// Remote is an agent answered by an agent server.
type Remote struct {
	serverURL string
	agent     string
	client    *http.Client
}

// NewRemote returns an agent that asks the server at serverURL for moves. An
// empty agent name uses the server's default.
func NewRemote(serverURL, agent string, timeout time.Duration) *Remote {
	return &Remote{
		serverURL: strings.TrimRight(serverURL, "/"),
		agent:     agent,
		client:    &http.Client{Timeout: timeout},
	}
}

func (r *Remote) FindMove(board game.Board) (game.Move, metrics.SearchMetric, error) {
	// The board is already oriented for the side to move.
	data, err := json.Marshal(communication.FindMoveRequest{
		Turn:  game.Black,
		Board: board.Sparse(game.Black),
		Agent: r.agent,
	})
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := r.client.Post(r.serverURL+"/findmove", "application/json", bytes.NewReader(data))
	if err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var failure communication.ErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&failure)
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("agent server answered %d: %s", resp.StatusCode, failure.Error)
	}

	var answer communication.FindMoveResponse
	if err := json.NewDecoder(resp.Body).Decode(&answer); err != nil {
		return game.NoMove, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}
	metric := metrics.SearchMetric{
		Passes:         answer.Passes,
		Hits:           answer.Hits,
		TermExpansions: answer.TermExpansions,
		Duration:       time.Duration(answer.DurationMS) * time.Millisecond,
	}
	return answer.Move(), metric, nil
}
