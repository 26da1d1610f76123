// Package communication holds the wire format shared by the agent server and
// its remote clients.
package communication

import (
	"loa/experiments/metrics"
	"loa/game"
)

type FindMoveRequest struct {
	Turn  int    `json:"turn"`
	Board []int  `json:"board"`
	Agent string `json:"agent,omitempty"`
}

type FindMoveResponse struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`

	Passes         int     `json:"passes"`
	Hits           int     `json:"hits"`
	TermExpansions int     `json:"term_expansions"`
	ExpandDepth    float64 `json:"expand_depth_avg"`
	SimulateDepth  float64 `json:"simulate_depth_avg"`
	DurationMS     int64   `json:"duration_ms"`
}

func NewFindMoveResponse(move game.Move, metric metrics.SearchMetric) FindMoveResponse {
	x0, y0, x1, y1 := move.Coords()
	return FindMoveResponse{
		X0: x0, Y0: y0, X1: x1, Y1: y1,
		Passes:         metric.Passes,
		Hits:           metric.Hits,
		TermExpansions: metric.TermExpansions,
		ExpandDepth:    metric.ExpandDepth.Mean(),
		SimulateDepth:  metric.SimulateDepth.Mean(),
		DurationMS:     metric.Duration.Milliseconds(),
	}
}

func (r FindMoveResponse) Move() game.Move {
	return game.NewMove(game.Index(r.X0, r.Y0), game.Index(r.X1, r.Y1))
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	MessageUpdate = "update"
	MessageResult = "result"
	MessageError  = "error"
)

// MatchMessage is streamed to websocket clients watching a match.
type MatchMessage struct {
	Type   string `json:"type"`
	Step   int    `json:"step,omitempty"`
	Side   int    `json:"side"`
	Move   string `json:"move,omitempty"`
	Passed bool   `json:"passed,omitempty"`
	Turn   int    `json:"turn"`
	Board  []int  `json:"board,omitempty"`
	Winner string `json:"winner,omitempty"`
	Reason string `json:"reason,omitempty"`
	Error  string `json:"error,omitempty"`
}
