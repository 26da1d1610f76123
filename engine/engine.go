package engine

import (
	"loa/experiments/metrics"
	"loa/gamemaster"
)

type Engine interface {
	// Run plays a game till a side wins, the game stalls or the turn limit is reached
	Run() (result gamemaster.Result, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
