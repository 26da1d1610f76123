package metrics

import (
	"loa/utils"
	"time"
)

type SearchMetric struct {
	Passes         int
	MaxSteps       int
	Duration       time.Duration
	Hits           int // passes whose simulation reached a result
	TermExpansions int
	ExpandDepth    utils.Span[int]
	SimulateDepth  utils.Span[int]
}

func (s SearchMetric) HitRate() float64 {
	if s.Passes == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Passes)
}

type MoveMetric struct {
	Step   int
	Player int // Side ID
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int    // Side ID
	Winner         string // Side name, "both" or "draw"
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(passes, maxSteps int)
	AddPass(hit, termExpansion bool, expandDepth, simulateDepth int)
	Complete() SearchMetric
}

type collector struct {
	startTime time.Time
	metric    SearchMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(passes, maxSteps int) {
	m.startTime = time.Now()
	m.metric = SearchMetric{MaxSteps: maxSteps}
}

func (m *collector) AddPass(hit, termExpansion bool, expandDepth, simulateDepth int) {
	m.metric.Passes++
	if hit {
		m.metric.Hits++
	}
	if termExpansion {
		m.metric.TermExpansions++
	}
	m.metric.ExpandDepth.Add(expandDepth)
	m.metric.SimulateDepth.Add(simulateDepth)
}

func (m *collector) Complete() SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(passes, maxSteps int)                                      {}
func (m *dummyCollector) AddPass(hit, termExpansion bool, expandDepth, simulateDepth int) {}
func (m *dummyCollector) Complete() SearchMetric                                          { return SearchMetric{} }
