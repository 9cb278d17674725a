package metrics

import (
	"time"
)

type SearchMetric struct {
	Strategy string
	Depth    int
	Duration time.Duration
	Nodes    int
	Cutoffs  int
	Score    int
}

type MoveMetric struct {
	Step   int
	Seat   int
	Move   string // empty on a pass
	Passed bool
	SearchMetric
}

type GameMetric struct {
	StartingSeat int
	Winner       string // "x", "o" or "" for a draw
	Ended        bool   // false when the turn cap stopped the game
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Passes       int
}

// Collector records one search at a time. It is not safe for concurrent use,
// each agent owns its own.
type Collector interface {
	Start(strategy string, depth int)
	AddNode()
	AddCutoff()
	Complete(score int) SearchMetric
}

type collector struct {
	strategy  string
	depth     int
	startTime time.Time
	nodes     int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string, depth int) {
	m.startTime = time.Now()
	m.strategy = strategy
	m.depth = depth
	m.nodes = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Cutoffs:  m.cutoffs,
		Score:    score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string, depth int) {}
func (m *dummyCollector) AddNode()                         {}
func (m *dummyCollector) AddCutoff()                       {}
func (m *dummyCollector) Complete(score int) SearchMetric  { return SearchMetric{} }
