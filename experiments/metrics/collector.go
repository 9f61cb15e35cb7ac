package metrics

import (
	"sync/atomic"
	"time"
)

// SolveMetric captures the work done by one top-level solve: distinct states
// evaluated, memoization hits, and wall time.
type SolveMetric struct {
	States    int
	CacheHits int
	StartTime time.Time
	Duration  time.Duration
}

// TurnRecord is one simulated turn within an experiment.
type TurnRecord struct {
	Game    int
	Turn    int
	Advisor string // AdvisorConfig.Name
	Score   int
	Points  int // Points of the claimed tile, 0 on a bust
	Busted  bool
}

// AdvisorConfig identifies an advisor variant under comparison.
type AdvisorConfig struct {
	ID   int
	Name string
	Mode string
}

// Collector accumulates solve metrics. Implementations must be safe for
// concurrent use by a solver.
type Collector interface {
	Start()
	AddState()
	AddCacheHit()
	Complete() SolveMetric
}

type collector struct {
	startTime time.Time
	states    atomic.Int64
	cacheHits atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start() {
	c.startTime = time.Now()
	c.states.Store(0)
	c.cacheHits.Store(0)
}

func (c *collector) AddState() {
	c.states.Add(1)
}

func (c *collector) AddCacheHit() {
	c.cacheHits.Add(1)
}

func (c *collector) Complete() SolveMetric {
	return SolveMetric{
		States:    int(c.states.Load()),
		CacheHits: int(c.cacheHits.Load()),
		StartTime: c.startTime,
		Duration:  time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a no-op collector for when metrics are not
// being gathered.
func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) Start()                {}
func (dummyCollector) AddState()             {}
func (dummyCollector) AddCacheHit()          {}
func (dummyCollector) Complete() SolveMetric { return SolveMetric{} }
