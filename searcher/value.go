package searcher

import (
	"pickomino/experiments/metrics"
	"pickomino/game"
)

// Mode selects the objective the solver optimizes for.
type Mode uint8

const (
	// MaxProbability maximizes the chance of claiming any tile this turn.
	MaxProbability Mode = iota
	// MaxExpectedPoints maximizes the expected points of the claimed tile.
	MaxExpectedPoints
)

func (m Mode) String() string {
	switch m {
	case MaxProbability:
		return "probability"
	case MaxExpectedPoints:
		return "expected"
	default:
		return "unknown"
	}
}

type Option func(s *Solver)

// WithMetrics attaches a collector recording solve statistics.
func WithMetrics(collector metrics.Collector) Option {
	return func(s *Solver) {
		if collector != nil {
			s.metrics = collector
		}
	}
}

type stateKey struct {
	dice  uint8
	score uint8
	used  game.FaceSet
	mode  Mode
}

// Solver computes the exact value of optimal play from any mid-turn state,
// against one tile-pool snapshot. The memo cache is scoped to the solver:
// a pool change requires a fresh solver, never a cache reuse.
type Solver struct {
	pool    game.Pool
	cache   map[stateKey]float64
	metrics metrics.Collector
}

func NewSolver(pool game.Pool, options ...Option) *Solver {
	s := &Solver{
		pool:    pool.Copy(),
		cache:   make(map[stateKey]float64),
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Value returns the value of playing optimally with dice left to roll, the
// given accumulated score and banked faces: the success probability in [0,1]
// under MaxProbability, the expected claimed points under MaxExpectedPoints.
//
// A claimable state is terminal regardless of dice remaining (the player
// may always stop); zero dice without a claim is a bust worth 0. Otherwise
// the value is the probability-weighted best pick over every roll outcome,
// where an outcome with no legal face busts that branch.
func (s *Solver) Value(dice, score int, used game.FaceSet, mode Mode) float64 {
	if payoff, terminal := s.terminal(score, used, mode); terminal {
		return payoff
	}
	if dice == 0 {
		return 0
	}

	key := stateKey{dice: uint8(dice), score: uint8(score), used: used, mode: mode}
	if v, ok := s.cache[key]; ok {
		s.metrics.AddCacheHit()
		return v
	}

	total := 0.0
	for _, outcome := range Distribution(dice) {
		best := 0.0 // No legal face busts this branch
		for f := game.Face(1); f <= game.NumFaces; f++ {
			count := int(outcome.Counts[f])
			if count == 0 || used.Contains(f) {
				continue
			}
			v := s.Value(dice-count, score+count*f.Score(), used.Add(f), mode)
			if v > best {
				best = v
			}
		}
		total += outcome.Prob * best
	}

	s.cache[key] = total
	s.metrics.AddState()
	return total
}

// terminal returns the payoff of stopping now, if stopping is a success.
func (s *Solver) terminal(score int, used game.FaceSet, mode Mode) (float64, bool) {
	if !used.Contains(game.Worm) {
		return 0, false
	}
	best, ok := s.pool.Best(score)
	if !ok {
		return 0, false
	}
	if mode == MaxProbability {
		return 1, true
	}
	return float64(best.Points), true
}
