package game

import (
	"sort"

	"github.com/samber/lo"
)

const (
	MinThreshold = 21
	MaxThreshold = 36
)

// Tile is a claimable reward: reachable at Threshold, worth Points.
// Non-overshoot tiles are claimable only on an exact score match; the
// default set contains none but the rules engine supports them.
type Tile struct {
	Threshold      int
	Points         int
	AllowOvershoot bool
}

// Claimable reports whether a turn score satisfies this tile's threshold.
func (t Tile) Claimable(score int) bool {
	if t.AllowOvershoot {
		return score >= t.Threshold
	}
	return score == t.Threshold
}

// Pool is a read-only snapshot of the open tile row. The engine never
// mutates a pool; ownership transfer lives in the gamemaster.
type Pool []Tile

// DefaultPool returns the standard sixteen tiles: thresholds 21-36, points
// banded 1 (21-24) up to 4 (33-36), all overshoot-allowed.
func DefaultPool() Pool {
	pool := make(Pool, 0, MaxThreshold-MinThreshold+1)
	for threshold := MinThreshold; threshold <= MaxThreshold; threshold++ {
		pool = append(pool, Tile{
			Threshold:      threshold,
			Points:         1 + (threshold-MinThreshold)/4,
			AllowOvershoot: true,
		})
	}
	return pool
}

// Eligible returns the tiles claimable at the given score, ordered
// descending by threshold, ties broken by descending points.
func (p Pool) Eligible(score int) []Tile {
	tiles := lo.Filter(p, func(t Tile, _ int) bool {
		return t.Claimable(score)
	})
	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Threshold != tiles[j].Threshold {
			return tiles[i].Threshold > tiles[j].Threshold
		}
		return tiles[i].Points > tiles[j].Points
	})
	return tiles
}

// Best returns the most valuable tile claimable at the given score.
func (p Pool) Best(score int) (Tile, bool) {
	tiles := p.Eligible(score)
	if len(tiles) == 0 {
		return Tile{}, false
	}
	return tiles[0], true
}

// CanSucceed reports whether the turn can end in a claim right now: some
// tile's threshold is satisfied and the worm face has been banked.
func (p Pool) CanSucceed(score int, used FaceSet) bool {
	return used.Contains(Worm) && len(p.Eligible(score)) > 0
}

func (p Pool) Copy() Pool {
	cp := make(Pool, len(p))
	copy(cp, p)
	return cp
}
