package gamemaster

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"

	"pickomino/game"
)

// Session owns the mutable tile state across turns: the open pool and the
// player's claimed stack. The decision engine never touches a Session; it
// only sees pool snapshots.
type Session struct {
	mu    sync.Mutex
	pool  game.Pool
	stack []game.Tile // Claimed tiles, last element on top
}

func NewSession() *Session {
	return &Session{pool: game.DefaultPool()}
}

// Pool returns a snapshot of the open tiles.
func (s *Session) Pool() game.Pool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pool.Copy()
}

// Stack returns a copy of the claimed tiles, bottom first.
func (s *Session) Stack() []game.Tile {
	s.mu.Lock()
	defer s.mu.Unlock()

	stack := make([]game.Tile, len(s.stack))
	copy(stack, s.stack)
	return stack
}

// Points returns the total points of the claimed tiles.
func (s *Session) Points() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.SumBy(s.stack, func(t game.Tile) int { return t.Points })
}

// Claim takes the best eligible tile out of the pool onto the stack.
func (s *Session) Claim(score int, used game.FaceSet) (game.Tile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.pool.CanSucceed(score, used) {
		return game.Tile{}, fmt.Errorf("no claimable tile at score %d", score)
	}
	tile, _ := s.pool.Best(score)
	s.remove(tile)
	s.stack = append(s.stack, tile)
	return tile, nil
}

// Bust resolves a failed turn: the top of the stack goes back into the
// pool, and the highest open tile is flipped out of the game unless it is
// the tile just returned.
func (s *Session) Bust() (returned, flipped *game.Tile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.stack) > 0 {
		tile := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.insert(tile)
		returned = &tile
	}

	if highest, ok := s.highest(); ok {
		if returned == nil || highest.Threshold != returned.Threshold {
			s.remove(highest)
			flipped = &highest
		}
	}
	return returned, flipped
}

func (s *Session) highest() (game.Tile, bool) {
	if len(s.pool) == 0 {
		return game.Tile{}, false
	}
	return lo.MaxBy(s.pool, func(a, b game.Tile) bool {
		return a.Threshold > b.Threshold
	}), true
}

func (s *Session) insert(tile game.Tile) {
	s.pool = append(s.pool, tile)
	sort.Slice(s.pool, func(i, j int) bool {
		return s.pool[i].Threshold < s.pool[j].Threshold
	})
}

func (s *Session) remove(tile game.Tile) {
	for i, t := range s.pool {
		if t == tile {
			s.pool = append(s.pool[:i], s.pool[i+1:]...)
			return
		}
	}
}
