package agent

import (
	"pickomino/game"
)

type greedyAdvisor struct{}

// NewGreedyAdvisor returns a baseline advisor that banks the worm as soon
// as it can, otherwise the face with the largest immediate score. Used in
// experiments as the opponent-free benchmark for the exact solver.
func NewGreedyAdvisor() Advisor {
	return greedyAdvisor{}
}

func (greedyAdvisor) Name() string {
	return "greedy"
}

func (greedyAdvisor) PickFace(pool game.Pool, roll game.Roll, state game.TurnState) (game.Face, bool) {
	usedSet := state.Used.Set()

	if !usedSet.Contains(game.Worm) && roll.Count(game.Worm) > 0 {
		return game.Worm, true
	}

	var best game.Face
	bestScore := 0
	for f := game.Face(1); f <= game.NumFaces; f++ {
		count := roll.Count(f)
		if count == 0 || usedSet.Contains(f) {
			continue
		}
		if score := count * f.Score(); score > bestScore {
			best = f
			bestScore = score
		}
	}
	return best, best != 0
}
