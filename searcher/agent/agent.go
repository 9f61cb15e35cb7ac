package agent

import (
	"pickomino/game"
)

// Advisor picks which face to bank from a roll, or reports that no legal
// pick exists (a bust).
type Advisor interface {
	Name() string
	PickFace(pool game.Pool, roll game.Roll, state game.TurnState) (game.Face, bool)
}
