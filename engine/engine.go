package engine

import "pickomino/game"

// TurnResult is the outcome of one simulated turn.
type TurnResult struct {
	Used    game.UsedRecord
	Score   int
	Claimed *game.Tile // Tile secured, nil on a bust
	Busted  bool
	Rolls   int
}

// Engine plays one full turn against a tile-pool snapshot.
type Engine interface {
	PlayTurn(pool game.Pool) (TurnResult, error)
}
