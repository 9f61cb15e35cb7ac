package game

import "errors"

var (
	// ErrInvalidFace rejects a roll or used-record entry outside 1-6.
	ErrInvalidFace = errors.New("face value out of range 1-6")
	// ErrInvalidDiceCount rejects inputs referencing more than eight dice
	// in total, or a negative count.
	ErrInvalidDiceCount = errors.New("invalid dice count")
)
