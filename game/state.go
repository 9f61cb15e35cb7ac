package game

import "fmt"

// UsedRecord maps each face to the number of dice banked on it this turn.
// A face may be banked at most once, so a nonzero count also marks the face
// as no longer pickable.
type UsedRecord [NumFaces + 1]uint8

// NewUsedRecord builds a record from (face, count) pairs via Bank.
func NewUsedRecord() UsedRecord {
	return UsedRecord{}
}

// Set returns the banked faces as a bitmask.
func (u UsedRecord) Set() FaceSet {
	var s FaceSet
	for f := Face(1); f <= NumFaces; f++ {
		if u[f] > 0 {
			s = s.Add(f)
		}
	}
	return s
}

// Score returns the accumulated score of all banked dice.
func (u UsedRecord) Score() int {
	score := 0
	for f := Face(1); f <= NumFaces; f++ {
		score += int(u[f]) * f.Score()
	}
	return score
}

// NumDice returns the total number of dice consumed by banked faces.
func (u UsedRecord) NumDice() int {
	n := 0
	for f := Face(1); f <= NumFaces; f++ {
		n += int(u[f])
	}
	return n
}

// Validate checks face values and the eight-dice budget.
func (u UsedRecord) Validate() error {
	if u[0] != 0 {
		return fmt.Errorf("%w: banked dice on face 0", ErrInvalidFace)
	}
	if u.NumDice() > MaxDice {
		return fmt.Errorf("%w: %d dice banked, max %d", ErrInvalidDiceCount, u.NumDice(), MaxDice)
	}
	return nil
}

// TurnState is the mid-turn position: banked dice and dice still in hand.
// Values are copied on Bank; a TurnState is never mutated in place.
type TurnState struct {
	Used     UsedRecord
	DiceLeft int
}

// NewTurnState starts a turn with all dice in hand and nothing banked.
func NewTurnState() TurnState {
	return TurnState{DiceLeft: MaxDice}
}

// Score returns the accumulated score of the banked faces.
func (ts TurnState) Score() int {
	return ts.Used.Score()
}

// Bank sets aside count dice showing face f and returns the new state.
func (ts TurnState) Bank(f Face, count int) (TurnState, error) {
	if !f.Valid() {
		return ts, fmt.Errorf("%w: banked %d", ErrInvalidFace, f)
	}
	if count <= 0 || count > ts.DiceLeft {
		return ts, fmt.Errorf("%w: banking %d of %d remaining", ErrInvalidDiceCount, count, ts.DiceLeft)
	}
	if ts.Used[f] > 0 {
		return ts, fmt.Errorf("face %s already banked this turn", f)
	}
	next := ts
	next.Used[f] = uint8(count)
	next.DiceLeft -= count
	return next, nil
}
