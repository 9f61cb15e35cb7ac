package game

import (
	"fmt"
	"strings"
)

// Roll is a multiset of visible dice, stored as per-face counts (index 0
// unused). Distinct from the hypothetical outcomes the searcher enumerates
// for future rolls.
type Roll [NumFaces + 1]uint8

// NewRoll builds a roll from individual die faces, validating each.
func NewRoll(dice ...Face) (Roll, error) {
	var r Roll
	if len(dice) > MaxDice {
		return r, fmt.Errorf("%w: roll has %d dice, max %d", ErrInvalidDiceCount, len(dice), MaxDice)
	}
	for _, f := range dice {
		if !f.Valid() {
			return r, fmt.Errorf("%w: rolled %d", ErrInvalidFace, f)
		}
		r[f]++
	}
	return r, nil
}

// Count returns how many dice in the roll show the given face.
func (r Roll) Count(f Face) int {
	return int(r[f])
}

// NumDice returns the total number of dice in the roll.
func (r Roll) NumDice() int {
	n := 0
	for f := Face(1); f <= NumFaces; f++ {
		n += int(r[f])
	}
	return n
}

// Faces returns the distinct faces present, ascending.
func (r Roll) Faces() []Face {
	var faces []Face
	for f := Face(1); f <= NumFaces; f++ {
		if r[f] > 0 {
			faces = append(faces, f)
		}
	}
	return faces
}

func (r Roll) String() string {
	var sb strings.Builder
	for f := Face(1); f <= NumFaces; f++ {
		for i := 0; i < int(r[f]); i++ {
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(f.String())
		}
	}
	return sb.String()
}
