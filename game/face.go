package game

import (
	"math/bits"
	"strconv"
)

const (
	NumFaces = 6 // Die faces 1-6
	MaxDice  = 8 // Dice per turn

	// WormScore is the score contribution of one worm die. The worm face is
	// printed as a worm but counts five, same as the 5 face.
	WormScore = 5
)

// Face is a die face value in 1-6. Face 6 is the worm: it scores five per
// die and at least one banked worm is required to claim any tile.
type Face uint8

const Worm Face = 6

func (f Face) Valid() bool {
	return f >= 1 && f <= NumFaces
}

// Score returns the score contribution of a single die showing this face.
func (f Face) Score() int {
	if f == Worm {
		return WormScore
	}
	return int(f)
}

func (f Face) String() string {
	if f == Worm {
		return "worm"
	}
	return strconv.Itoa(int(f))
}

// FaceSet is a set of faces encoded as a 6-bit mask.
type FaceSet uint8

func (s FaceSet) Contains(f Face) bool {
	return s&(1<<(f-1)) != 0
}

func (s FaceSet) Add(f Face) FaceSet {
	return s | 1<<(f-1)
}

func (s FaceSet) Size() int {
	return bits.OnesCount8(uint8(s))
}

// Faces returns the members in ascending face order.
func (s FaceSet) Faces() []Face {
	faces := make([]Face, 0, s.Size())
	for f := Face(1); f <= NumFaces; f++ {
		if s.Contains(f) {
			faces = append(faces, f)
		}
	}
	return faces
}
