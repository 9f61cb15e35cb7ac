package searcher

import (
	"gonum.org/v1/gonum/stat/combin"

	"pickomino/game"
)

// Outcome is one way n dice can land: per-face counts (index 0 unused) and
// the exact multinomial probability of that combination.
type Outcome struct {
	Counts [game.NumFaces + 1]uint8
	Prob   float64
}

// distributions[n] holds every composition of n dice into six faces, exactly
// once, in ascending lexicographic count order. C(n+5,5) outcomes per n,
// at most 1287 for n=8. Built once; treated as a constant table.
var distributions = func() [game.MaxDice + 1][]Outcome {
	var table [game.MaxDice + 1][]Outcome
	for n := 0; n <= game.MaxDice; n++ {
		table[n] = enumerate(n)
	}
	return table
}()

// Distribution returns the full outcome distribution for rolling n dice.
// Callers must not mutate the returned slice.
func Distribution(n int) []Outcome {
	if n < 0 || n > game.MaxDice {
		return nil
	}
	return distributions[n]
}

func enumerate(n int) []Outcome {
	sides := float64(1)
	for i := 0; i < n; i++ {
		sides *= game.NumFaces
	}

	var outcomes []Outcome
	var counts [game.NumFaces + 1]uint8
	// Fix the counts of faces 1-5; face 6 takes the remainder.
	var fill func(face game.Face, left int)
	fill = func(face game.Face, left int) {
		if face == game.NumFaces {
			counts[face] = uint8(left)
			outcomes = append(outcomes, Outcome{
				Counts: counts,
				Prob:   multinomial(n, counts) / sides,
			})
			return
		}
		for c := 0; c <= left; c++ {
			counts[face] = uint8(c)
			fill(face+1, left-c)
		}
	}
	fill(1, n)
	return outcomes
}

// multinomial returns n! / (c1!·c2!·…·c6!), the number of ordered rolls
// realizing the given face counts.
func multinomial(n int, counts [game.NumFaces + 1]uint8) float64 {
	coefficient := 1
	remaining := n
	for f := 1; f <= game.NumFaces; f++ {
		c := int(counts[f])
		if c == 0 {
			continue
		}
		coefficient *= combin.Binomial(remaining, c)
		remaining -= c
	}
	return float64(coefficient)
}
