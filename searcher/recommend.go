package searcher

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"pickomino/game"
)

// tieTolerance bounds the value gap within which faces count as tied for
// best in a dual recommendation.
const tieTolerance = 1e-3

// FaceOption is the evaluation of banking one legal face from the roll.
type FaceOption struct {
	Face     game.Face
	Count    int     // Dice in the roll showing this face
	Score    int     // Accumulated score after banking
	DiceLeft int     // Dice left to roll after banking
	Value    float64 // Solver value of the resulting state
}

// Recommendation holds per-face statistics for one objective. Options are
// in ascending face order; Best is 0 when the roll offers no legal face
// (a forced bust, not an error).
type Recommendation struct {
	Mode    Mode
	Options []FaceOption
	Best    game.Face
}

// BestOption returns the option for the best face.
func (r Recommendation) BestOption() (FaceOption, bool) {
	for _, option := range r.Options {
		if option.Face == r.Best {
			return option, true
		}
	}
	return FaceOption{}, false
}

// DualRecommendation evaluates both objectives from the same state, plus
// the faces tied for best under each and under either.
type DualRecommendation struct {
	Probability     Recommendation
	Expected        Recommendation
	BestProbability []game.Face
	BestExpected    []game.Face
	BestEither      []game.Face
}

// Recommend evaluates every legal face of the observed roll under one mode.
// Inputs are validated eagerly; the recursive internals assume valid state.
func Recommend(pool game.Pool, roll game.Roll, used game.UsedRecord, mode Mode) (Recommendation, error) {
	if err := validate(roll, used); err != nil {
		return Recommendation{}, err
	}
	solver := NewSolver(pool)
	return recommend(solver, roll, used, mode), nil
}

// RecommendBoth runs both modes off one solver (one pool snapshot, shared
// cache: the mode is part of the cache key).
func RecommendBoth(pool game.Pool, roll game.Roll, used game.UsedRecord) (DualRecommendation, error) {
	if err := validate(roll, used); err != nil {
		return DualRecommendation{}, err
	}
	solver := NewSolver(pool)

	dual := DualRecommendation{
		Probability: recommend(solver, roll, used, MaxProbability),
		Expected:    recommend(solver, roll, used, MaxExpectedPoints),
	}
	dual.BestProbability = tiedFaces(dual.Probability)
	dual.BestExpected = tiedFaces(dual.Expected)
	dual.BestEither = unionFaces(dual.BestProbability, dual.BestExpected)
	return dual, nil
}

func validate(roll game.Roll, used game.UsedRecord) error {
	if err := used.Validate(); err != nil {
		return err
	}
	if roll[0] != 0 {
		return fmt.Errorf("%w: rolled face 0", game.ErrInvalidFace)
	}
	if roll.NumDice() == 0 {
		return fmt.Errorf("%w: empty roll", game.ErrInvalidDiceCount)
	}
	if total := roll.NumDice() + used.NumDice(); total > game.MaxDice {
		return fmt.Errorf("%w: %d dice referenced, max %d", game.ErrInvalidDiceCount, total, game.MaxDice)
	}
	return nil
}

func recommend(solver *Solver, roll game.Roll, used game.UsedRecord, mode Mode) Recommendation {
	score := used.Score()
	usedSet := used.Set()

	rec := Recommendation{Mode: mode}
	bestValue := 0.0
	for f := game.Face(1); f <= game.NumFaces; f++ {
		count := roll.Count(f)
		if count == 0 || usedSet.Contains(f) {
			continue
		}
		option := FaceOption{
			Face:     f,
			Count:    count,
			Score:    score + count*f.Score(),
			DiceLeft: roll.NumDice() - count,
		}
		option.Value = solver.Value(option.DiceLeft, option.Score, usedSet.Add(f), mode)
		log.Debug().Msgf("face %s: count=%d, score=%d, remaining=%d, value=%g",
			f, option.Count, option.Score, option.DiceLeft, option.Value)

		rec.Options = append(rec.Options, option)
		// Ties keep the first face in ascending order
		if rec.Best == 0 || option.Value > bestValue {
			rec.Best = f
			bestValue = option.Value
		}
	}
	return rec
}

func tiedFaces(rec Recommendation) []game.Face {
	best, ok := rec.BestOption()
	if !ok {
		return nil
	}
	var faces []game.Face
	for _, option := range rec.Options {
		if best.Value-option.Value <= tieTolerance {
			faces = append(faces, option.Face)
		}
	}
	return faces
}

func unionFaces(a, b []game.Face) []game.Face {
	var set game.FaceSet
	for _, f := range a {
		set = set.Add(f)
	}
	for _, f := range b {
		set = set.Add(f)
	}
	return set.Faces()
}
