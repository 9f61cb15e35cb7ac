package searcher

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"
	"pgregory.net/rapid"

	"pickomino/game"
)

func TestDistribution(t *testing.T) {
	t.Run("zero dice has one empty outcome", func(t *testing.T) {
		outcomes := Distribution(0)

		require.Len(t, outcomes, 1)
		require.Equal(t, 1.0, outcomes[0].Prob)
		for f := game.Face(1); f <= game.NumFaces; f++ {
			require.Zero(t, outcomes[0].Counts[f])
		}
	})

	t.Run("one die is uniform", func(t *testing.T) {
		outcomes := Distribution(1)

		require.Len(t, outcomes, 6)
		for _, outcome := range outcomes {
			require.InDelta(t, 1.0/6.0, outcome.Prob, 1e-12)
		}
	})

	t.Run("two dice pair and mixed probabilities", func(t *testing.T) {
		for _, outcome := range Distribution(2) {
			distinct := 0
			for f := game.Face(1); f <= game.NumFaces; f++ {
				if outcome.Counts[f] > 0 {
					distinct++
				}
			}
			if distinct == 1 {
				require.InDelta(t, 1.0/36.0, outcome.Prob, 1e-12, "Pair outcome")
			} else {
				require.InDelta(t, 2.0/36.0, outcome.Prob, 1e-12, "Mixed outcome")
			}
		}
	})

	t.Run("enumerates every composition exactly once", func(t *testing.T) {
		for n := 0; n <= game.MaxDice; n++ {
			outcomes := Distribution(n)

			require.Len(t, outcomes, combin.Binomial(n+5, 5), "C(n+5,5) compositions for n=%d", n)

			seen := make(map[[game.NumFaces + 1]uint8]bool)
			for _, outcome := range outcomes {
				total := 0
				for f := game.Face(1); f <= game.NumFaces; f++ {
					total += int(outcome.Counts[f])
				}
				require.Equal(t, n, total, "Counts should sum to n")
				require.False(t, seen[outcome.Counts], "Composition should appear once")
				seen[outcome.Counts] = true
			}
		}
	})

	t.Run("out of range is nil", func(t *testing.T) {
		require.Nil(t, Distribution(-1))
		require.Nil(t, Distribution(game.MaxDice+1))
	})
}

func TestDistributionNormalization(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, game.MaxDice).Draw(t, "n")

		sum := 0.0
		for _, outcome := range Distribution(n) {
			if outcome.Prob <= 0 {
				t.Fatalf("non-positive probability %g in distribution(%d)", outcome.Prob, n)
			}
			sum += outcome.Prob
		}

		if diff := sum - 1.0; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("probabilities over distribution(%d) sum to %g, want 1", n, sum)
		}
	})
}

func TestMultinomial(t *testing.T) {
	counts := [game.NumFaces + 1]uint8{0, 2, 0, 1, 0, 0, 1}

	// 4!/(2!*1!*1!) = 12
	require.Equal(t, 12.0, multinomial(4, counts))
	require.Equal(t, 1.0, multinomial(0, [game.NumFaces + 1]uint8{}))
	require.Equal(t, 1.0, multinomial(8, [game.NumFaces + 1]uint8{0, 8}), "All dice on one face has one ordering")
}
