package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pickomino/game"
	"pickomino/searcher"
	"pickomino/searcher/agent"
)

func TestLocalEnginePlayTurn(t *testing.T) {
	t.Run("turn ends in a claim or a bust", func(t *testing.T) {
		pool := game.DefaultPool()

		for seed := uint64(1); seed <= 20; seed++ {
			eng := NewLocalEngine(agent.NewSolverAdvisor(searcher.MaxProbability), seed)

			result, err := eng.PlayTurn(pool)
			require.NoError(t, err)

			if result.Busted {
				require.Nil(t, result.Claimed, "A bust secures no tile")
			} else {
				require.NotNil(t, result.Claimed)
				require.GreaterOrEqual(t, result.Score, result.Claimed.Threshold)
				require.True(t, result.Used.Set().Contains(game.Worm),
					"A claim requires a banked worm")
			}
			require.Equal(t, result.Score, result.Used.Score())
			require.LessOrEqual(t, result.Used.NumDice(), game.MaxDice)
			require.Positive(t, result.Rolls)
		}
	})

	t.Run("same seed reproduces the turn", func(t *testing.T) {
		pool := game.DefaultPool()
		first, err := NewLocalEngine(agent.NewGreedyAdvisor(), 7).PlayTurn(pool)
		require.NoError(t, err)
		second, err := NewLocalEngine(agent.NewGreedyAdvisor(), 7).PlayTurn(pool)
		require.NoError(t, err)

		require.Equal(t, first, second)
	})

	t.Run("empty pool always busts", func(t *testing.T) {
		eng := NewLocalEngine(agent.NewSolverAdvisor(searcher.MaxExpectedPoints), 3)

		result, err := eng.PlayTurn(game.Pool{})
		require.NoError(t, err)
		require.True(t, result.Busted, "Nothing is claimable from an empty pool")
		require.Nil(t, result.Claimed)
	})
}

func TestLocalEngineAdvisors(t *testing.T) {
	// Both advisors must produce only legal turns over many seeds.
	advisors := []agent.Advisor{
		agent.NewSolverAdvisor(searcher.MaxProbability),
		agent.NewSolverAdvisor(searcher.MaxExpectedPoints),
		agent.NewGreedyAdvisor(),
	}
	pool := game.DefaultPool()

	for _, advisor := range advisors {
		t.Run(advisor.Name(), func(t *testing.T) {
			for seed := uint64(100); seed < 110; seed++ {
				_, err := NewLocalEngine(advisor, seed).PlayTurn(pool)
				require.NoError(t, err)
			}
		})
	}
}
