package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRoll(t *testing.T) {
	t.Run("counts faces", func(t *testing.T) {
		roll, err := NewRoll(6, 3, 3, 1)

		require.NoError(t, err)
		require.Equal(t, 4, roll.NumDice())
		require.Equal(t, 2, roll.Count(3))
		require.Equal(t, 1, roll.Count(Worm))
		require.Equal(t, []Face{1, 3, Worm}, roll.Faces())
	})

	t.Run("rejects invalid face", func(t *testing.T) {
		_, err := NewRoll(3, 7)

		require.ErrorIs(t, err, ErrInvalidFace)
	})

	t.Run("rejects more than eight dice", func(t *testing.T) {
		_, err := NewRoll(1, 1, 1, 1, 1, 1, 1, 1, 1)

		require.ErrorIs(t, err, ErrInvalidDiceCount)
	})
}

func TestUsedRecord(t *testing.T) {
	t.Run("score counts worm as five", func(t *testing.T) {
		used := NewUsedRecord()
		used[Worm] = 3
		used[2] = 2

		require.Equal(t, 19, used.Score(), "3 worms at 5 plus 2 twos")
		require.Equal(t, 5, used.NumDice())
		require.Equal(t, FaceSet(0).Add(2).Add(Worm), used.Set())
	})

	t.Run("validate rejects over-budget dice", func(t *testing.T) {
		used := NewUsedRecord()
		used[1] = 5
		used[2] = 4

		require.ErrorIs(t, used.Validate(), ErrInvalidDiceCount)
	})
}

func TestTurnStateBank(t *testing.T) {
	t.Run("accumulates score and consumes dice", func(t *testing.T) {
		state := NewTurnState()

		state, err := state.Bank(Worm, 3)
		require.NoError(t, err)
		state, err = state.Bank(4, 2)
		require.NoError(t, err)

		require.Equal(t, 23, state.Score())
		require.Equal(t, 3, state.DiceLeft)
		require.Equal(t, 8, state.Used.NumDice()+state.DiceLeft, "Dice accounting invariant")
	})

	t.Run("rejects banking a used face", func(t *testing.T) {
		state := NewTurnState()
		state, err := state.Bank(5, 2)
		require.NoError(t, err)

		_, err = state.Bank(5, 1)
		require.Error(t, err, "A face may be banked at most once per turn")
	})

	t.Run("rejects banking more dice than remain", func(t *testing.T) {
		state := NewTurnState()

		_, err := state.Bank(2, 9)
		require.ErrorIs(t, err, ErrInvalidDiceCount)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		state := NewTurnState()

		_, err := state.Bank(1, 1)
		require.NoError(t, err)
		require.Equal(t, 0, state.Score())
		require.Equal(t, MaxDice, state.DiceLeft)
	})
}
