package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"pickomino/game"
	"pickomino/searcher/agent"
)

// LocalEngine simulates turns with an in-process advisor and its own dice.
type LocalEngine struct {
	advisor agent.Advisor
	rng     *rand.Rand
}

func NewLocalEngine(advisor agent.Advisor, seed uint64) *LocalEngine {
	return &LocalEngine{
		advisor: advisor,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// PlayTurn rolls, consults the advisor, and banks until the turn ends in a
// claim or a bust. The advisor's stopping rule is implicit: a turn ends in
// a claim at the first claimable state, matching the optimal policy.
func (e *LocalEngine) PlayTurn(pool game.Pool) (TurnResult, error) {
	state := game.NewTurnState()
	rolls := 0

	for state.DiceLeft > 0 {
		roll := e.roll(state.DiceLeft)
		rolls++
		log.Debug().Msgf("rolled [%s] with %d banked", roll, state.Score())

		face, ok := e.advisor.PickFace(pool, roll, state)
		if !ok { // No legal face: forced bust
			return TurnResult{Used: state.Used, Score: state.Score(), Busted: true, Rolls: rolls}, nil
		}

		next, err := state.Bank(face, roll.Count(face))
		if err != nil {
			return TurnResult{}, fmt.Errorf("advisor %s picked an illegal face: %w", e.advisor.Name(), err)
		}
		state = next

		if pool.CanSucceed(state.Score(), state.Used.Set()) {
			tile, _ := pool.Best(state.Score())
			return TurnResult{
				Used:    state.Used,
				Score:   state.Score(),
				Claimed: &tile,
				Rolls:   rolls,
			}, nil
		}
	}

	// Dice ran out without a claimable state
	return TurnResult{Used: state.Used, Score: state.Score(), Busted: true, Rolls: rolls}, nil
}

func (e *LocalEngine) roll(n int) game.Roll {
	var r game.Roll
	for i := 0; i < n; i++ {
		r[1+e.rng.Intn(game.NumFaces)]++
	}
	return r
}
