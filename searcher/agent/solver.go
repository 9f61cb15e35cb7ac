package agent

import (
	"github.com/rs/zerolog/log"

	"pickomino/game"
	"pickomino/searcher"
)

type solverAdvisor struct {
	mode searcher.Mode
}

// NewSolverAdvisor returns an advisor that plays the exact optimal policy
// for the given objective.
func NewSolverAdvisor(mode searcher.Mode) Advisor {
	return solverAdvisor{mode: mode}
}

func (a solverAdvisor) Name() string {
	return "solver-" + a.mode.String()
}

func (a solverAdvisor) PickFace(pool game.Pool, roll game.Roll, state game.TurnState) (game.Face, bool) {
	rec, err := searcher.Recommend(pool, roll, state.Used, a.mode)
	if err != nil {
		log.Error().Err(err).Msg("recommendation failed")
		return 0, false
	}
	if rec.Best == 0 {
		return 0, false
	}
	return rec.Best, true
}
