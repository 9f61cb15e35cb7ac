package experiments

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"pickomino/engine"
	"pickomino/experiments/metrics"
	"pickomino/gamemaster"
	"pickomino/searcher"
	"pickomino/searcher/agent"
)

// RunModeComparison plays games of a fixed number of turns with each
// advisor and writes per-turn records to CSV. Each advisor faces its own
// session so pool mutations do not leak between configurations.
func RunModeComparison(games, turns int, seed uint64) error {
	configs := []metrics.AdvisorConfig{
		{ID: 1, Name: "solver-probability", Mode: searcher.MaxProbability.String()},
		{ID: 2, Name: "solver-expected", Mode: searcher.MaxExpectedPoints.String()},
		{ID: 3, Name: "greedy", Mode: "heuristic"},
	}
	advisors := []agent.Advisor{
		agent.NewSolverAdvisor(searcher.MaxProbability),
		agent.NewSolverAdvisor(searcher.MaxExpectedPoints),
		agent.NewGreedyAdvisor(),
	}

	writer, err := metrics.NewWriter("mode_comparison")
	if err != nil {
		return fmt.Errorf("failed to create writer: %w", err)
	}
	if err := writer.WriteAdvisorConfigs(configs); err != nil {
		return fmt.Errorf("failed to write advisor configs: %w", err)
	}

	var records []metrics.TurnRecord
	for i, advisor := range advisors {
		log.Info().Msgf("running %d games of %d turns with %s", games, turns, advisor.Name())
		for g := 1; g <= games; g++ {
			// Distinct seed per game so games differ but runs reproduce
			eng := engine.NewLocalEngine(advisor, seed+uint64(i*games+g))
			records = append(records, playGame(eng, advisor.Name(), g, turns)...)
		}
	}

	if err := writer.WriteTurnRecords(records); err != nil {
		return fmt.Errorf("failed to write turn records: %w", err)
	}

	summarize(configs, records)
	return nil
}

func playGame(eng engine.Engine, advisor string, gameID, turns int) []metrics.TurnRecord {
	session := gamemaster.NewSession()
	records := make([]metrics.TurnRecord, 0, turns)

	for turn := 1; turn <= turns; turn++ {
		if len(session.Pool()) == 0 {
			break
		}
		result, err := eng.PlayTurn(session.Pool())
		if err != nil {
			log.Error().Err(err).Msgf("turn %d failed", turn)
			break
		}

		record := metrics.TurnRecord{
			Game:    gameID,
			Turn:    turn,
			Advisor: advisor,
			Score:   result.Score,
			Busted:  result.Busted,
		}
		if result.Busted {
			session.Bust()
		} else {
			tile, err := session.Claim(result.Score, result.Used.Set())
			if err != nil {
				log.Error().Err(err).Msgf("claim failed on turn %d", turn)
				break
			}
			record.Points = tile.Points
		}
		records = append(records, record)
	}
	return records
}

func summarize(configs []metrics.AdvisorConfig, records []metrics.TurnRecord) {
	for _, config := range configs {
		turns := lo.Filter(records, func(r metrics.TurnRecord, _ int) bool {
			return r.Advisor == config.Name
		})
		if len(turns) == 0 {
			continue
		}
		busts := lo.CountBy(turns, func(r metrics.TurnRecord) bool { return r.Busted })
		points := lo.SumBy(turns, func(r metrics.TurnRecord) int { return r.Points })
		log.Info().
			Str("advisor", config.Name).
			Int("turns", len(turns)).
			Float64("bust_rate", float64(busts)/float64(len(turns))).
			Float64("points_per_turn", float64(points)/float64(len(turns))).
			Msg("advisor summary")
	}
}
