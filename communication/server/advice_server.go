package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"pickomino/game"
	"pickomino/searcher"
)

// RecommendRequest carries the visible state of a turn in progress. Tiles
// defaults to the standard sixteen-tile pool when omitted.
type RecommendRequest struct {
	Roll  []int      `json:"roll"`
	Used  []int      `json:"used,omitempty"` // Banked dice, one entry per die
	Tiles []TileJSON `json:"tiles,omitempty"`
}

type TileJSON struct {
	Threshold int  `json:"threshold"`
	Points    int  `json:"points"`
	Overshoot bool `json:"overshoot"`
}

// FaceJSON mirrors searcher.FaceOption on the wire.
type FaceJSON struct {
	Face     int     `json:"face"`
	Count    int     `json:"count"`
	Score    int     `json:"score"`
	DiceLeft int     `json:"diceLeft"`
	Value    float64 `json:"value"`
}

type ModeJSON struct {
	Options []FaceJSON `json:"options"`
	Best    int        `json:"best"` // 0 when no legal face exists
	Tied    []int      `json:"tied,omitempty"`
}

type RecommendResponse struct {
	Probability ModeJSON `json:"probability"`
	Expected    ModeJSON `json:"expected"`
	BestEither  []int    `json:"bestEither,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AdviceServer serves recommendations over HTTP. It is stateless: every
// request carries its own turn state and pool.
type AdviceServer struct{}

func New() *AdviceServer {
	return &AdviceServer{}
}

func (s *AdviceServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/recommend", s.handleRecommend)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

// Start serves until the listener fails.
func (s *AdviceServer) Start(addr string) error {
	log.Info().Msgf("advice server listening on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *AdviceServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *AdviceServer) handleRecommend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	dual, err := recommend(req)
	if err != nil {
		if errors.Is(err, game.ErrInvalidFace) || errors.Is(err, game.ErrInvalidDiceCount) {
			writeError(w, http.StatusBadRequest, err.Error())
		} else {
			log.Error().Err(err).Msg("recommendation failed")
			writeError(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toResponse(dual))
}

func recommend(req RecommendRequest) (searcher.DualRecommendation, error) {
	roll, err := toRoll(req.Roll)
	if err != nil {
		return searcher.DualRecommendation{}, err
	}
	used, err := toUsed(req.Used)
	if err != nil {
		return searcher.DualRecommendation{}, err
	}

	pool := game.DefaultPool()
	if req.Tiles != nil {
		pool = make(game.Pool, 0, len(req.Tiles))
		for _, t := range req.Tiles {
			pool = append(pool, game.Tile{
				Threshold:      t.Threshold,
				Points:         t.Points,
				AllowOvershoot: t.Overshoot,
			})
		}
	}

	return searcher.RecommendBoth(pool, roll, used)
}

func toRoll(dice []int) (game.Roll, error) {
	faces := make([]game.Face, len(dice))
	for i, d := range dice {
		faces[i] = game.Face(d)
	}
	return game.NewRoll(faces...)
}

func toUsed(dice []int) (game.UsedRecord, error) {
	used := game.NewUsedRecord()
	for _, d := range dice {
		f := game.Face(d)
		if !f.Valid() {
			return used, fmt.Errorf("%w: banked %d", game.ErrInvalidFace, d)
		}
		used[f]++
	}
	return used, used.Validate()
}

func toResponse(dual searcher.DualRecommendation) RecommendResponse {
	return RecommendResponse{
		Probability: toModeJSON(dual.Probability, dual.BestProbability),
		Expected:    toModeJSON(dual.Expected, dual.BestExpected),
		BestEither:  toInts(dual.BestEither),
	}
}

func toModeJSON(rec searcher.Recommendation, tied []game.Face) ModeJSON {
	m := ModeJSON{Best: int(rec.Best), Tied: toInts(tied)}
	for _, option := range rec.Options {
		m.Options = append(m.Options, FaceJSON{
			Face:     int(option.Face),
			Count:    option.Count,
			Score:    option.Score,
			DiceLeft: option.DiceLeft,
			Value:    option.Value,
		})
	}
	return m
}

func toInts(faces []game.Face) []int {
	ints := make([]int, len(faces))
	for i, f := range faces {
		ints[i] = int(f)
	}
	return ints
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
