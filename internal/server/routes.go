package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lazypower/lovesim/internal/engine"
	"github.com/lazypower/lovesim/internal/report"
)

const maxBodyBytes = 64 << 10

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	// Fields are not defaulted: a missing category fails validation.
	var p engine.Profile
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json: "+err.Error())
		return
	}

	// Bounds the counter increment.
	ctx, cancel := context.WithTimeout(r.Context(), counterTimeout)
	defer cancel()

	rep, err := s.runner.Run(ctx, report.SourceAPI, p)
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": ve.Error(),
				"field": ve.Field,
			})
			return
		}
		slog.Error("simulate failed", "request_id", middleware.GetReqID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, "simulation failed")
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

// optionsResponse advertises every input domain so clients can build forms
// without hardcoding keys.
type optionsResponse struct {
	SoloDurations   []engine.SoloDuration          `json:"solo_durations"`
	Genders         []engine.Gender                `json:"genders"`
	AgeGroups       []engine.AgeGroup              `json:"age_groups"`
	Experiences     []engine.Experience            `json:"experiences"`
	ActivityRanges  []engine.ActivityRange         `json:"activity_ranges"`
	LivingEnvs      []engine.LivingEnv             `json:"living_envs"`
	Proactivenesses []engine.Proactiveness         `json:"proactivenesses"`
	StyleEfforts    []engine.StyleEffort           `json:"style_efforts"`
	SkinHairCares   []engine.SkinHairCare          `json:"skin_hair_cares"`
	BodyCares       []engine.BodyCare              `json:"body_cares"`
	MannerEfforts   []engine.MannerEffort          `json:"manner_efforts"`
	HealthCares     []engine.HealthCare            `json:"health_cares"`
	Activities      []engine.Activity              `json:"activities"`
	ActivityWeights map[engine.Activity]float64    `json:"activity_weights"`
	ActivityFreqs   []engine.ActivityFreq          `json:"activity_freqs"`
	NoveltyTiers    []engine.NoveltyTier           `json:"novelty_tiers"`
	NumericRanges   map[string]engine.NumericRange `json:"numeric_ranges"`
	Horizons        []engine.Horizon               `json:"horizons"`
	Thresholds      map[string]float64             `json:"thresholds"`
	Defaults        engine.Profile                 `json:"defaults"`
}

func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		SoloDurations:   engine.SoloDurations,
		Genders:         engine.Genders,
		AgeGroups:       engine.AgeGroups,
		Experiences:     engine.Experiences,
		ActivityRanges:  engine.ActivityRanges,
		LivingEnvs:      engine.LivingEnvs,
		Proactivenesses: engine.Proactivenesses,
		StyleEfforts:    engine.StyleEfforts,
		SkinHairCares:   engine.SkinHairCares,
		BodyCares:       engine.BodyCares,
		MannerEfforts:   engine.MannerEfforts,
		HealthCares:     engine.HealthCares,
		Activities:      engine.Activities,
		ActivityWeights: s.runner.Scorer.Weights().Activities,
		ActivityFreqs:   engine.ActivityFreqs,
		NoveltyTiers:    engine.NoveltyTiers,
		NumericRanges:   engine.NumericRanges,
		Horizons:        engine.Horizons[:],
		Thresholds: map[string]float64{
			"reaction_curious":      engine.ReactionCuriousMin,
			"reaction_warming":      engine.ReactionWarmingMin,
			"reaction_smitten":      engine.ReactionSmittenMin,
			"advice_approach":       engine.AdviceApproachMin,
			"advice_welcome":        engine.AdviceWelcomeMin,
			"filter_warning_mild":   engine.FilterWarningMildMin,
			"filter_warning_strong": engine.FilterWarningStrongMin,
		},
		Defaults: engine.DefaultProfile(),
	})
}
