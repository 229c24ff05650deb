// Package report turns a scoring result into the record shown to users and
// returned by the API.
package report

import (
	"context"

	"github.com/google/uuid"
	"github.com/lazypower/lovesim/internal/counter"
	"github.com/lazypower/lovesim/internal/engine"
	"github.com/lazypower/lovesim/internal/metrics"
)

// Sources label where a simulation came from.
const (
	SourceAPI = "api"
	SourceCLI = "cli"
)

// Report is one completed simulation, rounded for display.
type Report struct {
	RunID         string                      `json:"run_id"`
	BaseScore     float64                     `json:"base_score"`
	Horizons      []engine.HorizonProbability `json:"horizons"`
	Headline      engine.ProbabilityPair      `json:"headline"`
	Reaction      engine.Reaction             `json:"reaction"`
	Advice        engine.Advice               `json:"advice"`
	FilterWeight  float64                     `json:"filter_weight"`
	FilterWarning engine.FilterWarning        `json:"filter_warning"`
	Count         int64                       `json:"count"`
	CountOK       bool                        `json:"count_ok"`
}

// Build assembles a Report from an unrounded result. Tiers are chosen on the
// rounded headline, the same value the report displays.
func Build(sc *engine.Scorer, p engine.Profile, res engine.Result) Report {
	filterWeight := sc.Weights().FilterPenalty(p)
	rounded := res.Rounded()
	headline := rounded.Headline()

	return Report{
		RunID:         uuid.NewString(),
		BaseScore:     rounded.BaseScore,
		Horizons:      rounded.Horizons[:],
		Headline:      headline,
		Reaction:      engine.ReactionFor(headline.Relationship),
		Advice:        engine.AdviceFor(headline.Relationship),
		FilterWeight:  filterWeight,
		FilterWarning: engine.FilterWarningFor(filterWeight),
	}
}

// Runner scores profiles and counts completed runs.
type Runner struct {
	Scorer  *engine.Scorer
	Tracker *counter.Tracker // nil skips counting
	Metrics *metrics.Metrics
}

// Run clamps and validates p, scores it, then records the run. Validation
// errors are returned before anything is counted; counter failures only
// clear CountOK.
func (r *Runner) Run(ctx context.Context, source string, p engine.Profile) (Report, error) {
	p, err := engine.Normalize(p)
	if err != nil {
		return Report{}, err
	}

	res := r.Scorer.Simulate(p)
	rep := Build(r.Scorer, p, res)
	r.Metrics.ObserveSimulation(source, res.Headline().Relationship)

	if r.Tracker != nil {
		rep.Count, rep.CountOK = r.Tracker.Record(ctx)
	}
	return rep, nil
}
