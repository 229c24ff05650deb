package engine

import "math"

// Scorer runs the scoring pipeline against a fixed weight set. It holds no
// mutable state and is safe for concurrent use.
type Scorer struct {
	w Weights
}

// New creates a Scorer with the given weights.
func New(w Weights) *Scorer {
	return &Scorer{w: w}
}

var defaultScorer = New(DefaultWeights())

// Default returns a Scorer using DefaultWeights.
func Default() *Scorer {
	return defaultScorer
}

// Weights returns the scorer's weight set.
func (s *Scorer) Weights() Weights {
	return s.w
}

// ProbabilityPair holds both probabilities (percent) for one horizon.
// Relationship is always ≤ Encounter.
type ProbabilityPair struct {
	Encounter    float64 `json:"encounter"`
	Relationship float64 `json:"relationship"`
}

// HorizonProbability is a ProbabilityPair tagged with its horizon.
type HorizonProbability struct {
	Months Horizon `json:"months"`
	ProbabilityPair
}

// Result is the output of one simulation run.
type Result struct {
	BaseScore float64 `json:"base_score"`

	// Undecayed values, before any horizon factor is applied.
	EncounterProb    float64 `json:"encounter_prob"`
	RelationshipProb float64 `json:"relationship_prob"`

	Horizons [len(Horizons)]HorizonProbability `json:"horizons"`
}

// Headline returns the 6-month pair.
func (r Result) Headline() ProbabilityPair {
	return r.At(HeadlineHorizon)
}

// At returns the pair for horizon h, or the zero pair if h is not simulated.
func (r Result) At(h Horizon) ProbabilityPair {
	for _, hp := range r.Horizons {
		if hp.Months == h {
			return hp.ProbabilityPair
		}
	}
	return ProbabilityPair{}
}

// Rounded returns a copy with every probability rounded to one decimal place
// for display.
func (r Result) Rounded() Result {
	r.BaseScore = Round1(r.BaseScore)
	r.EncounterProb = Round1(r.EncounterProb)
	r.RelationshipProb = Round1(r.RelationshipProb)
	for i := range r.Horizons {
		r.Horizons[i].Encounter = Round1(r.Horizons[i].Encounter)
		r.Horizons[i].Relationship = Round1(r.Horizons[i].Relationship)
	}
	return r
}

// Simulate runs the full pipeline. The profile must already be clamped and
// validated; identical input always yields identical output.
func (s *Scorer) Simulate(p Profile) Result {
	base := s.BaseScore(p)
	enc0 := s.EncounterProb(base, p)
	rel0 := s.RelationshipProb(enc0, base, p)

	res := Result{
		BaseScore:        base,
		EncounterProb:    enc0,
		RelationshipProb: rel0,
	}
	for i, h := range Horizons {
		enc := s.ApplyDecay(enc0, h)
		rel := min(s.ApplyDecay(rel0, h), enc)
		res.Horizons[i] = HorizonProbability{
			Months:          h,
			ProbabilityPair: ProbabilityPair{Encounter: enc, Relationship: rel},
		}
	}
	return res
}

// Simulate runs the pipeline with the default weights.
func Simulate(p Profile) Result {
	return defaultScorer.Simulate(p)
}

// Round1 rounds half away from zero to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
