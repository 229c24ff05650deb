package engine

import "math"

// BaseScore is the 0–100 composite of appearance, environment, mindset and
// filter penalty, anchored at BaseAnchor.
func (s *Scorer) BaseScore(p Profile) float64 {
	w := s.w
	score := w.BaseAnchor

	score += (p.AppearanceScore() - w.AppearanceCenter) * w.AppearancePerPoint
	score += w.ActivityRange[p.ActivityRange]

	score += float64(p.NetworkSize) * w.NetworkSizePerUnit
	score += (float64(p.NetworkQuality) - w.NetworkQualityMid) * w.NetworkQualityUnit
	score += workRatioTerm(p.WorkGenderRatio, w.WorkRatioScale)
	score += w.Living[p.LivingEnv]

	score += w.Proactiveness[p.Proactiveness]
	score += (float64(p.Resilience) - w.ResilienceCenter) * w.ResiliencePerPoint
	score += (float64(p.Confidence) - w.ConfidenceCenter) * w.ConfidencePerPoint
	score += (float64(p.Openness) - w.OpennessCenter) * w.OpennessPerPoint

	score -= w.FilterPenalty(p)

	return clampFloat(score, 0, 100)
}

// workRatioTerm is a tent centered on a 50% ratio: zero at 50 and falling
// linearly towards either extreme, so a skewed workplace never adds points.
func workRatioTerm(ratio, scale float64) float64 {
	if ratio <= 50 {
		return (ratio/100 - 0.5) * scale
	}
	return (0.5 - ratio/100) * scale
}

// EncounterProb maps base score plus activity score through a logistic curve
// and returns a percentage in [EncounterFloor, EncounterCeiling]×100.
func (s *Scorer) EncounterProb(baseScore float64, p Profile) float64 {
	total := baseScore + s.ActivityScore(p)
	prob := 1 / (1 + math.Exp(-(total-s.w.LogisticCenter)/s.w.LogisticScale))
	prob = clampFloat(prob, s.w.EncounterFloor, s.w.EncounterCeiling)
	return prob * 100
}

// ActivityScore sums both chosen activities, scales by participation
// frequency, then adds the flat novelty and willingness bonuses.
func (s *Scorer) ActivityScore(p Profile) float64 {
	w := s.w
	score := w.Activities[p.Activity1] + w.Activities[p.Activity2]
	if m, ok := w.FreqMultiplier[p.ActivityFreq]; ok {
		score *= m
	}
	score += w.NoveltyBonus[p.NoveltyTier]
	if p.ApplyResults {
		score += w.ApplyResultBonus
	}
	return score
}

// CharmScore is the additive bonus from self-improvement effort tiers.
func (s *Scorer) CharmScore(p Profile) float64 {
	w := s.w
	return w.Style[p.StyleEffort] +
		w.SkinHair[p.SkinHairCare] +
		w.Body[p.BodyCare] +
		w.Manner[p.MannerEffort] +
		w.Health[p.HealthCare]
}

// ConversionFactor is the fraction of encounters expected to turn into a
// relationship, bounded to [ConversionFloor, ConversionCeil].
func (s *Scorer) ConversionFactor(baseScore float64, p Profile) float64 {
	w := s.w
	norm := clampFloat((baseScore+s.CharmScore(p))/w.ConversionNorm, 0, 1)
	f := w.ConversionFloor + w.ConversionSpan*norm
	return clampFloat(f, w.ConversionFloor, w.ConversionCeil)
}

// RelationshipProb converts an encounter probability into a relationship
// probability. The result never exceeds encounterProb.
func (s *Scorer) RelationshipProb(encounterProb, baseScore float64, p Profile) float64 {
	prob := encounterProb * s.ConversionFactor(baseScore, p)
	return clampFloat(prob, 0, encounterProb)
}
