package engine

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidProfile is wrapped by every ValidationError.
var ErrInvalidProfile = errors.New("invalid profile")

// ValidationError reports the first profile field outside its domain.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidProfile
}

// Validate checks every categorical field against its option list and every
// numeric field against its range. Callers at the input boundary normally
// Clamp first, so numeric failures only surface for unclamped input.
// The scoring functions themselves never validate.
func (p Profile) Validate() error {
	checks := []error{
		oneOf("solo_duration", p.SoloDuration, SoloDurations),
		oneOf("gender", p.Gender, Genders),
		oneOf("age_group", p.AgeGroup, AgeGroups),
		oneOf("experience", p.Experience, Experiences),
		inRange("appearance_self", p.AppearanceSelf),
		inRange("appearance_others", p.AppearanceOthers),
		oneOf("style_effort", p.StyleEffort, StyleEfforts),
		oneOf("skin_hair_care", p.SkinHairCare, SkinHairCares),
		oneOf("body_care", p.BodyCare, BodyCares),
		oneOf("manner_effort", p.MannerEffort, MannerEfforts),
		oneOf("health_care", p.HealthCare, HealthCares),
		oneOf("activity_range", p.ActivityRange, ActivityRanges),
		inRange("network_size", float64(p.NetworkSize)),
		inRange("network_quality", float64(p.NetworkQuality)),
		inRange("work_gender_ratio", p.WorkGenderRatio),
		oneOf("living_env", p.LivingEnv, LivingEnvs),
		oneOf("proactiveness", p.Proactiveness, Proactivenesses),
		inRange("resilience", float64(p.Resilience)),
		inRange("confidence", float64(p.Confidence)),
		inRange("openness", float64(p.Openness)),
		inRange("high_filters", float64(p.HighFilters)),
		inRange("medium_filters", float64(p.MediumFilters)),
		inRange("low_filters", float64(p.LowFilters)),
		oneOf("activity1", p.Activity1, Activities),
		oneOf("activity2", p.Activity2, Activities),
		oneOf("activity_freq", p.ActivityFreq, ActivityFreqs),
		oneOf("novelty_tier", p.NoveltyTier, NoveltyTiers),
	}
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}

func oneOf[T ~string](field string, v T, allowed []T) error {
	if v == "" {
		return &ValidationError{Field: field, Value: `""`, Reason: "required"}
	}
	if !slices.Contains(allowed, v) {
		return &ValidationError{Field: field, Value: string(v), Reason: fmt.Sprintf("must be one of %v", allowed)}
	}
	return nil
}

func inRange(field string, v float64) error {
	r := NumericRanges[field]
	if v < r.Min || v > r.Max {
		return &ValidationError{Field: field, Value: v, Reason: fmt.Sprintf("must be between %g and %g", r.Min, r.Max)}
	}
	return nil
}

// Normalize clamps numeric fields and then validates the categorical ones.
// It is the single entry point used by the API and CLI.
func Normalize(p Profile) (Profile, error) {
	p = p.Clamp()
	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}
