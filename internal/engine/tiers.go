package engine

// Tier boundaries consumed by presentation and sharing. All thresholds are
// percentages compared against the 6-month relationship probability, except
// the filter warning which uses the weighted filter count.
const (
	ReactionCuriousMin = 15.0
	ReactionWarmingMin = 35.0
	ReactionSmittenMin = 60.0

	AdviceApproachMin = 20.0
	AdviceWelcomeMin  = 50.0

	FilterWarningMildMin   = 10.0
	FilterWarningStrongMin = 20.0
)

// Reaction is the qualitative reaction tier shown alongside the headline.
type Reaction string

const (
	ReactionPreparing Reaction = "preparing"
	ReactionCurious   Reaction = "curious"
	ReactionWarming   Reaction = "warming"
	ReactionSmitten   Reaction = "smitten"
)

// Advice is the action-recipe tier.
type Advice string

const (
	AdviceAttract  Advice = "attract"
	AdviceApproach Advice = "approach"
	AdviceWelcome  Advice = "welcome"
)

// FilterWarning flags a filter load that is likely holding the score down.
type FilterWarning string

const (
	FilterWarningNone   FilterWarning = "none"
	FilterWarningMild   FilterWarning = "mild"
	FilterWarningStrong FilterWarning = "strong"
)

// ReactionFor picks the reaction tier for a relationship probability.
func ReactionFor(relationshipProb float64) Reaction {
	switch {
	case relationshipProb < ReactionCuriousMin:
		return ReactionPreparing
	case relationshipProb < ReactionWarmingMin:
		return ReactionCurious
	case relationshipProb < ReactionSmittenMin:
		return ReactionWarming
	default:
		return ReactionSmitten
	}
}

// AdviceFor picks the advice tier for a relationship probability.
func AdviceFor(relationshipProb float64) Advice {
	switch {
	case relationshipProb < AdviceApproachMin:
		return AdviceAttract
	case relationshipProb < AdviceWelcomeMin:
		return AdviceApproach
	default:
		return AdviceWelcome
	}
}

// FilterWarningFor classifies a weighted filter count.
func FilterWarningFor(filterWeight float64) FilterWarning {
	switch {
	case filterWeight >= FilterWarningStrongMin:
		return FilterWarningStrong
	case filterWeight >= FilterWarningMildMin:
		return FilterWarningMild
	default:
		return FilterWarningNone
	}
}
