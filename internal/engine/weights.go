package engine

// Weights holds every tunable constant of the scoring pipeline. Categorical
// step functions are lookup tables; a category missing from its table
// contributes zero.
type Weights struct {
	BaseAnchor float64

	// Base score, per-unit and centered terms.
	AppearancePerPoint float64
	AppearanceCenter   float64
	NetworkSizePerUnit float64
	NetworkQualityUnit float64
	NetworkQualityMid  float64
	WorkRatioScale     float64
	ResiliencePerPoint float64
	ResilienceCenter   float64
	ConfidencePerPoint float64
	ConfidenceCenter   float64
	OpennessPerPoint   float64
	OpennessCenter     float64
	FilterHigh         float64
	FilterMedium       float64
	FilterLow          float64
	ActivityRange      map[ActivityRange]float64
	Living             map[LivingEnv]float64
	Proactiveness      map[Proactiveness]float64

	// Encounter probability.
	Activities       map[Activity]float64
	FreqMultiplier   map[ActivityFreq]float64
	NoveltyBonus     map[NoveltyTier]float64
	ApplyResultBonus float64
	LogisticCenter   float64
	LogisticScale    float64
	EncounterFloor   float64
	EncounterCeiling float64

	// Relationship probability.
	Style           map[StyleEffort]float64
	SkinHair        map[SkinHairCare]float64
	Body            map[BodyCare]float64
	Manner          map[MannerEffort]float64
	Health          map[HealthCare]float64
	ConversionFloor float64
	ConversionSpan  float64
	ConversionNorm  float64
	ConversionCeil  float64

	// Time decay.
	Decay          map[Horizon]float64
	MaxProbability float64
}

// DefaultWeights returns the author's fixed weight set.
func DefaultWeights() Weights {
	return Weights{
		BaseAnchor: 50,

		AppearancePerPoint: 3.0,
		AppearanceCenter:   5,
		NetworkSizePerUnit: 0.8,
		NetworkQualityUnit: 1.5,
		NetworkQualityMid:  3,
		WorkRatioScale:     10,
		ResiliencePerPoint: 2.0,
		ResilienceCenter:   3,
		ConfidencePerPoint: 2.5,
		ConfidenceCenter:   6,
		OpennessPerPoint:   2.0,
		OpennessCenter:     3,
		FilterHigh:         5.0,
		FilterMedium:       2.0,
		FilterLow:          0.5,
		ActivityRange: map[ActivityRange]float64{
			RangeHomeOffice:   -5,
			RangeNeighborhood: 0,
			RangeDowntown:     3,
			RangeTravel:       6,
		},
		Living: map[LivingEnv]float64{
			LivingParents:     0,
			LivingIndependent: 3,
		},
		Proactiveness: map[Proactiveness]float64{
			ProactiveAlmostNever: -10,
			ProactiveQuarterly:   0,
			ProactiveMonthly:     3,
			ProactiveWeekly:      8,
		},

		Activities: map[Activity]float64{
			ActivityNone:        0,
			ActivityHomebody:    -5,
			ActivityStudy:       5,
			ActivityArts:        10,
			ActivityVolunteer:   15,
			ActivityYoga:        10,
			ActivityHikingClub:  15,
			ActivityRunningCrew: 20,
			ActivityDanceMusic:  12,
			ActivityGymSolo:     3,
			ActivityTeamSports:  8,
			ActivityMartialArts: 25,
			ActivityGamingIT:    5,
			ActivityCarBike:     8,
		},
		FreqMultiplier: map[ActivityFreq]float64{
			FreqUnderMonthly: 1.0,
			FreqMonthly:      1.2,
			FreqWeekly:       1.5,
			FreqTwiceWeekly:  1.8,
		},
		NoveltyBonus: map[NoveltyTier]float64{
			NoveltyNone:      0,
			NoveltyYearly:    0,
			NoveltyQuarterly: 5,
			NoveltyProactive: 10,
		},
		ApplyResultBonus: 3,
		LogisticCenter:   60,
		LogisticScale:    15,
		EncounterFloor:   0.05,
		EncounterCeiling: 0.95,

		Style: map[StyleEffort]float64{
			StyleNone:       0,
			StyleOccasional: 3,
			StyleInvested:   8,
		},
		SkinHair: map[SkinHairCare]float64{
			SkinBasic:        0,
			SkinRegular:      3,
			SkinProfessional: 7,
		},
		Body: map[BodyCare]float64{
			BodyNone:        0,
			BodyWeekly1To2:  2,
			BodyWeekly3Plus: 5,
			BodyPTDiet:      9,
		},
		Manner: map[MannerEffort]float64{
			MannerNone:       0,
			MannerOccasional: 2,
			MannerActive:     6,
		},
		Health: map[HealthCare]float64{
			HealthNone:   0,
			HealthTrying: 1,
			HealthDone:   4,
		},
		ConversionFloor: 0.1,
		ConversionSpan:  0.6,
		ConversionNorm:  200,
		ConversionCeil:  0.7,

		Decay: map[Horizon]float64{
			Horizon3Months:  0.6,
			Horizon6Months:  1.0,
			Horizon12Months: 1.3,
		},
		MaxProbability: 99,
	}
}

// FilterPenalty is the weighted filter count subtracted from the base score.
func (w Weights) FilterPenalty(p Profile) float64 {
	return float64(p.HighFilters)*w.FilterHigh +
		float64(p.MediumFilters)*w.FilterMedium +
		float64(p.LowFilters)*w.FilterLow
}
