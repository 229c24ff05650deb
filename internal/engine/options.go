package engine

// Option lists in display order. These are the closed domains that Validate
// enforces and that the API advertises to clients.
var (
	SoloDurations   = []SoloDuration{SoloUnder6M, Solo6MTo2Y, SoloOver2Y, SoloNever}
	Genders         = []Gender{GenderFemale, GenderMale}
	AgeGroups       = []AgeGroup{AgeEarly20s, AgeLate20s, AgeEarly30s, AgeLate30s, Age40Plus}
	Experiences     = []Experience{ExperienceYes, ExperienceNo}
	ActivityRanges  = []ActivityRange{RangeHomeOffice, RangeNeighborhood, RangeDowntown, RangeTravel}
	LivingEnvs      = []LivingEnv{LivingParents, LivingIndependent}
	Proactivenesses = []Proactiveness{ProactiveAlmostNever, ProactiveQuarterly, ProactiveMonthly, ProactiveWeekly}
	StyleEfforts    = []StyleEffort{StyleNone, StyleOccasional, StyleInvested}
	SkinHairCares   = []SkinHairCare{SkinBasic, SkinRegular, SkinProfessional}
	BodyCares       = []BodyCare{BodyNone, BodyWeekly1To2, BodyWeekly3Plus, BodyPTDiet}
	MannerEfforts   = []MannerEffort{MannerNone, MannerOccasional, MannerActive}
	HealthCares     = []HealthCare{HealthNone, HealthTrying, HealthDone}
	Activities      = []Activity{
		ActivityNone, ActivityHomebody, ActivityStudy, ActivityArts,
		ActivityVolunteer, ActivityYoga, ActivityHikingClub, ActivityRunningCrew,
		ActivityDanceMusic, ActivityGymSolo, ActivityTeamSports, ActivityMartialArts,
		ActivityGamingIT, ActivityCarBike,
	}
	ActivityFreqs = []ActivityFreq{FreqUnderMonthly, FreqMonthly, FreqWeekly, FreqTwiceWeekly}
	NoveltyTiers  = []NoveltyTier{NoveltyNone, NoveltyYearly, NoveltyQuarterly, NoveltyProactive}
)

// NumericRange is the accepted interval of a numeric input.
type NumericRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// NumericRanges maps the profile's JSON field names to their bounds.
var NumericRanges = map[string]NumericRange{
	"appearance_self":   {MinAppearance, MaxAppearance},
	"appearance_others": {MinAppearance, MaxAppearance},
	"network_size":      {MinNetworkSize, MaxNetworkSize},
	"network_quality":   {MinNetworkQuality, MaxNetworkQuality},
	"work_gender_ratio": {MinWorkRatio, MaxWorkRatio},
	"resilience":        {MinResilience, MaxResilience},
	"confidence":        {MinConfidence, MaxConfidence},
	"openness":          {MinOpenness, MaxOpenness},
	"high_filters":      {MinFilters, MaxFilters},
	"medium_filters":    {MinFilters, MaxFilters},
	"low_filters":       {MinFilters, MaxFilters},
}
