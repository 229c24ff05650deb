package engine

// Categorical inputs. Each type is a closed set; the values are the stable
// wire keys accepted by the API and CLI.
type (
	SoloDuration  string
	Gender        string
	AgeGroup      string
	Experience    string
	ActivityRange string
	LivingEnv     string
	Proactiveness string
	StyleEffort   string
	SkinHairCare  string
	BodyCare      string
	MannerEffort  string
	HealthCare    string
	Activity      string
	ActivityFreq  string
	NoveltyTier   string
)

const (
	SoloUnder6M SoloDuration = "lt_6m"
	Solo6MTo2Y  SoloDuration = "6m_2y"
	SoloOver2Y  SoloDuration = "gt_2y"
	SoloNever   SoloDuration = "never"
)

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

const (
	AgeEarly20s AgeGroup = "early_20s"
	AgeLate20s  AgeGroup = "late_20s"
	AgeEarly30s AgeGroup = "early_30s"
	AgeLate30s  AgeGroup = "late_30s"
	Age40Plus   AgeGroup = "40_plus"
)

const (
	ExperienceYes Experience = "yes"
	ExperienceNo  Experience = "no"
)

const (
	RangeHomeOffice   ActivityRange = "home_office"
	RangeNeighborhood ActivityRange = "neighborhood"
	RangeDowntown     ActivityRange = "downtown"
	RangeTravel       ActivityRange = "travel"
)

const (
	LivingParents     LivingEnv = "parents"
	LivingIndependent LivingEnv = "independent"
)

const (
	ProactiveAlmostNever Proactiveness = "almost_never"
	ProactiveQuarterly   Proactiveness = "quarterly"
	ProactiveMonthly     Proactiveness = "monthly"
	ProactiveWeekly      Proactiveness = "weekly"
)

const (
	StyleNone       StyleEffort = "none"
	StyleOccasional StyleEffort = "occasional"
	StyleInvested   StyleEffort = "invested"
)

const (
	SkinBasic        SkinHairCare = "basic"
	SkinRegular      SkinHairCare = "regular"
	SkinProfessional SkinHairCare = "professional"
)

const (
	BodyNone        BodyCare = "none"
	BodyWeekly1To2  BodyCare = "weekly_1_2"
	BodyWeekly3Plus BodyCare = "weekly_3_plus"
	BodyPTDiet      BodyCare = "pt_diet"
)

const (
	MannerNone       MannerEffort = "none"
	MannerOccasional MannerEffort = "occasional"
	MannerActive     MannerEffort = "active"
)

const (
	HealthNone   HealthCare = "none"
	HealthTrying HealthCare = "trying"
	HealthDone   HealthCare = "done"
)

const (
	ActivityNone        Activity = "none"
	ActivityHomebody    Activity = "homebody"
	ActivityStudy       Activity = "study"
	ActivityArts        Activity = "arts"
	ActivityVolunteer   Activity = "volunteer"
	ActivityYoga        Activity = "yoga"
	ActivityHikingClub  Activity = "hiking_club"
	ActivityRunningCrew Activity = "running_crew"
	ActivityDanceMusic  Activity = "dance_music"
	ActivityGymSolo     Activity = "gym_solo"
	ActivityTeamSports  Activity = "team_sports"
	ActivityMartialArts Activity = "martial_arts"
	ActivityGamingIT    Activity = "gaming_it"
	ActivityCarBike     Activity = "car_bike"
)

const (
	FreqUnderMonthly ActivityFreq = "lt_monthly"
	FreqMonthly      ActivityFreq = "monthly"
	FreqWeekly       ActivityFreq = "weekly"
	FreqTwiceWeekly  ActivityFreq = "twice_weekly"
)

const (
	NoveltyNone      NoveltyTier = "none"
	NoveltyYearly    NoveltyTier = "yearly"
	NoveltyQuarterly NoveltyTier = "quarterly"
	NoveltyProactive NoveltyTier = "proactive"
)

// Profile is the full set of self-reported inputs for one simulation.
// Numeric fields must be brought into range with Clamp before scoring.
type Profile struct {
	SoloDuration SoloDuration `json:"solo_duration"`
	Gender       Gender       `json:"gender"`
	AgeGroup     AgeGroup     `json:"age_group"`
	Experience   Experience   `json:"experience"`

	AppearanceSelf   float64 `json:"appearance_self"`
	AppearanceOthers float64 `json:"appearance_others"`

	StyleEffort  StyleEffort  `json:"style_effort"`
	SkinHairCare SkinHairCare `json:"skin_hair_care"`
	BodyCare     BodyCare     `json:"body_care"`
	MannerEffort MannerEffort `json:"manner_effort"`
	HealthCare   HealthCare   `json:"health_care"`

	ActivityRange   ActivityRange `json:"activity_range"`
	NetworkSize     int           `json:"network_size"`
	NetworkQuality  int           `json:"network_quality"`
	WorkGenderRatio float64       `json:"work_gender_ratio"`
	LivingEnv       LivingEnv     `json:"living_env"`

	Proactiveness Proactiveness `json:"proactiveness"`
	Resilience    int           `json:"resilience"`
	Confidence    int           `json:"confidence"`
	Openness      int           `json:"openness"`

	HighFilters   int `json:"high_filters"`
	MediumFilters int `json:"medium_filters"`
	LowFilters    int `json:"low_filters"`

	ApplyResults bool `json:"apply_results"`

	Activity1    Activity     `json:"activity1"`
	Activity2    Activity     `json:"activity2"`
	ActivityFreq ActivityFreq `json:"activity_freq"`
	NoveltyTier  NoveltyTier  `json:"novelty_tier"`
}

// Numeric bounds accepted at the input boundary.
const (
	MinAppearance     = 1
	MaxAppearance     = 10
	MinNetworkSize    = 0
	MaxNetworkSize    = 50
	MinNetworkQuality = 1
	MaxNetworkQuality = 5
	MinWorkRatio      = 0
	MaxWorkRatio      = 100
	MinResilience     = 1
	MaxResilience     = 5
	MinConfidence     = 1
	MaxConfidence     = 10
	MinOpenness       = 1
	MaxOpenness       = 5
	MinFilters        = 0
	MaxFilters        = 10
)

// DefaultProfile returns the starting values of the input form.
func DefaultProfile() Profile {
	return Profile{
		SoloDuration:     SoloUnder6M,
		Gender:           GenderFemale,
		AgeGroup:         AgeEarly20s,
		Experience:       ExperienceYes,
		AppearanceSelf:   5,
		AppearanceOthers: 5,
		StyleEffort:      StyleOccasional,
		SkinHairCare:     SkinRegular,
		BodyCare:         BodyWeekly1To2,
		MannerEffort:     MannerOccasional,
		HealthCare:       HealthTrying,
		ActivityRange:    RangeHomeOffice,
		NetworkSize:      3,
		NetworkQuality:   3,
		WorkGenderRatio:  50,
		LivingEnv:        LivingParents,
		Proactiveness:    ProactiveMonthly,
		Resilience:       3,
		Confidence:       6,
		Openness:         3,
		HighFilters:      2,
		MediumFilters:    3,
		LowFilters:       5,
		Activity1:        ActivityNone,
		Activity2:        ActivityNone,
		ActivityFreq:     FreqMonthly,
		NoveltyTier:      NoveltyYearly,
	}
}

// AppearanceScore is the mean of the self and others ratings.
func (p Profile) AppearanceScore() float64 {
	return (p.AppearanceSelf + p.AppearanceOthers) / 2
}

// Clamp returns a copy with every bounded numeric field forced into range.
func (p Profile) Clamp() Profile {
	p.AppearanceSelf = clampFloat(p.AppearanceSelf, MinAppearance, MaxAppearance)
	p.AppearanceOthers = clampFloat(p.AppearanceOthers, MinAppearance, MaxAppearance)
	p.NetworkSize = clampInt(p.NetworkSize, MinNetworkSize, MaxNetworkSize)
	p.NetworkQuality = clampInt(p.NetworkQuality, MinNetworkQuality, MaxNetworkQuality)
	p.WorkGenderRatio = clampFloat(p.WorkGenderRatio, MinWorkRatio, MaxWorkRatio)
	p.Resilience = clampInt(p.Resilience, MinResilience, MaxResilience)
	p.Confidence = clampInt(p.Confidence, MinConfidence, MaxConfidence)
	p.Openness = clampInt(p.Openness, MinOpenness, MaxOpenness)
	p.HighFilters = clampInt(p.HighFilters, MinFilters, MaxFilters)
	p.MediumFilters = clampInt(p.MediumFilters, MinFilters, MaxFilters)
	p.LowFilters = clampInt(p.LowFilters, MinFilters, MaxFilters)
	return p
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
