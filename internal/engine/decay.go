package engine

// Time decay:
//   - 3 months  ×0.6  (short window, fewer opportunities realized)
//   - 6 months  ×1.0  (reference)
//   - 12 months ×1.3  (more cumulative opportunity)
//   - Capped at MaxProbability; the engine never reports certainty.
//   - Encounter and relationship decay independently, so the pair is
//     re-clamped afterwards to keep relationship ≤ encounter.

// Horizon is a projection window in months.
type Horizon int

const (
	Horizon3Months  Horizon = 3
	Horizon6Months  Horizon = 6
	Horizon12Months Horizon = 12
)

// Horizons lists every projection window in time order.
var Horizons = [...]Horizon{Horizon3Months, Horizon6Months, Horizon12Months}

// HeadlineHorizon is the window presentation treats as "the" result.
const HeadlineHorizon = Horizon6Months

// ApplyDecay scales prob by the horizon's decay factor and caps it.
// An unknown horizon uses the 12-month factor, matching the open-ended
// "anything longer" branch of the table.
func (s *Scorer) ApplyDecay(prob float64, h Horizon) float64 {
	factor, ok := s.w.Decay[h]
	if !ok {
		factor = s.w.Decay[Horizon12Months]
	}
	return min(s.w.MaxProbability, prob*factor)
}
