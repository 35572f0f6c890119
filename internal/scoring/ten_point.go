package scoring

import "math"

// Ten-point labels.
const (
	LabelExcellent = "Excellent"
	LabelGood      = "Good"
	LabelMedium    = "Medium"
	LabelPoor      = "Poor"
)

// TenPoint is the canonical 0-10 scale.
type TenPoint struct{}

func (TenPoint) Name() string { return FormulaTenPoint }

func (TenPoint) Score(n Nutrients) float64 {
	return HealthScore(n.SodiumMg, n.SugarG, n.FatG, n.IsGMO)
}

func (TenPoint) Label(score float64) string { return Label(score) }

func (TenPoint) Labels() []string {
	return []string{LabelExcellent, LabelGood, LabelMedium, LabelPoor}
}

// HealthScore computes the 0-10 health score. Each nutrient contributes an
// independent penalty tier; thresholds are strict "greater than". The sum is
// clamped to [0, 10] and rounded to one decimal place.
//
//	sodium mg:  >600 -4, >200 -2
//	sugar g:    >15  -4, >5   -2
//	fat g:      >20  -2, >5   -1
//	GMO:             -1
func HealthScore(sodiumMg, sugarG, fatG float64, isGMO bool) float64 {
	score := 10.0

	switch {
	case sodiumMg > 600:
		score -= 4.0
	case sodiumMg > 200:
		score -= 2.0
	}

	switch {
	case sugarG > 15:
		score -= 4.0
	case sugarG > 5:
		score -= 2.0
	}

	switch {
	case fatG > 20:
		score -= 2.0
	case fatG > 5:
		score -= 1.0
	}

	if isGMO {
		score -= 1.0
	}

	score = math.Max(0, math.Min(10, score))
	return math.Round(score*10) / 10
}

// Label buckets a 0-10 score. Lower bounds are inclusive.
func Label(score float64) string {
	switch {
	case score >= 8.0:
		return LabelExcellent
	case score >= 6.0:
		return LabelGood
	case score >= 4.0:
		return LabelMedium
	default:
		return LabelPoor
	}
}
