package scoring

// HundredPoint is the earlier 0-100 scale. It is not equivalent to TenPoint
// and its labels do not include "Excellent".
type HundredPoint struct{}

func (HundredPoint) Name() string { return FormulaHundredPoint }

func (HundredPoint) Score(n Nutrients) float64 {
	score := 100.0

	switch {
	case n.SodiumMg > 400:
		score -= 20
	case n.SodiumMg > 200:
		score -= 10
	}

	switch {
	case n.SugarG > 20:
		score -= 20
	case n.SugarG > 10:
		score -= 10
	}

	switch {
	case n.FatG > 10:
		score -= 20
	case n.FatG > 5:
		score -= 10
	}

	if n.IsGMO {
		score -= 15
	}

	if score < 0 {
		return 0
	}
	return score
}

func (HundredPoint) Label(score float64) string {
	switch {
	case score >= 80:
		return LabelGood
	case score >= 50:
		return LabelMedium
	default:
		return LabelPoor
	}
}

func (HundredPoint) Labels() []string {
	return []string{LabelGood, LabelMedium, LabelPoor}
}
