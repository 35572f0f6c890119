// Package scoring derives a health score and a display label from the
// per-100g nutrient fields of a product.
package scoring

import (
	"fmt"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// Formula names accepted by New.
const (
	FormulaTenPoint     = "ten_point"
	FormulaHundredPoint = "hundred_point"
)

// Nutrients is the scoring input, all values per 100g.
type Nutrients struct {
	SodiumMg float64
	SugarG   float64
	FatG     float64
	IsGMO    bool
}

// FromProduct extracts the scoring input from a catalog product.
func FromProduct(p domain.Product) Nutrients {
	return Nutrients{
		SodiumMg: p.SodiumMg,
		SugarG:   p.SugarG,
		FatG:     p.TotalFatG,
		IsGMO:    p.IsGMO,
	}
}

// Assessment is a computed score with its label. It is derived on every
// read and never persisted.
type Assessment struct {
	Score   float64 `json:"score"`
	Label   string  `json:"label"`
	Formula string  `json:"formula"`
}

// Scorer is a scoring strategy. Implementations are pure and deterministic.
type Scorer interface {
	Name() string
	Score(n Nutrients) float64
	Label(score float64) string
	// Labels lists every label the scorer can produce, best first.
	Labels() []string
}

// Assess scores n with s and labels the result.
func Assess(s Scorer, n Nutrients) Assessment {
	score := s.Score(n)
	return Assessment{Score: score, Label: s.Label(score), Formula: s.Name()}
}

// New returns the scorer registered under name.
func New(name string) (Scorer, error) {
	switch name {
	case FormulaTenPoint, "":
		return TenPoint{}, nil
	case FormulaHundredPoint:
		return HundredPoint{}, nil
	default:
		return nil, fmt.Errorf("unknown scoring formula %q", name)
	}
}
