package domain

import (
	"math"
	"strings"
	"time"
)

// Product is a catalog record keyed by barcode. Nutrient fields are per 100g.
type Product struct {
	Barcode   string
	Name      string
	Brand     string
	Category  string
	SodiumMg  float64
	SugarG    float64
	TotalFatG float64
	IsGMO     bool
	UpdatedAt time.Time
}

// Normalize trims surrounding whitespace from the text fields.
func (p *Product) Normalize() {
	p.Barcode = strings.TrimSpace(p.Barcode)
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
}

// Validate checks that barcode, name and brand are present and that every
// nutrient value is a finite non-negative number. No upper bound is enforced.
func (p Product) Validate() error {
	var errs []FieldError

	if strings.TrimSpace(p.Barcode) == "" {
		errs = append(errs, FieldError{Field: "barcode", Message: "required"})
	}
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "required"})
	}
	if strings.TrimSpace(p.Brand) == "" {
		errs = append(errs, FieldError{Field: "brand", Message: "required"})
	}

	nutrients := []struct {
		field string
		value float64
	}{
		{"sodium_mg_per_100g", p.SodiumMg},
		{"sugar_g_per_100g", p.SugarG},
		{"total_fat_g_per_100g", p.TotalFatG},
	}
	for _, n := range nutrients {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			errs = append(errs, FieldError{Field: n.field, Message: "must be a finite number"})
			continue
		}
		if n.value < 0 {
			errs = append(errs, FieldError{Field: n.field, Message: "must be non-negative"})
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
