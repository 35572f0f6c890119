package snapshot

import (
	"fmt"
	"time"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// Record is the serialized form of one product in a snapshot or seed file.
type Record struct {
	Barcode   string  `json:"barcode"              yaml:"barcode"`
	Name      string  `json:"name"                 yaml:"name"`
	Brand     string  `json:"brand"                yaml:"brand"`
	Category  string  `json:"category"             yaml:"category"`
	SodiumMg  float64 `json:"sodium_mg_per_100g"   yaml:"sodium_mg_per_100g"`
	SugarG    float64 `json:"sugar_g_per_100g"     yaml:"sugar_g_per_100g"`
	TotalFatG float64 `json:"total_fat_g_per_100g" yaml:"total_fat_g_per_100g"`
	IsGMO     bool    `json:"is_gmo"               yaml:"is_gmo"`
}

// ToProducts normalizes and validates records, stamping updatedAt on each.
// The first invalid record aborts the conversion. Duplicate barcodes keep
// the last occurrence.
func ToProducts(records []Record, updatedAt time.Time) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(records))
	index := make(map[string]int, len(records))

	for i, r := range records {
		p := domain.Product{
			Barcode:   r.Barcode,
			Name:      r.Name,
			Brand:     r.Brand,
			Category:  r.Category,
			SodiumMg:  r.SodiumMg,
			SugarG:    r.SugarG,
			TotalFatG: r.TotalFatG,
			IsGMO:     r.IsGMO,
			UpdatedAt: updatedAt,
		}
		p.Normalize()
		if err := p.Validate(); err != nil {
			return nil, &RecordError{Index: i, Err: err}
		}

		if at, dup := index[p.Barcode]; dup {
			products[at] = p
			continue
		}
		index[p.Barcode] = len(products)
		products = append(products, p)
	}

	return products, nil
}

// RecordError points at the offending record in a snapshot.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }
