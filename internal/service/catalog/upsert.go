package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// UpsertProductInput holds the full set of product attributes. Omitted
// numeric fields are zero.
type UpsertProductInput struct {
	Barcode   string
	Name      string
	Brand     string
	Category  string
	SodiumMg  float64
	SugarG    float64
	TotalFatG float64
	IsGMO     bool
}

func (i UpsertProductInput) toProduct() domain.Product {
	p := domain.Product{
		Barcode:   i.Barcode,
		Name:      i.Name,
		Brand:     i.Brand,
		Category:  i.Category,
		SodiumMg:  i.SodiumMg,
		SugarG:    i.SugarG,
		TotalFatG: i.TotalFatG,
		IsGMO:     i.IsGMO,
	}
	p.Normalize()
	return p
}

// UpsertProduct creates the product or replaces every attribute of the
// existing one. Validation runs before the store is touched.
func (s *Service) UpsertProduct(ctx context.Context, input UpsertProductInput) (*domain.Product, error) {
	p := input.toProduct()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.UpdatedAt = s.now().UTC()

	saved, err := s.products.Upsert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("upsert product: %w", err)
	}

	s.log.InfoContext(ctx, "product upserted",
		slog.String("barcode", saved.Barcode),
		slog.String("category", saved.Category),
	)

	return saved, nil
}
