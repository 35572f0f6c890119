// Package catalog serves product lookups with a computed health assessment
// and accepts product upserts.
package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
)

type productRepo interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// Service provides catalog operations.
type Service struct {
	products productRepo
	scorer   scoring.Scorer
	decoder  domain.BarcodeDecoder
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new catalog service. decoder may be nil, in which
// case image lookups report domain.ErrDecoderUnavailable.
func NewService(
	log *slog.Logger,
	products productRepo,
	scorer scoring.Scorer,
	decoder domain.BarcodeDecoder,
) *Service {
	return &Service{
		products: products,
		scorer:   scorer,
		decoder:  decoder,
		now:      time.Now,
		log:      log.With("service", "catalog"),
	}
}

// ProductView is a product together with its assessment under the active scorer.
type ProductView struct {
	Product    domain.Product
	Assessment scoring.Assessment
}

// ScanResult is the outcome of an image lookup.
type ScanResult struct {
	Barcode string
	Found   bool
	View    *ProductView
}
