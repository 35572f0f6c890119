package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
)

// GetProduct returns the product with the exact barcode. A miss is reported
// as found == false with a nil error.
func (s *Service) GetProduct(ctx context.Context, barcode string) (*domain.Product, bool, error) {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil, false, domain.NewValidationError("barcode", "required")
	}

	p, err := s.products.GetByBarcode(ctx, barcode)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get product: %w", err)
	}

	return p, true, nil
}

// Lookup returns the product and its assessment. The score is computed on
// every call.
func (s *Service) Lookup(ctx context.Context, barcode string) (*ProductView, bool, error) {
	p, found, err := s.GetProduct(ctx, barcode)
	if err != nil || !found {
		return nil, found, err
	}

	return &ProductView{
		Product:    *p,
		Assessment: scoring.Assess(s.scorer, scoring.FromProduct(*p)),
	}, true, nil
}

// LookupImage decodes a barcode from image with the configured decoder and
// looks it up.
func (s *Service) LookupImage(ctx context.Context, image []byte) (*ScanResult, error) {
	if s.decoder == nil {
		return nil, domain.ErrDecoderUnavailable
	}
	if len(image) == 0 {
		return nil, domain.NewValidationError("image", "required")
	}

	barcode, ok, err := s.decoder.Decode(ctx, image)
	if err != nil {
		return nil, fmt.Errorf("decode barcode: %w", err)
	}
	if !ok || strings.TrimSpace(barcode) == "" {
		return nil, domain.ErrNoBarcodeDetected
	}

	view, found, err := s.Lookup(ctx, barcode)
	if err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "barcode decoded",
		slog.String("barcode", barcode),
		slog.Bool("found", found),
	)

	return &ScanResult{Barcode: strings.TrimSpace(barcode), Found: found, View: view}, nil
}
