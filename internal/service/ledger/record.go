package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/pkg/ctxutil"
)

// RecordConsumption appends one event. A zero at means now. The barcode is
// not checked against the catalog.
func (s *Service) RecordConsumption(ctx context.Context, userID uuid.UUID, barcode string, at time.Time) (*domain.ConsumptionEvent, error) {
	var errs []domain.FieldError
	if userID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		errs = append(errs, domain.FieldError{Field: "barcode", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	if at.IsZero() {
		at = s.now()
	}

	event := domain.ConsumptionEvent{
		ID:         uuid.New(),
		UserID:     userID,
		Barcode:    barcode,
		ConsumedAt: at.UTC(),
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("record consumption: %w", err)
	}

	s.log.InfoContext(ctx, "consumption recorded",
		slog.String("user_id", userID.String()),
		slog.String("barcode", barcode),
	)

	return &event, nil
}

// Consume records an event for the authenticated user at the current time.
func (s *Service) Consume(ctx context.Context, barcode string) (*domain.ConsumptionEvent, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.RecordConsumption(ctx, userID, barcode, time.Time{})
}
