// Package ledger records consumption events and reads them back joined with
// the catalog.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

type consumptionRepo interface {
	Create(ctx context.Context, e domain.ConsumptionEvent) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error)
	ListByUsername(ctx context.Context, username string) ([]domain.ConsumptionRow, error)
	ListAll(ctx context.Context) ([]domain.ConsumptionRow, error)
}

// Service provides ledger operations.
type Service struct {
	events consumptionRepo
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new ledger service.
func NewService(log *slog.Logger, events consumptionRepo) *Service {
	return &Service{
		events: events,
		now:    time.Now,
		log:    log.With("service", "ledger"),
	}
}
