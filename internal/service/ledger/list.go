package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/pkg/ctxutil"
)

// ListForUser returns the user's consumption rows, newest first.
func (s *Service) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user_id", "required")
	}

	rows, err := s.events.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list consumption for user: %w", err)
	}
	return rows, nil
}

// ListMine is ListForUser for the authenticated user.
func (s *Service) ListMine(ctx context.Context) ([]domain.ConsumptionRow, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ListForUser(ctx, userID)
}

// ListForUsername returns one user's rows by username, newest first.
func (s *Service) ListForUsername(ctx context.Context, username string) ([]domain.ConsumptionRow, error) {
	username = domain.NormalizeUsername(username)
	if username == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	rows, err := s.events.ListByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list consumption for username: %w", err)
	}
	return rows, nil
}

// ListAll returns every user's rows, newest first.
func (s *Service) ListAll(ctx context.Context) ([]domain.ConsumptionRow, error) {
	rows, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all consumption: %w", err)
	}
	return rows, nil
}

