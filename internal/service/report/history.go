package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/pkg/ctxutil"
)

// MyHistory returns the authenticated user's consumption, newest first,
// with scores computed under the active formula.
func (s *Service) MyHistory(ctx context.Context) ([]ScoredRow, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.rows.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("history: %w", err)
	}
	return ScoreRows(rows, s.scorer), nil
}

// AllHistory returns every user's consumption, newest first.
func (s *Service) AllHistory(ctx context.Context) ([]ScoredRow, error) {
	rows, err := s.rows.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("all history: %w", err)
	}
	return ScoreRows(rows, s.scorer), nil
}
