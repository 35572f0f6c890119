// Package report builds consumption summaries for a single user and for
// the nutritionist overview.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
	"github.com/heartmarshall/healthscan-backend/pkg/ctxutil"
)

type rowSource interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error)
	ListForUsername(ctx context.Context, username string) ([]domain.ConsumptionRow, error)
	ListAll(ctx context.Context) ([]domain.ConsumptionRow, error)
}

type userDirectory interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ListUsernames(ctx context.Context) ([]string, error)
}

// Service provides reporting operations.
type Service struct {
	rows   rowSource
	users  userDirectory
	scorer scoring.Scorer
	log    *slog.Logger
}

// NewService creates a new report service.
func NewService(log *slog.Logger, rows rowSource, users userDirectory, scorer scoring.Scorer) *Service {
	return &Service{
		rows:   rows,
		users:  users,
		scorer: scorer,
		log:    log.With("service", "report"),
	}
}

// Overview is the all-users summary plus the known usernames.
type Overview struct {
	Summary
	Usernames []string
}

// UserReport summarizes the authenticated user's consumption.
func (s *Service) UserReport(ctx context.Context) (*Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	rows, err := s.rows.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user report: %w", err)
	}

	summary := Summarize(rows, s.scorer)
	return &summary, nil
}

// OverviewReport summarizes consumption across all users.
func (s *Service) OverviewReport(ctx context.Context) (*Overview, error) {
	rows, err := s.rows.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview report: %w", err)
	}

	names, err := s.users.ListUsernames(ctx)
	if err != nil {
		return nil, fmt.Errorf("overview report: %w", err)
	}

	s.log.DebugContext(ctx, "overview built",
		slog.Int("rows", len(rows)),
		slog.Int("users", len(names)),
	)

	return &Overview{Summary: Summarize(rows, s.scorer), Usernames: names}, nil
}

// UserReportFor summarizes one named user's consumption. An unknown
// username is domain.ErrNotFound.
func (s *Service) UserReportFor(ctx context.Context, username string) (*Summary, error) {
	name := domain.NormalizeUsername(username)
	if name == "" {
		return nil, domain.NewValidationError("username", "required")
	}

	if _, err := s.users.GetByUsername(ctx, name); err != nil {
		return nil, fmt.Errorf("user report for %q: %w", name, err)
	}

	rows, err := s.rows.ListForUsername(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("user report for %q: %w", name, err)
	}

	summary := Summarize(rows, s.scorer)
	return &summary, nil
}
