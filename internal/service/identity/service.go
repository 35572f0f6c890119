// Package identity resolves usernames to users, creating them on first
// login, and issues the session token that carries the user afterwards.
package identity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/auth"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	InsertIfAbsent(ctx context.Context, u domain.User) (bool, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type tokenManager interface {
	GenerateAccessToken(userID uuid.UUID, username string) (string, time.Time, error)
	ValidateAccessToken(token string) (auth.Claims, error)
}

// Service provides login and token validation.
type Service struct {
	users  userRepo
	tx     txManager
	tokens tokenManager
	now    func() time.Time
	log    *slog.Logger
}

// NewService creates a new identity service.
func NewService(log *slog.Logger, users userRepo, tx txManager, tokens tokenManager) *Service {
	return &Service{
		users:  users,
		tx:     tx,
		tokens: tokens,
		now:    time.Now,
		log:    log.With("service", "identity"),
	}
}
