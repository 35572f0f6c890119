package identity

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// FindOrCreate returns the user with the given username, creating it when
// absent. created reports whether this call inserted the row. Concurrent
// first logins for the same name converge on a single user.
func (s *Service) FindOrCreate(ctx context.Context, username string) (*domain.User, bool, error) {
	name := domain.NormalizeUsername(username)

	var (
		user    *domain.User
		created bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.users.GetByUsername(txCtx, name)
		switch {
		case err == nil:
			user = existing
			return nil
		case !errors.Is(err, domain.ErrNotFound):
			return fmt.Errorf("get user: %w", err)
		}

		candidate := domain.User{
			ID:        uuid.New(),
			Username:  name,
			CreatedAt: s.now().UTC(),
		}
		inserted, err := s.users.InsertIfAbsent(txCtx, candidate)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		if inserted {
			user = &candidate
			created = true
			return nil
		}

		// Lost a race with a concurrent login.
		user, err = s.users.GetByUsername(txCtx, name)
		if err != nil {
			return fmt.Errorf("get user after conflict: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	return user, created, nil
}

// Login resolves the username (creating the user on first use) and issues
// a session token.
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, created, err := s.FindOrCreate(ctx, input.Username)
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateAccessToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	if created {
		s.log.InfoContext(ctx, "user created",
			slog.String("user_id", user.ID.String()),
			slog.String("username", user.Username),
		)
	}

	return &LoginResult{
		User:        *user,
		Created:     created,
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// ValidateToken checks a session token and returns the identity it carries.
// Any failure is reported as domain.ErrUnauthorized.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	claims, err := s.tokens.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "token rejected", slog.String("error", err.Error()))
		return uuid.Nil, "", domain.ErrUnauthorized
	}
	return claims.UserID, claims.Username, nil
}
