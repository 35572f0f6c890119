// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID        uuid.UUID `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
}

func (r userRow) toDomain() domain.User {
	return domain.User{ID: r.ID, Username: r.Username, CreatedAt: r.CreatedAt}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select("id", "username", "created_at").
		From("users").
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u := row.toDomain()
	return &u, nil
}

// GetByUsername returns a user by exact (case-sensitive) username.
func (r *Repo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := postgres.Builder.
		Select("id", "username", "created_at").
		From("users").
		Where("username = ?", username).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", username)
	}

	u := row.toDomain()
	return &u, nil
}

// InsertIfAbsent inserts u unless its username is taken.
// Reports whether a row was inserted.
func (r *Repo) InsertIfAbsent(ctx context.Context, u domain.User) (bool, error) {
	query, args, err := postgres.Builder.
		Insert("users").
		Columns("id", "username", "created_at").
		Values(u.ID, u.Username, u.CreatedAt).
		Suffix("ON CONFLICT (username) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, "user", u.Username)
	}
	return tag.RowsAffected() == 1, nil
}

// ListUsernames returns every username in ascending order.
func (r *Repo) ListUsernames(ctx context.Context) ([]string, error) {
	query, args, err := postgres.Builder.
		Select("username").
		From("users").
		OrderBy("username ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var names []string
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &names, query, args...); err != nil {
		return nil, postgres.MapError(err, "user", "list")
	}
	return names, nil
}
