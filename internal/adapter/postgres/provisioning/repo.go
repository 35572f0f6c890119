// Package provisioning stores the marker that the initial catalog load finished.
package provisioning

import (
	"context"
	"fmt"
	"time"

	postgres "github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
)

const tableName = "provisioning_state"

// Repo reads and writes the provisioning marker.
type Repo struct {
	db postgres.Querier
}

// New creates a new provisioning marker repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Completed reports whether the marker row exists.
func (r *Repo) Completed(ctx context.Context) (bool, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(tableName).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return false, postgres.MapError(err, "provisioning state", "read")
	}
	return n > 0, nil
}

// MarkCompleted writes the marker. A second call keeps the first timestamp.
func (r *Repo) MarkCompleted(ctx context.Context, at time.Time) error {
	query, args, err := postgres.Builder.
		Insert(tableName).
		Columns("completed_at").
		Values(at).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "provisioning state", "mark")
	}
	return nil
}
