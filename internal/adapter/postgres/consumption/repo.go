// Package consumption implements the append-only consumption ledger using PostgreSQL.
package consumption

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// Repo provides consumption event persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new consumption repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type rowDTO struct {
	EventID    uuid.UUID `db:"event_id"`
	UserID     uuid.UUID `db:"user_id"`
	Username   string    `db:"username"`
	ConsumedAt time.Time `db:"consumed_at"`
	Barcode    string    `db:"barcode"`
	Name       string    `db:"name"`
	Brand      string    `db:"brand"`
	Category   string    `db:"category"`
	SodiumMg   float64   `db:"sodium_mg_per_100g"`
	SugarG     float64   `db:"sugar_g_per_100g"`
	TotalFatG  float64   `db:"total_fat_g_per_100g"`
	IsGMO      bool      `db:"is_gmo"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func (r rowDTO) toDomain() domain.ConsumptionRow {
	return domain.ConsumptionRow{
		EventID:    r.EventID,
		UserID:     r.UserID,
		Username:   r.Username,
		ConsumedAt: r.ConsumedAt,
		Product: domain.Product{
			Barcode:   r.Barcode,
			Name:      r.Name,
			Brand:     r.Brand,
			Category:  r.Category,
			SodiumMg:  r.SodiumMg,
			SugarG:    r.SugarG,
			TotalFatG: r.TotalFatG,
			IsGMO:     r.IsGMO,
			UpdatedAt: r.UpdatedAt,
		},
	}
}

// Create appends one consumption event. The barcode is not checked against
// the catalog.
func (r *Repo) Create(ctx context.Context, e domain.ConsumptionEvent) error {
	query, args, err := postgres.Builder.
		Insert("consumption_events").
		Columns("id", "user_id", "barcode", "consumed_at").
		Values(e.ID, e.UserID, e.Barcode, e.ConsumedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "consumption", e.ID.String())
	}
	return nil
}

// ListByUser returns the user's events joined with their products, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.ConsumptionRow, error) {
	return r.list(ctx, squirrel.Eq{"e.user_id": userID}, userID.String())
}

// ListByUsername is ListByUser keyed by username.
func (r *Repo) ListByUsername(ctx context.Context, username string) ([]domain.ConsumptionRow, error) {
	return r.list(ctx, squirrel.Eq{"u.username": username}, username)
}

// ListAll returns every user's events joined with their products, newest first.
func (r *Repo) ListAll(ctx context.Context) ([]domain.ConsumptionRow, error) {
	return r.list(ctx, nil, "all")
}

// list runs the ledger join. Events whose barcode has no product are
// dropped by the inner join.
func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, key string) ([]domain.ConsumptionRow, error) {
	qb := postgres.Builder.
		Select(
			"e.id AS event_id",
			"e.user_id",
			"u.username",
			"e.consumed_at",
			"p.barcode",
			"p.name",
			"p.brand",
			"p.category",
			"p.sodium_mg_per_100g",
			"p.sugar_g_per_100g",
			"p.total_fat_g_per_100g",
			"p.is_gmo",
			"p.updated_at",
		).
		From("consumption_events e").
		Join("users u ON u.id = e.user_id").
		Join("products p ON p.barcode = e.barcode").
		OrderBy("e.consumed_at DESC", "e.seq DESC")
	if where != nil {
		qb = qb.Where(where)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var dtos []rowDTO
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &dtos, query, args...); err != nil {
		return nil, postgres.MapError(err, "consumption", key)
	}

	rows := make([]domain.ConsumptionRow, len(dtos))
	for i, d := range dtos {
		rows[i] = d.toDomain()
	}
	return rows, nil
}
