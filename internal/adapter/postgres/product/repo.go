// Package product implements the product catalog repository using PostgreSQL.
package product

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

const tableName = "products"

var columns = []string{
	"barcode",
	"name",
	"brand",
	"category",
	"sodium_mg_per_100g",
	"sugar_g_per_100g",
	"total_fat_g_per_100g",
	"is_gmo",
	"updated_at",
}

// Repo provides product persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new product repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type productRow struct {
	Barcode   string    `db:"barcode"`
	Name      string    `db:"name"`
	Brand     string    `db:"brand"`
	Category  string    `db:"category"`
	SodiumMg  float64   `db:"sodium_mg_per_100g"`
	SugarG    float64   `db:"sugar_g_per_100g"`
	TotalFatG float64   `db:"total_fat_g_per_100g"`
	IsGMO     bool      `db:"is_gmo"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r productRow) toDomain() domain.Product {
	return domain.Product{
		Barcode:   r.Barcode,
		Name:      r.Name,
		Brand:     r.Brand,
		Category:  r.Category,
		SodiumMg:  r.SodiumMg,
		SugarG:    r.SugarG,
		TotalFatG: r.TotalFatG,
		IsGMO:     r.IsGMO,
		UpdatedAt: r.UpdatedAt,
	}
}

// GetByBarcode returns the product with the exact barcode.
// Returns domain.ErrNotFound when no row matches.
func (r *Repo) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	query, args, err := postgres.Builder.
		Select(columns...).
		From(tableName).
		Where("barcode = ?", barcode).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "product", barcode)
	}

	p := row.toDomain()
	return &p, nil
}

// Upsert inserts the product or fully overwrites the row with the same barcode.
func (r *Repo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	query, args, err := postgres.Builder.
		Insert(tableName).
		Columns(columns...).
		Values(p.Barcode, p.Name, p.Brand, p.Category, p.SodiumMg, p.SugarG, p.TotalFatG, p.IsGMO, p.UpdatedAt).
		Suffix(`ON CONFLICT (barcode) DO UPDATE SET
			name = EXCLUDED.name,
			brand = EXCLUDED.brand,
			category = EXCLUDED.category,
			sodium_mg_per_100g = EXCLUDED.sodium_mg_per_100g,
			sugar_g_per_100g = EXCLUDED.sugar_g_per_100g,
			total_fat_g_per_100g = EXCLUDED.total_fat_g_per_100g,
			is_gmo = EXCLUDED.is_gmo,
			updated_at = EXCLUDED.updated_at
		RETURNING barcode, name, brand, category, sodium_mg_per_100g, sugar_g_per_100g, total_fat_g_per_100g, is_gmo, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row productRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, postgres.MapError(err, "product", p.Barcode)
	}

	out := row.toDomain()
	return &out, nil
}

// Count returns the number of products in the catalog.
func (r *Repo) Count(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder.
		Select("count(*)").
		From(tableName).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "product", "count")
	}
	return n, nil
}

// BulkInsert loads products with COPY. Existing barcodes cause a unique
// violation, so callers only use it on an empty catalog.
func (r *Repo) BulkInsert(ctx context.Context, products []domain.Product) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	rows := make([][]any, 0, len(products))
	for _, p := range products {
		rows = append(rows, []any{
			p.Barcode, p.Name, p.Brand, p.Category,
			p.SodiumMg, p.SugarG, p.TotalFatG, p.IsGMO, p.UpdatedAt,
		})
	}

	n, err := postgres.QuerierFromCtx(ctx, r.db).CopyFrom(ctx, pgx.Identifier{tableName}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return 0, postgres.MapError(err, "product", "bulk("+strconv.Itoa(len(products))+")")
	}
	return n, nil
}
