package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProduct inserts a product with a unique barcode and moderate nutrients.
func SeedProduct(t *testing.T, pool *pgxpool.Pool, category string) domain.Product {
	t.Helper()
	ctx := context.Background()

	p := domain.Product{
		Barcode:   "TEST" + UniqueSuffix(),
		Name:      "Product " + UniqueSuffix(),
		Brand:     "Brand",
		Category:  category,
		SodiumMg:  150,
		SugarG:    4,
		TotalFatG: 3,
		UpdatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO products (barcode, name, brand, category, sodium_mg_per_100g, sugar_g_per_100g, total_fat_g_per_100g, is_gmo, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.Barcode, p.Name, p.Brand, p.Category, p.SodiumMg, p.SugarG, p.TotalFatG, p.IsGMO, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProduct: %v", err)
	}

	return p
}

// SeedUser inserts a user with a unique username.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	u := domain.User{
		ID:        uuid.New(),
		Username:  "user_" + UniqueSuffix(),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, username, created_at) VALUES ($1, $2, $3)`,
		u.ID, u.Username, u.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedConsumption inserts a consumption event for the given user.
func SeedConsumption(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, barcode string, at time.Time) domain.ConsumptionEvent {
	t.Helper()
	ctx := context.Background()

	e := domain.ConsumptionEvent{
		ID:         uuid.New(),
		UserID:     userID,
		Barcode:    barcode,
		ConsumedAt: at.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO consumption_events (id, user_id, barcode, consumed_at) VALUES ($1, $2, $3, $4)`,
		e.ID, e.UserID, e.Barcode, e.ConsumedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedConsumption: %v", err)
	}

	return e
}
