// Command bootstrap provisions the store without starting the server:
// it applies migrations, imports the configured product snapshot when the
// database is fresh, and seeds the example catalog when it is empty.
//
// Usage:
//
//	bootstrap [--timeout 5m]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/app"
	"github.com/heartmarshall/healthscan-backend/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 5*time.Minute, "overall provisioning deadline")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	res, err := app.Provision(ctx, cfg, pool, logger)
	if err != nil {
		logger.Error("provisioning failed", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("bootstrap complete",
		slog.Bool("fresh", res.Fresh),
		slog.Bool("resumed", res.Resumed),
		slog.Int("migrations_applied", res.Migrated),
		slog.Int64("snapshot_products", res.Imported),
		slog.Int64("seeded_products", res.Seeded),
	)
}
