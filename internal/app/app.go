package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/provisioning"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/redis/productcache"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/snapshot"
	"github.com/heartmarshall/healthscan-backend/internal/config"
	"github.com/heartmarshall/healthscan-backend/internal/service/provision"
)

// Run is the server entry point. It loads configuration, provisions the
// store, and serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("scoring_formula", cfg.Scoring.Formula),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if _, err := Provision(ctx, cfg, pool, logger); err != nil {
		return err
	}

	deps := Deps{Config: cfg, Pool: pool, Logger: logger}
	if cfg.Cache.RedisURL != "" {
		client, err := productcache.Connect(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return fmt.Errorf("product cache: %w", err)
		}
		defer client.Close()
		deps.Redis = client
	}

	handler, stop, err := NewHandler(deps)
	if err != nil {
		return err
	}
	defer stop()

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("stopped")
	return nil
}

// Provision migrates the schema and loads initial catalog data. A failure
// wraps domain.ErrProvisioning and must stop the process.
func Provision(ctx context.Context, cfg *config.Config, pool *pgxpool.Pool, logger *slog.Logger) (*provision.Result, error) {
	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	svc := provision.NewService(
		logger,
		cfg.Bootstrap,
		m,
		snapshot.NewFetcher(cfg.Bootstrap),
		product.New(pool),
		provisioning.New(pool),
		postgres.NewTxManager(pool),
	)
	return svc.Run(ctx)
}
