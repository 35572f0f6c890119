// Package provision prepares the store at startup: it detects a fresh
// database, imports the remote product snapshot, applies migrations and
// seeds the example catalog when the product table is empty.
package provision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/snapshot"
	"github.com/heartmarshall/healthscan-backend/internal/config"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

type migrator interface {
	Version(ctx context.Context) (int64, error)
	Up(ctx context.Context) (int, error)
}

type snapshotFetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]snapshot.Record, error)
}

type productStore interface {
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, products []domain.Product) (int64, error)
}

type stateStore interface {
	Completed(ctx context.Context) (bool, error)
	MarkCompleted(ctx context.Context, at time.Time) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the startup provisioning sequence.
type Service struct {
	migrator migrator
	fetcher  snapshotFetcher
	products productStore
	state    stateStore
	tx       txManager
	cfg      config.BootstrapConfig
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new provisioning service.
func NewService(
	log *slog.Logger,
	cfg config.BootstrapConfig,
	m migrator,
	fetcher snapshotFetcher,
	products productStore,
	state stateStore,
	tx txManager,
) *Service {
	return &Service{
		migrator: m,
		fetcher:  fetcher,
		products: products,
		state:    state,
		tx:       tx,
		cfg:      cfg,
		now:      time.Now,
		log:      log.With("service", "provision"),
	}
}

// Result describes what Run did.
type Result struct {
	Fresh bool
	// Resumed is set when an earlier run migrated the schema but never
	// committed the initial catalog load.
	Resumed  bool
	Migrated int
	Imported int64
	Seeded   int64
}

// Run provisions the store. The snapshot is fetched before any schema
// change so that a failed download leaves a fresh database untouched.
// Until the initial load commits, every run is treated as a first run:
// the snapshot is fetched again and the example catalog is not used in
// its place. Every failure wraps domain.ErrProvisioning.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	version, err := s.migrator.Version(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: read schema version: %w", domain.ErrProvisioning, err)
	}

	res := &Result{Fresh: version == 0}

	pending := res.Fresh
	if !res.Fresh {
		done, err := s.state.Completed(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: read provisioning state: %w", domain.ErrProvisioning, err)
		}
		pending = !done
		res.Resumed = pending
	}
	if res.Resumed {
		s.log.WarnContext(ctx, "previous provisioning did not complete, retrying")
	}

	var snapshotProducts []domain.Product
	if pending && s.cfg.SnapshotURL != "" {
		snapshotProducts, err = s.loadSnapshot(ctx)
		if err != nil {
			return nil, err
		}
	}

	res.Migrated, err = s.migrator.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: apply migrations: %w", domain.ErrProvisioning, err)
	}

	if len(snapshotProducts) > 0 {
		res.Imported, err = s.importSnapshot(ctx, snapshotProducts)
		if err != nil {
			return nil, fmt.Errorf("%w: import snapshot: %w", domain.ErrProvisioning, err)
		}
	}

	if s.cfg.SeedIfEmpty {
		res.Seeded, err = s.SeedIfEmpty(ctx)
		if err != nil {
			return nil, err
		}
	}

	if pending && len(snapshotProducts) == 0 {
		if err := s.state.MarkCompleted(ctx, s.now().UTC()); err != nil {
			return nil, fmt.Errorf("%w: mark provisioned: %w", domain.ErrProvisioning, err)
		}
	}

	s.log.InfoContext(ctx, "store provisioned",
		slog.Bool("fresh", res.Fresh),
		slog.Bool("resumed", res.Resumed),
		slog.Int("migrations_applied", res.Migrated),
		slog.Int64("snapshot_products", res.Imported),
		slog.Int64("seeded_products", res.Seeded),
	)

	return res, nil
}

// SeedIfEmpty loads the embedded example catalog when no product exists.
func (s *Service) SeedIfEmpty(ctx context.Context) (int64, error) {
	n, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count products: %w", domain.ErrProvisioning, err)
	}
	if n > 0 {
		return 0, nil
	}

	records, err := SeedRecords()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrProvisioning, err)
	}
	products, err := snapshot.ToProducts(records, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: seed data: %w", domain.ErrProvisioning, err)
	}

	inserted, err := s.bulkLoad(ctx, products)
	if err != nil {
		return 0, fmt.Errorf("%w: seed products: %w", domain.ErrProvisioning, err)
	}
	return inserted, nil
}

func (s *Service) loadSnapshot(ctx context.Context) ([]domain.Product, error) {
	fetchCtx := ctx
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	s.log.InfoContext(ctx, "fetching product snapshot", slog.String("url", s.cfg.SnapshotURL))

	records, err := s.fetcher.Fetch(fetchCtx, s.cfg.SnapshotURL)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch snapshot: %w", domain.ErrProvisioning, err)
	}

	products, err := snapshot.ToProducts(records, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: snapshot data: %w", domain.ErrProvisioning, err)
	}
	return products, nil
}

// importSnapshot loads products and writes the completion marker in one
// transaction, so a failed import leaves the store pending.
func (s *Service) importSnapshot(ctx context.Context, products []domain.Product) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.products.BulkInsert(txCtx, products)
		if err != nil {
			return err
		}
		return s.state.MarkCompleted(txCtx, s.now().UTC())
	})
	return n, err
}

func (s *Service) bulkLoad(ctx context.Context, products []domain.Product) (int64, error) {
	var n int64
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		n, err = s.products.BulkInsert(txCtx, products)
		return err
	})
	return n, err
}
