package app

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/consumption"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/product"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/healthscan-backend/internal/adapter/redis/productcache"
	"github.com/heartmarshall/healthscan-backend/internal/auth"
	"github.com/heartmarshall/healthscan-backend/internal/config"
	"github.com/heartmarshall/healthscan-backend/internal/domain"
	"github.com/heartmarshall/healthscan-backend/internal/scoring"
	"github.com/heartmarshall/healthscan-backend/internal/service/catalog"
	"github.com/heartmarshall/healthscan-backend/internal/service/identity"
	"github.com/heartmarshall/healthscan-backend/internal/service/ledger"
	"github.com/heartmarshall/healthscan-backend/internal/service/report"
	"github.com/heartmarshall/healthscan-backend/internal/transport/middleware"
	"github.com/heartmarshall/healthscan-backend/internal/transport/rest"
)

// Deps are the runtime collaborators of the HTTP handler.
type Deps struct {
	Config *config.Config
	Pool   *pgxpool.Pool
	Logger *slog.Logger

	// Redis enables the product cache when non-nil.
	Redis redis.Cmdable
	// Decoder serves POST /products/scan. Without it the endpoint is 501.
	Decoder domain.BarcodeDecoder
}

// NewHandler wires repositories, services and routes. The returned stop
// function releases background resources and must be called on shutdown.
func NewHandler(d Deps) (http.Handler, func(), error) {
	cfg := d.Config
	logger := d.Logger

	scorer, err := scoring.New(cfg.Scoring.Formula)
	if err != nil {
		return nil, nil, err
	}

	passHash, err := middleware.HashPassphrase(cfg.Access.NutritionistPassphrase)
	if err != nil {
		return nil, nil, err
	}

	// Repositories.
	txm := postgres.NewTxManager(d.Pool)
	userRepo := user.New(d.Pool)
	consumptionRepo := consumption.New(d.Pool)
	productRepo := product.New(d.Pool)

	health := rest.NewHealthHandler(d.Pool, BuildVersion())

	var catalogStore productStore = productRepo
	if d.Redis != nil {
		cached := productcache.New(logger, productRepo, d.Redis, cfg.Cache.TTL)
		catalogStore = cached
		health.WithComponent("cache", cached)
	}

	// Services.
	jwtMgr := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	identitySvc := identity.NewService(logger, userRepo, txm, jwtMgr)
	catalogSvc := catalog.NewService(logger, catalogStore, scorer, d.Decoder)
	ledgerSvc := ledger.NewService(logger, consumptionRepo)
	reportSvc := report.NewService(logger, ledgerSvc, userRepo, scorer)

	// Handlers.
	authH := rest.NewAuthHandler(identitySvc, logger)
	productH := rest.NewProductHandler(catalogSvc, cfg.Server.MaxImageBytes, logger)
	consumptionH := rest.NewConsumptionHandler(ledgerSvc, reportSvc, logger)
	reportH := rest.NewReportHandler(reportSvc, logger)

	limiter := middleware.NewRateLimiter(5 * time.Minute)
	loginLimit := limiter.Limit(cfg.Server.LoginRateLimit)
	gate := middleware.AccessGate(passHash)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /auth/login", middleware.Wrap(authH.Login, loginLimit))

	mux.HandleFunc("GET /products/{barcode}", productH.Get)
	mux.HandleFunc("PUT /products/{barcode}", productH.Put)
	mux.HandleFunc("POST /products/scan", productH.Scan)

	mux.HandleFunc("POST /consumption", consumptionH.Create)
	mux.HandleFunc("GET /me/consumption", consumptionH.ListMine)
	mux.HandleFunc("GET /me/report", reportH.Mine)

	mux.Handle("GET /nutritionist/consumption", middleware.Wrap(consumptionH.ListAll, gate))
	mux.Handle("GET /nutritionist/report", middleware.Wrap(reportH.Nutritionist, gate))

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(identitySvc),
	)(mux)

	logger.Info("http routes ready",
		slog.String("scoring_formula", scorer.Name()),
		slog.Bool("cache", d.Redis != nil),
		slog.Bool("decoder", d.Decoder != nil),
	)

	return handler, limiter.Stop, nil
}

// productStore is the product store the catalog service reads and writes,
// either the repository itself or the cache in front of it.
type productStore interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
