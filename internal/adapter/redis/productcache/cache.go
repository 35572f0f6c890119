// Package productcache is a Redis read-through cache in front of the product
// catalog store. Only product attributes are cached; scores are computed by
// callers on every read.
package productcache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/healthscan-backend/internal/domain"
)

const keyPrefix = "healthscan:product:"

type productStore interface {
	GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// Store wraps a product store with a Redis cache. Redis failures are logged
// and the call falls through to the wrapped store.
type Store struct {
	next   productStore
	client redis.Cmdable
	ttl    time.Duration
	log    *slog.Logger
}

// New creates a caching Store in front of next.
func New(log *slog.Logger, next productStore, client redis.Cmdable, ttl time.Duration) *Store {
	return &Store{
		next:   next,
		client: client,
		ttl:    ttl,
		log:    log.With("adapter", "productcache"),
	}
}

// entry is the JSON form stored under each key. Version is UpdatedAt in
// microseconds, the precision PostgreSQL keeps.
type entry struct {
	Barcode   string    `json:"barcode"`
	Name      string    `json:"name"`
	Brand     string    `json:"brand"`
	Category  string    `json:"category"`
	SodiumMg  float64   `json:"sodium_mg_per_100g"`
	SugarG    float64   `json:"sugar_g_per_100g"`
	TotalFatG float64   `json:"total_fat_g_per_100g"`
	IsGMO     bool      `json:"is_gmo"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"version"`
}

func toEntry(p domain.Product) entry {
	return entry{
		Barcode:   p.Barcode,
		Name:      p.Name,
		Brand:     p.Brand,
		Category:  p.Category,
		SodiumMg:  p.SodiumMg,
		SugarG:    p.SugarG,
		TotalFatG: p.TotalFatG,
		IsGMO:     p.IsGMO,
		UpdatedAt: p.UpdatedAt,
		Version:   p.UpdatedAt.UnixMicro(),
	}
}

func (e entry) toDomain() domain.Product {
	return domain.Product{
		Barcode:   e.Barcode,
		Name:      e.Name,
		Brand:     e.Brand,
		Category:  e.Category,
		SodiumMg:  e.SodiumMg,
		SugarG:    e.SugarG,
		TotalFatG: e.TotalFatG,
		IsGMO:     e.IsGMO,
		UpdatedAt: e.UpdatedAt,
	}
}

// setIfNotOlder stores ARGV[1] unless the cached entry carries a newer
// version than ARGV[2]. Returns 1 when written.
var setIfNotOlder = redis.NewScript(`
local cur = redis.call('GET', KEYS[1])
if cur then
  local ok, e = pcall(cjson.decode, cur)
  if ok and type(e) == 'table' and type(e.version) == 'number' and e.version > tonumber(ARGV[2]) then
    return 0
  end
end
redis.call('SET', KEYS[1], ARGV[1], 'PX', ARGV[3])
return 1
`)

func key(barcode string) string {
	return keyPrefix + barcode
}

// GetByBarcode serves from Redis when possible. Misses are not cached.
func (s *Store) GetByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	raw, err := s.client.Get(ctx, key(barcode)).Bytes()
	switch {
	case err == nil:
		var e entry
		if jsonErr := json.Unmarshal(raw, &e); jsonErr == nil {
			p := e.toDomain()
			return &p, nil
		}
		s.log.WarnContext(ctx, "corrupt cache entry", slog.String("barcode", barcode))
	case !errors.Is(err, redis.Nil):
		s.log.WarnContext(ctx, "cache get failed", slog.String("barcode", barcode), slog.String("error", err.Error()))
	}

	p, err := s.next.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}

	if err := s.put(ctx, *p); err != nil {
		s.log.WarnContext(ctx, "cache set failed", slog.String("barcode", barcode), slog.String("error", err.Error()))
	}
	return p, nil
}

// Upsert writes through to the store and then to Redis. A failed cache
// write drops the key instead.
func (s *Store) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	out, err := s.next.Upsert(ctx, p)
	if err != nil {
		return nil, err
	}

	if err := s.put(ctx, *out); err != nil {
		s.log.WarnContext(ctx, "cache write failed", slog.String("barcode", out.Barcode), slog.String("error", err.Error()))
		if err := s.client.Del(ctx, key(out.Barcode)).Err(); err != nil {
			s.log.WarnContext(ctx, "cache invalidate failed", slog.String("barcode", out.Barcode), slog.String("error", err.Error()))
		}
	}
	return out, nil
}

// put caches p unless a newer version is already cached, so a reader that
// loaded a row before a concurrent Upsert cannot overwrite the newer entry.
func (s *Store) put(ctx context.Context, p domain.Product) error {
	e := toEntry(p)
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return setIfNotOlder.Run(ctx, s.client, []string{key(p.Barcode)},
		raw, strconv.FormatInt(e.Version, 10), s.ttl.Milliseconds(),
	).Err()
}

// Ping reports whether Redis is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
