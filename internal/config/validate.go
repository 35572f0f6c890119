package config

import (
	"fmt"
	"net/url"
	"slices"
)

var knownFormulas = []string{"ten_point", "hundred_point"}

// maxPassphraseBytes is the bcrypt input limit.
const maxPassphraseBytes = 72

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.MaxImageBytes <= 0 {
		return fmt.Errorf("server.max_image_bytes must be > 0 (got %d)", c.Server.MaxImageBytes)
	}
	if c.Server.LoginRateLimit <= 0 {
		return fmt.Errorf("server.login_rate_limit must be > 0 (got %d)", c.Server.LoginRateLimit)
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}

	if c.Access.NutritionistPassphrase == "" {
		return fmt.Errorf("access.nutritionist_passphrase is required")
	}
	if len(c.Access.NutritionistPassphrase) > maxPassphraseBytes {
		return fmt.Errorf("access.nutritionist_passphrase must be at most %d bytes", maxPassphraseBytes)
	}

	if !slices.Contains(knownFormulas, c.Scoring.Formula) {
		return fmt.Errorf("scoring.formula must be one of %v (got %q)", knownFormulas, c.Scoring.Formula)
	}

	if c.Cache.RedisURL != "" && c.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be > 0 when cache.redis_url is set (got %v)", c.Cache.TTL)
	}

	if err := c.Bootstrap.validate(); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	return nil
}

func (b *BootstrapConfig) validate() error {
	if b.SnapshotURL == "" {
		return nil
	}

	u, err := url.Parse(b.SnapshotURL)
	if err != nil {
		return fmt.Errorf("snapshot_url: %w", err)
	}
	switch u.Scheme {
	case "http", "https":
		if u.Host == "" {
			return fmt.Errorf("snapshot_url: missing host")
		}
	case "s3":
		if u.Host == "" || len(u.Path) <= 1 {
			return fmt.Errorf("snapshot_url: expected s3://bucket/key")
		}
	default:
		return fmt.Errorf("snapshot_url: unsupported scheme %q", u.Scheme)
	}

	if b.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be > 0 (got %v)", b.FetchTimeout)
	}
	return nil
}
