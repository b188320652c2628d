package userauth

import (
	"time"

	"github.com/caarlos0/env/v11"
	goerrors "github.com/goliatone/go-errors"
)

// Config holds the process-wide settings: signing secret, token issuer, and
// the distinct audience identifiers for access and refresh tokens. It is
// loaded once at startup and passed by reference; nothing reads the
// environment during request handling.
type Config struct {
	Address     string `env:"HTTP_ADDR" envDefault:":8080"`
	DatabaseDSN string `env:"DATABASE_DSN" envDefault:"file:userauth.db?cache=shared"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`

	SigningKey string        `env:"JWT_SECRET"`
	Issuer     string        `env:"JWT_ISS" envDefault:"userauth"`
	AccessAud  string        `env:"JWT_ACCESS_AUD" envDefault:"userauth:access"`
	RefreshAud string        `env:"JWT_REFRESH_AUD" envDefault:"userauth:refresh"`
	AccessTTL  time.Duration `env:"JWT_ACCESS_TTL" envDefault:"10m"`
	RefreshTTL time.Duration `env:"JWT_REFRESH_TTL" envDefault:"168h"`
}

var _ TokenConfig = (*Config)(nil)

// LoadConfig parses configuration from the environment and validates it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "could not parse environment configuration")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate enforces the startup invariants. The audiences must differ or
// the access/refresh separation stops meaning anything.
func (c *Config) Validate() error {
	if c.SigningKey == "" {
		return goerrors.New("JWT_SECRET must be set", goerrors.CategoryBadInput)
	}
	if c.AccessAud == "" || c.RefreshAud == "" {
		return goerrors.New("token audiences must be set", goerrors.CategoryBadInput)
	}
	if c.AccessAud == c.RefreshAud {
		return goerrors.New("access and refresh token audiences must differ", goerrors.CategoryBadInput)
	}
	if c.AccessTTL <= 0 || c.RefreshTTL <= 0 {
		return goerrors.New("token lifetimes must be positive", goerrors.CategoryBadInput)
	}
	return nil
}

// GetSigningKey satisfies TokenConfig.
func (c *Config) GetSigningKey() string { return c.SigningKey }

// GetIssuer satisfies TokenConfig.
func (c *Config) GetIssuer() string { return c.Issuer }

// GetAccessAudience satisfies TokenConfig.
func (c *Config) GetAccessAudience() string { return c.AccessAud }

// GetRefreshAudience satisfies TokenConfig.
func (c *Config) GetRefreshAudience() string { return c.RefreshAud }

// GetAccessTTL satisfies TokenConfig.
func (c *Config) GetAccessTTL() time.Duration { return c.AccessTTL }

// GetRefreshTTL satisfies TokenConfig.
func (c *Config) GetRefreshTTL() time.Duration { return c.RefreshTTL }
