package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Presets accepted by SITE_PRESET.
const (
	PresetMinimal   = "minimal"
	PresetDecorated = "decorated"
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`

	// Content store credentials and endpoint
	Cosmic CosmicConfig

	// Page output cache
	Cache CacheConfig

	// Site presentation
	Site SiteConfig

	// Trace export
	Otel OtelConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// CosmicConfig holds the headless CMS bucket settings. All three credentials
// are required even though nothing in the site writes.
type CosmicConfig struct {
	BucketSlug string        `env:"COSMIC_BUCKET_SLUG,required,notEmpty"`
	ReadKey    string        `env:"COSMIC_READ_KEY,required,notEmpty"`
	WriteKey   string        `env:"COSMIC_WRITE_KEY,required,notEmpty"`
	APIURL     string        `env:"COSMIC_API_URL" envDefault:"https://api.cosmicjs.com/v3"`
	Timeout    time.Duration `env:"COSMIC_TIMEOUT" envDefault:"30s"`
}

// CacheConfig controls how long rendered pages are reused.
type CacheConfig struct {
	// Revalidate is the window after which a cached page is regenerated
	Revalidate time.Duration `env:"PAGE_REVALIDATE" envDefault:"1h"`

	// Redis settings; an empty address keeps the cache in process memory
	RedisAddress  string `env:"REDIS_ADDRESS"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
}

// UseRedis returns true if a shared redis cache is configured
func (c *CacheConfig) UseRedis() bool {
	return c.RedisAddress != ""
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Name   string `env:"SITE_NAME" envDefault:"Intellect"`
	Preset string `env:"SITE_PRESET" envDefault:"decorated"`
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// Validate checks the settings env tags cannot express.
func (c *Config) Validate() error {
	var errs []error
	if c.Site.Preset != PresetMinimal && c.Site.Preset != PresetDecorated {
		errs = append(errs, fmt.Errorf("SITE_PRESET must be %q or %q, got %q", PresetMinimal, PresetDecorated, c.Site.Preset))
	}
	if c.Cache.Revalidate <= 0 {
		errs = append(errs, fmt.Errorf("PAGE_REVALIDATE must be positive, got %s", c.Cache.Revalidate))
	}
	if c.Otel.SamplingRate < 0 || c.Otel.SamplingRate > 1 {
		errs = append(errs, fmt.Errorf("OTEL_SAMPLING_RATE must be between 0 and 1, got %g", c.Otel.SamplingRate))
	}
	if c.Cosmic.Timeout < 0 {
		errs = append(errs, fmt.Errorf("COSMIC_TIMEOUT must not be negative, got %s", c.Cosmic.Timeout))
	}
	return errors.Join(errs...)
}

// Parse reads configuration with the given env options and validates it.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig loads configuration from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse(env.Options{})
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.String("bucket", cfg.Cosmic.BucketSlug),
		slog.String("preset", cfg.Site.Preset),
		slog.Duration("revalidate", cfg.Cache.Revalidate),
		slog.Bool("redis_cache", cfg.Cache.UseRedis()),
	)

	return cfg, nil
}
