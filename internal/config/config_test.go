package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseEnv() map[string]string {
	return map[string]string{
		"COSMIC_BUCKET_SLUG": "intellect-site",
		"COSMIC_READ_KEY":    "read-key",
		"COSMIC_WRITE_KEY":   "write-key",
	}
}

func TestParse_Defaults(t *testing.T) {
	cfg, err := Parse(env.Options{Environment: baseEnv()})
	require.NoError(t, err)

	assert.Equal(t, 4002, cfg.ServerPort)
	assert.Equal(t, "0.0.0.0:4002", cfg.Addr())
	assert.Equal(t, "https://api.cosmicjs.com/v3", cfg.Cosmic.APIURL)
	assert.Equal(t, 30*time.Second, cfg.Cosmic.Timeout)
	assert.Equal(t, time.Hour, cfg.Cache.Revalidate)
	assert.False(t, cfg.Cache.UseRedis())
	assert.Equal(t, PresetDecorated, cfg.Site.Preset)
	assert.Equal(t, "Intellect", cfg.Site.Name)
	assert.False(t, cfg.Otel.Enabled())
	assert.Equal(t, "intellect-website", cfg.Otel.ServiceName)
	assert.Equal(t, 1.0, cfg.Otel.SamplingRate)
}

func TestParse_RequiredCredentials(t *testing.T) {
	for _, key := range []string{"COSMIC_BUCKET_SLUG", "COSMIC_READ_KEY", "COSMIC_WRITE_KEY"} {
		t.Run("missing "+key, func(t *testing.T) {
			environ := baseEnv()
			delete(environ, key)

			_, err := Parse(env.Options{Environment: environ})
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})

		t.Run("empty "+key, func(t *testing.T) {
			environ := baseEnv()
			environ[key] = ""

			_, err := Parse(env.Options{Environment: environ})
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParse_Overrides(t *testing.T) {
	environ := baseEnv()
	environ["SERVER_PORT"] = "8080"
	environ["PAGE_REVALIDATE"] = "15m"
	environ["REDIS_ADDRESS"] = "redis:6379"
	environ["SITE_PRESET"] = "minimal"

	cfg, err := Parse(env.Options{Environment: environ})
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 15*time.Minute, cfg.Cache.Revalidate)
	assert.True(t, cfg.Cache.UseRedis())
	assert.Equal(t, PresetMinimal, cfg.Site.Preset)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown preset",
			mutate:  func(c *Config) { c.Site.Preset = "fancy" },
			wantErr: "SITE_PRESET",
		},
		{
			name:    "zero revalidate window",
			mutate:  func(c *Config) { c.Cache.Revalidate = 0 },
			wantErr: "PAGE_REVALIDATE",
		},
		{
			name:    "sampling rate above one",
			mutate:  func(c *Config) { c.Otel.SamplingRate = 1.5 },
			wantErr: "OTEL_SAMPLING_RATE",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Cosmic.Timeout = -time.Second },
			wantErr: "COSMIC_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Cache: CacheConfig{Revalidate: time.Hour},
				Site:  SiteConfig{Preset: PresetDecorated},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
