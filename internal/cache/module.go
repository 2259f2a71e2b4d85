package cache

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
)

var Module = fx.Module("cache",
	fx.Provide(
		newStore,
		newPageCacheFromConfig,
	),
)

func newStore(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (Store, error) {
	if !cfg.Cache.UseRedis() {
		log.Info("page cache in memory")
		return NewMemoryStore(), nil
	}

	client, err := NewRedisClient(cfg.Cache.RedisAddress, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	log.Info("page cache in redis", slog.String("address", cfg.Cache.RedisAddress))
	return NewRedisStore(client), nil
}

func newPageCacheFromConfig(store Store, cfg *config.Config, log *slog.Logger) *PageCache {
	return NewPageCache(store, cfg.Cache.Revalidate, log)
}
