// Package cache keeps rendered pages for the revalidation window so repeated
// requests do not refetch content.
package cache

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

// Store holds rendered page bodies. A missing or expired key is reported as
// ok == false with a nil error.
type Store interface {
	Get(ctx context.Context, key string) (body []byte, ok bool, err error)
	Set(ctx context.Context, key string, body []byte, ttl time.Duration) error
}

// RenderFunc produces a page body.
type RenderFunc = func(ctx context.Context) ([]byte, error)

// PageCache serves rendered pages from a Store and regenerates them once the
// revalidation window has passed.
type PageCache struct {
	store  Store
	window time.Duration
	group  singleflight.Group
	log    *slog.Logger
}

func NewPageCache(store Store, window time.Duration, log *slog.Logger) *PageCache {
	return &PageCache{
		store:  store,
		window: window,
		log:    log.With(logger.Scope("cache")),
	}
}

// Window returns the revalidation window.
func (c *PageCache) Window() time.Duration {
	return c.window
}

// Render returns the cached body for key when one is still fresh. Otherwise
// it runs fn, with concurrent callers for the same key sharing one run, and
// stores the result. Failed renders are returned but never stored.
func (c *PageCache) Render(ctx context.Context, key string, fn RenderFunc) ([]byte, bool, error) {
	body, ok, err := c.store.Get(ctx, key)
	switch {
	case err != nil:
		// A broken store degrades to rendering every request.
		c.log.Warn("page cache read failed", slog.String("key", key), logger.Error(err))
		PageCacheTotal.WithLabelValues(key, resultError).Inc()
	case ok:
		PageCacheTotal.WithLabelValues(key, resultHit).Inc()
		return body, true, nil
	}

	// The run is shared, so one caller going away must not cancel it.
	shared := context.WithoutCancel(ctx)
	v, err, joined := c.group.Do(key, func() (any, error) {
		body, err := fn(shared)
		if err != nil {
			return nil, err
		}
		if err := c.store.Set(shared, key, body, c.window); err != nil {
			c.log.Warn("page cache write failed", slog.String("key", key), logger.Error(err))
		}
		return body, nil
	})
	if err != nil {
		PageCacheTotal.WithLabelValues(key, resultFailed).Inc()
		return nil, false, err
	}

	PageCacheTotal.WithLabelValues(key, resultMiss).Inc()
	c.log.Debug("page rendered", slog.String("key", key), slog.Bool("shared", joined))
	return v.([]byte), false, nil
}
