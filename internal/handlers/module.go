package handlers

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/cache"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/pages"
)

var Module = fx.Module("handlers",
	fx.Provide(newHandler),
	fx.Invoke(RegisterRoutes),
)

func newHandler(renderer *pages.Renderer, pageCache *cache.PageCache, log *slog.Logger) *Handler {
	return NewHandler(renderer, pageCache, log)
}
