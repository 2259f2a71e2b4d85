package pages

import (
	"bytes"
	"context"
	"log/slog"

	"go.uber.org/fx"
	g "maragu.dev/gomponents"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/components"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/internal/content"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/apperror"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

var Module = fx.Module("pages",
	fx.Provide(
		newSource,
		NewHome,
		NewAbout,
		NewRendererFromConfig,
	),
)

func newSource(repo *content.Repository) Source {
	return repo
}

// Renderer turns loaded pages into complete HTML documents.
type Renderer struct {
	home  *Home
	about *About
	site  components.Site
	log   *slog.Logger
}

func NewRenderer(home *Home, about *About, site components.Site, log *slog.Logger) *Renderer {
	return &Renderer{home: home, about: about, site: site, log: log}
}

func NewRendererFromConfig(home *Home, about *About, cfg *config.Config, log *slog.Logger) *Renderer {
	return NewRenderer(home, about, components.Site{
		Name:   cfg.Site.Name,
		Preset: components.ParsePreset(cfg.Site.Preset),
	}, log)
}

// Home renders the homepage.
func (r *Renderer) Home(ctx context.Context) ([]byte, error) {
	home, err := r.home.Load(ctx)
	if err != nil {
		return nil, err
	}
	return renderNode(components.HomePage(r.site, *home))
}

// About renders the about page, or returns a not-found error when the page
// record is absent.
func (r *Renderer) About(ctx context.Context) ([]byte, error) {
	page, err := r.about.Load(ctx)
	if err != nil {
		return nil, err
	}
	return renderNode(components.AboutPage(r.site, *page))
}

// NotFound renders the 404 page.
func (r *Renderer) NotFound() []byte {
	return r.mustRender(components.NotFoundPage(r.site))
}

// Error renders the generic failure page.
func (r *Renderer) Error() []byte {
	return r.mustRender(components.ErrorPage(r.site))
}

func (r *Renderer) mustRender(node g.Node) []byte {
	body, err := renderNode(node)
	if err != nil {
		r.log.Error("static page render failed", logger.Error(err))
		return []byte("<!DOCTYPE html><title>Error</title>")
	}
	return body
}

func renderNode(node g.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := node.Render(&buf); err != nil {
		return nil, apperror.NewInternal("render page", err)
	}
	return buf.Bytes(), nil
}
