// Package handlers serves the site's pages over HTTP.
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/version"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/apperror"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

// Page keys double as cache keys and the page metric label.
const (
	pageHome  = "home"
	pageAbout = "about"
)

// PageRenderer renders complete documents.
type PageRenderer interface {
	Home(ctx context.Context) ([]byte, error)
	About(ctx context.Context) ([]byte, error)
	NotFound() []byte
	Error() []byte
}

// PageCache reuses rendered documents for a revalidation window.
type PageCache interface {
	Render(ctx context.Context, key string, fn func(context.Context) ([]byte, error)) ([]byte, bool, error)
	Window() time.Duration
}

type Handler struct {
	pages   PageRenderer
	cache   PageCache
	log     *slog.Logger
	startAt time.Time
}

func NewHandler(pages PageRenderer, cache PageCache, log *slog.Logger) *Handler {
	return &Handler{
		pages:   pages,
		cache:   cache,
		log:     log.With(logger.Scope("handlers")),
		startAt: time.Now(),
	}
}

// Home serves /.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, pageHome, h.pages.Home)
}

// About serves /about. A missing about page renders the not-found page.
func (h *Handler) About(w http.ResponseWriter, r *http.Request) {
	h.servePage(w, r, pageAbout, h.pages.About)
}

// NotFound serves every unknown path.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	writeHTML(w, http.StatusNotFound, h.pages.NotFound())
}

func (h *Handler) servePage(w http.ResponseWriter, r *http.Request, key string, render func(context.Context) ([]byte, error)) {
	body, hit, err := h.cache.Render(r.Context(), key, render)
	if err != nil {
		h.fail(w, r, key, err)
		return
	}

	w.Header().Set("Cache-Control", fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate", int(h.cache.Window().Seconds())))
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeHTML(w, http.StatusOK, body)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, key string, err error) {
	w.Header().Set("Cache-Control", "no-store")

	if apperror.IsNotFound(err) {
		h.log.Info("page not found", slog.String("page", key), slog.String("reason", err.Error()))
		writeHTML(w, http.StatusNotFound, h.pages.NotFound())
		return
	}

	h.log.Error("page render failed",
		slog.String("page", key),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		logger.Error(err),
	)
	writeHTML(w, http.StatusInternalServerError, h.pages.Error())
}

// HealthResponse is the body of /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
	version.Info
}

// Health reports liveness. It never touches the content store.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	resp := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(h.startAt).Round(time.Second).String(),
		Info:      version.Get(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
