// Package server builds the chi router and runs the HTTP server under the fx
// lifecycle.
package server

import (
	"context"
	"embed"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

//go:embed static
var staticFS embed.FS

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// NewRouter creates the router with the middleware stack and static assets.
// Page routes are registered on it afterwards.
func NewRouter(log *slog.Logger) (*chi.Mux, error) {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.RequestLogger(newRequestLogFormatter(log, "/health")),
		middleware.Recoverer,
	)

	static, err := Static()
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return r, nil
}

// requestLogFormatter turns chi's request log entries into slog records.
// Paths in skip are not logged.
type requestLogFormatter struct {
	log  *slog.Logger
	skip map[string]bool
}

func newRequestLogFormatter(log *slog.Logger, skip ...string) *requestLogFormatter {
	f := &requestLogFormatter{
		log:  log.With(logger.Scope("http")),
		skip: make(map[string]bool, len(skip)),
	}
	for _, p := range skip {
		f.skip[p] = true
	}
	return f
}

func (f *requestLogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	log := f.log.With(slog.String("request_id", middleware.GetReqID(r.Context())))
	return &requestLogEntry{
		log:    log,
		method: r.Method,
		uri:    r.RequestURI,
		quiet:  f.skip[r.URL.Path],
	}
}

type requestLogEntry struct {
	log    *slog.Logger
	method string
	uri    string
	quiet  bool
}

func (e *requestLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if e.quiet {
		return
	}
	if status == 0 {
		status = http.StatusOK
	}
	attrs := []any{
		slog.String("method", e.method),
		slog.String("uri", e.uri),
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.Duration("latency", elapsed),
	}
	if status >= http.StatusInternalServerError {
		e.log.Error("request failed", attrs...)
		return
	}
	e.log.Info("request", attrs...)
}

// Panic is called by middleware.Recoverer, so panics are logged even on
// skipped paths.
func (e *requestLogEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic recovered",
		slog.String("method", e.method),
		slog.String("uri", e.uri),
		slog.Any("panic", v),
		slog.String("stack", string(stack)),
	)
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("starting HTTP server",
				slog.String("address", server.Addr),
				slog.String("environment", cfg.Environment),
				slog.String("preset", cfg.Site.Preset),
			)

			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}

// Static returns the embedded static assets rooted at the static directory.
func Static() (fs.FS, error) {
	return fs.Sub(staticFS, "static")
}
