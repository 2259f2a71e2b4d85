package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

func TestNewRouter_ServesStaticAssets(t *testing.T) {
	r, err := NewRouter(logger.Discard())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")
	assert.Contains(t, rec.Body.String(), ".hero")
}

func TestNewRouter_RecoversPanics(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r, err := NewRouter(log)
	require.NoError(t, err)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), "request failed")
	assert.Contains(t, buf.String(), "status=500")
	assert.Contains(t, buf.String(), "stack=")
}

func TestRequestLogger_SkipsHealth(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r, err := NewRouter(log)
	require.NoError(t, err)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("hi")) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, buf.String(), "msg=request")
	assert.Contains(t, buf.String(), "method=GET")
	assert.Contains(t, buf.String(), "uri=/")
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), "bytes=2")
	assert.Contains(t, buf.String(), "scope=http")
}

func TestRequestLogger_AttachesRequestID(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r, err := NewRouter(log)
	require.NoError(t, err)
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), "request_id=req-42")
	assert.Contains(t, buf.String(), "status=204")
}

func TestRequestLogEntry_PanicOnSkippedPath(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	r, err := NewRouter(log)
	require.NoError(t, err)
	r.Get("/health", func(http.ResponseWriter, *http.Request) { panic("unhealthy") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, buf.String(), "panic recovered")
	assert.NotContains(t, buf.String(), "request failed")
}
