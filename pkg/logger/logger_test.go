package logger

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	attr := Scope("cosmic")
	assert.Equal(t, "scope", attr.Key)
	assert.Equal(t, "cosmic", attr.Value.String())
}

func TestError(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"simple error", errors.New("store unavailable")},
		{"nil error", nil},
		{"joined error", errors.Join(errors.New("outer"), errors.New("inner"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Error(tt.err)
			assert.Equal(t, "error", attr.Key)
			assert.Equal(t, tt.err, attr.Value.Any())
		})
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  slog.Level
		disabled *slog.Level
	}{
		{name: "default is info", level: "", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
		{name: "debug", level: "debug", enabled: slog.LevelDebug},
		{name: "mixed case debug", level: "dEbUg", enabled: slog.LevelDebug},
		{name: "warn", level: "warn", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{name: "warning alias", level: "warning", enabled: slog.LevelWarn, disabled: ptr(slog.LevelInfo)},
		{name: "error", level: "error", enabled: slog.LevelError, disabled: ptr(slog.LevelWarn)},
		{name: "invalid falls back to info", level: "loud", enabled: slog.LevelInfo, disabled: ptr(slog.LevelDebug)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOG_LEVEL", tt.level)
			t.Setenv("GO_ENV", "")

			log := NewLogger()
			ctx := context.Background()

			assert.True(t, log.Enabled(ctx, tt.enabled))
			if tt.disabled != nil {
				assert.False(t, log.Enabled(ctx, *tt.disabled))
			}
		})
	}
}

func TestNewLogger_ProductionJSON(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GO_ENV", "production")

	log := NewLogger()

	_, isJSON := log.Handler().(*slog.JSONHandler)
	assert.True(t, isJSON, "production logger should use the JSON handler")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}

func ptr(l slog.Level) *slog.Level { return &l }
