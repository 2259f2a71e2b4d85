package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

func TestStartAndFail(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	_, span := Start(context.Background(), "content.list", attribute.String("content.category", "statistics"))
	Fail(span, errors.New("failed to fetch statistics"))
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "content.list", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "failed to fetch statistics", spans[0].Status().Description)
	assert.Contains(t, spans[0].Attributes(), attribute.String("content.category", "statistics"))
}

func TestNewTracerProvider_Disabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	tp, err := NewTracerProvider(&config.Config{}, logger.Discard())
	require.NoError(t, err)
	assert.Nil(t, tp)
}

func TestNewTracerProvider_Enabled(t *testing.T) {
	prev := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	cfg := &config.Config{Otel: config.OtelConfig{
		ExporterEndpoint: "http://127.0.0.1:4318",
		ServiceName:      "intellect-website",
		SamplingRate:     0.5,
	}}

	tp, err := NewTracerProvider(cfg, logger.Discard())
	require.NoError(t, err)
	require.NotNil(t, tp)
	assert.Same(t, tp, otel.GetTracerProvider())
	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestSampler(t *testing.T) {
	assert.Equal(t, sdktrace.AlwaysSample().Description(), sampler(1).Description())
	assert.Contains(t, sampler(0.25).Description(), "TraceIDRatioBased")
}
