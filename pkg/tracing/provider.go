package tracing

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/fx"

	"github.com/cosmic-community/intellect-mental-health-platform/internal/config"
	"github.com/cosmic-community/intellect-mental-health-platform/pkg/logger"
)

// Module installs the global TracerProvider used by Start.
var Module = fx.Module("tracing",
	fx.Provide(NewTracerProvider),
	fx.Invoke(registerLifecycle),
)

// NewTracerProvider registers an OTLP provider when an endpoint is configured
// and a no-op provider otherwise. The returned SDK provider is nil when
// tracing is off.
func NewTracerProvider(cfg *config.Config, log *slog.Logger) (*sdktrace.TracerProvider, error) {
	oc := cfg.Otel
	log = log.With(logger.Scope("tracing"))

	if !oc.Enabled() {
		log.Info("tracing disabled (OTEL_EXPORTER_OTLP_ENDPOINT not set)")
		otel.SetTracerProvider(noop.NewTracerProvider())
		return nil, nil
	}

	exp, err := otlptracehttp.New(
		context.Background(),
		otlptracehttp.WithEndpointURL(oc.ExporterEndpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	res, err := resource.New(context.Background(),
		resource.WithSchemaURL(semconv.SchemaURL),
		resource.WithAttributes(semconv.ServiceName(oc.ServiceName)),
		resource.WithFromEnv(),
	)
	if err != nil {
		log.Warn("trace resource detection failed", logger.Error(err))
		res = resource.Empty()
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler(oc.SamplingRate)),
	)
	otel.SetTracerProvider(tp)

	log.Info("tracing enabled",
		slog.String("endpoint", oc.ExporterEndpoint),
		slog.String("service", oc.ServiceName),
		slog.Float64("sampling_rate", oc.SamplingRate),
	)
	return tp, nil
}

func sampler(rate float64) sdktrace.Sampler {
	if rate >= 1.0 {
		return sdktrace.AlwaysSample()
	}
	return sdktrace.TraceIDRatioBased(rate)
}

func registerLifecycle(lc fx.Lifecycle, tp *sdktrace.TracerProvider) {
	if tp == nil {
		return
	}
	lc.Append(fx.Hook{
		OnStop: tp.Shutdown,
	})
}
