// Package tracing provides the OTel tracer helper used by the content layer.
//
// When no TracerProvider is registered the global no-op provider is used and
// every call is inert.
package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "intellect-website"

// Start creates a span as a child of the span in ctx. The caller must call
// span.End().
//
//	ctx, span := tracing.Start(ctx, "content.fetch",
//	    attribute.String("content.category", "statistics"),
//	)
//	defer span.End()
func Start(ctx context.Context, spanName string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, spanName, trace.WithAttributes(attrs...))
}

// Fail records err on span and marks it as errored.
func Fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
