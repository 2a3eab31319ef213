package tracing

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StartStage starts a span covering one pipeline stage.
// Stage names are short verbs such as "discover", "process", or "write".
//
// The returned context carries the span so that nested operations
// (per-feed polls, per-document fetches) become child spans.
//
// Example usage:
//
//	ctx, span := tracing.StartStage(ctx, "discover")
//	defer span.End()
func StartStage(ctx context.Context, stage string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pipeline."+stage,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)
}

// StartDocument starts a span covering the processing of a single discovered URL.
// The URL is recorded as a span attribute.
func StartDocument(ctx context.Context, url string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "pipeline.document",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.String("document.url", url)),
	)
}

// EndWithError finishes a span, marking it as failed when err is non-nil.
// Failed spans carry an error attribute and the error message so that
// per-document failures are visible in trace backends.
func EndWithError(span trace.Span, err error) {
	if err != nil {
		span.SetAttributes(
			attribute.Bool("error", true),
			attribute.String("error.message", err.Error()),
		)
	}
	span.End()
}
