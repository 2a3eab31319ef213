// Package tracing provides OpenTelemetry tracing integration.
//
// Spans cover pipeline stages (discover, process, write) and individual
// document processing, so a single run can be inspected end to end in any
// OpenTelemetry-compatible backend. Without a configured tracer provider
// all spans are no-ops, which keeps the default one-shot CLI run cheap.
//
// Example usage:
//
//	import "signal-scout/internal/observability/tracing"
//
//	func runDiscovery(ctx context.Context) error {
//	    ctx, span := tracing.StartStage(ctx, "discover")
//	    defer span.End()
//	    // ... poll feeds ...
//	    return nil
//	}
package tracing
