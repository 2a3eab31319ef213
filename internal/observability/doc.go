// Package observability provides production-grade observability infrastructure
// including structured logging, Prometheus metrics, and OpenTelemetry tracing.
//
// This package centralizes observability concerns to enable:
//   - Run correlation across pipeline stages via run IDs
//   - Structured logging with context propagation
//   - Prometheus metrics for monitoring
//   - Stage-level tracing of discovery, fetching, and matching
//
// Subpackages:
//   - logging: Structured logging utilities with slog
//   - metrics: Prometheus metrics registry and recorders
//   - runid: Run ID generation and context propagation
//   - slo: Service level objective gauges for run quality
//   - tracing: OpenTelemetry tracing integration
//
// Example usage:
//
//	import (
//	    "signal-scout/internal/observability/logging"
//	    "signal-scout/internal/observability/metrics"
//	)
//
//	func main() {
//	    logger := logging.NewLogger()
//	    logger.Info("run started")
//
//	    metrics.RecordFeedPoll("example-feed", time.Second, 10)
//	}
package observability
