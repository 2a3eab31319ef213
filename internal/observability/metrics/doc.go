// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - Discovery metrics (feed polls, URL counts, deduplication)
//   - Content metrics (fetch attempts, extraction methods, sizes)
//   - Matching metrics (processed documents, matched records, categories)
//   - Pipeline metrics (run counts, stage durations)
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "signal-scout/internal/observability/metrics"
//
//	func pollFeed(feedName string) {
//	    start := time.Now()
//	    // ... poll the feed ...
//	    found := 10
//
//	    metrics.RecordFeedPoll(feedName, time.Since(start), found)
//	}
package metrics
