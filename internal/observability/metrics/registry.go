// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Discovery metrics track feed polling and URL collection
var (
	// FeedPollDuration measures time to poll a single RSS/Atom feed
	FeedPollDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feed_poll_duration_seconds",
			Help:    "Time taken to poll a feed",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		},
		[]string{"feed"},
	)

	// FeedPollErrors counts errors during feed polling
	FeedPollErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_poll_errors_total",
			Help: "Total number of feed poll errors",
		},
		[]string{"feed", "error_type"},
	)

	// URLsDiscoveredTotal counts URLs discovered per source type
	URLsDiscoveredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "urls_discovered_total",
			Help: "Total number of article URLs discovered",
		},
		[]string{"source_type"}, // source_type: rss, newsapi
	)

	// URLsDeduplicatedTotal counts URLs dropped because they were already discovered
	URLsDeduplicatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_deduplicated_total",
			Help: "Total number of duplicate URLs collapsed during discovery",
		},
	)

	// URLsRejectedTotal counts discovered URLs rejected by validation
	URLsRejectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "urls_rejected_total",
			Help: "Total number of discovered URLs rejected as invalid or unsafe",
		},
	)

	// NewsAPIBatchesTotal counts NewsAPI search batches by outcome
	NewsAPIBatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "newsapi_batches_total",
			Help: "Total number of NewsAPI search batches issued",
		},
		[]string{"status"}, // status: success, failure
	)
)

// Content metrics track document fetching and text extraction
var (
	// ContentFetchAttemptsTotal counts content fetch attempts by result
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of content fetch attempts",
		},
		[]string{"result"}, // result: success, failure
	)

	// ContentFetchDuration measures time to fetch article content
	ContentFetchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "content_fetch_duration_seconds",
			Help:    "Time taken to fetch article content",
			Buckets: []float64{0.1, 0.2, 0.4, 0.8, 1.6, 3.2, 6.4, 12.8},
		},
	)

	// ContentFetchSize measures fetched content size in bytes
	ContentFetchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "content_fetch_size_bytes",
			Help: "Fetched article content size in bytes",
			Buckets: []float64{
				100, 200, 400, 800, 1600, 3200, 6400, 12800,
				25600, 51200, 102400, 204800, 409600, 819200,
				1638400, 3276800, 6553600, 10485760, // up to 10MB
			},
		},
	)

	// ExtractionsTotal counts text extractions by the method that produced the text
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "extractions_total",
			Help: "Total number of text extractions by method",
		},
		[]string{"method"}, // method: json_ld, readability, raw_text, none
	)
)

// Matching metrics track signal matching outcomes
var (
	// DocumentsProcessedTotal counts documents processed by outcome
	DocumentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_processed_total",
			Help: "Total number of documents processed",
		},
		[]string{"result"}, // result: matched, unmatched, fetch_failed
	)

	// MatchedRecordsTotal counts documents that matched at least one signal
	MatchedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "matched_records_total",
			Help: "Total number of documents that produced a match record",
		},
	)

	// CategoryMatchesTotal counts matches per keyword category
	CategoryMatchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "category_matches_total",
			Help: "Total number of matches per keyword category",
		},
		[]string{"category"},
	)
)

// Pipeline metrics track end-to-end run behavior
var (
	// PipelineRunsTotal counts pipeline runs by outcome
	PipelineRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_runs_total",
			Help: "Total number of pipeline runs",
		},
		[]string{"status"}, // status: success, failure
	)

	// PipelineDuration measures wall-clock time of a full pipeline run
	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pipeline_duration_seconds",
			Help:    "Wall-clock duration of a full pipeline run",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	// StageDuration measures the duration of each pipeline stage
	StageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		},
		[]string{"stage"},
	)

	// OutputRecords tracks the number of records written by the most recent run
	OutputRecords = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "output_records",
			Help: "Number of match records written by the most recent pipeline run",
		},
	)
)

// RecordStageDuration records the duration of a named pipeline stage
func RecordStageDuration(stage string, duration time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}
