package slo

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SLO targets define the service level objectives for the pipeline.
// These targets are used to measure and monitor acquisition reliability.
const (
	// FeedSuccessSLO defines the target ratio of feed polls that succeed (0.99 tolerates brief outages)
	FeedSuccessSLO = 0.99

	// FetchSuccessSLO defines the target ratio of document fetches that succeed
	FetchSuccessSLO = 0.95

	// RunDurationSLO defines the target wall-clock time for a full pipeline run in seconds (10 minutes)
	RunDurationSLO = 600.0

	// MatchYieldSLO defines the minimum expected ratio of processed documents that match a signal
	MatchYieldSLO = 0.01
)

// SLO tracking metrics
// These gauges are updated at the end of each pipeline run based on run statistics
// to track whether the pipeline is meeting its SLO targets.
var (
	// SLOFeedSuccess tracks the feed poll success ratio (0-1) of the last run
	// calculated as: successful_polls / total_polls
	SLOFeedSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_feed_success_ratio",
			Help: "Feed poll success ratio (0-1) of the last run, target: 0.99",
		},
	)

	// SLOFetchSuccess tracks the document fetch success ratio (0-1) of the last run
	// calculated as: fetched_documents / discovered_urls
	SLOFetchSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_fetch_success_ratio",
			Help: "Document fetch success ratio (0-1) of the last run, target: 0.95",
		},
	)

	// SLORunDuration tracks the wall-clock duration in seconds of the last run
	SLORunDuration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_run_duration_seconds",
			Help: "Wall-clock duration of the last pipeline run in seconds, target: 600",
		},
	)

	// SLOMatchYield tracks the ratio (0-1) of processed documents that matched a signal
	// calculated as: matched_documents / processed_documents
	SLOMatchYield = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slo_match_yield_ratio",
			Help: "Ratio of processed documents that matched a signal (0-1), target: 0.01",
		},
	)
)

// UpdateFeedSuccess updates the feed poll success SLO metric.
// Call this at the end of a run with the calculated success ratio.
//
// Example calculation:
//
//	totalPolls := stats.FeedsPolled
//	failedPolls := stats.FeedErrors
//	ratio := float64(totalPolls-failedPolls) / float64(totalPolls)
//	slo.UpdateFeedSuccess(ratio)
func UpdateFeedSuccess(ratio float64) {
	SLOFeedSuccess.Set(ratio)
}

// UpdateFetchSuccess updates the document fetch success SLO metric.
// Call this at the end of a run with the calculated success ratio.
//
// Example calculation:
//
//	processed := stats.Processed
//	failed := stats.FetchFailed
//	ratio := float64(processed-failed) / float64(processed)
//	slo.UpdateFetchSuccess(ratio)
func UpdateFetchSuccess(ratio float64) {
	SLOFetchSuccess.Set(ratio)
}

// UpdateRunDuration updates the run duration SLO metric.
// Call this at the end of a run with the measured wall-clock duration in seconds.
func UpdateRunDuration(seconds float64) {
	SLORunDuration.Set(seconds)
}

// UpdateMatchYield updates the match yield SLO metric.
// Call this at the end of a run with the calculated yield ratio.
//
// Example calculation:
//
//	ratio := float64(stats.Matched) / float64(stats.Processed)
//	slo.UpdateMatchYield(ratio)
func UpdateMatchYield(ratio float64) {
	SLOMatchYield.Set(ratio)
}
