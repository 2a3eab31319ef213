package metrics

import (
	"time"
)

// RecordFeedPoll records metrics for a completed feed poll.
// This metric helps track discovery performance and feed activity.
// Discovered-URL counts are recorded separately by the callers, so a poll
// and a search batch feed the same counter.
func RecordFeedPoll(feedName string, duration time.Duration, itemsFound int) {
	FeedPollDuration.WithLabelValues(feedName).Observe(duration.Seconds())
}

// RecordFeedPollError records an error during feed polling.
func RecordFeedPollError(feedName, errorType string) {
	FeedPollErrors.WithLabelValues(feedName, errorType).Inc()
}

// RecordURLsDiscovered records the number of URLs discovered from a source type.
// Source type should be either "rss" or "newsapi".
func RecordURLsDiscovered(sourceType string, count int) {
	URLsDiscoveredTotal.WithLabelValues(sourceType).Add(float64(count))
}

// RecordURLDeduplicated records a URL dropped because an earlier source already found it.
func RecordURLDeduplicated() {
	URLsDeduplicatedTotal.Inc()
}

// RecordURLRejected records a discovered URL rejected by validation.
func RecordURLRejected() {
	URLsRejectedTotal.Inc()
}

// RecordNewsAPIBatch records the result of one NewsAPI search batch.
// Status is "success" for HTTP 200 responses and "failure" otherwise.
func RecordNewsAPIBatch(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	NewsAPIBatchesTotal.WithLabelValues(status).Inc()
}

// RecordContentFetchSuccess records a successful content fetch operation.
// This tracks both the duration and size of fetched content.
//
// Parameters:
//   - duration: Time taken to fetch the content
//   - size: Size of fetched content in bytes
//
// Example:
//
//	start := time.Now()
//	doc, err := fetcher.Fetch(ctx, url)
//	if err == nil {
//	    RecordContentFetchSuccess(time.Since(start), len(doc.FullText))
//	}
func RecordContentFetchSuccess(duration time.Duration, size int) {
	ContentFetchAttemptsTotal.WithLabelValues("success").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
	ContentFetchSize.Observe(float64(size))
}

// RecordContentFetchFailed records a failed content fetch operation.
//
// Parameters:
//   - duration: Time taken before the fetch failed
//
// Example:
//
//	start := time.Now()
//	_, err := fetcher.Fetch(ctx, url)
//	if err != nil {
//	    RecordContentFetchFailed(time.Since(start))
//	}
func RecordContentFetchFailed(duration time.Duration) {
	ContentFetchAttemptsTotal.WithLabelValues("failure").Inc()
	ContentFetchDuration.Observe(duration.Seconds())
}

// RecordExtraction records which extraction method produced the document text.
// Method should be one of "json_ld", "readability", "raw_text", or "none".
func RecordExtraction(method string) {
	ExtractionsTotal.WithLabelValues(method).Inc()
}

// RecordDocumentProcessed records the outcome of processing one discovered URL.
// Result should be one of "matched", "unmatched", or "fetch_failed".
func RecordDocumentProcessed(result string) {
	DocumentsProcessedTotal.WithLabelValues(result).Inc()
}

// RecordMatchedRecord records a document that matched at least one signal,
// along with the keyword categories it hit.
func RecordMatchedRecord(categories []string) {
	MatchedRecordsTotal.Inc()
	for _, category := range categories {
		CategoryMatchesTotal.WithLabelValues(category).Inc()
	}
}

// UpdateOutputRecords updates the gauge tracking how many records the most
// recent pipeline run wrote.
func UpdateOutputRecords(count int) {
	OutputRecords.Set(float64(count))
}

// RecordPipelineRun records the outcome and duration of a full pipeline run.
func RecordPipelineRun(success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	PipelineRunsTotal.WithLabelValues(status).Inc()
	PipelineDuration.Observe(duration.Seconds())
}
