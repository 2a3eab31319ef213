// Package pipeline drives one acquisition run end to end: discover candidate
// URLs from every configured source, fan out over them with a bounded worker
// pool, and collect a match record for each document that contains at least
// one keyword.
//
// The driver is deliberately forgiving. A dead feed, a failed search batch,
// an unreachable article, a page nothing can be extracted from - each costs
// exactly its own contribution and never the run. Only context cancellation
// stops the pool early, and even then the records collected so far are
// returned so the artifact can still be written.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/domain/match"
	"signal-scout/internal/infra/discovery"
	"signal-scout/internal/observability/metrics"
	"signal-scout/internal/observability/slo"
	"signal-scout/internal/observability/tracing"
	"signal-scout/internal/utils/text"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

// snippetLimit is the snippet length in runes carried on each match record.
const snippetLimit = 400

// FeedPoller retrieves one feed's recent entries as discovered URLs.
type FeedPoller interface {
	Poll(ctx context.Context, feedName, feedURL string) ([]entity.DiscoveredURL, error)
}

// NewsSearcher discovers URLs by querying a search API for the keyword list.
// Implementations return whatever they discovered even on error, so a run
// interrupted mid-search still processes the URLs found before the cut.
type NewsSearcher interface {
	Search(ctx context.Context, keywords []string) ([]entity.DiscoveredURL, error)
}

// PageFetcher downloads one article page and returns its raw HTML.
type PageFetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Extractor turns raw HTML into the plain-text document the matcher scans.
type Extractor interface {
	Extract(html string) entity.ExtractedDocument
}

// Feed names one RSS/Atom feed polled during discovery.
type Feed struct {
	Name string
	URL  string
}

// Config holds the run parameters the driver needs.
type Config struct {
	// Feeds is the feed list, polled in order.
	Feeds []Feed

	// MaxURLs caps how many discovered URLs are processed, for small debug
	// runs. 0 means no cap.
	MaxURLs int

	// Workers is the number of concurrent document workers. 1 degrades to
	// sequential processing with identical semantics.
	Workers int
}

// Service orchestrates a pipeline run.
type Service struct {
	poller    FeedPoller
	searcher  NewsSearcher // nil when search-based discovery is disabled
	fetcher   PageFetcher
	extractor Extractor
	matcher   *match.Matcher
	config    Config
}

// NewService creates a pipeline Service. searcher may be nil, which disables
// search-based discovery; every other collaborator is required.
func NewService(
	poller FeedPoller,
	searcher NewsSearcher,
	fetcher PageFetcher,
	extractor Extractor,
	matcher *match.Matcher,
	config Config,
) *Service {
	if config.Workers < 1 {
		// a zero-capacity semaphore would block the pool forever
		config.Workers = 1
	}
	return &Service{
		poller:    poller,
		searcher:  searcher,
		fetcher:   fetcher,
		extractor: extractor,
		matcher:   matcher,
		config:    config,
	}
}

// RunStats aggregates one run's counters. Workers update the int64 fields
// atomically; read them only after Run returns.
type RunStats struct {
	URLsDiscovered int64
	FeedsPolled    int64
	FeedsFailed    int64
	FetchFailed    int64
	ExtractEmpty   int64
	Unmatched      int64
	Matched        int64
	Duration       time.Duration
}

// Processed returns how many documents reached a terminal outcome.
func (s *RunStats) Processed() int64 {
	return s.FetchFailed + s.Unmatched + s.Matched
}

// Run executes one acquisition run and returns the collected match records
// together with the run's statistics. Run never fails: source and document
// errors are absorbed where they occur, and a cancelled context merely cuts
// the run short.
//
// Record order is worker completion order and is not stable across runs.
func (s *Service) Run(ctx context.Context) ([]entity.MatchRecord, *RunStats) {
	start := time.Now()
	stats := &RunStats{}

	ctx, span := tracing.StartStage(ctx, "run")
	defer span.End()

	registry := s.discover(ctx, stats)
	stats.URLsDiscovered = int64(registry.Len())

	urls := registry.Snapshot()
	if s.config.MaxURLs > 0 && len(urls) > s.config.MaxURLs {
		slog.Info("limiting processed URLs",
			slog.Int("discovered", len(urls)),
			slog.Int("max_urls", s.config.MaxURLs))
		urls = urls[:s.config.MaxURLs]
	}

	records := s.processAll(ctx, urls, stats)

	stats.Duration = time.Since(start)
	metrics.RecordPipelineRun(ctx.Err() == nil, stats.Duration)
	s.updateSLOs(stats)

	slog.Info("pipeline run completed",
		slog.Int64("urls_discovered", stats.URLsDiscovered),
		slog.Int64("matched", stats.Matched),
		slog.Int64("unmatched", stats.Unmatched),
		slog.Int64("fetch_failed", stats.FetchFailed),
		slog.Int64("extract_empty", stats.ExtractEmpty),
		slog.Duration("duration", stats.Duration))

	return records, stats
}

// discover runs every configured source sequentially into a fresh registry.
// Source failures are logged and skipped; a run with zero discovered URLs is
// still a valid run.
func (s *Service) discover(ctx context.Context, stats *RunStats) *discovery.Registry {
	ctx, span := tracing.StartStage(ctx, "discover")
	defer span.End()

	registry := discovery.NewRegistry()

	for _, feed := range s.config.Feeds {
		stats.FeedsPolled++
		urls, err := s.poller.Poll(ctx, feed.Name, feed.URL)
		if err != nil {
			stats.FeedsFailed++
			slog.Warn("feed poll failed",
				slog.String("feed", feed.Name),
				slog.String("url", feed.URL),
				slog.Any("error", err))
			continue
		}

		metrics.RecordURLsDiscovered(entity.SourceTypeRSS, len(urls))
		registry.AddAll(urls)
		slog.Debug("feed polled",
			slog.String("feed", feed.Name),
			slog.Int("urls", len(urls)))
	}

	if s.searcher != nil {
		urls, err := s.searcher.Search(ctx, s.matcher.Keywords())
		if err != nil {
			slog.Warn("news search cut short", slog.Any("error", err))
		}
		// partial results are still results
		registry.AddAll(urls)
	}

	slog.Info("discovery completed",
		slog.Int("feeds", len(s.config.Feeds)),
		slog.Int("urls", registry.Len()))

	return registry
}

// processAll fans out over the discovered URLs with a bounded worker pool and
// collects the records of every matched document.
func (s *Service) processAll(ctx context.Context, urls []entity.DiscoveredURL, stats *RunStats) []entity.MatchRecord {
	ctx, span := tracing.StartStage(ctx, "process", attribute.Int("urls", len(urls)))
	defer span.End()

	records := []entity.MatchRecord{}
	var mu sync.Mutex

	sem := make(chan struct{}, s.config.Workers)
	eg, egCtx := errgroup.WithContext(ctx)

	for _, discovered := range urls {
		discovered := discovered
		eg.Go(func() error {
			sem <- struct{}{}
			defer func() { <-sem }()

			record, err := s.processOne(egCtx, discovered, stats)
			if err != nil {
				// Context cancellation is the only error workers raise;
				// everything else was absorbed as a skip.
				return err
			}
			if record != nil {
				mu.Lock()
				records = append(records, *record)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		slog.Warn("processing interrupted", slog.Any("error", err))
	}

	return records
}

// processOne takes one discovered URL through fetch, extraction, and
// matching. It returns (nil, nil) for every skipped document and a non-nil
// error only for context cancellation.
func (s *Service) processOne(ctx context.Context, discovered entity.DiscoveredURL, stats *RunStats) (*entity.MatchRecord, error) {
	ctx, span := tracing.StartDocument(ctx, discovered.URL)

	html, err := s.fetcher.Fetch(ctx, discovered.URL)
	if err != nil {
		tracing.EndWithError(span, err)
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		slog.Warn("page fetch failed",
			slog.String("url", discovered.URL),
			slog.Any("error", err))
		atomic.AddInt64(&stats.FetchFailed, 1)
		metrics.RecordDocumentProcessed("fetch_failed")
		return nil, nil
	}
	if html == "" {
		slog.Debug("empty page body", slog.String("url", discovered.URL))
		atomic.AddInt64(&stats.FetchFailed, 1)
		metrics.RecordDocumentProcessed("fetch_failed")
		span.End()
		return nil, nil
	}

	doc := s.extractor.Extract(html)
	if doc.Body == "" {
		// Not a skip: a page with a recoverable title can still match.
		atomic.AddInt64(&stats.ExtractEmpty, 1)
	}

	combined := strings.TrimSpace(doc.Title + " " + doc.Body)

	keywords := s.matcher.MatchKeywords(combined)
	if len(keywords) == 0 {
		slog.Debug("no keyword match", slog.String("url", discovered.URL))
		atomic.AddInt64(&stats.Unmatched, 1)
		metrics.RecordDocumentProcessed("unmatched")
		span.SetAttributes(attribute.Bool("matched", false))
		span.End()
		return nil, nil
	}

	categories := s.matcher.MatchCategories(keywords)
	companies := s.matcher.MatchCompanies(combined)
	sentences := s.matcher.MatchedSentences(doc.Body, keywords)

	record := entity.MatchRecord{
		Title:                    doc.Title,
		URL:                      discovered.URL,
		SourceType:               discovered.SourceType,
		SourceName:               discovered.SourceName,
		FeedName:                 discovered.FeedName,
		FeedURL:                  discovered.FeedURL,
		PublishedAt:              discovered.PublishedAt,
		ScrapedAt:                time.Now().UTC(),
		MatchedCompanies:         companies,
		MatchedKeywords:          keywords,
		MatchedKeywordCategories: categories,
		MatchedSentences:         sentences,
		FullText:                 doc.Body,
		Snippet:                  text.Snippet(doc.Body, snippetLimit),
	}

	atomic.AddInt64(&stats.Matched, 1)
	metrics.RecordDocumentProcessed("matched")
	metrics.RecordMatchedRecord(categories)

	slog.Info("document matched",
		slog.String("url", discovered.URL),
		slog.String("title", doc.Title),
		slog.Any("keywords", keywords),
		slog.Any("companies", companies))

	span.SetAttributes(attribute.Bool("matched", true))
	span.End()
	return &record, nil
}

// updateSLOs mirrors the run's outcome ratios into the SLO gauges.
func (s *Service) updateSLOs(stats *RunStats) {
	if stats.FeedsPolled > 0 {
		slo.UpdateFeedSuccess(float64(stats.FeedsPolled-stats.FeedsFailed) / float64(stats.FeedsPolled))
	}
	if processed := stats.Processed(); processed > 0 {
		slo.UpdateFetchSuccess(float64(processed-stats.FetchFailed) / float64(processed))
		slo.UpdateMatchYield(float64(stats.Matched) / float64(processed))
	}
	slo.UpdateRunDuration(stats.Duration.Seconds())
}
