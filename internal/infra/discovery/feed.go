package discovery

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/observability/metrics"
	"signal-scout/internal/resilience/circuitbreaker"
	"signal-scout/internal/resilience/retry"
)

// feedUserAgent identifies the poller to feed servers. Feed endpoints expect
// bots; only article-page fetches need a browser user agent.
const feedUserAgent = "signal-scout/1.0"

// FeedPoller polls RSS/Atom feeds and turns recent entries into discovered
// URLs. It wraps each poll in retry and circuit breaker logic; breakers are
// per feed, so one dead feed can never shut off discovery from the others.
type FeedPoller struct {
	client      *http.Client
	cutoff      time.Time
	retryConfig retry.Config
	breakers    map[string]*circuitbreaker.CircuitBreaker
}

// NewFeedPoller creates a FeedPoller with the given HTTP client and recency
// window. The cutoff is anchored at construction, which gives every feed in
// the run the same publication window.
//
// Discovery runs feeds sequentially, so the poller is not safe for
// concurrent use.
func NewFeedPoller(client *http.Client, window time.Duration) *FeedPoller {
	return &FeedPoller{
		client:      client,
		cutoff:      time.Now().UTC().Add(-window),
		retryConfig: retry.FeedPollConfig(),
		breakers:    make(map[string]*circuitbreaker.CircuitBreaker),
	}
}

// Poll retrieves and parses one feed, returning its entries published within
// the recency window. Failures are reported to the caller after retries are
// exhausted; the caller logs and moves on to the next feed.
func (p *FeedPoller) Poll(ctx context.Context, feedName, feedURL string) ([]entity.DiscoveredURL, error) {
	start := time.Now()

	var urls []entity.DiscoveredURL
	retryErr := retry.WithBackoff(ctx, p.retryConfig, func() error {
		result, err := p.breakerFor(feedName).Execute(func() (interface{}, error) {
			return p.doPoll(ctx, feedName, feedURL)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed poll circuit breaker open, request rejected",
					slog.String("feed", feedName),
					slog.String("url", feedURL))
			}
			return err
		}
		urls = result.([]entity.DiscoveredURL)
		return nil
	})

	if retryErr != nil {
		metrics.RecordFeedPollError(feedName, pollErrorType(retryErr))
		return nil, retryErr
	}

	metrics.RecordFeedPoll(feedName, time.Since(start), len(urls))
	return urls, nil
}

// doPoll performs the actual feed fetch and parse without retry or circuit
// breaker.
func (p *FeedPoller) doPoll(ctx context.Context, feedName, feedURL string) ([]entity.DiscoveredURL, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = feedUserAgent
	fp.Client = p.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		// gofeed reports non-2xx responses with its own error type, which
		// the retry classifier cannot see. Translate it so 5xx feed
		// responses retry and 4xx responses fail fast.
		var httpErr gofeed.HTTPError
		if errors.As(err, &httpErr) {
			return nil, &retry.HTTPError{StatusCode: httpErr.StatusCode, Message: httpErr.Status}
		}
		return nil, err
	}

	// フィードタイトル優先、なければ設定名を使用
	sourceName := feed.Title
	if sourceName == "" {
		sourceName = feedName
	}

	urls := make([]entity.DiscoveredURL, 0, len(feed.Items))
	for _, it := range feed.Items {
		link := it.Link
		if link == "" {
			link = it.GUID
		}
		if link == "" {
			continue
		}

		publishedAt := entryPublishedAt(it)
		if publishedAt.Before(p.cutoff) {
			continue
		}

		urls = append(urls, entity.DiscoveredURL{
			URL:         link,
			SourceType:  entity.SourceTypeRSS,
			SourceName:  sourceName,
			FeedName:    feedName,
			FeedURL:     &feedURL,
			PublishedAt: publishedAt,
		})
	}

	return urls, nil
}

// breakerFor returns the feed's circuit breaker, creating it on first use.
func (p *FeedPoller) breakerFor(feedName string) *circuitbreaker.CircuitBreaker {
	cb, ok := p.breakers[feedName]
	if !ok {
		cfg := circuitbreaker.FeedPollConfig()
		cfg.Name = "feed-poll:" + feedName
		cb = circuitbreaker.New(cfg)
		p.breakers[feedName] = cb
	}
	return cb
}

// entryPublishedAt resolves an entry's publication time: published, then
// updated, then the current time for entries that declare neither.
func entryPublishedAt(item *gofeed.Item) time.Time {
	if item.PublishedParsed != nil {
		return item.PublishedParsed.UTC()
	}
	if item.UpdatedParsed != nil {
		return item.UpdatedParsed.UTC()
	}
	return time.Now().UTC()
}

// pollErrorType classifies a poll failure for metrics labels.
func pollErrorType(err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return "circuit_open"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "error"
	}
}
