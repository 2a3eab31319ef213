package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/infra/fetcher"
	"signal-scout/internal/observability/metrics"
	"signal-scout/internal/resilience/circuitbreaker"
)

const (
	defaultNewsAPIBaseURL = "https://newsapi.org/v2/everything"

	// newsAPITimeout is deliberately longer than the article-fetch timeout;
	// a search across eight quoted phrases is slower than a page load.
	newsAPITimeout = 20 * time.Second

	// newsAPIBatchSize caps keywords per query so the q parameter stays
	// within the API's query-length limit.
	newsAPIBatchSize = 8

	newsAPIPageSize = 100
)

// NewsAPIClient discovers article URLs through NewsAPI keyword searches.
// It is the optional second discovery source next to RSS polling and runs
// only when an API key is configured.
//
// Batches are paced by a token-bucket limiter (one request per second) and
// guarded by a shared circuit breaker: once the endpoint starts failing,
// typically on an exhausted quota or a rejected key, remaining batches fail
// fast instead of each burning the full request timeout.
type NewsAPIClient struct {
	client  *http.Client
	key     string
	baseURL string
	window  time.Duration
	breaker *circuitbreaker.CircuitBreaker
	limiter *rate.Limiter
}

// NewNewsAPIClient creates a NewsAPI search client. The window bounds how
// far back searches reach, mirroring the RSS recency cutoff.
func NewNewsAPIClient(key string, window time.Duration) *NewsAPIClient {
	return &NewsAPIClient{
		client:  &http.Client{Timeout: newsAPITimeout},
		key:     key,
		baseURL: defaultNewsAPIBaseURL,
		window:  window,
		breaker: circuitbreaker.New(circuitbreaker.NewsAPIConfig()),
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Search runs keyword searches in batches and returns every discovered URL.
//
// A failed batch is logged and skipped; its keywords simply contribute no
// URLs this run. The only error Search itself returns is context
// cancellation, so a broken API never aborts the rest of discovery.
func (c *NewsAPIClient) Search(ctx context.Context, keywords []string) ([]entity.DiscoveredURL, error) {
	if c.key == "" {
		return nil, nil
	}

	// Server-side recency filter; the API only accepts whole dates.
	from := time.Now().UTC().Add(-c.window).Format("2006-01-02")

	var discovered []entity.DiscoveredURL
	for start := 0; start < len(keywords); start += newsAPIBatchSize {
		end := start + newsAPIBatchSize
		if end > len(keywords) {
			end = len(keywords)
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return discovered, fmt.Errorf("rate limiter wait: %w", err)
		}

		urls, err := c.searchBatch(ctx, keywords[start:end], from)
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("newsapi circuit open, skipping batch",
					slog.Int("batch_start", start))
			} else {
				slog.Warn("newsapi batch failed",
					slog.Int("batch_start", start),
					slog.Any("error", err))
			}
			metrics.RecordNewsAPIBatch(false)
			continue
		}

		metrics.RecordNewsAPIBatch(true)
		metrics.RecordURLsDiscovered(entity.SourceTypeNewsAPI, len(urls))
		discovered = append(discovered, urls...)
	}

	return discovered, nil
}

// searchBatch runs one batch query through the circuit breaker.
func (c *NewsAPIClient) searchBatch(ctx context.Context, batch []string, from string) ([]entity.DiscoveredURL, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doSearch(ctx, batch, from)
	})
	if err != nil {
		return nil, err
	}

	return result.([]entity.DiscoveredURL), nil
}

func (c *NewsAPIClient) doSearch(ctx context.Context, batch []string, from string) ([]entity.DiscoveredURL, error) {
	// Each keyword is quoted so multi-word phrases search as phrases.
	quoted := make([]string, len(batch))
	for i, kw := range batch {
		quoted[i] = `"` + kw + `"`
	}

	params := url.Values{}
	params.Set("q", strings.Join(quoted, " OR "))
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(newsAPIPageSize))
	params.Set("from", from)
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", fetcher.BrowserUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		// A short body prefix names the API error without flooding the log.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	urls := make([]entity.DiscoveredURL, 0, len(payload.Articles))
	for _, article := range payload.Articles {
		if article.URL == "" {
			continue
		}

		urls = append(urls, entity.DiscoveredURL{
			URL:         article.URL,
			SourceType:  entity.SourceTypeNewsAPI,
			SourceName:  article.Source.Name,
			FeedName:    "NewsAPI",
			FeedURL:     nil,
			PublishedAt: parsePublishedAt(article.PublishedAt),
		})
	}

	return urls, nil
}

// newsAPIResponse is the subset of the /v2/everything response the pipeline
// consumes.
type newsAPIResponse struct {
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source      newsAPISource `json:"source"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
}

type newsAPISource struct {
	Name string `json:"name"`
}

// parsePublishedAt parses NewsAPI's RFC 3339 timestamps. Articles with a
// missing or malformed timestamp count as just published rather than being
// dropped.
func parsePublishedAt(value string) time.Time {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC()
	}
	return time.Now().UTC()
}
