package fetcher

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/observability/metrics"
)

// Sentinel errors returned by Fetch. Callers generally treat any fetch
// error the same way (skip the document), but tests and logs distinguish
// the common failure classes.
var (
	// ErrTimeout indicates the page did not respond within the configured timeout.
	ErrTimeout = errors.New("fetch timeout")

	// ErrBodyTooLarge indicates the response body exceeded MaxBodySize.
	ErrBodyTooLarge = errors.New("response body too large")

	// ErrTooManyRedirects indicates the redirect chain exceeded MaxRedirects.
	ErrTooManyRedirects = errors.New("too many redirects")

	// ErrUnexpectedStatus indicates a non-200 HTTP response.
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// PageFetcher downloads article pages over HTTP and returns their raw HTML.
//
// Each URL gets exactly one attempt per run: no retry and no circuit
// breaker. A dead site costs one timeout and nothing else, and a failed
// page is simply a skipped page. This keeps a run's duration bounded by
// the slowest single fetch rather than by retry budgets.
//
// Extraction is not this package's job; the returned HTML goes to the
// extractor untouched.
//
// Thread safety: PageFetcher is safe for concurrent use.
type PageFetcher struct {
	client *http.Client
	config Config
}

// NewPageFetcher creates a PageFetcher with the given configuration.
//
// The underlying HTTP client enforces TLS 1.2+, caps the redirect chain,
// and, when DenyPrivateIPs is set, validates every redirect target. The
// initial URL is assumed to have passed discovery-time validation; a page
// must not be able to bounce the fetcher into a private network after
// that check.
func NewPageFetcher(config Config) *PageFetcher {
	f := &PageFetcher{config: config}

	f.client = &http.Client{
		Timeout: config.Timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			TLSClientConfig: &tls.Config{
				MinVersion: tls.VersionTLS12,
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= f.config.MaxRedirects {
				return fmt.Errorf("%w: %d redirects", ErrTooManyRedirects, len(via))
			}
			if f.config.DenyPrivateIPs {
				if err := entity.ValidateURL(req.URL.String()); err != nil {
					return fmt.Errorf("redirect target rejected: %w", err)
				}
			}
			return nil
		},
	}

	return f
}

// Fetch downloads the page at urlStr and returns its raw HTML.
//
// Any failure (transport error, timeout, non-200 status, oversized body)
// is returned as an error; the caller treats it as "no document" and
// moves on to the next URL.
func (f *PageFetcher) Fetch(ctx context.Context, urlStr string) (string, error) {
	start := time.Now()

	reqCtx, cancel := context.WithTimeout(ctx, f.config.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, urlStr, nil)
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.config.UserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		if reqCtx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%w: no response within %v", ErrTimeout, f.config.Timeout)
		}
		return "", fmt.Errorf("fetch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		metrics.RecordContentFetchFailed(time.Since(start))
		return "", fmt.Errorf("%w: HTTP %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	// Read one byte past the limit so an at-limit body and an oversized
	// body are distinguishable.
	limitedReader := io.LimitReader(resp.Body, f.config.MaxBodySize+1)
	htmlBytes, err := io.ReadAll(limitedReader)
	if err != nil {
		metrics.RecordContentFetchFailed(time.Since(start))
		return "", fmt.Errorf("read response body: %w", err)
	}

	if int64(len(htmlBytes)) > f.config.MaxBodySize {
		metrics.RecordContentFetchFailed(time.Since(start))
		return "", fmt.Errorf("%w: response exceeds %d bytes", ErrBodyTooLarge, f.config.MaxBodySize)
	}

	metrics.RecordContentFetchSuccess(time.Since(start), len(htmlBytes))
	slog.Debug("fetched page",
		slog.String("url", urlStr),
		slog.Int("bytes", len(htmlBytes)),
		slog.Duration("elapsed", time.Since(start)))

	return string(htmlBytes), nil
}
