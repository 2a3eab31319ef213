package fetcher_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"signal-scout/internal/infra/fetcher"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Acme Expansion</title><script>var tracking = true;</script></head>
<body>
	<nav><a href="/">Home</a></nav>
	<article>
		<h1>Acme Corp Announces New Plant</h1>
		<p>Acme Corp announced a new manufacturing plant in Ohio today.</p>
	</article>
</body>
</html>`

func TestPageFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != fetcher.BrowserUserAgent {
			t.Errorf("expected browser User-Agent, got %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(articleHTML)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	// Default config keeps DenyPrivateIPs on: only redirect targets are
	// validated, so a loopback initial URL must still be fetchable.
	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

	html, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	// The fetcher returns the page verbatim; scripts and navigation are
	// the extractor's problem, not the fetcher's.
	if html != articleHTML {
		t.Errorf("expected raw HTML returned unchanged, got: %q", html)
	}
}

func TestPageFetcher_Fetch_CustomUserAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "scout-test/0.1" {
			t.Errorf("expected User-Agent='scout-test/0.1', got %q", r.Header.Get("User-Agent"))
		}
		if _, err := w.Write([]byte("<html><body>ok</body></html>")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	config := fetcher.DefaultConfig()
	config.UserAgent = "scout-test/0.1"
	pageFetcher := fetcher.NewPageFetcher(config)

	if _, err := pageFetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
}

func TestPageFetcher_Fetch_HTTPError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "404 Not Found", statusCode: http.StatusNotFound},
		{name: "403 Forbidden", statusCode: http.StatusForbidden},
		{name: "500 Internal Server Error", statusCode: http.StatusInternalServerError},
		{name: "503 Service Unavailable", statusCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

			_, err := pageFetcher.Fetch(context.Background(), server.URL)
			if err == nil {
				t.Fatalf("expected error for HTTP %d, got nil", tt.statusCode)
			}
			if !errors.Is(err, fetcher.ErrUnexpectedStatus) {
				t.Errorf("expected ErrUnexpectedStatus, got: %v", err)
			}
			if !strings.Contains(err.Error(), fmt.Sprintf("%d", tt.statusCode)) {
				t.Errorf("expected error to contain status code %d, got: %v", tt.statusCode, err)
			}
		})
	}
}

func TestPageFetcher_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		if _, err := w.Write([]byte("too late")); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	config := fetcher.DefaultConfig()
	config.Timeout = 200 * time.Millisecond
	pageFetcher := fetcher.NewPageFetcher(config)

	_, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}
	if !errors.Is(err, fetcher.ErrTimeout) {
		t.Errorf("expected ErrTimeout, got: %v", err)
	}
}

func TestPageFetcher_Fetch_BodyTooLarge(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(strings.Repeat("x", 4096))); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	config := fetcher.DefaultConfig()
	config.MaxBodySize = 2048
	pageFetcher := fetcher.NewPageFetcher(config)

	_, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for oversized response, got nil")
	}
	if !errors.Is(err, fetcher.ErrBodyTooLarge) {
		t.Errorf("expected ErrBodyTooLarge, got: %v", err)
	}
}

func TestPageFetcher_Fetch_BodyExactlyAtLimit(t *testing.T) {
	body := strings.Repeat("y", 2048)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(body)); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	config := fetcher.DefaultConfig()
	config.MaxBodySize = 2048
	pageFetcher := fetcher.NewPageFetcher(config)

	html, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v for body exactly at the limit", err)
	}
	if len(html) != 2048 {
		t.Errorf("expected 2048 bytes, got %d", len(html))
	}
}

func TestPageFetcher_Fetch_TooManyRedirects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, r.URL.String(), http.StatusFound)
	}))
	defer server.Close()

	config := fetcher.DefaultConfig()
	config.MaxRedirects = 3
	config.DenyPrivateIPs = false // redirect targets are the loopback test server
	pageFetcher := fetcher.NewPageFetcher(config)

	_, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for redirect loop, got nil")
	}
	if !errors.Is(err, fetcher.ErrTooManyRedirects) {
		t.Errorf("expected ErrTooManyRedirects, got: %v", err)
	}
}

func TestPageFetcher_Fetch_SuccessfulRedirect(t *testing.T) {
	finalServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("<html><body>final destination</body></html>")); err != nil {
			t.Errorf("failed to write response: %v", err)
		}
	}))
	defer finalServer.Close()

	initialServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, finalServer.URL, http.StatusFound)
	}))
	defer initialServer.Close()

	config := fetcher.DefaultConfig()
	config.DenyPrivateIPs = false // redirect target is the loopback test server
	pageFetcher := fetcher.NewPageFetcher(config)

	html, err := pageFetcher.Fetch(context.Background(), initialServer.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if !strings.Contains(html, "final destination") {
		t.Errorf("expected content from final destination, got: %q", html)
	}
}

func TestPageFetcher_Fetch_RedirectToPrivateIP(t *testing.T) {
	// The initial loopback URL is accepted (discovery already vets initial
	// URLs); the redirect hop into a private address must not be.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://192.168.0.1/article", http.StatusFound)
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

	_, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error for redirect to private IP, got nil")
	}
	if !strings.Contains(err.Error(), "redirect target rejected") {
		t.Errorf("expected redirect rejection error, got: %v", err)
	}
}

func TestPageFetcher_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		if _, err := w.Write([]byte("response")); err != nil {
			t.Logf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pageFetcher.Fetch(ctx, server.URL)
	if err == nil {
		t.Fatal("expected error from cancelled context, got nil")
	}
}

func TestPageFetcher_Fetch_SingleAttempt(t *testing.T) {
	// One attempt per URL per run: a failure must not trigger a retry.
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

	_, err := pageFetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if got := requests.Load(); got != 1 {
		t.Errorf("expected exactly 1 request, got %d", got)
	}
}

func TestPageFetcher_Fetch_InvalidURL(t *testing.T) {
	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())

	_, err := pageFetcher.Fetch(context.Background(), "http://example .com/article")
	if err == nil {
		t.Fatal("expected error for malformed URL, got nil")
	}
}
