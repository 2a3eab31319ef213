package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"signal-scout/internal/infra/fetcher"
	"signal-scout/tests/fixtures"
)

// BenchmarkFetch measures single page fetch performance against a local server.
func BenchmarkFetch(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html := fixtures.GenerateArticlePage(fixtures.PageOptions{BodySize: 3000})
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(html)); err != nil {
			b.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := pageFetcher.Fetch(ctx, server.URL)
		if err != nil {
			b.Fatalf("Fetch() error = %v", err)
		}
	}
}

// BenchmarkFetch_Large benchmarks fetching a long article page.
func BenchmarkFetch_Large(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html := fixtures.GenerateLargePage()
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(html)); err != nil {
			b.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := pageFetcher.Fetch(ctx, server.URL)
		if err != nil {
			b.Fatalf("Fetch() error = %v", err)
		}
	}
}

// BenchmarkFetch_Concurrent benchmarks concurrent page fetches, which is how
// the pipeline worker pool actually drives the fetcher.
func BenchmarkFetch_Concurrent(b *testing.B) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html := fixtures.GenerateArticlePage(fixtures.PageOptions{BodySize: 5000})
		w.Header().Set("Content-Type", "text/html")
		if _, err := w.Write([]byte(html)); err != nil {
			b.Errorf("failed to write response: %v", err)
		}
	}))
	defer server.Close()

	pageFetcher := fetcher.NewPageFetcher(fetcher.DefaultConfig())
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := pageFetcher.Fetch(ctx, server.URL)
			if err != nil {
				b.Errorf("Fetch() error = %v", err)
			}
		}
	})
}

// BenchmarkConfigValidation benchmarks config validation.
func BenchmarkConfigValidation(b *testing.B) {
	cfg := fetcher.DefaultConfig()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.Validate()
	}
}
