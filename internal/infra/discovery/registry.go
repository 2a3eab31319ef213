// Package discovery collects candidate article URLs from the configured
// sources: RSS/Atom feed polls and, when a key is configured, NewsAPI
// keyword searches. All sources funnel into a single Registry that
// deduplicates by URL before the pipeline fans out.
package discovery

import (
	"log/slog"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/observability/metrics"
)

// Registry accumulates discovered URLs across sources, deduplicated by URL.
//
// Insertion order is preserved: the first source to discover a URL fixes its
// position in the snapshot, while the stored provenance reflects the last
// writer. Discovery runs sources sequentially, so the Registry is not safe
// for concurrent use; by the time workers fan out it is a read-only snapshot.
type Registry struct {
	order []string
	meta  map[string]entity.DiscoveredURL
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		meta: make(map[string]entity.DiscoveredURL),
	}
}

// Add records a discovered URL. Duplicates keep their original position but
// take the new provenance. URLs that fail validation are dropped: feed
// contents are untrusted, and a hostile feed must not be able to point the
// fetcher at internal infrastructure.
func (r *Registry) Add(u entity.DiscoveredURL) {
	if err := entity.ValidateURL(u.URL); err != nil {
		slog.Debug("rejected discovered URL",
			slog.String("url", u.URL),
			slog.String("reason", err.Error()))
		metrics.RecordURLRejected()
		return
	}

	if _, exists := r.meta[u.URL]; exists {
		metrics.RecordURLDeduplicated()
	} else {
		r.order = append(r.order, u.URL)
	}
	r.meta[u.URL] = u
}

// AddAll records a batch of discovered URLs in order.
func (r *Registry) AddAll(urls []entity.DiscoveredURL) {
	for _, u := range urls {
		r.Add(u)
	}
}

// Snapshot returns the discovered URLs in insertion order. The returned slice
// is a copy; workers iterate it without touching Registry state.
func (r *Registry) Snapshot() []entity.DiscoveredURL {
	out := make([]entity.DiscoveredURL, 0, len(r.order))
	for _, url := range r.order {
		out = append(out, r.meta[url])
	}
	return out
}

// Len returns the number of distinct URLs discovered so far.
func (r *Registry) Len() int {
	return len(r.order)
}
