// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as DiscoveredURL and MatchRecord,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// Source type values carried through discovery into the output records.
const (
	// SourceTypeRSS marks URLs discovered by polling configured RSS/Atom feeds.
	SourceTypeRSS = "rss"

	// SourceTypeNewsAPI marks URLs discovered through NewsAPI keyword searches.
	SourceTypeNewsAPI = "newsapi"
)

// DiscoveredURL identifies one candidate article produced by the discovery
// stage. It carries the provenance known before the article page itself has
// been fetched; the article title is not part of it, because titles come from
// extraction, not from discovery.
type DiscoveredURL struct {
	URL         string
	SourceType  string
	SourceName  string
	FeedName    string
	FeedURL     *string
	PublishedAt time.Time
}
