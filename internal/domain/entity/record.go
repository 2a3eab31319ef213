package entity

import (
	"errors"
	"fmt"
	"time"
)

// MatchRecord represents one article that matched at least one signal.
// It is the unit of pipeline output and serializes directly into the
// JSON array the run produces.
//
// FeedURL is nil for articles discovered through NewsAPI, which has no
// feed to point back to; it serializes as JSON null.
type MatchRecord struct {
	Title                    string    `json:"title"`
	URL                      string    `json:"url"`
	SourceType               string    `json:"source_type"`
	SourceName               string    `json:"source_name"`
	FeedName                 string    `json:"feed_name"`
	FeedURL                  *string   `json:"feed_url"`
	PublishedAt              time.Time `json:"published_at"`
	ScrapedAt                time.Time `json:"scraped_at"`
	MatchedCompanies         []string  `json:"matched_companies"`
	MatchedKeywords          []string  `json:"matched_keywords"`
	MatchedKeywordCategories []string  `json:"matched_keyword_categories"`
	MatchedSentences         []string  `json:"matched_sentences"`
	FullText                 string    `json:"full_text"`
	Snippet                  string    `json:"snippet"`
}

// Validate validates the MatchRecord entity fields.
// It checks the source type and enforces the output invariant: a record
// exists only because at least one keyword matched. Company matches alone do
// not qualify; they are supplemental signal on an already-matched record.
func (r *MatchRecord) Validate() error {
	if r.URL == "" {
		return &ValidationError{Field: "url", Message: "URL is required"}
	}

	if r.SourceType != SourceTypeRSS && r.SourceType != SourceTypeNewsAPI {
		return fmt.Errorf("invalid source_type: %s (must be %s or %s)",
			r.SourceType, SourceTypeRSS, SourceTypeNewsAPI)
	}

	if len(r.MatchedKeywords) == 0 {
		return errors.New("record must match at least one keyword")
	}

	return nil
}
