package entity

// ExtractedDocument is the plain-text view of one fetched article page:
// whatever title and body text the extraction chain recovered from the HTML.
// Either field may be empty. An empty body does not disqualify the document;
// a page can still match on its title alone.
//
// The document is transient. Matched text flows into a MatchRecord and the
// rest is discarded at the end of the pipeline stage.
type ExtractedDocument struct {
	// Title is the article headline, or "" when none was recoverable.
	Title string

	// Body is the article text produced by the first extraction strategy
	// that succeeded, or "" when every strategy came up empty.
	Body string

	// HTMLLen is the size of the source HTML in bytes, kept for
	// diagnostics only.
	HTMLLen int
}
