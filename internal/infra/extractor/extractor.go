// Package extractor turns fetched HTML into the plain text the matcher
// scans. Extraction runs a chain of strategies from most to least precise:
// an embedded JSON-LD articleBody, the readability algorithm, and finally
// the whole document's text. A strategy that cannot produce a body declines
// and the next one runs; the chain never fails, it only degrades.
package extractor

import (
	"log/slog"
	"net/url"
	"strings"

	"signal-scout/internal/domain/entity"
	"signal-scout/internal/observability/metrics"
	"signal-scout/internal/utils/text"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// Extractor extracts article title and body text from raw HTML.
// It is stateless and safe for concurrent use.
type Extractor struct {
	strategies []strategy
}

// New returns an Extractor with the standard strategy chain:
// JSON-LD articleBody, then readability, then raw document text.
func New() *Extractor {
	return &Extractor{
		strategies: []strategy{
			{name: "json_ld", run: jsonLDBody},
			{name: "readability", run: readableBody},
			{name: "raw_text", run: rawTextBody},
		},
	}
}

// Extract produces the plain-text document for one page. The first strategy
// to yield a body wins. Title extraction is independent of the body chain:
// a page whose body comes from JSON-LD still gets its title from
// readability, falling back to the <title> element.
//
// Extract never fails. A page nothing could be read from comes back with
// empty fields, and the caller decides what an empty document means.
func (e *Extractor) Extract(html string) entity.ExtractedDocument {
	p := newPage(html)

	body := ""
	method := "none"
	for _, s := range e.strategies {
		if out, ok := s.run(p); ok {
			body = out
			method = s.name
			break
		}
	}
	metrics.RecordExtraction(method)

	title := pageTitle(p)

	slog.Debug("extracted document",
		slog.String("method", method),
		slog.Int("title_runes", text.CountRunes(title)),
		slog.Int("body_runes", text.CountRunes(body)))

	return entity.ExtractedDocument{
		Title:   title,
		Body:    body,
		HTMLLen: len(html),
	}
}

// page bundles one document's raw HTML with its parsed forms, so the
// strategies and the title lookup share a single goquery parse and a single
// readability pass per document.
type page struct {
	html string

	// doc is the parsed document, or nil when the HTML did not parse.
	doc *goquery.Document

	readabilityRan bool
	article        readability.Article
	readabilityErr error
}

func newPage(html string) *page {
	p := &page{html: html}
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		p.doc = doc
	}
	return p
}

// readable runs readability over the page once and memoizes the result.
// Readability wants a base URL to resolve relative links; extraction happens
// after the fetch with no URL in hand, so an empty one serves.
func (p *page) readable() (readability.Article, error) {
	if !p.readabilityRan {
		p.readabilityRan = true
		p.article, p.readabilityErr = readability.FromReader(strings.NewReader(p.html), &url.URL{})
	}
	return p.article, p.readabilityErr
}

// pageTitle resolves the article title: the readability title when it found
// one, the <title> element otherwise, "" when the page has neither.
func pageTitle(p *page) string {
	if article, err := p.readable(); err == nil {
		if title := strings.TrimSpace(article.Title); title != "" {
			return title
		}
	}
	if p.doc != nil {
		return strings.TrimSpace(p.doc.Find("title").First().Text())
	}
	return ""
}
