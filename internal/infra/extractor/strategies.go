package extractor

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"signal-scout/internal/utils/text"
)

// minReadableLength is the shortest readability output accepted as an
// article body, in runes. Shorter output is usually navigation chrome or a
// consent notice rather than the article, so the chain falls through to raw
// document text.
const minReadableLength = 50

// strategy is one body-extraction attempt. run reports ok=false to decline,
// handing the page to the next strategy; it never returns an error because
// there is nothing a caller could do with one.
type strategy struct {
	name string
	run  func(p *page) (string, bool)
}

// jsonLDBody reads the article body a publisher embedded as structured
// data. Only the first ld+json block is considered; it must parse as a JSON
// object carrying a non-empty articleBody string, which is returned exactly
// as published.
func jsonLDBody(p *page) (string, bool) {
	if p.doc == nil {
		return "", false
	}

	raw := p.doc.Find(`script[type="application/ld+json"]`).First().Text()
	if strings.TrimSpace(raw) == "" {
		return "", false
	}

	var block struct {
		ArticleBody string `json:"articleBody"`
	}
	if err := json.Unmarshal([]byte(raw), &block); err != nil {
		return "", false
	}
	if block.ArticleBody == "" {
		return "", false
	}

	return block.ArticleBody, true
}

// readableBody runs the readability algorithm and accepts its text only when
// it is long enough to plausibly be an article rather than leftover chrome.
func readableBody(p *page) (string, bool) {
	article, err := p.readable()
	if err != nil {
		return "", false
	}

	body := collapseSpace(article.TextContent)
	if text.CountRunes(body) <= minReadableLength {
		return "", false
	}

	return body, true
}

// rawTextBody is the last resort: every text node in the document, scripts
// and navigation included, joined with single spaces. It declines only when
// the page has no text at all.
func rawTextBody(p *page) (string, bool) {
	if p.doc == nil {
		return "", false
	}

	var parts []string
	var walk func(s *goquery.Selection)
	walk = func(s *goquery.Selection) {
		s.Contents().Each(func(_ int, c *goquery.Selection) {
			if goquery.NodeName(c) == "#text" {
				if t := collapseSpace(c.Text()); t != "" {
					parts = append(parts, t)
				}
				return
			}
			walk(c)
		})
	}
	walk(p.doc.Selection)

	body := strings.Join(parts, " ")
	return body, body != ""
}

// collapseSpace joins the text's fields with single spaces, dropping all
// leading, trailing, and repeated whitespace.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
