// Package fixtures provides reusable test data generators for integration
// tests and benchmarks. Generated pages are shaped like real news articles
// so the same fixtures serve fetcher, extractor, and pipeline tests.
package fixtures

import (
	"fmt"
	"strings"
)

// PageOptions configures a generated article page.
type PageOptions struct {
	// Title is the article headline, used for both <title> and <h1>.
	Title string

	// BodySize is the approximate body length in bytes. The body repeats
	// coherent business-news paragraphs until it reaches this size.
	BodySize int

	// WithJSONLD embeds the body as a JSON-LD articleBody block, the way
	// publishers that require JavaScript for rendering usually do.
	WithJSONLD bool
}

// paragraphSentences are the body sentences pages are assembled from.
// They carry typical expansion-news vocabulary so matcher-level tests can
// rely on generated pages producing keyword hits.
var paragraphSentences = []string{
	"Acme Corporation said on Tuesday it will build a new plant outside Savannah.",
	"The expansion adds roughly five hundred jobs to the regional economy.",
	"Executives described the project as the largest capital expenditure in company history.",
	"Construction is expected to finish before the end of next year.",
	"State officials approved a package of tax incentives for the facility last month.",
	"Analysts said the investment signals confidence in domestic manufacturing capacity.",
}

// GenerateArticlePage generates a full HTML article page according to opts.
//
// Example:
//
//	html := fixtures.GenerateArticlePage(fixtures.PageOptions{
//	    Title:    "Acme Corp Expands",
//	    BodySize: 5000,
//	})
func GenerateArticlePage(opts PageOptions) string {
	if opts.Title == "" {
		opts.Title = "Acme Corp Announces Expansion"
	}
	body := GenerateArticleText(opts.BodySize)

	if opts.WithJSONLD {
		return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
<title>%s</title>
<script type="application/ld+json">
{"@context":"https://schema.org","@type":"NewsArticle","headline":%q,"articleBody":%q}
</script>
</head>
<body><p>JavaScript is required to read this article.</p></body>
</html>`, opts.Title, opts.Title, body)
	}

	var paragraphs strings.Builder
	for _, p := range strings.Split(body, "\n") {
		paragraphs.WriteString("\t\t<p>")
		paragraphs.WriteString(p)
		paragraphs.WriteString("</p>\n")
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>%s</title></head>
<body>
	<nav><a href="/">Home</a> <a href="/markets">Markets</a></nav>
	<article>
		<h1>%s</h1>
%s	</article>
	<footer>Copyright 2026 Example Times</footer>
</body>
</html>`, opts.Title, opts.Title, paragraphs.String())
}

// GenerateArticleText generates plain article text of approximately
// targetSize bytes, as newline-separated paragraphs of three sentences.
// Sizes below one paragraph still return one full paragraph.
func GenerateArticleText(targetSize int) string {
	var builder strings.Builder
	i := 0
	for builder.Len() < targetSize || i == 0 {
		if i > 0 {
			if i%3 == 0 {
				builder.WriteString("\n")
			} else {
				builder.WriteString(" ")
			}
		}
		builder.WriteString(paragraphSentences[i%len(paragraphSentences)])
		i++
	}
	return builder.String()
}

// GenerateSmallPage generates a short article page (~3KB of body text),
// about the size of a typical wire story.
func GenerateSmallPage() string {
	return GenerateArticlePage(PageOptions{BodySize: 3000})
}

// GenerateLargePage generates a long article page (~50KB of body text),
// useful for exercising size limits and extraction performance.
func GenerateLargePage() string {
	return GenerateArticlePage(PageOptions{BodySize: 50000})
}
