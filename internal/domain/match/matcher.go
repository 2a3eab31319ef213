// Package match implements the keyword, category, company, and sentence
// matching engine that decides which documents become output records.
//
// All matching is plain substring containment over lower-cased text. There is
// deliberately no word-boundary requirement: a keyword may match inside a
// larger word. That imprecision is accepted in exchange for predictable
// behavior across languages and punctuation.
package match

import (
	"strings"

	"signal-scout/internal/domain/lexicon"
	"signal-scout/internal/utils/text"
)

// Matcher scans extracted document text against the keyword lexicon and the
// company-name list. Both inputs are read-only after construction, so a single
// Matcher is safe for concurrent use across pipeline workers.
type Matcher struct {
	lex       *lexicon.Lexicon
	keywords  []string // cached from the lexicon, configuration order
	companies []string // pre-normalized company names, list order
}

// NewMatcher builds a Matcher from the keyword lexicon and the
// already-normalized (lower-cased, trimmed) company-name list.
func NewMatcher(lex *lexicon.Lexicon, companies []string) *Matcher {
	return &Matcher{
		lex:       lex,
		keywords:  lex.Keywords(),
		companies: companies,
	}
}

// Keywords returns the lexicon keywords in configuration order. This is the
// same list search-based discovery queries for, so discovery and matching can
// never disagree about what a keyword is.
func (m *Matcher) Keywords() []string {
	out := make([]string, len(m.keywords))
	copy(out, m.keywords)
	return out
}

// MatchKeywords returns every lexicon keyword that occurs as a substring of
// the given text, in lexicon configuration order. The text is lower-cased
// before comparison. An empty result means the document is discarded; this is
// the single filtering gate for the whole pipeline.
func (m *Matcher) MatchKeywords(combined string) []string {
	t := strings.ToLower(combined)
	matched := []string{}
	for _, kw := range m.keywords {
		if strings.Contains(t, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// MatchCategories maps matched keywords to their category labels,
// deduplicated in first-occurrence order.
func (m *Matcher) MatchCategories(keywords []string) []string {
	categories := []string{}
	seen := make(map[string]struct{})
	for _, kw := range keywords {
		cat, ok := m.lex.Category(kw)
		if !ok {
			continue
		}
		if _, dup := seen[cat]; dup {
			continue
		}
		seen[cat] = struct{}{}
		categories = append(categories, cat)
	}
	return categories
}

// MatchCompanies returns every company name that occurs as a substring of the
// given text, in company-list order. Empty list entries are skipped; an empty
// name would match every document. Duplicates in the source list are kept.
func (m *Matcher) MatchCompanies(combined string) []string {
	t := strings.ToLower(combined)
	matched := []string{}
	for _, c := range m.companies {
		if c != "" && strings.Contains(t, c) {
			matched = append(matched, c)
		}
	}
	return matched
}

// MatchedSentences splits the body text into sentences and returns, in
// document order, each sentence containing any of the matched keywords.
// Sentences are trimmed of surrounding whitespace but otherwise verbatim.
// Returns an empty list when the body or keyword list is empty; sentence
// splitting is never attempted on empty input.
func (m *Matcher) MatchedSentences(fullText string, keywords []string) []string {
	if fullText == "" || len(keywords) == 0 {
		return []string{}
	}
	matched := []string{}
	for _, s := range text.SplitSentences(fullText) {
		sl := strings.ToLower(s)
		for _, kw := range keywords {
			if strings.Contains(sl, kw) {
				matched = append(matched, strings.TrimSpace(s))
				break
			}
		}
	}
	return matched
}
