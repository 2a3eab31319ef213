// Package lexicon builds the immutable keyword-to-category table used for
// text matching. The table is constructed once at startup from the ordered
// category configuration and passed explicitly to every component that needs
// it; nothing mutates it afterward.
package lexicon

import "strings"

// Category is one ordered entry of the keyword configuration: a category
// label and the keyword phrases assigned to it.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// Lexicon holds the lower-cased keyword sequence and the keyword-to-category
// mapping derived from a category configuration.
type Lexicon struct {
	keywords   []string          // lower-cased, deduplicated, configuration order
	categories map[string]string // lower-cased keyword -> category label
}

// New builds a Lexicon from the ordered category configuration.
//
// Every keyword is lower-cased. A keyword listed under more than one category
// keeps its first position in the keyword sequence, but its category
// assignment is last write wins in configuration order. Empty keyword phrases
// are skipped: an empty substring matches every document, which would defeat
// the match filter entirely.
func New(categories []Category) *Lexicon {
	l := &Lexicon{
		categories: make(map[string]string),
	}
	for _, cat := range categories {
		for _, kw := range cat.Keywords {
			k := strings.ToLower(kw)
			if k == "" {
				continue
			}
			if _, seen := l.categories[k]; !seen {
				l.keywords = append(l.keywords, k)
			}
			l.categories[k] = cat.Name
		}
	}
	return l
}

// Keywords returns the keyword sequence in configuration order.
// The returned slice is a copy; the lexicon itself stays immutable.
func (l *Lexicon) Keywords() []string {
	out := make([]string, len(l.keywords))
	copy(out, l.keywords)
	return out
}

// Category returns the category label for a keyword. The keyword must be in
// its lower-cased form, as returned by Keywords. ok is false for keywords the
// lexicon was not built with.
func (l *Lexicon) Category(keyword string) (string, bool) {
	cat, ok := l.categories[keyword]
	return cat, ok
}

// Len returns the number of distinct keywords in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.keywords)
}
