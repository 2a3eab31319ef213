package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signal-scout/internal/domain/lexicon"
	"signal-scout/internal/domain/match"
)

func newTestMatcher(companies []string) *match.Matcher {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Investment & Expansion", Keywords: []string{"new plant", "capex", "expansion"}},
		{Name: "Deals & Partnerships", Keywords: []string{"joint venture", "mou"}},
		{Name: "Employment / Headcount", Keywords: []string{"hiring plans"}},
	})
	return match.NewMatcher(lex, companies)
}

func TestMatchKeywords(t *testing.T) {
	m := newTestMatcher(nil)

	tests := []struct {
		name     string
		combined string
		expected []string
	}{
		{
			name:     "single keyword match",
			combined: "acme opens a new plant in ohio",
			expected: []string{"new plant"},
		},
		{
			name:     "case insensitive match",
			combined: "Acme Opens A NEW PLANT In Ohio",
			expected: []string{"new plant"},
		},
		{
			name:     "multiple keywords in configuration order",
			combined: "the joint venture funds capex for a new plant",
			expected: []string{"new plant", "capex", "joint venture"},
		},
		{
			name:     "substring match inside larger word",
			combined: "an expansionary budget",
			expected: []string{"expansion"},
		},
		{
			name:     "no keyword match",
			combined: "quarterly dividend announced",
			expected: []string{},
		},
		{
			name:     "empty text",
			combined: "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchKeywords(tt.combined)

			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestMatchKeywords_FilterIsIdempotent verifies a non-matching document stays
// non-matching on repeated evaluation
func TestMatchKeywords_FilterIsIdempotent(t *testing.T) {
	m := newTestMatcher(nil)
	combined := "weather forecast for the weekend"

	first := m.MatchKeywords(combined)
	second := m.MatchKeywords(combined)

	assert.Empty(t, first)
	assert.Empty(t, second)
}

func TestMatchCategories(t *testing.T) {
	m := newTestMatcher(nil)

	tests := []struct {
		name     string
		keywords []string
		expected []string
	}{
		{
			name:     "single category",
			keywords: []string{"new plant"},
			expected: []string{"Investment & Expansion"},
		},
		{
			name:     "same category deduplicated",
			keywords: []string{"new plant", "capex"},
			expected: []string{"Investment & Expansion"},
		},
		{
			name:     "first occurrence order across categories",
			keywords: []string{"mou", "new plant", "joint venture"},
			expected: []string{"Deals & Partnerships", "Investment & Expansion"},
		},
		{
			name:     "unknown keyword skipped",
			keywords: []string{"blockchain", "capex"},
			expected: []string{"Investment & Expansion"},
		},
		{
			name:     "no keywords",
			keywords: nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchCategories(tt.keywords)

			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchCompanies(t *testing.T) {
	tests := []struct {
		name      string
		companies []string
		combined  string
		expected  []string
	}{
		{
			name:      "companies in list order",
			companies: []string{"acme corp", "globex", "initech"},
			combined:  "initech and acme corp announced a merger",
			expected:  []string{"acme corp", "initech"},
		},
		{
			name:      "case insensitive",
			companies: []string{"acme corp"},
			combined:  "ACME CORP shares fell",
			expected:  []string{"acme corp"},
		},
		{
			name:      "empty entries skipped",
			companies: []string{"", "acme corp", ""},
			combined:  "acme corp earnings call",
			expected:  []string{"acme corp"},
		},
		{
			name:      "source list duplicates kept",
			companies: []string{"acme corp", "acme corp"},
			combined:  "acme corp update",
			expected:  []string{"acme corp", "acme corp"},
		},
		{
			name:      "no company match",
			companies: []string{"acme corp"},
			combined:  "market roundup",
			expected:  []string{},
		},
		{
			name:      "empty company list",
			companies: nil,
			combined:  "acme corp update",
			expected:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMatcher(tt.companies)

			got := m.MatchCompanies(tt.combined)

			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMatchedSentences(t *testing.T) {
	m := newTestMatcher(nil)

	tests := []struct {
		name     string
		fullText string
		keywords []string
		expected []string
	}{
		{
			name:     "sentence containing keyword retained",
			fullText: "Acme announced a new plant today. Shares rose 2%.",
			keywords: []string{"new plant"},
			expected: []string{"Acme announced a new plant today."},
		},
		{
			name:     "sentences in document order",
			fullText: "Capex will double. Unrelated filler here. The new plant opens in May.",
			keywords: []string{"new plant", "capex"},
			expected: []string{"Capex will double.", "The new plant opens in May."},
		},
		{
			name:     "sentence with several keywords appears once",
			fullText: "The joint venture funds capex expansion. Done.",
			keywords: []string{"joint venture", "capex"},
			expected: []string{"The joint venture funds capex expansion."},
		},
		{
			name:     "matched sentences are trimmed",
			fullText: "Intro sentence.   A new plant was approved.  ",
			keywords: []string{"new plant"},
			expected: []string{"A new plant was approved."},
		},
		{
			name:     "empty body text",
			fullText: "",
			keywords: []string{"new plant"},
			expected: []string{},
		},
		{
			name:     "empty keyword list",
			fullText: "A new plant was approved.",
			keywords: nil,
			expected: []string{},
		},
		{
			name:     "keyword only in title not in body",
			fullText: "Shares rose 2%. Trading volume was light.",
			keywords: []string{"new plant"},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := m.MatchedSentences(tt.fullText, tt.keywords)

			require.NotNil(t, got)
			assert.Equal(t, tt.expected, got)
		})
	}
}

// TestMatcher_FullEvaluation walks one document through all four matching
// operations the way the pipeline does
func TestMatcher_FullEvaluation(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"new plant"}},
	})
	m := match.NewMatcher(lex, []string{"acme corp"})

	title := "Acme expands"
	body := "Acme Corp announced a new plant today. Shares rose 2%."
	combined := title + " " + body

	keywords := m.MatchKeywords(combined)
	require.Equal(t, []string{"new plant"}, keywords)

	assert.Equal(t, []string{"Expansion"}, m.MatchCategories(keywords))
	assert.Equal(t, []string{"acme corp"}, m.MatchCompanies(combined))
	assert.Equal(t, []string{"Acme Corp announced a new plant today."}, m.MatchedSentences(body, keywords))
}

// TestMatcher_ConcurrentUse verifies a shared Matcher is safe across workers
func TestMatcher_ConcurrentUse(t *testing.T) {
	m := newTestMatcher([]string{"acme corp"})

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				kws := m.MatchKeywords("acme corp plans a new plant")
				m.MatchCategories(kws)
				m.MatchCompanies("acme corp plans a new plant")
				m.MatchedSentences("Acme Corp plans a new plant. More soon.", kws)
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
