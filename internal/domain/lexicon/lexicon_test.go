package lexicon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"signal-scout/internal/domain/lexicon"
)

func TestNew_KeywordsLowerCasedInConfigurationOrder(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"New Plant", "CAPEX"}},
		{Name: "Deals", Keywords: []string{"Joint Venture"}},
	})

	assert.Equal(t, []string{"new plant", "capex", "joint venture"}, lex.Keywords())
	assert.Equal(t, 3, lex.Len())
}

func TestNew_DuplicateKeywordLastCategoryWins(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Employment", Keywords: []string{"hiring", "workforce expansion"}},
		{Name: "Add-on Signals", Keywords: []string{"land acquisition", "hiring"}},
	})

	// 重複キーワードは最初の位置を保持する
	assert.Equal(t, []string{"hiring", "workforce expansion", "land acquisition"}, lex.Keywords())

	// カテゴリは後勝ち
	cat, ok := lex.Category("hiring")
	require.True(t, ok)
	assert.Equal(t, "Add-on Signals", cat)
}

func TestNew_EmptyKeywordsSkipped(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"", "new plant", ""}},
	})

	assert.Equal(t, []string{"new plant"}, lex.Keywords())
	assert.Equal(t, 1, lex.Len())

	_, ok := lex.Category("")
	assert.False(t, ok)
}

func TestNew_EmptyConfiguration(t *testing.T) {
	lex := lexicon.New(nil)

	assert.Empty(t, lex.Keywords())
	assert.Equal(t, 0, lex.Len())
}

func TestCategory_DefinedForEveryKeyword(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"new plant", "greenfield", "capex"}},
		{Name: "Deals", Keywords: []string{"MOU", "strategic partnership"}},
	})

	for _, kw := range lex.Keywords() {
		cat, ok := lex.Category(kw)
		require.True(t, ok, "keyword %q must have a category", kw)
		assert.NotEmpty(t, cat)
	}
}

func TestCategory_UnknownKeyword(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"new plant"}},
	})

	cat, ok := lex.Category("blockchain")
	assert.False(t, ok)
	assert.Empty(t, cat)

	// ルックアップは小文字キーワードのみ
	_, ok = lex.Category("New Plant")
	assert.False(t, ok)
}

func TestKeywords_ReturnsCopy(t *testing.T) {
	lex := lexicon.New([]lexicon.Category{
		{Name: "Expansion", Keywords: []string{"new plant", "capex"}},
	})

	got := lex.Keywords()
	got[0] = "mutated"

	assert.Equal(t, []string{"new plant", "capex"}, lex.Keywords())
}

func TestNew_Deterministic(t *testing.T) {
	config := []lexicon.Category{
		{Name: "Expansion", Keywords: []string{"new plant", "capex", "greenfield"}},
		{Name: "Deals", Keywords: []string{"mou", "joint venture"}},
		{Name: "Energy", Keywords: []string{"solar plant", "wind farm"}},
	}

	first := lexicon.New(config)
	second := lexicon.New(config)

	assert.Equal(t, first.Keywords(), second.Keywords())
	for _, kw := range first.Keywords() {
		c1, _ := first.Category(kw)
		c2, _ := second.Category(kw)
		assert.Equal(t, c1, c2)
	}
}
