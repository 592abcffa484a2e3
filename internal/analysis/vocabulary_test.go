package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenizeWords_Lowercases(t *testing.T) {
	words := tokenizeWords("The Cat SAT")

	assert.Equal(t, []string{"the", "cat", "sat"}, words)
}

func TestAnalyzeVocabulary_Basic(t *testing.T) {
	stats := AnalyzeVocabulary("The cat sat on the mat", 5)

	assert.Equal(t, 6, stats.WordCount)
	assert.Equal(t, 5, stats.UniqueWords)
	assert.InDelta(t, 5.0/6.0, stats.LexicalDiversity, 0.0001)
	assert.False(t, stats.LowSample)
}

func TestAnalyzeVocabulary_CaseInsensitiveUniqueness(t *testing.T) {
	stats := AnalyzeVocabulary("Word word WORD", 1)

	assert.Equal(t, 3, stats.WordCount)
	assert.Equal(t, 1, stats.UniqueWords)
}

func TestAnalyzeVocabulary_LowSample(t *testing.T) {
	stats := AnalyzeVocabulary("just four little words", 10)

	assert.True(t, stats.LowSample)
	assert.Equal(t, 4, stats.WordCount)
}

func TestAnalyzeVocabulary_Empty(t *testing.T) {
	stats := AnalyzeVocabulary("", 10)

	assert.True(t, stats.LowSample)
	assert.Equal(t, 0, stats.WordCount)
	assert.Equal(t, 0.0, stats.LexicalDiversity)
}

func TestAnalyzeVocabulary_MostCommonOrdering(t *testing.T) {
	stats := AnalyzeVocabulary("the cat and the dog and the bird", 1)

	assert.Equal(t, "the", stats.MostCommonWords[0].Word)
	assert.Equal(t, 3, stats.MostCommonWords[0].Count)
	assert.Equal(t, "and", stats.MostCommonWords[1].Word)
	assert.Equal(t, 2, stats.MostCommonWords[1].Count)
	// Singletons tie; alphabetical order breaks the tie.
	assert.Equal(t, "bird", stats.MostCommonWords[2].Word)
}
