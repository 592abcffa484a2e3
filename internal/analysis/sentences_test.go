package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences_MixedTerminators(t *testing.T) {
	sentences := splitSentences("Hello world. This is a test! Is it? Yes...")

	assert.Equal(t, []string{"Hello world", "This is a test", "Is it", "Yes"}, sentences)
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := splitSentences("no punctuation at all")

	assert.Equal(t, []string{"no punctuation at all"}, sentences)
}

func TestAnalyzeSentenceStructure_Basic(t *testing.T) {
	stats := AnalyzeSentenceStructure("Hello world. One two three four.")

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 3.0, stats.AvgLength)
	assert.Equal(t, 4, stats.MaxLength)
	assert.Equal(t, 2, stats.MinLength)
	assert.InDelta(t, 1.0, stats.LengthStdDev, 0.0001)
}

func TestAnalyzeSentenceStructure_UniformLengths(t *testing.T) {
	stats := AnalyzeSentenceStructure("One two three. Four five six.")

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 0.0, stats.LengthStdDev)
}

func TestAnalyzeSentenceStructure_Empty(t *testing.T) {
	stats := AnalyzeSentenceStructure("")

	assert.Equal(t, 0, stats.Count)
	assert.Equal(t, 0.0, stats.AvgLength)
}

func TestAnalyzeSentenceStructure_OnlyPunctuation(t *testing.T) {
	stats := AnalyzeSentenceStructure("!!! ... ?")

	assert.Equal(t, 0, stats.Count)
}
