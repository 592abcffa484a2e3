package analysis

import (
	"strings"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// countSyllables estimates syllables as runs of consecutive vowels.
// Every word counts as at least one syllable.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	prevVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if count == 0 {
		return 1
	}
	return count
}

// CalculateReadability computes the Flesch Reading Ease score. The raw value
// is preserved as-is: degenerate text can push it below 0 or above 100, and
// clipping for display is the aggregator's job. Returns ok=false when the
// text has no sentences or words, in which case the formula is undefined.
func CalculateReadability(text string) (types.ReadabilityStats, bool) {
	sentences := splitSentences(text)
	words := tokenizeWords(text)
	if len(sentences) == 0 || len(words) == 0 {
		return types.ReadabilityStats{}, false
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	avgWordsPerSentence := float64(len(words)) / float64(len(sentences))
	avgSyllablesPerWord := float64(syllables) / float64(len(words))
	flesch := 206.835 - 1.015*avgWordsPerSentence - 84.6*avgSyllablesPerWord

	return types.ReadabilityStats{
		FleschReadingEase:   flesch,
		Interpretation:      interpretFlesch(flesch),
		AvgWordsPerSentence: avgWordsPerSentence,
		AvgSyllablesPerWord: avgSyllablesPerWord,
	}, true
}

// interpretFlesch labels a Flesch Reading Ease value with the standard
// difficulty band.
func interpretFlesch(score float64) string {
	switch {
	case score >= 90:
		return "Very Easy"
	case score >= 80:
		return "Easy"
	case score >= 70:
		return "Fairly Easy"
	case score >= 60:
		return "Standard"
	case score >= 50:
		return "Fairly Difficult"
	case score >= 30:
		return "Difficult"
	default:
		return "Very Difficult"
	}
}
