package analysis

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/types"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// topWordsToKeep is how many most-common words are retained for reports.
const topWordsToKeep = 10

// tokenizeWords extracts lowercase word tokens. A word is any run of
// alphanumeric characters bounded by whitespace or punctuation.
func tokenizeWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// AnalyzeVocabulary computes vocabulary richness metrics. Uniqueness counting
// is case-insensitive. minWords marks the bundle as low-sample when the text
// is too short for the diversity ratio to be trustworthy.
func AnalyzeVocabulary(text string, minWords int) types.VocabularyStats {
	words := tokenizeWords(text)
	if len(words) == 0 {
		return types.VocabularyStats{LowSample: true}
	}

	freq := make(map[string]int)
	totalLength := 0
	for _, word := range words {
		freq[word]++
		totalLength += len(word)
	}

	return types.VocabularyStats{
		WordCount:        len(words),
		UniqueWords:      len(freq),
		LexicalDiversity: float64(len(freq)) / float64(len(words)),
		AvgWordLength:    float64(totalLength) / float64(len(words)),
		LowSample:        len(words) < minWords,
		MostCommonWords:  mostCommon(freq, topWordsToKeep),
	}
}

// mostCommon returns the n highest-frequency words, ties broken
// alphabetically so output is deterministic.
func mostCommon(freq map[string]int, n int) []types.WordFrequency {
	entries := make([]types.WordFrequency, 0, len(freq))
	for word, count := range freq {
		entries = append(entries, types.WordFrequency{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
