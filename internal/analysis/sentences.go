package analysis

import (
	"math"
	"regexp"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/types"
)

var sentenceDelimiter = regexp.MustCompile(`[.!?]+`)

// splitSentences splits text on terminal punctuation and drops empty pieces.
func splitSentences(text string) []string {
	parts := sentenceDelimiter.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// AnalyzeSentenceStructure computes sentence count and length statistics.
func AnalyzeSentenceStructure(text string) types.SentenceStats {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return types.SentenceStats{}
	}

	lengths := make([]int, len(sentences))
	total := 0
	maxLen := 0
	minLen := math.MaxInt
	for i, sentence := range sentences {
		n := len(strings.Fields(sentence))
		lengths[i] = n
		total += n
		if n > maxLen {
			maxLen = n
		}
		if n < minLen {
			minLen = n
		}
	}

	mean := float64(total) / float64(len(lengths))
	variance := 0.0
	for _, n := range lengths {
		d := float64(n) - mean
		variance += d * d
	}
	variance /= float64(len(lengths))

	return types.SentenceStats{
		Count:        len(sentences),
		AvgLength:    mean,
		MaxLength:    maxLen,
		MinLength:    minLen,
		LengthStdDev: math.Sqrt(variance),
	}
}
