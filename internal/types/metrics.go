// Package types provides type definitions for structured data used throughout the grammar-scorer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// GrammarIssue represents a single grammar problem reported by the checker.
type GrammarIssue struct {
	Message     string   `json:"message"`
	Offset      int      `json:"offset"`
	Length      int      `json:"length"`
	Category    string   `json:"category"`
	RuleID      string   `json:"rule_id,omitempty"`
	Context     string   `json:"context,omitempty"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// SentenceStats holds sentence structure metrics for a text.
type SentenceStats struct {
	Count        int     `json:"sentence_count"`
	AvgLength    float64 `json:"avg_sentence_length"`
	MaxLength    int     `json:"max_sentence_length"`
	MinLength    int     `json:"min_sentence_length"`
	LengthStdDev float64 `json:"sentence_length_std"`
}

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// VocabularyStats holds vocabulary richness metrics for a text.
type VocabularyStats struct {
	WordCount        int     `json:"word_count"`
	UniqueWords      int     `json:"unique_words"`
	LexicalDiversity float64 `json:"lexical_diversity"`
	AvgWordLength    float64 `json:"avg_word_length"`
	// LowSample is set when the word count is below the configured
	// confidence threshold; the diversity ratio is then unreliable.
	LowSample       bool            `json:"low_sample,omitempty"`
	MostCommonWords []WordFrequency `json:"most_common_words,omitempty"`
}

// ReadabilityStats holds readability metrics for a text.
// FleschReadingEase is the raw formula value and may fall outside [0,100]
// for degenerate text; clipping happens at aggregation time.
type ReadabilityStats struct {
	FleschReadingEase   float64 `json:"flesch_reading_ease"`
	Interpretation      string  `json:"interpretation,omitempty"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
}

// Provenance records whether a sub-metric was actually computed or had a
// neutral default substituted because its source was unavailable.
type Provenance struct {
	Computed bool   `json:"computed"`
	Reason   string `json:"reason,omitempty"`
}

// Computed returns a provenance marker for a successfully computed metric.
func Computed() Provenance {
	return Provenance{Computed: true}
}

// Unavailable returns a provenance marker for a degraded metric.
func Unavailable(reason string) Provenance {
	return Provenance{Computed: false, Reason: reason}
}

// MetricBundle is the full set of metrics extracted from one text.
// It is immutable once produced: every field is populated by extraction and
// only read downstream.
type MetricBundle struct {
	GrammarIssues []GrammarIssue   `json:"grammar_errors"`
	Sentences     SentenceStats    `json:"sentence_analysis"`
	Vocabulary    VocabularyStats  `json:"vocabulary_analysis"`
	Readability   ReadabilityStats `json:"readability"`

	// Per-source provenance. Sentence and vocabulary stats are computed
	// locally and always available; the grammar checker and readability
	// source may be degraded.
	GrammarProvenance     Provenance `json:"grammar_provenance"`
	ReadabilityProvenance Provenance `json:"readability_provenance"`
}

// Degraded reports whether any sub-metric had a neutral default substituted.
func (b *MetricBundle) Degraded() bool {
	return !b.GrammarProvenance.Computed || !b.ReadabilityProvenance.Computed
}
