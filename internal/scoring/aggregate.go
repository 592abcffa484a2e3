package scoring

import (
	"math"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// Structure component shape: full marks for average sentence length inside
// [idealMinAvgLength, idealMaxAvgLength], linear ramps outside, so small
// changes in average length never cause score cliffs.
const (
	idealMinAvgLength = 8.0
	idealMaxAvgLength = 22.0
	shortSentenceBase = 60.0
	longSentenceFloor = 70.0
	longDecayPerWord  = 1.5
	monotonyPenalty   = 5.0
)

// lowSampleVocabCap bounds the vocabulary component when the text is too
// short for the diversity ratio to be meaningful.
const lowSampleVocabCap = 70.0

// DefaultPenaltyFactor is the grammar penalty applied per error per 100 words.
const DefaultPenaltyFactor = 10.0

// Options holds the aggregation tuning constants captured from configuration.
type Options struct {
	PenaltyFactor float64
}

// DefaultOptions returns the standard aggregation constants.
func DefaultOptions() Options {
	return Options{PenaltyFactor: DefaultPenaltyFactor}
}

// Breakdown is the outcome of aggregation: the final weighted score plus the
// per-component sub-scores it was computed from.
type Breakdown struct {
	Score           float64
	ComponentScores map[string]float64
}

// Aggregate combines the bundle's metrics into one weighted 0-100 score.
// It is a pure function of its inputs: identical bundle, weights, and
// options always produce an identical breakdown. Components with zero
// weight are excluded from both numerator and denominator; an effective
// weight sum of zero fails with InvalidWeightsError.
func Aggregate(bundle *types.MetricBundle, weights types.Weights, opts Options) (*Breakdown, error) {
	if opts.PenaltyFactor <= 0 {
		opts.PenaltyFactor = DefaultPenaltyFactor
	}

	components := map[string]float64{
		types.ComponentGrammar:     computeGrammarScore(len(bundle.GrammarIssues), bundle.Vocabulary.WordCount, opts.PenaltyFactor),
		types.ComponentStructure:   computeStructureScore(bundle.Sentences),
		types.ComponentVocabulary:  computeVocabularyScore(bundle.Vocabulary),
		types.ComponentReadability: computeReadabilityScore(bundle.Readability.FleschReadingEase),
	}

	componentWeights := map[string]float64{
		types.ComponentGrammar:     weights.GrammarErrors,
		types.ComponentStructure:   weights.SentenceStructure,
		types.ComponentVocabulary:  weights.VocabularyRichness,
		types.ComponentReadability: weights.Readability,
	}

	weightSum := 0.0
	weightedSum := 0.0
	for name, weight := range componentWeights {
		if weight <= 0 {
			continue
		}
		weightSum += weight
		weightedSum += weight * components[name]
	}
	if weightSum == 0 {
		return nil, &InvalidWeightsError{Message: "effective weight sum is zero"}
	}

	score := roundScore(weightedSum / weightSum)
	return &Breakdown{
		Score:           clampScore(score),
		ComponentScores: components,
	}, nil
}

// computeGrammarScore penalizes errors per 100 words: fewer errors per word
// means a higher score, flooring at 0.
func computeGrammarScore(errorCount, wordCount int, penaltyFactor float64) float64 {
	if wordCount < 1 {
		wordCount = 1
	}
	errorsPer100 := float64(errorCount) / float64(wordCount) * 100
	penalty := errorsPer100 * penaltyFactor
	if penalty > 100 {
		penalty = 100
	}
	return roundScore(100 - penalty)
}

// computeStructureScore rewards moderate average sentence length and some
// length variance. The shape is a trapezoid with linear ramps rather than
// steps, and completely uniform sentence lengths take a small penalty.
func computeStructureScore(stats types.SentenceStats) float64 {
	if stats.Count == 0 {
		return 0
	}

	avg := stats.AvgLength
	var score float64
	switch {
	case avg < idealMinAvgLength:
		score = shortSentenceBase + (100-shortSentenceBase)*avg/idealMinAvgLength
	case avg <= idealMaxAvgLength:
		score = 100
	default:
		score = 100 - longDecayPerWord*(avg-idealMaxAvgLength)
		if score < longSentenceFloor {
			score = longSentenceFloor
		}
	}

	if stats.Count > 1 && stats.LengthStdDev == 0 {
		score -= monotonyPenalty
	}

	return roundScore(clampScore(score))
}

// computeVocabularyScore scales lexical diversity to 0-100, capping
// low-sample texts so a handful of unique words cannot read as perfect.
func computeVocabularyScore(stats types.VocabularyStats) float64 {
	if stats.WordCount == 0 {
		return 0
	}
	score := stats.LexicalDiversity * 200
	if score > 100 {
		score = 100
	}
	if stats.LowSample && score > lowSampleVocabCap {
		score = lowSampleVocabCap
	}
	return roundScore(score)
}

// computeReadabilityScore clips the raw Flesch Reading Ease value into the
// [0,100] display band. The raw value stays available in the bundle.
func computeReadabilityScore(rawFlesch float64) float64 {
	return roundScore(clampScore(rawFlesch))
}

func roundScore(score float64) float64 {
	return math.Round(score*100) / 100
}

func clampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
