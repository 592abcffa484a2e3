package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/grammar-scorer/internal/types"
)

func cleanBundle() *types.MetricBundle {
	return &types.MetricBundle{
		GrammarIssues: []types.GrammarIssue{},
		Sentences: types.SentenceStats{
			Count: 3, AvgLength: 15, MaxLength: 18, MinLength: 12, LengthStdDev: 2.4,
		},
		Vocabulary: types.VocabularyStats{
			WordCount: 45, UniqueWords: 30, LexicalDiversity: 30.0 / 45.0,
		},
		Readability:           types.ReadabilityStats{FleschReadingEase: 65},
		GrammarProvenance:     types.Computed(),
		ReadabilityProvenance: types.Computed(),
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	bundle := cleanBundle()
	weights := types.DefaultWeights()

	first, err := Aggregate(bundle, weights, DefaultOptions())
	require.NoError(t, err)
	second, err := Aggregate(bundle, weights, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestAggregate_ScoreWithinRange(t *testing.T) {
	bundles := []*types.MetricBundle{
		cleanBundle(),
		{
			GrammarIssues: make([]types.GrammarIssue, 50),
			Sentences:     types.SentenceStats{Count: 1, AvgLength: 80},
			Vocabulary:    types.VocabularyStats{WordCount: 80, UniqueWords: 5, LexicalDiversity: 5.0 / 80.0},
			Readability:   types.ReadabilityStats{FleschReadingEase: -40},
		},
		{
			Sentences:   types.SentenceStats{Count: 1, AvgLength: 3},
			Vocabulary:  types.VocabularyStats{WordCount: 3, UniqueWords: 3, LexicalDiversity: 1, LowSample: true},
			Readability: types.ReadabilityStats{FleschReadingEase: 150},
		},
	}

	for _, bundle := range bundles {
		breakdown, err := Aggregate(bundle, types.DefaultWeights(), DefaultOptions())
		require.NoError(t, err)
		assert.GreaterOrEqual(t, breakdown.Score, 0.0)
		assert.LessOrEqual(t, breakdown.Score, 100.0)
	}
}

func TestAggregate_ZeroWeightExcludesComponent(t *testing.T) {
	bundle := cleanBundle()
	weights := types.Weights{GrammarErrors: 1}

	breakdown, err := Aggregate(bundle, weights, DefaultOptions())

	require.NoError(t, err)
	// Only the grammar component participates, so the final score equals it.
	assert.Equal(t, breakdown.ComponentScores[types.ComponentGrammar], breakdown.Score)
}

func TestAggregate_AllZeroWeightsFails(t *testing.T) {
	_, err := Aggregate(cleanBundle(), types.Weights{}, DefaultOptions())

	var weightsErr *InvalidWeightsError
	require.True(t, errors.As(err, &weightsErr))
}

func TestAggregate_WeightsNeedNotSumToOne(t *testing.T) {
	bundle := cleanBundle()

	normalized, err := Aggregate(bundle, types.DefaultWeights(), DefaultOptions())
	require.NoError(t, err)

	// Doubling every weight must not change the normalized result.
	doubled, err := Aggregate(bundle, types.Weights{
		GrammarErrors: 0.80, SentenceStructure: 0.40, VocabularyRichness: 0.40, Readability: 0.40,
	}, DefaultOptions())
	require.NoError(t, err)

	assert.InDelta(t, normalized.Score, doubled.Score, 0.01)
}

func TestComputeGrammarScore_NoErrors(t *testing.T) {
	assert.Equal(t, 100.0, computeGrammarScore(0, 50, DefaultPenaltyFactor))
}

func TestComputeGrammarScore_PenaltyPerHundredWords(t *testing.T) {
	// 1 error in 100 words at factor 10 costs 10 points.
	assert.Equal(t, 90.0, computeGrammarScore(1, 100, DefaultPenaltyFactor))
}

func TestComputeGrammarScore_FloorsAtZero(t *testing.T) {
	assert.Equal(t, 0.0, computeGrammarScore(20, 30, DefaultPenaltyFactor))
}

func TestComputeGrammarScore_ZeroWordsDoesNotDivideByZero(t *testing.T) {
	score := computeGrammarScore(1, 0, DefaultPenaltyFactor)

	assert.GreaterOrEqual(t, score, 0.0)
	assert.LessOrEqual(t, score, 100.0)
}

func TestComputeStructureScore_IdealRange(t *testing.T) {
	stats := types.SentenceStats{Count: 3, AvgLength: 15, LengthStdDev: 2}

	assert.Equal(t, 100.0, computeStructureScore(stats))
}

func TestComputeStructureScore_ShortSentencesRampLinearly(t *testing.T) {
	stats := types.SentenceStats{Count: 2, AvgLength: 4, LengthStdDev: 1}

	assert.Equal(t, 80.0, computeStructureScore(stats))
}

func TestComputeStructureScore_LongSentencesDecayToFloor(t *testing.T) {
	moderate := types.SentenceStats{Count: 2, AvgLength: 30, LengthStdDev: 1}
	extreme := types.SentenceStats{Count: 2, AvgLength: 60, LengthStdDev: 1}

	assert.Equal(t, 88.0, computeStructureScore(moderate))
	assert.Equal(t, 70.0, computeStructureScore(extreme))
}

func TestComputeStructureScore_SmallAvgChangeSmallScoreChange(t *testing.T) {
	// The old step-function behavior jumped at band edges; the ramp keeps
	// neighboring averages close.
	low := computeStructureScore(types.SentenceStats{Count: 2, AvgLength: 7.9, LengthStdDev: 1})
	high := computeStructureScore(types.SentenceStats{Count: 2, AvgLength: 8.1, LengthStdDev: 1})

	assert.InDelta(t, low, high, 1.0)
}

func TestComputeStructureScore_MonotonyPenalty(t *testing.T) {
	varied := types.SentenceStats{Count: 3, AvgLength: 15, LengthStdDev: 2}
	uniform := types.SentenceStats{Count: 3, AvgLength: 15, LengthStdDev: 0}

	assert.Equal(t, computeStructureScore(varied)-monotonyPenalty, computeStructureScore(uniform))
}

func TestComputeStructureScore_SingleSentenceNoMonotonyPenalty(t *testing.T) {
	single := types.SentenceStats{Count: 1, AvgLength: 15, LengthStdDev: 0}

	assert.Equal(t, 100.0, computeStructureScore(single))
}

func TestComputeStructureScore_NoSentences(t *testing.T) {
	assert.Equal(t, 0.0, computeStructureScore(types.SentenceStats{}))
}

func TestComputeVocabularyScore_ScalesDiversity(t *testing.T) {
	stats := types.VocabularyStats{WordCount: 100, LexicalDiversity: 0.3}

	assert.Equal(t, 60.0, computeVocabularyScore(stats))
}

func TestComputeVocabularyScore_CapsAtHundred(t *testing.T) {
	stats := types.VocabularyStats{WordCount: 100, LexicalDiversity: 0.8}

	assert.Equal(t, 100.0, computeVocabularyScore(stats))
}

func TestComputeVocabularyScore_LowSampleCap(t *testing.T) {
	stats := types.VocabularyStats{WordCount: 4, LexicalDiversity: 1, LowSample: true}

	assert.Equal(t, lowSampleVocabCap, computeVocabularyScore(stats))
}

func TestComputeVocabularyScore_ZeroWords(t *testing.T) {
	assert.Equal(t, 0.0, computeVocabularyScore(types.VocabularyStats{}))
}

func TestComputeReadabilityScore_ClipsRawValue(t *testing.T) {
	assert.Equal(t, 100.0, computeReadabilityScore(119.19))
	assert.Equal(t, 0.0, computeReadabilityScore(-12.5))
	assert.Equal(t, 65.0, computeReadabilityScore(65))
}
