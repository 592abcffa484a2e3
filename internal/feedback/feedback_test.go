package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/grammar-scorer/internal/types"
)

func sampleResult() *types.ScoreResult {
	return &types.ScoreResult{
		Score:      72.45,
		Grade:      types.GradeC,
		GradeLabel: "Average",
		ComponentScores: map[string]float64{
			types.ComponentGrammar: 80, types.ComponentStructure: 70,
			types.ComponentVocabulary: 65, types.ComponentReadability: 75,
		},
		ErrorCount: 2,
		WordCount:  40,
	}
}

func sampleBundle() *types.MetricBundle {
	return &types.MetricBundle{
		GrammarIssues: []types.GrammarIssue{
			{Message: "Possible agreement error", Offset: 30, Suggestions: []string{"have"}},
			{Message: "Missing article", Offset: 5},
		},
		Sentences:             types.SentenceStats{Count: 3, AvgLength: 13.3},
		Vocabulary:            types.VocabularyStats{WordCount: 40, UniqueWords: 28, LexicalDiversity: 0.7},
		Readability:           types.ReadabilityStats{FleschReadingEase: 68.2, Interpretation: "Standard"},
		GrammarProvenance:     types.Computed(),
		ReadabilityProvenance: types.Computed(),
	}
}

func TestGenerate_SectionOrderIsFixed(t *testing.T) {
	report := Generate(sampleBundle(), sampleResult())

	require.Len(t, report.Sections, 5)
	assert.Equal(t, CategoryOverall, report.Sections[0].Category)
	assert.Equal(t, CategoryGrammar, report.Sections[1].Category)
	assert.Equal(t, CategoryStructure, report.Sections[2].Category)
	assert.Equal(t, CategoryVocabulary, report.Sections[3].Category)
	assert.Equal(t, CategoryReadability, report.Sections[4].Category)
}

func TestGenerate_RenderIsByteIdentical(t *testing.T) {
	bundle := sampleBundle()
	result := sampleResult()

	first := Render(Generate(bundle, result))
	second := Render(Generate(bundle, result))

	assert.Equal(t, first, second)
}

func TestGenerate_IssuesOrderedByOffset(t *testing.T) {
	report := Generate(sampleBundle(), sampleResult())
	rendered := Render(report)

	// "Missing article" sits at offset 5, before the offset-30 issue.
	first := strings.Index(rendered, "Missing article")
	second := strings.Index(rendered, "Possible agreement error")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	assert.Less(t, first, second)
}

func TestGenerate_IncludesFirstSuggestion(t *testing.T) {
	rendered := Render(Generate(sampleBundle(), sampleResult()))

	assert.Contains(t, rendered, "Suggestion: have")
}

func TestGenerate_TruncatesIssueListAtFive(t *testing.T) {
	bundle := sampleBundle()
	bundle.GrammarIssues = nil
	for i := 0; i < 8; i++ {
		bundle.GrammarIssues = append(bundle.GrammarIssues, types.GrammarIssue{
			Message: "Issue", Offset: i,
		})
	}
	result := sampleResult()
	result.ErrorCount = 8

	rendered := Render(Generate(bundle, result))

	assert.Contains(t, rendered, "... and 3 more")
}

func TestGenerate_NoErrors(t *testing.T) {
	bundle := sampleBundle()
	bundle.GrammarIssues = nil
	result := sampleResult()
	result.ErrorCount = 0

	rendered := Render(Generate(bundle, result))

	assert.Contains(t, rendered, "No grammar errors detected")
}

func TestGenerate_DegradedGrammarNotesReducedConfidence(t *testing.T) {
	bundle := sampleBundle()
	bundle.GrammarIssues = nil
	bundle.GrammarProvenance = types.Unavailable("grammar checker not configured")

	rendered := Render(Generate(bundle, sampleResult()))

	assert.Contains(t, rendered, "reduced confidence")
	assert.Contains(t, rendered, "grammar checker not configured")
}

func TestGenerate_DegradedReadabilityNotesReducedConfidence(t *testing.T) {
	bundle := sampleBundle()
	bundle.ReadabilityProvenance = types.Unavailable("no scoreable words detected")

	rendered := Render(Generate(bundle, sampleResult()))

	assert.Contains(t, rendered, "no scoreable words detected")
}

func TestGenerate_LowSampleVocabularyNote(t *testing.T) {
	bundle := sampleBundle()
	bundle.Vocabulary.LowSample = true

	rendered := Render(Generate(bundle, sampleResult()))

	assert.Contains(t, rendered, "Sample too small")
}
