// Package feedback turns metric bundles and score results into structured,
// human-readable feedback reports.
package feedback

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// maxIssuesToDetail limits how many grammar issues are spelled out in the
// report; the full list stays available in the JSON artifact.
const maxIssuesToDetail = 5

// Feedback section categories, in render order.
const (
	CategoryOverall     = "overall"
	CategoryGrammar     = "grammar"
	CategoryStructure   = "structure"
	CategoryVocabulary  = "vocabulary"
	CategoryReadability = "readability"
)

// Generate builds the feedback report for a scored text. Output is
// deterministic: grammar issues are ordered by source offset (message as
// tie-break), and repeated calls on identical input render byte-identically.
func Generate(bundle *types.MetricBundle, result *types.ScoreResult) *types.FeedbackReport {
	return &types.FeedbackReport{
		Sections: []types.FeedbackSection{
			{Category: CategoryOverall, Lines: overallLines(result)},
			{Category: CategoryGrammar, Lines: grammarLines(bundle, result)},
			{Category: CategoryStructure, Lines: structureLines(bundle)},
			{Category: CategoryVocabulary, Lines: vocabularyLines(bundle)},
			{Category: CategoryReadability, Lines: readabilityLines(bundle)},
		},
	}
}

// Render flattens a report into the printable text form.
func Render(report *types.FeedbackReport) string {
	var sb strings.Builder
	for i, section := range report.Sections {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range section.Lines {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func overallLines(result *types.ScoreResult) []string {
	return []string{
		fmt.Sprintf("Overall Grammar Score: %.2f/100", result.Score),
		fmt.Sprintf("Grade: %s (%s)", result.Grade, result.GradeLabel),
	}
}

func grammarLines(bundle *types.MetricBundle, result *types.ScoreResult) []string {
	var lines []string

	if !bundle.GrammarProvenance.Computed {
		lines = append(lines,
			"! Grammar check unavailable, reduced confidence: "+bundle.GrammarProvenance.Reason)
		return lines
	}

	if result.ErrorCount == 0 {
		return []string{"✓ No grammar errors detected!"}
	}

	issues := sortedIssues(bundle.GrammarIssues)
	lines = append(lines, fmt.Sprintf("✗ Found %d grammar issue(s):", result.ErrorCount))
	for i, issue := range issues {
		if i == maxIssuesToDetail {
			lines = append(lines, fmt.Sprintf("  ... and %d more", len(issues)-maxIssuesToDetail))
			break
		}
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, issue.Message))
		if len(issue.Suggestions) > 0 {
			lines = append(lines, fmt.Sprintf("     Suggestion: %s", issue.Suggestions[0]))
		}
	}
	return lines
}

func structureLines(bundle *types.MetricBundle) []string {
	stats := bundle.Sentences
	return []string{
		"Sentence Structure:",
		fmt.Sprintf("  - %d sentence(s)", stats.Count),
		fmt.Sprintf("  - Average length: %.1f words", stats.AvgLength),
	}
}

func vocabularyLines(bundle *types.MetricBundle) []string {
	stats := bundle.Vocabulary
	lines := []string{
		"Vocabulary:",
		fmt.Sprintf("  - %d words (%d unique)", stats.WordCount, stats.UniqueWords),
		fmt.Sprintf("  - Lexical diversity: %.2f%%", stats.LexicalDiversity*100),
	}
	if stats.LowSample {
		lines = append(lines, "  - Sample too small for a confident diversity estimate")
	}
	return lines
}

func readabilityLines(bundle *types.MetricBundle) []string {
	if !bundle.ReadabilityProvenance.Computed {
		return []string{
			"Readability:",
			"  ! Not computed, reduced confidence: " + bundle.ReadabilityProvenance.Reason,
		}
	}
	stats := bundle.Readability
	return []string{
		"Readability:",
		fmt.Sprintf("  - Flesch Reading Ease: %.1f (%s)", stats.FleschReadingEase, stats.Interpretation),
	}
}

// sortedIssues returns the issues ordered by source offset, ascending, with
// the message as a stable tie-break.
func sortedIssues(issues []types.GrammarIssue) []types.GrammarIssue {
	sorted := make([]types.GrammarIssue, len(issues))
	copy(sorted, issues)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Offset != sorted[j].Offset {
			return sorted[i].Offset < sorted[j].Offset
		}
		return sorted[i].Message < sorted[j].Message
	})
	return sorted
}
