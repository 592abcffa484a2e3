// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxIssuesToShow is the default number of grammar issues to display
	maxIssuesToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of one scored text.
func (p *Printer) PrintScoreResult(result *types.ScoreResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:  %.2f/100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Grade:  %s (%s)\n", result.Grade, result.GradeLabel))
	sb.WriteString("\n")
	sb.WriteString("Components:\n")
	for _, name := range []string{
		types.ComponentGrammar,
		types.ComponentStructure,
		types.ComponentVocabulary,
		types.ComponentReadability,
	} {
		if score, ok := result.ComponentScores[name]; ok {
			sb.WriteString(fmt.Sprintf("  %-12s %6.2f\n", name, score))
		}
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Words:  %d   Errors: %d", result.WordCount, result.ErrorCount))

	p.printBox("SCORE RESULT", sb.String())
}

// PrintMetricBundle outputs the extracted metrics with degradation markers.
func (p *Printer) PrintMetricBundle(bundle *types.MetricBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Sentences:  %d (avg %.1f words)\n",
		bundle.Sentences.Count, bundle.Sentences.AvgLength))
	sb.WriteString(fmt.Sprintf("Vocabulary: %d words, %d unique (%.2f)\n",
		bundle.Vocabulary.WordCount, bundle.Vocabulary.UniqueWords, bundle.Vocabulary.LexicalDiversity))
	sb.WriteString(fmt.Sprintf("Flesch:     %.1f\n", bundle.Readability.FleschReadingEase))

	if !bundle.GrammarProvenance.Computed {
		sb.WriteString(fmt.Sprintf("\n⚠ grammar degraded: %s\n", bundle.GrammarProvenance.Reason))
	} else {
		sb.WriteString("\nGrammar issues:\n")
		if len(bundle.GrammarIssues) == 0 {
			sb.WriteString("  (none)\n")
		}
		count := min(len(bundle.GrammarIssues), maxIssuesToShow)
		for i := 0; i < count; i++ {
			msg := bundle.GrammarIssues[i].Message
			if len(msg) > 50 {
				msg = msg[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", msg))
		}
		if len(bundle.GrammarIssues) > maxIssuesToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(bundle.GrammarIssues)-maxIssuesToShow))
		}
	}
	if !bundle.ReadabilityProvenance.Computed {
		sb.WriteString(fmt.Sprintf("⚠ readability degraded: %s\n", bundle.ReadabilityProvenance.Reason))
	}

	p.printBox("EXTRACTED METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintBatchSummary outputs the aggregate outcome of a batch run.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBatchSummary(summary *types.BatchSummary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Scored:  %d\n", summary.CountOK))
	sb.WriteString(fmt.Sprintf("Failed:  %d\n", summary.CountFailed))
	if summary.MeanScore != nil {
		sb.WriteString(fmt.Sprintf("Mean:    %.2f\n", *summary.MeanScore))
	} else {
		sb.WriteString("Mean:    n/a (no successful items)\n")
	}
	sb.WriteString(fmt.Sprintf("Errors:  %d total", summary.TotalErrors))

	p.printBox("BATCH SUMMARY", sb.String())
}

// PrintFailures outputs per-item failures from a batch.
func (p *Printer) PrintFailures(items []types.BatchItem) {
	var failed []types.FailureRecord
	for _, item := range items {
		if item.Failure != nil {
			failed = append(failed, *item.Failure)
		}
	}
	if len(failed) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d item(s) failed:\n\n", len(failed)))
	for i, f := range failed {
		msg := f.Message
		if len(msg) > 45 {
			msg = msg[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s [%s]\n", f.Identifier, f.Stage))
		sb.WriteString(fmt.Sprintf("  %s\n", msg))
		if i < len(failed)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("FAILED ITEMS", sb.String())
}
