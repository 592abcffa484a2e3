package analysis

import (
	"context"
	"strings"

	"github.com/jonathan/grammar-scorer/internal/grammar"
	"github.com/jonathan/grammar-scorer/internal/types"
)

// neutralFleschScore substitutes for the readability component when the
// formula is undefined for the input. It sits at the middle of the display
// band so it neither rewards nor penalizes.
const neutralFleschScore = 50.0

// Extractor produces a MetricBundle from text. The grammar checker is
// optional; when nil or failing, the bundle degrades with provenance instead
// of the extraction erroring.
type Extractor struct {
	Checker  grammar.Checker
	Language string
	// MinWordsForVocabConfidence marks vocabulary stats as low-sample below
	// this word count.
	MinWordsForVocabConfidence int
}

// NewExtractor creates an extractor with the given optional checker.
func NewExtractor(checker grammar.Checker, language string, minWords int) *Extractor {
	return &Extractor{
		Checker:                    checker,
		Language:                   language,
		MinWordsForVocabConfidence: minWords,
	}
}

// Extract computes all metric bundles for the text. It fails only on empty
// or whitespace-only input, which is checked before any collaborator call.
func (e *Extractor) Extract(ctx context.Context, text string) (*types.MetricBundle, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &EmptyInputError{Message: "text is empty or whitespace-only"}
	}

	bundle := &types.MetricBundle{
		GrammarIssues: []types.GrammarIssue{},
		Sentences:     AnalyzeSentenceStructure(text),
		Vocabulary:    AnalyzeVocabulary(text, e.MinWordsForVocabConfidence),
	}

	if stats, ok := CalculateReadability(text); ok {
		bundle.Readability = stats
		bundle.ReadabilityProvenance = types.Computed()
	} else {
		bundle.Readability = types.ReadabilityStats{FleschReadingEase: neutralFleschScore}
		bundle.ReadabilityProvenance = types.Unavailable("no scoreable words detected")
	}

	switch {
	case e.Checker == nil:
		bundle.GrammarProvenance = types.Unavailable("grammar checker not configured")
	default:
		issues, err := e.Checker.Check(ctx, text, e.Language)
		if err != nil {
			bundle.GrammarProvenance = types.Unavailable("grammar check failed: " + err.Error())
		} else {
			bundle.GrammarIssues = issues
			bundle.GrammarProvenance = types.Computed()
		}
	}

	return bundle, nil
}
