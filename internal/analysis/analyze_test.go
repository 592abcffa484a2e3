package analysis

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// fakeChecker records calls and returns canned issues or an error.
type fakeChecker struct {
	issues []types.GrammarIssue
	err    error
	calls  int
}

func (f *fakeChecker) Check(_ context.Context, _, _ string) ([]types.GrammarIssue, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.issues, nil
}

func TestExtract_EmptyInputFailsBeforeChecker(t *testing.T) {
	checker := &fakeChecker{}
	extractor := NewExtractor(checker, "en-US", 10)

	_, err := extractor.Extract(context.Background(), "   \n\t  ")

	var emptyErr *EmptyInputError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, 0, checker.calls)
}

func TestExtract_NilCheckerDegrades(t *testing.T) {
	extractor := NewExtractor(nil, "en-US", 10)

	bundle, err := extractor.Extract(context.Background(), "This is a perfectly ordinary sentence for testing.")

	require.NoError(t, err)
	assert.False(t, bundle.GrammarProvenance.Computed)
	assert.Equal(t, "grammar checker not configured", bundle.GrammarProvenance.Reason)
	assert.Empty(t, bundle.GrammarIssues)
	assert.True(t, bundle.Degraded())
}

func TestExtract_CheckerFailureDegrades(t *testing.T) {
	checker := &fakeChecker{err: fmt.Errorf("connection refused")}
	extractor := NewExtractor(checker, "en-US", 10)

	bundle, err := extractor.Extract(context.Background(), "This sentence is fine.")

	require.NoError(t, err)
	assert.False(t, bundle.GrammarProvenance.Computed)
	assert.Contains(t, bundle.GrammarProvenance.Reason, "grammar check failed")
	assert.Equal(t, 1, checker.calls)
}

func TestExtract_CheckerSuccess(t *testing.T) {
	issues := []types.GrammarIssue{{Message: "Possible agreement error", Offset: 2, Length: 3}}
	checker := &fakeChecker{issues: issues}
	extractor := NewExtractor(checker, "en-US", 10)

	bundle, err := extractor.Extract(context.Background(), "I has a cat.")

	require.NoError(t, err)
	assert.True(t, bundle.GrammarProvenance.Computed)
	assert.Equal(t, issues, bundle.GrammarIssues)
}

func TestExtract_AllMetricsPopulated(t *testing.T) {
	extractor := NewExtractor(nil, "en-US", 10)

	bundle, err := extractor.Extract(context.Background(), "The quick brown fox jumps over the lazy dog. It runs very fast.")

	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Sentences.Count)
	assert.Equal(t, 13, bundle.Vocabulary.WordCount)
	assert.True(t, bundle.ReadabilityProvenance.Computed)
	assert.NotZero(t, bundle.Readability.FleschReadingEase)
}

func TestExtract_ReadabilityDegradesOnUnscoreableText(t *testing.T) {
	extractor := NewExtractor(nil, "en-US", 10)

	// "..." is non-empty input but yields no words or sentences.
	bundle, err := extractor.Extract(context.Background(), "...")

	require.NoError(t, err)
	assert.False(t, bundle.ReadabilityProvenance.Computed)
	assert.Equal(t, neutralFleschScore, bundle.Readability.FleschReadingEase)
}
