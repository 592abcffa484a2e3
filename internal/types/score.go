package types

// Component names used as keys in ScoreResult.ComponentScores and in Weights.
const (
	ComponentGrammar     = "grammar"
	ComponentStructure   = "structure"
	ComponentVocabulary  = "vocabulary"
	ComponentReadability = "readability"
)

// Weights controls the relative contribution of each scoring component.
// Weights need not sum to 1; the aggregator normalizes by the sum of the
// weights actually applied. A zero weight excludes its component entirely.
type Weights struct {
	GrammarErrors      float64 `json:"grammar_errors" validate:"gte=0"`
	SentenceStructure  float64 `json:"sentence_structure" validate:"gte=0"`
	VocabularyRichness float64 `json:"vocabulary_richness" validate:"gte=0"`
	Readability        float64 `json:"readability" validate:"gte=0"`
}

// Sum returns the total of all four weights.
func (w Weights) Sum() float64 {
	return w.GrammarErrors + w.SentenceStructure + w.VocabularyRichness + w.Readability
}

// DefaultWeights returns the standard component weighting.
func DefaultWeights() Weights {
	return Weights{
		GrammarErrors:      0.40,
		SentenceStructure:  0.20,
		VocabularyRichness: 0.20,
		Readability:        0.20,
	}
}

// Grade is a letter grade for a score.
type Grade string

// Letter grades, best to worst.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// GradeBand maps a contiguous score interval to a letter grade.
// Lower is inclusive; Upper is exclusive except for the top band, which
// includes 100.
type GradeBand struct {
	Grade Grade   `json:"grade"`
	Label string  `json:"label"`
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

// ScoreResult is the outcome of scoring one text. Created once per text and
// immutable afterward.
type ScoreResult struct {
	Score           float64            `json:"score"`
	Grade           Grade              `json:"grade"`
	GradeLabel      string             `json:"grade_label"`
	ComponentScores map[string]float64 `json:"component_scores"`
	ErrorCount      int                `json:"error_count"`
	WordCount       int                `json:"word_count"`
}

// FeedbackSection groups feedback lines under a category.
type FeedbackSection struct {
	Category string   `json:"category"`
	Lines    []string `json:"lines"`
}

// FeedbackReport is the structured human-readable feedback for one result.
// Sections appear in a fixed order so repeated runs render identically.
type FeedbackReport struct {
	Sections []FeedbackSection `json:"sections"`
}
