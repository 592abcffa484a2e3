// Package engine orchestrates the scoring pipeline: transcription, metric
// extraction, aggregation, and grading.
package engine

import (
	"context"
	"fmt"
	"math"

	"github.com/jonathan/grammar-scorer/internal/analysis"
	"github.com/jonathan/grammar-scorer/internal/scoring"
	"github.com/jonathan/grammar-scorer/internal/transcribe"
	"github.com/jonathan/grammar-scorer/internal/types"
)

// Engine runs the scoring pipeline. Weights and bands are captured at
// construction; changing configuration mid-batch is not supported.
type Engine struct {
	extractor   *analysis.Extractor
	transcriber transcribe.Transcriber
	weights     types.Weights
	bands       []types.GradeBand
	opts        scoring.Options
}

// Params configures a new Engine. Transcriber is optional; without one only
// text inputs can be scored. Zero-valued Weights or empty Bands select the
// defaults.
type Params struct {
	Extractor   *analysis.Extractor
	Transcriber transcribe.Transcriber
	Weights     types.Weights
	Bands       []types.GradeBand
	Options     scoring.Options
}

// New creates an engine. The weight and band configuration is validated once
// here so batches can fail fast instead of per item.
func New(params Params) (*Engine, error) {
	if params.Extractor == nil {
		return nil, fmt.Errorf("extractor is required")
	}

	weights := params.Weights
	if weights == (types.Weights{}) {
		weights = types.DefaultWeights()
	}
	if weights.Sum() == 0 {
		return nil, &scoring.InvalidWeightsError{Message: "effective weight sum is zero"}
	}

	bands := params.Bands
	if len(bands) == 0 {
		bands = scoring.DefaultGradeBands()
	}
	if err := scoring.ValidateBands(bands); err != nil {
		return nil, err
	}

	opts := params.Options
	if opts.PenaltyFactor <= 0 {
		opts = scoring.DefaultOptions()
	}

	return &Engine{
		extractor:   params.Extractor,
		transcriber: params.Transcriber,
		weights:     weights,
		bands:       bands,
		opts:        opts,
	}, nil
}

// Scored is the complete outcome for one input: the transcript it was scored
// from, the extracted metrics, the score, and the feedback source bundle.
type Scored struct {
	Text   string
	Bundle *types.MetricBundle
	Result *types.ScoreResult
}

// ScoreText runs extraction, aggregation, and grading on a transcript.
func (e *Engine) ScoreText(ctx context.Context, text string) (*Scored, error) {
	bundle, err := e.extractor.Extract(ctx, text)
	if err != nil {
		return nil, err
	}

	breakdown, err := scoring.Aggregate(bundle, e.weights, e.opts)
	if err != nil {
		return nil, err
	}

	band, err := scoring.GradeForScore(breakdown.Score, e.bands)
	if err != nil {
		return nil, err
	}

	return &Scored{
		Text:   text,
		Bundle: bundle,
		Result: &types.ScoreResult{
			Score:           breakdown.Score,
			Grade:           band.Grade,
			GradeLabel:      band.Label,
			ComponentScores: breakdown.ComponentScores,
			ErrorCount:      len(bundle.GrammarIssues),
			WordCount:       bundle.Vocabulary.WordCount,
		},
	}, nil
}

// ScoreAudio transcribes the audio file and scores the transcript.
func (e *Engine) ScoreAudio(ctx context.Context, audioPath string) (*Scored, error) {
	if e.transcriber == nil {
		return nil, &transcribe.TranscriptionError{
			Path: audioPath,
			Err:  fmt.Errorf("no transcriber configured"),
		}
	}

	result, err := e.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return nil, err
	}

	return e.ScoreText(ctx, result.Text)
}

// meanOf returns the mean of scores rounded to 2 decimals, or nil when the
// slice is empty.
func meanOf(scores []float64) *float64 {
	if len(scores) == 0 {
		return nil
	}
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	mean := math.Round(sum/float64(len(scores))*100) / 100
	return &mean
}
