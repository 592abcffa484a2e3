package engine

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/grammar-scorer/internal/analysis"
	"github.com/jonathan/grammar-scorer/internal/ingestion"
	"github.com/jonathan/grammar-scorer/internal/scoring"
	"github.com/jonathan/grammar-scorer/internal/transcribe"
	"github.com/jonathan/grammar-scorer/internal/types"
)

// Input is one item of a batch. Path points at an audio file or a transcript
// file (.txt/.html); Text carries an already-loaded transcript directly.
// Exactly one of Path or Text should be set.
type Input struct {
	ID   string
	Path string
	Text string
}

// ScoreBatch scores every input, isolating per-item failures so one bad file
// cannot abort the rest. Items in the result appear in input order regardless
// of completion order. Workers bounds concurrency; values below 1 run
// sequentially.
func (e *Engine) ScoreBatch(ctx context.Context, inputs []Input, workers int) (*types.BatchResult, error) {
	if workers < 1 {
		workers = 1
	}

	items := make([]types.BatchItem, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			items[i] = e.scoreOne(gctx, input)
			return nil
		})
	}
	// Workers never return errors; failures land in the item records.
	_ = g.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &types.BatchResult{
		Items:   items,
		Summary: summarize(items),
	}, nil
}

// scoreOne resolves one input to text and scores it, converting any error
// into a stage-tagged failure record.
func (e *Engine) scoreOne(ctx context.Context, input Input) types.BatchItem {
	item := types.BatchItem{Identifier: input.ID}

	text := input.Text
	if input.Path != "" {
		var err error
		text, err = e.resolveText(ctx, input.Path)
		if err != nil {
			item.Failure = &types.FailureRecord{
				Identifier: input.ID,
				Stage:      types.StageTranscription,
				Message:    err.Error(),
			}
			return item
		}
	}

	scored, err := e.ScoreText(ctx, text)
	if err != nil {
		item.Failure = &types.FailureRecord{
			Identifier: input.ID,
			Stage:      stageFor(err),
			Message:    err.Error(),
		}
		return item
	}

	item.Result = scored.Result
	item.Bundle = scored.Bundle
	item.Text = scored.Text
	return item
}

// resolveText turns a path into scoreable text: audio goes through the
// transcriber, transcript files are loaded from disk.
func (e *Engine) resolveText(ctx context.Context, path string) (string, error) {
	if transcribe.IsAudioFile(path) {
		if e.transcriber == nil {
			return "", &transcribe.TranscriptionError{
				Path: path,
				Err:  errors.New("no transcriber configured"),
			}
		}
		result, err := e.transcriber.Transcribe(ctx, path)
		if err != nil {
			return "", err
		}
		return result.Text, nil
	}
	return ingestion.LoadTranscript(path)
}

// stageFor maps a scoring error to the pipeline stage that produced it.
func stageFor(err error) types.Stage {
	var emptyErr *analysis.EmptyInputError
	if errors.As(err, &emptyErr) {
		return types.StageExtraction
	}
	var weightsErr *scoring.InvalidWeightsError
	var rangeErr *scoring.OutOfRangeError
	if errors.As(err, &weightsErr) || errors.As(err, &rangeErr) {
		return types.StageAggregation
	}
	var transcriptionErr *transcribe.TranscriptionError
	if errors.As(err, &transcriptionErr) {
		return types.StageTranscription
	}
	return types.StageExtraction
}

func summarize(items []types.BatchItem) types.BatchSummary {
	summary := types.BatchSummary{}
	var scores []float64
	for _, item := range items {
		if item.Failure != nil {
			summary.CountFailed++
			continue
		}
		summary.CountOK++
		scores = append(scores, item.Result.Score)
		summary.TotalErrors += item.Result.ErrorCount
	}
	summary.MeanScore = meanOf(scores)
	return summary
}

// InputsFromPaths builds batch inputs from file paths, using the base name
// without extension as the identifier.
func InputsFromPaths(paths []string) []Input {
	inputs := make([]Input, 0, len(paths))
	for _, path := range paths {
		inputs = append(inputs, Input{ID: baseName(path), Path: path})
	}
	return inputs
}

func baseName(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, "/\\"); idx >= 0 {
		base = base[idx+1:]
	}
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	return base
}
