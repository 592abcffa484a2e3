// Package scoring combines metric bundles into weighted 0-100 scores and
// maps scores to letter grades.
package scoring

import "fmt"

// InvalidWeightsError indicates the configured weights cannot produce a
// score. This is a configuration bug and should fail fast at startup.
type InvalidWeightsError struct {
	Message string
}

func (e *InvalidWeightsError) Error() string {
	return fmt.Sprintf("invalid weights: %s", e.Message)
}

// OutOfRangeError indicates a score outside [0,100] reached the grader.
// The aggregator clamps its output, so seeing this means an upstream bug.
type OutOfRangeError struct {
	Score float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("score %.2f is outside the range [0,100]", e.Score)
}
