package scoring

import (
	"fmt"
	"sort"

	"github.com/jonathan/grammar-scorer/internal/types"
)

// DefaultGradeBands returns the standard letter grade bands. Lower bounds
// are inclusive, upper bounds exclusive, except A which includes 100.
func DefaultGradeBands() []types.GradeBand {
	return []types.GradeBand{
		{Grade: types.GradeA, Label: "Excellent", Lower: 90, Upper: 100},
		{Grade: types.GradeB, Label: "Good", Lower: 75, Upper: 90},
		{Grade: types.GradeC, Label: "Average", Lower: 60, Upper: 75},
		{Grade: types.GradeD, Label: "Poor", Lower: 40, Upper: 60},
		{Grade: types.GradeF, Label: "Very Poor", Lower: 0, Upper: 40},
	}
}

// GradeForScore maps a score to its band. The range check is enforced here
// even though the aggregator clamps, because the grader is also called
// directly with externally supplied scores.
func GradeForScore(score float64, bands []types.GradeBand) (types.GradeBand, error) {
	if score < 0 || score > 100 {
		return types.GradeBand{}, &OutOfRangeError{Score: score}
	}

	top := topBand(bands)
	for _, band := range bands {
		if score >= band.Lower && score < band.Upper {
			return band, nil
		}
		// The top band is closed on both ends so 100 maps to a grade.
		if band == top && score == band.Upper {
			return band, nil
		}
	}
	return types.GradeBand{}, fmt.Errorf("no grade band covers score %.2f", score)
}

// ValidateBands checks that the bands partition [0,100] with no gaps and no
// overlaps.
func ValidateBands(bands []types.GradeBand) error {
	if len(bands) == 0 {
		return fmt.Errorf("grade bands are empty")
	}

	sorted := make([]types.GradeBand, len(bands))
	copy(sorted, bands)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lower < sorted[j].Lower })

	for _, band := range sorted {
		if band.Upper <= band.Lower {
			return fmt.Errorf("grade band %s has empty interval [%.2f,%.2f)", band.Grade, band.Lower, band.Upper)
		}
	}
	if sorted[0].Lower != 0 {
		return fmt.Errorf("grade bands do not start at 0 (first lower bound is %.2f)", sorted[0].Lower)
	}
	if sorted[len(sorted)-1].Upper != 100 {
		return fmt.Errorf("grade bands do not end at 100 (last upper bound is %.2f)", sorted[len(sorted)-1].Upper)
	}
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Lower != sorted[i-1].Upper {
			return fmt.Errorf("grade bands %s and %s do not meet: %.2f vs %.2f",
				sorted[i-1].Grade, sorted[i].Grade, sorted[i-1].Upper, sorted[i].Lower)
		}
	}
	return nil
}

func topBand(bands []types.GradeBand) types.GradeBand {
	var top types.GradeBand
	for i, band := range bands {
		if i == 0 || band.Upper > top.Upper {
			top = band
		}
	}
	return top
}
