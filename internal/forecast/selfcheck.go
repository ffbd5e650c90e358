package forecast

import (
	"errors"
	"fmt"
	"math"
)

// ErrNumerics reports that the numeric primitives failed their startup check.
var ErrNumerics = errors.New("numeric primitives unavailable")

const selfCheckTolerance = 1e-9

// SelfCheck runs the statistical primitives over fixed inputs with known
// answers. The CLI calls it before reading any input.
func SelfCheck() error {
	if got := LinearTrend([]float64{1, 3, 5, 7}); !near(got, 2) {
		return fmt.Errorf("%w: linear trend = %v, want 2", ErrNumerics, got)
	}

	avg, ok := WeightedMovingAverageWith([]float64{2, 4}, []float64{1, 3})
	if !ok || !near(avg, 3.5) {
		return fmt.Errorf("%w: weighted average = %v, want 3.5", ErrNumerics, avg)
	}

	avg, ok = WeightedMovingAverage([]float64{0, 1})
	want := 1 / (1 + math.Exp(-1))
	if !ok || !near(avg, want) {
		return fmt.Errorf("%w: exponential average = %v, want %v", ErrNumerics, avg, want)
	}

	if got := HourlyPatternFactor(1, map[int][]float64{0: {10}, 1: {30}}); !near(got, 1.5) {
		return fmt.Errorf("%w: hourly factor = %v, want 1.5", ErrNumerics, got)
	}
	return nil
}

func near(a, b float64) bool {
	return math.Abs(a-b) < selfCheckTolerance
}
