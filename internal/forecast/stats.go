package forecast

import (
	"maps"
	"math"
	"slices"
	"strconv"
)

// WeightedMovingAverage averages data with exponentially increasing weights
// so that later samples count more. The weight of sample i of n is
// e^(-1 + i/(n-1)), normalised to sum to one. ok is false for empty data.
func WeightedMovingAverage(data []float64) (avg float64, ok bool) {
	return WeightedMovingAverageWith(data, exponentialWeights(len(data)))
}

// WeightedMovingAverageWith averages data using caller supplied weights,
// normalised the same way. ok is false when data is empty, the lengths
// differ or the weights do not sum to a positive value.
func WeightedMovingAverageWith(data, weights []float64) (avg float64, ok bool) {
	if len(data) == 0 || len(weights) != len(data) {
		return 0, false
	}

	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return 0, false
	}

	var sum float64
	for i, v := range data {
		sum += v * (weights[i] / total)
	}
	return sum, true
}

func exponentialWeights(n int) []float64 {
	weights := make([]float64, n)
	switch n {
	case 0:
	case 1:
		weights[0] = math.Exp(-1)
	default:
		for i := range weights {
			weights[i] = math.Exp(-1 + float64(i)/float64(n-1))
		}
	}
	return weights
}

// LinearTrend returns the least-squares slope of data plotted against
// x = 0..n-1. Fewer than two samples have no trend.
func LinearTrend(data []float64) float64 {
	n := len(data)
	if n < 2 {
		return 0
	}

	meanX := float64(n-1) / 2
	meanY := mean(data)

	var num, den float64
	for i, y := range data {
		dx := float64(i) - meanX
		num += dx * (y - meanY)
		den += dx * dx
	}
	return num / den
}

// HourlyPatternFactor compares the average value seen at hour against the
// average of every hour's own average. Hours with no history, or a zero
// overall average, give a neutral factor of 1.
func HourlyPatternFactor(hour int, byHour map[int][]float64) float64 {
	values := byHour[hour]
	if len(values) == 0 {
		return 1.0
	}

	// Sorted so the float sum is identical between runs.
	var hourMeans []float64
	for _, h := range slices.Sorted(maps.Keys(byHour)) {
		if vals := byHour[h]; len(vals) > 0 {
			hourMeans = append(hourMeans, mean(vals))
		}
	}

	avgAll := mean(hourMeans)
	if avgAll == 0 {
		return 1.0
	}
	return mean(values) / avgAll
}

func mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

// clamp bounds v to [lo, hi]. NaN, which only arises from overflowing
// input, maps to fallback.
func clamp(v, lo, hi, fallback float64) float64 {
	if math.IsNaN(v) {
		return fallback
	}
	return math.Max(lo, math.Min(hi, v))
}

// round2 rounds the exact binary value of v to two decimals, breaking exact
// ties to the even digit: 0.125 becomes 0.12 and 0.075 (really 0.07499...)
// becomes 0.07.
func round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// tail returns at most the last n samples.
func tail(data []float64, n int) []float64 {
	if len(data) <= n {
		return data
	}
	return data[len(data)-n:]
}
