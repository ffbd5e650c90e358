package forecast

import "math"

const (
	fullConfidenceSamples = 12.0
	minHorizonDecay       = 0.3
	horizonHours          = 24.0
)

// Confidence scores a prediction from how much history backs it and how far
// ahead it reaches. Both factors lie in [0, 1], so the product does too.
func Confidence(samples, hoursAhead int) float64 {
	sufficiency := math.Min(float64(samples)/fullConfidenceSamples, 1.0)
	decay := math.Max(minHorizonDecay, 1.0-float64(hoursAhead)/horizonHours)
	return round2(sufficiency * decay)
}
