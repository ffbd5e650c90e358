package forecast

import "github.com/lox/iotforecast/internal/models"

const (
	recentWindow = 6

	minTemperature = 10.0
	maxTemperature = 35.0
	minHumidity    = 20.0
	maxHumidity    = 80.0
	minAirQuality  = 30.0
	maxAirQuality  = 100.0
	minPressure    = 750.0
	maxPressure    = 800.0

	humidityTrendFactor = 0.5
	pressureTrendFactor = 0.1
)

// PredictTemperature extrapolates the weighted average of the last six
// samples along their linear trend.
func PredictTemperature(data []float64, hoursAhead int) float64 {
	return predictTrended(data, hoursAhead, 1.0, models.DefaultTemperature, minTemperature, maxTemperature)
}

// PredictHumidity is PredictTemperature with half the trend, assuming
// humidity drifts more slowly.
func PredictHumidity(data []float64, hoursAhead int) float64 {
	return predictTrended(data, hoursAhead, humidityTrendFactor, models.DefaultHumidity, minHumidity, maxHumidity)
}

func predictTrended(data []float64, hoursAhead int, trendFactor, def, lo, hi float64) float64 {
	if len(data) < 2 {
		return round2(clamp(lastOr(data, def), lo, hi, def))
	}

	recent := tail(data, recentWindow)
	wma, _ := WeightedMovingAverage(recent)
	prediction := wma + LinearTrend(recent)*float64(hoursAhead)*trendFactor
	return round2(clamp(prediction, lo, hi, def))
}

// PredictAirQuality scales the recent weighted average by the hourly
// pattern factor of targetHour. There is no trend term.
func PredictAirQuality(data []float64, targetHour int, byHour map[int][]float64) float64 {
	def := models.DefaultAirQuality
	if len(data) < 2 {
		return round2(clamp(lastOr(data, def), minAirQuality, maxAirQuality, def))
	}

	wma, _ := WeightedMovingAverage(tail(data, recentWindow))
	prediction := wma * HourlyPatternFactor(targetHour, byHour)
	return round2(clamp(prediction, minAirQuality, maxAirQuality, def))
}

// PredictPressure anchors on the last sample. A trend is only used once six
// samples exist: the mean of the last three minus the mean of the three
// before them. Shorter histories stay flat.
func PredictPressure(data []float64, hoursAhead int) float64 {
	def := models.DefaultPressure
	if len(data) == 0 {
		return def
	}

	last := data[len(data)-1]
	var trend float64
	if len(data) >= recentWindow {
		n := len(data)
		trend = mean(data[n-3:]) - mean(data[n-6:n-3])
	}

	prediction := last + trend*float64(hoursAhead)*pressureTrendFactor
	return round2(clamp(prediction, minPressure, maxPressure, def))
}

func lastOr(data []float64, def float64) float64 {
	if len(data) == 0 {
		return def
	}
	return data[len(data)-1]
}
