package forecast

import (
	"fmt"
	"time"

	"github.com/lox/iotforecast/internal/models"
)

const (
	// Hours is the number of hourly predictions in every forecast.
	Hours = 24

	emptyConfidence = 0.3
	dateLayout      = "2006-01-02"
)

// Engine turns a station's reading history into a 24 hour forecast. It
// holds no state between calls beyond its clock.
type Engine struct {
	loc *time.Location
	now func() time.Time
}

// NewEngine returns an Engine reading the wall clock in loc. A nil loc
// means UTC.
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc, now: time.Now}
}

// WithClock returns a copy of e that uses now instead of the wall clock.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	c := *e
	c.now = now
	return &c
}

// Now is the engine's current time in its location.
func (e *Engine) Now() time.Time {
	return e.now().In(e.loc)
}

// Forecast predicts the next Hours hours from req's readings, oldest first.
// With no readings every hour gets the field defaults at confidence 0.3.
func (e *Engine) Forecast(req models.Request) models.ForecastResult {
	now := e.Now()

	result := models.ForecastResult{
		Station:        req.Station,
		PredictionDate: now.Format(dateLayout),
		Predictions:    make([]models.Prediction, 0, Hours),
	}

	if len(req.Readings) == 0 {
		for hour := 0; hour < Hours; hour++ {
			result.Predictions = append(result.Predictions, models.Prediction{
				Hour:        hourLabel(hour),
				Temperature: models.DefaultTemperature,
				Humidity:    models.DefaultHumidity,
				AirQuality:  models.DefaultAirQuality,
				Pressure:    models.DefaultPressure,
				Confidence:  emptyConfidence,
			})
		}
		return result
	}

	s := newSeries(req.Readings)

	// The label is the offset from now, not the wall-clock hour being
	// predicted. Clients already depend on this.
	for offset := 0; offset < Hours; offset++ {
		target := (now.Hour() + offset) % Hours
		result.Predictions = append(result.Predictions, models.Prediction{
			Hour:        hourLabel(offset),
			Temperature: PredictTemperature(s.temperature, offset),
			Humidity:    PredictHumidity(s.humidity, offset),
			AirQuality:  PredictAirQuality(s.airQuality, target, s.airByHour),
			Pressure:    PredictPressure(s.pressure, offset),
			// Shared by all four fields and keyed on the temperature series.
			Confidence: Confidence(len(s.temperature), offset),
		})
	}

	return result
}

// ErrorResult is the document emitted when a request cannot be processed.
func ErrorResult(msg string, now time.Time) models.ForecastResult {
	return models.ForecastResult{
		Error:          msg,
		Station:        models.DefaultStation,
		PredictionDate: now.Format(dateLayout),
		Predictions:    []models.Prediction{},
	}
}

type series struct {
	temperature []float64
	humidity    []float64
	airQuality  []float64
	pressure    []float64
	airByHour   map[int][]float64
}

func newSeries(readings []models.Reading) series {
	s := series{
		temperature: make([]float64, 0, len(readings)),
		humidity:    make([]float64, 0, len(readings)),
		airQuality:  make([]float64, 0, len(readings)),
		pressure:    make([]float64, 0, len(readings)),
		airByHour:   make(map[int][]float64),
	}
	for _, r := range readings {
		s.temperature = append(s.temperature, r.Temperature)
		s.humidity = append(s.humidity, r.Humidity)
		s.airQuality = append(s.airQuality, r.AirQuality)
		s.pressure = append(s.pressure, r.Pressure)
		s.airByHour[r.Hour] = append(s.airByHour[r.Hour], r.AirQuality)
	}
	return s
}

func hourLabel(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
