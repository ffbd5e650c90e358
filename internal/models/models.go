package models

// Field defaults applied when a reading omits a value or carries one that
// cannot be read as a number.
const (
	DefaultTemperature = 22.0
	DefaultHumidity    = 50.0
	DefaultAirQuality  = 60.0
	DefaultPressure    = 775.0
	DefaultStation     = "unknown"
)

// Reading is one station observation after defaults have been applied.
type Reading struct {
	Hour        int // parsed from "HH:MM"; 0 when unparsable
	Temperature float64
	Humidity    float64
	AirQuality  float64
	Pressure    float64
	Flags       []string // quality flags, informational only
}

// Request is a decoded forecast request for a single station.
type Request struct {
	Station  string
	Readings []Reading
}

// Prediction is one forecast hour. All four fields share one confidence.
type Prediction struct {
	Hour        string  `json:"hora"` // offset from now rendered as "HH:00"
	Temperature float64 `json:"temperatura"`
	Humidity    float64 `json:"humedad"`
	AirQuality  float64 `json:"calidadAire"`
	Pressure    float64 `json:"presion"`
	Confidence  float64 `json:"confianza"`
}

// ForecastResult is the document written to stdout. On failure Error is set
// and Predictions is empty, never nil.
type ForecastResult struct {
	Error          string       `json:"error,omitempty"`
	Station        string       `json:"estacion"`
	PredictionDate string       `json:"fecha_prediccion"`
	Predictions    []Prediction `json:"predicciones"`
}
