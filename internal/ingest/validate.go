package ingest

import "github.com/lox/iotforecast/internal/models"

const (
	FlagHourInvalid        = "hour_invalid"
	FlagHourOutOfRange     = "hour_out_of_range"
	FlagNotNumeric         = "not_numeric"
	FlagTempOutOfRange     = "temp_out_of_range"
	FlagHumidityInvalid    = "humidity_invalid"
	FlagAirQualityNegative = "air_quality_negative"
	FlagPressureOutOfRange = "pressure_out_of_range"
)

// ValidateReading flags physically implausible values. Flags are reported
// to the operator; the values themselves are forecast as given and bounded
// by the predictors.
func ValidateReading(r *models.Reading) []string {
	var flags []string

	if r.Hour < 0 || r.Hour > 23 {
		flags = append(flags, FlagHourOutOfRange)
	}

	if r.Temperature < -40 || r.Temperature > 60 {
		flags = append(flags, FlagTempOutOfRange)
	}

	if r.Humidity < 0 || r.Humidity > 100 {
		flags = append(flags, FlagHumidityInvalid)
	}

	if r.AirQuality < 0 {
		flags = append(flags, FlagAirQualityNegative)
	}

	if r.Pressure < 300 || r.Pressure > 1100 {
		flags = append(flags, FlagPressureOutOfRange)
	}

	return flags
}
