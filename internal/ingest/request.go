package ingest

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lox/iotforecast/internal/models"
)

var (
	ErrEmptyInput       = errors.New("no input data received")
	ErrInvalidJSON      = errors.New("input is not valid JSON")
	ErrNotObject        = errors.New("input must be a JSON object")
	ErrReadingsNotArray = errors.New("readings must be a JSON array")
	ErrReadingNotObject = errors.New("reading must be a JSON object")
)

// DecodeRequest parses a forecast request. Only the document's shape is
// strict: numeric fields that are missing, null or not numbers fall back to
// the model defaults, and an unreadable "hora" becomes hour 0.
func DecodeRequest(data []byte) (models.Request, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return models.Request{}, ErrEmptyInput
	}
	if !gjson.ValidBytes(data) {
		return models.Request{}, ErrInvalidJSON
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return models.Request{}, ErrNotObject
	}

	req := models.Request{Station: decodeStation(doc.Get("estacion"))}

	readings := doc.Get("readings")
	if !readings.Exists() || isEmptyContainer(readings) {
		return req, nil
	}
	if !readings.IsArray() {
		return models.Request{}, ErrReadingsNotArray
	}

	for i, r := range readings.Array() {
		if !r.IsObject() {
			return models.Request{}, fmt.Errorf("readings[%d]: %w", i, ErrReadingNotObject)
		}
		req.Readings = append(req.Readings, decodeReading(r))
	}
	return req, nil
}

// isEmptyContainer reports an empty object or string, which older clients
// send in place of an empty readings list. null is not empty.
func isEmptyContainer(v gjson.Result) bool {
	switch {
	case v.IsObject():
		return len(v.Map()) == 0
	case v.Type == gjson.String:
		return v.Str == ""
	}
	return false
}

// decodeStation keeps string identifiers exactly as sent. Other JSON values
// are carried as their literal text.
func decodeStation(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.String()
	case gjson.Null:
		return models.DefaultStation
	default:
		if !v.Exists() {
			return models.DefaultStation
		}
		return v.Raw
	}
}

func decodeReading(r gjson.Result) models.Reading {
	var flags []string

	hour, ok := parseHour(r.Get("hora"))
	if !ok {
		flags = append(flags, FlagHourInvalid)
	}

	field := func(key string, def float64) float64 {
		v, ok := number(r.Get(key))
		if !ok {
			if r.Get(key).Exists() {
				flags = append(flags, FlagNotNumeric)
			}
			return def
		}
		return v
	}

	reading := models.Reading{
		Hour:        hour,
		Temperature: field("temperatura", models.DefaultTemperature),
		Humidity:    field("humedad", models.DefaultHumidity),
		AirQuality:  field("calidadAire", models.DefaultAirQuality),
		Pressure:    field("presion", models.DefaultPressure),
	}
	reading.Flags = append(flags, ValidateReading(&reading)...)
	return reading
}

// number accepts JSON numbers and numeric strings. Anything that does not
// give a finite value is rejected.
func number(v gjson.Result) (float64, bool) {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseHour reads the integer before the first ':' of an "HH:MM" string. A
// missing field is treated as "00:00".
func parseHour(v gjson.Result) (int, bool) {
	if !v.Exists() {
		return 0, true
	}
	if v.Type != gjson.String {
		return 0, false
	}
	head, _, _ := strings.Cut(v.Str, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil {
		return 0, false
	}
	return hour, true
}
