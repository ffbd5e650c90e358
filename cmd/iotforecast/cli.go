package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/lox/iotforecast/internal/forecast"
	"github.com/lox/iotforecast/internal/ingest"
	"github.com/lox/iotforecast/internal/metrics"
	"github.com/lox/iotforecast/internal/models"
)

// selfCheck is swapped out in tests.
var selfCheck = forecast.SelfCheck

type CLI struct {
	Input       string `short:"i" default:"-" env:"IOTFORECAST_INPUT" help:"Read the request from this file instead of stdin (- for stdin)."`
	TZ          string `name:"tz" default:"Local" env:"IOTFORECAST_TZ" help:"Timezone for the prediction date and current hour."`
	Now         string `env:"IOTFORECAST_NOW" help:"Pin the clock to this RFC3339 time."`
	LogLevel    string `default:"info" enum:"debug,info,warn,error" env:"LOG_LEVEL" help:"Log level (${enum})."`
	MetricsFile string `type:"path" env:"IOTFORECAST_METRICS_FILE" help:"Write Prometheus metrics to this textfile after the run."`
	Compact     bool   `help:"Write single-line JSON instead of indented output."`
}

// Run executes one forecast and returns the process exit code. The forecast
// document always goes to stdout except for startup failures, which are
// reported on stderr before any input is read.
func (c *CLI) Run(stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr, logLevel(c.LogLevel))

	if err := selfCheck(); err != nil {
		logger.Error("startup check failed", "err", err)
		c.write(stderr, forecast.ErrorResult(err.Error(), time.Now()), logger)
		return 1
	}

	loc := loadLocation(c.TZ, logger)
	engine := forecast.NewEngine(loc)
	if c.Now != "" {
		pinned, err := time.Parse(time.RFC3339, c.Now)
		if err != nil {
			logger.Error("invalid --now", "value", c.Now, "err", err)
			return 1
		}
		engine = engine.WithClock(func() time.Time { return pinned })
	}

	m := metrics.New()
	start := time.Now()

	result, err := c.process(stdin, engine, m, logger)

	status := metrics.StatusOK
	if err != nil {
		status = metrics.StatusError
		logger.Error("forecast failed", "err", err)
	}
	m.ObserveRun(status, time.Since(start))

	if c.MetricsFile != "" {
		if err := m.WriteTextfile(c.MetricsFile); err != nil {
			logger.Warn("write metrics textfile", "path", c.MetricsFile, "err", err)
		}
	}

	writeErr := c.write(stdout, result, logger)
	if err != nil || writeErr != nil {
		return 1
	}
	return 0
}

// process reads and forecasts one request. Any failure, including a panic
// inside the engine, is folded into an error document.
func (c *CLI) process(stdin io.Reader, engine *forecast.Engine, m *metrics.Metrics, logger *slog.Logger) (result models.ForecastResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
			result = forecast.ErrorResult(fmt.Sprintf("fatal error: %v. Traceback: %s", r, debug.Stack()), engine.Now())
		}
	}()

	data, err := c.readInput(stdin)
	if err != nil {
		return forecast.ErrorResult(fmt.Sprintf("read input: %v", err), engine.Now()), err
	}

	req, err := ingest.DecodeRequest(data)
	if errors.Is(err, ingest.ErrEmptyInput) {
		return forecast.ErrorResult(err.Error(), engine.Now()), err
	}
	if err != nil {
		return forecast.ErrorResult(fmt.Sprintf("processing error: %v", err), engine.Now()), err
	}

	logger.Info("forecasting", "station", req.Station, "readings", len(req.Readings))
	m.ReadingsProcessed.Add(float64(len(req.Readings)))
	for i, r := range req.Readings {
		if len(r.Flags) > 0 {
			logger.Warn("suspect reading", "index", i, "flags", strings.Join(r.Flags, ","))
			m.ObserveFlags(r.Flags)
		}
	}

	result = engine.Forecast(req)
	m.PredictionsTotal.Add(float64(len(result.Predictions)))
	logger.Debug("forecast complete", "station", result.Station, "date", result.PredictionDate)
	return result, nil
}

func (c *CLI) readInput(stdin io.Reader) ([]byte, error) {
	if c.Input == "" || c.Input == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(c.Input)
}

func (c *CLI) write(w io.Writer, result models.ForecastResult, logger *slog.Logger) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if !c.Compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		logger.Error("write result", "err", err)
		return err
	}
	return nil
}

func loadLocation(name string, logger *slog.Logger) *time.Location {
	if name == "" || name == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("could not load timezone, using UTC", "tz", name, "err", err)
		return time.UTC
	}
	return loc
}
