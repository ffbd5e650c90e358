package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics holds the collectors for a single forecast run. Each run gets its
// own registry so the result can be written out as a node_exporter textfile.
type Metrics struct {
	Registry *prometheus.Registry

	RunsTotal         *prometheus.CounterVec
	ReadingsProcessed prometheus.Counter
	ReadingFlags      *prometheus.CounterVec
	PredictionsTotal  prometheus.Counter
	RunDuration       prometheus.Histogram
}

// New returns collectors registered on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		RunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iotforecast_runs_total",
				Help: "Total forecast runs by outcome",
			},
			[]string{"status"},
		),
		ReadingsProcessed: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "iotforecast_readings_total",
				Help: "Total sensor readings fed to the forecast engine",
			},
		),
		ReadingFlags: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "iotforecast_reading_flags_total",
				Help: "Total quality flags raised on input readings",
			},
			[]string{"flag"},
		),
		PredictionsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "iotforecast_predictions_total",
				Help: "Total hourly predictions emitted",
			},
		),
		RunDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "iotforecast_run_duration_seconds",
				Help:    "Forecast run duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
	}
}

// ObserveRun records the outcome and duration of a run.
func (m *Metrics) ObserveRun(status string, elapsed time.Duration) {
	m.RunsTotal.WithLabelValues(status).Inc()
	m.RunDuration.Observe(elapsed.Seconds())
}

// ObserveFlags counts each quality flag raised on a reading.
func (m *Metrics) ObserveFlags(flags []string) {
	for _, f := range flags {
		m.ReadingFlags.WithLabelValues(f).Inc()
	}
}

// WriteTextfile writes the registry in text exposition format. The file is
// replaced atomically.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
