// Package metrics provides Prometheus metrics for fixture loading and verb
// validation runs.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Validation outcome label values.
const (
	OutcomePass    = "pass"
	OutcomeFail    = "fail"
	OutcomeMissing = "missing"
)

// Filter reason label values.
const (
	FilterUnknownEvent = "unknown"
	FilterMissingID    = "missing_id"
)

// Manager owns the checker's Prometheus collectors.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         *prometheus.Registry

	linesRead      *prometheus.CounterVec
	eventsKept     prometheus.Counter
	eventsFiltered *prometheus.CounterVec
	parseErrors    *prometheus.CounterVec
	validations    *prometheus.CounterVec
	loadDuration   *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager()
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh registry so the Go runtime collectors stay out of the
// exported textfile.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "xapi",
		subsystem:        "check",
		histogramBuckets: []float64{0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.linesRead = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_lines_read_total",
		Help:      "Non-empty fixture lines read, by fixture kind",
	}, []string{"kind"})

	m.eventsKept = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_kept_total",
		Help:      "Sample events kept by the allow-list filter",
	})

	m.eventsFiltered = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_filtered_total",
		Help:      "Sample events dropped by the allow-list filter, by reason",
	}, []string{"reason"})

	m.parseErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_parse_errors_total",
		Help:      "Fixture lines that failed to parse as JSON, by fixture kind",
	}, []string{"kind"})

	m.validations = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validations_total",
		Help:      "Event/statement pairs validated, by event id and outcome",
	}, []string{"event_id", "outcome"})

	m.loadDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "fixture_load_duration_milliseconds",
		Help:      "Time spent loading a fixture file",
		Buckets:   m.histogramBuckets,
	}, []string{"kind"})
}

// Registry returns the registry the manager's collectors live on.
func (m *Manager) Registry() *prometheus.Registry { return m.registry }

// RecordLineRead counts a non-empty fixture line.
func RecordLineRead(kind string) {
	globalManager.linesRead.WithLabelValues(kind).Inc()
}

// RecordEventKept counts an allow-listed sample event.
func RecordEventKept() {
	globalManager.eventsKept.Inc()
}

// RecordEventFiltered counts a sample event outside the allow-list with one
// of the Filter* reasons.
func RecordEventFiltered(reason string) {
	globalManager.eventsFiltered.WithLabelValues(reason).Inc()
}

// RecordParseError counts a fixture line that is not valid JSON.
func RecordParseError(kind string) {
	globalManager.parseErrors.WithLabelValues(kind).Inc()
}

// RecordValidation counts a validated pair with one of the Outcome* labels.
func RecordValidation(eventID, outcome string) {
	globalManager.validations.WithLabelValues(eventID, outcome).Inc()
}

// RecordLoadDuration observes a fixture load duration in milliseconds.
func RecordLoadDuration(kind string, ms float64) {
	globalManager.loadDuration.WithLabelValues(kind).Observe(ms)
}

// WriteTextfile writes the current metrics in the Prometheus text format,
// suitable for the node_exporter textfile collector.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, globalManager.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteTextfile, err)
	}
	return nil
}
