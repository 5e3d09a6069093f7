package service

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/noosflare/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots for the shell.
// No exporter is mounted; the registry is read in-process.
type MetricsService struct {
	registry           *prometheus.Registry
	transitions        *prometheus.CounterVec
	rejected           *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	queryResults       prometheus.Histogram
	queryDuration      prometheus.Histogram
	uploads            *prometheus.CounterVec

	transitionCount   uint64
	rejectedCount     uint64
	validationCount   uint64
	queryCount        uint64
	queryResultsTotal uint64
	uploadsCompleted  uint64
}

// NewMetricsService registers the core collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_transitions_total",
		Help: "Accepted screen transitions",
	}, []string{"from", "to"})

	rejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "navigation_rejected_total",
		Help: "Navigation events refused in the current screen",
	}, []string{"event"})

	validationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "form_validation_failures_total",
		Help: "Form submissions rejected by validation",
	}, []string{"form"})

	queryResults := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "material_query_results",
		Help:    "Number of materials returned per filter query",
		Buckets: []float64{0, 1, 2, 5, 10, 25, 50},
	})

	queryDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "material_query_duration_seconds",
		Help:    "Duration of material filter queries",
		Buckets: prometheus.DefBuckets,
	})

	uploads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "uploads_total",
		Help: "Simulated uploads by resulting status",
	}, []string{"status"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(transitions, rejected, validationFailures, queryResults, queryDuration, uploads, goroutines)

	return &MetricsService{
		registry:           registry,
		transitions:        transitions,
		rejected:           rejected,
		validationFailures: validationFailures,
		queryResults:       queryResults,
		queryDuration:      queryDuration,
		uploads:            uploads,
	}
}

// Registry exposes the underlying registry for in-process gathering.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveTransition records an accepted screen change.
func (m *MetricsService) ObserveTransition(from, to models.Screen) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(string(from), string(to)).Inc()
	atomic.AddUint64(&m.transitionCount, 1)
}

// ObserveRejectedTransition records an event refused by the navigator.
func (m *MetricsService) ObserveRejectedTransition(event EventKind) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(string(event)).Inc()
	atomic.AddUint64(&m.rejectedCount, 1)
}

// ObserveValidationFailure records a rejected form submission.
func (m *MetricsService) ObserveValidationFailure(form string) {
	if m == nil {
		return
	}
	m.validationFailures.WithLabelValues(form).Inc()
	atomic.AddUint64(&m.validationCount, 1)
}

// ObserveQuery records a material filter pass.
func (m *MetricsService) ObserveQuery(results int, duration time.Duration) {
	if m == nil {
		return
	}
	m.queryResults.Observe(float64(results))
	m.queryDuration.Observe(duration.Seconds())
	atomic.AddUint64(&m.queryCount, 1)
	atomic.AddUint64(&m.queryResultsTotal, uint64(results))
}

// ObserveUpload records an upload reaching status.
func (m *MetricsService) ObserveUpload(status models.UploadStatus) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(string(status)).Inc()
	if status == models.UploadStatusPending {
		atomic.AddUint64(&m.uploadsCompleted, 1)
	}
}

// Snapshot returns aggregated counters for display.
func (m *MetricsService) Snapshot() models.UsageMetrics {
	if m == nil {
		return models.UsageMetrics{}
	}
	queries := atomic.LoadUint64(&m.queryCount)
	results := atomic.LoadUint64(&m.queryResultsTotal)

	var avgResults float64
	if queries > 0 {
		avgResults = float64(results) / float64(queries)
	}

	return models.UsageMetrics{
		Transitions:         atomic.LoadUint64(&m.transitionCount),
		RejectedTransitions: atomic.LoadUint64(&m.rejectedCount),
		ValidationFailures:  atomic.LoadUint64(&m.validationCount),
		MaterialQueries:     queries,
		AverageQueryResults: avgResults,
		UploadsCompleted:    atomic.LoadUint64(&m.uploadsCompleted),
		Goroutines:          runtime.NumGoroutine(),
		GeneratedAt:         time.Now().UTC(),
	}
}
