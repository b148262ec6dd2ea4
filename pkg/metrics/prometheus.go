// Package metrics provides Prometheus metrics for the assessment platform.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Submission metrics
	assessmentsSubmitted prometheus.Counter
	validationFailures   prometheus.Counter
	duplicateSubmissions prometheus.Counter

	// Aggregation metrics
	aggregationLatency *prometheus.HistogramVec
	aggregationErrors  *prometheus.CounterVec
	storeQueryLatency  prometheus.Histogram

	// Platform gauges
	totalAssessments prometheus.Gauge
	trainersTracked  prometheus.Gauge

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "tap",
		subsystem:        "assessments",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.assessmentsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submitted_total",
		Help:      "Total number of assessments accepted and persisted",
	})
	m.validationFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "validation_failures_total",
		Help:      "Total number of submissions rejected by the rating/comment contract",
	})
	m.duplicateSubmissions = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "duplicate_submissions_total",
		Help:      "Total number of idempotent retries detected",
	})

	m.aggregationLatency = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_latency_milliseconds",
		Help:      "Latency of fetch-then-compute aggregation requests",
		Buckets:   m.histogramBuckets,
	}, []string{"operation"})
	m.aggregationErrors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "aggregation_errors_total",
		Help:      "Aggregation requests that failed on the store read",
	}, []string{"operation"})
	m.storeQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_latency_milliseconds",
		Help:      "Latency of bulk assessment store reads",
		Buckets:   m.histogramBuckets,
	})

	m.totalAssessments = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "total",
		Help:      "Total number of persisted assessments",
	})
	m.trainersTracked = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "trainers_tracked",
		Help:      "Number of distinct trainers with at least one assessment",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})
}

// Package-level helpers on the global manager.

// RecordAssessmentSubmitted counts a persisted assessment.
func RecordAssessmentSubmitted() {
	globalManager.assessmentsSubmitted.Inc()
}

// RecordValidationFailure counts a contract-rejected submission.
func RecordValidationFailure() {
	globalManager.validationFailures.Inc()
}

// RecordDuplicateSubmission counts an idempotent retry.
func RecordDuplicateSubmission() {
	globalManager.duplicateSubmissions.Inc()
}

// RecordAggregationLatency records how long one aggregation request took.
func RecordAggregationLatency(operation string, latencyMs float64) {
	globalManager.aggregationLatency.WithLabelValues(operation).Observe(latencyMs)
}

// RecordAggregationError counts a failed aggregation request.
func RecordAggregationError(operation string) {
	globalManager.aggregationErrors.WithLabelValues(operation).Inc()
}

// RecordStoreQueryLatency records one bulk store read.
func RecordStoreQueryLatency(latencyMs float64) {
	globalManager.storeQueryLatency.Observe(latencyMs)
}

// UpdateTotalAssessments sets the persisted assessment gauge.
func UpdateTotalAssessments(count int) {
	globalManager.totalAssessments.Set(float64(count))
}

// UpdateTrainersTracked sets the distinct trainer gauge.
func UpdateTrainersTracked(count int) {
	globalManager.trainersTracked.Set(float64(count))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
