package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus collector exported by the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	constLabels      prometheus.Labels
	registry         prometheus.Registerer

	// Dashboard server
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
	dashboardRenders    *prometheus.CounterVec
	dashboardCacheHits  prometheus.Counter
	dashboardCacheMiss  prometheus.Counter

	// Prediction client
	clientRequests        *prometheus.CounterVec
	clientRequestDuration *prometheus.HistogramVec
	clientFailures        *prometheus.CounterVec
	imagesEncoded         prometheus.Counter
	imageBytes            prometheus.Counter
	imageErrors           prometheus.Counter

	// Upstream probe
	upstreamUp        prometheus.Gauge
	upstreamLastProbe prometheus.Gauge

	// System
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

var globalManager *Manager //nolint:gochecknoglobals // singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // metrics registry

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "footrisk",
		subsystem:        "dashboard",
		histogramBuckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000},
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) counterOpts(name, help string) prometheus.CounterOpts {
	return prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) gaugeOpts(name, help string) prometheus.GaugeOpts {
	return prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
	}
}

func (m *Manager) histogramOpts(name, help string, buckets []float64) prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        name,
		Help:        help,
		ConstLabels: m.constLabels,
		Buckets:     buckets,
	}
}

func (m *Manager) initializeMetrics() { //nolint:funlen // one place for every collector
	auto := promauto.With(m.registry)

	m.httpRequests = auto.NewCounterVec(
		m.counterOpts("http_requests_total", "Total number of HTTP requests by endpoint and method"),
		[]string{"endpoint", "method", "status_code"},
	)
	m.httpRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("http_request_duration_milliseconds", "HTTP request duration in milliseconds", m.histogramBuckets),
		[]string{"endpoint", "method", "status_code"},
	)
	m.errorsByEndpoint = auto.NewCounterVec(
		m.counterOpts("http_errors_total", "HTTP responses with status >= 400 by endpoint and error type"),
		[]string{"endpoint", "method", "error_type"},
	)
	m.dashboardRenders = auto.NewCounterVec(
		m.counterOpts("renders_total", "Dashboard views rendered by tab and output format"),
		[]string{"tab", "format"},
	)
	m.dashboardCacheHits = auto.NewCounter(
		m.counterOpts("page_cache_hits_total", "Rendered dashboard pages served from cache"),
	)
	m.dashboardCacheMiss = auto.NewCounter(
		m.counterOpts("page_cache_misses_total", "Dashboard pages rendered because no cached copy existed"),
	)

	m.clientRequests = auto.NewCounterVec(
		m.counterOpts("client_requests_total", "Prediction service calls by endpoint and outcome"),
		[]string{"endpoint", "outcome"},
	)
	m.clientRequestDuration = auto.NewHistogramVec(
		m.histogramOpts("client_request_duration_milliseconds", "Prediction service call latency in milliseconds", m.histogramBuckets),
		[]string{"endpoint"},
	)
	m.clientFailures = auto.NewCounterVec(
		m.counterOpts("client_failures_total", "Prediction service calls answered with a non-success status"),
		[]string{"endpoint", "status_class"},
	)
	m.imagesEncoded = auto.NewCounter(
		m.counterOpts("images_encoded_total", "Foot images encoded as data URIs"),
	)
	m.imageBytes = auto.NewCounter(
		m.counterOpts("image_bytes_total", "Raw bytes read while encoding foot images"),
	)
	m.imageErrors = auto.NewCounter(
		m.counterOpts("image_encode_errors_total", "Foot image reads that failed"),
	)

	m.upstreamUp = auto.NewGauge(
		m.gaugeOpts("upstream_up", "1 when the last prediction service health probe succeeded"),
	)
	m.upstreamLastProbe = auto.NewGauge(
		m.gaugeOpts("upstream_last_probe_unix", "Unix time of the last prediction service health probe"),
	)

	m.systemMemoryUsage = auto.NewGauge(
		m.gaugeOpts("system_memory_usage_bytes", "System memory usage in bytes"),
	)
	m.systemGoroutineCount = auto.NewGauge(
		m.gaugeOpts("system_goroutine_count", "Number of goroutines"),
	)
	m.systemGCPauseTime = auto.NewHistogram(
		m.histogramOpts("system_gc_pause_time_milliseconds", "GC pause time in milliseconds",
			[]float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000}),
	)
}

// RecordHTTPRequest records a served HTTP request and its duration.
func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// RecordHTTPError records an error response by endpoint.
func (m *Manager) RecordHTTPError(endpoint, method, errorType string) {
	m.errorsByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordDashboardRender counts a rendered dashboard view.
func (m *Manager) RecordDashboardRender(tab, format string) {
	m.dashboardRenders.WithLabelValues(tab, format).Inc()
}

// RecordPageCache counts a page cache lookup.
func (m *Manager) RecordPageCache(hit bool) {
	if hit {
		m.dashboardCacheHits.Inc()
		return
	}
	m.dashboardCacheMiss.Inc()
}

// RecordClientRequest records one prediction service call.
func (m *Manager) RecordClientRequest(endpoint, outcome string, durationMs float64) {
	m.clientRequests.WithLabelValues(endpoint, outcome).Inc()
	m.clientRequestDuration.WithLabelValues(endpoint).Observe(durationMs)
}

// RecordClientFailure records a non-success status from the prediction service.
func (m *Manager) RecordClientFailure(endpoint, statusClass string) {
	m.clientFailures.WithLabelValues(endpoint, statusClass).Inc()
}

// RecordImageEncoded records a successfully encoded image of n raw bytes.
func (m *Manager) RecordImageEncoded(n int) {
	m.imagesEncoded.Inc()
	m.imageBytes.Add(float64(n))
}

// RecordImageError records a failed image read.
func (m *Manager) RecordImageError() {
	m.imageErrors.Inc()
}

// SetUpstreamUp records the outcome of a health probe at unixTime.
func (m *Manager) SetUpstreamUp(up bool, unixTime int64) {
	if up {
		m.upstreamUp.Set(1)
	} else {
		m.upstreamUp.Set(0)
	}
	m.upstreamLastProbe.Set(float64(unixTime))
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func (m *Manager) UpdateSystemMemoryUsage(bytes uint64) {
	m.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func (m *Manager) UpdateSystemGoroutineCount(count int) {
	m.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func (m *Manager) RecordSystemGCPauseTime(pauseMs float64) {
	m.systemGCPauseTime.Observe(pauseMs)
}

// Package-level helpers delegate to the global manager.

func RecordHTTPRequest(endpoint, method, statusCode string, durationMs float64) {
	globalManager.RecordHTTPRequest(endpoint, method, statusCode, durationMs)
}

func RecordHTTPError(endpoint, method, errorType string) {
	globalManager.RecordHTTPError(endpoint, method, errorType)
}

func RecordDashboardRender(tab, format string) { globalManager.RecordDashboardRender(tab, format) }

func RecordPageCache(hit bool) { globalManager.RecordPageCache(hit) }

func RecordClientRequest(endpoint, outcome string, durationMs float64) {
	globalManager.RecordClientRequest(endpoint, outcome, durationMs)
}

func RecordClientFailure(endpoint, statusClass string) {
	globalManager.RecordClientFailure(endpoint, statusClass)
}

func RecordImageEncoded(n int) { globalManager.RecordImageEncoded(n) }

func RecordImageError() { globalManager.RecordImageError() }

func SetUpstreamUp(up bool, unixTime int64) { globalManager.SetUpstreamUp(up, unixTime) }

func UpdateSystemMemoryUsage(bytes uint64) { globalManager.UpdateSystemMemoryUsage(bytes) }

func UpdateSystemGoroutineCount(count int) { globalManager.UpdateSystemGoroutineCount(count) }

func RecordSystemGCPauseTime(pauseMs float64) { globalManager.RecordSystemGCPauseTime(pauseMs) }

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
