package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for the calendar service
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    prometheus.CounterVec
	HTTPRequestDuration  prometheus.HistogramVec
	HTTPRequestsInFlight prometheus.Gauge

	// Calendar cache metrics
	CacheHitsTotal   prometheus.CounterVec
	CacheMissesTotal prometheus.CounterVec

	// Business Metrics
	GridsBuiltTotal    prometheus.Counter
	AircraftConfigured prometheus.Gauge
}

// NewMetricsRegistry initializes and returns a new MetricsRegistry with all metrics
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		HTTPRequestsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "aeronaves_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		// Unlabeled: the route pattern is unknown until the request has been
		// matched, which is after the in-flight window opens.
		HTTPRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "aeronaves_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
		),

		CacheHitsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_calendar_cache_hits_total",
				Help: "Memoized calendar grids served without recomputation",
			},
			[]string{"aircraft_id"},
		),
		CacheMissesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "aeronaves_calendar_cache_misses_total",
				Help: "Calendar grid requests that required a rebuild",
			},
			[]string{"aircraft_id"},
		),

		GridsBuiltTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "aeronaves_calendar_grids_built_total",
				Help: "Total 12-month calendar grids computed",
			},
		),
		AircraftConfigured: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "aeronaves_aircraft_configured",
				Help: "Number of aircraft records currently loaded",
			},
		),
	}
}
