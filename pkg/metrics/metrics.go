package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	HttpRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current number of HTTP requests being processed",
		},
		[]string{"service"},
	)

	// Dataset metrics
	DatasetFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_fetches_total",
			Help: "Total number of row source fetches",
		},
		[]string{"service", "source", "status"},
	)

	DatasetFetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_fetch_duration_seconds",
			Help:    "Row source fetch duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "source"},
	)

	CacheHitsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_cache_hits_total",
			Help: "Reads served from the cached record collection",
		},
		[]string{"service"},
	)

	CacheMissesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_cache_misses_total",
			Help: "Reads that triggered a row source fetch",
		},
		[]string{"service"},
	)

	RowsParsedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_rows_parsed_total",
			Help: "Raw rows that produced a valid session record",
		},
		[]string{"service"},
	)

	RowsDiscardedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_rows_discarded_total",
			Help: "Raw rows dropped by a hard validity rule",
		},
		[]string{"service", "reason"},
	)

	WebSocketConnectionsGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "websocket_connections_total",
			Help: "Current number of active WebSocket connections",
		},
		[]string{"service"},
	)

	RefreshEventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "refresh_events_published_total",
			Help: "Dataset refresh events published to RabbitMQ",
		},
		[]string{"service", "status"},
	)
)

// RecordHTTPMetrics records HTTP request metrics
func RecordHTTPMetrics(service, method, path string, statusCode int, duration time.Duration) {
	status := strconv.Itoa(statusCode)
	HttpRequestsTotal.WithLabelValues(service, method, path, status).Inc()
	HttpRequestDuration.WithLabelValues(service, method, path, status).Observe(duration.Seconds())
}

// RecordDatasetFetch records one row source round trip
func RecordDatasetFetch(service, source string, err error, duration time.Duration) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DatasetFetchesTotal.WithLabelValues(service, source, status).Inc()
	DatasetFetchDuration.WithLabelValues(service, source).Observe(duration.Seconds())
}

// RecordRowDiscarded counts a row dropped by a hard rule (bad date, empty name)
func RecordRowDiscarded(service, reason string) {
	RowsDiscardedTotal.WithLabelValues(service, reason).Inc()
}

// RecordRefreshEvent records a RabbitMQ publish of a refresh event
func RecordRefreshEvent(service string, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	RefreshEventsPublished.WithLabelValues(service, status).Inc()
}
