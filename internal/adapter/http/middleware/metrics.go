package middleware

import (
	"net/http"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/pkg/metrics"
)

// Metrics records request counts, durations and in-flight gauges per
// endpoint. The scrape endpoint itself is skipped.
func (a *Middleware) Metrics(serviceName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/metrics" {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			metrics.HttpRequestsInFlight.WithLabelValues(serviceName).Inc()
			defer metrics.HttpRequestsInFlight.WithLabelValues(serviceName).Dec()

			rw := &responseWriterWrapper{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)

			metrics.RecordHTTPMetrics(serviceName, r.Method, r.URL.Path, rw.status, time.Since(start))
		})
	}
}
