package server

import (
	"net/http"

	"github.com/Bekzhan-O/tutor-dashboard/internal/adapter/http/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	// System health
	mux.HandleFunc("/health", routes.health.HealthCheck)

	setupSwaggerRoutes(mux)
	setupMetricsRoute(mux)

	setupReportRoutes(mux, routes)
	setupAdminRoutes(mux, routes, m)
	setupAuthRoutes(mux, routes)

	mux.HandleFunc("GET /ws/live", routes.live.HandleWS) // WebSocket connection for dashboard clients
}

// setupReportRoutes setups the public reporting endpoints
func setupReportRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("GET /v1/reports/key-metrics", routes.report.KeyMetrics)     // Headline KPI set
	mux.HandleFunc("GET /v1/reports/monthly", routes.report.Monthly)            // Per-month aggregates
	mux.HandleFunc("GET /v1/reports/yearly", routes.report.Yearly)              // Per-year aggregates with YoY
	mux.HandleFunc("GET /v1/reports/top-students", routes.report.TopStudents)   // Income ranking
	mux.HandleFunc("GET /v1/reports/students/{name}", routes.report.Student)    // Per-student card
	mux.HandleFunc("GET /v1/reports/totals", routes.report.Totals)              // Whole-range sums
	mux.HandleFunc("GET /v1/sessions", routes.report.Sessions)                  // Paginated record list
}

// setupAdminRoutes setups the token-protected cache management endpoints
func setupAdminRoutes(mux *http.ServeMux, routes *handlers, m *middleware.Middleware) {
	mux.Handle("POST /v1/admin/refresh", m.RequireAdmin(routes.admin.Refresh))    // Force a dataset refetch
	mux.Handle("DELETE /v1/admin/cache", m.RequireAdmin(routes.admin.ClearCache)) // Drop the cached dataset
}

func setupAuthRoutes(mux *http.ServeMux, routes *handlers) {
	mux.HandleFunc("POST /auth/token", routes.auth.Token)
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func setupSwaggerRoutes(mux *http.ServeMux) {
	swaggerURL := httpSwagger.InstanceName("dashboard")
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
