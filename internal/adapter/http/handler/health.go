package handler

import (
	"net/http"
	"time"

	"github.com/Bekzhan-O/tutor-dashboard/pkg/logger"
	wrap "github.com/Bekzhan-O/tutor-dashboard/pkg/logger/wrapper"
)

type Health struct {
	serviceName string
	source      string
	lastFetched func() time.Time
	log         logger.Logger
}

func NewHealth(serviceName, source string, lastFetched func() time.Time, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		source:      source,
		lastFetched: lastFetched,
		log:         log,
	}
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	response := envelope{
		"status": "available",
		"system_info": map[string]any{
			"service-name": a.serviceName,
			"row-source":   a.source,
			"last-fetched": a.lastFetched(),
		},
	}

	if err := writeJSON(w, http.StatusOK, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
