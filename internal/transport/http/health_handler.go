package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"savrainsights/internal/services"
)

// HealthHandler reports service liveness and dataset status.
type HealthHandler struct {
	service *services.InsightsService
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service *services.InsightsService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{service: service, logger: logger, started: time.Now()}
}

// HealthCheck returns service status and current dataset statistics.
// The dataset section degrades to an error status instead of failing the
// endpoint when the source cannot be loaded.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":  "ok",
		"uptime":  time.Since(h.started).String(),
		"checked": time.Now().UTC().Format(time.RFC3339),
	}

	records, loadedAt, err := h.service.DatasetInfo(r.Context())
	if err != nil {
		response["dataset"] = map[string]interface{}{
			"status": "unavailable",
			"error":  err.Error(),
		}
		response["status"] = "degraded"
	} else {
		response["dataset"] = map[string]interface{}{
			"status":    "ok",
			"records":   records,
			"loaded_at": loadedAt.UTC().Format(time.RFC3339),
		}
	}

	render.JSON(w, r, response)
}
