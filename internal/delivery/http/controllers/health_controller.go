package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Kirubel-Te/Event-Next/internal/delivery/http/helpers"
)

// HealthResponse is the data payload for GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

type HealthController struct {
	Logger *slog.Logger
	Ping   func(ctx context.Context) error
}

func NewHealthController(logger *slog.Logger, ping func(ctx context.Context) error) *HealthController {
	return &HealthController{
		Logger: logger,
		Ping:   ping,
	}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the storage backend answers a ping.
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Failure 503 {object} helpers.APIResponse "error.code: service_unavailable"
// @Router /health [get]
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.Ping(r.Context()); err != nil {
		c.Logger.WarnContext(r.Context(), "health check failed", "err", err)
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, helpers.ErrCodeUnavailable, "storage unavailable")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthResponse{Status: "ok"})
}
