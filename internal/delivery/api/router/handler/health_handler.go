package handler

import (
	"net/http"

	"resumecoach/config"
	"resumecoach/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
)

// HealthHandler answers liveness probes.
type HealthHandler struct {
	service string
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{service: cfg.Env.ServiceName}
}

// HealthCheck reports that the process is serving.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	return response.JSON(c, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": h.service,
	})
}
