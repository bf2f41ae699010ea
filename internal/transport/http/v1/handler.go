// Package v1 provides the HTTP handlers of the agent service.
package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/snippetagent/internal/auth"
	"github.com/xiaot623/snippetagent/internal/service"
)

// AgentPath is the route of the agent endpoint.
const AgentPath = "/api/sample-supabase-agent"

// Handler handles HTTP requests.
type Handler struct {
	service  *service.Service
	verifier *auth.Verifier
	version  string
}

// NewHandler creates a new handler. version is reported by the health endpoint.
func NewHandler(service *service.Service, verifier *auth.Verifier, version string) *Handler {
	return &Handler{
		service:  service,
		verifier: verifier,
		version:  version,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	requireToken := auth.Middleware(h.verifier)

	e.POST(AgentPath, h.Agent, requireToken)
	e.GET("/v1/sessions/:session_id/messages", h.GetSessionMessages, requireToken)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	if err := h.service.Ping(c.Request().Context()); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": h.version,
	})
}
