package v1

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xiaot623/snippetagent/internal/domain"
	"github.com/xiaot623/snippetagent/internal/logger"
)

// Agent runs the snippet agent for an authenticated request.
// POST /api/sample-supabase-agent
//
// Past admission the response is always 200; failures are reported as success=false.
func (h *Handler) Agent(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: "invalid request body"})
	}

	// The policy sees the raw body so it can tell absent fields from empty ones.
	var input map[string]any
	if err := json.Unmarshal(body, &input); err != nil || input == nil {
		return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: "invalid request body"})
	}

	ctx := c.Request().Context()

	if err := h.service.Admit(ctx, input); err != nil {
		var de *domain.DomainError
		if errors.As(err, &de) && domain.IsInvalidInput(err) {
			return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: de.Message})
		}
		logger.Error("Admission policy failed, admitting request", zap.Error(err))
	}

	var req domain.AgentRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, domain.ErrorResponse{Detail: "invalid request body"})
	}

	resp := h.service.HandleAgentRequest(ctx, &req)
	return c.JSON(http.StatusOK, resp)
}
