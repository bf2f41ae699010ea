package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/xiaot623/snippetagent/internal/domain"
)

// GetSessionMessages returns the recent history of a session, oldest first.
// GET /v1/sessions/:session_id/messages
func (h *Handler) GetSessionMessages(c echo.Context) error {
	sessionID := c.Param("session_id")
	limit := domain.DefaultHistoryLimit
	if l := c.QueryParam("limit"); l != "" {
		if val, err := strconv.Atoi(l); err == nil && val > 0 {
			limit = val
		}
	}

	ctx := c.Request().Context()

	history, err := h.service.FetchHistory(ctx, sessionID, limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: err.Error()})
	}
	if history == nil {
		history = []domain.HistoryEntry{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"session_id": sessionID,
		"messages":   history,
	})
}
