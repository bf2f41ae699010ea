package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiaot623/snippetagent/internal/domain"
)

func runMiddleware(t *testing.T, expected, header string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/sample-supabase-agent", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	h := Middleware(NewVerifier(expected))(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(c))
	return rec, called
}

func TestMiddlewareAllowsValidToken(t *testing.T) {
	rec, called := runMiddleware(t, "tok", "Bearer tok")
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRejectsBadToken(t *testing.T) {
	for _, header := range []string{"", "Bearer nope", "Basic tok", "tok"} {
		rec, called := runMiddleware(t, "tok", header)
		assert.False(t, called, "header %q", header)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)

		var resp domain.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid authentication token", resp.Detail)
	}
}

func TestMiddlewareMissingConfiguredToken(t *testing.T) {
	rec, called := runMiddleware(t, "", "Bearer tok")
	assert.False(t, called)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "API_BEARER_TOKEN environment variable not set")
}
