package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/xiaot623/snippetagent/internal/domain"
	"github.com/xiaot623/snippetagent/internal/logger"
)

const bearerScheme = "Bearer"

// Middleware rejects requests whose Authorization header does not carry the
// expected bearer token. Nothing downstream runs for a rejected request.
func Middleware(v *Verifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err := v.Verify(token); err != nil {
				var de *domain.DomainError
				detail := err.Error()
				if errors.As(err, &de) {
					detail = de.Message
				}
				if domain.IsConfiguration(err) {
					logger.Error("bearer token not configured", zap.String("path", c.Path()))
					return c.JSON(http.StatusInternalServerError, domain.ErrorResponse{Detail: detail})
				}
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, bearerScheme)
				return c.JSON(http.StatusUnauthorized, domain.ErrorResponse{Detail: detail})
			}
			return next(c)
		}
	}
}

// bearerToken extracts the credential from an Authorization header value.
func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}
	return strings.TrimSpace(token)
}
