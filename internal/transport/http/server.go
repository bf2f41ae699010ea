// Package http provides the HTTP server implementation for the agent service.
package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/xiaot623/snippetagent/internal/auth"
	"github.com/xiaot623/snippetagent/internal/logger"
	"github.com/xiaot623/snippetagent/internal/service"
	v1 "github.com/xiaot623/snippetagent/internal/transport/http/v1"
)

// NewServer creates and configures the public HTTP server.
func NewServer(svc *service.Service, verifier *auth.Verifier, version string) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowCredentials: true,
		// Reflect the caller's origin so credentialed browser requests are accepted.
		UnsafeWildcardOriginWithAllowCredentials: true,
	}))

	// Handlers
	v1Handler := v1.NewHandler(svc, verifier, version)

	// Register Routes
	v1Handler.RegisterRoutes(e)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("remote_ip", v.RemoteIP),
				zap.String("request_id", v.RequestID),
			}
			if v.Error != nil {
				logger.Error("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
