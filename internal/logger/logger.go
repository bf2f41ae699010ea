// Package logger configures the process-wide zap logger.
package logger

import (
	"fmt"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var global atomic.Pointer[zap.Logger]

func init() {
	global.Store(zap.NewNop())
}

// New builds a logger for the given level ("debug", "info", "warn", "error")
// and format ("json" or "console").
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var cfg zap.Config
	switch strings.ToLower(format) {
	case "json", "":
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "time"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	case "console", "text":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	return cfg.Build()
}

// Set replaces the process-wide logger.
func Set(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	global.Store(l)
}

// L returns the process-wide logger. It is a no-op logger until Set is called.
func L() *zap.Logger {
	return global.Load()
}

func Info(msg string, fields ...zap.Field)  { L().Info(msg, fields...) }
func Warn(msg string, fields ...zap.Field)  { L().Warn(msg, fields...) }
func Error(msg string, fields ...zap.Field) { L().Error(msg, fields...) }
func Fatal(msg string, fields ...zap.Field) { L().Fatal(msg, fields...) }
