package logging

import (
	"go.uber.org/zap"
)

// NewLogger builds a production ready structured logger.
func NewLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "timestamp"
	return cfg.Build()
}

// WithBackend enriches the logger with the active face locator backend.
func WithBackend(logger *zap.Logger, backend string) *zap.Logger {
	return logger.With(zap.String("backend", backend))
}
