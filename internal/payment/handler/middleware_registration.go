package handler

import (
	"net/http"

	"github.com/gorilla/mux"
)

// MiddlewareConfig holds middleware configuration
type MiddlewareConfig struct {
	EnableLogging bool
	EnableTracing bool
	EnableMetrics bool
}

// DefaultMiddlewareConfig returns default middleware configuration
func DefaultMiddlewareConfig() MiddlewareConfig {
	return MiddlewareConfig{
		EnableLogging: true,
		EnableTracing: true,
		EnableMetrics: true,
	}
}

// RegisterMiddlewares registers router-wide middlewares. Tracing runs
// outermost so the logging and metrics middlewares see the span.
func RegisterMiddlewares(router *mux.Router, config MiddlewareConfig) {
	if config.EnableTracing {
		router.Use(func(next http.Handler) http.Handler {
			return TracingMiddleware("payment-http", next)
		})
	}

	if config.EnableLogging {
		router.Use(LoggingMiddleware)
	}

	if config.EnableMetrics {
		router.Use(MetricsMiddleware)
	}
}
