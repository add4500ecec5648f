// Package context carries request-scoped values between the HTTP layer and
// the usecases: the request id, the authenticated identity and a logger that
// already has both attached.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the id stored by the request-id middleware, or a new
// one when the middleware did not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// BindRequest stores requestID on c and on the request context, together with
// a logger that tags every record with it.
func BindRequest(c echo.Context, requestID string, base *slog.Logger) {
	c.Set(string(KeyRequestID), requestID)

	ctx := context.WithValue(c.Request().Context(), KeyRequestID, requestID)
	ctx = WithLogger(ctx, base.With(slog.String(string(KeyRequestID), requestID)))
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
