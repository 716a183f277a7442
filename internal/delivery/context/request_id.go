// Package context carries request-scoped values (request ID and logger)
// from the delivery layer down to the usecases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type requestIDKey struct{}

type loggerKey struct{}

// HeaderXRequestID is the HTTP header echoed back with every response.
const HeaderXRequestID = echo.HeaderXRequestID

// echoRequestIDKey stores the request ID on echo.Context for handlers.
const echoRequestIDKey = "request_id"

// SetRequestID stores the request ID on echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(echoRequestIDKey, requestID)
}

// RequestID reads the request ID stored on echo.Context, or "".
func RequestID(c echo.Context) string {
	id, _ := c.Get(echoRequestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// GetRequestIDFromContext returns the request ID carried by ctx, or "" for
// work that did not start from a request (CLI imports).
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)

	return id
}

// WithLogger returns a copy of ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(loggerKey{}).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault falls back to the given logger when ctx has none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
