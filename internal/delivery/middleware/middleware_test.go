package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saleslens/config"
	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(logger *slog.Logger, debug bool) (*echo.Echo, *metrics.Metrics) {
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	m := metrics.New()

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewMetricsMiddleware(m).Handle)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	e.GET("/api/sales", func(c echo.Context) error {
		id := deliverycontext.GetRequestIDFromContext(c.Request().Context())

		return c.String(http.StatusOK, id)
	})
	e.GET("/api/fail", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream")
	})

	return e, m
}

func TestRequestIDMiddleware(t *testing.T) {
	e, _ := newServer(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	req := httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "client-abc")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, "client-abc", rec.Body.String())
	assert.Equal(t, "client-abc", rec.Header().Get(deliverycontext.HeaderXRequestID))

	req = httptest.NewRequest(http.MethodGet, "/api/sales", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "bad id\nwith newline")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	generated := rec.Header().Get(deliverycontext.HeaderXRequestID)
	assert.NotEqual(t, "bad id\nwith newline", generated)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())
}

func TestValidRequestID(t *testing.T) {
	assert.True(t, validRequestID("req-123"))
	assert.False(t, validRequestID(""))
	assert.False(t, validRequestID("has space"))
	assert.False(t, validRequestID(strings.Repeat("a", maxRequestIDLength+1)))
}

func TestLoggerMiddleware_LogsServerErrorsWithFinalStatus(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newServer(slog.New(slog.NewTextHandler(&buf, nil)), false)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/sales", nil))
	assert.Empty(t, buf.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	require.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, buf.String(), "status=502")
	assert.Contains(t, buf.String(), "route=/api/fail")
	assert.Contains(t, buf.String(), "request_id=")
}

func TestLoggerMiddleware_DebugLogsEverythingButProbes(t *testing.T) {
	var buf bytes.Buffer
	e, _ := newServer(slog.New(slog.NewTextHandler(&buf, nil)), true)
	e.GET("/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, buf.String())

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/sales?page=2", nil))
	assert.Contains(t, buf.String(), "status=200")
	assert.Contains(t, buf.String(), `query="page=2"`)
}

func TestMetricsMiddleware_RecordsRouteTemplate(t *testing.T) {
	e, m := newServer(slog.New(slog.NewTextHandler(io.Discard, nil)), false)

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/fail",status="502"} 1`)
	assert.Contains(t, body, "http_inflight_requests 0")
}
