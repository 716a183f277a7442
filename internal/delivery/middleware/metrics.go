package middleware

import (
	"time"

	"saleslens/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests no route matched, keeping label cardinality bounded
const unmatchedRoute = "unmatched"

// MetricsMiddleware records Prometheus request metrics
type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle must run outside the logger middleware, which resolves errors into responses
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		done := m.metrics.RequestStarted()
		defer done()

		err := next(c)

		route := c.Path()
		if route == "" || route == "/*" {
			route = unmatchedRoute
		}
		m.metrics.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return err
	}
}
