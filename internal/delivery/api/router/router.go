// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"saleslens/config"
	"saleslens/internal/delivery/api/router/handler"
	"saleslens/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

// DefaultMetricsPath is used when metrics.path is unset
const DefaultMetricsPath = "/metrics"

type RouterParams struct {
	fx.In

	SalesHandler  *handler.SalesHandler
	ReportHandler *handler.ReportHandler
	Metrics       *metrics.Metrics
	Config        *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	salesHandler  *handler.SalesHandler
	reportHandler *handler.ReportHandler
	metrics       *metrics.Metrics
	config        *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		salesHandler:  params.SalesHandler,
		reportHandler: params.ReportHandler,
		metrics:       params.Metrics,
		config:        params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo, uploadLimit string) {
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")
	api.GET("/health", handler.HealthCheck)

	salesGroup := api.Group("/sales")
	{
		salesGroup.GET("", r.salesHandler.ListSales)
		salesGroup.POST("", r.salesHandler.CreateSale)
		salesGroup.POST("/bulk", r.salesHandler.BulkCreateSales)
		salesGroup.GET("/filters/options", r.reportHandler.FilterOptions)
		salesGroup.GET("/statistics", r.reportHandler.Statistics)

		// Uploads bypass the global body limit and get their own
		salesGroup.POST(ImportPath, r.salesHandler.ImportSales, echomiddleware.BodyLimit(uploadLimit))
		salesGroup.POST("/import/requests", r.salesHandler.RequestImport)
	}
}

// RegisterMetrics exposes the Prometheus registry when enabled
func (r *router) RegisterMetrics(e *echo.Echo) {
	if !MetricsEnabled(r.config) {
		return
	}

	e.GET(MetricsPath(r.config), echo.WrapHandler(r.metrics.Handler()))
}

// ImportPath is the upload route under /api/sales
const ImportPath = "/import"

// MetricsEnabled reports whether /metrics and the request metrics middleware are on
func MetricsEnabled(cfg *config.Config) bool {
	return cfg != nil && cfg.Metrics != nil && cfg.Metrics.Enabled
}

// MetricsPath returns the configured scrape path
func MetricsPath(cfg *config.Config) string {
	if cfg == nil || cfg.Metrics == nil || cfg.Metrics.Path == "" {
		return DefaultMetricsPath
	}

	return cfg.Metrics.Path
}
