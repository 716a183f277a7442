package handler

import (
	"log/slog"
	"net/http"

	"saleslens/internal/delivery/api/response"
	"saleslens/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReportHandlerParams holds dependencies for ReportHandler, injected by Fx.
type ReportHandlerParams struct {
	fx.In

	ReportUC usecase.ReportUsecase
	Logger   *slog.Logger
}

// ReportHandler serves facets and statistics
type ReportHandler struct {
	reportUC usecase.ReportUsecase
	logger   *slog.Logger
}

// NewReportHandler is the constructor for ReportHandler
func NewReportHandler(params ReportHandlerParams) *ReportHandler {
	return &ReportHandler{
		reportUC: params.ReportUC,
		logger:   params.Logger,
	}
}

// FilterOptions returns the distinct values for the filter controls
func (h *ReportHandler) FilterOptions(c echo.Context) error {
	facets, err := h.reportUC.Facets(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.FacetsResponse{Success: true, Facets: *facets})
}

// Statistics returns the collection totals
func (h *ReportHandler) Statistics(c echo.Context) error {
	stats, err := h.reportUC.Statistics(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.StatisticsResponse{Success: true, Stats: stats})
}
