package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	mockUsecase "saleslens/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	e := newTestEcho()
	rec := httptest.NewRecorder()

	return e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec), rec
}

func TestReportHandler_FilterOptions(t *testing.T) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: discardLogger()})
	c, rec := newReportContext("/api/sales/filters/options")

	reportUC.EXPECT().Facets(mock.Anything).Return(&entity.Facets{
		Regions:        []string{"East", "North"},
		Genders:        []string{"Female", "Male"},
		Categories:     []string{"Beauty"},
		PaymentMethods: []string{"Cash"},
		Tags:           []string{},
	}, nil)

	require.NoError(t, h.FilterOptions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{"East", "North"}, body["regions"])
	assert.Equal(t, []any{"Female", "Male"}, body["genders"])
	assert.Equal(t, []any{}, body["tags"])
}

func TestReportHandler_Statistics(t *testing.T) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: discardLogger()})
	c, rec := newReportContext("/api/sales/statistics")

	reportUC.EXPECT().Statistics(mock.Anything).Return(&entity.Statistics{}, nil)

	require.NoError(t, h.Statistics(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	stats := decode(t, rec)["stats"].(map[string]any)
	assert.Equal(t, map[string]any{
		"totalSales":        float64(0),
		"totalQuantity":     float64(0),
		"averageOrderValue": float64(0),
		"totalTransactions": float64(0),
	}, stats)
}

func TestReportHandler_Statistics_Failure(t *testing.T) {
	reportUC := mockUsecase.NewMockReportUsecase(t)
	h := NewReportHandler(ReportHandlerParams{ReportUC: reportUC, Logger: discardLogger()})
	c, rec := newReportContext("/api/sales/statistics")

	reportUC.EXPECT().Statistics(mock.Anything).
		Return(nil, domainerrors.NewQueryExecutionError(errors.New("no primary"), "compute statistics"))

	require.NoError(t, h.Statistics(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, decode(t, rec)["success"])
}

func TestHealthCheck(t *testing.T) {
	c, rec := newReportContext("/api/health")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", decode(t, rec)["status"])
}
