package handler

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"
	"time"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	mockUsecase "saleslens/internal/mocks/usecase"
	"saleslens/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type salesHandlerFixtures struct {
	handler   *SalesHandler
	listingUC *mockUsecase.MockListingUsecase
	salesUC   *mockUsecase.MockSalesUsecase
	importUC  *mockUsecase.MockImportUsecase
}

func createTestSalesHandler(t *testing.T, maxUpload string) salesHandlerFixtures {
	listingUC := mockUsecase.NewMockListingUsecase(t)
	salesUC := mockUsecase.NewMockSalesUsecase(t)
	importUC := mockUsecase.NewMockImportUsecase(t)

	h, err := NewSalesHandler(SalesHandlerParams{
		ListingUC: listingUC,
		SalesUC:   salesUC,
		ImportUC:  importUC,
		Config:    testConfig(maxUpload),
		Logger:    discardLogger(),
	})
	require.NoError(t, err)

	return salesHandlerFixtures{
		handler:   h,
		listingUC: listingUC,
		salesUC:   salesUC,
		importUC:  importUC,
	}
}

func TestMaxUploadSize(t *testing.T) {
	size, err := MaxUploadSize(testConfig(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxUploadSize, size)

	size, err = MaxUploadSize(testConfig("2M"))
	require.NoError(t, err)
	assert.GreaterOrEqual(t, size, int64(2_000_000))
	assert.LessOrEqual(t, size, int64(2*1024*1024))

	_, err = MaxUploadSize(testConfig("huge"))
	assert.Error(t, err)
}

func TestSalesHandler_ListSales(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newQueryContext(e, url.Values{"page": {"2"}, "limit": {"1"}, "gender": {"Male"}})

	record := &entity.SalesRecord{ID: uuid.New(), CustomerName: "Neha Shah", Quantity: 2}
	fx.listingUC.EXPECT().
		List(mock.Anything, mock.MatchedBy(func(req entity.ListRequest) bool {
			return req.Page.Page == 2 && req.Page.PageSize == 1 && assert.ObjectsAreEqual([]string{"Male"}, req.Filters.Genders)
		})).
		Return(&entity.SalesPage{
			Records:    []*entity.SalesRecord{record},
			Pagination: entity.NewPagination(entity.PageRequest{Page: 2, PageSize: 1}, 3),
		}, nil)

	require.NoError(t, fx.handler.ListSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	require.Len(t, body["data"], 1)
	assert.Equal(t, "Neha Shah", body["data"].([]any)[0].(map[string]any)["customerName"])

	pagination := body["pagination"].(map[string]any)
	assert.InDelta(t, 3, pagination["totalPages"], 0)
	assert.InDelta(t, 3, pagination["totalRecords"], 0)
	assert.Equal(t, true, pagination["hasNextPage"])
	assert.Equal(t, true, pagination["hasPrevPage"])
}

func TestSalesHandler_ListSales_BadAge(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newQueryContext(e, url.Values{"minAge": {"x"}})

	require.NoError(t, fx.handler.ListSales(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "VALIDATION_FAILED", body["code"])
	assert.Equal(t, map[string]any{"minAge": "must be an integer"}, body["details"])
}

func TestSalesHandler_ListSales_StoreFailure(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newQueryContext(e, url.Values{})

	fx.listingUC.EXPECT().List(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewQueryExecutionError(errors.New("timeout"), "fetch sales"))

	require.NoError(t, fx.handler.ListSales(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Failed to fetch sales", body["error"])
	assert.NotContains(t, body, "details")
}

func TestSalesHandler_CreateSale(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales",
		`{"customerName":"Arjun","age":30,"quantity":0,"date":"2023-03-04T00:00:00Z","tags":["new"]}`)

	created := &entity.SalesRecord{ID: uuid.New(), CustomerName: "Arjun"}
	fx.salesUC.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(in *usecase.SalesInput) bool {
			return in.CustomerName == "Arjun" && in.Quantity != nil && *in.Quantity == 0 &&
				in.Date.Equal(time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC))
		})).
		Return(created, nil)

	require.NoError(t, fx.handler.CreateSale(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, created.ID.String(), body["data"].(map[string]any)["_id"])
}

func TestSalesHandler_CreateSale_Invalid(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales", `{"age":200,"date":"2023-03-04T00:00:00Z"}`)

	require.NoError(t, fx.handler.CreateSale(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode(t, rec)["details"].(map[string]any)
	assert.Equal(t, "is required", details["customerName"])
	assert.Equal(t, "must be less than or equal to 150", details["age"])
}

func TestSalesHandler_CreateSale_MalformedJSON(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales", `{"customerName":`)

	require.NoError(t, fx.handler.CreateSale(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode(t, rec)["code"])
}

func TestSalesHandler_BulkCreateSales(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales/bulk", `{"salesArray":[
		{"customerName":"A","date":"2023-01-01T00:00:00Z"},
		{"customerName":"B","date":"2023-01-02T00:00:00Z"}
	]}`)

	fx.salesUC.EXPECT().
		BulkCreate(mock.Anything, mock.MatchedBy(func(in []*usecase.SalesInput) bool { return len(in) == 2 })).
		Return(&usecase.BulkResult{
			InsertedCount:  1,
			DuplicateCount: 1,
			Records:        []*entity.SalesRecord{{ID: uuid.New(), CustomerName: "A"}},
		}, nil)

	require.NoError(t, fx.handler.BulkCreateSales(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.InDelta(t, 1, body["insertedCount"], 0)
	assert.InDelta(t, 1, body["duplicateCount"], 0)
	assert.Len(t, body["data"], 1)
}

func TestSalesHandler_BulkCreateSales_Empty(t *testing.T) {
	for _, payload := range []string{`{"salesArray":[]}`, `{}`} {
		fx := createTestSalesHandler(t, "")
		e := newTestEcho()
		c, rec := newJSONContext(e, http.MethodPost, "/api/sales/bulk", payload)

		require.NoError(t, fx.handler.BulkCreateSales(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code, payload)
		assert.Equal(t, "EMPTY_BULK_PAYLOAD", decode(t, rec)["code"], payload)
	}
}

func TestSalesHandler_BulkCreateSales_InvalidElement(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales/bulk",
		`{"salesArray":[{"customerName":"A","date":"2023-01-01T00:00:00Z"},{"discountPercentage":140,"date":"2023-01-01T00:00:00Z"}]}`)

	require.NoError(t, fx.handler.BulkCreateSales(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	details := decode(t, rec)["details"].(map[string]any)
	assert.Equal(t, "is required", details["salesArray[1].customerName"])
	assert.Equal(t, "must be less than or equal to 100", details["salesArray[1].discountPercentage"])
}

func TestSalesHandler_ImportSales(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	csv := "Customer Name,Date\nAsha,01-02-2023\n"
	c, rec := newUploadContext(t, e, "file", "sales.csv", csv)

	fx.importUC.EXPECT().
		ImportUpload(mock.Anything, "sales.csv", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, r io.Reader) (*entity.ImportSummary, error) {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, csv, string(data))

			return &entity.ImportSummary{Source: "sales.csv", TotalRows: 1, SuccessRows: 1, InsertedCount: 1, Batches: 1}, nil
		})

	require.NoError(t, fx.handler.ImportSales(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	summary := body["summary"].(map[string]any)
	assert.InDelta(t, 1, summary["insertedCount"], 0)
	assert.Equal(t, "sales.csv", summary["source"])
}

func TestSalesHandler_ImportSales_MissingFile(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newUploadContext(t, e, "attachment", "sales.csv", "x")

	require.NoError(t, fx.handler.ImportSales(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec)["code"])
}

func TestSalesHandler_ImportSales_TooLarge(t *testing.T) {
	fx := createTestSalesHandler(t, "8B")
	e := newTestEcho()
	c, rec := newUploadContext(t, e, "file", "sales.csv", "Customer Name\nsomeone with a long name\n")

	require.NoError(t, fx.handler.ImportSales(c))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", decode(t, rec)["code"])
}

func TestSalesHandler_ImportSales_FatalBatch(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newUploadContext(t, e, "file", "sales.csv", "Customer Name\nA\n")

	fx.importUC.EXPECT().ImportUpload(mock.Anything, "sales.csv", mock.Anything).
		Return(nil, domainerrors.NewBatchWriteError(errors.New("disk full"), 0, "other"))

	require.NoError(t, fx.handler.ImportSales(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "BATCH_WRITE_FAILED", decode(t, rec)["code"])
}

func TestSalesHandler_RequestImport(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales/import/requests", `{"location":"gs://imports/2023.csv"}`)

	fx.importUC.EXPECT().RequestImport(mock.Anything, "gs://imports/2023.csv").Return(nil)

	require.NoError(t, fx.handler.RequestImport(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "Import queued", decode(t, rec)["message"])
}

func TestSalesHandler_RequestImport_QueueDown(t *testing.T) {
	fx := createTestSalesHandler(t, "")
	e := newTestEcho()
	c, rec := newJSONContext(e, http.MethodPost, "/api/sales/import/requests", `{"location":"sales.csv"}`)

	fx.importUC.EXPECT().RequestImport(mock.Anything, "sales.csv").
		Return(domainerrors.ErrImportQueueFailed.WithDetails("topic missing"))

	require.NoError(t, fx.handler.RequestImport(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, decode(t, rec), "details")
}
