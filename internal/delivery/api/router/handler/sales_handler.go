package handler

import (
	"log/slog"
	"net/http"

	"saleslens/config"
	"saleslens/internal/delivery/api/response"
	deliverycontext "saleslens/internal/delivery/context"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DefaultMaxUploadSize applies when import.maxUploadSize is unset
const DefaultMaxUploadSize int64 = 50 * 1024 * 1024

// uploadField is the multipart field carrying the import file
const uploadField = "file"

// SalesHandlerParams holds dependencies for SalesHandler, injected by Fx.
type SalesHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	SalesUC   usecase.SalesUsecase
	ImportUC  usecase.ImportUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// SalesHandler serves listing, creation and import of sales records
type SalesHandler struct {
	listingUC     usecase.ListingUsecase
	salesUC       usecase.SalesUsecase
	importUC      usecase.ImportUsecase
	logger        *slog.Logger
	maxUploadSize int64
}

// NewSalesHandler is the constructor for SalesHandler
func NewSalesHandler(params SalesHandlerParams) (*SalesHandler, error) {
	maxUpload, err := MaxUploadSize(params.Config)
	if err != nil {
		return nil, err
	}

	return &SalesHandler{
		listingUC:     params.ListingUC,
		salesUC:       params.SalesUC,
		importUC:      params.ImportUC,
		logger:        params.Logger,
		maxUploadSize: maxUpload,
	}, nil
}

// MaxUploadSize parses import.maxUploadSize, e.g. "50M"
func MaxUploadSize(cfg *config.Config) (int64, error) {
	if cfg == nil || cfg.Import == nil || cfg.Import.MaxUploadSize == "" {
		return DefaultMaxUploadSize, nil
	}

	size, err := bytes.Parse(cfg.Import.MaxUploadSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid import.maxUploadSize %q", cfg.Import.MaxUploadSize)
	}

	return size, nil
}

// BulkCreateRequest is the body of a bulk insert
type BulkCreateRequest struct {
	SalesArray []*usecase.SalesInput `json:"salesArray" validate:"dive,required"`
}

// ImportRequest asks for an asynchronous import of a stored file
type ImportRequest struct {
	Location string `json:"location" validate:"required,max=2048"`
}

// ListSales handles the filtered, sorted and paginated listing
func (h *SalesHandler) ListSales(c echo.Context) error {
	req, err := parseListRequest(c.QueryParams())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	page, err := h.listingUC.List(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Page(c, page)
}

// CreateSale handles single record creation
func (h *SalesHandler) CreateSale(c echo.Context) error {
	var req usecase.SalesInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid sales record")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	record, err := h.salesUC.Create(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Data(c, http.StatusCreated, record)
}

// BulkCreateSales handles inserting many records at once
func (h *SalesHandler) BulkCreateSales(c echo.Context) error {
	var req BulkCreateRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "salesArray must be a non-empty array")
	}

	if len(req.SalesArray) == 0 {
		return response.HandleAppError(c, domainerrors.ErrEmptyBulkPayload)
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.salesUC.BulkCreate(c.Request().Context(), req.SalesArray)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, response.BulkResponse{Success: true, BulkResult: result})
}

// ImportSales runs a synchronous import of an uploaded CSV or XLSX file
func (h *SalesHandler) ImportSales(c echo.Context) error {
	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(map[string]string{
			uploadField: "a CSV or XLSX file is required",
		}))
	}

	if fileHeader.Size > h.maxUploadSize {
		return response.Error(c, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE",
			"Import file exceeds "+bytes.Format(h.maxUploadSize), nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrInvalidImportSource.WithDetails(err.Error()))
	}
	defer file.Close()

	ctx := c.Request().Context()
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Import upload received",
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size),
	)

	summary, err := h.importUC.ImportUpload(ctx, fileHeader.Filename, file)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, response.ImportResponse{Success: true, Summary: summary})
}

// RequestImport queues an import of a file the worker can reach
func (h *SalesHandler) RequestImport(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid import request")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	ctx := c.Request().Context()
	if err := h.importUC.RequestImport(ctx, req.Location); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, response.AcceptedResponse{
		Success:   true,
		Message:   "Import queued",
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
	})
}
