package response

import (
	"net/http"

	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DataResponse wraps a single payload
type DataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// PageResponse is one page of the sales listing
type PageResponse struct {
	Success    bool                  `json:"success"`
	Data       []*entity.SalesRecord `json:"data"`
	Pagination entity.Pagination     `json:"pagination"`
}

// FacetsResponse flattens the facet lists next to the success flag
type FacetsResponse struct {
	Success bool `json:"success"`
	entity.Facets
}

// StatisticsResponse wraps the collection statistics
type StatisticsResponse struct {
	Success bool               `json:"success"`
	Stats   *entity.Statistics `json:"stats"`
}

// BulkResponse reports a bulk insert
type BulkResponse struct {
	Success bool `json:"success"`
	*usecase.BulkResult
}

// ImportResponse reports a finished import
type ImportResponse struct {
	Success bool                  `json:"success"`
	Summary *entity.ImportSummary `json:"summary"`
}

// AcceptedResponse acknowledges queued work
type AcceptedResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	RequestID string `json:"requestId"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`             // User-friendly error message
	Code      string `json:"code"`              // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Details   any    `json:"details,omitempty"` // Only for 4xx errors
	RequestID string `json:"requestId,omitempty"`
}

// Success writes body with the given status
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Data returns {success, data}
func Data(c echo.Context, statusCode int, data any) error {
	return Success(c, statusCode, DataResponse{Success: true, Data: data})
}

// Page returns one listing page
func Page(c echo.Context, page *entity.SalesPage) error {
	records := page.Records
	if records == nil {
		records = []*entity.SalesRecord{}
	}

	return Success(c, http.StatusOK, PageResponse{
		Success:    true,
		Data:       records,
		Pagination: page.Pagination,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors
	if statusCode >= http.StatusInternalServerError {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Error:     message,
		Code:      errorCode,
		Details:   details,
		RequestID: deliverycontext.RequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// AppErrorDetails extracts the client-facing details of an AppError
func AppErrorDetails(appErr domainerrors.AppError) any {
	var verr *domainerrors.ValidationError
	if errors.As(appErr, &verr) {
		return verr.Fields()
	}
	if d := appErr.Details(); d != "" {
		return d
	}

	return nil
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), AppErrorDetails(appErr))
	}

	return errors.WithStack(err)
}
