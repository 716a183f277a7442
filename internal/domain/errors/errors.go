package errors

import (
	"net/http"
	"sort"
	"strings"

	"saleslens/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so WithDetails copies
// still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request parameters",
		"",
	)

	ErrEmptyBulkPayload = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_BULK_PAYLOAD",
		"Please provide an array of sales data",
		"",
	)

	ErrInvalidImportSource = NewBaseError(
		http.StatusBadRequest,
		"INVALID_IMPORT_SOURCE",
		"Import source could not be read",
		"",
	)

	ErrUnsupportedImportFormat = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_IMPORT_FORMAT",
		"Import file must be .csv or .xlsx",
		"",
	)

	ErrImportQueueFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"IMPORT_QUEUE_FAILED",
		"Import request could not be queued",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Route not found",
		"",
	)
)

// ValidationError carries field-level messages for a rejected request.
type ValidationError struct {
	fields map[string]string
}

// NewValidationError creates a validation error from field -> message pairs
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{fields: fields}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return ErrValidationFailed.Message() + ": " + e.Details()
}

// HTTPCode returns the HTTP status code
func (e *ValidationError) HTTPCode() int {
	return ErrValidationFailed.HTTPCode()
}

// ErrorCode returns the business error code
func (e *ValidationError) ErrorCode() string {
	return ErrValidationFailed.ErrorCode()
}

// Message returns the user-friendly error message
func (e *ValidationError) Message() string {
	return ErrValidationFailed.Message()
}

// Details returns the field messages joined in field order
func (e *ValidationError) Details() string {
	keys := make([]string, 0, len(e.fields))
	for k := range e.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.fields[k])
	}

	return strings.Join(parts, "; ")
}

// Fields returns a copy of the field messages
func (e *ValidationError) Fields() map[string]string {
	out := make(map[string]string, len(e.fields))
	for k, v := range e.fields {
		out[k] = v
	}

	return out
}

// Is lets errors.Is(err, ErrValidationFailed) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// QueryExecutionError reports a failed read against the record store
type QueryExecutionError struct {
	err       error
	operation string
}

// NewQueryExecutionError wraps a store failure for the named read operation
func NewQueryExecutionError(err error, operation string) AppError {
	return &QueryExecutionError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *QueryExecutionError) Error() string {
	return errors.Wrapf(e.err, "failed to %s", e.operation).Error()
}

// Unwrap returns the underlying store error
func (e *QueryExecutionError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *QueryExecutionError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *QueryExecutionError) ErrorCode() string {
	return "QUERY_EXECUTION_FAILED"
}

// Message returns the user-friendly error message
func (e *QueryExecutionError) Message() string {
	return "Failed to " + e.operation
}

// Details returns detailed error information
func (e *QueryExecutionError) Details() string {
	if e.err == nil {
		return ""
	}

	return e.err.Error()
}

// BatchWriteError reports a non-duplicate failure while writing an import batch.
// It aborts the import.
type BatchWriteError struct {
	err        error
	batchIndex int
	reason     string
}

// NewBatchWriteError creates a fatal batch write error
func NewBatchWriteError(err error, batchIndex int, reason string) *BatchWriteError {
	return &BatchWriteError{
		err:        err,
		batchIndex: batchIndex,
		reason:     reason,
	}
}

// Error implements the error interface
func (e *BatchWriteError) Error() string {
	msg := "batch write failed"
	if e.reason != "" {
		msg += " (" + e.reason + ")"
	}
	if e.err == nil {
		return msg
	}

	return errors.Wrap(e.err, msg).Error()
}

// Unwrap returns the underlying store error
func (e *BatchWriteError) Unwrap() error {
	return e.err
}

// BatchIndex returns the zero-based index of the failing batch
func (e *BatchWriteError) BatchIndex() int {
	return e.batchIndex
}

// HTTPCode returns the HTTP status code
func (e *BatchWriteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *BatchWriteError) ErrorCode() string {
	return "BATCH_WRITE_FAILED"
}

// Message returns the user-friendly error message
func (e *BatchWriteError) Message() string {
	return "Failed to import sales data"
}

// Details returns detailed error information
func (e *BatchWriteError) Details() string {
	return e.Error()
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap returns the underlying database error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
