// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/query"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDuplicateSale is returned when a single insert hits the uniqueness constraint.
var ErrDuplicateSale = errors.New("sales record already exists")

// InsertStatus is the per-record result of a bulk insert.
type InsertStatus int

const (
	Inserted InsertStatus = iota
	Rejected
)

// RejectReason classifies why the store refused a record.
type RejectReason string

const (
	ReasonDuplicate RejectReason = "duplicate"
	ReasonInvalid   RejectReason = "invalid"
	ReasonOther     RejectReason = "other"
)

// InsertOutcome reports what happened to one record of an InsertMany call.
type InsertOutcome struct {
	RecordID uuid.UUID
	Status   InsertStatus
	Reason   RejectReason // Empty when Status is Inserted.
	Detail   string       // Store message for rejected records.
}

// Page is a sorted, offset-limited read window.
type Page struct {
	Sort   query.Sort
	Offset int
	Limit  int
}

// SalesRepository defines the record store operations the engine needs.
type SalesRepository interface {
	// Find returns the records matching q in the given order and window.
	Find(ctx context.Context, q query.Query, page Page) ([]*entity.SalesRecord, error)

	// Count returns the number of records matching q.
	Count(ctx context.Context, q query.Query) (int64, error)

	// Distinct returns the distinct values of field across all records.
	// For tags, values are taken from every array element.
	Distinct(ctx context.Context, field query.Field) ([]string, error)

	// Summarize aggregates finalAmount and quantity across all records.
	Summarize(ctx context.Context) (*entity.Statistics, error)

	// InsertMany attempts every record independently and returns one outcome
	// per record, in input order. A non-nil error means the call as a whole failed.
	InsertMany(ctx context.Context, records []*entity.SalesRecord) ([]InsertOutcome, error)

	// InsertOne persists a single record. Duplicates return ErrDuplicateSale.
	InsertOne(ctx context.Context, record *entity.SalesRecord) error
}
