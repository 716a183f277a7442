package usecase

import (
	"context"
	"io"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/service"
)

// ImportUsecase defines the batch import use cases
type ImportUsecase interface {
	// Import drains source into the record store. name labels the run in logs and events.
	Import(ctx context.Context, name string, source service.RowSource) (*entity.ImportSummary, error)

	// ImportLocation opens a path or blob URL and imports it
	ImportLocation(ctx context.Context, location string) (*entity.ImportSummary, error)

	// ImportUpload imports an uploaded file; the format is taken from filename
	ImportUpload(ctx context.Context, filename string, r io.Reader) (*entity.ImportSummary, error)

	// RequestImport queues an import of location for a worker
	RequestImport(ctx context.Context, location string) error
}
