package usecase

import (
	"context"

	"saleslens/internal/domain/entity"
)

// ListingUsecase defines the paginated sales listing use case
type ListingUsecase interface {
	// List returns one page of matching records with pagination metadata.
	// The page request is clamped before use.
	List(ctx context.Context, req entity.ListRequest) (*entity.SalesPage, error)
}
