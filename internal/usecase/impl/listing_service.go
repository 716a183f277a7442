package impl

import (
	"context"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/query"
	"saleslens/internal/domain/repository"
	"saleslens/internal/usecase"

	"golang.org/x/sync/errgroup"
)

type listingService struct {
	salesRepo repository.SalesRepository
}

// NewListingService creates a new listing service instance
func NewListingService(salesRepo repository.SalesRepository) usecase.ListingUsecase {
	return &listingService{
		salesRepo: salesRepo,
	}
}

// List fetches the requested page and the total match count concurrently
func (s *listingService) List(ctx context.Context, req entity.ListRequest) (*entity.SalesPage, error) {
	page := req.Page.Clamp()
	q := query.Build(req.Search, req.Filters)
	window := repository.Page{
		Sort:   query.BuildSort(page.Sort),
		Offset: page.Offset(),
		Limit:  page.PageSize,
	}

	var (
		records []*entity.SalesRecord
		total   int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.salesRepo.Find(gctx, q, window)

		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.salesRepo.Count(gctx, q)

		return err
	})
	if err := g.Wait(); err != nil {
		return nil, domainerrors.NewQueryExecutionError(err, "fetch sales")
	}

	if records == nil {
		records = []*entity.SalesRecord{}
	}

	return &entity.SalesPage{
		Records:    records,
		Pagination: entity.NewPagination(page, total),
	}, nil
}
