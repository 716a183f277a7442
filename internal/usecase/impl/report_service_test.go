package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/query"
	mockRepo "saleslens/internal/mocks/repository"
	mockSvc "saleslens/internal/mocks/service"
	"saleslens/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reportServiceFixtures struct {
	service   usecase.ReportUsecase
	salesRepo *mockRepo.MockSalesRepository
	cache     *mockSvc.MockReportCache
}

func createTestReportService(t *testing.T) reportServiceFixtures {
	salesRepo := mockRepo.NewMockSalesRepository(t)
	cache := mockSvc.NewMockReportCache(t)

	return reportServiceFixtures{
		service: NewReportService(ReportServiceParams{
			SalesRepo: salesRepo,
			Cache:     cache,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		salesRepo: salesRepo,
		cache:     cache,
	}
}

func TestReportService_Facets_SortedDistinctNonEmpty(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetFacets(ctx).Return(nil, nil)
	fx.salesRepo.EXPECT().Distinct(mock.Anything, query.FieldCustomerRegion).Return([]string{"West", "", "East", "West"}, nil)
	fx.salesRepo.EXPECT().Distinct(mock.Anything, query.FieldGender).Return([]string{"Male", "Female"}, nil)
	fx.salesRepo.EXPECT().Distinct(mock.Anything, query.FieldProductCategory).Return([]string{}, nil)
	fx.salesRepo.EXPECT().Distinct(mock.Anything, query.FieldPaymentMethod).Return([]string{"UPI", "Cash", "Card"}, nil)
	fx.salesRepo.EXPECT().Distinct(mock.Anything, query.FieldTags).Return([]string{"sale", "new", "sale"}, nil)
	fx.cache.EXPECT().SetFacets(ctx, mock.AnythingOfType("*entity.Facets")).Return(nil)

	facets, err := fx.service.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"East", "West"}, facets.Regions)
	assert.Equal(t, []string{"Female", "Male"}, facets.Genders)
	assert.Empty(t, facets.Categories)
	assert.Equal(t, []string{"Card", "Cash", "UPI"}, facets.PaymentMethods)
	assert.Equal(t, []string{"new", "sale"}, facets.Tags)
}

func TestReportService_Facets_CacheHit(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	cached := &entity.Facets{Regions: []string{"North"}}

	fx.cache.EXPECT().GetFacets(ctx).Return(cached, nil)

	facets, err := fx.service.Facets(ctx)
	require.NoError(t, err)
	assert.Same(t, cached, facets)
}

func TestReportService_Facets_StoreFailure(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetFacets(ctx).Return(nil, errors.New("redis down"))
	fx.salesRepo.EXPECT().Distinct(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Maybe()

	facets, err := fx.service.Facets(ctx)
	require.Error(t, err)
	assert.Nil(t, facets)
	assert.Contains(t, err.Error(), "failed to fetch filter options")
}

func TestReportService_Statistics_EmptyCollectionIsZero(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetStatistics(ctx).Return(nil, nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(nil, nil)
	fx.cache.EXPECT().SetStatistics(ctx, &entity.Statistics{}).Return(nil)

	stats, err := fx.service.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Statistics{}, stats)
}

func TestReportService_Statistics(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()
	want := &entity.Statistics{TotalSales: 300, TotalQuantity: 7, AverageOrderValue: 100, TotalTransactions: 3}

	fx.cache.EXPECT().GetStatistics(ctx).Return(nil, nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(want, nil)
	fx.cache.EXPECT().SetStatistics(ctx, want).Return(errors.New("redis down"))

	stats, err := fx.service.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, stats)
}

func TestReportService_Statistics_StoreFailure(t *testing.T) {
	fx := createTestReportService(t)
	ctx := context.Background()

	fx.cache.EXPECT().GetStatistics(ctx).Return(nil, nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(nil, errors.New("aggregate rejected"))

	_, err := fx.service.Statistics(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch statistics")
}
