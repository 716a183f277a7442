package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/domain/repository"
	mockRepo "saleslens/internal/mocks/repository"
	mockSvc "saleslens/internal/mocks/service"
	"saleslens/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type salesServiceFixtures struct {
	service   usecase.SalesUsecase
	salesRepo *mockRepo.MockSalesRepository
	cache     *mockSvc.MockReportCache
}

func createTestSalesService(t *testing.T) salesServiceFixtures {
	salesRepo := mockRepo.NewMockSalesRepository(t)
	cache := mockSvc.NewMockReportCache(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return salesServiceFixtures{
		service:   NewSalesService(salesRepo, cache, logger),
		salesRepo: salesRepo,
		cache:     cache,
	}
}

func sampleInput() *usecase.SalesInput {
	return &usecase.SalesInput{
		CustomerID:   " CUST-1 ",
		CustomerName: "Neha Shah",
		Tags:         []string{" gift ", "", "sale"},
		FinalAmount:  120.5,
		Date:         time.Date(2023, 6, 15, 10, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)),
	}
}

func TestSalesService_Create_AppliesDefaults(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	fx.salesRepo.EXPECT().InsertOne(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)

	record, err := fx.service.Create(ctx, sampleInput())
	require.NoError(t, err)

	assert.Equal(t, "CUST-1", record.CustomerID)
	assert.Equal(t, normalizer.DefaultGender, record.Gender)
	assert.Equal(t, normalizer.DefaultCustomerType, record.CustomerType)
	assert.Equal(t, normalizer.DefaultPaymentMethod, record.PaymentMethod)
	assert.Equal(t, normalizer.DefaultOrderStatus, record.OrderStatus)
	assert.Equal(t, normalizer.DefaultDeliveryType, record.DeliveryType)
	assert.Equal(t, float64(normalizer.DefaultQuantity), record.Quantity)
	assert.Equal(t, []string{"gift", "sale"}, record.Tags)
	assert.Equal(t, time.UTC, record.Date.Location())
	assert.Equal(t, 4, record.Date.Hour())
	assert.NotEqual(t, [16]byte{}, [16]byte(record.ID))
	assert.False(t, record.CreatedAt.IsZero())
}

func TestSalesService_Create_KeepsExplicitZeroQuantity(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	fx.salesRepo.EXPECT().InsertOne(ctx, mock.Anything).Return(nil)
	fx.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down"))

	zero := 0.0
	input := sampleInput()
	input.Quantity = &zero

	record, err := fx.service.Create(ctx, input)
	require.NoError(t, err)
	assert.Zero(t, record.Quantity)
}

func TestSalesService_Create_Duplicate(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	fx.salesRepo.EXPECT().InsertOne(ctx, mock.Anything).Return(repository.ErrDuplicateSale)

	_, err := fx.service.Create(ctx, sampleInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestSalesService_Create_StoreFailure(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()
	storeErr := errors.New("connection reset")

	fx.salesRepo.EXPECT().InsertOne(ctx, mock.Anything).Return(storeErr)

	_, err := fx.service.Create(ctx, sampleInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestSalesService_BulkCreate_EmptyPayload(t *testing.T) {
	fx := createTestSalesService(t)

	_, err := fx.service.BulkCreate(context.Background(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyBulkPayload)
}

func TestSalesService_BulkCreate_CountsDuplicates(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.MatchedBy(func(records []*entity.SalesRecord) bool { return len(records) == 3 })).
		RunAndReturn(func(_ context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			return []repository.InsertOutcome{
				{RecordID: records[0].ID, Status: repository.Inserted},
				{RecordID: records[1].ID, Status: repository.Rejected, Reason: repository.ReasonDuplicate},
				{RecordID: records[2].ID, Status: repository.Inserted},
			}, nil
		})
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)

	result, err := fx.service.BulkCreate(ctx, []*usecase.SalesInput{sampleInput(), sampleInput(), sampleInput()})
	require.NoError(t, err)
	assert.Equal(t, 2, result.InsertedCount)
	assert.Equal(t, 1, result.DuplicateCount)
	assert.Len(t, result.Records, 2)
}

func TestSalesService_BulkCreate_OtherRejectionFails(t *testing.T) {
	fx := createTestSalesService(t)
	ctx := context.Background()

	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			return []repository.InsertOutcome{
				{RecordID: records[0].ID, Status: repository.Rejected, Reason: repository.ReasonOther, Detail: "disk full"},
			}, nil
		})

	_, err := fx.service.BulkCreate(ctx, []*usecase.SalesInput{sampleInput()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}
