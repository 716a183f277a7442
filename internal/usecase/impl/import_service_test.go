package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"saleslens/config"
	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/domain/repository"
	"saleslens/internal/domain/service"
	mockRepo "saleslens/internal/mocks/repository"
	mockSvc "saleslens/internal/mocks/service"
	"saleslens/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sliceSource replays rows; an error entry is returned in place of a row.
type sliceSource struct {
	items  []any
	pos    int
	closed bool
}

func (s *sliceSource) Next(_ context.Context) (entity.RawRow, error) {
	if s.pos >= len(s.items) {
		return nil, io.EOF
	}
	item := s.items[s.pos]
	s.pos++
	if err, ok := item.(error); ok {
		return nil, err
	}

	return item.(entity.RawRow), nil
}

func (s *sliceSource) Close() error {
	s.closed = true

	return nil
}

func validRow(i int) entity.RawRow {
	return entity.RawRow{
		"Customer ID":   fmt.Sprintf("CUST-%04d", i),
		"Customer Name": fmt.Sprintf("Customer %d", i),
		"Quantity":      "2",
		"Final Amount":  "100",
		"Date":          "15-06-2023",
	}
}

func rows(n int) []any {
	out := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, validRow(i))
	}

	return out
}

func allInserted(_ context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
	outcomes := make([]repository.InsertOutcome, len(records))
	for i, r := range records {
		outcomes[i] = repository.InsertOutcome{RecordID: r.ID, Status: repository.Inserted}
	}

	return outcomes, nil
}

type importServiceFixtures struct {
	service   usecase.ImportUsecase
	salesRepo *mockRepo.MockSalesRepository
	opener    *mockSvc.MockSourceOpener
	publisher *mockSvc.MockEventPublisher
	cache     *mockSvc.MockReportCache
}

func createTestImportService(t *testing.T, batchSize int) importServiceFixtures {
	salesRepo := mockRepo.NewMockSalesRepository(t)
	opener := mockSvc.NewMockSourceOpener(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	cache := mockSvc.NewMockReportCache(t)

	svc := NewImportService(ImportServiceParams{
		SalesRepo:  salesRepo,
		Normalizer: normalizer.Default(),
		Opener:     opener,
		Publisher:  publisher,
		Cache:      cache,
		Config:     &config.Config{Import: &config.ImportConfig{BatchSize: batchSize, ProgressEvery: 100}},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return importServiceFixtures{
		service:   svc,
		salesRepo: salesRepo,
		opener:    opener,
		publisher: publisher,
		cache:     cache,
	}
}

func TestImportService_Import_BatchesOf500(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	var batchSizes []int
	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			batchSizes = append(batchSizes, len(records))

			return allInserted(ctx, records)
		})
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.MatchedBy(func(e *service.ImportCompletedEvent) bool {
		return !e.Failed && e.InsertedCount == 1201
	})).Return(nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(&entity.Statistics{TotalTransactions: 1201}, nil)

	summary, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: rows(1201)})
	require.NoError(t, err)

	assert.Equal(t, []int{500, 500, 201}, batchSizes)
	assert.Equal(t, 1201, summary.TotalRows)
	assert.Equal(t, 1201, summary.SuccessRows)
	assert.Equal(t, 0, summary.ErrorRows)
	assert.Equal(t, 1201, summary.InsertedCount)
	assert.Equal(t, 3, summary.Batches)
}

func TestImportService_Import_DuplicatesAndBadRowsDoNotAbort(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	items := rows(150)
	badDate := validRow(37)
	badDate["Date"] = "2023/06/15"
	items[36] = badDate
	badAge := validRow(80)
	badAge["Age"] = "212"
	items[79] = badAge
	items = append(items, &service.RowParseError{Line: 152, Err: errors.New("bare quote")})

	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			outcomes := make([]repository.InsertOutcome, len(records))
			for i, r := range records {
				outcomes[i] = repository.InsertOutcome{RecordID: r.ID, Status: repository.Inserted}
				if r.CustomerID == "CUST-0102" {
					outcomes[i] = repository.InsertOutcome{RecordID: r.ID, Status: repository.Rejected, Reason: repository.ReasonDuplicate}
				}
			}

			return outcomes, nil
		})
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(errors.New("topic missing"))
	fx.salesRepo.EXPECT().Summarize(ctx).Return(nil, errors.New("ignored"))

	summary, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: items})
	require.NoError(t, err)

	assert.Equal(t, 151, summary.TotalRows)
	assert.Equal(t, 149, summary.SuccessRows)
	assert.Equal(t, 2, summary.ErrorRows)
	assert.Equal(t, 1, summary.WarningRows)
	assert.Equal(t, 1, summary.DuplicateRows)
	assert.Equal(t, 148, summary.InsertedCount)
}

func TestImportService_Import_NonDuplicateRejectionIsFatal(t *testing.T) {
	fx := createTestImportService(t, 10)
	ctx := context.Background()

	calls := 0
	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			calls++
			if calls == 1 {
				return allInserted(ctx, records)
			}
			outcomes, _ := allInserted(ctx, records)
			outcomes[3] = repository.InsertOutcome{RecordID: records[3].ID, Status: repository.Rejected, Reason: repository.ReasonInvalid, Detail: "document failed validation"}

			return outcomes, nil
		})
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.MatchedBy(func(e *service.ImportCompletedEvent) bool {
		return e.Failed && e.InsertedCount == 19 && strings.Contains(e.Error, "invalid")
	})).Return(nil)

	summary, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: rows(35)})
	require.Error(t, err)
	assert.Nil(t, summary)
	assert.Equal(t, 2, calls)

	var batchErr *domainerrors.BatchWriteError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, 1, batchErr.BatchIndex())
	assert.Contains(t, err.Error(), "document failed validation")
}

func TestImportService_Import_StoreCallFailure(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()
	storeErr := errors.New("no reachable servers")

	fx.salesRepo.EXPECT().InsertMany(ctx, mock.Anything).Return(nil, storeErr)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: rows(3)})
	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
}

func TestImportService_Import_SourceFailureAborts(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	items := append(rows(2), errors.New("unexpected EOF in zip entry"))
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Import(ctx, "sales.xlsx", &sliceSource{items: items})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidImportSource)
}

func TestImportService_Import_OverlongCellSkipsRow(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	items := rows(5)
	longName := validRow(2)
	longName["Customer Name"] = strings.Repeat("a", normalizer.MaxNameLength+1)
	items[1] = longName
	longPhone := validRow(4)
	longPhone["Phone Number"] = strings.Repeat("9", normalizer.MaxShortLength+8)
	items[3] = longPhone

	var written []*entity.SalesRecord
	fx.salesRepo.EXPECT().
		InsertMany(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
			written = append(written, records...)

			return allInserted(ctx, records)
		})
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(&entity.Statistics{TotalTransactions: 3}, nil)

	summary, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: items})
	require.NoError(t, err)

	assert.Equal(t, 5, summary.TotalRows)
	assert.Equal(t, 2, summary.ErrorRows)
	assert.Equal(t, 3, summary.InsertedCount)
	require.Len(t, written, 3)
	for _, r := range written {
		assert.LessOrEqual(t, len(r.CustomerName), normalizer.MaxNameLength)
		assert.LessOrEqual(t, len(r.PhoneNumber), normalizer.MaxShortLength)
	}
}

func TestImportService_Import_CancelledContextIsNotASourceError(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Import(ctx, "sales.csv", &sliceSource{items: []any{context.Canceled}})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidImportSource)
}

func TestImportService_Import_EmptySource(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(&entity.Statistics{}, nil)

	summary, err := fx.service.Import(ctx, "empty.csv", &sliceSource{})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalRows)
	assert.Equal(t, 0, summary.Batches)
}

func TestImportService_ImportLocation(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()
	src := &sliceSource{items: rows(1)}

	fx.opener.EXPECT().Open(ctx, "gs://bucket/sales.csv").Return(src, nil)
	fx.salesRepo.EXPECT().InsertMany(ctx, mock.Anything).RunAndReturn(allInserted)
	fx.cache.EXPECT().Invalidate(ctx).Return(nil)
	fx.publisher.EXPECT().PublishImportCompleted(ctx, mock.Anything).Return(nil)
	fx.salesRepo.EXPECT().Summarize(ctx).Return(&entity.Statistics{TotalTransactions: 1}, nil)

	summary, err := fx.service.ImportLocation(ctx, "gs://bucket/sales.csv")
	require.NoError(t, err)
	assert.Equal(t, 1, summary.InsertedCount)
	assert.Equal(t, "gs://bucket/sales.csv", summary.Source)
	assert.True(t, src.closed)
}

func TestImportService_ImportUpload_UnsupportedFormat(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	fx.opener.EXPECT().
		FromReader(ctx, "sales.pdf", mock.Anything).
		Return(nil, domainerrors.ErrUnsupportedImportFormat)

	_, err := fx.service.ImportUpload(ctx, "sales.pdf", strings.NewReader(""))
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImportFormat)
}

func TestImportService_RequestImport(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	fx.publisher.EXPECT().
		PublishImportRequested(ctx, &service.ImportRequestedEvent{RequestID: "req-42", Location: "gs://bucket/sales.csv"}).
		Return(nil)

	require.NoError(t, fx.service.RequestImport(ctx, "  gs://bucket/sales.csv "))
}

func TestImportService_RequestImport_Errors(t *testing.T) {
	fx := createTestImportService(t, 500)
	ctx := context.Background()

	err := fx.service.RequestImport(ctx, "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	fx.publisher.EXPECT().PublishImportRequested(ctx, mock.Anything).Return(errors.New("topic not found"))

	err = fx.service.RequestImport(ctx, "sales.csv")
	assert.ErrorIs(t, err, domainerrors.ErrImportQueueFailed)
}
