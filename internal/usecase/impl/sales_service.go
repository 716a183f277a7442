package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "saleslens/internal/delivery/context"
	"saleslens/internal/domain/entity"
	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/normalizer"
	"saleslens/internal/domain/repository"
	"saleslens/internal/domain/service"
	"saleslens/internal/errors"
	"saleslens/internal/usecase"

	"github.com/google/uuid"
)

type salesService struct {
	salesRepo repository.SalesRepository
	cache     service.ReportCache
	logger    *slog.Logger
	now       func() time.Time
}

// NewSalesService creates a new sales service instance
func NewSalesService(salesRepo repository.SalesRepository, cache service.ReportCache, logger *slog.Logger) usecase.SalesUsecase {
	return &salesService{
		salesRepo: salesRepo,
		cache:     cache,
		logger:    logger,
		now:       time.Now,
	}
}

// Create persists a single record
func (s *salesService) Create(ctx context.Context, input *usecase.SalesInput) (*entity.SalesRecord, error) {
	record := s.toRecord(input)

	if err := s.salesRepo.InsertOne(ctx, record); err != nil {
		if errors.Is(err, repository.ErrDuplicateSale) {
			return nil, domainerrors.NewValidationError(map[string]string{
				"record": "an identical sales record already exists",
			})
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create sales record")
	}

	s.invalidate(ctx)

	return record, nil
}

// BulkCreate persists many records in one unordered insert, counting duplicates
func (s *salesService) BulkCreate(ctx context.Context, inputs []*usecase.SalesInput) (*usecase.BulkResult, error) {
	if len(inputs) == 0 {
		return nil, domainerrors.ErrEmptyBulkPayload
	}

	records := make([]*entity.SalesRecord, 0, len(inputs))
	for _, input := range inputs {
		records = append(records, s.toRecord(input))
	}

	outcomes, err := s.salesRepo.InsertMany(ctx, records)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to insert sales records")
	}

	result := &usecase.BulkResult{Records: make([]*entity.SalesRecord, 0, len(records))}
	for i, outcome := range outcomes {
		switch {
		case outcome.Status == repository.Inserted:
			result.InsertedCount++
			result.Records = append(result.Records, records[i])
		case outcome.Reason == repository.ReasonDuplicate:
			result.DuplicateCount++
		default:
			return nil, domainerrors.NewDatabaseExecuteError(
				errors.Errorf("record %d rejected: %s", i, outcome.Detail),
				"failed to insert sales records",
			)
		}
	}

	if result.InsertedCount > 0 {
		s.invalidate(ctx)
	}

	return result, nil
}

func (s *salesService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Failed to invalidate report cache", slog.Any("error", err))
	}
}

// toRecord maps a submitted payload, applying the import defaults to blank fields
func (s *salesService) toRecord(in *usecase.SalesInput) *entity.SalesRecord {
	now := s.now().UTC()

	quantity := float64(normalizer.DefaultQuantity)
	if in.Quantity != nil {
		quantity = *in.Quantity
	}

	tags := make([]string, 0, len(in.Tags))
	for _, tag := range in.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}

	return &entity.SalesRecord{
		ID:                 uuid.Must(uuid.NewV7()),
		CustomerID:         strings.TrimSpace(in.CustomerID),
		CustomerName:       strings.TrimSpace(in.CustomerName),
		PhoneNumber:        strings.TrimSpace(in.PhoneNumber),
		Gender:             orDefault(in.Gender, normalizer.DefaultGender),
		Age:                in.Age,
		CustomerRegion:     strings.TrimSpace(in.CustomerRegion),
		CustomerType:       orDefault(in.CustomerType, normalizer.DefaultCustomerType),
		ProductID:          strings.TrimSpace(in.ProductID),
		ProductName:        strings.TrimSpace(in.ProductName),
		Brand:              strings.TrimSpace(in.Brand),
		ProductCategory:    strings.TrimSpace(in.ProductCategory),
		Tags:               tags,
		Quantity:           quantity,
		PricePerUnit:       in.PricePerUnit,
		DiscountPercentage: in.DiscountPercentage,
		TotalAmount:        in.TotalAmount,
		FinalAmount:        in.FinalAmount,
		Date:               in.Date.UTC(),
		PaymentMethod:      orDefault(in.PaymentMethod, normalizer.DefaultPaymentMethod),
		OrderStatus:        orDefault(in.OrderStatus, normalizer.DefaultOrderStatus),
		DeliveryType:       orDefault(in.DeliveryType, normalizer.DefaultDeliveryType),
		StoreID:            strings.TrimSpace(in.StoreID),
		StoreLocation:      strings.TrimSpace(in.StoreLocation),
		SalespersonID:      strings.TrimSpace(in.SalespersonID),
		EmployeeName:       strings.TrimSpace(in.EmployeeName),
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func orDefault(v, def string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}

	return def
}
