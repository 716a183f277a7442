package usecase

import (
	"context"
	"time"

	"saleslens/internal/domain/entity"
)

// SalesInput is a directly submitted sales record. Blank enum-like fields take
// the same defaults as imported rows.
type SalesInput struct {
	CustomerID     string `json:"customerId" validate:"max=64"`
	CustomerName   string `json:"customerName" validate:"required,max=200"`
	PhoneNumber    string `json:"phoneNumber" validate:"max=32"`
	Gender         string `json:"gender" validate:"max=32"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	CustomerRegion string `json:"customerRegion" validate:"max=100"`
	CustomerType   string `json:"customerType" validate:"max=64"`

	ProductID       string   `json:"productId" validate:"max=64"`
	ProductName     string   `json:"productName" validate:"max=200"`
	Brand           string   `json:"brand" validate:"max=100"`
	ProductCategory string   `json:"productCategory" validate:"max=100"`
	Tags            []string `json:"tags" validate:"omitempty,dive,required,max=64"`

	Quantity           *float64 `json:"quantity" validate:"omitempty,gte=0"`
	PricePerUnit       float64  `json:"pricePerUnit" validate:"gte=0"`
	DiscountPercentage float64  `json:"discountPercentage" validate:"gte=0,lte=100"`
	TotalAmount        float64  `json:"totalAmount" validate:"gte=0"`
	FinalAmount        float64  `json:"finalAmount" validate:"gte=0"`

	Date          time.Time `json:"date" validate:"required"`
	PaymentMethod string    `json:"paymentMethod" validate:"max=64"`
	OrderStatus   string    `json:"orderStatus" validate:"max=64"`
	DeliveryType  string    `json:"deliveryType" validate:"max=64"`
	StoreID       string    `json:"storeId" validate:"max=64"`
	StoreLocation string    `json:"storeLocation" validate:"max=100"`
	SalespersonID string    `json:"salespersonId" validate:"max=64"`
	EmployeeName  string    `json:"employeeName" validate:"max=200"`
}

// BulkResult reports a bulk insert
type BulkResult struct {
	InsertedCount  int                   `json:"insertedCount"`
	DuplicateCount int                   `json:"duplicateCount"`
	Records        []*entity.SalesRecord `json:"data"`
}

// SalesUsecase defines direct record creation use cases
type SalesUsecase interface {
	// Create persists a single record
	Create(ctx context.Context, input *SalesInput) (*entity.SalesRecord, error)

	// BulkCreate persists many records, skipping duplicates
	BulkCreate(ctx context.Context, inputs []*SalesInput) (*BulkResult, error)
}
