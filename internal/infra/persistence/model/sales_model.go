package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SalesRecordModel is the GORM-specific struct for the 'sales_records' table.
type SalesRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Fingerprint string    `gorm:"type:char(64);not null;uniqueIndex"`

	CustomerID     string `gorm:"type:varchar(64);not null;default:''"`
	CustomerName   string `gorm:"type:varchar(200);not null;default:''"`
	PhoneNumber    string `gorm:"type:varchar(32);not null;default:''"`
	Gender         string `gorm:"type:varchar(32);not null;default:'';index"`
	Age            int    `gorm:"not null;default:0;check:age BETWEEN 0 AND 150;index"`
	CustomerRegion string `gorm:"type:varchar(100);not null;default:'';index"`
	CustomerType   string `gorm:"type:varchar(64);not null;default:''"`

	ProductID       string         `gorm:"type:varchar(64);not null;default:''"`
	ProductName     string         `gorm:"type:varchar(200);not null;default:''"`
	Brand           string         `gorm:"type:varchar(100);not null;default:''"`
	ProductCategory string         `gorm:"type:varchar(100);not null;default:'';index"`
	Tags            pq.StringArray `gorm:"type:text[];not null;default:'{}'"`

	Quantity           float64 `gorm:"type:numeric;not null;default:0;index"`
	PricePerUnit       float64 `gorm:"type:numeric;not null;default:0"`
	DiscountPercentage float64 `gorm:"type:numeric;not null;default:0"`
	TotalAmount        float64 `gorm:"type:numeric;not null;default:0"`
	FinalAmount        float64 `gorm:"type:numeric;not null;default:0"`

	// Date is NULL when the source date could not be parsed.
	Date          *time.Time `gorm:"type:timestamptz;index"`
	PaymentMethod string     `gorm:"type:varchar(64);not null;default:'';index"`
	OrderStatus   string     `gorm:"type:varchar(64);not null;default:''"`
	DeliveryType  string     `gorm:"type:varchar(64);not null;default:''"`
	StoreID       string     `gorm:"type:varchar(64);not null;default:''"`
	StoreLocation string     `gorm:"type:varchar(100);not null;default:''"`
	SalespersonID string     `gorm:"type:varchar(64);not null;default:''"`
	EmployeeName  string     `gorm:"type:varchar(200);not null;default:''"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SalesRecordModel) TableName() string {
	return "sales_records"
}
