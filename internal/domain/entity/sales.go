// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SalesRecord represents one normalized retail transaction.
type SalesRecord struct {
	ID uuid.UUID `json:"_id"` // The Global Unique Identifier (GUID) for the record.

	CustomerID     string `json:"customerId"`
	CustomerName   string `json:"customerName"`
	PhoneNumber    string `json:"phoneNumber"`
	Gender         string `json:"gender"`
	Age            int    `json:"age"`
	CustomerRegion string `json:"customerRegion"`
	CustomerType   string `json:"customerType"`

	ProductID       string   `json:"productId"`
	ProductName     string   `json:"productName"`
	Brand           string   `json:"brand"`
	ProductCategory string   `json:"productCategory"`
	Tags            []string `json:"tags"`

	Quantity           float64 `json:"quantity"`
	PricePerUnit       float64 `json:"pricePerUnit"`
	DiscountPercentage float64 `json:"discountPercentage"`
	TotalAmount        float64 `json:"totalAmount"`
	FinalAmount        float64 `json:"finalAmount"`

	Date          time.Time `json:"date"` // Zero value marks an unparseable source date.
	PaymentMethod string    `json:"paymentMethod"`
	OrderStatus   string    `json:"orderStatus"`
	DeliveryType  string    `json:"deliveryType"`
	StoreID       string    `json:"storeId"`
	StoreLocation string    `json:"storeLocation"`
	SalespersonID string    `json:"salespersonId"`
	EmployeeName  string    `json:"employeeName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasValidDate reports whether the record carries a real calendar date.
func (r *SalesRecord) HasValidDate() bool {
	return !r.Date.IsZero()
}

// Fingerprint returns a stable digest of the fields that identify a transaction.
// Stores put a unique index on it so re-importing the same row is rejected as a duplicate.
func (r *SalesRecord) Fingerprint() string {
	date := ""
	if r.HasValidDate() {
		date = r.Date.UTC().Format(time.DateOnly)
	}

	parts := []string{
		r.CustomerID,
		r.ProductID,
		r.StoreID,
		r.SalespersonID,
		date,
		strconv.FormatFloat(r.Quantity, 'f', -1, 64),
		strconv.FormatFloat(r.FinalAmount, 'f', -1, 64),
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "\x1f")))

	return hex.EncodeToString(sum[:])
}

// RawRow is one loosely-typed source row keyed by column header.
type RawRow map[string]string
