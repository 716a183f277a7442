package normalizer

import (
	"math"
	"strconv"
	"strings"
	"time"

	"saleslens/internal/domain/entity"

	"github.com/pkg/errors"
)

// SourceDateLayout is the day-month-year form used by the import files.
const SourceDateLayout = "02-01-2006"

// Field defaults applied to blank or missing cells.
const (
	DefaultGender        = "Other"
	DefaultCustomerType  = "Retail"
	DefaultPaymentMethod = "Credit Card"
	DefaultOrderStatus   = "Pending"
	DefaultDeliveryType  = "Standard"
	DefaultQuantity      = 1
)

// Column widths of the relational store. Longer cells reject the row.
const (
	MaxShortLength = 32
	MaxCodeLength  = 64
	MaxLabelLength = 100
	MaxNameLength  = 200
)

var errUnparseable = errors.New("unparseable value")

// Value is the parsed form of one column. Only the member matching the parser is set.
type Value struct {
	Str  string
	Num  float64
	Tags []string
	Date time.Time
}

// ParseFunc turns a raw cell into a Value. It returns errUnparseable when the
// default should be used instead.
type ParseFunc func(raw string) (Value, error)

// Bounds is an inclusive numeric range a parsed value must fall in.
type Bounds struct {
	Min float64
	Max float64
}

// FieldSpec binds one source column to one record field.
type FieldSpec struct {
	Column  string                                 // Source header name.
	Default Value                                  // Used when the cell is absent, blank or unparseable.
	Parse   ParseFunc                              // Cell parser.
	Bounds  *Bounds                                // Optional range check; violations reject the row.
	MaxLen  int                                    // Optional character limit for strings; longer values reject the row.
	Warn    Warning                                // Reported instead of silently defaulting, if set.
	Assign  func(rec *entity.SalesRecord, v Value) // Writes the value into the record.
}

// FieldTable is the full column mapping used by a Normalizer.
type FieldTable []FieldSpec

// ParseString keeps the trimmed cell; blank cells take the default.
func ParseString(raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Value{}, errUnparseable
	}

	return Value{Str: s}, nil
}

// ParseNumber parses a finite decimal number.
func ParseNumber(raw string) (Value, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return Value{}, errUnparseable
	}

	return Value{Num: n}, nil
}

// ParseWholeNumber parses a decimal number and truncates it toward zero.
func ParseWholeNumber(raw string) (Value, error) {
	v, err := ParseNumber(raw)
	if err != nil {
		return v, err
	}
	v.Num = math.Trunc(v.Num)

	return v, nil
}

// ParseTags splits on commas, trims each piece and drops empty ones.
// Duplicates are kept in input order.
func ParseTags(raw string) (Value, error) {
	pieces := strings.Split(raw, ",")
	tags := make([]string, 0, len(pieces))
	for _, p := range pieces {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}

	return Value{Tags: tags}, nil
}

// ParseSourceDate reads DD-MM-YYYY into a UTC calendar date.
func ParseSourceDate(raw string) (Value, error) {
	t, err := time.ParseInLocation(SourceDateLayout, strings.TrimSpace(raw), time.UTC)
	if err != nil {
		return Value{}, errUnparseable
	}

	return Value{Date: t}, nil
}

func str(s string) Value { return Value{Str: s} }

func num(n float64) Value { return Value{Num: n} }

// DefaultFieldTable returns the column mapping for the standard sales export.
func DefaultFieldTable() FieldTable {
	nonNegative := &Bounds{Min: 0, Max: math.MaxFloat64}

	return FieldTable{
		{Column: "Customer ID", Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.CustomerID = v.Str }},
		{Column: "Customer Name", Parse: ParseString, MaxLen: MaxNameLength, Assign: func(r *entity.SalesRecord, v Value) { r.CustomerName = v.Str }},
		{Column: "Phone Number", Parse: ParseString, MaxLen: MaxShortLength, Assign: func(r *entity.SalesRecord, v Value) { r.PhoneNumber = v.Str }},
		{Column: "Gender", Default: str(DefaultGender), Parse: ParseString, MaxLen: MaxShortLength, Assign: func(r *entity.SalesRecord, v Value) { r.Gender = v.Str }},
		{Column: "Age", Parse: ParseWholeNumber, Bounds: &Bounds{Min: 0, Max: 150}, Assign: func(r *entity.SalesRecord, v Value) { r.Age = int(v.Num) }},
		{Column: "Customer Region", Parse: ParseString, MaxLen: MaxLabelLength, Assign: func(r *entity.SalesRecord, v Value) { r.CustomerRegion = v.Str }},
		{Column: "Customer Type", Default: str(DefaultCustomerType), Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.CustomerType = v.Str }},
		{Column: "Product ID", Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.ProductID = v.Str }},
		{Column: "Product Name", Parse: ParseString, MaxLen: MaxNameLength, Assign: func(r *entity.SalesRecord, v Value) { r.ProductName = v.Str }},
		{Column: "Brand", Parse: ParseString, MaxLen: MaxLabelLength, Assign: func(r *entity.SalesRecord, v Value) { r.Brand = v.Str }},
		{Column: "Product Category", Parse: ParseString, MaxLen: MaxLabelLength, Assign: func(r *entity.SalesRecord, v Value) { r.ProductCategory = v.Str }},
		{Column: "Tags", Parse: ParseTags, Assign: func(r *entity.SalesRecord, v Value) { r.Tags = v.Tags }},
		// Quantity falls back to 1, unlike the other numerics.
		{Column: "Quantity", Default: num(DefaultQuantity), Parse: ParseNumber, Bounds: nonNegative, Assign: func(r *entity.SalesRecord, v Value) { r.Quantity = v.Num }},
		{Column: "Price per Unit", Parse: ParseNumber, Bounds: nonNegative, Assign: func(r *entity.SalesRecord, v Value) { r.PricePerUnit = v.Num }},
		{Column: "Discount Percentage", Parse: ParseNumber, Bounds: &Bounds{Min: 0, Max: 100}, Assign: func(r *entity.SalesRecord, v Value) { r.DiscountPercentage = v.Num }},
		{Column: "Total Amount", Parse: ParseNumber, Bounds: nonNegative, Assign: func(r *entity.SalesRecord, v Value) { r.TotalAmount = v.Num }},
		{Column: "Final Amount", Parse: ParseNumber, Bounds: nonNegative, Assign: func(r *entity.SalesRecord, v Value) { r.FinalAmount = v.Num }},
		{Column: "Date", Parse: ParseSourceDate, Warn: WarningInvalidDate, Assign: func(r *entity.SalesRecord, v Value) { r.Date = v.Date }},
		{Column: "Payment Method", Default: str(DefaultPaymentMethod), Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.PaymentMethod = v.Str }},
		{Column: "Order Status", Default: str(DefaultOrderStatus), Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.OrderStatus = v.Str }},
		{Column: "Delivery Type", Default: str(DefaultDeliveryType), Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.DeliveryType = v.Str }},
		{Column: "Store ID", Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.StoreID = v.Str }},
		{Column: "Store Location", Parse: ParseString, MaxLen: MaxLabelLength, Assign: func(r *entity.SalesRecord, v Value) { r.StoreLocation = v.Str }},
		{Column: "Salesperson ID", Parse: ParseString, MaxLen: MaxCodeLength, Assign: func(r *entity.SalesRecord, v Value) { r.SalespersonID = v.Str }},
		{Column: "Employee Name", Parse: ParseString, MaxLen: MaxNameLength, Assign: func(r *entity.SalesRecord, v Value) { r.EmployeeName = v.Str }},
	}
}
