package normalizer

import (
	"strings"
	"testing"
	"time"

	"saleslens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRow() entity.RawRow {
	return entity.RawRow{
		"Customer ID":         "CUST-001",
		"Customer Name":       "Neha Shah",
		"Phone Number":        "9876543210",
		"Gender":              "Female",
		"Age":                 "34",
		"Customer Region":     "West",
		"Customer Type":       "Loyal",
		"Product ID":          "PROD-9",
		"Product Name":        "Noise Buds",
		"Brand":               "Noise",
		"Product Category":    "Electronics",
		"Tags":                "wireless, audio",
		"Quantity":            "3",
		"Price per Unit":      "1999.5",
		"Discount Percentage": "10",
		"Total Amount":        "5998.5",
		"Final Amount":        "5398.65",
		"Date":                "07-03-2023",
		"Payment Method":      "UPI",
		"Order Status":        "Delivered",
		"Delivery Type":       "Express",
		"Store ID":            "ST-4",
		"Store Location":      "Pune",
		"Salesperson ID":      "EMP-12",
		"Employee Name":       "Ravi Kumar",
		"Unrecognized":        "ignored",
	}
}

func TestNormalize_FullRow(t *testing.T) {
	rec, warnings, err := Default().Normalize(fullRow())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "CUST-001", rec.CustomerID)
	assert.Equal(t, "Neha Shah", rec.CustomerName)
	assert.Equal(t, "Female", rec.Gender)
	assert.Equal(t, 34, rec.Age)
	assert.Equal(t, "Loyal", rec.CustomerType)
	assert.Equal(t, []string{"wireless", "audio"}, rec.Tags)
	assert.Equal(t, 3.0, rec.Quantity)
	assert.Equal(t, 1999.5, rec.PricePerUnit)
	assert.Equal(t, 10.0, rec.DiscountPercentage)
	assert.Equal(t, 5398.65, rec.FinalAmount)
	assert.Equal(t, time.Date(2023, time.March, 7, 0, 0, 0, 0, time.UTC), rec.Date)
	assert.Equal(t, "UPI", rec.PaymentMethod)
	assert.Equal(t, "Ravi Kumar", rec.EmployeeName)
}

func TestNormalize_Defaults(t *testing.T) {
	rec, warnings, err := Default().Normalize(entity.RawRow{"Date": "01-01-2024"})
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, "Other", rec.Gender)
	assert.Equal(t, "Retail", rec.CustomerType)
	assert.Equal(t, "Credit Card", rec.PaymentMethod)
	assert.Equal(t, "Pending", rec.OrderStatus)
	assert.Equal(t, "Standard", rec.DeliveryType)
	assert.Equal(t, "", rec.CustomerName)
	assert.Equal(t, 0, rec.Age)
	assert.Equal(t, 1.0, rec.Quantity)
	assert.Equal(t, 0.0, rec.PricePerUnit)
	assert.Equal(t, 0.0, rec.FinalAmount)
	assert.NotNil(t, rec.Tags)
	assert.Empty(t, rec.Tags)
}

func TestNormalize_NumericFallbacks(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		raw      string
		expected func(*entity.SalesRecord) any
		want     any
	}{
		{"non-numeric quantity defaults to one", "Quantity", "many", func(r *entity.SalesRecord) any { return r.Quantity }, 1.0},
		{"blank price defaults to zero", "Price per Unit", "  ", func(r *entity.SalesRecord) any { return r.PricePerUnit }, 0.0},
		{"NaN amount defaults to zero", "Final Amount", "NaN", func(r *entity.SalesRecord) any { return r.FinalAmount }, 0.0},
		{"infinite amount defaults to zero", "Total Amount", "Inf", func(r *entity.SalesRecord) any { return r.TotalAmount }, 0.0},
		{"fractional age truncates", "Age", "41.9", func(r *entity.SalesRecord) any { return r.Age }, 41},
		{"zero quantity is kept", "Quantity", "0", func(r *entity.SalesRecord) any { return r.Quantity }, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := fullRow()
			row[tt.column] = tt.raw

			rec, _, err := Default().Normalize(row)
			require.NoError(t, err)
			assert.Equal(t, tt.want, tt.expected(rec))
		})
	}
}

func TestNormalize_RangeViolations(t *testing.T) {
	tests := []struct {
		column string
		raw    string
	}{
		{"Age", "151"},
		{"Age", "-1"},
		{"Discount Percentage", "100.5"},
		{"Quantity", "-2"},
		{"Final Amount", "-0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.column+"="+tt.raw, func(t *testing.T) {
			row := fullRow()
			row[tt.column] = tt.raw

			rec, _, err := Default().Normalize(row)
			require.Error(t, err)
			assert.Nil(t, rec)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.column, rowErr.Column)
			assert.Equal(t, tt.raw, rowErr.Value)
		})
	}
}

func TestNormalize_OverlongCells(t *testing.T) {
	tests := []struct {
		column string
		limit  int
	}{
		{"Customer Name", MaxNameLength},
		{"Phone Number", MaxShortLength},
		{"Store Location", MaxLabelLength},
		{"Customer ID", MaxCodeLength},
		{"Gender", MaxShortLength},
	}

	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			row := fullRow()
			row[tt.column] = strings.Repeat("é", tt.limit)

			_, _, err := Default().Normalize(row)
			require.NoError(t, err)

			row[tt.column] = strings.Repeat("a", tt.limit+1)

			rec, _, err := Default().Normalize(row)
			assert.Nil(t, rec)

			var rowErr *RowError
			require.ErrorAs(t, err, &rowErr)
			assert.Equal(t, tt.column, rowErr.Column)
			assert.Contains(t, rowErr.Reason, "longer than")
		})
	}
}

func TestNormalize_InvalidDateIsWarning(t *testing.T) {
	for _, raw := range []string{"2023-03-07", "32-01-2023", "not a date", ""} {
		t.Run(raw, func(t *testing.T) {
			row := fullRow()
			row["Date"] = raw

			rec, warnings, err := Default().Normalize(row)
			require.NoError(t, err)
			assert.Equal(t, []Warning{WarningInvalidDate}, warnings)
			assert.False(t, rec.HasValidDate())
		})
	}
}

func TestNormalize_HeaderLookupIsLenient(t *testing.T) {
	rec, _, err := Default().Normalize(entity.RawRow{" customer name ": "Asha", "date": "02-02-2022"})
	require.NoError(t, err)
	assert.Equal(t, "Asha", rec.CustomerName)
	assert.True(t, rec.HasValidDate())
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"Electronics, , Sale ,Sale", []string{"Electronics", "Sale", "Sale"}},
		{"", []string{}},
		{" , ,", []string{}},
		{"single", []string{"single"}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseTags(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Tags)
		})
	}
}

func TestNormalize_CustomTable(t *testing.T) {
	table := FieldTable{
		{Column: "Name", Default: Value{Str: "anonymous"}, Parse: ParseString, Assign: func(r *entity.SalesRecord, v Value) { r.CustomerName = v.Str }},
	}

	rec, warnings, err := New(table).Normalize(entity.RawRow{})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, "anonymous", rec.CustomerName)
	assert.Equal(t, "", rec.Gender)
}
