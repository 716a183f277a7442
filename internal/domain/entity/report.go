package entity

import "time"

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage  int   `json:"currentPage"`
	TotalPages   int   `json:"totalPages"`
	TotalRecords int64 `json:"totalRecords"`
	PageSize     int   `json:"pageSize"`
	HasNextPage  bool  `json:"hasNextPage"`
	HasPrevPage  bool  `json:"hasPrevPage"`
}

// NewPagination derives page metadata from a clamped request and a total count.
func NewPagination(page PageRequest, total int64) Pagination {
	totalPages := 0
	if total > 0 {
		size := int64(page.PageSize)
		totalPages = int((total + size - 1) / size)
	}

	return Pagination{
		CurrentPage:  page.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
		PageSize:     page.PageSize,
		HasNextPage:  page.Page < totalPages,
		HasPrevPage:  page.Page > 1,
	}
}

// SalesPage is one listing result.
type SalesPage struct {
	Records    []*SalesRecord `json:"data"`
	Pagination Pagination     `json:"pagination"`
}

// Facets lists the distinct values observed per categorical field.
type Facets struct {
	Regions        []string `json:"regions"`
	Genders        []string `json:"genders"`
	Categories     []string `json:"categories"`
	PaymentMethods []string `json:"paymentMethods"`
	Tags           []string `json:"tags"`
}

// Statistics summarizes the whole record set.
type Statistics struct {
	TotalSales        float64 `json:"totalSales"`
	TotalQuantity     float64 `json:"totalQuantity"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	TotalTransactions int64   `json:"totalTransactions"`
}

// ImportSummary is the terminal report of one import run.
type ImportSummary struct {
	Source        string        `json:"source"`
	TotalRows     int           `json:"totalRows"`     // Source rows read, including malformed ones.
	SuccessRows   int           `json:"successRows"`   // Rows normalized into records.
	ErrorRows     int           `json:"errorRows"`     // Rows dropped on a parse or normalization error.
	WarningRows   int           `json:"warningRows"`   // Normalized rows carrying a warning (e.g. bad date).
	InsertedCount int           `json:"insertedCount"` // Records the store accepted.
	DuplicateRows int           `json:"duplicateRows"` // Records the store rejected as duplicates.
	Batches       int           `json:"batches"`
	Duration      time.Duration `json:"duration"`
}
