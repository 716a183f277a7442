package entity

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// SortKey selects one of the supported listing orders.
type SortKey string

const (
	SortDateNewest   SortKey = "date-newest"
	SortDateOldest   SortKey = "date-oldest"
	SortQuantityDesc SortKey = "quantity-desc"
	SortQuantityAsc  SortKey = "quantity-asc"
	SortNameAsc      SortKey = "name-asc"
	SortNameDesc     SortKey = "name-desc"
)

// Valid reports whether k is one of the known sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortDateNewest, SortDateOldest, SortQuantityDesc, SortQuantityAsc, SortNameAsc, SortNameDesc:
		return true
	}

	return false
}

// Paging bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// FilterCriteria holds the request-scoped listing filters.
// Set fields are OR-within-field and AND-across-fields; nil ranges are inactive.
type FilterCriteria struct {
	Regions        []string
	Genders        []string
	Categories     []string
	PaymentMethods []string
	Tags           []string
	Age            *AgeRange
	Dates          *DateRange
}

// AgeRange is an inclusive age interval; either bound may be absent.
type AgeRange struct {
	Min *int
	Max *int
}

// Active reports whether at least one bound is set.
func (r *AgeRange) Active() bool {
	return r != nil && (r.Min != nil || r.Max != nil)
}

// DateRange is an inclusive date interval; either bound may be absent.
type DateRange struct {
	Start *DateBound
	End   *DateBound
}

// Active reports whether at least one bound is set.
func (r *DateRange) Active() bool {
	return r != nil && (r.Start != nil || r.End != nil)
}

// DateBound is a parsed date filter value. HasTime is false for plain calendar dates.
type DateBound struct {
	Time    time.Time
	HasTime bool
}

// ParseDateBound accepts YYYY-MM-DD or an RFC 3339 timestamp. Results are in UTC.
func ParseDateBound(raw string) (*DateBound, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(time.DateOnly, raw, time.UTC); err == nil {
		return &DateBound{Time: t}, nil
	}

	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return nil, errors.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", raw)
	}

	return &DateBound{Time: t.UTC(), HasTime: true}, nil
}

// PageRequest is the requested listing window.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     SortKey
}

// Clamp returns a copy with page >= 1, page size in [1, MaxPageSize] and a known sort key.
// Callers apply DefaultPageSize for a missing size; an explicit zero clamps to 1.
func (p PageRequest) Clamp() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	switch {
	case p.PageSize < 1:
		p.PageSize = 1
	case p.PageSize > MaxPageSize:
		p.PageSize = MaxPageSize
	}
	if !p.Sort.Valid() {
		p.Sort = SortDateNewest
	}

	return p
}

// Offset is the number of records skipped before this page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListRequest is everything the listing service needs for one page.
type ListRequest struct {
	Search  string
	Filters FilterCriteria
	Page    PageRequest
}
