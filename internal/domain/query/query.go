// Package query turns listing filters into a store-agnostic clause list.
// Each store adapter translates a Query into its native form.
package query

import (
	"strings"
	"time"

	"saleslens/internal/domain/entity"
)

// Field names a filterable record attribute. Values match the JSON names.
type Field string

const (
	FieldCustomerName    Field = "customerName"
	FieldPhoneNumber     Field = "phoneNumber"
	FieldCustomerRegion  Field = "customerRegion"
	FieldGender          Field = "gender"
	FieldProductCategory Field = "productCategory"
	FieldPaymentMethod   Field = "paymentMethod"
	FieldTags            Field = "tags"
	FieldAge             Field = "age"
	FieldDate            Field = "date"
	FieldQuantity        Field = "quantity"
)

// TextSearchFields are covered by the full-text clause.
var TextSearchFields = []Field{FieldCustomerName, FieldPhoneNumber}

// Clause is one condition of a Query. All clauses of a Query are ANDed.
type Clause interface {
	clause()
}

// TextClause matches records whose indexed text fields contain the search terms.
type TextClause struct {
	Search string
}

// InClause matches records whose field equals any of Values.
// For array fields (tags) it matches when any element is in Values.
type InClause struct {
	Field  Field
	Values []string
}

// IntRangeClause is an inclusive integer range; nil bounds are open.
type IntRangeClause struct {
	Field Field
	Min   *int
	Max   *int
}

// TimeRangeClause is an inclusive time range; nil bounds are open.
type TimeRangeClause struct {
	Field Field
	From  *time.Time
	To    *time.Time
}

func (TextClause) clause()      {}
func (InClause) clause()        {}
func (IntRangeClause) clause()  {}
func (TimeRangeClause) clause() {}

// Query is an AND of clauses. An empty Query matches every record.
type Query struct {
	Clauses []Clause
}

// IsUniversal reports whether the query matches all records.
func (q Query) IsUniversal() bool {
	return len(q.Clauses) == 0
}

// EndOfDay returns the last millisecond of t's calendar day, in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// Build composes the query for a search term and filter set.
func Build(search string, filters entity.FilterCriteria) Query {
	var clauses []Clause

	if s := strings.TrimSpace(search); s != "" {
		clauses = append(clauses, TextClause{Search: s})
	}

	sets := []struct {
		field  Field
		values []string
	}{
		{FieldCustomerRegion, filters.Regions},
		{FieldGender, filters.Genders},
		{FieldProductCategory, filters.Categories},
		{FieldPaymentMethod, filters.PaymentMethods},
		{FieldTags, filters.Tags},
	}
	for _, set := range sets {
		if values := compact(set.values); len(values) > 0 {
			clauses = append(clauses, InClause{Field: set.field, Values: values})
		}
	}

	if filters.Age.Active() {
		clauses = append(clauses, IntRangeClause{
			Field: FieldAge,
			Min:   copyInt(filters.Age.Min),
			Max:   copyInt(filters.Age.Max),
		})
	}

	if filters.Dates.Active() {
		c := TimeRangeClause{Field: FieldDate}
		if start := filters.Dates.Start; start != nil {
			from := start.Time
			c.From = &from
		}
		if end := filters.Dates.End; end != nil {
			to := end.Time
			if !end.HasTime {
				to = EndOfDay(to)
			}
			c.To = &to
		}
		clauses = append(clauses, c)
	}

	return Query{Clauses: clauses}
}

// compact drops blank values, keeping order.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p

	return &v
}
