// Package memory is an in-process record store for tests and local runs.
package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"unicode"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/query"
	"saleslens/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// SalesStore implements repository.SalesRepository in memory.
// It is safe for concurrent use. Data is lost on restart.
type SalesStore struct {
	mu           sync.RWMutex
	records      []*entity.SalesRecord
	fingerprints map[string]uuid.UUID
}

// NewSalesStore creates an empty store.
func NewSalesStore() *SalesStore {
	return &SalesStore{
		fingerprints: make(map[string]uuid.UUID),
	}
}

// NewSalesRepository returns the store behind the repository interface.
func NewSalesRepository() repository.SalesRepository {
	return NewSalesStore()
}

// Find returns one sorted window of matching records.
func (s *SalesStore) Find(_ context.Context, q query.Query, page repository.Page) ([]*entity.SalesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(q)
	if err != nil {
		return nil, err
	}

	less, err := comparator(page.Sort)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(matched, less)

	if page.Offset >= len(matched) {
		return []*entity.SalesRecord{}, nil
	}
	end := len(matched)
	if page.Limit > 0 && page.Offset+page.Limit < end {
		end = page.Offset + page.Limit
	}

	out := make([]*entity.SalesRecord, 0, end-page.Offset)
	for _, r := range matched[page.Offset:end] {
		out = append(out, clone(r))
	}

	return out, nil
}

// Count returns the number of matching records.
func (s *SalesStore) Count(_ context.Context, q query.Query) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched, err := s.match(q)
	if err != nil {
		return 0, err
	}

	return int64(len(matched)), nil
}

// Distinct returns the distinct values of field in first-seen order.
func (s *SalesStore) Distinct(_ context.Context, field query.Field) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	var values []string
	add := func(v string) {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}

	for _, r := range s.records {
		if field == query.FieldTags {
			for _, tag := range r.Tags {
				add(tag)
			}

			continue
		}
		v, ok := stringField(r, field)
		if !ok {
			return nil, errors.Errorf("unknown field %q", field)
		}
		add(v)
	}

	return values, nil
}

// Summarize aggregates all records.
func (s *SalesStore) Summarize(_ context.Context) (*entity.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &entity.Statistics{TotalTransactions: int64(len(s.records))}
	for _, r := range s.records {
		stats.TotalSales += r.FinalAmount
		stats.TotalQuantity += r.Quantity
	}
	if stats.TotalTransactions > 0 {
		stats.AverageOrderValue = stats.TotalSales / float64(stats.TotalTransactions)
	}

	return stats, nil
}

// InsertMany attempts each record independently; fingerprint clashes are duplicates.
func (s *SalesStore) InsertMany(_ context.Context, records []*entity.SalesRecord) ([]repository.InsertOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcomes := make([]repository.InsertOutcome, len(records))
	for i, r := range records {
		if err := s.insert(r); err != nil {
			outcomes[i] = repository.InsertOutcome{
				RecordID: r.ID,
				Status:   repository.Rejected,
				Reason:   repository.ReasonDuplicate,
				Detail:   err.Error(),
			}

			continue
		}
		outcomes[i] = repository.InsertOutcome{RecordID: r.ID, Status: repository.Inserted}
	}

	return outcomes, nil
}

// InsertOne persists a single record.
func (s *SalesStore) InsertOne(_ context.Context, record *entity.SalesRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insert(record)
}

func (s *SalesStore) insert(r *entity.SalesRecord) error {
	fp := r.Fingerprint()
	if _, exists := s.fingerprints[fp]; exists {
		return repository.ErrDuplicateSale
	}
	s.fingerprints[fp] = r.ID
	s.records = append(s.records, clone(r))

	return nil
}

func (s *SalesStore) match(q query.Query) ([]*entity.SalesRecord, error) {
	preds := make([]func(*entity.SalesRecord) bool, 0, len(q.Clauses))
	for _, c := range q.Clauses {
		p, err := predicate(c)
		if err != nil {
			return nil, err
		}
		preds = append(preds, p)
	}

	matched := make([]*entity.SalesRecord, 0, len(s.records))
outer:
	for _, r := range s.records {
		for _, p := range preds {
			if !p(r) {
				continue outer
			}
		}
		matched = append(matched, r)
	}

	return matched, nil
}

func predicate(c query.Clause) (func(*entity.SalesRecord) bool, error) {
	switch c := c.(type) {
	case query.TextClause:
		terms := tokenize(c.Search)

		return func(r *entity.SalesRecord) bool {
			words := tokenize(r.CustomerName + " " + r.PhoneNumber)
			for _, t := range terms {
				if !slices.Contains(words, t) {
					return false
				}
			}

			return true
		}, nil
	case query.InClause:
		if c.Field == query.FieldTags {
			return func(r *entity.SalesRecord) bool {
				return slices.ContainsFunc(r.Tags, func(tag string) bool { return slices.Contains(c.Values, tag) })
			}, nil
		}
		if _, ok := stringField(&entity.SalesRecord{}, c.Field); !ok {
			return nil, errors.Errorf("unknown field %q", c.Field)
		}

		return func(r *entity.SalesRecord) bool {
			v, _ := stringField(r, c.Field)

			return slices.Contains(c.Values, v)
		}, nil
	case query.IntRangeClause:
		if c.Field != query.FieldAge {
			return nil, errors.Errorf("unsupported range field %q", c.Field)
		}

		return func(r *entity.SalesRecord) bool {
			return (c.Min == nil || r.Age >= *c.Min) && (c.Max == nil || r.Age <= *c.Max)
		}, nil
	case query.TimeRangeClause:
		if c.Field != query.FieldDate {
			return nil, errors.Errorf("unsupported range field %q", c.Field)
		}

		return func(r *entity.SalesRecord) bool {
			if !r.HasValidDate() {
				return false
			}

			return (c.From == nil || !r.Date.Before(*c.From)) && (c.To == nil || !r.Date.After(*c.To))
		}, nil
	default:
		return nil, errors.Errorf("unsupported clause %T", c)
	}
}

// comparator orders by the sort field with the id as a tiebreak. Missing dates sort last.
func comparator(s query.Sort) (func(a, b *entity.SalesRecord) int, error) {
	var byField func(a, b *entity.SalesRecord) int

	switch s.Field {
	case query.FieldDate:
		byField = func(a, b *entity.SalesRecord) int { return a.Date.Compare(b.Date) }
	case query.FieldQuantity:
		byField = func(a, b *entity.SalesRecord) int { return cmp.Compare(a.Quantity, b.Quantity) }
	case query.FieldCustomerName:
		byField = func(a, b *entity.SalesRecord) int { return strings.Compare(a.CustomerName, b.CustomerName) }
	default:
		return nil, errors.Errorf("unknown sort field %q", s.Field)
	}

	dir := int(s.Direction)

	return func(a, b *entity.SalesRecord) int {
		if s.Field == query.FieldDate && a.HasValidDate() != b.HasValidDate() {
			if a.HasValidDate() {
				return -1
			}

			return 1
		}
		if c := byField(a, b); c != 0 {
			return c * dir
		}

		return strings.Compare(a.ID.String(), b.ID.String()) * dir
	}, nil
}

func stringField(r *entity.SalesRecord, field query.Field) (string, bool) {
	switch field {
	case query.FieldCustomerName:
		return r.CustomerName, true
	case query.FieldPhoneNumber:
		return r.PhoneNumber, true
	case query.FieldCustomerRegion:
		return r.CustomerRegion, true
	case query.FieldGender:
		return r.Gender, true
	case query.FieldProductCategory:
		return r.ProductCategory, true
	case query.FieldPaymentMethod:
		return r.PaymentMethod, true
	default:
		return "", false
	}
}

// tokenize lowercases s and splits it on anything that is not a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func clone(r *entity.SalesRecord) *entity.SalesRecord {
	c := *r
	c.Tags = slices.Clone(r.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}

	return &c
}
