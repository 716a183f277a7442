// Package normalizer maps loosely-typed source rows onto sales records.
package normalizer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"saleslens/internal/domain/entity"
)

// Warning flags a row that was normalized but carries degraded data.
type Warning string

const (
	WarningInvalidDate Warning = "invalid_date"
)

// RowError rejects a single source row. The import skips the row and counts it.
type RowError struct {
	Column string
	Value  string
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("column %q value %q: %s", e.Column, e.Value, e.Reason)
}

// Normalizer applies a FieldTable to raw rows. It is safe for concurrent use.
type Normalizer struct {
	table FieldTable
}

// New creates a Normalizer for the given table.
func New(table FieldTable) *Normalizer {
	return &Normalizer{table: table}
}

// Default creates a Normalizer for the standard sales export columns.
func Default() *Normalizer {
	return New(DefaultFieldTable())
}

// Normalize builds a record from row. Unknown columns are ignored; missing,
// blank or unparseable cells take the field default. The record has no ID.
func (n *Normalizer) Normalize(row entity.RawRow) (*entity.SalesRecord, []Warning, error) {
	rec := &entity.SalesRecord{Tags: []string{}}
	var warnings []Warning

	for _, field := range n.table {
		raw := lookup(row, field.Column)

		v, err := field.Parse(raw)
		if err != nil {
			if field.Warn != "" {
				warnings = append(warnings, field.Warn)
			}
			v = field.Default
		}

		if field.Bounds != nil && (v.Num < field.Bounds.Min || v.Num > field.Bounds.Max) {
			return nil, nil, &RowError{
				Column: field.Column,
				Value:  raw,
				Reason: fmt.Sprintf("must be between %g and %g", field.Bounds.Min, field.Bounds.Max),
			}
		}

		if field.MaxLen > 0 && utf8.RuneCountInString(v.Str) > field.MaxLen {
			return nil, nil, &RowError{
				Column: field.Column,
				Value:  truncate(raw, field.MaxLen),
				Reason: fmt.Sprintf("longer than %d characters", field.MaxLen),
			}
		}

		field.Assign(rec, v)
	}

	return rec, warnings, nil
}

// lookup finds a column by exact header, falling back to a case and
// whitespace insensitive match for hand-edited files.
func lookup(row entity.RawRow, column string) string {
	if v, ok := row[column]; ok {
		return v
	}
	for k, v := range row {
		if strings.EqualFold(strings.TrimSpace(k), column) {
			return v
		}
	}

	return ""
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}

	return string(runes[:n]) + "..."
}
