// Package source reads import files row by row.
package source

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"saleslens/internal/domain/entity"
	"saleslens/internal/domain/service"

	"github.com/pkg/errors"
)

const utf8BOM = "\ufeff"

// CSVSource streams rows from a CSV file keyed by its header row.
type CSVSource struct {
	reader *csv.Reader
	header []string
	closer io.Closer
}

// NewCSVSource reads the header row and prepares to stream the rest.
// closer may be nil when the caller owns r.
func NewCSVSource(r io.Reader, closer io.Closer) (*CSVSource, error) {
	reader := csv.NewReader(r)
	// Rows may be short or long; missing cells fall back to defaults.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("csv file is empty")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read csv header")
	}

	header = normalizeHeader(header)

	return &CSVSource{reader: reader, header: header, closer: closer}, nil
}

// Next returns the next row. Malformed lines yield a *service.RowParseError
// and reading may continue.
func (s *CSVSource) Next(ctx context.Context) (entity.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	record, err := s.reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, io.EOF
	}
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return nil, &service.RowParseError{Line: parseErr.Line, Err: parseErr.Err}
		}

		return nil, errors.Wrap(err, "failed to read csv row")
	}

	return toRow(s.header, record), nil
}

// Close releases the underlying reader.
func (s *CSVSource) Close() error {
	if s.closer == nil {
		return nil
	}

	return s.closer.Close()
}

func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		out[i] = strings.TrimSpace(h)
	}

	return out
}

// toRow zips header and cells. Cells past the header are dropped.
func toRow(header, cells []string) entity.RawRow {
	row := make(entity.RawRow, len(header))
	for i, h := range header {
		if h == "" || i >= len(cells) {
			continue
		}
		row[h] = cells[i]
	}

	return row
}
