package source

import (
	"context"
	"io"
	"strings"

	"saleslens/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

// XLSXSource streams rows from the first worksheet of a workbook.
type XLSXSource struct {
	file   *excelize.File
	rows   *excelize.Rows
	header []string
	closer io.Closer
}

// NewXLSXSource opens a workbook and reads the first non-blank row as the header.
func NewXLSXSource(r io.Reader, closer io.Closer) (*XLSXSource, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		file.Close()

		return nil, errors.New("workbook has no sheets")
	}

	rows, err := file.Rows(sheets[0])
	if err != nil {
		file.Close()

		return nil, errors.Wrapf(err, "failed to read sheet %q", sheets[0])
	}

	s := &XLSXSource{file: file, rows: rows, closer: closer}
	header, err := s.nextCells()
	if err != nil {
		rows.Close()
		file.Close()
		if errors.Is(err, io.EOF) {
			return nil, errors.New("workbook sheet is empty")
		}

		return nil, err
	}
	s.header = normalizeHeader(header)

	return s, nil
}

// Next returns the next non-blank row.
func (s *XLSXSource) Next(ctx context.Context) (entity.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cells, err := s.nextCells()
	if err != nil {
		return nil, err
	}

	return toRow(s.header, cells), nil
}

func (s *XLSXSource) nextCells() ([]string, error) {
	for s.rows.Next() {
		cells, err := s.rows.Columns()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read workbook row")
		}
		if !blank(cells) {
			return cells, nil
		}
	}
	if err := s.rows.Error(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate workbook rows")
	}

	return nil, io.EOF
}

// Close releases the row iterator, the workbook and the underlying reader.
func (s *XLSXSource) Close() error {
	var errs []error
	if s.rows != nil {
		errs = append(errs, s.rows.Close())
	}
	errs = append(errs, s.file.Close())
	if s.closer != nil {
		errs = append(errs, s.closer.Close())
	}

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}

	return true
}
