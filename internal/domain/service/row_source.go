package service

import (
	"context"
	"fmt"
	"io"

	"saleslens/internal/domain/entity"
)

// RowSource yields raw rows lazily. Next returns io.EOF after the last row.
type RowSource interface {
	Next(ctx context.Context) (entity.RawRow, error)
	io.Closer
}

// RowParseError reports one physical row the source could not decode.
// The stream stays usable after it.
type RowParseError struct {
	Line int
	Err  error
}

func (e *RowParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowParseError) Unwrap() error {
	return e.Err
}

// SourceOpener resolves an import location (path, file:// or gs:// URL) to a RowSource.
type SourceOpener interface {
	Open(ctx context.Context, location string) (RowSource, error)

	// FromReader wraps an already open stream. name selects the format by extension.
	FromReader(ctx context.Context, name string, r io.Reader) (RowSource, error)
}
