package source

import (
	"context"
	"io"
	"net/url"
	"path"
	"path/filepath"
	"strings"

	domainerrors "saleslens/internal/domain/errors"
	"saleslens/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// Format is an import file format, picked by extension.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// DetectFormat maps a file name to its format.
func DetectFormat(name string) (Format, error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", domainerrors.ErrUnsupportedImportFormat.WithDetails(name)
	}
}

// Opener opens import files from local paths or blob URLs (file://, gs://, s3://).
type Opener struct{}

// NewOpener creates a source opener
func NewOpener() service.SourceOpener {
	return &Opener{}
}

// Open resolves location to a bucket and key and streams the object.
func (o *Opener) Open(ctx context.Context, location string) (service.RowSource, error) {
	if _, err := DetectFormat(location); err != nil {
		return nil, err
	}

	bucketURL, key, err := splitLocation(location)
	if err != nil {
		return nil, domainerrors.ErrInvalidImportSource.WithDetails(err.Error())
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, domainerrors.ErrInvalidImportSource.WithDetails(
			errors.Wrapf(err, "open bucket %s", bucketURL).Error(),
		)
	}

	reader, err := bucket.NewReader(ctx, key, nil)
	if err != nil {
		bucket.Close()

		return nil, domainerrors.ErrInvalidImportSource.WithDetails(
			errors.Wrapf(err, "open %s", location).Error(),
		)
	}

	src, err := o.open(location, reader, closers{reader, bucket})
	if err != nil {
		reader.Close()
		bucket.Close()

		return nil, err
	}

	return src, nil
}

// FromReader wraps an already open stream such as an upload. The caller owns r.
func (o *Opener) FromReader(_ context.Context, name string, r io.Reader) (service.RowSource, error) {
	return o.open(name, r, nil)
}

func (o *Opener) open(name string, r io.Reader, closer io.Closer) (service.RowSource, error) {
	format, err := DetectFormat(name)
	if err != nil {
		return nil, err
	}

	var src service.RowSource
	switch format {
	case FormatXLSX:
		src, err = NewXLSXSource(r, closer)
	default:
		src, err = NewCSVSource(r, closer)
	}
	if err != nil {
		return nil, domainerrors.ErrInvalidImportSource.WithDetails(err.Error())
	}

	return src, nil
}

// splitLocation turns a path or URL into a bucket URL and object key.
// Plain paths become a file:// bucket rooted at the file's directory.
func splitLocation(location string) (bucketURL, key string, err error) {
	if !strings.Contains(location, "://") {
		abs, err := filepath.Abs(location)
		if err != nil {
			return "", "", errors.Wrap(err, "resolve path")
		}

		return "file://" + filepath.ToSlash(filepath.Dir(abs)), filepath.Base(abs), nil
	}

	u, err := url.Parse(location)
	if err != nil {
		return "", "", errors.Wrap(err, "parse location")
	}

	if u.Scheme == "file" {
		dir, base := path.Split(u.Path)
		if base == "" {
			return "", "", errors.Errorf("location %q has no file name", location)
		}

		return "file://" + strings.TrimSuffix(dir, "/"), base, nil
	}

	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", errors.Errorf("location %q needs a bucket and an object key", location)
	}
	bucket := url.URL{Scheme: u.Scheme, Host: u.Host, RawQuery: u.RawQuery}

	return bucket.String(), key, nil
}

type closers []io.Closer

func (c closers) Close() error {
	var first error
	for _, closer := range c {
		if err := closer.Close(); err != nil && first == nil {
			first = err
		}
	}

	return first
}
