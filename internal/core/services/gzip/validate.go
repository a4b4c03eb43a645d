package gzip

import (
	"fmt"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/pkg/errors"
)

var errNilCodec = fmt.Errorf("codec binding is required")

// Validate checks that the compression options are within acceptable
// bounds and returns a ValidationError for anything outside them.
func Validate(opts *domain.CompressionOptions) error {
	if !opts.Level.Valid() {
		return errors.NewValidationError(
			"level", opts.Level, fmt.Errorf("unknown compression level %d", int(opts.Level)),
		)
	}

	if opts.CompressChunkSize < 0 {
		return errors.NewValidationError(
			"compressChunkSize", opts.CompressChunkSize,
			fmt.Errorf("compress chunk size must be greater than 0, got %d", opts.CompressChunkSize),
		)
	}

	return nil
}
