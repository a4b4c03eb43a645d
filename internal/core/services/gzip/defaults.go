package gzip

import "github.com/iamNilotpal/gzipkit/internal/core/domain"

// defaultCompressChunkSize is the initial capacity of the compression
// output buffer and its fixed growth increment. Correctness does not
// depend on the value since growth is triggered reactively; 16 KiB keeps
// small payloads to a single allocation.
const defaultCompressChunkSize = 16 * 1024

// prepareDefaults fills in defaults for any option left at its zero value.
// The zero value of Level is already LevelDefault.
func prepareDefaults(opts *domain.CompressionOptions) *domain.CompressionOptions {
	if opts.CompressChunkSize == 0 {
		opts.CompressChunkSize = defaultCompressChunkSize
	}
	return opts
}
