package ports

import (
	"context"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
)

// CompressionPort is the public operation surface of the module.
// Decompress is the inverse of Compress: for every input B,
// Decompress(Compress(B)) == B.
type CompressionPort interface {
	// Compress produces a gzip-framed buffer from data at the configured
	// default level.
	Compress(data []byte) ([]byte, error)

	// CompressLevel is Compress with an explicit level for this call.
	CompressLevel(data []byte, level domain.CompressionLevel) ([]byte, error)

	// Decompress restores the original data from a gzip-framed buffer.
	// Input that is not gzip framed is returned unchanged.
	Decompress(data []byte) ([]byte, error)

	// CompressContext and DecompressContext run the synchronous operations
	// under a context for callers that need a cancellation layer.
	CompressContext(ctx context.Context, data []byte) ([]byte, error)
	DecompressContext(ctx context.Context, data []byte) ([]byte, error)

	// Level returns the configured default compression level.
	Level() domain.CompressionLevel
}
