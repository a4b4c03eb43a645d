// Package gzipkit compresses and decompresses byte buffers in memory
// using the standard gzip container format. The DEFLATE algorithm itself
// is supplied by github.com/klauspost/compress; this package drives it and
// manages buffers and errors around it.
//
// Decompress is lenient by design: input that does not carry the gzip
// magic prefix is returned unchanged instead of failing, so payloads that
// were never compressed pass through untouched.
package gzipkit

import (
	"github.com/iamNilotpal/gzipkit/internal/adapters/codec"
	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/services/gzip"
)

// Level selects the compression effort preset.
type Level = domain.CompressionLevel

const (
	DefaultCompression = domain.LevelDefault
	NoCompression      = domain.LevelNone
	BestSpeed          = domain.LevelBestSpeed
	BestCompression    = domain.LevelBestCompression
)

// LevelFromInt maps a raw numeric level 0-9 to the nearest preset,
// rejecting out-of-range values.
func LevelFromInt(raw int) (Level, error) {
	return domain.LevelFromInt(raw)
}

var defaultCompressor = newDefault()

func newDefault() *gzip.Compressor {
	c, err := gzip.New(codec.New(), nil)
	if err != nil {
		// Defaults always validate; reaching this is a programming error.
		panic(err)
	}
	return c
}

// Compress produces a gzip-framed buffer from data at the default level.
// Empty input yields empty output.
func Compress(data []byte) ([]byte, error) {
	return defaultCompressor.Compress(data)
}

// CompressLevel produces a gzip-framed buffer from data at the given
// level. The level affects output size, never correctness.
func CompressLevel(data []byte, level Level) ([]byte, error) {
	return defaultCompressor.CompressLevel(data, level)
}

// Decompress restores the original data from a gzip-framed buffer.
// Input without the gzip magic prefix, including empty input, is returned
// unchanged.
func Decompress(data []byte) ([]byte, error) {
	return defaultCompressor.Decompress(data)
}

// IsGzipFramed reports whether data begins with the gzip magic prefix
// 0x1F 0x8B.
func IsGzipFramed(data []byte) bool {
	return domain.IsGzipFramed(data)
}
