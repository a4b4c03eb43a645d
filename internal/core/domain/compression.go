package domain

import (
	"fmt"

	"github.com/iamNilotpal/gzipkit/pkg/errors"
)

// CompressionLevel selects the effort preset used when producing gzip
// output. It is a closed set; translation to the numeric constants of the
// underlying codec library happens inside the codec adapter so that no
// other package depends on those constants.
type CompressionLevel int

const (
	// LevelDefault balances speed and ratio. It is the zero value, so an
	// unset level always means "default".
	LevelDefault CompressionLevel = iota

	// LevelNone stores data uncompressed, keeping only the gzip framing.
	LevelNone

	// LevelBestSpeed optimizes for throughput with minimal compression.
	LevelBestSpeed

	// LevelBestCompression optimizes for output size at higher CPU cost.
	LevelBestCompression
)

// String returns the string representation of the compression level.
func (l CompressionLevel) String() string {
	switch l {
	case LevelDefault:
		return "default"
	case LevelNone:
		return "none"
	case LevelBestSpeed:
		return "best-speed"
	case LevelBestCompression:
		return "best-compression"
	default:
		return "invalid"
	}
}

// Valid reports whether l is one of the named presets.
func (l CompressionLevel) Valid() bool {
	return l >= LevelDefault && l <= LevelBestCompression
}

// LevelFromInt maps a raw numeric compression level (0-9, as accepted by
// zlib-style codecs) to the nearest preset: 0 disables compression, 1
// selects best speed, 9 selects best compression and everything in between
// collapses to the default preset. Values outside 0-9 are rejected with a
// ValidationError.
func LevelFromInt(raw int) (CompressionLevel, error) {
	switch {
	case raw == 0:
		return LevelNone, nil
	case raw == 1:
		return LevelBestSpeed, nil
	case raw == 9:
		return LevelBestCompression, nil
	case raw > 1 && raw < 9:
		return LevelDefault, nil
	}

	return LevelDefault, errors.NewValidationError(
		"level", raw, fmt.Errorf("compression level must be between 0 and 9, got %d", raw),
	)
}

// CompressionOptions configures a compressor service instance.
type CompressionOptions struct {
	// Level is the preset applied when Compress is called without an
	// explicit level. Defaults to LevelDefault.
	Level CompressionLevel

	// CompressChunkSize is the initial capacity of the compression output
	// buffer and the fixed increment it grows by when full.
	// Defaults to 16 KiB if set to 0.
	CompressChunkSize int
}

// Gzip-framed buffers start with this fixed two-byte magic prefix.
const (
	gzipMagic0 = 0x1f
	gzipMagic1 = 0x8b
)

// IsGzipFramed reports whether b begins with the gzip magic prefix.
// Buffers shorter than two bytes are never gzip framed.
func IsGzipFramed(b []byte) bool {
	return len(b) >= 2 && b[0] == gzipMagic0 && b[1] == gzipMagic1
}
