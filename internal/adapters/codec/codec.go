// Package codec binds the module to the klauspost DEFLATE codec family.
// It exposes the stateful compression and decompression streams the
// streaming driver steps through, keeping every library-specific constant
// and error value behind this boundary.
package codec

import (
	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/ports"
	"github.com/iamNilotpal/gzipkit/pkg/pool"
	"github.com/klauspost/compress/flate"
)

// Codec implements ports.CodecPort on top of klauspost's gzip, zlib and
// flate packages. It holds no state of its own; all mutable state lives in
// the streams it creates, so a single Codec is safe for concurrent use.
type Codec struct{}

var _ ports.CodecPort = (*Codec)(nil)

// New creates a codec binding.
func New() *Codec {
	return &Codec{}
}

// Compressed output accumulates in a sink buffer between steps. Every
// compression stream needs one, so they are pooled across operations.
var sinkPool = pool.NewBufferPool(16 * 1024)

// flateLevel translates a level preset to the codec library's numeric
// constants. This is the only place those constants appear.
func flateLevel(level domain.CompressionLevel) (int, bool) {
	switch level {
	case domain.LevelDefault:
		return flate.DefaultCompression, true
	case domain.LevelNone:
		return flate.NoCompression, true
	case domain.LevelBestSpeed:
		return flate.BestSpeed, true
	case domain.LevelBestCompression:
		return flate.BestCompression, true
	}
	return 0, false
}
