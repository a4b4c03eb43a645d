package ports

import "github.com/iamNilotpal/gzipkit/internal/core/domain"

// CodecStream is one in-flight compression or decompression stream.
// A stream is owned by exactly one operation: created by an Init call,
// advanced by Step and torn down by End before the operation returns,
// on both success and failure paths.
type CodecStream interface {
	// Step runs a single codec step over the current state windows.
	// It consumes from State().Input and writes into State().Output,
	// advancing both and the byte counters.
	Step(mode domain.FlushMode) domain.Status

	// End tears the stream down and releases its internal resources.
	// Returns StatusOK only if the stream completed cleanly; tearing down
	// a stream mid-way reports StatusData. Calling End twice reports
	// StatusStream.
	End() domain.Status

	// State returns the stream's bookkeeping. The caller may only set
	// Output between steps; everything else is maintained by the stream.
	State() *domain.StreamState
}

// CodecPort is the narrow binding to the underlying DEFLATE/INFLATE codec.
// This allows swapping codec libraries without changing the driver logic.
type CodecPort interface {
	// InitCompress opens a compression stream over src. A non-OK status
	// means initialization failed and no stream was created.
	InitCompress(src []byte, cfg domain.DeflateConfig) (CodecStream, domain.Status)

	// InitDecompress opens a decompression stream over src. windowBits
	// selects the framing expected around the payload (see the domain
	// WindowBits constants). Reading the container header happens here, so
	// a malformed header surfaces as an init failure.
	InitDecompress(src []byte, windowBits int) (CodecStream, domain.Status)
}
