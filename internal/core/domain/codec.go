package domain

// FlushMode controls how a codec step treats input that is still pending
// inside the stream.
type FlushMode int

const (
	// NoFlush lets the codec buffer output until it decides to emit it.
	NoFlush FlushMode = iota

	// SyncFlush forces all output produced so far to become readable,
	// creating a synchronization point in the stream.
	SyncFlush

	// Finish signals that no more input will be supplied and the stream
	// should be completed and flushed in full.
	Finish
)

// Status is the result of a single codec call. The values mirror the
// status space of zlib-style codecs so that the error taxonomy maps them
// one to one.
type Status int

const (
	StatusOK        Status = 0  // call made progress, stream still open
	StatusStreamEnd Status = 1  // logical end of stream reached, all output produced
	StatusErrno     Status = -1 // unclassified failure outside the codec itself
	StatusStream    Status = -2 // stream state inconsistent or misused
	StatusData      Status = -3 // input data corrupted
	StatusMem       Status = -4 // codec could not allocate memory
	StatusBuf       Status = -5 // no progress possible with the given buffers
	StatusVersion   Status = -6 // codec library version mismatch
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusStreamEnd:
		return "stream-end"
	case StatusErrno:
		return "errno"
	case StatusStream:
		return "stream-error"
	case StatusData:
		return "data-error"
	case StatusMem:
		return "mem-error"
	case StatusBuf:
		return "buf-error"
	case StatusVersion:
		return "version-error"
	default:
		return "unknown"
	}
}

// Window size selectors for codec initialization, following the zlib
// windowBits convention: the framing expected around the raw DEFLATE
// payload is encoded in the value.
const (
	WindowBitsRaw  = -15     // raw DEFLATE, no framing
	WindowBitsZlib = 15      // zlib wrapper
	WindowBitsGzip = 16 + 15 // gzip wrapper
	WindowBitsAuto = 32 + 15 // detect gzip or zlib from the header
)

// DeflateConfig carries the parameters of a compression stream.
type DeflateConfig struct {
	Level      CompressionLevel
	WindowBits int
}

// StreamState is the mutable bookkeeping of one in-flight codec stream.
// The driver owns Output: before every step it points it at the window the
// codec may write into. The codec owns Input consumption, advancing it and
// the counters as the stream progresses. Neither side touches anything
// else across the boundary.
type StreamState struct {
	// Input is the unconsumed remainder of the source buffer. Read-only
	// view; never modified in place.
	Input []byte

	// Output is the window available to the next step. The codec advances
	// it past every byte it writes.
	Output []byte

	// BytesConsumed is the total input consumed so far.
	BytesConsumed uint64

	// BytesProduced is the total output produced so far.
	BytesProduced uint64

	// Msg is the codec's last diagnostic message, empty if it offered none.
	Msg string
}
