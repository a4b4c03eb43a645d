package errors

import (
	"errors"
	"fmt"
)

// Kind classifies the failures a codec can report during compression or
// decompression. The set is exhaustive over the zlib-style status space;
// anything outside it lands on KindUnknown with the raw code preserved.
type Kind int

const (
	// KindStreamInconsistent indicates the stream state was inconsistent
	// or the codec was called with invalid parameters.
	KindStreamInconsistent Kind = iota + 1

	// KindDataCorrupted indicates the input data was not a valid stream,
	// such as a malformed header, corrupted payload or checksum mismatch.
	KindDataCorrupted

	// KindOutOfMemory indicates the codec could not allocate memory.
	KindOutOfMemory

	// KindBufferStalled indicates no progress was possible with the given
	// buffers, typically a truncated stream that ran out of input.
	KindBufferStalled

	// KindVersionMismatch indicates an incompatible codec library version.
	KindVersionMismatch

	// KindUnknown covers status codes outside the known taxonomy.
	KindUnknown
)

// String returns the string representation of the error kind.
// This is useful for logging, metrics, and error reporting.
func (k Kind) String() string {
	switch k {
	case KindStreamInconsistent:
		return "stream-inconsistent"
	case KindDataCorrupted:
		return "data-corrupted"
	case KindOutOfMemory:
		return "out-of-memory"
	case KindBufferStalled:
		return "buffer-insufficient-progress"
	case KindVersionMismatch:
		return "version-mismatch"
	default:
		return "unknown"
	}
}

// Placeholder used when the codec reported a failure without a message.
const defaultMessage = "unknown codec error"

// Error is a classified codec failure. It carries the taxonomy kind, the
// raw status code it was derived from and the operation that failed.
type Error struct {
	Kind      Kind
	Code      int
	Operation string
	Message   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s: %s (code %d)", e.Kind, e.Operation, e.Message, e.Code)
}

// Classify maps a raw codec status code to a structured Error. The mapping
// is deterministic; unrecognized codes map to KindUnknown keeping the
// original code for diagnostics. An empty message is replaced with a fixed
// placeholder so callers always see something human readable.
func Classify(operation string, code int, message string) *Error {
	if message == "" {
		message = defaultMessage
	}

	kind := KindUnknown
	switch code {
	case -2:
		kind = KindStreamInconsistent
	case -3:
		kind = KindDataCorrupted
	case -4:
		kind = KindOutOfMemory
	case -5:
		kind = KindBufferStalled
	case -6:
		kind = KindVersionMismatch
	}

	return &Error{Kind: kind, Code: code, Operation: operation, Message: message}
}

// IsError checks if a given error is a classified codec Error.
func IsError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// AsError attempts to extract a classified codec Error from a given error.
func AsError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// IsKind reports whether err is a classified codec Error of the given kind.
func IsKind(err error, kind Kind) bool {
	ce := AsError(err)
	return ce != nil && ce.Kind == kind
}
