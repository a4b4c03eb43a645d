// Package gzip implements the streaming driver that turns a step-wise
// codec binding into one-shot in-memory Compress and Decompress
// operations: it owns the growable output buffer, detects the end of
// stream and translates codec statuses into the error taxonomy.
package gzip

import (
	"context"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/ports"
	"github.com/iamNilotpal/gzipkit/pkg/errors"
	"github.com/iamNilotpal/gzipkit/pkg/system"
)

const (
	opCompress   = "compress"
	opDecompress = "decompress"
)

// Compressor drives a codec binding to produce and consume gzip-framed
// buffers entirely in memory. Each call owns its own codec stream and
// output buffer, so a single Compressor is safe for concurrent use.
type Compressor struct {
	options *domain.CompressionOptions
	codec   ports.CodecPort
}

var _ ports.CompressionPort = (*Compressor)(nil)

// New creates a Compressor over the given codec binding. Passing nil
// options selects the defaults.
func New(codec ports.CodecPort, opts *domain.CompressionOptions) (*Compressor, error) {
	if codec == nil {
		return nil, errors.NewValidationError("codec", nil, errNilCodec)
	}

	if opts != nil {
		if err := Validate(opts); err != nil {
			return nil, err
		}
		opts = prepareDefaults(opts)
	} else {
		opts = prepareDefaults(&domain.CompressionOptions{})
	}

	return &Compressor{codec: codec, options: opts}, nil
}

// Level returns the configured default compression level.
func (c *Compressor) Level() domain.CompressionLevel {
	return c.options.Level
}

// Compress produces a gzip-framed buffer from data at the configured
// default level. Empty input yields empty output without touching the
// codec.
func (c *Compressor) Compress(data []byte) ([]byte, error) {
	return c.CompressLevel(data, c.options.Level)
}

// CompressLevel is Compress with an explicit level for this call.
//
// The whole input is handed to the codec up front and every step runs in
// finish mode; the output buffer grows by a fixed chunk whenever the
// bytes produced so far reach its size. The loop is done when a step
// leaves output space unused, which can only happen once all input has
// been consumed and flushed.
func (c *Compressor) CompressLevel(data []byte, level domain.CompressionLevel) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}

	stream, status := c.codec.InitCompress(data, domain.DeflateConfig{
		Level:      level,
		WindowBits: domain.WindowBitsGzip,
	})
	if status != domain.StatusOK {
		return nil, errors.Classify(opCompress, int(status), "")
	}

	state := stream.State()
	buf := make([]byte, c.options.CompressChunkSize)

	for {
		if int(state.BytesProduced) == len(buf) {
			buf = grow(buf, c.options.CompressChunkSize)
		}
		state.Output = buf[state.BytesProduced:]

		status = stream.Step(domain.Finish)
		if status != domain.StatusOK && status != domain.StatusStreamEnd {
			stream.End()
			return nil, errors.Classify(opCompress, int(status), state.Msg)
		}

		// Unused output space after a step means everything was flushed.
		if len(state.Output) > 0 {
			break
		}
	}

	if end := stream.End(); end != domain.StatusOK {
		return nil, errors.Classify(opCompress, int(end), state.Msg)
	}

	return buf[:state.BytesProduced], nil
}

// Decompress restores the original data from a gzip-framed buffer.
//
// Input that is not gzip framed (including empty input) is returned
// unchanged. This is a deliberate leniency policy for payloads that were
// never compressed, not an error path.
//
// The output buffer starts at double the input length and grows by half
// the input length, since decompression commonly expands data. Success
// requires the codec to report the logical end of stream and a clean
// teardown; anything else classifies into a structured error and no
// partial output is returned.
func (c *Compressor) Decompress(data []byte) ([]byte, error) {
	if !domain.IsGzipFramed(data) {
		return data, nil
	}

	stream, status := c.codec.InitDecompress(data, domain.WindowBitsAuto)
	if status != domain.StatusOK {
		return nil, errors.Classify(opDecompress, int(status), "")
	}

	state := stream.State()
	buf := make([]byte, 2*len(data))
	increment := len(data) / 2

	for {
		if int(state.BytesProduced) == len(buf) {
			buf = grow(buf, increment)
		}
		state.Output = buf[state.BytesProduced:]

		status = stream.Step(domain.SyncFlush)
		if status == domain.StatusStreamEnd {
			break
		}
		if status != domain.StatusOK {
			stream.End()
			return nil, errors.Classify(opDecompress, int(status), state.Msg)
		}
	}

	if end := stream.End(); end != domain.StatusOK {
		return nil, errors.Classify(opDecompress, int(end), state.Msg)
	}

	return buf[:state.BytesProduced], nil
}

// CompressContext runs Compress under a context. The operation itself is
// CPU bound and not interruptible; if ctx is already cancelled it never
// starts, otherwise cancellation waits for it to finish.
func (c *Compressor) CompressContext(ctx context.Context, data []byte) ([]byte, error) {
	var out []byte
	err := system.RunWithContext(ctx, func(context.Context) error {
		var opErr error
		out, opErr = c.Compress(data)
		return opErr
	})
	return out, err
}

// DecompressContext runs Decompress under a context, with the same
// semantics as CompressContext.
func (c *Compressor) DecompressContext(ctx context.Context, data []byte) ([]byte, error) {
	var out []byte
	err := system.RunWithContext(ctx, func(context.Context) error {
		var opErr error
		out, opErr = c.Decompress(data)
		return opErr
	})
	return out, err
}

// grow extends buf by the given number of bytes, preserving its contents.
// Growth is monotonic; buffers are never shrunk mid-operation.
func grow(buf []byte, by int) []byte {
	next := make([]byte, len(buf)+by)
	copy(next, buf)
	return next
}
