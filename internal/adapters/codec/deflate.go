package codec

import (
	"bytes"
	"io"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/ports"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// flushWriter is the subset of the codec writers a compression stream
// needs. All three framing variants satisfy it.
type flushWriter interface {
	io.WriteCloser
	Flush() error
}

// deflateStream is one in-flight compression stream. Input is written
// through the codec writer into a pooled sink buffer; each step then moves
// as much of the sink as fits into the state's output window.
type deflateStream struct {
	state  domain.StreamState
	w      flushWriter
	sink   *bytes.Buffer
	closed bool // writer closed, trailer written into the sink
	ended  bool // stream torn down
}

// InitCompress opens a compression stream over src with the given level
// and framing. Fails with StatusStream for an unknown level preset or
// windowBits value; nothing allocated by a failed init survives it.
func (c *Codec) InitCompress(src []byte, cfg domain.DeflateConfig) (ports.CodecStream, domain.Status) {
	level, ok := flateLevel(cfg.Level)
	if !ok {
		return nil, domain.StatusStream
	}

	sink := sinkPool.Get()

	var w flushWriter
	var err error
	switch cfg.WindowBits {
	case domain.WindowBitsGzip:
		w, err = gzip.NewWriterLevel(sink, level)
	case domain.WindowBitsZlib:
		w, err = zlib.NewWriterLevel(sink, level)
	case domain.WindowBitsRaw:
		w, err = flate.NewWriter(sink, level)
	default:
		sinkPool.Put(sink)
		return nil, domain.StatusStream
	}
	if err != nil {
		sinkPool.Put(sink)
		return nil, domain.StatusStream
	}

	s := &deflateStream{w: w, sink: sink}
	s.state.Input = src
	return s, domain.StatusOK
}

func (s *deflateStream) State() *domain.StreamState {
	return &s.state
}

// Step writes all pending input through the codec, completes the stream in
// Finish mode, and drains the sink into the output window. Returns
// StatusStreamEnd once the stream is complete and the sink fully drained.
func (s *deflateStream) Step(mode domain.FlushMode) domain.Status {
	if s.ended {
		s.state.Msg = "step on ended stream"
		return domain.StatusStream
	}

	if len(s.state.Input) > 0 {
		n, err := s.w.Write(s.state.Input)
		s.state.BytesConsumed += uint64(n)
		s.state.Input = s.state.Input[n:]
		if err != nil {
			s.state.Msg = err.Error()
			return domain.StatusErrno
		}
	}

	switch mode {
	case domain.Finish:
		if !s.closed {
			if err := s.w.Close(); err != nil {
				s.state.Msg = err.Error()
				return domain.StatusErrno
			}
			s.closed = true
		}
	case domain.SyncFlush:
		if !s.closed {
			if err := s.w.Flush(); err != nil {
				s.state.Msg = err.Error()
				return domain.StatusErrno
			}
		}
	}

	s.drain()

	if s.closed && s.sink.Len() == 0 {
		return domain.StatusStreamEnd
	}
	return domain.StatusOK
}

// drain moves sink bytes into the output window, advancing the window and
// the produced counter.
func (s *deflateStream) drain() {
	n := copy(s.state.Output, s.sink.Bytes())
	s.sink.Next(n)
	s.state.Output = s.state.Output[n:]
	s.state.BytesProduced += uint64(n)
}

// End tears the stream down and returns its sink to the pool. Ending a
// stream that never completed reports StatusData, matching how zlib-style
// codecs report a mid-stream teardown.
func (s *deflateStream) End() domain.Status {
	if s.ended {
		return domain.StatusStream
	}
	s.ended = true

	status := domain.StatusOK
	if !s.closed || s.sink.Len() > 0 {
		status = domain.StatusData
	}
	if !s.closed {
		// Complete the writer so its internal state is released; its
		// output is discarded along with the sink.
		s.w.Close()
		s.closed = true
	}

	sinkPool.Put(s.sink)
	s.sink = nil
	return status
}
