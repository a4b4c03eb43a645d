package codec

import (
	"bytes"
	"errors"
	"io"

	"github.com/iamNilotpal/gzipkit/internal/core/domain"
	"github.com/iamNilotpal/gzipkit/internal/core/ports"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// inflateStream is one in-flight decompression stream. Each step reads the
// next slice of decompressed bytes straight into the state's output window.
type inflateStream struct {
	state domain.StreamState
	full  []byte // the complete source buffer, for input bookkeeping
	src   *bytes.Reader
	r     io.ReadCloser
	eof   bool // logical end of stream observed
	ended bool // stream torn down
}

// InitDecompress opens a decompression stream over src. The container
// header is parsed here, so malformed or truncated headers fail the init.
// WindowBitsAuto sniffs gzip vs zlib framing from the first bytes the way
// zlib's inflateInit2 does with 32+15.
func (c *Codec) InitDecompress(src []byte, windowBits int) (ports.CodecStream, domain.Status) {
	br := bytes.NewReader(src)

	var r io.ReadCloser
	var err error
	switch windowBits {
	case domain.WindowBitsRaw:
		r = flate.NewReader(br)
	case domain.WindowBitsZlib:
		r, err = zlib.NewReader(br)
	case domain.WindowBitsGzip:
		r, err = gzip.NewReader(br)
	case domain.WindowBitsAuto:
		if domain.IsGzipFramed(src) {
			r, err = gzip.NewReader(br)
		} else {
			r, err = zlib.NewReader(br)
		}
	default:
		return nil, domain.StatusStream
	}
	if err != nil {
		// A source that ends inside the header is a malformed container,
		// not a legitimate end of stream.
		return nil, inflateStatus(err, domain.StatusData)
	}

	s := &inflateStream{full: src, src: br, r: r}
	s.syncInput()
	return s, domain.StatusOK
}

func (s *inflateStream) State() *domain.StreamState {
	return &s.state
}

// Step reads the next run of decompressed bytes into the output window.
// Every read from this codec is already a synchronization point, so the
// flush mode carries no extra meaning here.
func (s *inflateStream) Step(domain.FlushMode) domain.Status {
	if s.ended {
		s.state.Msg = "step on ended stream"
		return domain.StatusStream
	}
	if s.eof {
		return domain.StatusStreamEnd
	}
	if len(s.state.Output) == 0 {
		s.state.Msg = "no output space available"
		return domain.StatusBuf
	}

	n, err := s.r.Read(s.state.Output)
	s.state.Output = s.state.Output[n:]
	s.state.BytesProduced += uint64(n)
	s.syncInput()

	if err == nil {
		return domain.StatusOK
	}

	status := inflateStatus(err, domain.StatusStreamEnd)
	if status == domain.StatusStreamEnd {
		s.eof = true
		return status
	}

	s.state.Msg = err.Error()
	return status
}

// syncInput refreshes the consumed counter and the unconsumed input view
// from the source reader's position.
func (s *inflateStream) syncInput() {
	consumed := len(s.full) - s.src.Len()
	s.state.BytesConsumed = uint64(consumed)
	s.state.Input = s.full[consumed:]
}

// End tears the stream down. Clean completion requires the logical end of
// stream to have been observed; tearing down mid-stream reports StatusData.
func (s *inflateStream) End() domain.Status {
	if s.ended {
		return domain.StatusStream
	}
	s.ended = true

	status := domain.StatusOK
	if !s.eof {
		status = domain.StatusData
	}
	if err := s.r.Close(); err != nil {
		s.state.Msg = err.Error()
		status = domain.StatusData
	}
	return status
}

// inflateStatus maps a read error from the codec onto the status space.
// eofStatus decides how a bare io.EOF is reported, since it means "end of
// stream" during reads but "container cut short" during init.
func inflateStatus(err error, eofStatus domain.Status) domain.Status {
	var corrupt flate.CorruptInputError
	switch {
	case errors.Is(err, io.EOF):
		return eofStatus
	case errors.Is(err, io.ErrUnexpectedEOF):
		return domain.StatusBuf
	case errors.Is(err, gzip.ErrHeader), errors.Is(err, gzip.ErrChecksum),
		errors.Is(err, zlib.ErrHeader), errors.Is(err, zlib.ErrChecksum),
		errors.Is(err, zlib.ErrDictionary):
		return domain.StatusData
	case errors.As(err, &corrupt):
		return domain.StatusData
	}
	return domain.StatusErrno
}
