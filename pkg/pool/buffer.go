package pool

import (
	"bytes"
	"sync"
)

// BufferPool manages a pool of byte buffers so short-lived operations can
// reuse scratch space instead of allocating it on every call.
type BufferPool struct {
	size int       // Initial capacity of each buffer.
	pool sync.Pool // Thread-safe pool of buffers.
}

// NewBufferPool creates a pool whose buffers start at the given capacity.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, size))
			},
		},
	}
}

// Get retrieves a clean buffer from the pool.
func (bp *BufferPool) Get() *bytes.Buffer {
	buf := bp.pool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// Put returns a buffer to the pool.
func (bp *BufferPool) Put(buf *bytes.Buffer) {
	// Don't pool buffers that have grown too large.
	if buf.Cap() > bp.size*2 {
		return
	}

	buf.Reset()
	bp.pool.Put(buf)
}
