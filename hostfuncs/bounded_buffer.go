package hostfuncs

import (
	"bytes"
	"sync"
)

// DefaultMaxOutputSize is the default amount of guest WASI output kept per
// autosplitter (64KiB). Go guests print runtime panics to stderr before
// trapping, so the head of the stream is what matters.
const DefaultMaxOutputSize = 64 * 1024

// BoundedBuffer is an io.Writer that keeps the first limit bytes written
// to it and silently discards the rest.
type BoundedBuffer struct {
	buffer    bytes.Buffer
	mu        sync.Mutex
	limit     int
	truncated bool
}

// NewBoundedBuffer creates a new BoundedBuffer with the specified limit.
func NewBoundedBuffer(limit int) *BoundedBuffer {
	return &BoundedBuffer{limit: max(limit, 0)}
}

// Write implements io.Writer. It never fails and always reports len(p)
// bytes written, so a noisy guest is never interrupted by a short write.
func (b *BoundedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := len(p)
	if remaining := b.limit - b.buffer.Len(); n > remaining {
		b.truncated = true
		p = p[:remaining]
	}
	b.buffer.Write(p)
	return n, nil
}

// String returns the kept output.
func (b *BoundedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.String()
}

// Len returns the number of bytes kept.
func (b *BoundedBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buffer.Len()
}

// Truncated reports whether any output was discarded.
func (b *BoundedBuffer) Truncated() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.truncated
}

// Reset empties the buffer and clears the truncation flag.
func (b *BoundedBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer.Reset()
	b.truncated = false
}
