package core

// DefaultRenderCapacity is the render buffer size used when no capacity
// is configured. A rendered message carries at most DefaultRenderCapacity-1
// bytes.
const DefaultRenderCapacity = 1024

// BoundedBuffer is a fixed-capacity byte builder. It mirrors the C
// snprintf contract: a buffer of capacity N holds at most N-1 content
// bytes, with one slot reserved for the terminator the host expects.
// Writes past the limit are dropped silently and mark the buffer
// truncated; they are never reported as errors, so fmt.Fprintf renders
// the whole format string regardless of how much survives.
//
// Truncation is byte-oriented and may cut a multi-byte rune. The zero
// value is not usable; construct with NewBoundedBuffer.
type BoundedBuffer struct {
	buf       []byte
	capacity  int
	truncated bool
}

// NewBoundedBuffer returns a buffer bounded at capacity bytes.
// Non-positive capacities fall back to DefaultRenderCapacity.
func NewBoundedBuffer(capacity int) *BoundedBuffer {
	if capacity <= 0 {
		capacity = DefaultRenderCapacity
	}
	return &BoundedBuffer{
		buf:      make([]byte, 0, capacity-1),
		capacity: capacity,
	}
}

// Write appends p up to the remaining space and drops the rest.
// The returned count is always len(p) and the error is always nil.
func (b *BoundedBuffer) Write(p []byte) (int, error) {
	free := b.capacity - 1 - len(b.buf)
	switch {
	case free <= 0:
		if len(p) > 0 {
			b.truncated = true
		}
	case len(p) > free:
		b.buf = append(b.buf, p[:free]...)
		b.truncated = true
	default:
		b.buf = append(b.buf, p...)
	}
	return len(p), nil
}

// WriteString appends s under the same rules as Write
func (b *BoundedBuffer) WriteString(s string) (int, error) {
	free := b.capacity - 1 - len(b.buf)
	switch {
	case free <= 0:
		if len(s) > 0 {
			b.truncated = true
		}
	case len(s) > free:
		b.buf = append(b.buf, s[:free]...)
		b.truncated = true
	default:
		b.buf = append(b.buf, s...)
	}
	return len(s), nil
}

// WriteByte appends a single byte; it never returns an error
func (b *BoundedBuffer) WriteByte(c byte) error {
	if b.capacity-1-len(b.buf) <= 0 {
		b.truncated = true
		return nil
	}
	b.buf = append(b.buf, c)
	return nil
}

// String returns the buffered content as a string
func (b *BoundedBuffer) String() string {
	return string(b.buf)
}

// Bytes returns the buffered content. The slice is only valid until
// the next Write or Reset.
func (b *BoundedBuffer) Bytes() []byte {
	return b.buf
}

// Len returns the number of buffered content bytes
func (b *BoundedBuffer) Len() int {
	return len(b.buf)
}

// Cap returns the configured capacity. Content never exceeds Cap()-1.
func (b *BoundedBuffer) Cap() int {
	return b.capacity
}

// Truncated reports whether any write has been clipped since the last Reset
func (b *BoundedBuffer) Truncated() bool {
	return b.truncated
}

// Reset clears the content and the truncated flag, keeping the capacity
func (b *BoundedBuffer) Reset() {
	b.buf = b.buf[:0]
	b.truncated = false
}
