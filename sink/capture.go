package sink

import (
	"sync"

	"github.com/embedkit/hostlog/core"
)

// DefaultCaptureCapacity is the message store size of a Capture
// constructed without an explicit capacity.
const DefaultCaptureCapacity = 2048

// Capture is a Sink that records the most recent delivery for
// inspection in tests. Like the render buffer it bounds what it keeps:
// a capture with capacity N stores at most N-1 message bytes and flags
// the clip. Reset returns the capture to its initial state between
// test cases.
type Capture struct {
	mu        sync.Mutex
	capacity  int
	level     core.Level
	message   string
	calls     int
	truncated bool
}

// NewCapture returns a Capture bounded at capacity message bytes.
// Non-positive capacities fall back to DefaultCaptureCapacity.
func NewCapture(capacity int) *Capture {
	if capacity <= 0 {
		capacity = DefaultCaptureCapacity
	}
	return &Capture{capacity: capacity}
}

// Log records level and message, clipping message to capacity-1 bytes
func (c *Capture) Log(level core.Level, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	c.level = level
	if len(message) > c.capacity-1 {
		c.message = message[:c.capacity-1]
		c.truncated = true
		return
	}
	c.message = message
	c.truncated = false
}

// Level returns the severity of the most recent delivery
func (c *Capture) Level() core.Level {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.level
}

// Message returns the most recently stored message
func (c *Capture) Message() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// Calls returns the number of deliveries since the last Reset
func (c *Capture) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

// Truncated reports whether the capture clipped the most recent message
func (c *Capture) Truncated() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.truncated
}

// Cap returns the configured capacity. Stored messages never exceed
// Cap()-1 bytes.
func (c *Capture) Cap() int {
	return c.capacity
}

// Reset clears the recorded state, keeping the capacity
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.level = 0
	c.message = ""
	c.calls = 0
	c.truncated = false
}
