package render

import (
	"fmt"
	"strings"

	"github.com/embedkit/hostlog/core"
)

// Printf renders format with args into dst, normalizing C conversion
// specifiers first. Output beyond the buffer bound is dropped by dst;
// rendering itself never fails.
func Printf(dst *core.BoundedBuffer, format string, args ...interface{}) {
	// Formats without specifiers and arguments skip fmt entirely.
	// Anything containing '%' must go through Fprintf so %% collapses.
	if len(args) == 0 && !strings.ContainsRune(format, '%') {
		dst.WriteString(format)
		return
	}
	fmt.Fprintf(dst, Normalize(format), args...)
}

// Message renders format with args into a fresh buffer of the given
// capacity and returns the bounded result plus whether it was clipped.
// Non-positive capacities fall back to core.DefaultRenderCapacity.
func Message(capacity int, format string, args ...interface{}) (string, bool) {
	b := core.NewBoundedBuffer(capacity)
	Printf(b, format, args...)
	return b.String(), b.Truncated()
}
