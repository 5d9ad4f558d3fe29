package sink

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	clockOnce sync.Once
	cachedNow unsafe.Pointer // *time.Time
)

// startCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process, which matches how long sinks stay installed.
func startCoarseClock() {
	clockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&cachedNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&cachedNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// coarseNow returns the most recently cached time.Time value.
// startCoarseClock must have been called before using coarseNow.
func coarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&cachedNow))
}
