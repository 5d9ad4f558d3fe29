package bridge

import (
	"sync/atomic"

	"github.com/embedkit/hostlog/core"
)

// Stats tracks forwarding statistics
type Stats struct {
	// Separate atomic counters per level
	ForwardedDebug   uint64
	ForwardedVerbose uint64
	ForwardedNotice  uint64
	ForwardedWarning uint64
	// TruncatedTotal counts renders clipped by the buffer bound
	TruncatedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementForwarded atomically increments the forwarded counter for a level
func (s *Stats) IncrementForwarded(level core.Level) {
	switch level {
	case core.DebugLevel:
		atomic.AddUint64(&s.ForwardedDebug, 1)
	case core.VerboseLevel:
		atomic.AddUint64(&s.ForwardedVerbose, 1)
	case core.NoticeLevel:
		atomic.AddUint64(&s.ForwardedNotice, 1)
	case core.WarningLevel:
		atomic.AddUint64(&s.ForwardedWarning, 1)
	}
}

// IncrementTruncated atomically increments the truncated counter
func (s *Stats) IncrementTruncated() {
	atomic.AddUint64(&s.TruncatedTotal, 1)
}

// GetForwarded returns the forwarded count for a level
func (s *Stats) GetForwarded(level core.Level) uint64 {
	switch level {
	case core.DebugLevel:
		return atomic.LoadUint64(&s.ForwardedDebug)
	case core.VerboseLevel:
		return atomic.LoadUint64(&s.ForwardedVerbose)
	case core.NoticeLevel:
		return atomic.LoadUint64(&s.ForwardedNotice)
	case core.WarningLevel:
		return atomic.LoadUint64(&s.ForwardedWarning)
	default:
		return 0
	}
}

// GetTotalForwarded returns the total forwarded across all levels
func (s *Stats) GetTotalForwarded() uint64 {
	return atomic.LoadUint64(&s.ForwardedDebug) +
		atomic.LoadUint64(&s.ForwardedVerbose) +
		atomic.LoadUint64(&s.ForwardedNotice) +
		atomic.LoadUint64(&s.ForwardedWarning)
}

// GetTruncated returns the truncated count
func (s *Stats) GetTruncated() uint64 {
	return atomic.LoadUint64(&s.TruncatedTotal)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ForwardedDebug, 0)
	atomic.StoreUint64(&s.ForwardedVerbose, 0)
	atomic.StoreUint64(&s.ForwardedNotice, 0)
	atomic.StoreUint64(&s.ForwardedWarning, 0)
	atomic.StoreUint64(&s.TruncatedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	ForwardedTotal map[core.Level]uint64
	TruncatedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ForwardedTotal: map[core.Level]uint64{
			core.DebugLevel:   s.GetForwarded(core.DebugLevel),
			core.VerboseLevel: s.GetForwarded(core.VerboseLevel),
			core.NoticeLevel:  s.GetForwarded(core.NoticeLevel),
			core.WarningLevel: s.GetForwarded(core.WarningLevel),
		},
		TruncatedTotal: s.GetTruncated(),
	}
}
