package bridge

import (
	"sync"
	"testing"

	"github.com/embedkit/hostlog/core"
)

func TestStats_IncrementAndGet(t *testing.T) {
	s := NewStats()

	levels := []core.Level{core.DebugLevel, core.VerboseLevel, core.NoticeLevel, core.WarningLevel}
	for i, level := range levels {
		for j := 0; j <= i; j++ {
			s.IncrementForwarded(level)
		}
	}

	for i, level := range levels {
		want := uint64(i + 1)
		if got := s.GetForwarded(level); got != want {
			t.Errorf("GetForwarded(%v) = %d, want %d", level, got, want)
		}
	}

	if got := s.GetTotalForwarded(); got != 10 {
		t.Errorf("GetTotalForwarded() = %d, want 10", got)
	}
}

func TestStats_UnknownLevel(t *testing.T) {
	s := NewStats()

	// Out-of-range levels are ignored rather than counted
	s.IncrementForwarded(core.Level(99))
	if got := s.GetTotalForwarded(); got != 0 {
		t.Errorf("Expected unknown level to be ignored, got total %d", got)
	}
	if got := s.GetForwarded(core.Level(99)); got != 0 {
		t.Errorf("GetForwarded(unknown) = %d, want 0", got)
	}
}

func TestStats_Truncated(t *testing.T) {
	s := NewStats()

	s.IncrementTruncated()
	s.IncrementTruncated()
	if got := s.GetTruncated(); got != 2 {
		t.Errorf("GetTruncated() = %d, want 2", got)
	}
}

func TestStats_Reset(t *testing.T) {
	s := NewStats()

	s.IncrementForwarded(core.DebugLevel)
	s.IncrementForwarded(core.WarningLevel)
	s.IncrementTruncated()
	s.Reset()

	if got := s.GetTotalForwarded(); got != 0 {
		t.Errorf("Expected zero forwards after reset, got: %d", got)
	}
	if got := s.GetTruncated(); got != 0 {
		t.Errorf("Expected zero truncations after reset, got: %d", got)
	}
}

func TestStats_GetSnapshot(t *testing.T) {
	s := NewStats()

	s.IncrementForwarded(core.NoticeLevel)
	s.IncrementForwarded(core.NoticeLevel)
	s.IncrementForwarded(core.WarningLevel)
	s.IncrementTruncated()

	snap := s.GetSnapshot()
	if got := snap.ForwardedTotal[core.NoticeLevel]; got != 2 {
		t.Errorf("Snapshot notice count = %d, want 2", got)
	}
	if got := snap.ForwardedTotal[core.WarningLevel]; got != 1 {
		t.Errorf("Snapshot warning count = %d, want 1", got)
	}
	if snap.TruncatedTotal != 1 {
		t.Errorf("Snapshot truncated count = %d, want 1", snap.TruncatedTotal)
	}

	// The snapshot is detached from the live counters
	s.IncrementForwarded(core.NoticeLevel)
	if got := snap.ForwardedTotal[core.NoticeLevel]; got != 2 {
		t.Errorf("Expected snapshot to stay at 2, got: %d", got)
	}
}

func TestStats_ConcurrentIncrements(t *testing.T) {
	s := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				s.IncrementForwarded(core.NoticeLevel)
			}
		}()
	}
	wg.Wait()

	if got := s.GetForwarded(core.NoticeLevel); got != 8000 {
		t.Errorf("GetForwarded(notice) = %d, want 8000", got)
	}
}
