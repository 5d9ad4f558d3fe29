package sink

import (
	"bytes"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/embedkit/hostlog/core"
)

func TestWriter_Output(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf})

	w.Log(core.NoticeLevel, "index ready")

	out := buf.String()
	if !strings.Contains(out, "[notice] index ready") {
		t.Errorf("Expected '[notice] index ready' in output, got: %s", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("Expected trailing newline, got: %q", out)
	}
}

func TestWriter_OmitTimestamp(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, OmitTimestamp: true})

	w.Log(core.WarningLevel, "low memory")

	if buf.String() != "[warning] low memory\n" {
		t.Errorf("Expected exact line without timestamp, got: %q", buf.String())
	}
}

func TestWriter_TimestampFormat(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, TimestampFormat: "2006"})

	w.Log(core.NoticeLevel, "dated")

	if !strings.HasPrefix(buf.String(), "20") {
		t.Errorf("Expected year-only timestamp prefix, got: %q", buf.String())
	}
}

func TestWriter_AllLevels(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, OmitTimestamp: true})

	for _, level := range []core.Level{core.DebugLevel, core.VerboseLevel, core.NoticeLevel, core.WarningLevel} {
		w.Log(level, "msg")
	}

	out := buf.String()
	for _, want := range []string{"[debug] msg", "[verbose] msg", "[notice] msg", "[warning] msg"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output, got: %s", want, out)
		}
	}
}

func TestWriter_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, OmitTimestamp: true})

	w.Log(core.Level(9), "odd")

	if !strings.Contains(buf.String(), "[unknown] odd") {
		t.Errorf("Expected '[unknown] odd' in output, got: %s", buf.String())
	}
}

func TestWriter_CoarseClock(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, CoarseClock: true})

	w.Log(core.NoticeLevel, "coarse timestamped")

	if !strings.Contains(buf.String(), "[notice] coarse timestamped") {
		t.Errorf("Expected message in output, got: %s", buf.String())
	}
	if strings.HasPrefix(buf.String(), "[") {
		t.Errorf("Expected a timestamp before the level, got: %q", buf.String())
	}
}

func TestWriter_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(WriterConfig{Writer: &buf, OmitTimestamp: true})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				w.Log(core.NoticeLevel, "parallel line")
			}
		}()
	}
	wg.Wait()

	count := strings.Count(buf.String(), "[notice] parallel line\n")
	if count != 200 {
		t.Errorf("Expected 200 whole lines, got %d", count)
	}
}

func TestIsConcurrentSafeWriter(t *testing.T) {
	if !isConcurrentSafeWriter(io.Discard) {
		t.Error("Expected io.Discard to be concurrent-safe")
	}
	if !isConcurrentSafeWriter(os.Stdout) {
		t.Error("Expected *os.File to be concurrent-safe")
	}
	if isConcurrentSafeWriter(&bytes.Buffer{}) {
		t.Error("Expected bytes.Buffer to need locking")
	}
}

func BenchmarkWriterLog(b *testing.B) {
	w := NewWriter(WriterConfig{Writer: io.Discard})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Log(core.NoticeLevel, "a typical short diagnostic message")
	}
}

func BenchmarkWriterLogCoarseClock(b *testing.B) {
	w := NewWriter(WriterConfig{Writer: io.Discard, CoarseClock: true})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Log(core.NoticeLevel, "a typical short diagnostic message")
	}
}
