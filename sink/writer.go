package sink

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/embedkit/hostlog/core"
)

// maxPooledLine caps the size of line buffers returned to the pool so
// one oversized message doesn't pin memory for the process lifetime.
const maxPooledLine = 4096

// linePool holds line assembly buffers shared by the writer sinks
var linePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 256)
		return &b
	},
}

// levelBrackets precomputes the bracketed level labels
var levelBrackets = [...]string{
	core.DebugLevel:   "[debug]",
	core.VerboseLevel: "[verbose]",
	core.NoticeLevel:  "[notice]",
	core.WarningLevel: "[warning]",
}

func bracketed(l core.Level) string {
	if l.IsValid() {
		return levelBrackets[l]
	}
	return "[" + l.String() + "]"
}

// isConcurrentSafeWriter returns true if the writer is known to be safe
// for concurrent Write calls, allowing the sink to skip write-level
// locking.
func isConcurrentSafeWriter(w io.Writer) bool {
	if w == io.Discard {
		return true
	}
	_, ok := w.(*os.File)
	return ok
}

// WriterConfig holds configuration for a Writer sink
type WriterConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// TimestampFormat for the leading timestamp (default: time.RFC3339)
	TimestampFormat string
	// OmitTimestamp drops the timestamp column
	OmitTimestamp bool
	// CoarseClock reads timestamps from a clock cached every 500µs
	// instead of calling time.Now() per message
	CoarseClock bool
	// ConcurrentWriter indicates the Writer supports concurrent Write
	// calls, letting the sink skip write-level locking. Automatically
	// detected for io.Discard and *os.File; set true for other
	// goroutine-safe writers.
	ConcurrentWriter bool
}

// applyWriterDefaults fills in zero-value fields with defaults.
func applyWriterDefaults(cfg *WriterConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
}

// Writer is a Sink that writes one "<timestamp> [level] <message>"
// line per delivery. Each line goes out in a single Write call; for
// writers not known to be concurrent-safe the call is serialized with
// a mutex. Write errors are discarded, the forwarding contract has no
// error path.
type Writer struct {
	out            io.Writer
	tsFormat       string
	omitTimestamp  bool
	coarse         bool
	concurrentSafe bool
	mu             sync.Mutex
}

// NewWriter creates a Writer sink
func NewWriter(cfg WriterConfig) *Writer {
	applyWriterDefaults(&cfg)
	if cfg.CoarseClock {
		startCoarseClock()
	}
	return &Writer{
		out:            cfg.Writer,
		tsFormat:       cfg.TimestampFormat,
		omitTimestamp:  cfg.OmitTimestamp,
		coarse:         cfg.CoarseClock,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
	}
}

// Log writes the message as one line
func (w *Writer) Log(level core.Level, message string) {
	bp := linePool.Get().(*[]byte)
	line := (*bp)[:0]

	if !w.omitTimestamp {
		now := time.Now()
		if w.coarse {
			now = coarseNow()
		}
		line = now.AppendFormat(line, w.tsFormat)
		line = append(line, ' ')
	}
	line = append(line, bracketed(level)...)
	line = append(line, ' ')
	line = append(line, message...)
	line = append(line, '\n')

	if w.concurrentSafe {
		_, _ = w.out.Write(line)
	} else {
		w.mu.Lock()
		_, _ = w.out.Write(line)
		w.mu.Unlock()
	}

	if cap(line) <= maxPooledLine {
		*bp = line
		linePool.Put(bp)
	}
}
