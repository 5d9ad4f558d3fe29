package sink

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/goccy/go-json"

	"github.com/embedkit/hostlog/core"
)

// JSONConfig holds configuration for a JSONWriter sink
type JSONConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// TimestampFormat for the time field (default: time.RFC3339)
	TimestampFormat string
	// OmitTimestamp drops the time field
	OmitTimestamp bool
	// ConcurrentWriter marks Writer safe for concurrent Write calls
	ConcurrentWriter bool
}

func applyJSONDefaults(cfg *JSONConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = time.RFC3339
	}
}

// jsonRecord is the wire shape of one delivery
type jsonRecord struct {
	Time    string `json:"time,omitempty"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

// JSONWriter is a Sink that writes one JSON object per line. Each
// record is marshaled first and written in a single call so lines stay
// whole under concurrency.
type JSONWriter struct {
	out            io.Writer
	tsFormat       string
	omitTimestamp  bool
	concurrentSafe bool
	mu             sync.Mutex
}

// NewJSONWriter creates a JSONWriter sink
func NewJSONWriter(cfg JSONConfig) *JSONWriter {
	applyJSONDefaults(&cfg)
	return &JSONWriter{
		out:            cfg.Writer,
		tsFormat:       cfg.TimestampFormat,
		omitTimestamp:  cfg.OmitTimestamp,
		concurrentSafe: cfg.ConcurrentWriter || isConcurrentSafeWriter(cfg.Writer),
	}
}

// Log writes the message as one JSON line
func (w *JSONWriter) Log(level core.Level, message string) {
	rec := jsonRecord{Level: level.String(), Message: message}
	if !w.omitTimestamp {
		rec.Time = time.Now().Format(w.tsFormat)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	data = append(data, '\n')

	if w.concurrentSafe {
		_, _ = w.out.Write(data)
		return
	}
	w.mu.Lock()
	_, _ = w.out.Write(data)
	w.mu.Unlock()
}
