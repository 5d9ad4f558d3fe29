package config

import (
	"io"
	"log/slog"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/embedkit/hostlog/bridge"
	"github.com/embedkit/hostlog/sink"
	"github.com/embedkit/hostlog/sink/zapsink"
	"github.com/embedkit/hostlog/sink/zerologsink"
)

// NewSink builds the delivery target described by the configuration.
// When the output is a file path the returned sink owns the file and
// releases it through Close.
func (c *Config) NewSink() (sink.Sink, error) {
	var (
		s      sink.Sink
		closer io.Closer
	)

	if c.Sink.Kind == KindDiscard {
		s = sink.Discard
	} else {
		w, cl, err := openOutput(c.Sink.Output)
		if err != nil {
			return nil, err
		}
		closer = cl

		switch c.Sink.Kind {
		case KindJSON:
			s = sink.NewJSONWriter(sink.JSONConfig{
				Writer:          w,
				TimestampFormat: c.Sink.TimestampFormat,
				OmitTimestamp:   c.Sink.OmitTimestamp,
			})
		case KindSlog:
			h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
			s = sink.NewSlog(slog.New(h))
		case KindZap:
			enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
			s = zapsink.New(zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), zap.DebugLevel)))
		case KindZerolog:
			logger := zerolog.New(w).Level(zerolog.TraceLevel).With().Timestamp().Logger()
			s = zerologsink.New(logger)
		default:
			s = sink.NewWriter(sink.WriterConfig{
				Writer:          w,
				TimestampFormat: c.Sink.TimestampFormat,
				OmitTimestamp:   c.Sink.OmitTimestamp,
			})
		}
	}

	if closer != nil {
		s = &ownedSink{Sink: s, closer: closer}
	}

	if c.MinLevel != "" {
		level, err := bridge.ParseLevelStrict(c.MinLevel)
		if err != nil {
			return nil, err
		}
		s = sink.NewThreshold(level, s)
	}

	return s, nil
}

// NewForwarder validates the configuration and assembles a forwarder
// around the configured sink.
func (c *Config) NewForwarder() (*bridge.Forwarder, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := c.NewSink()
	if err != nil {
		return nil, err
	}
	return bridge.NewBuilder().
		WithSink(s).
		WithRenderCapacity(c.RenderCapacity).
		Build(), nil
}

// NewCapture builds a test capture sized by the configuration.
func (c *Config) NewCapture() *sink.Capture {
	return sink.NewCapture(c.CaptureCapacity)
}

// openOutput resolves an output name. "stdout" and "stderr" map to the
// process streams, an empty name means stderr, anything else is opened
// as a file in append mode.
func openOutput(name string) (io.Writer, io.Closer, error) {
	switch name {
	case "", OutputStderr:
		return os.Stderr, nil, nil
	case OutputStdout:
		return os.Stdout, nil, nil
	}
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

// ownedSink pairs a sink with the file it writes to. Close closes the
// inner sink first when it is closable, then the file.
type ownedSink struct {
	sink.Sink
	closer io.Closer
}

func (o *ownedSink) Close() error {
	if c, ok := o.Sink.(io.Closer); ok {
		if err := c.Close(); err != nil {
			_ = o.closer.Close()
			return err
		}
	}
	return o.closer.Close()
}
