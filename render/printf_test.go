package render

import (
	"strings"
	"testing"

	"github.com/embedkit/hostlog/core"
)

func TestPrintf_PlainFormat(t *testing.T) {
	b := core.NewBoundedBuffer(64)
	Printf(b, "index ready")
	if b.String() != "index ready" {
		t.Errorf("Expected 'index ready', got: %q", b.String())
	}
}

func TestPrintf_CollapsesPercentEscape(t *testing.T) {
	b := core.NewBoundedBuffer(64)
	Printf(b, "resize at 100%% capacity")
	if b.String() != "resize at 100% capacity" {
		t.Errorf("Expected single percent in output, got: %q", b.String())
	}
}

func TestPrintf_CStyleSpecifiers(t *testing.T) {
	tests := []struct {
		name   string
		format string
		args   []interface{}
		want   string
	}{
		{"unsigned", "generation %u", []interface{}{uint32(7)}, "generation 7"},
		{"long long", "offset %lld", []interface{}{int64(-9000000000)}, "offset -9000000000"},
		{"unsigned long long", "total %llu", []interface{}{uint64(18446744073709551615)}, "total 18446744073709551615"},
		{"size_t", "read %zu bytes", []interface{}{uint(4096)}, "read 4096 bytes"},
		{"hex with modifier", "mask %08lx", []interface{}{uint64(0xdead)}, "mask 0000dead"},
		{"float precision", "ratio %.3f", []interface{}{2.0 / 3.0}, "ratio 0.667"},
		{"string width", "[%-6s]", []interface{}{"ok"}, "[ok    ]"},
		{"char", "marker %c", []interface{}{'@'}, "marker @"},
		{"octal", "mode %o", []interface{}{0644}, "mode 644"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := core.NewBoundedBuffer(128)
			Printf(b, tt.format, tt.args...)
			if b.String() != tt.want {
				t.Errorf("Printf(%q) = %q, want %q", tt.format, b.String(), tt.want)
			}
		})
	}
}

func TestPrintf_Truncates(t *testing.T) {
	b := core.NewBoundedBuffer(16)
	Printf(b, "prefix %s", strings.Repeat("y", 100))
	if b.Len() != 15 {
		t.Errorf("Expected content clipped to 15 bytes, got: %d", b.Len())
	}
	if !b.Truncated() {
		t.Error("Expected truncated buffer")
	}
	if !strings.HasPrefix(b.String(), "prefix yyy") {
		t.Errorf("Expected clipped prefix, got: %q", b.String())
	}
}

func TestMessage(t *testing.T) {
	msg, truncated := Message(32, "shard %d of %d online", 3, 8)
	if msg != "shard 3 of 8 online" {
		t.Errorf("Expected 'shard 3 of 8 online', got: %q", msg)
	}
	if truncated {
		t.Error("Expected no truncation for a short message")
	}

	msg, truncated = Message(8, "%s", "a longer message")
	if msg != "a longe" {
		t.Errorf("Expected 7-byte clip, got: %q", msg)
	}
	if !truncated {
		t.Error("Expected truncation to be reported")
	}
}

func TestMessage_DefaultCapacity(t *testing.T) {
	msg, truncated := Message(0, "%s", strings.Repeat("A", 5000))
	if len(msg) != core.DefaultRenderCapacity-1 {
		t.Errorf("Expected %d bytes with the default capacity, got: %d", core.DefaultRenderCapacity-1, len(msg))
	}
	if !truncated {
		t.Error("Expected truncation to be reported")
	}
}

func BenchmarkPrintf(b *testing.B) {
	buf := core.NewBoundedBuffer(core.DefaultRenderCapacity)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		Printf(buf, "indexed %u docs in %llu ms (%s)", uint32(1000), uint64(52), "products")
	}
}
