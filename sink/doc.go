// Package sink provides the receiving side of the hostlog contract.
//
// A Sink is what the host installs: it takes one (level, message) pair
// per forwarded call and owns everything after the hand-off. The
// package ships the sinks a host process typically needs. Writer and
// JSONWriter emit line-oriented output to an io.Writer, serializing
// writes unless the destination is known concurrent-safe (io.Discard
// and *os.File are). Slog adapts into log/slog; the zapsink and
// zerologsink subpackages do the same for their backends. Multi fans
// out, Threshold applies the receiving side's minimum level, Func and
// Discard cover ad-hoc wiring.
//
// Capture is the test double: it records the most recent delivery in a
// bounded store and exposes explicit Reset for reuse between cases.
//
// None of the sinks report errors back; failures past the hand-off
// stay invisible to the forwarding side.
package sink
