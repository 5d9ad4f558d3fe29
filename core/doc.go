// Package core defines the shared types of the hostlog forwarding
// contract.
//
// It provides the Level type naming the four host severities (debug,
// verbose, notice, warning) and the BoundedBuffer type, a fixed-capacity
// byte builder that enforces the hard length bound on rendered messages.
//
// BoundedBuffer follows the C snprintf convention the host side expects:
// a buffer constructed with capacity N never holds more than N-1 content
// bytes, reserving one slot for the terminator. Overlong writes are
// clipped silently and recorded in a sticky truncated flag rather than
// surfaced as errors, so a fmt.Fprintf into the buffer always completes.
package core
