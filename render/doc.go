// Package render turns C-style printf templates into bounded message
// strings.
//
// Host module code written against a C logging API carries conversion
// specifiers Go's fmt does not know: %u, %i, and length-modified forms
// like %lld, %zu or %hhx. Normalize rewrites those onto fmt's verb set
// while leaving flags, width, precision and fmt-native specifiers
// untouched, so the same template renders identically to the C side
// wherever both sides define the conversion.
//
// Printf and Message feed the normalized template through fmt into a
// core.BoundedBuffer, which enforces the hard output bound. Mismatched
// verbs and arguments are not an error path: fmt's %! diagnostics end
// up in the message, standing in for the undefined behavior of the C
// original.
package render
