// Package display renders decoded transaction entities into the
// bounded caption/value text pairs a small screen can show. Every
// primitive here is pure: it returns its rendered text as a string (or
// ErrDoesNotFit when the input cannot be rendered); the formatter checks
// each pair against its caption and value length limits.
package display

import "strings"

// ErrDoesNotFit is returned by a primitive whose input cannot be
// rendered (a key strkey cannot encode, a time out of range) and by
// Buffer.WriteString on overflow. The formatter returns it to its caller
// unchanged.
var ErrDoesNotFit = doesNotFitErr{}

type doesNotFitErr struct{}

func (doesNotFitErr) Error() string { return "formatted value does not fit in buffer" }

// Buffer is a fixed-capacity write target mirroring the caller-owned
// caption/value buffers the host provides on every poll.
type Buffer struct {
	max int
	b   strings.Builder
}

// NewBuffer returns a Buffer that rejects any write pushing its total
// length past max bytes.
func NewBuffer(max int) *Buffer {
	return &Buffer{max: max}
}

// WriteString appends s if it fits, else reports ErrDoesNotFit and
// leaves the buffer unchanged (nothing of s is written).
func (b *Buffer) WriteString(s string) error {
	if b.b.Len()+len(s) > b.max {
		return ErrDoesNotFit
	}
	b.b.WriteString(s)
	return nil
}

// Fits reports whether s could still be appended without overflow.
func (b *Buffer) Fits(s string) bool {
	return b.b.Len()+len(s) <= b.max
}

// String returns the buffer's contents so far.
func (b *Buffer) String() string { return b.b.String() }

// Truncate shortens s to at most max bytes, replacing its middle with
// ".." when it is longer than max; when max is below 5, s is cut to its
// first max bytes with no "..". Used by the address renderers when the
// caller asks for a shortened form.
func Truncate(s string, max int) string {
	if len(s) <= max || max < 5 {
		if len(s) <= max {
			return s
		}
		return s[:max]
	}
	headLen := (max - 2) / 2
	tailLen := max - 2 - headLen
	return s[:headLen] + ".." + s[len(s)-tailLen:]
}
