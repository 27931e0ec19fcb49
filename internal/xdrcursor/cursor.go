// Package xdrcursor implements a bounds-checked forward reader over an
// immutable byte slice. It never copies the underlying bytes: every read
// returns a sub-slice of the input, so the caller's buffer must outlive
// anything the cursor hands back.
package xdrcursor

import "github.com/stellar/go/support/errors"

// ErrShortRead is returned whenever a read would run past the end of the
// input. It carries no positional detail by design: the host only needs
// to know the parse failed, not where.
var ErrShortRead = errors.New("short read")

// Cursor is a cheap-to-copy view over an input buffer plus an offset.
// Parsers save and restore a Cursor value around speculative reads
// instead of mutating shared state.
type Cursor struct {
	buf    []byte
	offset int
}

// New returns a Cursor positioned at the start of buf.
func New(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Len reports the total length of the underlying buffer.
func (c Cursor) Len() int {
	return len(c.buf)
}

// Tell returns the current byte offset.
func (c Cursor) Tell() int {
	return c.offset
}

// CanRead reports whether n more bytes can be read without running off
// the end of the buffer.
func (c Cursor) CanRead(n int) bool {
	if n < 0 {
		return false
	}
	return c.offset+n >= c.offset && c.offset+n <= len(c.buf)
}

// ReadExact borrows the next n bytes and advances past them.
func (c *Cursor) ReadExact(n int) ([]byte, error) {
	if !c.CanRead(n) {
		return nil, ErrShortRead
	}
	b := c.buf[c.offset : c.offset+n]
	c.offset += n
	return b, nil
}

// Peek borrows the next n bytes without advancing.
func (c Cursor) Peek(n int) ([]byte, error) {
	if !c.CanRead(n) {
		return nil, ErrShortRead
	}
	return c.buf[c.offset : c.offset+n], nil
}

// Advance moves the cursor forward by n bytes without returning them.
func (c *Cursor) Advance(n int) error {
	if !c.CanRead(n) {
		return ErrShortRead
	}
	c.offset += n
	return nil
}

// Seek moves the cursor to an absolute offset within the buffer.
func (c *Cursor) Seek(abs int) error {
	if abs < 0 || abs > len(c.buf) {
		return ErrShortRead
	}
	c.offset = abs
	return nil
}

// Remaining returns the number of unread bytes.
func (c Cursor) Remaining() int {
	return len(c.buf) - c.offset
}
