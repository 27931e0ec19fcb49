// Package xdrcodec decodes the fixed-width primitives of the network's
// canonical binary encoding: big-endian integers, enum-restricted
// booleans, optionals, and length-prefixed padded byte strings.
package xdrcodec

import (
	"encoding/binary"

	"github.com/withobsrvr/txscan/internal/xdrcursor"
)

// ErrMalformed reports a structural violation: a tag outside its closed
// set, a length over its cap, non-zero padding, and the like. The host
// never sees more detail than "parsing failed".
var ErrMalformed = xdrerr("malformed input")

type xdrerr string

func (e xdrerr) Error() string { return string(e) }

// Uint32 decodes a 4-byte big-endian unsigned integer.
func Uint32(c *xdrcursor.Cursor) (uint32, error) {
	b, err := c.ReadExact(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// Int32 decodes a 4-byte big-endian signed integer.
func Int32(c *xdrcursor.Cursor) (int32, error) {
	v, err := Uint32(c)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// Uint64 decodes an 8-byte big-endian unsigned integer.
func Uint64(c *xdrcursor.Cursor) (uint64, error) {
	b, err := c.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

// Int64 decodes an 8-byte big-endian signed integer.
func Int64(c *xdrcursor.Cursor) (int64, error) {
	v, err := Uint64(c)
	if err != nil {
		return 0, err
	}
	return int64(v), nil
}

// Bool decodes a u32-encoded boolean. Any value other than 0 or 1 is
// MalformedInput.
func Bool(c *xdrcursor.Cursor) (bool, error) {
	v, err := Uint32(c)
	if err != nil {
		return false, err
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrMalformed
	}
}

// paddedLen rounds size up to the next multiple of 4.
func paddedLen(size uint32) (int, bool) {
	rem := size % 4
	if rem == 0 {
		return int(size), true
	}
	if size > ^uint32(0)-4 {
		return 0, false
	}
	return int(size + 4 - rem), true
}

// BytesPadded reads a u32 length capped at maxLen, borrows that many
// bytes rounded up to a 4-byte boundary, and verifies every padding
// byte is zero. It returns the unpadded slice. maxLen of 0 means
// unbounded.
func BytesPadded(c *xdrcursor.Cursor, maxLen uint32) ([]byte, error) {
	size, err := Uint32(c)
	if err != nil {
		return nil, err
	}
	if maxLen != 0 && size > maxLen {
		return nil, ErrMalformed
	}
	total, ok := paddedLen(size)
	if !ok {
		return nil, ErrMalformed
	}
	raw, err := c.ReadExact(total)
	if err != nil {
		return nil, err
	}
	for _, b := range raw[size:] {
		if b != 0 {
			return nil, ErrMalformed
		}
	}
	return raw[:size:size], nil
}

// OptionalBool reads the u32 presence prefix used by optional(T). The
// caller decodes T itself only when present is true.
func OptionalBool(c *xdrcursor.Cursor) (present bool, err error) {
	return Bool(c)
}

// Optional reads the presence prefix and, if set, decodes T with read.
// Both branches leave the cursor correctly advanced.
func Optional[T any](c *xdrcursor.Cursor, read func(*xdrcursor.Cursor) (T, error)) (value T, present bool, err error) {
	present, err = OptionalBool(c)
	if err != nil {
		return value, false, err
	}
	if !present {
		return value, false, nil
	}
	value, err = read(c)
	if err != nil {
		return value, false, err
	}
	return value, true, nil
}
