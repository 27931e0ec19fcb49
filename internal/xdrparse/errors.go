package xdrparse

import (
	"github.com/withobsrvr/txscan/internal/xdrcodec"
	"github.com/withobsrvr/txscan/internal/xdrcursor"
)

// ErrShortRead and ErrMalformedInput are the only two ways a parse can
// fail. Neither carries positional detail: a malformed or truncated
// envelope must never leak input-shape information to the host.
var (
	ErrShortRead      = xdrcursor.ErrShortRead
	ErrMalformedInput = xdrcodec.ErrMalformed
)
