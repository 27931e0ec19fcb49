// Package core wires the envelope parser, the display formatter, and
// an optional plugin registry into the small API a host application
// drives: decode once, then poll forward or backward for the next
// caption/value pair to draw.
package core

import (
	"github.com/withobsrvr/txscan/internal/formatter"
	"github.com/withobsrvr/txscan/internal/plugin"
	"github.com/withobsrvr/txscan/internal/xdrcursor"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// Pair is a re-export of formatter.Pair so callers need not import the
// formatter package directly.
type Pair = formatter.Pair

// Envelope is a decoded transaction, fee-bump transaction, or
// standalone Soroban authorization entry, paired with the formatter
// that walks its display sequence.
type Envelope struct {
	Raw       []byte
	Decoded   xdrparse.Envelope
	Formatter *formatter.Formatter
}

// ParseTransaction decodes buf, which must be a 32-byte network id
// hash followed by a u32 envelope-type tag and the corresponding body,
// and returns it ready to format. signingKey, when non-nil, must be
// the 32-byte Ed25519 public key the caller is reviewing the
// transaction on behalf of; matching source-account fields render
// abbreviated. displaySequence controls whether the transaction's
// sequence number is included in the header. registry may be nil.
func ParseTransaction(buf []byte, signingKey []byte, displaySequence bool, registry *plugin.Registry) (*Envelope, error) {
	decoded, err := xdrparse.ParseEnvelope(buf)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Raw:       buf,
		Decoded:   decoded,
		Formatter: formatter.New(decoded, buf, signingKey, displaySequence, registry),
	}, nil
}

// ParseAuthorization is an alias for ParseTransaction: a standalone
// Soroban authorization entry (envelope type 9) and a transaction
// envelope share the same top-level framing and the same Envelope/
// Formatter pairing, differing only in which fields the parser
// populates.
func ParseAuthorization(buf []byte, registry *plugin.Registry) (*Envelope, error) {
	return ParseTransaction(buf, nil, false, registry)
}

// ParseOperation decodes the index'th operation of e's transaction (or
// fee-bump inner transaction) without disturbing the formatter's
// current position. It is for callers that want to inspect an
// operation's raw fields directly, bypassing the display sequence.
func (e *Envelope) ParseOperation(index uint32) (xdrparse.Operation, error) {
	tx := e.Decoded.Tx
	if e.Decoded.Type == xdrparse.EnvelopeTypeTxFeeBump {
		tx = e.Decoded.FeeBump.Inner
	}
	var op xdrparse.Operation
	err := xdrparse.ParseOperationAt(xdrcursor.New(e.Raw), tx, index, &op)
	return op, err
}

// ResetFormatter returns e's formatter to the start of the display
// sequence.
func (e *Envelope) ResetFormatter() {
	e.Formatter.Reset()
}

// NextData advances or retreats e's formatter one step and returns the
// pair now current.
func (e *Envelope) NextData(forward bool) (pair Pair, dataExists bool, isOpHeader bool, err error) {
	return e.Formatter.NextData(forward)
}
