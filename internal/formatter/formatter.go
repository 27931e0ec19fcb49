// Package formatter walks a decoded envelope and produces the bounded
// caption/value pairs a wallet screen shows one at a time, forward or
// backward, without ever materializing the whole display text at once.
//
// The original firmware drove this with a fixed-depth stack of
// continuation function pointers so a single poll could resume exactly
// where the last one left off without re-walking anything. Go has no
// function pointers worth pushing onto a stack for this, and this core
// is not memory constrained the way the device is: each group (the
// transaction header, or one operation) is small and bounded by the
// same caps the parser already enforces (at most 35 operations, 16
// sub-invocations, 10 contract arguments), so Formatter instead builds
// one group's pairs eagerly into a slice and navigates it with a plain
// index. Depth is therefore always O(1), well inside the original's
// stack budget, by construction rather than by a counted push/pop.
package formatter

import (
	"github.com/withobsrvr/txscan/internal/plugin"
	"github.com/withobsrvr/txscan/internal/xdrcursor"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// MaxCaptionLen and MaxValueLen bound one caption/value pair the way
// the host's fixed-size display buffers do.
const (
	MaxCaptionLen = 20
	MaxValueLen   = 104
)

// ErrBufferOverflow is returned when a group's pairs would not fit the
// host's display buffers.
var ErrBufferOverflow = overflowErr("formatted pair does not fit the display buffer")

type overflowErr string

func (e overflowErr) Error() string { return string(e) }

// Pair is one caption/value step of the display sequence.
type Pair struct {
	Caption string
	Value   string
}

func pair(caption, value string) Pair {
	return Pair{Caption: caption, Value: value}
}

func checkFits(fields []Pair) error {
	for _, p := range fields {
		if len(p.Caption) > MaxCaptionLen || len(p.Value) > MaxValueLen {
			return ErrBufferOverflow
		}
	}
	return nil
}

// Formatter re-parses one display group (the transaction header, or
// one operation) at a time from the raw input buffer and hands the
// caller its pairs one poll at a time.
type Formatter struct {
	env xdrparse.Envelope
	buf []byte

	signingKey      []byte
	displaySequence bool
	registry        *plugin.Registry

	started  bool
	group    int
	fields   []Pair
	fieldIdx int
}

// New returns a Formatter over env, which must have been decoded from
// buf. signingKey, when non-nil, must be the 32-byte Ed25519 public key
// whose matching source-account fields render abbreviated; pass nil to
// always render source accounts in full. registry may be nil.
func New(env xdrparse.Envelope, buf []byte, signingKey []byte, displaySequence bool, registry *plugin.Registry) *Formatter {
	return &Formatter{
		env:             env,
		buf:             buf,
		signingKey:      signingKey,
		displaySequence: displaySequence,
		registry:        registry,
	}
}

// Reset returns the Formatter to its initial, unstarted state so the
// next NextData(true) call begins again from the transaction header.
func (f *Formatter) Reset() {
	f.started = false
	f.group = 0
	f.fields = nil
	f.fieldIdx = 0
}

func (f *Formatter) newCursor() xdrcursor.Cursor {
	return xdrcursor.New(f.buf)
}

// activeTx is the TransactionDetails whose operations this envelope's
// groups 1..N walk: the transaction itself, or a fee bump's inner
// transaction. Soroban authorization envelopes have no operations.
func (f *Formatter) activeTx() xdrparse.TransactionDetails {
	if f.env.Type == xdrparse.EnvelopeTypeTxFeeBump {
		return f.env.FeeBump.Inner
	}
	return f.env.Tx
}

func (f *Formatter) groupCount() int {
	if f.env.Type == xdrparse.EnvelopeTypeSorobanAuth {
		return 1
	}
	return 1 + int(f.activeTx().OperationCount)
}

func (f *Formatter) buildGroup(index int) ([]Pair, error) {
	var (
		fields []Pair
		err    error
	)
	if index == 0 {
		fields, err = f.buildHeaderGroup()
	} else {
		fields, err = f.buildOperationGroup(uint32(index - 1))
	}
	if err != nil {
		return nil, err
	}
	if err := checkFits(fields); err != nil {
		return nil, err
	}
	return fields, nil
}

// NextData advances (forward=true) or retreats (forward=false) one
// step through the display sequence and returns the pair now current.
// dataExists is false once the walk has run off either end: before the
// first pair on a backward call, or past the last pair on a forward
// one. isOpHeader marks the first pair of every operation group
// ("Operation N of M" for multi-operation transactions, otherwise
// "Operation Type" directly), letting a caller draw a section divider.
func (f *Formatter) NextData(forward bool) (p Pair, dataExists bool, isOpHeader bool, err error) {
	if !f.started {
		if !forward {
			return Pair{}, false, false, nil
		}
		fields, err := f.buildGroup(0)
		if err != nil {
			return Pair{}, false, false, err
		}
		f.started = true
		f.group = 0
		f.fields = fields
		f.fieldIdx = 0
		if len(fields) == 0 {
			return Pair{}, false, false, nil
		}
		return fields[0], true, f.isOpHeader(), nil
	}

	if forward {
		if f.fieldIdx+1 < len(f.fields) {
			f.fieldIdx++
			return f.fields[f.fieldIdx], true, f.isOpHeader(), nil
		}
		if f.group+1 >= f.groupCount() {
			return Pair{}, false, false, nil
		}
		fields, err := f.buildGroup(f.group + 1)
		if err != nil {
			return Pair{}, false, false, err
		}
		f.group++
		f.fields = fields
		f.fieldIdx = 0
		if len(fields) == 0 {
			return Pair{}, false, false, nil
		}
		return fields[0], true, f.isOpHeader(), nil
	}

	if f.fieldIdx > 0 {
		f.fieldIdx--
		return f.fields[f.fieldIdx], true, f.isOpHeader(), nil
	}
	if f.group == 0 {
		return Pair{}, false, false, nil
	}
	fields, err := f.buildGroup(f.group - 1)
	if err != nil {
		return Pair{}, false, false, err
	}
	f.group--
	f.fields = fields
	f.fieldIdx = len(fields) - 1
	if f.fieldIdx < 0 {
		return Pair{}, false, false, nil
	}
	return fields[f.fieldIdx], true, f.isOpHeader(), nil
}

func (f *Formatter) isOpHeader() bool {
	return f.group > 0 && f.fieldIdx == 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
