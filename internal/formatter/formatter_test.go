package formatter

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/withobsrvr/txscan/internal/xdrparse"
)

var testnetHash = sha256.Sum256([]byte("Test SDF Network ; September 2015"))

func be32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func be64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}

func pad32(n int) []byte { return make([]byte, n) }

// buildPaymentEnvelope constructs a two-operation transaction (a
// payment with a text memo, then an account merge) on testnet.
func buildPaymentEnvelope(sourceKey []byte) []byte {
	var buf bytes.Buffer
	buf.Write(testnetHash[:])
	buf.Write(be32(2)) // ENVELOPE_TYPE_TX

	buf.Write(be32(0)) // source account: ed25519
	buf.Write(sourceKey)
	buf.Write(be32(100))            // fee
	buf.Write(be64(1))              // seqNum
	buf.Write(be32(0))              // preconditions: none
	buf.Write(be32(1))              // memo: text
	buf.Write(be32(5))              // "hello" length
	buf.WriteString("hello")
	buf.Write(make([]byte, 3))      // pad to 4-byte boundary
	buf.Write(be32(2))              // operations count = 2

	// op 0: Payment, no source
	buf.Write(be32(0)) // source absent
	buf.Write(be32(1)) // OpPayment
	buf.Write(be32(0))
	buf.Write(pad32(32)) // destination
	buf.Write(be32(0))   // asset: native
	buf.Write(be64(500000000))

	// op 1: AccountMerge, no source
	buf.Write(be32(0))  // source absent
	buf.Write(be32(8))  // OpAccountMerge
	buf.Write(be32(0))
	buf.Write(pad32(32)) // destination

	buf.Write(be32(0)) // tx ext: v0
	buf.Write(be32(0)) // signatures: 0

	return buf.Bytes()
}

func TestNextDataWalksPaymentTransaction(t *testing.T) {
	sourceKey := make([]byte, 32)
	sourceKey[0] = 0xAA
	raw := buildPaymentEnvelope(sourceKey)

	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, sourceKey, false, nil)

	var captions []string
	for {
		p, ok, _, err := f.NextData(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		captions = append(captions, p.Caption)
	}

	want := []string{
		"Network", "Memo (TEXT)", "Max Fee", "Source Account",
		"Operation", "Operation Type", "Send", "Destination",
		"Operation", "Operation Type", "Destination",
	}
	if len(captions) != len(want) {
		t.Fatalf("expected %d pairs, got %d: %v", len(want), len(captions), captions)
	}
	for i, c := range want {
		if captions[i] != c {
			t.Fatalf("pair %d: expected caption %q, got %q", i, c, captions[i])
		}
	}
}

func TestNextDataSourceAccountAbbreviatedWhenSigner(t *testing.T) {
	sourceKey := make([]byte, 32)
	sourceKey[0] = 0xAA
	raw := buildPaymentEnvelope(sourceKey)

	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, sourceKey, false, nil)
	// Network, Memo (TEXT), Max Fee, Source Account.
	var p Pair
	var ok bool
	for i := 0; i < 4; i++ {
		p, ok, _, err = f.NextData(true)
		if err != nil || !ok {
			t.Fatalf("unexpected result at step %d: ok=%v err=%v", i, ok, err)
		}
	}
	if p.Caption != "Source Account" {
		t.Fatalf("expected to land on Source Account, got %q", p.Caption)
	}
	if len(p.Value) >= 56 {
		t.Fatalf("expected an abbreviated source account, got %q", p.Value)
	}
}

func TestNextDataBackwardReturnsToPreviousPair(t *testing.T) {
	raw := buildPaymentEnvelope(make([]byte, 32))
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, nil, false, nil)
	first, _, _, _ := f.NextData(true)
	second, _, _, _ := f.NextData(true)
	if first.Caption == second.Caption && first.Value == second.Value {
		t.Fatalf("expected distinct first and second pairs")
	}
	back, ok, _, err := f.NextData(false)
	if err != nil || !ok {
		t.Fatalf("unexpected backward result: ok=%v err=%v", ok, err)
	}
	if back != first {
		t.Fatalf("expected backward step to return to %+v, got %+v", first, back)
	}
}

func TestNextDataMarksOperationHeader(t *testing.T) {
	raw := buildPaymentEnvelope(make([]byte, 32))
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, nil, false, nil)
	var sawOpHeader bool
	for {
		p, ok, isOpHeader, err := f.NextData(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		if isOpHeader {
			sawOpHeader = true
			if p.Caption != "Operation" {
				t.Fatalf("expected op header caption Operation, got %q", p.Caption)
			}
		}
	}
	if !sawOpHeader {
		t.Fatalf("expected at least one operation-header pair")
	}
}

func TestResetRestartsFromHeader(t *testing.T) {
	raw := buildPaymentEnvelope(make([]byte, 32))
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, nil, false, nil)
	first, _, _, _ := f.NextData(true)
	f.NextData(true)
	f.Reset()
	restarted, ok, _, err := f.NextData(true)
	if err != nil || !ok {
		t.Fatalf("unexpected result after reset: ok=%v err=%v", ok, err)
	}
	if restarted != first {
		t.Fatalf("expected reset to replay %+v, got %+v", first, restarted)
	}
}
