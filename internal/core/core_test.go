package core

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"testing"
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

func buildCreateAccountEnvelope() []byte {
	var buf bytes.Buffer
	buf.Write(testnetHash[:])
	buf.Write(be32(2)) // ENVELOPE_TYPE_TX

	buf.Write(be32(0))
	buf.Write(make([]byte, 32)) // source account
	buf.Write(be32(100))        // fee
	buf.Write(be64(1))          // seqNum
	buf.Write(be32(0))          // preconditions: none
	buf.Write(be32(0))          // memo: none
	buf.Write(be32(1))          // operations count = 1

	buf.Write(be32(0)) // op source absent
	buf.Write(be32(0)) // OpCreateAccount
	buf.Write(be32(0))
	buf.Write(make([]byte, 32)) // destination (bare AccountID)
	buf.Write(be64(50000000))   // starting balance

	buf.Write(be32(0)) // tx ext: v0
	buf.Write(be32(0)) // signatures: 0

	return buf.Bytes()
}

func TestParseTransactionAndWalk(t *testing.T) {
	buf := buildCreateAccountEnvelope()
	env, err := ParseTransaction(buf, nil, false, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p, ok, _, err := env.NextData(true)
	if err != nil || !ok {
		t.Fatalf("unexpected first pair: ok=%v err=%v", ok, err)
	}
	if p.Caption != "Network" {
		t.Fatalf("expected Network first, got %q", p.Caption)
	}

	op, err := env.ParseOperation(0)
	if err != nil {
		t.Fatalf("unexpected error parsing operation: %v", err)
	}
	if op.CreateAccount.StartingBalance != 50000000 {
		t.Fatalf("expected starting balance 50000000, got %d", op.CreateAccount.StartingBalance)
	}

	env.ResetFormatter()
	again, ok, _, err := env.NextData(true)
	if err != nil || !ok || again.Caption != "Network" {
		t.Fatalf("expected reset to replay Network, got %+v ok=%v err=%v", again, ok, err)
	}
}
