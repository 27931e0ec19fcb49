package xdrparse

import "testing"

func buildSignedPayloadSignerKey(payloadLen uint32, payload []byte) []byte {
	buf := append([]byte{}, be32(uint32(SignerKeyTypeEd25519SignedPaylod))...)
	buf = append(buf, pad32(32)...)
	buf = append(buf, be32(payloadLen)...)
	buf = append(buf, payload...)
	return buf
}

func TestParseSignerKeyRejectsZeroLengthPayload(t *testing.T) {
	c := New(buildSignedPayloadSignerKey(0, nil))
	if _, err := ParseSignerKey(&c); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput for a zero-length payload, got %v", err)
	}
}

func TestParseSignerKeyRejectsOverlongPayload(t *testing.T) {
	c := New(buildSignedPayloadSignerKey(65, make([]byte, 68)))
	if _, err := ParseSignerKey(&c); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput for a 65-byte payload, got %v", err)
	}
}

func TestParseSignerKeyAcceptsMaxLengthPayload(t *testing.T) {
	c := New(buildSignedPayloadSignerKey(64, make([]byte, 64)))
	sk, err := ParseSignerKey(&c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sk.Payload) != 64 {
		t.Fatalf("expected a 64-byte payload, got %d", len(sk.Payload))
	}
}
