package xdrparse

import (
	"bytes"
	"testing"
)

func TestParseOperationCreateAccount(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))          // source account absent
	buf.Write(be32(uint32(OpCreateAccount)))
	buf.Write(be32(0))          // PublicKeyTypeEd25519
	buf.Write(pad32(32))        // destination account id
	buf.Write(be64(1000000000)) // starting balance

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Type != OpCreateAccount {
		t.Fatalf("expected OpCreateAccount, got %v", op.Type)
	}
	if op.CreateAccount.StartingBalance != 1000000000 {
		t.Fatalf("expected balance 1000000000, got %d", op.CreateAccount.StartingBalance)
	}
}

func TestParseOperationUnknownTypeFails(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(999))

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseOperationCreateClaimableBalanceRejectsTooManyClaimants(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(uint32(OpCreateClaimableBalance)))
	buf.Write(be32(0))          // asset: native
	buf.Write(be64(1))          // amount
	buf.Write(be32(MaxClaimants + 1))

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseOperationCreateClaimableBalanceUnconditionalClaimant(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(uint32(OpCreateClaimableBalance)))
	buf.Write(be32(0)) // asset: native
	buf.Write(be64(42))
	buf.Write(be32(1)) // 1 claimant
	buf.Write(be32(0)) // ClaimantTypeV0
	buf.Write(be32(0)) // PublicKeyTypeEd25519
	buf.Write(pad32(32))
	buf.Write(be32(0)) // predicate: unconditional

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(op.CreateClaimableBalance.Claimants) != 1 {
		t.Fatalf("expected 1 claimant, got %d", len(op.CreateClaimableBalance.Claimants))
	}
}

func TestParseOperationPathPaymentRejectsOverlongPath(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(uint32(OpPathPaymentStrictReceive)))
	buf.Write(be32(0))          // send asset: native
	buf.Write(be64(100))        // send max
	buf.Write(be32(0))          // destination
	buf.Write(pad32(32))
	buf.Write(be32(0)) // dest asset: native
	buf.Write(be64(100))
	buf.Write(be32(MaxPathLength + 1))

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseOperationAllowTrustRejectsPoolShareCode(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(uint32(OpAllowTrust)))
	buf.Write(be32(0)) // PublicKeyTypeEd25519
	buf.Write(pad32(32))
	buf.Write(be32(uint32(AssetTypePoolShare)))

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestParseOperationRevokeSponsorshipSigner(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(0))
	buf.Write(be32(uint32(OpRevokeSponsorship)))
	buf.Write(be32(uint32(RevokeSponsorshipSignerKind)))
	buf.Write(be32(0)) // PublicKeyTypeEd25519
	buf.Write(pad32(32)) // account id
	buf.Write(be32(uint32(SignerKeyTypeEd25519)))
	buf.Write(pad32(32))

	var op Operation
	c := New(buf.Bytes())
	if err := ParseOperation(&c, &op); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.RevokeSponsorship.Type != RevokeSponsorshipSignerKind {
		t.Fatalf("expected signer-kind revoke sponsorship")
	}
}
