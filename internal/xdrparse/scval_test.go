package xdrparse

import (
	"bytes"
	"testing"
)

func TestDecodeSCValU32(t *testing.T) {
	buf := append(be32(uint32(SCValU32)), be32(42)...)
	c := New(buf)
	v, err := DecodeSCVal(&c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != SCValU32 || v.U32 != 42 {
		t.Fatalf("expected U32(42), got %+v", v)
	}
}

func TestSkipSCValVecThenDecodeNext(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(uint32(SCValVec)))
	buf.Write(be32(1)) // present
	buf.Write(be32(2)) // 2 elements
	buf.Write(be32(uint32(SCValU32)))
	buf.Write(be32(1))
	buf.Write(be32(uint32(SCValU32)))
	buf.Write(be32(2))
	// a second, sibling SCVal follows
	buf.Write(be32(uint32(SCValBool)))
	buf.Write(be32(1))

	c := New(buf.Bytes())
	if err := SkipSCVal(&c); err != nil {
		t.Fatalf("unexpected error skipping vec: %v", err)
	}
	v, err := DecodeSCVal(&c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != SCValBool || !v.B {
		t.Fatalf("expected Bool(true) after skip, got %+v", v)
	}
}

func TestDecodeSCValRejectsUnknownDiscriminant(t *testing.T) {
	buf := be32(999)
	c := New(buf)
	if _, err := DecodeSCVal(&c); err != ErrMalformedInput {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestDecodeSCValMapRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(be32(uint32(SCValMap)))
	buf.Write(be32(1)) // present
	buf.Write(be32(1)) // 1 entry
	buf.Write(be32(uint32(SCValSymbol)))
	buf.Write(be32(3))
	buf.WriteString("key")
	buf.Write(pad32(1))
	buf.Write(be32(uint32(SCValI32)))
	buf.Write(be32(uint32(int32(-7))))

	c := New(buf.Bytes())
	v, err := DecodeSCVal(&c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Map) != 1 {
		t.Fatalf("expected 1 map entry, got %d", len(v.Map))
	}
	if string(v.Map[0].Key.Sym) != "key" {
		t.Fatalf("expected key symbol 'key', got %q", v.Map[0].Key.Sym)
	}
	if v.Map[0].Val.I32 != -7 {
		t.Fatalf("expected value -7, got %d", v.Map[0].Val.I32)
	}
}

// buildInvokeContractAuth constructs a SorobanAuthorization with one
// root invocation and one nested sub-invocation, to exercise the
// flattened position table.
func buildInvokeContractAuth() []byte {
	var buf bytes.Buffer
	buf.Write(be64(7))  // nonce
	buf.Write(be32(100)) // signature expiration ledger

	writeContractFn := func(name string) {
		buf.Write(be32(uint32(SorobanAuthorizedFunctionContractFn)))
		buf.Write(be32(uint32(SCAddressTypeContract)))
		buf.Write(pad32(32))
		nb := []byte(name)
		buf.Write(be32(uint32(len(nb))))
		buf.Write(nb)
		if r := len(nb) % 4; r != 0 {
			buf.Write(pad32(4 - r))
		}
		buf.Write(be32(0)) // 0 arguments
	}

	writeContractFn("root_fn")
	buf.Write(be32(1)) // 1 sub-invocation
	writeContractFn("child_fn")
	buf.Write(be32(0)) // child has no further sub-invocations

	return buf.Bytes()
}

func TestParseSorobanAuthorizationFlattensSubInvocations(t *testing.T) {
	c := New(buildInvokeContractAuth())
	auth, err := ParseSorobanAuthorization(&c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if auth.Nonce != 7 {
		t.Fatalf("expected nonce 7, got %d", auth.Nonce)
	}
	if string(auth.InvokeContract.FunctionName) != "root_fn" {
		t.Fatalf("expected root_fn, got %q", auth.InvokeContract.FunctionName)
	}
	if auth.SubInvocationCount != 1 {
		t.Fatalf("expected 1 sub-invocation, got %d", auth.SubInvocationCount)
	}

	fnType, args, err := ReparseSubInvocationAt(c, auth.SubInvocationPosns[0])
	if err != nil {
		t.Fatalf("unexpected error reparsing sub-invocation: %v", err)
	}
	if fnType != SorobanAuthorizedFunctionContractFn {
		t.Fatalf("expected contract-fn sub-invocation")
	}
	if string(args.FunctionName) != "child_fn" {
		t.Fatalf("expected child_fn, got %q", args.FunctionName)
	}
}
