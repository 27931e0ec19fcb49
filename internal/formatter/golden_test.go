package formatter

import (
	"bytes"
	"testing"

	"github.com/withobsrvr/txscan/internal/plugin"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// These cover the end-to-end walks a reviewing signer actually steps
// through: one fixture per scenario. The payment, create-account and
// Soroban scenarios assert the full caption/value sequence; the two memo
// scenarios assert only the memo pair.

func walkAll(t *testing.T, f *Formatter) []Pair {
	t.Helper()
	var got []Pair
	for {
		p, ok, _, err := f.NextData(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, p)
	}
	return got
}

// assertPairs checks the full caption sequence against want, and the
// value too wherever want's Value is non-empty (account strkeys aren't
// recomputed by hand here, so those slots only pin down the caption
// and position).
func assertPairs(t *testing.T, got []Pair, want []Pair) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d pairs, got %d: %+v", len(want), len(got), got)
	}
	for i, w := range want {
		if got[i].Caption != w.Caption {
			t.Fatalf("pair %d: expected caption %q, got %q", i, w.Caption, got[i].Caption)
		}
		if w.Value != "" && got[i].Value != w.Value {
			t.Fatalf("pair %d (%s): expected value %q, got %q", i, w.Caption, w.Value, got[i].Value)
		}
	}
}

// buildSingleOpEnvelope wraps a single operation's already-encoded body
// (type tag onward) in a minimal testnet transaction header: no memo,
// fee 100, seq 1.
func buildSingleOpEnvelope(sourceKey []byte, opBody []byte) []byte {
	var buf bytes.Buffer
	buf.Write(testnetHash[:])
	buf.Write(be32(2)) // ENVELOPE_TYPE_TX
	buf.Write(be32(0)) // source account: ed25519
	buf.Write(sourceKey)
	buf.Write(be32(100)) // fee
	buf.Write(be64(1))   // seqNum
	buf.Write(be32(0))   // preconditions: none
	buf.Write(be32(0))   // memo: none
	buf.Write(be32(1))   // operations count = 1
	buf.Write(be32(0))   // op source absent
	buf.Write(opBody)
	buf.Write(be32(0)) // tx ext: v0
	buf.Write(be32(0)) // signatures: 0
	return buf.Bytes()
}

func paymentOpBody(dest []byte, amount uint64) []byte {
	var buf bytes.Buffer
	buf.Write(be32(1)) // OpPayment
	buf.Write(be32(0)) // destination: ed25519
	buf.Write(dest)
	buf.Write(be32(0)) // asset: native
	buf.Write(be64(amount))
	return buf.Bytes()
}

func TestGoldenPaymentNative(t *testing.T) {
	sourceKey := make([]byte, 32)
	sourceKey[0] = 0xAA
	dest := make([]byte, 32)
	dest[0] = 0xBB

	raw := buildSingleOpEnvelope(sourceKey, paymentOpBody(dest, 10000000))
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, nil, true, nil)
	got := walkAll(t, f)
	assertPairs(t, got, []Pair{
		{Caption: "Network", Value: "Testnet"},
		{Caption: "Max Fee", Value: "0.00001"},
		{Caption: "Sequence Num", Value: "1"},
		{Caption: "Source Account", Value: ""}, // account strkey, not recomputed here
		{Caption: "Operation Type", Value: "Payment"},
		{Caption: "Send", Value: "1 XLM"},
		{Caption: "Destination", Value: ""},
	})
}

func buildMemoTextEnvelope(sourceKey []byte, memo []byte) []byte {
	var buf bytes.Buffer
	buf.Write(testnetHash[:])
	buf.Write(be32(2))
	buf.Write(be32(0))
	buf.Write(sourceKey)
	buf.Write(be32(100))
	buf.Write(be64(1))
	buf.Write(be32(0)) // preconditions: none
	buf.Write(be32(1)) // memo: text
	buf.Write(be32(uint32(len(memo))))
	buf.Write(memo)
	if pad := (4 - len(memo)%4) % 4; pad != 0 {
		buf.Write(make([]byte, pad))
	}
	buf.Write(be32(1)) // operations count = 1
	buf.Write(be32(0)) // op source absent
	buf.Write(paymentOpBody(make([]byte, 32), 1))
	buf.Write(be32(0))
	buf.Write(be32(0))
	return buf.Bytes()
}

func TestGoldenMemoTextPrintable(t *testing.T) {
	raw := buildMemoTextEnvelope(make([]byte, 32), []byte("Hello"))
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	f := New(env, raw, nil, false, nil)
	got := walkAll(t, f)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 pairs, got %d", len(got))
	}
	if got[1].Caption != "Memo (TEXT)" || got[1].Value != "Hello" {
		t.Fatalf("expected Memo (TEXT)=Hello, got %+v", got[1])
	}
}

func TestGoldenMemoTextNonPrintable(t *testing.T) {
	raw := buildMemoTextEnvelope(make([]byte, 32), []byte{0x01, 0x02})
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	f := New(env, raw, nil, false, nil)
	got := walkAll(t, f)
	if len(got) < 2 {
		t.Fatalf("expected at least 2 pairs, got %d", len(got))
	}
	if got[1].Caption != "Memo (TEXT)" || got[1].Value != "Base64: AQI=" {
		t.Fatalf("expected Memo (TEXT)=Base64: AQI=, got %+v", got[1])
	}
}

func TestGoldenCreateAccount(t *testing.T) {
	dest := make([]byte, 32)
	dest[0] = 0xCC
	var opBody bytes.Buffer
	opBody.Write(be32(0)) // OpCreateAccount
	opBody.Write(be32(0)) // destination: ed25519
	opBody.Write(dest)
	opBody.Write(be64(10000000)) // starting balance

	raw := buildSingleOpEnvelope(make([]byte, 32), opBody.Bytes())
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	f := New(env, raw, nil, false, nil)
	got := walkAll(t, f)
	assertPairs(t, got, []Pair{
		{Caption: "Network", Value: "Testnet"},
		{Caption: "Max Fee", Value: "0.00001"},
		{Caption: "Source Account", Value: ""},
		{Caption: "Operation Type", Value: "Create Account"},
		{Caption: "Destination", Value: ""},
		{Caption: "Starting Balance", Value: "1"},
	})
}

func scvU32(v uint32) []byte {
	var buf bytes.Buffer
	buf.Write(be32(uint32(xdrparse.SCValU32)))
	buf.Write(be32(v))
	return buf.Bytes()
}

func scvBool(v bool) []byte {
	var buf bytes.Buffer
	buf.Write(be32(uint32(xdrparse.SCValBool)))
	if v {
		buf.Write(be32(1))
	} else {
		buf.Write(be32(0))
	}
	return buf.Bytes()
}

func scvSymbol(s string) []byte {
	var buf bytes.Buffer
	buf.Write(be32(uint32(xdrparse.SCValSymbol)))
	buf.Write(be32(uint32(len(s))))
	buf.WriteString(s)
	if pad := (4 - len(s)%4) % 4; pad != 0 {
		buf.Write(make([]byte, pad))
	}
	return buf.Bytes()
}

func scvAddress(raw []byte) []byte {
	var buf bytes.Buffer
	buf.Write(be32(uint32(xdrparse.SCValAddress)))
	buf.Write(be32(uint32(xdrparse.SCAddressTypeAccount)))
	buf.Write(be32(0)) // account: ed25519
	buf.Write(raw)
	return buf.Bytes()
}

func scvI128(hi int64, lo uint64) []byte {
	var buf bytes.Buffer
	buf.Write(be32(uint32(xdrparse.SCValI128)))
	buf.Write(be64(uint64(hi)))
	buf.Write(be64(lo))
	return buf.Bytes()
}

// invokeHostFunctionOpBody builds an OpInvokeHostFunction body invoking
// function(args...) on contract (a raw 32-byte id), with no auth entries.
func invokeHostFunctionOpBody(contract []byte, function string, args [][]byte) []byte {
	var buf bytes.Buffer
	buf.Write(be32(24)) // OpInvokeHostFunction
	buf.Write(be32(0))  // HostFunction tag: InvokeContract
	buf.Write(be32(uint32(xdrparse.SCAddressTypeContract)))
	buf.Write(contract)
	fn := []byte(function)
	buf.Write(be32(uint32(len(fn))))
	buf.Write(fn)
	if pad := (4 - len(fn)%4) % 4; pad != 0 {
		buf.Write(make([]byte, pad))
	}
	buf.Write(be32(uint32(len(args))))
	for _, a := range args {
		buf.Write(a)
	}
	buf.Write(be32(0)) // auth entries: 0
	return buf.Bytes()
}

func TestGoldenSorobanInvokeWithPlugin(t *testing.T) {
	contract := make([]byte, 32)
	contract[0] = 0xDD
	from := make([]byte, 32)
	from[0] = 0xEE
	to := make([]byte, 32)
	to[0] = 0xFF

	body := invokeHostFunctionOpBody(contract, "transfer", [][]byte{
		scvAddress(from), scvAddress(to), scvI128(0, 1000000000),
	})
	raw := buildSingleOpEnvelope(make([]byte, 32), body)
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	registry := plugin.NewRegistry(&plugin.TokenPlugin{Suffix: "USDC"})
	f := New(env, raw, nil, false, registry)
	got := walkAll(t, f)
	assertPairs(t, got, []Pair{
		{Caption: "Network", Value: "Testnet"},
		{Caption: "Max Fee", Value: "0.00001"},
		{Caption: "Source Account", Value: ""},
		{Caption: "Operation Type", Value: "Invoke Host Function"},
		{Caption: "Host Function", Value: "Invoke Contract"},
		{Caption: "Contract ID", Value: ""},
		{Caption: "Function", Value: "transfer"},
		{Caption: "Transfer", Value: "100 USDC"},
		{Caption: "From", Value: ""},
		{Caption: "To", Value: ""},
	})
}

func TestGoldenSorobanInvokeWithoutPlugin(t *testing.T) {
	contract := make([]byte, 32)
	contract[0] = 0x11

	body := invokeHostFunctionOpBody(contract, "foo", [][]byte{
		scvU32(7), scvSymbol("bar"), scvBool(true),
	})
	raw := buildSingleOpEnvelope(make([]byte, 32), body)
	env, err := xdrparse.ParseEnvelope(raw)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	f := New(env, raw, nil, false, nil)
	got := walkAll(t, f)
	assertPairs(t, got, []Pair{
		{Caption: "Network", Value: "Testnet"},
		{Caption: "Max Fee", Value: "0.00001"},
		{Caption: "Source Account", Value: ""},
		{Caption: "Operation Type", Value: "Invoke Host Function"},
		{Caption: "Host Function", Value: "Invoke Contract"},
		{Caption: "Contract ID", Value: ""},
		{Caption: "Function", Value: "foo"},
		{Caption: "Arg 1 of 3", Value: "7"},
		{Caption: "Arg 2 of 3", Value: "bar"},
		{Caption: "Arg 3 of 3", Value: "true"},
	})
}
