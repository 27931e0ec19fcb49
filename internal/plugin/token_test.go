package plugin

import (
	"testing"

	"github.com/withobsrvr/txscan/internal/xdrparse"
)

func addressArg() xdrparse.SCVal {
	return xdrparse.SCVal{
		Type: xdrparse.SCValAddress,
		Address: xdrparse.SCAddress{
			Type: xdrparse.SCAddressTypeAccount,
			Raw:  make([]byte, 32),
		},
	}
}

func i128Arg(hi int64, lo uint64) xdrparse.SCVal {
	return xdrparse.SCVal{Type: xdrparse.SCValI128, I128Hi: hi, I128Lo: lo}
}

func TestTokenPluginTransfer(t *testing.T) {
	p := &TokenPlugin{Suffix: "USDC"}
	args := []xdrparse.SCVal{addressArg(), addressArg(), i128Arg(0, 1000000000)}

	status, err := p.InitContract("CABC", "transfer", args)
	if err != nil || status != StatusOK {
		t.Fatalf("expected StatusOK, got %v err=%v", status, err)
	}

	count, err := p.QueryPairCount()
	if err != nil || count != 3 {
		t.Fatalf("expected 3 pairs, got %d err=%v", count, err)
	}

	caption, value, err := p.QueryPair(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caption != "Transfer" {
		t.Fatalf("expected caption Transfer, got %q", caption)
	}
	if value != "100 USDC" {
		t.Fatalf("unexpected amount rendering: %q", value)
	}
}

func TestTokenPluginApprove(t *testing.T) {
	p := &TokenPlugin{}
	args := []xdrparse.SCVal{
		addressArg(), addressArg(), i128Arg(0, 500000000),
		{Type: xdrparse.SCValU32, U32: 123456},
	}

	status, err := p.InitContract("CABC", "approve", args)
	if err != nil || status != StatusOK {
		t.Fatalf("expected StatusOK, got %v err=%v", status, err)
	}

	count, err := p.QueryPairCount()
	if err != nil || count != 4 {
		t.Fatalf("expected 4 pairs, got %d err=%v", count, err)
	}

	caption, value, err := p.QueryPair(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if caption != "Live Until Ledger" {
		t.Fatalf("expected caption Live Until Ledger, got %q", caption)
	}
	if value != "123456" {
		t.Fatalf("unexpected ledger rendering: %q", value)
	}
}

func TestTokenPluginRejectsUnknownArgCount(t *testing.T) {
	p := &TokenPlugin{}
	args := []xdrparse.SCVal{addressArg(), addressArg()}

	status, err := p.InitContract("CABC", "transfer", args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != StatusUnavailable {
		t.Fatalf("expected StatusUnavailable for wrong arg count, got %v", status)
	}

	if _, err := p.QueryPairCount(); err != ErrPluginError {
		t.Fatalf("expected ErrPluginError before a successful InitContract, got %v", err)
	}
}

func TestTokenPluginNegativeAmount(t *testing.T) {
	p := &TokenPlugin{}
	args := []xdrparse.SCVal{addressArg(), addressArg(), i128Arg(-1, 0xFFFFFFFFFFFFFFFF)}

	if status, err := p.InitContract("CABC", "transfer", args); err != nil || status != StatusOK {
		t.Fatalf("expected StatusOK, got %v err=%v", status, err)
	}

	_, value, err := p.QueryPair(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "-0.0000001" {
		t.Fatalf("expected -0.0000001 for a raw value of -1, got %q", value)
	}
}

func TestRegistryFindReturnsFirstMatch(t *testing.T) {
	tp := &TokenPlugin{}
	r := NewRegistry(tp)
	if got := r.Find("CANYTHING"); got != tp {
		t.Fatalf("expected registry to return the registered plugin, got %v", got)
	}

	var nilRegistry *Registry
	if got := nilRegistry.Find("CANYTHING"); got != nil {
		t.Fatalf("expected nil registry to return nil, got %v", got)
	}
}
