package plugin

import (
	"math/big"

	"github.com/withobsrvr/txscan/internal/display"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// TokenPlugin renders calls matching the SEP-41 fungible-token
// interface: transfer(from, to, amount) and approve(from, spender,
// amount, live_until_ledger). It recognizes calls by function name and
// argument count rather than by a curated contract-id allowlist, since
// this core has no channel to fetch a signed asset list; callers who
// need real allowlisting should wrap Find's result with their own
// CheckPresence gate before registering a TokenPlugin instance.
type TokenPlugin struct {
	Suffix string // asset code suffix appended to the amount, e.g. "USDC"

	call tokenCall
}

type tokenCall struct {
	function string
	args     []xdrparse.SCVal
	ok       bool
}

func (p *TokenPlugin) CheckPresence(contractID string) bool {
	return true
}

func (p *TokenPlugin) InitContract(contractID, function string, args []xdrparse.SCVal) (Status, error) {
	switch function {
	case "transfer":
		if len(args) != 3 {
			return StatusUnavailable, nil
		}
	case "approve":
		if len(args) != 4 {
			return StatusUnavailable, nil
		}
	default:
		return StatusUnavailable, nil
	}
	p.call = tokenCall{function: function, args: args, ok: true}
	return StatusOK, nil
}

func (p *TokenPlugin) QueryPairCount() (int, error) {
	if !p.call.ok {
		return 0, ErrPluginError
	}
	switch p.call.function {
	case "transfer":
		return 3, nil
	case "approve":
		return 4, nil
	default:
		return 0, ErrPluginError
	}
}

func (p *TokenPlugin) QueryPair(index int) (string, string, error) {
	if !p.call.ok {
		return "", "", ErrPluginError
	}
	switch p.call.function {
	case "transfer":
		return p.transferPair(index)
	case "approve":
		return p.approvePair(index)
	default:
		return "", "", ErrPluginError
	}
}

func (p *TokenPlugin) transferPair(index int) (string, string, error) {
	args := p.call.args
	switch index {
	case 0:
		return "Transfer", p.amountOf(args[2]), nil
	case 1:
		return "From", addressOf(args[0]), nil
	case 2:
		return "To", addressOf(args[1]), nil
	default:
		return "", "", ErrPluginError
	}
}

func (p *TokenPlugin) approvePair(index int) (string, string, error) {
	args := p.call.args
	switch index {
	case 0:
		return "From", addressOf(args[0]), nil
	case 1:
		return "Spender", addressOf(args[1]), nil
	case 2:
		return "Amount", p.amountOf(args[2]), nil
	case 3:
		return "Live Until Ledger", display.UInt32(uint32(args[3].U32), false), nil
	default:
		return "", "", ErrPluginError
	}
}

func addressOf(v xdrparse.SCVal) string {
	if v.Type != xdrparse.SCValAddress {
		return "<unexpected argument>"
	}
	s, err := display.SCAddress(v.Address, 0)
	if err != nil {
		return "<unexpected argument>"
	}
	return s
}

// amountOf renders a token amount, an i128 in SEP-41, scaled by the
// token's own declared decimals. This core does not fetch a contract's
// decimals from the ledger, so it assumes the common 7-decimal scale
// shared with the native asset and appends the configured code suffix.
func (p *TokenPlugin) amountOf(v xdrparse.SCVal) string {
	if v.Type != xdrparse.SCValI128 {
		return "<unexpected argument>"
	}
	raw := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(v.I128Hi)), 64)
	raw.Or(raw, new(big.Int).SetUint64(v.I128Lo))
	if v.I128Hi < 0 {
		mod := new(big.Int).Lsh(big.NewInt(1), 128)
		raw.Sub(raw, mod)
	}
	amount := display.AmountFromBigInt(raw, display.NativeDecimals)
	if p.Suffix == "" {
		return amount
	}
	return amount + " " + p.Suffix
}
