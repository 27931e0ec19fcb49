package formatter

import (
	"fmt"

	"github.com/withobsrvr/txscan/internal/display"
	"github.com/withobsrvr/txscan/internal/plugin"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

func hostFunctionTypeName(t xdrparse.HostFunctionType) string {
	switch t {
	case xdrparse.HostFunctionInvokeContract:
		return "Invoke Contract"
	case xdrparse.HostFunctionCreateContract:
		return "Create Contract"
	case xdrparse.HostFunctionUploadContractWasm:
		return "Upload Wasm"
	default:
		return "Unknown"
	}
}

func authorizedFunctionTypeName(t xdrparse.SorobanAuthorizedFunctionType) string {
	switch t {
	case xdrparse.SorobanAuthorizedFunctionContractFn:
		return "Invoke Contract"
	case xdrparse.SorobanAuthorizedFunctionCreateContractHost:
		return "Create Contract"
	default:
		return "Unknown"
	}
}

// buildInvokeContractFields renders a single contract call: its
// address and function, then either a known plugin's domain-specific
// rendering of the arguments or a generic per-argument dump.
func (f *Formatter) buildInvokeContractFields(args xdrparse.InvokeContractArgs) ([]Pair, error) {
	contractAddr, err := display.SCAddress(args.Contract, 0)
	if err != nil {
		return nil, err
	}
	fn := string(args.FunctionName)

	out := []Pair{
		pair("Contract ID", contractAddr),
		pair("Function", fn),
	}

	decoded := make([]xdrparse.SCVal, args.ParamCount)
	for i := uint32(0); i < args.ParamCount; i++ {
		v, err := xdrparse.ParamAt(f.newCursor(), args, i)
		if err != nil {
			return nil, err
		}
		decoded[i] = v
	}

	if p := f.registry.Find(contractAddr); p != nil {
		if pluginPairs, ok, err := renderWithPlugin(p, contractAddr, fn, decoded); err != nil {
			return nil, err
		} else if ok {
			return append(out, pluginPairs...), nil
		}
	}

	for i, v := range decoded {
		out = append(out, pair(fmt.Sprintf("Arg %d of %d", i+1, args.ParamCount), scvalSummary(v)))
	}
	return out, nil
}

// renderWithPlugin asks p to render the call; ok is false when the
// plugin declines (StatusUnavailable) or errors, telling the caller to
// fall back to the generic dump instead of surfacing an unverified
// rendering.
func renderWithPlugin(p plugin.Plugin, contractID, function string, args []xdrparse.SCVal) ([]Pair, bool, error) {
	status, err := p.InitContract(contractID, function, args)
	if err != nil || status != plugin.StatusOK {
		return nil, false, nil
	}
	count, err := p.QueryPairCount()
	if err != nil {
		return nil, false, nil
	}
	pairs := make([]Pair, 0, count)
	for i := 0; i < count; i++ {
		caption, value, err := p.QueryPair(i)
		if err != nil {
			return nil, false, nil
		}
		pairs = append(pairs, pair(caption, value))
	}
	return pairs, true, nil
}

func scvalSummary(v xdrparse.SCVal) string {
	switch v.Type {
	case xdrparse.SCValBool:
		if v.B {
			return "true"
		}
		return "false"
	case xdrparse.SCValVoid:
		return "void"
	case xdrparse.SCValU32:
		return display.UInt32(v.U32, false)
	case xdrparse.SCValI32:
		return display.Int32(v.I32, false)
	case xdrparse.SCValU64, xdrparse.SCValTimepoint, xdrparse.SCValDuration:
		return display.UInt64(v.U64, false)
	case xdrparse.SCValI64:
		return display.Int64(v.I64, false)
	case xdrparse.SCValU128:
		return display.UInt128(v.U128Hi, v.U128Lo, false)
	case xdrparse.SCValI128:
		return display.Int128(v.I128Hi, v.I128Lo, false)
	case xdrparse.SCValU256:
		return display.UInt256(v.U256.HiHi, v.U256.HiLo, v.U256.LoHi, v.U256.LoLo, false)
	case xdrparse.SCValI256:
		return display.Int256(v.I256.HiHi, v.I256.HiLo, v.I256.LoHi, v.I256.LoLo, false)
	case xdrparse.SCValBytes:
		return display.HexUpper(v.Bytes, MaxValueLen)
	case xdrparse.SCValString:
		return display.MemoTextValue(v.Str)
	case xdrparse.SCValSymbol:
		return string(v.Sym)
	case xdrparse.SCValAddress:
		s, err := display.SCAddress(v.Address, 0)
		if err != nil {
			return "<unrenderable address>"
		}
		return s
	default:
		return "<complex value>"
	}
}

func (f *Formatter) buildAuthorizedFunctionFields(fnType xdrparse.SorobanAuthorizedFunctionType, args xdrparse.InvokeContractArgs) ([]Pair, error) {
	out := []Pair{pair("Auth Function", authorizedFunctionTypeName(fnType))}
	if fnType != xdrparse.SorobanAuthorizedFunctionContractFn {
		return out, nil
	}
	fields, err := f.buildInvokeContractFields(args)
	if err != nil {
		return nil, err
	}
	return append(out, fields...), nil
}

func (f *Formatter) buildSubInvocationFields(positions []int, count int) ([]Pair, error) {
	var out []Pair
	for i, pos := range positions {
		out = append(out, pair("Nested Authorization", fmt.Sprintf("%d of %d", i+1, count)))
		fnType, args, err := xdrparse.ReparseSubInvocationAt(f.newCursor(), pos)
		if err != nil {
			return nil, err
		}
		fields, err := f.buildAuthorizedFunctionFields(fnType, args)
		if err != nil {
			return nil, err
		}
		out = append(out, fields...)
	}
	return out, nil
}

func (f *Formatter) buildInvokeHostFunctionFields(op xdrparse.InvokeHostFunctionOp) ([]Pair, error) {
	out := []Pair{pair("Host Function", hostFunctionTypeName(op.HostFunctionType))}
	if op.HostFunctionType == xdrparse.HostFunctionInvokeContract {
		fields, err := f.buildInvokeContractFields(op.InvokeContract)
		if err != nil {
			return nil, err
		}
		out = append(out, fields...)
	}
	subPairs, err := f.buildSubInvocationFields(op.SubInvocationPosns, op.SubInvocationCount)
	if err != nil {
		return nil, err
	}
	return append(out, subPairs...), nil
}
