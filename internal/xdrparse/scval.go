package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// maxSCValDepth bounds recursion over vec/map/contract-instance
// nesting. Predicate and SCVal trees are not retained in memory, so
// this guard exists only to stop pathological input from recursing
// without limit; ordinary fixtures nest only a few levels deep.
const maxSCValDepth = 32

// SkipSCVal advances the cursor over one SCVal, including any nested
// vec/map contents, without materializing it. It is how the formatter
// walks past arguments it isn't currently displaying.
func SkipSCVal(c *Cursor) error {
	return skipSCVal(c, 0)
}

func skipSCVal(c *Cursor, depth int) error {
	if depth > maxSCValDepth {
		return ErrMalformedInput
	}
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	switch SCValType(tag) {
	case SCValBool:
		_, err := xdrcodec.Bool(c)
		return err
	case SCValVoid, SCValLedgerKeyContractInstance:
		return nil
	case SCValError:
		if _, err := xdrcodec.Uint32(c); err != nil {
			return err
		}
		_, err := xdrcodec.Uint32(c)
		return err
	case SCValU32, SCValI32:
		_, err := xdrcodec.Uint32(c)
		return err
	case SCValU64, SCValI64, SCValTimepoint, SCValDuration:
		_, err := xdrcodec.Uint64(c)
		return err
	case SCValU128:
		return c.Advance(16)
	case SCValI128:
		return c.Advance(16)
	case SCValU256, SCValI256:
		return c.Advance(32)
	case SCValBytes, SCValString:
		_, err := xdrcodec.BytesPadded(c, 0)
		return err
	case SCValSymbol:
		_, err := xdrcodec.BytesPadded(c, ScvSymbolMaxSize)
		return err
	case SCValVec:
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		for i := uint32(0); i < n; i++ {
			if err := skipSCVal(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case SCValMap:
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		for i := uint32(0); i < n; i++ {
			if err := skipSCVal(c, depth+1); err != nil {
				return err
			}
			if err := skipSCVal(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case SCValAddress:
		_, err := ParseSCAddress(c)
		return err
	case SCValContractInstance:
		execTag, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		if execTag == 0 { // wasm
			if err := c.Advance(HashSize); err != nil {
				return err
			}
		}
		// storage: optional(SCMap)
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return err
		}
		if present {
			n, err := xdrcodec.Uint32(c)
			if err != nil {
				return err
			}
			for i := uint32(0); i < n; i++ {
				if err := skipSCVal(c, depth+1); err != nil {
					return err
				}
				if err := skipSCVal(c, depth+1); err != nil {
					return err
				}
			}
		}
		return nil
	case SCValLedgerKeyNonce:
		_, err := xdrcodec.Int64(c)
		return err
	default:
		return ErrMalformedInput
	}
}

// ParseSCAddress decodes the {account, contract} address union.
func ParseSCAddress(c *Cursor) (SCAddress, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return SCAddress{}, err
	}
	switch SCAddressType(tag) {
	case SCAddressTypeAccount:
		raw, err := ParseAccountID(c)
		if err != nil {
			return SCAddress{}, err
		}
		return SCAddress{Type: SCAddressTypeAccount, Raw: raw}, nil
	case SCAddressTypeContract:
		raw, err := c.ReadExact(HashSize)
		if err != nil {
			return SCAddress{}, err
		}
		return SCAddress{Type: SCAddressTypeContract, Raw: raw}, nil
	default:
		return SCAddress{}, ErrMalformedInput
	}
}

// DecodeSCVal fully decodes one SCVal, including nested containers. The
// formatter calls this only for the single argument it is about to
// display, after skipping to it with SkipSCVal.
func DecodeSCVal(c *Cursor) (SCVal, error) {
	return decodeSCVal(c, 0)
}

func decodeSCVal(c *Cursor, depth int) (SCVal, error) {
	if depth > maxSCValDepth {
		return SCVal{}, ErrMalformedInput
	}
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return SCVal{}, err
	}
	t := SCValType(tag)
	switch t {
	case SCValBool:
		b, err := xdrcodec.Bool(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, B: b}, nil
	case SCValVoid, SCValLedgerKeyContractInstance:
		return SCVal{Type: t}, nil
	case SCValError:
		errType, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		code, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, ErrorIsContractCode: errType == 0, ErrorCode: code}, nil
	case SCValU32:
		v, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, U32: v}, nil
	case SCValI32:
		v, err := xdrcodec.Int32(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, I32: v}, nil
	case SCValU64, SCValTimepoint, SCValDuration:
		v, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, U64: v}, nil
	case SCValI64:
		v, err := xdrcodec.Int64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, I64: v}, nil
	case SCValU128:
		hi, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		lo, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, U128Hi: hi, U128Lo: lo}, nil
	case SCValI128:
		hi, err := xdrcodec.Int64(c)
		if err != nil {
			return SCVal{}, err
		}
		lo, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, I128Hi: hi, I128Lo: lo}, nil
	case SCValU256:
		hh, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		hl, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		lh, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		ll, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, U256: U256{hh, hl, lh, ll}}, nil
	case SCValI256:
		hh, err := xdrcodec.Int64(c)
		if err != nil {
			return SCVal{}, err
		}
		hl, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		lh, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		ll, err := xdrcodec.Uint64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, I256: I256{hh, hl, lh, ll}}, nil
	case SCValBytes:
		b, err := xdrcodec.BytesPadded(c, 0)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, Bytes: b}, nil
	case SCValString:
		s, err := xdrcodec.BytesPadded(c, 0)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, Str: s}, nil
	case SCValSymbol:
		s, err := xdrcodec.BytesPadded(c, ScvSymbolMaxSize)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, Sym: s}, nil
	case SCValVec:
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return SCVal{}, err
		}
		if !present {
			return SCVal{Type: t}, nil
		}
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		vec := make([]SCVal, n)
		for i := range vec {
			vec[i], err = decodeSCVal(c, depth+1)
			if err != nil {
				return SCVal{}, err
			}
		}
		return SCVal{Type: t, Vec: vec}, nil
	case SCValMap:
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return SCVal{}, err
		}
		if !present {
			return SCVal{Type: t}, nil
		}
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		m := make([]SCMapEntry, n)
		for i := range m {
			m[i].Key, err = decodeSCVal(c, depth+1)
			if err != nil {
				return SCVal{}, err
			}
			m[i].Val, err = decodeSCVal(c, depth+1)
			if err != nil {
				return SCVal{}, err
			}
		}
		return SCVal{Type: t, Map: m}, nil
	case SCValAddress:
		addr, err := ParseSCAddress(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, Address: addr}, nil
	case SCValContractInstance:
		execTag, err := xdrcodec.Uint32(c)
		if err != nil {
			return SCVal{}, err
		}
		v := SCVal{Type: t, ContractExecutableIsWasm: execTag == 0}
		if execTag == 0 {
			hash, err := c.ReadExact(HashSize)
			if err != nil {
				return SCVal{}, err
			}
			v.ContractExecutableHash = hash
		}
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return SCVal{}, err
		}
		if present {
			n, err := xdrcodec.Uint32(c)
			if err != nil {
				return SCVal{}, err
			}
			m := make([]SCMapEntry, n)
			for i := range m {
				m[i].Key, err = decodeSCVal(c, depth+1)
				if err != nil {
					return SCVal{}, err
				}
				m[i].Val, err = decodeSCVal(c, depth+1)
				if err != nil {
					return SCVal{}, err
				}
			}
			v.Map = m
		}
		return v, nil
	case SCValLedgerKeyNonce:
		n, err := xdrcodec.Int64(c)
		if err != nil {
			return SCVal{}, err
		}
		return SCVal{Type: t, NonceValue: n}, nil
	default:
		return SCVal{}, ErrMalformedInput
	}
}
