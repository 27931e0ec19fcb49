package display

import "math/big"

// Int32/UInt32/Int64/UInt64 render fixed-width integers as plain
// decimal strings with optional thousands separators.
func Int32(v int32, thousands bool) string  { return intString(big.NewInt(int64(v)), thousands) }
func UInt32(v uint32, thousands bool) string { return intString(new(big.Int).SetUint64(uint64(v)), thousands) }
func Int64(v int64, thousands bool) string  { return intString(big.NewInt(v), thousands) }
func UInt64(v uint64, thousands bool) string { return intString(new(big.Int).SetUint64(v), thousands) }

// UInt128 reassembles an unsigned 128-bit value from its big-endian
// high/low 64-bit limbs and renders it as decimal.
func UInt128(hi, lo uint64, thousands bool) string {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	return intString(v, thousands)
}

// Int128 reassembles a signed 128-bit value; hi carries the sign in
// two's-complement form.
func Int128(hi int64, lo uint64, thousands bool) string {
	if hi >= 0 {
		return UInt128(uint64(hi), lo, thousands)
	}
	// Two's complement: negate the 128-bit magnitude.
	v := new(big.Int).Lsh(new(big.Int).SetUint64(uint64(hi)), 64)
	v.Or(v, new(big.Int).SetUint64(lo))
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	v.Sub(v, mod)
	return intString(v, thousands)
}

// UInt256 reassembles an unsigned 256-bit value from four big-endian
// 64-bit limbs.
func UInt256(hihi, hilo, lohi, lolo uint64, thousands bool) string {
	v := new(big.Int).SetUint64(hihi)
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(hilo))
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(lohi))
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(lolo))
	return intString(v, thousands)
}

// Int256 reassembles a signed 256-bit value; hihi carries the sign in
// two's-complement form.
func Int256(hihi int64, hilo, lohi, lolo uint64, thousands bool) string {
	if hihi >= 0 {
		return UInt256(uint64(hihi), hilo, lohi, lolo, thousands)
	}
	v := new(big.Int).SetUint64(uint64(hihi))
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(hilo))
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(lohi))
	v.Lsh(v, 64).Or(v, new(big.Int).SetUint64(lolo))
	mod := new(big.Int).Lsh(big.NewInt(1), 256)
	v.Sub(v, mod)
	return intString(v, thousands)
}

func intString(v *big.Int, thousands bool) string {
	s := v.String()
	if !thousands {
		return s
	}
	neg := s[0] == '-'
	digits := s
	if neg {
		digits = s[1:]
	}
	out := insertThousands(digits)
	if neg {
		return "-" + out
	}
	return out
}
