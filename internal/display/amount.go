package display

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// NativeDecimals is the fixed scale of the network's native asset.
const NativeDecimals = 7

// Amount renders a 64-bit raw integer value scaled by decimalPlaces
// fractional digits, with thousands separators and trailing fractional
// zeros stripped. It never returns an error: amounts this module
// formats are always ASCII and within the formatter's widest value
// buffer once an asset-label suffix budget is reserved by the caller.
func Amount(raw int64, decimalPlaces int32) string {
	return AmountFromBigInt(big.NewInt(raw), decimalPlaces)
}

// AmountFromBigInt renders an arbitrary-precision raw integer (used for
// Soroban i128/i256 token amounts) the same way Amount does.
func AmountFromBigInt(raw *big.Int, decimalPlaces int32) string {
	d := decimal.NewFromBigInt(raw, -decimalPlaces)
	fixed := d.StringFixed(decimalPlaces)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
	}

	intPart = insertThousands(intPart)

	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(intPart)
	if fracPart != "" {
		out.WriteByte('.')
		out.WriteString(fracPart)
	}
	return out.String()
}

func insertThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var out strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	out.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		out.WriteByte(',')
		out.WriteString(digits[i : i+3])
	}
	return out.String()
}

// Price renders a numerator/denominator pair as a decimal string
// scaled to preserve up to 7 fractional digits.
func Price(n, d int32) string {
	num := decimal.NewFromInt32(n)
	den := decimal.NewFromInt32(d)
	q := num.DivRound(den, NativeDecimals)
	s := q.String()
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	intPart = insertThousands(intPart)
	if hasFrac {
		fracPart = strings.TrimRight(fracPart, "0")
	}
	var out strings.Builder
	if neg {
		out.WriteByte('-')
	}
	out.WriteString(intPart)
	if fracPart != "" {
		out.WriteByte('.')
		out.WriteString(fracPart)
	}
	return out.String()
}

// PriceRatio renders a numerator/denominator pair as "n/d", the form
// the formatter uses for the price of offer-related operations.
func PriceRatio(n, d int32) string {
	return decimal.NewFromInt32(n).String() + "/" + decimal.NewFromInt32(d).String()
}
