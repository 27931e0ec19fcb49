package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

func readAssetCode(c *Cursor, n int) ([]byte, error) {
	raw, err := c.ReadExact(n)
	if err != nil {
		return nil, err
	}
	// Trim trailing NUL padding; the wire format right-pads codes
	// shorter than the fixed field width with zero bytes.
	end := len(raw)
	for end > 0 && raw[end-1] == 0 {
		end--
	}
	return raw[:end:end], nil
}

// ParseAsset decodes the classic {native, alphanum4, alphanum12,
// liquidity-pool-share} union.
func ParseAsset(c *Cursor) (Asset, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return Asset{}, err
	}
	switch AssetType(tag) {
	case AssetTypeNative:
		return Asset{Type: AssetTypeNative}, nil
	case AssetTypeCreditAlphanum4:
		code, err := readAssetCode(c, AssetCode4Length)
		if err != nil {
			return Asset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Type: AssetTypeCreditAlphanum4, Code: code, Issuer: issuer}, nil
	case AssetTypeCreditAlphanum12:
		code, err := readAssetCode(c, AssetCode12Length)
		if err != nil {
			return Asset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Type: AssetTypeCreditAlphanum12, Code: code, Issuer: issuer}, nil
	case AssetTypePoolShare:
		poolID, err := c.ReadExact(HashSize)
		if err != nil {
			return Asset{}, err
		}
		return Asset{Type: AssetTypePoolShare, PoolID: poolID}, nil
	default:
		return Asset{}, ErrMalformedInput
	}
}

// ParseLiquidityPoolParameters decodes a constant-product pool
// description: two nested assets and a basis-point fee.
func ParseLiquidityPoolParameters(c *Cursor) (LiquidityPoolParameters, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return LiquidityPoolParameters{}, err
	}
	if LiquidityPoolType(tag) != LiquidityPoolConstantProduct {
		return LiquidityPoolParameters{}, ErrMalformedInput
	}
	a, err := ParseAsset(c)
	if err != nil {
		return LiquidityPoolParameters{}, err
	}
	b, err := ParseAsset(c)
	if err != nil {
		return LiquidityPoolParameters{}, err
	}
	fee, err := xdrcodec.Int32(c)
	if err != nil {
		return LiquidityPoolParameters{}, err
	}
	return LiquidityPoolParameters{Type: LiquidityPoolConstantProduct, AssetA: a, AssetB: b, FeeBps: fee}, nil
}

// ParseChangeTrustAsset decodes the asset union accepted by ChangeTrust,
// which additionally allows naming a pool by its full parameters.
func ParseChangeTrustAsset(c *Cursor) (ChangeTrustAsset, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return ChangeTrustAsset{}, err
	}
	switch AssetType(tag) {
	case AssetTypeNative:
		return ChangeTrustAsset{Type: AssetTypeNative}, nil
	case AssetTypeCreditAlphanum4:
		code, err := readAssetCode(c, AssetCode4Length)
		if err != nil {
			return ChangeTrustAsset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return ChangeTrustAsset{}, err
		}
		return ChangeTrustAsset{Type: AssetTypeCreditAlphanum4, Code: code, Issuer: issuer}, nil
	case AssetTypeCreditAlphanum12:
		code, err := readAssetCode(c, AssetCode12Length)
		if err != nil {
			return ChangeTrustAsset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return ChangeTrustAsset{}, err
		}
		return ChangeTrustAsset{Type: AssetTypeCreditAlphanum12, Code: code, Issuer: issuer}, nil
	case AssetTypePoolShare:
		pool, err := ParseLiquidityPoolParameters(c)
		if err != nil {
			return ChangeTrustAsset{}, err
		}
		return ChangeTrustAsset{Type: AssetTypePoolShare, Pool: pool}, nil
	default:
		return ChangeTrustAsset{}, ErrMalformedInput
	}
}

// ParseTrustLineAsset decodes the asset union used by operations that
// reference an existing trust line, which names a pool by its 32-byte
// id alone.
func ParseTrustLineAsset(c *Cursor) (TrustLineAsset, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return TrustLineAsset{}, err
	}
	switch AssetType(tag) {
	case AssetTypeNative:
		return TrustLineAsset{Type: AssetTypeNative}, nil
	case AssetTypeCreditAlphanum4:
		code, err := readAssetCode(c, AssetCode4Length)
		if err != nil {
			return TrustLineAsset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return TrustLineAsset{}, err
		}
		return TrustLineAsset{Type: AssetTypeCreditAlphanum4, Code: code, Issuer: issuer}, nil
	case AssetTypeCreditAlphanum12:
		code, err := readAssetCode(c, AssetCode12Length)
		if err != nil {
			return TrustLineAsset{}, err
		}
		issuer, err := ParseAccountID(c)
		if err != nil {
			return TrustLineAsset{}, err
		}
		return TrustLineAsset{Type: AssetTypeCreditAlphanum12, Code: code, Issuer: issuer}, nil
	case AssetTypePoolShare:
		id, err := c.ReadExact(HashSize)
		if err != nil {
			return TrustLineAsset{}, err
		}
		return TrustLineAsset{Type: AssetTypePoolShare, PoolID: id}, nil
	default:
		return TrustLineAsset{}, ErrMalformedInput
	}
}

// ParsePrice decodes a numerator/denominator pair and rejects a zero
// denominator.
func ParsePrice(c *Cursor) (Price, error) {
	n, err := xdrcodec.Int32(c)
	if err != nil {
		return Price{}, err
	}
	d, err := xdrcodec.Int32(c)
	if err != nil {
		return Price{}, err
	}
	if d == 0 {
		return Price{}, ErrMalformedInput
	}
	return Price{N: n, D: d}, nil
}
