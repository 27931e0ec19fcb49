package display

import (
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// AssetLabel renders an asset as "XLM" (native, on a recognized
// network), "native" (native, on an unrecognized network), or
// "CODE@GXX..XXX" (credit assets, issuer abbreviated to maxIssuerLen).
func AssetLabel(a xdrparse.Asset, network xdrparse.NetworkKind, maxIssuerLen int) (string, error) {
	if a.Type == xdrparse.AssetTypeNative {
		if network == xdrparse.NetworkUnknown {
			return "native", nil
		}
		return "XLM", nil
	}
	issuer, err := AccountID(a.Issuer, maxIssuerLen)
	if err != nil {
		return "", err
	}
	return string(a.Code) + "@" + issuer, nil
}

// ChangeTrustAssetLabel renders the asset union ChangeTrust accepts,
// including the liquidity-pool-by-parameters form as "A/B pool share".
func ChangeTrustAssetLabel(a xdrparse.ChangeTrustAsset, network xdrparse.NetworkKind, maxIssuerLen int) (string, error) {
	switch a.Type {
	case xdrparse.AssetTypeNative:
		return AssetLabel(xdrparse.Asset{Type: xdrparse.AssetTypeNative}, network, maxIssuerLen)
	case xdrparse.AssetTypePoolShare:
		aLabel, err := AssetLabel(a.Pool.AssetA, network, maxIssuerLen)
		if err != nil {
			return "", err
		}
		bLabel, err := AssetLabel(a.Pool.AssetB, network, maxIssuerLen)
		if err != nil {
			return "", err
		}
		return aLabel + "/" + bLabel + " pool share", nil
	default:
		issuer, err := AccountID(a.Issuer, maxIssuerLen)
		if err != nil {
			return "", err
		}
		return string(a.Code) + "@" + issuer, nil
	}
}

// TrustLineAssetLabel renders the asset union operations reference an
// existing trust line with, naming a pool by its raw 32-byte id.
func TrustLineAssetLabel(a xdrparse.TrustLineAsset, network xdrparse.NetworkKind, maxIssuerLen int) (string, error) {
	switch a.Type {
	case xdrparse.AssetTypeNative:
		return AssetLabel(xdrparse.Asset{Type: xdrparse.AssetTypeNative}, network, maxIssuerLen)
	case xdrparse.AssetTypePoolShare:
		return HexUpper(a.PoolID, 0), nil
	default:
		issuer, err := AccountID(a.Issuer, maxIssuerLen)
		if err != nil {
			return "", err
		}
		return string(a.Code) + "@" + issuer, nil
	}
}

// ClaimableBalanceID renders the 4-byte zero type tag followed by the
// 32-byte value as 72 chars of uppercase hex, matching the original's
// "type ∥ value" dump.
func ClaimableBalanceID(id xdrparse.ClaimableBalanceID) string {
	buf := make([]byte, 0, 4+len(id.Value))
	buf = append(buf, 0, 0, 0, 0)
	buf = append(buf, id.Value...)
	return HexUpper(buf, 0)
}
