// Package xdrparse decodes Stellar transaction envelopes, fee-bump
// wrappers, and Soroban authorization entries into views over the
// caller's input buffer. No decoded entity ever copies the bytes it
// describes or outlives the input slice it borrows from.
package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcursor"

// Domain-imposed maximums enforced by the parser (spec §5/§6).
const (
	MaxOperations     = 35
	MaxSubInvocations = 16
	MaxExtraSigners   = 2
	MaxClaimants      = 10
	MaxPathLength     = 5
	MaxContractArgs   = 10

	AssetCode4Length  = 4
	AssetCode12Length = 12
	MemoTextMaxSize   = 28
	DataNameMaxSize   = 64
	DataValueMaxSize  = 64
	HomeDomainMaxSize = 32
	ScvSymbolMaxSize  = 32

	RawPublicKeySize    = 32
	RawSignedPayloadMin = 1
	RawSignedPayloadMax = 64
	HashSize            = 32
)

// EnvelopeType is the top-level discriminant of an input buffer.
type EnvelopeType uint32

const (
	EnvelopeTypeTx           EnvelopeType = 2
	EnvelopeTypeTxFeeBump    EnvelopeType = 5
	EnvelopeTypeSorobanAuth  EnvelopeType = 9
	PublicKeyTypeEd25519     uint32       = 0
)

// NetworkKind identifies which well-known network a 32-byte network id
// hash corresponds to.
type NetworkKind uint8

const (
	NetworkPublic NetworkKind = iota
	NetworkTestnet
	NetworkUnknown
)

// MuxedAccountType discriminates between a plain Ed25519 key and a
// multiplexed account.
type MuxedAccountType uint32

const (
	CryptoKeyTypeEd25519             MuxedAccountType = 0
	CryptoKeyTypePreAuthTx           MuxedAccountType = 1
	CryptoKeyTypeHashX               MuxedAccountType = 2
	CryptoKeyTypeEd25519SignedPaylod MuxedAccountType = 3
	CryptoKeyTypeMuxedEd25519        MuxedAccountType = 0x100
)

// MuxedAccount is a tagged union over {plain Ed25519 key, multiplexed
// account}. Key is always the raw 32-byte Ed25519 public key; ID is
// populated only when Muxed is true.
type MuxedAccount struct {
	Type  MuxedAccountType
	Key   []byte // 32 bytes, borrowed
	ID    uint64
	Muxed bool
}

// SignerKeyType discriminates the four signer key variants.
type SignerKeyType uint32

const (
	SignerKeyTypeEd25519             SignerKeyType = 0
	SignerKeyTypePreAuthTx           SignerKeyType = 1
	SignerKeyTypeHashX               SignerKeyType = 2
	SignerKeyTypeEd25519SignedPaylod SignerKeyType = 3
)

// SignerKey is a tagged union over the four signer key kinds.
type SignerKey struct {
	Type    SignerKeyType
	Raw     []byte // 32 bytes for ed25519/pre-auth-tx/hash-x
	Payload []byte // signed-payload variant only, length in [1,64]
}

// Signer pairs a SignerKey with its weight.
type Signer struct {
	Key    SignerKey
	Weight uint32
}

// AssetType discriminates the four asset variants.
type AssetType uint32

const (
	AssetTypeNative          AssetType = 0
	AssetTypeCreditAlphanum4 AssetType = 1
	AssetTypeCreditAlphanum12 AssetType = 2
	AssetTypePoolShare       AssetType = 3
)

// Asset is a tagged union over {native, 4-char credit, 12-char credit,
// liquidity-pool share}. Code is the asset code without padding.
type Asset struct {
	Type       AssetType
	Code       []byte
	Issuer     []byte // 32-byte raw key, borrowed
	PoolID     []byte // 32 bytes, only for AssetTypePoolShare
}

// LiquidityPoolType enumerates pool kinds; only constant-product exists
// today.
type LiquidityPoolType uint32

const LiquidityPoolConstantProduct LiquidityPoolType = 0

// LiquidityPoolParameters describes a constant-product pool at
// trust-line-creation time.
type LiquidityPoolParameters struct {
	Type    LiquidityPoolType
	AssetA  Asset
	AssetB  Asset
	FeeBps  int32
}

// ChangeTrustAsset extends Asset with the ability to name a liquidity
// pool by its full parameters (used only by ChangeTrust).
type ChangeTrustAsset struct {
	Type   AssetType
	Code   []byte
	Issuer []byte
	Pool   LiquidityPoolParameters
}

// TrustLineAsset extends Asset with the ability to name a liquidity
// pool by its 32-byte id alone.
type TrustLineAsset struct {
	Type   AssetType
	Code   []byte
	Issuer []byte
	PoolID []byte
}

// Price is a numerator/denominator pair; Denominator is never zero in
// a successfully parsed value.
type Price struct {
	N int32
	D int32
}

// MemoType discriminates the five memo variants.
type MemoType uint32

const (
	MemoTypeNone   MemoType = 0
	MemoTypeText   MemoType = 1
	MemoTypeID     MemoType = 2
	MemoTypeHash   MemoType = 3
	MemoTypeReturn MemoType = 4
)

// Memo is a tagged union over the five memo kinds.
type Memo struct {
	Type MemoType
	ID   uint64
	Text []byte // borrowed, <= MemoTextMaxSize bytes
	Hash []byte // borrowed, 32 bytes (Hash or Return variant)
}

// TimeBounds is a [MinTime, MaxTime] validity window; MaxTime of 0
// means unbounded.
type TimeBounds struct {
	MinTime uint64
	MaxTime uint64
}

// LedgerBounds is a [MinLedger, MaxLedger] validity window.
type LedgerBounds struct {
	MinLedger uint32
	MaxLedger uint32
}

// Preconditions collects the optional gates controlling when a
// transaction may be applied. Either all "v2" fields are absent
// (legacy precondition) or the full record is present with individual
// sub-fields optional.
type Preconditions struct {
	TimeBoundsPresent   bool
	TimeBounds          TimeBounds
	LedgerBoundsPresent bool
	LedgerBounds        LedgerBounds
	MinSeqNumPresent    bool
	MinSeqNum           int64
	MinSeqAge           uint64
	MinSeqLedgerGap     uint32
	ExtraSigners        []SignerKey // length <= MaxExtraSigners
}

// Cursor is the shared alias used throughout the parser packages.
type Cursor = xdrcursor.Cursor
