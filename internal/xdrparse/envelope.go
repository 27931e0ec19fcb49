package xdrparse

import (
	"crypto/sha256"

	"github.com/withobsrvr/txscan/internal/xdrcodec"
	"github.com/withobsrvr/txscan/internal/xdrcursor"
)

// Well-known network passphrases, hashed once at package initialization
// for ID comparisons.
// These are public constants of the network itself, not secrets.
const (
	publicNetworkPassphrase  = "Public Global Stellar Network ; September 2015"
	testnetNetworkPassphrase = "Test SDF Network ; September 2015"
)

var (
	publicNetworkHash  = sha256.Sum256([]byte(publicNetworkPassphrase))
	testnetNetworkHash = sha256.Sum256([]byte(testnetNetworkPassphrase))
)

// IdentifyNetwork classifies a 32-byte network id hash against the two
// well-known networks. Any other value is NetworkUnknown; the caller
// decides whether to still display with a "this network is unrecognized"
// warning or refuse outright.
func IdentifyNetwork(hash []byte) NetworkKind {
	if len(hash) != HashSize {
		return NetworkUnknown
	}
	if [32]byte(hash) == publicNetworkHash {
		return NetworkPublic
	}
	if [32]byte(hash) == testnetNetworkHash {
		return NetworkTestnet
	}
	return NetworkUnknown
}

// FeeBumpDetails is the decoded header of a FeeBumpTransaction wrapping
// an inner Transaction.
type FeeBumpDetails struct {
	FeeSource MuxedAccount
	Fee       int64
	Inner     TransactionDetails
}

// Envelope is the fully decoded view of one input buffer: a network id
// hash, a type discriminant, and exactly one of Tx, FeeBump, or
// SorobanAuth populated according to Type.
type Envelope struct {
	NetworkHash []byte
	Network     NetworkKind
	Type        EnvelopeType

	Tx          TransactionDetails
	FeeBump     FeeBumpDetails
	SorobanAuth SorobanAuthorization
}

// ParseEnvelope decodes the top-level signature-payload framing shared
// by every input this package accepts: a 32-byte network id hash
// followed by a u32 type tag selecting a plain transaction, a fee-bump
// transaction, or a standalone Soroban authorization entry. Any other
// tag, including the historical ENVELOPE_TYPE_TX_V0 (0), is rejected:
// only the current transaction encoding is supported.
func ParseEnvelope(buf []byte) (Envelope, error) {
	c := xdrcursor.New(buf)
	return parseEnvelope(&c)
}

func parseEnvelope(c *Cursor) (Envelope, error) {
	hash, err := c.ReadExact(HashSize)
	if err != nil {
		return Envelope{}, err
	}
	env := Envelope{NetworkHash: hash, Network: IdentifyNetwork(hash)}

	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return Envelope{}, err
	}
	env.Type = EnvelopeType(tag)

	switch env.Type {
	case EnvelopeTypeTx:
		tx, err := ParseTransaction(c)
		if err != nil {
			return Envelope{}, err
		}
		if err := skipDecoratedSignatures(c); err != nil {
			return Envelope{}, err
		}
		env.Tx = tx
		return env, nil

	case EnvelopeTypeTxFeeBump:
		fb, err := parseFeeBumpTransaction(c)
		if err != nil {
			return Envelope{}, err
		}
		env.FeeBump = fb
		return env, nil

	case EnvelopeTypeSorobanAuth:
		auth, err := ParseSorobanAuthorization(c)
		if err != nil {
			return Envelope{}, err
		}
		env.SorobanAuth = auth
		return env, nil

	default:
		return Envelope{}, ErrMalformedInput
	}
}

func parseFeeBumpTransaction(c *Cursor) (FeeBumpDetails, error) {
	feeSource, err := ParseMuxedAccount(c)
	if err != nil {
		return FeeBumpDetails{}, err
	}
	fee, err := xdrcodec.Int64(c)
	if err != nil {
		return FeeBumpDetails{}, err
	}

	innerTag, err := xdrcodec.Uint32(c)
	if err != nil {
		return FeeBumpDetails{}, err
	}
	if EnvelopeType(innerTag) != EnvelopeTypeTx {
		return FeeBumpDetails{}, ErrMalformedInput
	}
	inner, err := ParseTransaction(c)
	if err != nil {
		return FeeBumpDetails{}, err
	}
	if err := skipDecoratedSignatures(c); err != nil {
		return FeeBumpDetails{}, err
	}

	extV, err := xdrcodec.Uint32(c)
	if err != nil {
		return FeeBumpDetails{}, err
	}
	if extV != 0 {
		return FeeBumpDetails{}, ErrMalformedInput
	}
	if err := skipDecoratedSignatures(c); err != nil { // outer fee-bump signatures
		return FeeBumpDetails{}, err
	}

	return FeeBumpDetails{FeeSource: feeSource, Fee: fee, Inner: inner}, nil
}
