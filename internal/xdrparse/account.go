package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// ParseAccountID decodes a plain (non-muxed) account id: a u32 type tag
// that must equal PublicKeyTypeEd25519 followed by 32 raw bytes.
func ParseAccountID(c *Cursor) ([]byte, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return nil, err
	}
	if tag != PublicKeyTypeEd25519 {
		return nil, ErrMalformedInput
	}
	return c.ReadExact(RawPublicKeySize)
}

// ParseMuxedAccount decodes a muxed account: either a plain Ed25519 key
// or a 64-bit multiplexing id followed by a 32-byte key, selected by a
// u32 type tag.
func ParseMuxedAccount(c *Cursor) (MuxedAccount, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return MuxedAccount{}, err
	}
	switch MuxedAccountType(tag) {
	case CryptoKeyTypeEd25519:
		key, err := c.ReadExact(RawPublicKeySize)
		if err != nil {
			return MuxedAccount{}, err
		}
		return MuxedAccount{Type: CryptoKeyTypeEd25519, Key: key}, nil
	case CryptoKeyTypeMuxedEd25519:
		id, err := xdrcodec.Uint64(c)
		if err != nil {
			return MuxedAccount{}, err
		}
		key, err := c.ReadExact(RawPublicKeySize)
		if err != nil {
			return MuxedAccount{}, err
		}
		return MuxedAccount{Type: CryptoKeyTypeMuxedEd25519, Key: key, ID: id, Muxed: true}, nil
	default:
		return MuxedAccount{}, ErrMalformedInput
	}
}

// ParseSignerKey decodes one of the four signer key variants. The
// ed25519-signed-payload variant additionally validates that its
// payload length lies in [1, 64].
func ParseSignerKey(c *Cursor) (SignerKey, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return SignerKey{}, err
	}
	switch SignerKeyType(tag) {
	case SignerKeyTypeEd25519, SignerKeyTypePreAuthTx, SignerKeyTypeHashX:
		raw, err := c.ReadExact(RawPublicKeySize)
		if err != nil {
			return SignerKey{}, err
		}
		return SignerKey{Type: SignerKeyType(tag), Raw: raw}, nil
	case SignerKeyTypeEd25519SignedPaylod:
		ed25519, err := c.ReadExact(RawPublicKeySize)
		if err != nil {
			return SignerKey{}, err
		}
		length, err := xdrcodec.Uint32(c)
		if err != nil {
			return SignerKey{}, err
		}
		if length < RawSignedPayloadMin || length > RawSignedPayloadMax {
			return SignerKey{}, ErrMalformedInput
		}
		total, ok := roundUp4(length)
		if !ok {
			return SignerKey{}, ErrMalformedInput
		}
		raw, err := c.ReadExact(total)
		if err != nil {
			return SignerKey{}, err
		}
		for _, b := range raw[length:] {
			if b != 0 {
				return SignerKey{}, ErrMalformedInput
			}
		}
		return SignerKey{Type: SignerKeyTypeEd25519SignedPaylod, Raw: ed25519, Payload: raw[:length:length]}, nil
	default:
		return SignerKey{}, ErrMalformedInput
	}
}

// ParseSigner decodes a (SignerKey, weight) pair.
func ParseSigner(c *Cursor) (Signer, error) {
	key, err := ParseSignerKey(c)
	if err != nil {
		return Signer{}, err
	}
	weight, err := xdrcodec.Uint32(c)
	if err != nil {
		return Signer{}, err
	}
	return Signer{Key: key, Weight: weight}, nil
}

func roundUp4(size uint32) (int, bool) {
	rem := size % 4
	if rem == 0 {
		return int(size), true
	}
	if size > ^uint32(0)-4 {
		return 0, false
	}
	return int(size + 4 - rem), true
}
