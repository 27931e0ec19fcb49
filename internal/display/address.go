package display

import (
	"encoding/binary"

	"github.com/stellar/go/strkey"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// AccountID renders a 32-byte Ed25519 public key as its 56-character
// "G..." strkey form, optionally truncated to maxLen with "..".
func AccountID(key []byte, maxLen int) (string, error) {
	s, err := strkey.Encode(strkey.VersionByteAccountID, key)
	if err != nil {
		return "", ErrDoesNotFit
	}
	if maxLen > 0 {
		s = Truncate(s, maxLen)
	}
	return s, nil
}

// MuxedAccount renders a MuxedAccount: a plain key delegates to
// AccountID, a multiplexed one encodes key‖id as the 69-character
// "M..." strkey form.
func MuxedAccount(m xdrparse.MuxedAccount, maxLen int) (string, error) {
	if !m.Muxed {
		return AccountID(m.Key, maxLen)
	}
	payload := make([]byte, 40)
	copy(payload, m.Key)
	binary.BigEndian.PutUint64(payload[32:], m.ID)
	s, err := strkey.Encode(strkey.VersionByteMuxedAccount, payload)
	if err != nil {
		return "", ErrDoesNotFit
	}
	if maxLen > 0 {
		s = Truncate(s, maxLen)
	}
	return s, nil
}

// SignerKey renders the four signer-key variants: ed25519 ("G"),
// pre-auth-tx ("T"), hash-x ("X"), and ed25519-signed-payload ("P",
// which appends the payload length and bytes to the encoded form).
func SignerKey(k xdrparse.SignerKey, maxLen int) (string, error) {
	var version strkey.VersionByte
	payload := k.Raw

	switch k.Type {
	case xdrparse.SignerKeyTypeEd25519:
		version = strkey.VersionByteAccountID
	case xdrparse.SignerKeyTypePreAuthTx:
		version = strkey.VersionByteHashTx
	case xdrparse.SignerKeyTypeHashX:
		version = strkey.VersionByteHashX
	case xdrparse.SignerKeyTypeEd25519SignedPaylod:
		version = strkey.VersionByteSignedPayload
		payload = make([]byte, 0, 32+4+roundUp4(len(k.Payload)))
		payload = append(payload, k.Raw...)
		lenBytes := make([]byte, 4)
		binary.BigEndian.PutUint32(lenBytes, uint32(len(k.Payload)))
		payload = append(payload, lenBytes...)
		padded := make([]byte, roundUp4(len(k.Payload)))
		copy(padded, k.Payload)
		payload = append(payload, padded...)
	default:
		return "", ErrDoesNotFit
	}

	s, err := strkey.Encode(version, payload)
	if err != nil {
		return "", ErrDoesNotFit
	}
	if maxLen > 0 {
		s = Truncate(s, maxLen)
	}
	return s, nil
}

// SCAddress renders a Soroban address: the account variant delegates
// to AccountID, the contract variant uses the "C..." strkey form.
func SCAddress(a xdrparse.SCAddress, maxLen int) (string, error) {
	switch a.Type {
	case xdrparse.SCAddressTypeAccount:
		return AccountID(a.Raw, maxLen)
	case xdrparse.SCAddressTypeContract:
		s, err := strkey.Encode(strkey.VersionByteContract, a.Raw)
		if err != nil {
			return "", ErrDoesNotFit
		}
		if maxLen > 0 {
			s = Truncate(s, maxLen)
		}
		return s, nil
	default:
		return "", ErrDoesNotFit
	}
}

func roundUp4(n int) int {
	if r := n % 4; r != 0 {
		return n + 4 - r
	}
	return n
}
