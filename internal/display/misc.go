package display

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/withobsrvr/txscan/internal/xdrparse"
)

// maxUnixSeconds is the largest Unix timestamp this module will render
// ("9999-12-31T23:59:59Z"); anything beyond it is rejected rather than
// silently wrapping through time.Time's own range.
const maxUnixSeconds = 253402300799

// Time renders a Unix-seconds timestamp as "YYYY-MM-DD HH:MM:SS" UTC.
func Time(unixSeconds uint64) (string, error) {
	if unixSeconds > maxUnixSeconds {
		return "", ErrDoesNotFit
	}
	t := time.Unix(int64(unixSeconds), 0).UTC()
	return t.Format("2006-01-02 15:04:05"), nil
}

// NetworkName renders the network a transaction was signed for, the
// way the header's leading caption identifies it before anything
// else in the transaction is trusted.
func NetworkName(network xdrparse.NetworkKind) string {
	switch network {
	case xdrparse.NetworkPublic:
		return "Public"
	case xdrparse.NetworkTestnet:
		return "Testnet"
	default:
		return "Unknown"
	}
}

// HexUpper renders raw as uppercase hex, truncating to maxLen
// characters (with ".." in the middle) when maxLen > 0.
func HexUpper(raw []byte, maxLen int) string {
	s := strings.ToUpper(hex.EncodeToString(raw))
	if maxLen > 0 {
		s = Truncate(s, maxLen)
	}
	return s
}

// IsPrintableBinary reports whether every byte of s is a printable
// ASCII character in [0x20, 0x7E].
func IsPrintableBinary(s []byte) bool {
	for _, b := range s {
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// MemoTextValue renders memo text as-is when printable, or as a
// "Base64: ..." fallback otherwise.
func MemoTextValue(text []byte) string {
	if IsPrintableBinary(text) {
		return string(text)
	}
	return "Base64: " + base64.StdEncoding.EncodeToString(text)
}

// FlagDomain selects one of the three flag-mask domains the formatter
// decomposes: AccountFlags, TrustLineFlags, and AllowTrustFlags.
type FlagDomain int

const (
	AccountFlags FlagDomain = iota
	TrustLineFlags
	AllowTrustFlags
)

var accountFlagNames = []struct {
	bit  uint32
	name string
}{
	{1 << 0, "AUTH_REQUIRED"},
	{1 << 1, "AUTH_REVOCABLE"},
	{1 << 2, "AUTH_IMMUTABLE"},
	{1 << 3, "AUTH_CLAWBACK_ENABLED"},
}

var trustLineFlagNames = []struct {
	bit  uint32
	name string
}{
	{1 << 0, "AUTHORIZED"},
	{1 << 1, "AUTHORIZED_TO_MAINTAIN_LIABILITIES"},
	{1 << 2, "TRUSTLINE_CLAWBACK_ENABLED"},
}

var allowTrustFlagNames = []struct {
	bit  uint32
	name string
}{
	{0, "UNAUTHORIZED"},
	{1 << 0, "AUTHORIZED"},
	{1 << 1, "AUTHORIZED_TO_MAINTAIN_LIABILITIES"},
}

// Flags decomposes mask into a comma-joined list of canonical flag
// names for the given domain. A zero mask in the allow-trust domain
// renders as "UNAUTHORIZED"; a zero mask elsewhere renders as "NONE".
func Flags(domain FlagDomain, mask uint32) string {
	var table []struct {
		bit  uint32
		name string
	}
	switch domain {
	case AccountFlags:
		table = accountFlagNames
	case TrustLineFlags:
		table = trustLineFlagNames
	case AllowTrustFlags:
		table = allowTrustFlagNames
	default:
		return fmt.Sprintf("0x%x", mask)
	}

	if domain == AllowTrustFlags && mask == 0 {
		return "UNAUTHORIZED"
	}

	var names []string
	for _, f := range table {
		if f.bit != 0 && mask&f.bit != 0 {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, ", ")
}
