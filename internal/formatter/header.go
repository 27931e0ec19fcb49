package formatter

import (
	"fmt"

	"github.com/withobsrvr/txscan/internal/display"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

func (f *Formatter) buildHeaderGroup() ([]Pair, error) {
	switch f.env.Type {
	case xdrparse.EnvelopeTypeSorobanAuth:
		return f.buildAuthHeader()
	case xdrparse.EnvelopeTypeTxFeeBump:
		return f.buildFeeBumpHeader()
	default:
		return f.buildTxHeader(f.env.Tx)
	}
}

func (f *Formatter) buildFeeBumpHeader() ([]Pair, error) {
	out := []Pair{pair("Network", display.NetworkName(f.env.Network))}
	out = append(out, pair("Fee-Bump Fee", display.Amount(f.env.FeeBump.Fee, display.NativeDecimals)))

	src, err := f.formatSourceLike(f.env.FeeBump.FeeSource)
	if err != nil {
		return nil, err
	}
	out = append(out, pair("Fee-Bump Source", src))

	inner, err := f.buildTxHeaderFields(f.env.FeeBump.Inner)
	if err != nil {
		return nil, err
	}
	return append(out, inner...), nil
}

// buildTxHeader is buildTxHeaderFields prefixed with the network
// caption; used directly for a plain transaction envelope, where the
// network is the very first thing the device confirms.
func (f *Formatter) buildTxHeader(tx xdrparse.TransactionDetails) ([]Pair, error) {
	out := []Pair{pair("Network", display.NetworkName(f.env.Network))}
	fields, err := f.buildTxHeaderFields(tx)
	if err != nil {
		return nil, err
	}
	return append(out, fields...), nil
}

// buildTxHeaderFields renders everything in a transaction header after
// the network caption: memo, max fee, then the rest of the
// preconditions, ending with the transaction source account.
func (f *Formatter) buildTxHeaderFields(tx xdrparse.TransactionDetails) ([]Pair, error) {
	var out []Pair

	memoPair, hasMemo, err := formatMemo(tx.Memo)
	if err != nil {
		return nil, err
	}
	if hasMemo {
		out = append(out, memoPair)
	}

	out = append(out, pair("Max Fee", display.Amount(int64(tx.Fee), display.NativeDecimals)))

	if f.displaySequence {
		out = append(out, pair("Sequence Num", display.Int64(tx.SeqNum, false)))
	}

	pc := tx.Preconditions
	if pc.TimeBoundsPresent {
		if pc.TimeBounds.MinTime != 0 {
			t, err := display.Time(pc.TimeBounds.MinTime)
			if err != nil {
				return nil, err
			}
			out = append(out, pair("Valid After", t))
		}
		if pc.TimeBounds.MaxTime != 0 {
			t, err := display.Time(pc.TimeBounds.MaxTime)
			if err != nil {
				return nil, err
			}
			out = append(out, pair("Valid Before", t))
		}
	}
	if pc.LedgerBoundsPresent {
		if pc.LedgerBounds.MinLedger != 0 {
			out = append(out, pair("Min Ledger", display.UInt32(pc.LedgerBounds.MinLedger, false)))
		}
		if pc.LedgerBounds.MaxLedger != 0 {
			out = append(out, pair("Max Ledger", display.UInt32(pc.LedgerBounds.MaxLedger, false)))
		}
	}
	if pc.MinSeqNumPresent {
		out = append(out, pair("Min Seq Num", display.Int64(pc.MinSeqNum, false)))
	}
	// A past revision of this chain computed the min-seq-age caption but
	// discarded the formatted value on the way out; it is displayed here.
	if pc.MinSeqAge != 0 {
		out = append(out, pair("Min Seq Age", display.UInt64(pc.MinSeqAge, false)))
	}
	if pc.MinSeqLedgerGap != 0 {
		out = append(out, pair("Min Seq Ledger Gap", display.UInt32(pc.MinSeqLedgerGap, false)))
	}
	for i, sk := range pc.ExtraSigners {
		s, err := display.SignerKey(sk, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, pair(fmt.Sprintf("Signer %d", i+1), s))
	}

	src, err := f.formatSourceLike(tx.SourceAccount)
	if err != nil {
		return nil, err
	}
	out = append(out, pair("Source Account", src))

	return out, nil
}

func (f *Formatter) buildAuthHeader() ([]Pair, error) {
	auth := f.env.SorobanAuth
	var out []Pair
	out = append(out, pair("Valid Until Ledger", display.UInt32(auth.SignatureExpirationLedger, false)))

	fnPairs, err := f.buildAuthorizedFunctionFields(auth.AuthFunctionType, auth.InvokeContract)
	if err != nil {
		return nil, err
	}
	out = append(out, fnPairs...)

	subPairs, err := f.buildSubInvocationFields(auth.SubInvocationPosns, auth.SubInvocationCount)
	if err != nil {
		return nil, err
	}
	return append(out, subPairs...), nil
}

// formatSourceLike renders a MuxedAccount used as a transaction or
// operation source, abbreviating it when it matches the signing key
// the caller is reviewing the transaction on behalf of.
func (f *Formatter) formatSourceLike(m xdrparse.MuxedAccount) (string, error) {
	full, err := display.MuxedAccount(m, 0)
	if err != nil {
		return "", err
	}
	if f.signingKey != nil && !m.Muxed && bytesEqual(m.Key, f.signingKey) {
		return display.Truncate(full, 16), nil
	}
	return full, nil
}

func formatMemo(memo xdrparse.Memo) (Pair, bool, error) {
	switch memo.Type {
	case xdrparse.MemoTypeNone:
		return Pair{}, false, nil
	case xdrparse.MemoTypeText:
		return pair("Memo (TEXT)", display.MemoTextValue(memo.Text)), true, nil
	case xdrparse.MemoTypeID:
		return pair("Memo (ID)", display.UInt64(memo.ID, true)), true, nil
	case xdrparse.MemoTypeHash:
		return pair("Memo (HASH)", display.HexUpper(memo.Hash, 0)), true, nil
	case xdrparse.MemoTypeReturn:
		return pair("Memo (RETURN)", display.HexUpper(memo.Hash, 0)), true, nil
	default:
		return Pair{}, false, nil
	}
}
