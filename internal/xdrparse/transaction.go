package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// MaxDecoratedSignatures bounds the trailing signature list carried by
// a transaction envelope. Signatures are never displayed, only skipped
// past.
const MaxDecoratedSignatures = 20

// TransactionDetails is the decoded header of a Transaction: every
// field the formatter walks before reaching the operation list.
// Operations themselves are deferred; OperationPositions holds the
// byte offset of each one so the caller can re-seek and decode exactly
// one at a time.
type TransactionDetails struct {
	SourceAccount MuxedAccount
	Fee           uint32
	SeqNum        int64
	Preconditions Preconditions
	Memo          Memo

	OperationCount     uint32
	OperationPositions []int // len == OperationCount, <= MaxOperations

	SorobanResourceFeePresent bool
	SorobanResourceFee        int64
}

// ParseTransaction decodes a Transaction body: the header fields, then
// a single validating pass over the operation list that records each
// operation's start offset without retaining its decoded form.
func ParseTransaction(c *Cursor) (TransactionDetails, error) {
	var tx TransactionDetails

	src, err := ParseMuxedAccount(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	tx.SourceAccount = src

	tx.Fee, err = xdrcodec.Uint32(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	tx.SeqNum, err = xdrcodec.Int64(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	tx.Preconditions, err = ParsePreconditions(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	tx.Memo, err = ParseMemo(c)
	if err != nil {
		return TransactionDetails{}, err
	}

	count, err := xdrcodec.Uint32(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	if count > MaxOperations {
		return TransactionDetails{}, ErrMalformedInput
	}
	tx.OperationCount = count
	tx.OperationPositions = make([]int, count)
	var slot Operation
	for i := uint32(0); i < count; i++ {
		tx.OperationPositions[i] = c.Tell()
		if err := ParseOperation(c, &slot); err != nil {
			return TransactionDetails{}, err
		}
	}

	extV, err := xdrcodec.Uint32(c)
	if err != nil {
		return TransactionDetails{}, err
	}
	switch extV {
	case 0:
	case 1:
		fee, err := skipSorobanTransactionData(c)
		if err != nil {
			return TransactionDetails{}, err
		}
		tx.SorobanResourceFeePresent = true
		tx.SorobanResourceFee = fee
	default:
		return TransactionDetails{}, ErrMalformedInput
	}

	return tx, nil
}

// ParseOperationAt re-seeks a copy of c to the index'th operation's
// recorded position and decodes it fresh into op. The caller's cursor
// is left untouched.
func ParseOperationAt(c Cursor, tx TransactionDetails, index uint32, op *Operation) error {
	if index >= tx.OperationCount {
		return ErrMalformedInput
	}
	if err := c.Seek(tx.OperationPositions[index]); err != nil {
		return err
	}
	return ParseOperation(&c, op)
}

// skipSorobanTransactionData validates and skips a SorobanTransactionData
// extension, returning its resourceFee. The footprint it declares is
// never displayed, so its ledger keys are skipped generically rather
// than through the display-oriented parseLedgerKey (which rejects
// contract data/code/config/TTL keys that are legitimate here).
func skipSorobanTransactionData(c *Cursor) (int64, error) {
	extV, err := xdrcodec.Uint32(c)
	if err != nil {
		return 0, err
	}
	if extV != 0 {
		return 0, ErrMalformedInput
	}
	if err := skipLedgerFootprint(c); err != nil {
		return 0, err
	}
	if err := c.Advance(4 + 4 + 4); err != nil { // instructions, readBytes, writeBytes
		return 0, err
	}
	return xdrcodec.Int64(c) // resourceFee
}

func skipLedgerFootprint(c *Cursor) error {
	if err := skipLedgerKeyList(c); err != nil { // readOnly
		return err
	}
	return skipLedgerKeyList(c) // readWrite
}

func skipLedgerKeyList(c *Cursor) error {
	n, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	for i := uint32(0); i < n; i++ {
		if err := skipLedgerKeyGeneric(c); err != nil {
			return err
		}
	}
	return nil
}

// skipLedgerKeyGeneric tolerates every LedgerKey variant, including the
// contract-data/contract-code/config-setting/TTL kinds that the
// display-oriented LedgerKey type does not model.
func skipLedgerKeyGeneric(c *Cursor) error {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	switch LedgerEntryType(tag) {
	case LedgerEntryAccount:
		_, err := ParseAccountID(c)
		return err
	case LedgerEntryTrustline:
		if _, err := ParseAccountID(c); err != nil {
			return err
		}
		_, err := ParseTrustLineAsset(c)
		return err
	case LedgerEntryOffer:
		if _, err := ParseAccountID(c); err != nil {
			return err
		}
		_, err := xdrcodec.Int64(c)
		return err
	case LedgerEntryData:
		if _, err := ParseAccountID(c); err != nil {
			return err
		}
		_, err := xdrcodec.BytesPadded(c, DataNameMaxSize)
		return err
	case LedgerEntryClaimableBalance:
		_, err := parseClaimableBalanceID(c)
		return err
	case LedgerEntryLiquidityPool:
		return c.Advance(HashSize)
	case 6: // CONTRACT_DATA: address, key SCVal, durability u32
		if _, err := ParseSCAddress(c); err != nil {
			return err
		}
		if err := SkipSCVal(c); err != nil {
			return err
		}
		return c.Advance(4)
	case 7: // CONTRACT_CODE: 32-byte wasm hash
		return c.Advance(HashSize)
	case 8: // CONFIG_SETTING: u32 discriminant only
		return c.Advance(4)
	case 9: // TTL: 32-byte key hash
		return c.Advance(HashSize)
	default:
		return ErrMalformedInput
	}
}

func skipDecoratedSignatures(c *Cursor) error {
	n, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	if n > MaxDecoratedSignatures {
		return ErrMalformedInput
	}
	for i := uint32(0); i < n; i++ {
		if err := c.Advance(4); err != nil { // hint
			return err
		}
		if _, err := xdrcodec.BytesPadded(c, 64); err != nil { // signature
			return err
		}
	}
	return nil
}
