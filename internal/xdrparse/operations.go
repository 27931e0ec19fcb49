package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// skipClaimPredicate validates a claim-predicate tree structurally
// without retaining it: the formatter never displays predicates, only
// the claimant's destination account.
func skipClaimPredicate(c *Cursor, depth int) error {
	if depth > maxSCValDepth {
		return ErrMalformedInput
	}
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	switch ClaimPredicateType(tag) {
	case ClaimPredicateUnconditional:
		return nil
	case ClaimPredicateAnd, ClaimPredicateOr:
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		for i := uint32(0); i < n; i++ {
			if err := skipClaimPredicate(c, depth+1); err != nil {
				return err
			}
		}
		return nil
	case ClaimPredicateNot:
		present, err := xdrcodec.Bool(c)
		if err != nil {
			return err
		}
		if !present {
			return nil
		}
		return skipClaimPredicate(c, depth+1)
	case ClaimPredicateBeforeAbsoluteTime, ClaimPredicateBeforeRelativeTime:
		_, err := xdrcodec.Int64(c)
		return err
	default:
		return ErrMalformedInput
	}
}

func parseClaimant(c *Cursor) (Claimant, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return Claimant{}, err
	}
	if tag != 0 { // ClaimantTypeV0 is the only variant defined on the wire
		return Claimant{}, ErrMalformedInput
	}
	dest, err := ParseAccountID(c)
	if err != nil {
		return Claimant{}, err
	}
	if err := skipClaimPredicate(c, 0); err != nil {
		return Claimant{}, err
	}
	return Claimant{Destination: dest}, nil
}

func parseLedgerKey(c *Cursor) (LedgerKey, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return LedgerKey{}, err
	}
	switch LedgerEntryType(tag) {
	case LedgerEntryAccount:
		id, err := ParseAccountID(c)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryAccount, AccountID: id}, nil
	case LedgerEntryTrustline:
		acc, err := ParseAccountID(c)
		if err != nil {
			return LedgerKey{}, err
		}
		asset, err := ParseTrustLineAsset(c)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryTrustline, TrustLineAccount: acc, TrustLineAsset: asset}, nil
	case LedgerEntryOffer:
		seller, err := ParseAccountID(c)
		if err != nil {
			return LedgerKey{}, err
		}
		offerID, err := xdrcodec.Int64(c)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryOffer, OfferSellerID: seller, OfferID: offerID}, nil
	case LedgerEntryData:
		acc, err := ParseAccountID(c)
		if err != nil {
			return LedgerKey{}, err
		}
		name, err := xdrcodec.BytesPadded(c, DataNameMaxSize)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryData, DataAccountID: acc, DataName: name}, nil
	case LedgerEntryClaimableBalance:
		id, err := parseClaimableBalanceID(c)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryClaimableBalance, ClaimableBalance: id}, nil
	case LedgerEntryLiquidityPool:
		id, err := c.ReadExact(HashSize)
		if err != nil {
			return LedgerKey{}, err
		}
		return LedgerKey{Type: LedgerEntryLiquidityPool, LiquidityPoolID: id}, nil
	default:
		// Contract data/code, config setting, and TTL entries are not
		// displayable; reject rather than silently dropping detail.
		return LedgerKey{}, ErrMalformedInput
	}
}

func parseClaimableBalanceID(c *Cursor) (ClaimableBalanceID, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return ClaimableBalanceID{}, err
	}
	if tag != 0 { // CLAIMABLE_BALANCE_ID_TYPE_V0 is the only variant defined
		return ClaimableBalanceID{}, ErrMalformedInput
	}
	v, err := c.ReadExact(HashSize)
	if err != nil {
		return ClaimableBalanceID{}, err
	}
	return ClaimableBalanceID{Value: v}, nil
}

// ParseOperation decodes one operation into op, overwriting every
// field regardless of which branch the discriminant selects.
func ParseOperation(c *Cursor, op *Operation) error {
	*op = Operation{}

	present, err := xdrcodec.Bool(c)
	if err != nil {
		return err
	}
	if present {
		src, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		op.SourceAccountPresent = true
		op.SourceAccount = src
	}

	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	op.Type = OperationType(tag)

	switch op.Type {
	case OpCreateAccount:
		dest, err := ParseAccountID(c)
		if err != nil {
			return err
		}
		bal, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.CreateAccount = CreateAccountOp{Destination: dest, StartingBalance: bal}

	case OpPayment:
		dest, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		asset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.Payment = PaymentOp{Destination: dest, Asset: asset, Amount: amt}

	case OpPathPaymentStrictReceive:
		send, err := ParseAsset(c)
		if err != nil {
			return err
		}
		sendMax, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		dest, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		destAsset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		destAmt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		path, err := parseAssetPath(c)
		if err != nil {
			return err
		}
		op.PathPaymentStrictReceive = PathPaymentStrictReceiveOp{
			SendAsset: send, SendMax: sendMax, Destination: dest,
			DestAsset: destAsset, DestAmount: destAmt, Path: path,
		}

	case OpPathPaymentStrictSend:
		send, err := ParseAsset(c)
		if err != nil {
			return err
		}
		sendAmt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		dest, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		destAsset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		destMin, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		path, err := parseAssetPath(c)
		if err != nil {
			return err
		}
		op.PathPaymentStrictSend = PathPaymentStrictSendOp{
			SendAsset: send, SendAmount: sendAmt, Destination: dest,
			DestAsset: destAsset, DestMin: destMin, Path: path,
		}

	case OpManageSellOffer:
		selling, err := ParseAsset(c)
		if err != nil {
			return err
		}
		buying, err := ParseAsset(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		price, err := ParsePrice(c)
		if err != nil {
			return err
		}
		offerID, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.ManageSellOffer = ManageSellOfferOp{Selling: selling, Buying: buying, Amount: amt, Price: price, OfferID: offerID}

	case OpManageBuyOffer:
		selling, err := ParseAsset(c)
		if err != nil {
			return err
		}
		buying, err := ParseAsset(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		price, err := ParsePrice(c)
		if err != nil {
			return err
		}
		offerID, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.ManageBuyOffer = ManageBuyOfferOp{Selling: selling, Buying: buying, BuyAmount: amt, Price: price, OfferID: offerID}

	case OpCreatePassiveSellOffer:
		selling, err := ParseAsset(c)
		if err != nil {
			return err
		}
		buying, err := ParseAsset(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		price, err := ParsePrice(c)
		if err != nil {
			return err
		}
		op.CreatePassiveSellOffer = CreatePassiveSellOfferOp{Selling: selling, Buying: buying, Amount: amt, Price: price}

	case OpSetOptions:
		so := SetOptionsOp{}
		if v, present, err := xdrcodec.Optional(c, ParseAccountID); err != nil {
			return err
		} else {
			so.InflationDestinationPresent, so.InflationDestination = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.ClearFlagsPresent, so.ClearFlags = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.SetFlagsPresent, so.SetFlags = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.MasterWeightPresent, so.MasterWeight = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.LowThresholdPresent, so.LowThreshold = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.MediumThresholdPresent, so.MediumThreshold = present, v
		}
		if v, present, err := xdrcodec.Optional(c, xdrcodec.Uint32); err != nil {
			return err
		} else {
			so.HighThresholdPresent, so.HighThreshold = present, v
		}
		if v, present, err := xdrcodec.Optional(c, readHomeDomain); err != nil {
			return err
		} else {
			so.HomeDomainPresent, so.HomeDomain = present, v
		}
		if v, present, err := xdrcodec.Optional(c, ParseSigner); err != nil {
			return err
		} else {
			so.SignerPresent, so.Signer = present, v
		}
		op.SetOptions = so

	case OpChangeTrust:
		line, err := ParseChangeTrustAsset(c)
		if err != nil {
			return err
		}
		limit, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.ChangeTrust = ChangeTrustOp{Line: line, Limit: limit}

	case OpAllowTrust:
		trustor, err := ParseAccountID(c)
		if err != nil {
			return err
		}
		tag, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		var code []byte
		switch AssetType(tag) {
		case AssetTypeCreditAlphanum4:
			code, err = readAssetCode(c, AssetCode4Length)
		case AssetTypeCreditAlphanum12:
			code, err = readAssetCode(c, AssetCode12Length)
		default:
			return ErrMalformedInput
		}
		if err != nil {
			return err
		}
		authorize, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		op.AllowTrust = AllowTrustOp{Trustor: trustor, AssetCode: code, Authorize: authorize}

	case OpAccountMerge:
		// AccountMerge's destination is the operation body itself (no
		// further tag), matching the union arm it shares with
		// SourceAccount's MuxedAccount encoding.
		dest, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		op.AccountMerge = AccountMergeOp{Destination: dest}

	case OpInflation:
		// no body

	case OpManageData:
		name, err := xdrcodec.BytesPadded(c, DataNameMaxSize)
		if err != nil {
			return err
		}
		val, present, err := xdrcodec.Optional(c, readDataValue)
		if err != nil {
			return err
		}
		op.ManageData = ManageDataOp{DataName: name, DataValuePresent: present, DataValue: val}

	case OpBumpSequence:
		to, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.BumpSequence = BumpSequenceOp{BumpTo: to}

	case OpCreateClaimableBalance:
		asset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		n, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		if n > MaxClaimants {
			return ErrMalformedInput
		}
		claimants := make([]Claimant, n)
		for i := range claimants {
			claimants[i], err = parseClaimant(c)
			if err != nil {
				return err
			}
		}
		op.CreateClaimableBalance = CreateClaimableBalanceOp{Asset: asset, Amount: amt, Claimants: claimants}

	case OpClaimClaimableBalance:
		id, err := parseClaimableBalanceID(c)
		if err != nil {
			return err
		}
		op.ClaimClaimableBalance = ClaimClaimableBalanceOp{BalanceID: id}

	case OpBeginSponsoringFutureReserves:
		id, err := ParseAccountID(c)
		if err != nil {
			return err
		}
		op.BeginSponsoring = BeginSponsoringFutureReservesOp{SponsoredID: id}

	case OpEndSponsoringFutureReserves:
		// no body

	case OpRevokeSponsorship:
		tag, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		switch RevokeSponsorshipType(tag) {
		case RevokeSponsorshipLedgerEntry:
			lk, err := parseLedgerKey(c)
			if err != nil {
				return err
			}
			op.RevokeSponsorship = RevokeSponsorshipOp{Type: RevokeSponsorshipLedgerEntry, LedgerKey: lk}
		case RevokeSponsorshipSignerKind:
			acc, err := ParseAccountID(c)
			if err != nil {
				return err
			}
			key, err := ParseSignerKey(c)
			if err != nil {
				return err
			}
			op.RevokeSponsorship = RevokeSponsorshipOp{Type: RevokeSponsorshipSignerKind, AccountID: acc, SignerKey: key}
		default:
			return ErrMalformedInput
		}

	case OpClawback:
		asset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		from, err := ParseMuxedAccount(c)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.Clawback = ClawbackOp{Asset: asset, From: from, Amount: amt}

	case OpClawbackClaimableBalance:
		id, err := parseClaimableBalanceID(c)
		if err != nil {
			return err
		}
		op.ClawbackClaimableBalance = ClawbackClaimableBalanceOp{BalanceID: id}

	case OpSetTrustLineFlags:
		trustor, err := ParseAccountID(c)
		if err != nil {
			return err
		}
		asset, err := ParseAsset(c)
		if err != nil {
			return err
		}
		clear, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		set, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		op.SetTrustLineFlags = SetTrustLineFlagsOp{Trustor: trustor, Asset: asset, ClearFlags: clear, SetFlags: set}

	case OpLiquidityPoolDeposit:
		id, err := c.ReadExact(HashSize)
		if err != nil {
			return err
		}
		maxA, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		maxB, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		minP, err := ParsePrice(c)
		if err != nil {
			return err
		}
		maxP, err := ParsePrice(c)
		if err != nil {
			return err
		}
		op.LiquidityPoolDeposit = LiquidityPoolDepositOp{LiquidityPoolID: id, MaxAmountA: maxA, MaxAmountB: maxB, MinPrice: minP, MaxPrice: maxP}

	case OpLiquidityPoolWithdraw:
		id, err := c.ReadExact(HashSize)
		if err != nil {
			return err
		}
		amt, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		minA, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		minB, err := xdrcodec.Int64(c)
		if err != nil {
			return err
		}
		op.LiquidityPoolWithdraw = LiquidityPoolWithdrawOp{LiquidityPoolID: id, Amount: amt, MinAmountA: minA, MinAmountB: minB}

	case OpInvokeHostFunction:
		hf, err := ParseInvokeHostFunctionOp(c)
		if err != nil {
			return err
		}
		op.InvokeHostFunction = hf

	case OpExtendFootprintTTL:
		// ExtensionPoint union, v0 only.
		ext, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		if ext != 0 {
			return ErrMalformedInput
		}
		to, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		op.ExtendFootprintTTL = ExtendFootprintTTLOp{ExtendTo: to}

	case OpRestoreFootprint:
		ext, err := xdrcodec.Uint32(c)
		if err != nil {
			return err
		}
		if ext != 0 {
			return ErrMalformedInput
		}
		op.RestoreFootprint = RestoreFootprintOp{}

	default:
		return ErrMalformedInput
	}

	return nil
}

func parseAssetPath(c *Cursor) ([]Asset, error) {
	n, err := xdrcodec.Uint32(c)
	if err != nil {
		return nil, err
	}
	if n > MaxPathLength {
		return nil, ErrMalformedInput
	}
	path := make([]Asset, n)
	for i := range path {
		path[i], err = ParseAsset(c)
		if err != nil {
			return nil, err
		}
	}
	return path, nil
}

func readHomeDomain(c *Cursor) ([]byte, error) {
	return xdrcodec.BytesPadded(c, HomeDomainMaxSize)
}

func readDataValue(c *Cursor) ([]byte, error) {
	return xdrcodec.BytesPadded(c, DataValueMaxSize)
}
