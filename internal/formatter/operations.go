package formatter

import (
	"fmt"

	"github.com/withobsrvr/txscan/internal/display"
	"github.com/withobsrvr/txscan/internal/xdrparse"
)

var operationTypeNames = map[xdrparse.OperationType]string{
	xdrparse.OpCreateAccount:                 "Create Account",
	xdrparse.OpPayment:                       "Payment",
	xdrparse.OpPathPaymentStrictReceive:       "Path Payment Strict Receive",
	xdrparse.OpManageSellOffer:                "Manage Sell Offer",
	xdrparse.OpCreatePassiveSellOffer:         "Create Passive Sell Offer",
	xdrparse.OpSetOptions:                     "Set Options",
	xdrparse.OpChangeTrust:                    "Change Trust",
	xdrparse.OpAllowTrust:                     "Allow Trust",
	xdrparse.OpAccountMerge:                   "Account Merge",
	xdrparse.OpInflation:                      "Inflation",
	xdrparse.OpManageData:                     "Manage Data",
	xdrparse.OpBumpSequence:                   "Bump Sequence",
	xdrparse.OpManageBuyOffer:                 "Manage Buy Offer",
	xdrparse.OpPathPaymentStrictSend:          "Path Payment Strict Send",
	xdrparse.OpCreateClaimableBalance:         "Create Claimable Balance",
	xdrparse.OpClaimClaimableBalance:          "Claim Claimable Balance",
	xdrparse.OpBeginSponsoringFutureReserves:  "Begin Sponsoring Future Reserves",
	xdrparse.OpEndSponsoringFutureReserves:    "End Sponsoring Future Reserves",
	xdrparse.OpRevokeSponsorship:              "Revoke Sponsorship",
	xdrparse.OpClawback:                       "Clawback",
	xdrparse.OpClawbackClaimableBalance:       "Clawback Claimable Balance",
	xdrparse.OpSetTrustLineFlags:              "Set Trust Line Flags",
	xdrparse.OpLiquidityPoolDeposit:           "Liquidity Pool Deposit",
	xdrparse.OpLiquidityPoolWithdraw:          "Liquidity Pool Withdraw",
	xdrparse.OpInvokeHostFunction:             "Invoke Host Function",
	xdrparse.OpExtendFootprintTTL:             "Extend Footprint TTL",
	xdrparse.OpRestoreFootprint:               "Restore Footprint",
}

func operationTypeName(t xdrparse.OperationType) string {
	if name, ok := operationTypeNames[t]; ok {
		return name
	}
	return "Unknown Operation"
}

func (f *Formatter) buildOperationGroup(index uint32) ([]Pair, error) {
	tx := f.activeTx()
	var op xdrparse.Operation
	if err := xdrparse.ParseOperationAt(f.newCursor(), tx, index, &op); err != nil {
		return nil, err
	}

	var out []Pair
	if tx.OperationCount > 1 {
		out = append(out, pair("Operation", fmt.Sprintf("%d of %d", index+1, tx.OperationCount)))
	}
	out = append(out, pair("Operation Type", operationTypeName(op.Type)))

	if op.SourceAccountPresent {
		s, err := f.formatSourceLike(op.SourceAccount)
		if err != nil {
			return nil, err
		}
		out = append(out, pair("Op Source", s))
	}

	fields, err := f.operationFields(op)
	if err != nil {
		return nil, err
	}
	return append(out, fields...), nil
}

func (f *Formatter) operationFields(op xdrparse.Operation) ([]Pair, error) {
	network := f.env.Network
	switch op.Type {
	case xdrparse.OpCreateAccount:
		dest, err := display.AccountID(op.CreateAccount.Destination, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Destination", dest),
			pair("Starting Balance", display.Amount(op.CreateAccount.StartingBalance, display.NativeDecimals)),
		}, nil

	case xdrparse.OpPayment:
		asset, err := display.AssetLabel(op.Payment.Asset, network, 0)
		if err != nil {
			return nil, err
		}
		dest, err := display.MuxedAccount(op.Payment.Destination, 0)
		if err != nil {
			return nil, err
		}
		send := display.Amount(op.Payment.Amount, display.NativeDecimals) + " " + asset
		return []Pair{
			pair("Send", send),
			pair("Destination", dest),
		}, nil

	case xdrparse.OpPathPaymentStrictReceive:
		return f.pathPaymentFields(op.PathPaymentStrictReceive.SendAsset, op.PathPaymentStrictReceive.SendMax,
			"Send Max", op.PathPaymentStrictReceive.Destination, op.PathPaymentStrictReceive.DestAsset,
			op.PathPaymentStrictReceive.DestAmount, "Dest Amount", op.PathPaymentStrictReceive.Path)

	case xdrparse.OpPathPaymentStrictSend:
		return f.pathPaymentFields(op.PathPaymentStrictSend.SendAsset, op.PathPaymentStrictSend.SendAmount,
			"Send Amount", op.PathPaymentStrictSend.Destination, op.PathPaymentStrictSend.DestAsset,
			op.PathPaymentStrictSend.DestMin, "Dest Min", op.PathPaymentStrictSend.Path)

	case xdrparse.OpManageSellOffer:
		return f.offerFields(op.ManageSellOffer.Selling, op.ManageSellOffer.Buying, op.ManageSellOffer.Amount,
			op.ManageSellOffer.Price, &op.ManageSellOffer.OfferID)

	case xdrparse.OpManageBuyOffer:
		return f.offerFields(op.ManageBuyOffer.Selling, op.ManageBuyOffer.Buying, op.ManageBuyOffer.BuyAmount,
			op.ManageBuyOffer.Price, &op.ManageBuyOffer.OfferID)

	case xdrparse.OpCreatePassiveSellOffer:
		return f.offerFields(op.CreatePassiveSellOffer.Selling, op.CreatePassiveSellOffer.Buying,
			op.CreatePassiveSellOffer.Amount, op.CreatePassiveSellOffer.Price, nil)

	case xdrparse.OpSetOptions:
		return f.setOptionsFields(op.SetOptions)

	case xdrparse.OpChangeTrust:
		asset, err := display.ChangeTrustAssetLabel(op.ChangeTrust.Line, network, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Asset", asset),
			pair("Limit", display.Amount(op.ChangeTrust.Limit, display.NativeDecimals)),
		}, nil

	case xdrparse.OpAllowTrust:
		trustor, err := display.AccountID(op.AllowTrust.Trustor, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Trustor", trustor),
			pair("Asset Code", string(op.AllowTrust.AssetCode)),
			pair("Authorize", display.Flags(display.AllowTrustFlags, op.AllowTrust.Authorize)),
		}, nil

	case xdrparse.OpAccountMerge:
		dest, err := display.MuxedAccount(op.AccountMerge.Destination, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{pair("Destination", dest)}, nil

	case xdrparse.OpInflation:
		return nil, nil

	case xdrparse.OpManageData:
		out := []Pair{pair("Data Name", string(op.ManageData.DataName))}
		if op.ManageData.DataValuePresent {
			out = append(out, pair("Data Value", display.HexUpper(op.ManageData.DataValue, MaxValueLen)))
		} else {
			out = append(out, pair("Data Value", "[removed]"))
		}
		return out, nil

	case xdrparse.OpBumpSequence:
		return []Pair{pair("Bump To", display.Int64(op.BumpSequence.BumpTo, false))}, nil

	case xdrparse.OpCreateClaimableBalance:
		asset, err := display.AssetLabel(op.CreateClaimableBalance.Asset, network, 0)
		if err != nil {
			return nil, err
		}
		out := []Pair{
			pair("Asset", asset),
			pair("Amount", display.Amount(op.CreateClaimableBalance.Amount, display.NativeDecimals)),
		}
		for i, c := range op.CreateClaimableBalance.Claimants {
			dest, err := display.AccountID(c.Destination, 0)
			if err != nil {
				return nil, err
			}
			out = append(out, pair(fmt.Sprintf("Claimant %d", i+1), dest))
		}
		return out, nil

	case xdrparse.OpClaimClaimableBalance:
		return []Pair{pair("Balance ID", display.ClaimableBalanceID(op.ClaimClaimableBalance.BalanceID))}, nil

	case xdrparse.OpBeginSponsoringFutureReserves:
		dest, err := display.AccountID(op.BeginSponsoring.SponsoredID, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{pair("Sponsored ID", dest)}, nil

	case xdrparse.OpEndSponsoringFutureReserves:
		return nil, nil

	case xdrparse.OpRevokeSponsorship:
		return f.revokeSponsorshipFields(op.RevokeSponsorship)

	case xdrparse.OpClawback:
		asset, err := display.AssetLabel(op.Clawback.Asset, network, 0)
		if err != nil {
			return nil, err
		}
		from, err := display.MuxedAccount(op.Clawback.From, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Asset", asset),
			pair("From", from),
			pair("Amount", display.Amount(op.Clawback.Amount, display.NativeDecimals)),
		}, nil

	case xdrparse.OpClawbackClaimableBalance:
		return []Pair{pair("Balance ID", display.ClaimableBalanceID(op.ClawbackClaimableBalance.BalanceID))}, nil

	case xdrparse.OpSetTrustLineFlags:
		trustor, err := display.AccountID(op.SetTrustLineFlags.Trustor, 0)
		if err != nil {
			return nil, err
		}
		asset, err := display.AssetLabel(op.SetTrustLineFlags.Asset, network, 0)
		if err != nil {
			return nil, err
		}
		out := []Pair{pair("Trustor", trustor), pair("Asset", asset)}
		if op.SetTrustLineFlags.ClearFlags != 0 {
			out = append(out, pair("Clear Flags", display.Flags(display.TrustLineFlags, op.SetTrustLineFlags.ClearFlags)))
		}
		if op.SetTrustLineFlags.SetFlags != 0 {
			out = append(out, pair("Set Flags", display.Flags(display.TrustLineFlags, op.SetTrustLineFlags.SetFlags)))
		}
		return out, nil

	case xdrparse.OpLiquidityPoolDeposit:
		d := op.LiquidityPoolDeposit
		return []Pair{
			pair("Pool ID", display.HexUpper(d.LiquidityPoolID, 0)),
			pair("Max Amount A", display.Amount(d.MaxAmountA, display.NativeDecimals)),
			pair("Max Amount B", display.Amount(d.MaxAmountB, display.NativeDecimals)),
			pair("Min Price", display.Price(d.MinPrice.N, d.MinPrice.D)),
			pair("Max Price", display.Price(d.MaxPrice.N, d.MaxPrice.D)),
		}, nil

	case xdrparse.OpLiquidityPoolWithdraw:
		w := op.LiquidityPoolWithdraw
		return []Pair{
			pair("Pool ID", display.HexUpper(w.LiquidityPoolID, 0)),
			pair("Amount", display.Amount(w.Amount, display.NativeDecimals)),
			pair("Min Amount A", display.Amount(w.MinAmountA, display.NativeDecimals)),
			pair("Min Amount B", display.Amount(w.MinAmountB, display.NativeDecimals)),
		}, nil

	case xdrparse.OpInvokeHostFunction:
		return f.buildInvokeHostFunctionFields(op.InvokeHostFunction)

	case xdrparse.OpExtendFootprintTTL:
		return []Pair{pair("Extend To", display.UInt32(op.ExtendFootprintTTL.ExtendTo, false))}, nil

	case xdrparse.OpRestoreFootprint:
		return nil, nil

	default:
		return nil, xdrparse.ErrMalformedInput
	}
}

func (f *Formatter) pathPaymentFields(sendAsset xdrparse.Asset, sendValue int64, sendCaption string,
	dest xdrparse.MuxedAccount, destAsset xdrparse.Asset, destValue int64, destCaption string,
	path []xdrparse.Asset) ([]Pair, error) {
	network := f.env.Network

	sendLabel, err := display.AssetLabel(sendAsset, network, 0)
	if err != nil {
		return nil, err
	}
	destLabel, err := display.AssetLabel(destAsset, network, 0)
	if err != nil {
		return nil, err
	}
	destAccount, err := display.MuxedAccount(dest, 0)
	if err != nil {
		return nil, err
	}

	out := []Pair{
		pair("Send Asset", sendLabel),
		pair(sendCaption, display.Amount(sendValue, display.NativeDecimals)),
		pair("Destination", destAccount),
		pair("Dest Asset", destLabel),
		pair(destCaption, display.Amount(destValue, display.NativeDecimals)),
	}
	for i, a := range path {
		label, err := display.AssetLabel(a, network, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, pair(fmt.Sprintf("Path %d", i+1), label))
	}
	return out, nil
}

func (f *Formatter) offerFields(selling, buying xdrparse.Asset, amount int64, price xdrparse.Price, offerID *int64) ([]Pair, error) {
	network := f.env.Network
	sell, err := display.AssetLabel(selling, network, 0)
	if err != nil {
		return nil, err
	}
	buy, err := display.AssetLabel(buying, network, 0)
	if err != nil {
		return nil, err
	}
	out := []Pair{
		pair("Selling", sell),
		pair("Buying", buy),
		pair("Amount", display.Amount(amount, display.NativeDecimals)),
		pair("Price", display.PriceRatio(price.N, price.D)),
	}
	if offerID != nil && *offerID != 0 {
		out = append(out, pair("Offer ID", display.Int64(*offerID, false)))
	}
	return out, nil
}

func (f *Formatter) setOptionsFields(op xdrparse.SetOptionsOp) ([]Pair, error) {
	var out []Pair
	if op.InflationDestinationPresent {
		dest, err := display.AccountID(op.InflationDestination, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, pair("Inflation Dest", dest))
	}
	if op.ClearFlagsPresent {
		out = append(out, pair("Clear Flags", display.Flags(display.AccountFlags, op.ClearFlags)))
	}
	if op.SetFlagsPresent {
		out = append(out, pair("Set Flags", display.Flags(display.AccountFlags, op.SetFlags)))
	}
	if op.MasterWeightPresent {
		out = append(out, pair("Master Weight", display.UInt32(op.MasterWeight, false)))
	}
	if op.LowThresholdPresent {
		out = append(out, pair("Low Threshold", display.UInt32(op.LowThreshold, false)))
	}
	if op.MediumThresholdPresent {
		out = append(out, pair("Medium Threshold", display.UInt32(op.MediumThreshold, false)))
	}
	if op.HighThresholdPresent {
		out = append(out, pair("High Threshold", display.UInt32(op.HighThreshold, false)))
	}
	if op.HomeDomainPresent {
		out = append(out, pair("Home Domain", string(op.HomeDomain)))
	}
	if op.SignerPresent {
		key, err := display.SignerKey(op.Signer.Key, 0)
		if err != nil {
			return nil, err
		}
		out = append(out, pair("Signer Key", key))
		out = append(out, pair("Signer Weight", display.UInt32(op.Signer.Weight, false)))
	}
	return out, nil
}

func (f *Formatter) revokeSponsorshipFields(op xdrparse.RevokeSponsorshipOp) ([]Pair, error) {
	switch op.Type {
	case xdrparse.RevokeSponsorshipLedgerEntry:
		return f.ledgerKeyFields(op.LedgerKey)
	case xdrparse.RevokeSponsorshipSignerKind:
		account, err := display.AccountID(op.AccountID, 0)
		if err != nil {
			return nil, err
		}
		signer, err := display.SignerKey(op.SignerKey, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Account ID", account),
			pair("Signer Key", signer),
		}, nil
	default:
		return nil, xdrparse.ErrMalformedInput
	}
}

func (f *Formatter) ledgerKeyFields(lk xdrparse.LedgerKey) ([]Pair, error) {
	network := f.env.Network
	switch lk.Type {
	case xdrparse.LedgerEntryAccount:
		account, err := display.AccountID(lk.AccountID, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{pair("Ledger Entry", "Account"), pair("Account ID", account)}, nil

	case xdrparse.LedgerEntryTrustline:
		account, err := display.AccountID(lk.TrustLineAccount, 0)
		if err != nil {
			return nil, err
		}
		asset, err := display.TrustLineAssetLabel(lk.TrustLineAsset, network, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{pair("Ledger Entry", "Trustline"), pair("Account ID", account), pair("Asset", asset)}, nil

	case xdrparse.LedgerEntryOffer:
		seller, err := display.AccountID(lk.OfferSellerID, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Ledger Entry", "Offer"),
			pair("Seller ID", seller),
			pair("Offer ID", display.Int64(lk.OfferID, false)),
		}, nil

	case xdrparse.LedgerEntryData:
		account, err := display.AccountID(lk.DataAccountID, 0)
		if err != nil {
			return nil, err
		}
		return []Pair{
			pair("Ledger Entry", "Data"),
			pair("Account ID", account),
			pair("Data Name", string(lk.DataName)),
		}, nil

	case xdrparse.LedgerEntryClaimableBalance:
		return []Pair{
			pair("Ledger Entry", "Claimable Balance"),
			pair("Balance ID", display.ClaimableBalanceID(lk.ClaimableBalance)),
		}, nil

	case xdrparse.LedgerEntryLiquidityPool:
		return []Pair{
			pair("Ledger Entry", "Liquidity Pool"),
			pair("Pool ID", display.HexUpper(lk.LiquidityPoolID, 0)),
		}, nil

	default:
		return nil, xdrparse.ErrMalformedInput
	}
}
