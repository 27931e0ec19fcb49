package xdrparse

// OperationType enumerates the 27 operation kinds carried in a
// transaction's operation list.
type OperationType uint32

const (
	OpCreateAccount                  OperationType = 0
	OpPayment                        OperationType = 1
	OpPathPaymentStrictReceive       OperationType = 2
	OpManageSellOffer                OperationType = 3
	OpCreatePassiveSellOffer         OperationType = 4
	OpSetOptions                     OperationType = 5
	OpChangeTrust                    OperationType = 6
	OpAllowTrust                     OperationType = 7
	OpAccountMerge                   OperationType = 8
	OpInflation                      OperationType = 9
	OpManageData                     OperationType = 10
	OpBumpSequence                   OperationType = 11
	OpManageBuyOffer                 OperationType = 12
	OpPathPaymentStrictSend          OperationType = 13
	OpCreateClaimableBalance         OperationType = 14
	OpClaimClaimableBalance          OperationType = 15
	OpBeginSponsoringFutureReserves  OperationType = 16
	OpEndSponsoringFutureReserves    OperationType = 17
	OpRevokeSponsorship              OperationType = 18
	OpClawback                       OperationType = 19
	OpClawbackClaimableBalance       OperationType = 20
	OpSetTrustLineFlags              OperationType = 21
	OpLiquidityPoolDeposit           OperationType = 22
	OpLiquidityPoolWithdraw          OperationType = 23
	OpInvokeHostFunction             OperationType = 24
	OpExtendFootprintTTL             OperationType = 25
	OpRestoreFootprint               OperationType = 26
)

type CreateAccountOp struct {
	Destination     []byte
	StartingBalance int64
}

type PaymentOp struct {
	Destination MuxedAccount
	Asset       Asset
	Amount      int64
}

type PathPaymentStrictReceiveOp struct {
	SendAsset   Asset
	SendMax     int64
	Destination MuxedAccount
	DestAsset   Asset
	DestAmount  int64
	Path        []Asset
}

type PathPaymentStrictSendOp struct {
	SendAsset   Asset
	SendAmount  int64
	Destination MuxedAccount
	DestAsset   Asset
	DestMin     int64
	Path        []Asset
}

type ManageSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
	OfferID int64
}

type ManageBuyOfferOp struct {
	Selling   Asset
	Buying    Asset
	BuyAmount int64
	Price     Price
	OfferID   int64
}

type CreatePassiveSellOfferOp struct {
	Selling Asset
	Buying  Asset
	Amount  int64
	Price   Price
}

type SetOptionsOp struct {
	InflationDestinationPresent bool
	InflationDestination        []byte
	ClearFlagsPresent           bool
	ClearFlags                  uint32
	SetFlagsPresent             bool
	SetFlags                    uint32
	MasterWeightPresent         bool
	MasterWeight                uint32
	LowThresholdPresent         bool
	LowThreshold                uint32
	MediumThresholdPresent      bool
	MediumThreshold             uint32
	HighThresholdPresent        bool
	HighThreshold               uint32
	HomeDomainPresent           bool
	HomeDomain                  []byte
	SignerPresent               bool
	Signer                      Signer
}

type ChangeTrustOp struct {
	Line  ChangeTrustAsset
	Limit int64
}

type AllowTrustOp struct {
	Trustor   []byte
	AssetCode []byte
	Authorize uint32
}

type AccountMergeOp struct {
	Destination MuxedAccount
}

type ManageDataOp struct {
	DataName       []byte
	DataValuePresent bool
	DataValue      []byte
}

type BumpSequenceOp struct {
	BumpTo int64
}

type ClaimPredicateType uint32

const (
	ClaimPredicateUnconditional       ClaimPredicateType = 0
	ClaimPredicateAnd                 ClaimPredicateType = 1
	ClaimPredicateOr                  ClaimPredicateType = 2
	ClaimPredicateNot                 ClaimPredicateType = 3
	ClaimPredicateBeforeAbsoluteTime  ClaimPredicateType = 4
	ClaimPredicateBeforeRelativeTime  ClaimPredicateType = 5
)

// Claimant is retained only as a destination account; the claim
// predicate tree is validated during parse but never materialized
// (predicate display is explicitly unsupported, see formatter).
type Claimant struct {
	Destination []byte
}

type CreateClaimableBalanceOp struct {
	Asset     Asset
	Amount    int64
	Claimants []Claimant
}

type ClaimableBalanceID struct {
	Value []byte // 32 bytes
}

type ClaimClaimableBalanceOp struct {
	BalanceID ClaimableBalanceID
}

type BeginSponsoringFutureReservesOp struct {
	SponsoredID []byte
}

type LedgerEntryType uint32

const (
	LedgerEntryAccount          LedgerEntryType = 0
	LedgerEntryTrustline        LedgerEntryType = 1
	LedgerEntryOffer            LedgerEntryType = 2
	LedgerEntryData             LedgerEntryType = 3
	LedgerEntryClaimableBalance LedgerEntryType = 4
	LedgerEntryLiquidityPool    LedgerEntryType = 5
)

// LedgerKey covers only the ledger-entry variants the core can display
// (spec §4.3); other variants (contract data/code, config setting,
// TTL) fail the parse with MalformedInput.
type LedgerKey struct {
	Type              LedgerEntryType
	AccountID         []byte
	TrustLineAccount  []byte
	TrustLineAsset    TrustLineAsset
	OfferSellerID     []byte
	OfferID           int64
	DataAccountID     []byte
	DataName          []byte
	ClaimableBalance  ClaimableBalanceID
	LiquidityPoolID   []byte
}

type RevokeSponsorshipType uint32

const (
	RevokeSponsorshipLedgerEntry RevokeSponsorshipType = 0
	RevokeSponsorshipSignerKind  RevokeSponsorshipType = 1
)

type RevokeSponsorshipOp struct {
	Type      RevokeSponsorshipType
	LedgerKey LedgerKey
	AccountID []byte
	SignerKey SignerKey
}

type ClawbackOp struct {
	Asset Asset
	From  MuxedAccount
	Amount int64
}

type ClawbackClaimableBalanceOp struct {
	BalanceID ClaimableBalanceID
}

type SetTrustLineFlagsOp struct {
	Trustor    []byte
	Asset      Asset
	ClearFlags uint32
	SetFlags   uint32
}

type LiquidityPoolDepositOp struct {
	LiquidityPoolID []byte
	MaxAmountA      int64
	MaxAmountB      int64
	MinPrice        Price
	MaxPrice        Price
}

type LiquidityPoolWithdrawOp struct {
	LiquidityPoolID []byte
	Amount          int64
	MinAmountA      int64
	MinAmountB      int64
}

type ExtendFootprintTTLOp struct {
	ExtendTo uint32
}

type RestoreFootprintOp struct{}

// Operation is the reusable slot into which one operation at a time is
// decoded. Only the fields matching Type are meaningful; the struct is
// overwritten wholesale on every re-parse, mirroring the single-slot
// footprint strategy described in the spec.
type Operation struct {
	Type                 OperationType
	SourceAccountPresent bool
	SourceAccount        MuxedAccount

	CreateAccount            CreateAccountOp
	Payment                  PaymentOp
	PathPaymentStrictReceive PathPaymentStrictReceiveOp
	PathPaymentStrictSend    PathPaymentStrictSendOp
	ManageSellOffer          ManageSellOfferOp
	ManageBuyOffer           ManageBuyOfferOp
	CreatePassiveSellOffer   CreatePassiveSellOfferOp
	SetOptions               SetOptionsOp
	ChangeTrust              ChangeTrustOp
	AllowTrust               AllowTrustOp
	AccountMerge             AccountMergeOp
	ManageData               ManageDataOp
	BumpSequence             BumpSequenceOp
	CreateClaimableBalance   CreateClaimableBalanceOp
	ClaimClaimableBalance    ClaimClaimableBalanceOp
	BeginSponsoring          BeginSponsoringFutureReservesOp
	RevokeSponsorship        RevokeSponsorshipOp
	Clawback                 ClawbackOp
	ClawbackClaimableBalance ClawbackClaimableBalanceOp
	SetTrustLineFlags        SetTrustLineFlagsOp
	LiquidityPoolDeposit     LiquidityPoolDepositOp
	LiquidityPoolWithdraw    LiquidityPoolWithdrawOp
	InvokeHostFunction       InvokeHostFunctionOp
	ExtendFootprintTTL       ExtendFootprintTTLOp
	RestoreFootprint         RestoreFootprintOp
}
