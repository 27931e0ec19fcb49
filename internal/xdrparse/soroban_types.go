package xdrparse

// SCAddressType discriminates an account address from a contract
// address.
type SCAddressType uint32

const (
	SCAddressTypeAccount  SCAddressType = 0
	SCAddressTypeContract SCAddressType = 1
)

// SCAddress is a tagged union over {account, contract}, each a raw
// 32-byte id.
type SCAddress struct {
	Type SCAddressType
	Raw  []byte
}

// InvokeContractArgs names a contract call: the target contract
// address, its function symbol, and the count plus starting offset of
// its argument list. Arguments are never decoded eagerly; the
// formatter re-parses one at a time via ParamAt (SkipSCVal, then
// DecodeSCVal) anchored at ParamsPosition.
type InvokeContractArgs struct {
	Contract       SCAddress
	FunctionName   []byte
	ParamCount     uint32
	ParamsPosition int
}

// HostFunctionType discriminates the three kinds of host invocation an
// operation may carry.
type HostFunctionType uint32

const (
	HostFunctionInvokeContract     HostFunctionType = 0
	HostFunctionCreateContract     HostFunctionType = 1
	HostFunctionUploadContractWasm HostFunctionType = 2
)

// SorobanAuthorizedFunctionType discriminates the two kinds of function
// an authorization entry may cover.
type SorobanAuthorizedFunctionType uint32

const (
	SorobanAuthorizedFunctionContractFn         SorobanAuthorizedFunctionType = 0
	SorobanAuthorizedFunctionCreateContractHost SorobanAuthorizedFunctionType = 1
)

// InvokeHostFunctionOp is the payload of the invoke-host-function
// operation: the function being executed directly (trusted, it is what
// the transaction itself runs) plus the position table of every
// SourceAccount-credentialed authorization entry's invocation tree,
// flattened depth-first and capped at MaxSubInvocations.
type InvokeHostFunctionOp struct {
	HostFunctionType HostFunctionType
	InvokeContract   InvokeContractArgs

	AuthCount           int
	SubInvocationCount  int
	SubInvocationPosns  []int // byte offsets, flattened DFS order, <= MaxSubInvocations
}

// SorobanCredentialsType discriminates the two ways an authorization
// entry proves its authority.
type SorobanCredentialsType uint32

const (
	SorobanCredentialsSourceAccount SorobanCredentialsType = 0
	SorobanCredentialsAddress       SorobanCredentialsType = 1
)

// SorobanAuthorization is the decoded view of a standalone
// HashIDPreimage::SorobanAuthorization entry (envelope type 9), or of
// one root invocation reached from an operation's authorization list.
type SorobanAuthorization struct {
	Nonce                     uint64
	SignatureExpirationLedger uint32
	AuthFunctionType          SorobanAuthorizedFunctionType
	InvokeContract            InvokeContractArgs

	SubInvocationCount int
	SubInvocationPosns []int // byte offsets, flattened DFS order, <= MaxSubInvocations
}
