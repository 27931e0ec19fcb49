package xdrparse

import "github.com/withobsrvr/txscan/internal/xdrcodec"

// ParseInvokeContractArgs decodes a contract invocation's address,
// function symbol, and argument-list position. Each argument is
// structurally skipped with SkipSCVal, not decoded, leaving c after the
// whole list; ParamsPosition records where the list starts so ParamAt
// can re-anchor there for on-demand decode.
func ParseInvokeContractArgs(c *Cursor) (InvokeContractArgs, error) {
	addr, err := ParseSCAddress(c)
	if err != nil {
		return InvokeContractArgs{}, err
	}
	name, err := xdrcodec.BytesPadded(c, ScvSymbolMaxSize)
	if err != nil {
		return InvokeContractArgs{}, err
	}
	count, err := xdrcodec.Uint32(c)
	if err != nil {
		return InvokeContractArgs{}, err
	}
	if count > MaxContractArgs {
		return InvokeContractArgs{}, ErrMalformedInput
	}
	pos := c.Tell()
	for i := uint32(0); i < count; i++ {
		if err := SkipSCVal(c); err != nil {
			return InvokeContractArgs{}, err
		}
	}
	return InvokeContractArgs{Contract: addr, FunctionName: name, ParamCount: count, ParamsPosition: pos}, nil
}

// ParamAt re-parses the i-th argument of args, decoding only that one
// leaf.
func ParamAt(c Cursor, args InvokeContractArgs, index uint32) (SCVal, error) {
	if index >= args.ParamCount {
		return SCVal{}, ErrMalformedInput
	}
	if err := c.Seek(args.ParamsPosition); err != nil {
		return SCVal{}, err
	}
	for i := uint32(0); i < index; i++ {
		if err := SkipSCVal(&c); err != nil {
			return SCVal{}, err
		}
	}
	return DecodeSCVal(&c)
}

func skipContractIDPreimage(c *Cursor) error {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	switch tag {
	case 0: // from address
		if _, err := ParseSCAddress(c); err != nil {
			return err
		}
		return c.Advance(32) // salt
	case 1: // from asset
		_, err := ParseAsset(c)
		return err
	default:
		return ErrMalformedInput
	}
}

func skipContractExecutable(c *Cursor) error {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return err
	}
	switch tag {
	case 0: // wasm
		return c.Advance(HashSize)
	case 1: // stellar asset
		return nil
	default:
		return ErrMalformedInput
	}
}

// parseHostFunction decodes the HostFunction union carried directly by
// an invoke-host-function operation. For CreateContract and
// UploadContractWasm it validates structure but does not retain detail
// beyond the discriminant: those two kinds are not part of the
// contract-invocation display chain described in the spec.
func parseHostFunction(c *Cursor) (HostFunctionType, InvokeContractArgs, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return 0, InvokeContractArgs{}, err
	}
	switch HostFunctionType(tag) {
	case HostFunctionInvokeContract:
		args, err := ParseInvokeContractArgs(c)
		if err != nil {
			return 0, InvokeContractArgs{}, err
		}
		return HostFunctionInvokeContract, args, nil
	case HostFunctionCreateContract:
		if err := skipContractIDPreimage(c); err != nil {
			return 0, InvokeContractArgs{}, err
		}
		if err := skipContractExecutable(c); err != nil {
			return 0, InvokeContractArgs{}, err
		}
		return HostFunctionCreateContract, InvokeContractArgs{}, nil
	case HostFunctionUploadContractWasm:
		if _, err := xdrcodec.BytesPadded(c, 0); err != nil {
			return 0, InvokeContractArgs{}, err
		}
		return HostFunctionUploadContractWasm, InvokeContractArgs{}, nil
	default:
		return 0, InvokeContractArgs{}, ErrMalformedInput
	}
}

// parseAuthorizedFunction decodes the {contract-fn, create-contract}
// union carried by a SorobanAuthorizedInvocation's root function.
func parseAuthorizedFunction(c *Cursor) (SorobanAuthorizedFunctionType, InvokeContractArgs, error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return 0, InvokeContractArgs{}, err
	}
	switch SorobanAuthorizedFunctionType(tag) {
	case SorobanAuthorizedFunctionContractFn:
		args, err := ParseInvokeContractArgs(c)
		if err != nil {
			return 0, InvokeContractArgs{}, err
		}
		return SorobanAuthorizedFunctionContractFn, args, nil
	case SorobanAuthorizedFunctionCreateContractHost:
		if err := skipContractIDPreimage(c); err != nil {
			return 0, InvokeContractArgs{}, err
		}
		if err := skipContractExecutable(c); err != nil {
			return 0, InvokeContractArgs{}, err
		}
		return SorobanAuthorizedFunctionCreateContractHost, InvokeContractArgs{}, nil
	default:
		return 0, InvokeContractArgs{}, ErrMalformedInput
	}
}

// walkAuthorizedInvocation decodes one SorobanAuthorizedInvocation's
// function (returned to the caller) and recursively walks its
// subInvocations, appending each visited node's byte offset to
// positions in depth-first order. positions is shared across the whole
// tree and capped at MaxSubInvocations.
func walkAuthorizedInvocation(c *Cursor, positions *[]int) (SorobanAuthorizedFunctionType, InvokeContractArgs, error) {
	fnType, args, err := parseAuthorizedFunction(c)
	if err != nil {
		return 0, InvokeContractArgs{}, err
	}
	count, err := xdrcodec.Uint32(c)
	if err != nil {
		return 0, InvokeContractArgs{}, err
	}
	for i := uint32(0); i < count; i++ {
		if len(*positions) >= MaxSubInvocations {
			return 0, InvokeContractArgs{}, ErrMalformedInput
		}
		*positions = append(*positions, c.Tell())
		if _, _, err := walkAuthorizedInvocation(c, positions); err != nil {
			return 0, InvokeContractArgs{}, err
		}
	}
	return fnType, args, nil
}

// ParseSorobanAuthorization decodes a standalone authorization entry's
// nonce, expiration ledger, and invocation tree, with every
// sub-invocation recorded for display (spec: "all of them for
// standalone auth envelopes").
func ParseSorobanAuthorization(c *Cursor) (SorobanAuthorization, error) {
	nonce, err := xdrcodec.Uint64(c)
	if err != nil {
		return SorobanAuthorization{}, err
	}
	expLedger, err := xdrcodec.Uint32(c)
	if err != nil {
		return SorobanAuthorization{}, err
	}
	var positions []int
	fnType, args, err := walkAuthorizedInvocation(c, &positions)
	if err != nil {
		return SorobanAuthorization{}, err
	}
	return SorobanAuthorization{
		Nonce:                     nonce,
		SignatureExpirationLedger: expLedger,
		AuthFunctionType:          fnType,
		InvokeContract:            args,
		SubInvocationCount:        len(positions),
		SubInvocationPosns:        positions,
	}, nil
}

// ReparseSubInvocationAt re-decodes the function of the sub-invocation
// whose byte offset is offset (one entry of a recorded position table),
// returning its function type and contract-call arguments. Its nested
// sub-invocations are not returned: their offsets already follow this
// node's own entry in the flattened table, since the walk is depth-first
// and positions is shared across the whole tree.
func ReparseSubInvocationAt(c Cursor, offset int) (SorobanAuthorizedFunctionType, InvokeContractArgs, error) {
	if err := c.Seek(offset); err != nil {
		return 0, InvokeContractArgs{}, err
	}
	return parseAuthorizedFunction(&c)
}

// parseSorobanCredentials decodes the {source-account, address} union
// and reports whether SourceAccount credentials apply (the only case
// in which a transaction-level operation's authorization entry is
// walked for display).
func parseSorobanCredentials(c *Cursor) (isSourceAccount bool, err error) {
	tag, err := xdrcodec.Uint32(c)
	if err != nil {
		return false, err
	}
	switch SorobanCredentialsType(tag) {
	case SorobanCredentialsSourceAccount:
		return true, nil
	case SorobanCredentialsAddress:
		if _, err := ParseSCAddress(c); err != nil {
			return false, err
		}
		if err := c.Advance(8); err != nil { // nonce
			return false, err
		}
		if err := c.Advance(4); err != nil { // signature expiration ledger
			return false, err
		}
		if err := SkipSCVal(c); err != nil { // signature
			return false, err
		}
		return false, nil
	default:
		return false, ErrMalformedInput
	}
}

// parseOperationAuthEntries walks the invoke-host-function operation's
// trailing auth: SorobanAuthorizationEntry<> list. Every entry is
// structurally validated; only entries carrying SourceAccount
// credentials are recorded into the flattened, display-bound position
// table (spec: "only those under SourceAccount credentials for
// transaction envelopes").
func parseOperationAuthEntries(c *Cursor) (authCount int, positions []int, err error) {
	count, err := xdrcodec.Uint32(c)
	if err != nil {
		return 0, nil, err
	}
	for i := uint32(0); i < count; i++ {
		isSourceAccount, err := parseSorobanCredentials(c)
		if err != nil {
			return 0, nil, err
		}
		if isSourceAccount {
			if len(positions) >= MaxSubInvocations {
				return 0, nil, ErrMalformedInput
			}
			positions = append(positions, c.Tell())
		}
		// Entries under other credentials are still walked for structure,
		// but their sub-invocations go to a scratch table, not positions.
		target := &positions
		var unrecorded []int
		if !isSourceAccount {
			target = &unrecorded
		}
		if _, _, err := walkAuthorizedInvocation(c, target); err != nil {
			return 0, nil, err
		}
	}
	return int(count), positions, nil
}

// ParseInvokeHostFunctionOp decodes the invoke-host-function operation
// body: the function being executed, then its trailing authorization
// list.
func ParseInvokeHostFunctionOp(c *Cursor) (InvokeHostFunctionOp, error) {
	hfType, args, err := parseHostFunction(c)
	if err != nil {
		return InvokeHostFunctionOp{}, err
	}
	authCount, positions, err := parseOperationAuthEntries(c)
	if err != nil {
		return InvokeHostFunctionOp{}, err
	}
	return InvokeHostFunctionOp{
		HostFunctionType:   hfType,
		InvokeContract:     args,
		AuthCount:          authCount,
		SubInvocationCount: len(positions),
		SubInvocationPosns: positions,
	}, nil
}
