package xdrparse

// SCValType enumerates the 22 variants of the Soroban dynamic value
// domain.
type SCValType uint32

const (
	SCValBool                     SCValType = 0
	SCValVoid                     SCValType = 1
	SCValError                    SCValType = 2
	SCValU32                      SCValType = 3
	SCValI32                      SCValType = 4
	SCValU64                      SCValType = 5
	SCValI64                      SCValType = 6
	SCValTimepoint                SCValType = 7
	SCValDuration                 SCValType = 8
	SCValU128                     SCValType = 9
	SCValI128                     SCValType = 10
	SCValU256                     SCValType = 11
	SCValI256                     SCValType = 12
	SCValBytes                    SCValType = 13
	SCValString                   SCValType = 14
	SCValSymbol                   SCValType = 15
	SCValVec                      SCValType = 16
	SCValMap                      SCValType = 17
	SCValAddress                  SCValType = 18
	SCValContractInstance         SCValType = 19
	SCValLedgerKeyContractInstance SCValType = 20
	SCValLedgerKeyNonce           SCValType = 21
)

// U256 holds a 256-bit unsigned integer as four big-endian 64-bit limbs.
type U256 struct{ HiHi, HiLo, LoHi, LoLo uint64 }

// I256 holds a 256-bit signed integer; HiHi carries the sign.
type I256 struct {
	HiHi       int64
	HiLo, LoHi, LoLo uint64
}

// SCVal is a fully decoded node of the Soroban value tree. Only the
// field(s) matching Type are meaningful.
type SCVal struct {
	Type SCValType

	B      bool
	U32    uint32
	I32    int32
	U64    uint64
	I64    int64
	U128Hi uint64
	U128Lo uint64
	I128Hi int64
	I128Lo uint64
	U256   U256
	I256   I256
	Bytes  []byte
	Str    []byte
	Sym    []byte
	Vec    []SCVal
	Map    []SCMapEntry

	Address SCAddress

	ErrorIsContractCode bool
	ErrorCode            uint32

	ContractExecutableIsWasm bool
	ContractExecutableHash   []byte

	NonceValue int64
}

// SCMapEntry is one (key, value) pair of an SCVal map.
type SCMapEntry struct {
	Key SCVal
	Val SCVal
}
