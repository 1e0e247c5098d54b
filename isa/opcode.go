package isa

// NoOperandsOp is an opcode of the FORMAT_NO_OPERANDS format.
type NoOperandsOp uint16

//go:generate go tool stringer -linecomment -type=NoOperandsOp
const (
	NO_OPERANDS_NOP  = NoOperandsOp(0) // nop
	NO_OPERANDS_RET  = NoOperandsOp(1) // ret
	NO_OPERANDS_HALT = NoOperandsOp(2) // halt
)

// Valid returns true if the opcode is defined.
func (op NoOperandsOp) Valid() bool { return op <= NO_OPERANDS_HALT }

// NoSourceOp is an opcode of the FORMAT_NO_SOURCE format.
type NoSourceOp uint16

//go:generate go tool stringer -linecomment -type=NoSourceOp
const (
	NO_SOURCE_POP  = NoSourceOp(0) // pop
	NO_SOURCE_LDSP = NoSourceOp(1) // ldsp
	NO_SOURCE_LDF  = NoSourceOp(2) // ldf
)

// Valid returns true if the opcode is defined.
func (op NoSourceOp) Valid() bool { return op <= NO_SOURCE_LDF }

// NoDestOp is an opcode of the FORMAT_NO_DEST format.
type NoDestOp uint16

//go:generate go tool stringer -linecomment -type=NoDestOp
const (
	NO_DEST_PUSH  = NoDestOp(0) // push
	NO_DEST_STSP  = NoDestOp(1) // stsp
	NO_DEST_ADDSP = NoDestOp(2) // addsp
	NO_DEST_SUBSP = NoDestOp(3) // subsp
	NO_DEST_STF   = NoDestOp(4) // stf
	NO_DEST_JABS  = NoDestOp(5) // jabs
	NO_DEST_CABS  = NoDestOp(6) // cabs
)

// Valid returns true if the opcode is defined.
func (op NoDestOp) Valid() bool { return op <= NO_DEST_CABS }

// IntUnaryOp is an opcode of the FORMAT_INT_UNARY format.
type IntUnaryOp uint16

//go:generate go tool stringer -linecomment -type=IntUnaryOp
const (
	INT_UNARY_CPY = IntUnaryOp(0) // cpy
	INT_UNARY_ST  = IntUnaryOp(1) // st
	INT_UNARY_NOT = IntUnaryOp(2) // not
	INT_UNARY_NEG = IntUnaryOp(3) // neg
)

// Valid returns true if the opcode is defined.
func (op IntUnaryOp) Valid() bool { return op <= INT_UNARY_NEG }

// IntBinaryOp is an opcode of the FORMAT_INT_BINARY format.
type IntBinaryOp uint16

//go:generate go tool stringer -linecomment -type=IntBinaryOp
const (
	INT_BINARY_OR   = IntBinaryOp(0)  // or
	INT_BINARY_AND  = IntBinaryOp(1)  // and
	INT_BINARY_XOR  = IntBinaryOp(2)  // xor
	INT_BINARY_SHL  = IntBinaryOp(3)  // shl
	INT_BINARY_SHR  = IntBinaryOp(4)  // shr
	INT_BINARY_ROL  = IntBinaryOp(5)  // rol
	INT_BINARY_ROR  = IntBinaryOp(6)  // ror
	INT_BINARY_ADD  = IntBinaryOp(7)  // add
	INT_BINARY_SUB  = IntBinaryOp(8)  // sub
	INT_BINARY_MUL  = IntBinaryOp(9)  // mul
	INT_BINARY_MULU = IntBinaryOp(10) // mulu
	INT_BINARY_MULS = IntBinaryOp(11) // muls
	INT_BINARY_QUOT = IntBinaryOp(12) // quot
	INT_BINARY_REM  = IntBinaryOp(13) // rem
	INT_BINARY_DIV  = IntBinaryOp(14) // div
)

// Valid returns true if the opcode is defined.
func (op IntBinaryOp) Valid() bool { return op <= INT_BINARY_DIV }

// IntNoDestOp is an opcode of the FORMAT_INT_NO_DEST format.
type IntNoDestOp uint16

//go:generate go tool stringer -linecomment -type=IntNoDestOp
const (
	INT_NO_DEST_CMP = IntNoDestOp(0) // cmp
	INT_NO_DEST_LD  = IntNoDestOp(1) // ld
)

// Valid returns true if the opcode is defined.
func (op IntNoDestOp) Valid() bool { return op <= INT_NO_DEST_LD }

// RatioUnaryOp is an opcode of the FORMAT_RATIO_UNARY format.
type RatioUnaryOp uint16

//go:generate go tool stringer -linecomment -type=RatioUnaryOp
const (
	RATIO_UNARY_NEG = RatioUnaryOp(0) // neg
	RATIO_UNARY_INV = RatioUnaryOp(1) // inv
)

// Valid returns true if the opcode is defined.
func (op RatioUnaryOp) Valid() bool { return op <= RATIO_UNARY_INV }

// RatioBinaryOp is an opcode of the FORMAT_RATIO_BINARY format.
// The u/s suffix selects unsigned or signed numerators.
type RatioBinaryOp uint16

//go:generate go tool stringer -linecomment -type=RatioBinaryOp
const (
	RATIO_BINARY_ADDRU = RatioBinaryOp(0) // addru
	RATIO_BINARY_ADDRS = RatioBinaryOp(1) // addrs
	RATIO_BINARY_SUBRU = RatioBinaryOp(2) // subru
	RATIO_BINARY_SUBRS = RatioBinaryOp(3) // subrs
	RATIO_BINARY_MULRU = RatioBinaryOp(4) // mulru
	RATIO_BINARY_MULRS = RatioBinaryOp(5) // mulrs
	RATIO_BINARY_DIVRU = RatioBinaryOp(6) // divru
	RATIO_BINARY_DIVRS = RatioBinaryOp(7) // divrs
)

// Valid returns true if the opcode is defined.
func (op RatioBinaryOp) Valid() bool { return op <= RATIO_BINARY_DIVRS }

// RatioNoDestOp is an opcode of the FORMAT_RATIO_NO_DEST format.
type RatioNoDestOp uint16

//go:generate go tool stringer -linecomment -type=RatioNoDestOp
const (
	RATIO_NO_DEST_CMPR = RatioNoDestOp(0) // cmpr
)

// Valid returns true if the opcode is defined.
func (op RatioNoDestOp) Valid() bool { return op <= RATIO_NO_DEST_CMPR }

// IntToRatioOp is an opcode of the FORMAT_INT_TO_RATIO format.
type IntToRatioOp uint16

//go:generate go tool stringer -linecomment -type=IntToRatioOp
const (
	INT_TO_RATIO_RAT   = IntToRatioOp(0) // rat
	INT_TO_RATIO_LDDEN = IntToRatioOp(1) // ldden
	INT_TO_RATIO_LDNUM = IntToRatioOp(2) // ldnum
)

// Valid returns true if the opcode is defined.
func (op IntToRatioOp) Valid() bool { return op <= INT_TO_RATIO_LDNUM }

// RatioToIntOp is an opcode of the FORMAT_RATIO_TO_INT format.
type RatioToIntOp uint16

//go:generate go tool stringer -linecomment -type=RatioToIntOp
const (
	RATIO_TO_INT_RND   = RatioToIntOp(0) // rnd
	RATIO_TO_INT_TRNC  = RatioToIntOp(1) // trnc
	RATIO_TO_INT_FLR   = RatioToIntOp(2) // flr
	RATIO_TO_INT_CEIL  = RatioToIntOp(3) // ceil
	RATIO_TO_INT_STDEN = RatioToIntOp(4) // stden
	RATIO_TO_INT_STNUM = RatioToIntOp(5) // stnum
)

// Valid returns true if the opcode is defined.
func (op RatioToIntOp) Valid() bool { return op <= RATIO_TO_INT_STNUM }

// ImmediateOp is an opcode of the FORMAT_IMMEDIATE format.
type ImmediateOp uint16

//go:generate go tool stringer -linecomment -type=ImmediateOp
const (
	IMMEDIATE_LDIL = ImmediateOp(0) // ldil
	IMMEDIATE_LDIH = ImmediateOp(1) // ldih
	IMMEDIATE_ORIL = ImmediateOp(2) // oril
	IMMEDIATE_ORIH = ImmediateOp(3) // orih
	IMMEDIATE_SHLI = ImmediateOp(4) // shli
	IMMEDIATE_SHRI = ImmediateOp(5) // shri
	IMMEDIATE_ADDI = ImmediateOp(6) // addi
	IMMEDIATE_MULI = ImmediateOp(7) // muli
)

// Valid returns true if the opcode is defined.
func (op ImmediateOp) Valid() bool { return op <= IMMEDIATE_MULI }

// NoDestImmOp is an opcode of the FORMAT_NO_DEST_IMM format.
// These are the relative branches; the immediate is the displacement.
type NoDestImmOp uint16

//go:generate go tool stringer -linecomment -type=NoDestImmOp
const (
	NO_DEST_IMM_JMP  = NoDestImmOp(0)  // jmp
	NO_DEST_IMM_CALL = NoDestImmOp(1)  // call
	NO_DEST_IMM_JC   = NoDestImmOp(2)  // jc
	NO_DEST_IMM_JNC  = NoDestImmOp(3)  // jnc
	NO_DEST_IMM_JB   = NoDestImmOp(4)  // jb
	NO_DEST_IMM_JNB  = NoDestImmOp(5)  // jnb
	NO_DEST_IMM_JO   = NoDestImmOp(6)  // jo
	NO_DEST_IMM_JNO  = NoDestImmOp(7)  // jno
	NO_DEST_IMM_JS   = NoDestImmOp(8)  // js
	NO_DEST_IMM_JNS  = NoDestImmOp(9)  // jns
	NO_DEST_IMM_JZ   = NoDestImmOp(10) // jz
	NO_DEST_IMM_JNZ  = NoDestImmOp(11) // jnz
	NO_DEST_IMM_JA   = NoDestImmOp(12) // ja
	NO_DEST_IMM_JGE  = NoDestImmOp(13) // jge
	NO_DEST_IMM_JL   = NoDestImmOp(14) // jl
	NO_DEST_IMM_JBE  = NoDestImmOp(15) // jbe
)

// Valid returns true if the opcode is defined.
func (op NoDestImmOp) Valid() bool { return op <= NO_DEST_IMM_JBE }
