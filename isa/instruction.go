package isa

import (
	"fmt"
)

// Instruction is a decoded instruction word. The set of implementations is
// closed; every format has exactly one value type.
type Instruction interface {
	fmt.Stringer

	// Format returns the instruction format.
	Format() Format
	// Validate returns an error if the opcode or an operand is not legal.
	Validate() error

	// fields returns the raw opcode and operand values in word order.
	fields() (opcode uint16, operands []uint16)
}

var (
	_ Instruction = NoOperands{}
	_ Instruction = NoSource{}
	_ Instruction = NoDest{}
	_ Instruction = IntUnary{}
	_ Instruction = IntBinary{}
	_ Instruction = IntNoDest{}
	_ Instruction = RatioUnary{}
	_ Instruction = RatioBinary{}
	_ Instruction = RatioNoDest{}
	_ Instruction = IntToRatio{}
	_ Instruction = RatioToInt{}
	_ Instruction = Immediate{}
	_ Instruction = NoDestImm{}
)

// opValid is implemented by all opcode types.
type opValid interface {
	Valid() bool
}

// operand is the validity of a named register operand.
type operand struct {
	name  string
	valid bool
}

// check validates an opcode and its register operands.
func check(format Format, op opValid, regs ...operand) error {
	if !op.Valid() {
		return &ErrInstruction{Format: format, Field: "opcode", Err: ErrOpcode}
	}

	for _, reg := range regs {
		if !reg.valid {
			return &ErrInstruction{Format: format, Field: reg.name, Err: ErrRegister}
		}
	}

	return nil
}

func imm(value int8) uint16 {
	return uint16(uint8(value))
}

// NoOperands is an instruction without explicit operands.
type NoOperands struct {
	Op NoOperandsOp
}

// NewNoOperands builds a validated NoOperands instruction.
func NewNoOperands(op NoOperandsOp) (in NoOperands, err error) {
	in = NoOperands{Op: op}
	err = in.Validate()
	return
}

func (in NoOperands) Format() Format  { return FORMAT_NO_OPERANDS }
func (in NoOperands) Validate() error { return check(FORMAT_NO_OPERANDS, in.Op) }
func (in NoOperands) String() string  { return in.Op.String() }

func (in NoOperands) fields() (uint16, []uint16) {
	return uint16(in.Op), nil
}

// NoSource writes an integer register from an implicit source.
type NoSource struct {
	Op   NoSourceOp
	Dest IntRegister
}

// NewNoSource builds a validated NoSource instruction.
func NewNoSource(op NoSourceOp, dest IntRegister) (in NoSource, err error) {
	in = NoSource{Op: op, Dest: dest}
	err = in.Validate()
	return
}

func (in NoSource) Format() Format { return FORMAT_NO_SOURCE }

func (in NoSource) Validate() error {
	return check(FORMAT_NO_SOURCE, in.Op, operand{"dest", in.Dest.Valid()})
}

func (in NoSource) String() string {
	return fmt.Sprintf("%v %v", in.Op, in.Dest)
}

func (in NoSource) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest)}
}

// NoDest reads an integer register into an implicit destination.
type NoDest struct {
	Op     NoDestOp
	Source IntRegister
}

// NewNoDest builds a validated NoDest instruction.
func NewNoDest(op NoDestOp, source IntRegister) (in NoDest, err error) {
	in = NoDest{Op: op, Source: source}
	err = in.Validate()
	return
}

func (in NoDest) Format() Format { return FORMAT_NO_DEST }

func (in NoDest) Validate() error {
	return check(FORMAT_NO_DEST, in.Op, operand{"source", in.Source.Valid()})
}

func (in NoDest) String() string {
	return fmt.Sprintf("%v %v", in.Op, in.Source)
}

func (in NoDest) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Source)}
}

// IntUnary is a one operand integer operation.
type IntUnary struct {
	Op     IntUnaryOp
	Dest   IntRegister
	Source IntRegister
}

// NewIntUnary builds a validated IntUnary instruction.
func NewIntUnary(op IntUnaryOp, dest, source IntRegister) (in IntUnary, err error) {
	in = IntUnary{Op: op, Dest: dest, Source: source}
	err = in.Validate()
	return
}

func (in IntUnary) Format() Format { return FORMAT_INT_UNARY }

func (in IntUnary) Validate() error {
	return check(FORMAT_INT_UNARY, in.Op, operand{"dest", in.Dest.Valid()}, operand{"source", in.Source.Valid()})
}

func (in IntUnary) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Dest, in.Source)
}

func (in IntUnary) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Source)}
}

// IntBinary is a two operand integer operation.
type IntBinary struct {
	Op   IntBinaryOp
	Dest IntRegister
	Lhs  IntRegister
	Rhs  IntRegister
}

// NewIntBinary builds a validated IntBinary instruction.
func NewIntBinary(op IntBinaryOp, dest, lhs, rhs IntRegister) (in IntBinary, err error) {
	in = IntBinary{Op: op, Dest: dest, Lhs: lhs, Rhs: rhs}
	err = in.Validate()
	return
}

func (in IntBinary) Format() Format { return FORMAT_INT_BINARY }

func (in IntBinary) Validate() error {
	return check(FORMAT_INT_BINARY, in.Op, operand{"dest", in.Dest.Valid()}, operand{"lhs", in.Lhs.Valid()}, operand{"rhs", in.Rhs.Valid()})
}

func (in IntBinary) String() string {
	return fmt.Sprintf("%v %v, %v, %v", in.Op, in.Dest, in.Lhs, in.Rhs)
}

func (in IntBinary) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Lhs), uint16(in.Rhs)}
}

// IntNoDest is a two operand integer operation without a destination.
type IntNoDest struct {
	Op  IntNoDestOp
	Lhs IntRegister
	Rhs IntRegister
}

// NewIntNoDest builds a validated IntNoDest instruction.
func NewIntNoDest(op IntNoDestOp, lhs, rhs IntRegister) (in IntNoDest, err error) {
	in = IntNoDest{Op: op, Lhs: lhs, Rhs: rhs}
	err = in.Validate()
	return
}

func (in IntNoDest) Format() Format { return FORMAT_INT_NO_DEST }

func (in IntNoDest) Validate() error {
	return check(FORMAT_INT_NO_DEST, in.Op, operand{"lhs", in.Lhs.Valid()}, operand{"rhs", in.Rhs.Valid()})
}

func (in IntNoDest) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Lhs, in.Rhs)
}

func (in IntNoDest) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Lhs), uint16(in.Rhs)}
}

// RatioUnary is a one operand ratio operation.
type RatioUnary struct {
	Op     RatioUnaryOp
	Dest   RatioRegister
	Source RatioRegister
}

// NewRatioUnary builds a validated RatioUnary instruction.
func NewRatioUnary(op RatioUnaryOp, dest, source RatioRegister) (in RatioUnary, err error) {
	in = RatioUnary{Op: op, Dest: dest, Source: source}
	err = in.Validate()
	return
}

func (in RatioUnary) Format() Format { return FORMAT_RATIO_UNARY }

func (in RatioUnary) Validate() error {
	return check(FORMAT_RATIO_UNARY, in.Op, operand{"dest", in.Dest.Valid()}, operand{"source", in.Source.Valid()})
}

func (in RatioUnary) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Dest, in.Source)
}

func (in RatioUnary) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Source)}
}

// RatioBinary is a two operand ratio operation.
type RatioBinary struct {
	Op   RatioBinaryOp
	Dest RatioRegister
	Lhs  RatioRegister
	Rhs  RatioRegister
}

// NewRatioBinary builds a validated RatioBinary instruction.
func NewRatioBinary(op RatioBinaryOp, dest, lhs, rhs RatioRegister) (in RatioBinary, err error) {
	in = RatioBinary{Op: op, Dest: dest, Lhs: lhs, Rhs: rhs}
	err = in.Validate()
	return
}

func (in RatioBinary) Format() Format { return FORMAT_RATIO_BINARY }

func (in RatioBinary) Validate() error {
	return check(FORMAT_RATIO_BINARY, in.Op, operand{"dest", in.Dest.Valid()}, operand{"lhs", in.Lhs.Valid()}, operand{"rhs", in.Rhs.Valid()})
}

func (in RatioBinary) String() string {
	return fmt.Sprintf("%v %v, %v, %v", in.Op, in.Dest, in.Lhs, in.Rhs)
}

func (in RatioBinary) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Lhs), uint16(in.Rhs)}
}

// RatioNoDest is a two operand ratio operation without a destination.
type RatioNoDest struct {
	Op  RatioNoDestOp
	Lhs RatioRegister
	Rhs RatioRegister
}

// NewRatioNoDest builds a validated RatioNoDest instruction.
func NewRatioNoDest(op RatioNoDestOp, lhs, rhs RatioRegister) (in RatioNoDest, err error) {
	in = RatioNoDest{Op: op, Lhs: lhs, Rhs: rhs}
	err = in.Validate()
	return
}

func (in RatioNoDest) Format() Format { return FORMAT_RATIO_NO_DEST }

func (in RatioNoDest) Validate() error {
	return check(FORMAT_RATIO_NO_DEST, in.Op, operand{"lhs", in.Lhs.Valid()}, operand{"rhs", in.Rhs.Valid()})
}

func (in RatioNoDest) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Lhs, in.Rhs)
}

func (in RatioNoDest) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Lhs), uint16(in.Rhs)}
}

// IntToRatio converts from an integer register into a ratio register.
type IntToRatio struct {
	Op     IntToRatioOp
	Dest   RatioRegister
	Source IntRegister
}

// NewIntToRatio builds a validated IntToRatio instruction.
func NewIntToRatio(op IntToRatioOp, dest RatioRegister, source IntRegister) (in IntToRatio, err error) {
	in = IntToRatio{Op: op, Dest: dest, Source: source}
	err = in.Validate()
	return
}

func (in IntToRatio) Format() Format { return FORMAT_INT_TO_RATIO }

func (in IntToRatio) Validate() error {
	return check(FORMAT_INT_TO_RATIO, in.Op, operand{"dest", in.Dest.Valid()}, operand{"source", in.Source.Valid()})
}

func (in IntToRatio) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Dest, in.Source)
}

func (in IntToRatio) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Source)}
}

// RatioToInt converts from a ratio register into an integer register.
type RatioToInt struct {
	Op     RatioToIntOp
	Dest   IntRegister
	Source RatioRegister
}

// NewRatioToInt builds a validated RatioToInt instruction.
func NewRatioToInt(op RatioToIntOp, dest IntRegister, source RatioRegister) (in RatioToInt, err error) {
	in = RatioToInt{Op: op, Dest: dest, Source: source}
	err = in.Validate()
	return
}

func (in RatioToInt) Format() Format { return FORMAT_RATIO_TO_INT }

func (in RatioToInt) Validate() error {
	return check(FORMAT_RATIO_TO_INT, in.Op, operand{"dest", in.Dest.Valid()}, operand{"source", in.Source.Valid()})
}

func (in RatioToInt) String() string {
	return fmt.Sprintf("%v %v, %v", in.Op, in.Dest, in.Source)
}

func (in RatioToInt) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), uint16(in.Source)}
}

// Immediate combines an integer register with an 8-bit signed immediate.
type Immediate struct {
	Op        ImmediateOp
	Dest      IntRegister
	Immediate int8
}

// NewImmediate builds a validated Immediate instruction.
func NewImmediate(op ImmediateOp, dest IntRegister, immediate int8) (in Immediate, err error) {
	in = Immediate{Op: op, Dest: dest, Immediate: immediate}
	err = in.Validate()
	return
}

func (in Immediate) Format() Format { return FORMAT_IMMEDIATE }

func (in Immediate) Validate() error {
	return check(FORMAT_IMMEDIATE, in.Op, operand{"dest", in.Dest.Valid()})
}

func (in Immediate) String() string {
	return fmt.Sprintf("%v %v, %d", in.Op, in.Dest, in.Immediate)
}

func (in Immediate) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{uint16(in.Dest), imm(in.Immediate)}
}

// NoDestImm is a branch with an 8-bit signed displacement.
type NoDestImm struct {
	Op        NoDestImmOp
	Immediate int8
}

// NewNoDestImm builds a validated NoDestImm instruction.
func NewNoDestImm(op NoDestImmOp, immediate int8) (in NoDestImm, err error) {
	in = NoDestImm{Op: op, Immediate: immediate}
	err = in.Validate()
	return
}

func (in NoDestImm) Format() Format  { return FORMAT_NO_DEST_IMM }
func (in NoDestImm) Validate() error { return check(FORMAT_NO_DEST_IMM, in.Op) }

func (in NoDestImm) String() string {
	return fmt.Sprintf("%v %d", in.Op, in.Immediate)
}

func (in NoDestImm) fields() (uint16, []uint16) {
	return uint16(in.Op), []uint16{imm(in.Immediate)}
}
