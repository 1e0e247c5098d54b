package isa

import (
	"fmt"
	"iter"
	"maps"
)

var _isa_defines = map[string]string{
	"WORD_BITS":       fmt.Sprintf("%d", WORD_BITS),
	"IMMEDIATE_MIN":   fmt.Sprintf("%d", -1<<(IMMEDIATE_BITS-1)),
	"IMMEDIATE_MAX":   fmt.Sprintf("%d", 1<<(IMMEDIATE_BITS-1)-1),
	"INT_REGISTERS":   fmt.Sprintf("%d", 1<<INT_REGISTER_BITS),
	"RATIO_REGISTERS": fmt.Sprintf("%d", 1<<RATIO_REGISTER_BITS),
}

// Defines returns the ISA constants as name/value pairs.
func Defines() iter.Seq2[string, string] {
	return maps.All(_isa_defines)
}

func mask(width int) uint16 {
	return uint16(1)<<width - 1
}

func intReg(code uint16) (reg IntRegister, err error) {
	reg, ok := IntRegisterFromCode(uint8(code))
	if !ok || uint16(reg) != code {
		err = ErrRegister
	}
	return
}

func ratioReg(code uint16) (reg RatioRegister, err error) {
	reg, ok := RatioRegisterFromCode(uint8(code))
	if !ok || uint16(reg) != code {
		err = ErrRegister
	}
	return
}

// decoder builds the instruction for one format from raw fields.
type decoder func(opcode uint16, args []uint16) (Instruction, error)

// regs maps each raw argument through the register code tables, returning
// the first failure.
type regs struct {
	args []uint16
	err  error
}

func (r *regs) intAt(n int) (reg IntRegister) {
	if r.err == nil {
		reg, r.err = intReg(r.args[n])
	}
	return
}

func (r *regs) ratioAt(n int) (reg RatioRegister) {
	if r.err == nil {
		reg, r.err = ratioReg(r.args[n])
	}
	return
}

var decoders = [FORMAT_COUNT]decoder{
	FORMAT_NO_OPERANDS: func(opcode uint16, args []uint16) (Instruction, error) {
		op := NoOperandsOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		return NoOperands{Op: op}, nil
	},
	FORMAT_NO_SOURCE: func(opcode uint16, args []uint16) (Instruction, error) {
		op := NoSourceOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := NoSource{Op: op, Dest: r.intAt(0)}
		return in, r.err
	},
	FORMAT_NO_DEST: func(opcode uint16, args []uint16) (Instruction, error) {
		op := NoDestOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := NoDest{Op: op, Source: r.intAt(0)}
		return in, r.err
	},
	FORMAT_INT_UNARY: func(opcode uint16, args []uint16) (Instruction, error) {
		op := IntUnaryOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := IntUnary{Op: op, Dest: r.intAt(0), Source: r.intAt(1)}
		return in, r.err
	},
	FORMAT_INT_BINARY: func(opcode uint16, args []uint16) (Instruction, error) {
		op := IntBinaryOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := IntBinary{Op: op, Dest: r.intAt(0), Lhs: r.intAt(1), Rhs: r.intAt(2)}
		return in, r.err
	},
	FORMAT_INT_NO_DEST: func(opcode uint16, args []uint16) (Instruction, error) {
		op := IntNoDestOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := IntNoDest{Op: op, Lhs: r.intAt(0), Rhs: r.intAt(1)}
		return in, r.err
	},
	FORMAT_RATIO_UNARY: func(opcode uint16, args []uint16) (Instruction, error) {
		op := RatioUnaryOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := RatioUnary{Op: op, Dest: r.ratioAt(0), Source: r.ratioAt(1)}
		return in, r.err
	},
	FORMAT_RATIO_BINARY: func(opcode uint16, args []uint16) (Instruction, error) {
		op := RatioBinaryOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := RatioBinary{Op: op, Dest: r.ratioAt(0), Lhs: r.ratioAt(1), Rhs: r.ratioAt(2)}
		return in, r.err
	},
	FORMAT_RATIO_NO_DEST: func(opcode uint16, args []uint16) (Instruction, error) {
		op := RatioNoDestOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := RatioNoDest{Op: op, Lhs: r.ratioAt(0), Rhs: r.ratioAt(1)}
		return in, r.err
	},
	FORMAT_INT_TO_RATIO: func(opcode uint16, args []uint16) (Instruction, error) {
		op := IntToRatioOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := IntToRatio{Op: op, Dest: r.ratioAt(0), Source: r.intAt(1)}
		return in, r.err
	},
	FORMAT_RATIO_TO_INT: func(opcode uint16, args []uint16) (Instruction, error) {
		op := RatioToIntOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := RatioToInt{Op: op, Dest: r.intAt(0), Source: r.ratioAt(1)}
		return in, r.err
	},
	FORMAT_IMMEDIATE: func(opcode uint16, args []uint16) (Instruction, error) {
		op := ImmediateOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		r := &regs{args: args}
		in := Immediate{Op: op, Dest: r.intAt(0), Immediate: int8(uint8(args[1]))}
		return in, r.err
	},
	FORMAT_NO_DEST_IMM: func(opcode uint16, args []uint16) (Instruction, error) {
		op := NoDestImmOp(opcode)
		if !op.Valid() {
			return nil, ErrOpcode
		}
		return NoDestImm{Op: op, Immediate: int8(uint8(args[0]))}, nil
	},
}

// Decode converts an instruction word into its typed instruction.
// Failures are reported as *ErrWord, which matches ErrDecode.
func Decode(word uint16) (inst Instruction, err error) {
	format, err := FormatOf(word)
	if err != nil {
		return
	}

	lay := &layouts[format]

	shift := WORD_BITS - lay.prefixWidth - lay.opcodeWidth
	opcode := (word >> shift) & mask(lay.opcodeWidth)

	args := make([]uint16, len(lay.fields))
	for n, field := range lay.fields {
		shift -= field.Width()
		args[n] = (word >> shift) & mask(field.Width())
	}

	inst, err = decoders[format](opcode, args)
	if err != nil {
		inst = nil
		err = &ErrWord{Word: word, Err: err}
	}

	return
}

// Encode converts an instruction into its word. Encode only fails for
// instruction values assembled by hand with an illegal opcode or register.
func Encode(inst Instruction) (word uint16, err error) {
	if inst == nil {
		err = ErrInstructionNil
		return
	}

	err = inst.Validate()
	if err != nil {
		return
	}

	lay := &layouts[inst.Format()]
	opcode, operands := inst.fields()

	word = lay.prefix
	word = word<<lay.opcodeWidth | (opcode & mask(lay.opcodeWidth))
	for n, field := range lay.fields {
		word = word<<field.Width() | (operands[n] & mask(field.Width()))
	}

	return
}

// MustEncode is like Encode, but panics on an invalid instruction.
// It is intended for tables of instructions built from constants.
func MustEncode(inst Instruction) uint16 {
	word, err := Encode(inst)
	if err != nil {
		panic(err)
	}
	return word
}
