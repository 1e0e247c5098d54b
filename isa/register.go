package isa

const (
	INT_REGISTER_BITS   = 3 // Width of an integer register code.
	RATIO_REGISTER_BITS = 2 // Width of a ratio register code.
)

// IntRegister is an integer register.
type IntRegister uint8

//go:generate go tool stringer -linecomment -type=IntRegister
const (
	REG_I0 = IntRegister(0b000) // i0
	REG_I1 = IntRegister(0b001) // i1
	REG_I2 = IntRegister(0b010) // i2
	REG_I3 = IntRegister(0b011) // i3
	REG_I4 = IntRegister(0b100) // i4
	REG_I5 = IntRegister(0b101) // i5
	REG_I6 = IntRegister(0b110) // i6
	REG_I7 = IntRegister(0b111) // i7
)

// IntRegisterFromCode returns the integer register for a 3-bit code.
func IntRegisterFromCode(code uint8) (reg IntRegister, ok bool) {
	if code >= 1<<INT_REGISTER_BITS {
		return
	}

	return IntRegister(code), true
}

// Code returns the 3-bit register code.
func (reg IntRegister) Code() uint8 {
	return uint8(reg)
}

// Valid returns true if the register is one of i0..i7.
func (reg IntRegister) Valid() bool {
	return reg <= REG_I7
}

// RatioRegister is a rational number register.
type RatioRegister uint8

//go:generate go tool stringer -linecomment -type=RatioRegister
const (
	REG_R0 = RatioRegister(0b00) // r0
	REG_R1 = RatioRegister(0b01) // r1
	REG_R2 = RatioRegister(0b10) // r2
	REG_R3 = RatioRegister(0b11) // r3
)

// RatioRegisterFromCode returns the ratio register for a 2-bit code.
func RatioRegisterFromCode(code uint8) (reg RatioRegister, ok bool) {
	if code >= 1<<RATIO_REGISTER_BITS {
		return
	}

	return RatioRegister(code), true
}

// Code returns the 2-bit register code.
func (reg RatioRegister) Code() uint8 {
	return uint8(reg)
}

// Valid returns true if the register is one of r0..r3.
func (reg RatioRegister) Valid() bool {
	return reg <= REG_R3
}
