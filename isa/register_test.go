package isa

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntRegister(t *testing.T) {
	assert := assert.New(t)

	for code := range 256 {
		reg, ok := IntRegisterFromCode(uint8(code))
		if code < 8 {
			assert.True(ok, code)
			assert.Equal(uint8(code), reg.Code())
			assert.True(reg.Valid())
		} else {
			assert.False(ok, code)
		}
	}

	reg, ok := IntRegisterFromCode(7)
	assert.True(ok)
	assert.Equal(REG_I7, reg)
	assert.Equal("i7", reg.String())

	_, ok = IntRegisterFromCode(8)
	assert.False(ok)

	assert.False(IntRegister(8).Valid())
	assert.Equal("IntRegister(8)", IntRegister(8).String())
}

func TestRatioRegister(t *testing.T) {
	assert := assert.New(t)

	for code := range 256 {
		reg, ok := RatioRegisterFromCode(uint8(code))
		if code < 4 {
			assert.True(ok, code)
			assert.Equal(uint8(code), reg.Code())
			assert.True(reg.Valid())
		} else {
			assert.False(ok, code)
		}
	}

	reg, ok := RatioRegisterFromCode(2)
	assert.True(ok)
	assert.Equal(REG_R2, reg)
	assert.Equal("r2", reg.String())

	assert.False(RatioRegister(4).Valid())
}
