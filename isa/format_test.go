package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Widths(t *testing.T) {
	assert := assert.New(t)

	count := 0
	for format := range Formats() {
		count++
		assert.True(format.Valid())

		width := format.PrefixWidth() + format.OpcodeWidth()
		for _, field := range format.Fields() {
			width += field.Width()
		}
		assert.Equal(WORD_BITS, width, format.String())
		assert.Less(format.Prefix(), uint16(1)<<format.PrefixWidth(), format.String())
	}

	assert.Equal(FORMAT_COUNT, count)
	assert.False(Format(FORMAT_COUNT).Valid())
	assert.False(Format(-1).Valid())
}

func TestFormat_PrefixFree(t *testing.T) {
	assert := assert.New(t)

	for a := range Formats() {
		for b := range Formats() {
			if a == b {
				continue
			}
			short, long := a, b
			if short.PrefixWidth() > long.PrefixWidth() {
				short, long = long, short
			}
			cut := long.Prefix() >> (long.PrefixWidth() - short.PrefixWidth())
			assert.NotEqual(short.Prefix(), cut, "%v is a prefix of %v", short, long)
		}
	}
}

func TestFormat_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	hits := map[Format]int{}
	for n := range 1 << WORD_BITS {
		word := uint16(n)

		matched := 0
		for format := range Formats() {
			if format.Match(word) {
				matched++
			}
		}
		assert.Equal(1, matched, "word 0x%04x", word)

		format, err := FormatOf(word)
		assert.NoError(err)
		assert.True(format.Match(word))
		hits[format]++
	}

	for format := range Formats() {
		assert.Equal(1<<(WORD_BITS-format.PrefixWidth()), hits[format], format.String())
	}
}

func TestFormat_Fields(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]Field{FIELD_INT_REG, FIELD_IMMEDIATE}, FORMAT_IMMEDIATE.Fields())
	assert.Equal([]Field{FIELD_RATIO_REG, FIELD_INT_REG}, FORMAT_INT_TO_RATIO.Fields())
	assert.Empty(FORMAT_NO_OPERANDS.Fields())

	// Fields returns a copy.
	fields := FORMAT_INT_BINARY.Fields()
	fields[0] = FIELD_IMMEDIATE
	assert.Equal(FIELD_INT_REG, FORMAT_INT_BINARY.Fields()[0])

	assert.Equal(0, Field(7).Width())
	assert.Equal("imm", FIELD_IMMEDIATE.String())
}

func TestErrWord(t *testing.T) {
	assert := assert.New(t)

	err := error(&ErrWord{Word: 0x1234, Err: ErrFormat})
	assert.True(errors.Is(err, ErrDecode))
	assert.True(errors.Is(err, ErrFormat))
	assert.False(errors.Is(err, ErrOpcode))
	assert.Equal("decode 0x1234: no format matches prefix", err.Error())
}
