package isa

import (
	"iter"
)

const (
	WORD_BITS      = 16 // Width of an instruction word.
	IMMEDIATE_BITS = 8  // Width of an immediate operand.
)

// Field is the kind of an operand field.
type Field int

//go:generate go tool stringer -linecomment -type=Field
const (
	FIELD_INT_REG   = Field(0) // int
	FIELD_RATIO_REG = Field(1) // ratio
	FIELD_IMMEDIATE = Field(2) // imm
)

// Width returns the number of bits of the field.
func (field Field) Width() int {
	switch field {
	case FIELD_INT_REG:
		return INT_REGISTER_BITS
	case FIELD_RATIO_REG:
		return RATIO_REGISTER_BITS
	case FIELD_IMMEDIATE:
		return IMMEDIATE_BITS
	}
	return 0
}

// Format is an instruction format tag.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_IMMEDIATE     = Format(0)  // immediate
	FORMAT_INT_BINARY    = Format(1)  // int-binary
	FORMAT_NO_DEST_IMM   = Format(2)  // no-dest-imm
	FORMAT_RATIO_BINARY  = Format(3)  // ratio-binary
	FORMAT_INT_NO_DEST   = Format(4)  // int-no-dest
	FORMAT_INT_UNARY     = Format(5)  // int-unary
	FORMAT_RATIO_TO_INT  = Format(6)  // ratio-to-int
	FORMAT_INT_TO_RATIO  = Format(7)  // int-to-ratio
	FORMAT_RATIO_NO_DEST = Format(8)  // ratio-no-dest
	FORMAT_RATIO_UNARY   = Format(9)  // ratio-unary
	FORMAT_NO_DEST       = Format(10) // no-dest
	FORMAT_NO_SOURCE     = Format(11) // no-source
	FORMAT_NO_OPERANDS   = Format(12) // no-operands
)

// FORMAT_COUNT is the number of instruction formats.
const FORMAT_COUNT = 13

// layout is the bit layout of a format.
type layout struct {
	prefix      uint16  // Prefix bits, right aligned.
	prefixWidth int     // Width of the prefix.
	opcodeWidth int     // Width of the opcode field.
	fields      []Field // Operand fields, most significant first.
}

// The prefixes are a complete prefix code: no prefix begins another, and
// the sum of 2^-width over all prefixes is exactly 1.
var layouts = [FORMAT_COUNT]layout{
	FORMAT_IMMEDIATE:     {0b00, 2, 3, []Field{FIELD_INT_REG, FIELD_IMMEDIATE}},
	FORMAT_INT_BINARY:    {0b01, 2, 5, []Field{FIELD_INT_REG, FIELD_INT_REG, FIELD_INT_REG}},
	FORMAT_NO_DEST_IMM:   {0b100, 3, 5, []Field{FIELD_IMMEDIATE}},
	FORMAT_RATIO_BINARY:  {0b101, 3, 7, []Field{FIELD_RATIO_REG, FIELD_RATIO_REG, FIELD_RATIO_REG}},
	FORMAT_INT_NO_DEST:   {0b1100, 4, 6, []Field{FIELD_INT_REG, FIELD_INT_REG}},
	FORMAT_INT_UNARY:     {0b1101, 4, 6, []Field{FIELD_INT_REG, FIELD_INT_REG}},
	FORMAT_RATIO_TO_INT:  {0b11100, 5, 6, []Field{FIELD_INT_REG, FIELD_RATIO_REG}},
	FORMAT_INT_TO_RATIO:  {0b11101, 5, 6, []Field{FIELD_RATIO_REG, FIELD_INT_REG}},
	FORMAT_RATIO_NO_DEST: {0b111100, 6, 6, []Field{FIELD_RATIO_REG, FIELD_RATIO_REG}},
	FORMAT_RATIO_UNARY:   {0b111101, 6, 6, []Field{FIELD_RATIO_REG, FIELD_RATIO_REG}},
	FORMAT_NO_DEST:       {0b1111100, 7, 6, []Field{FIELD_INT_REG}},
	FORMAT_NO_SOURCE:     {0b1111101, 7, 6, []Field{FIELD_INT_REG}},
	FORMAT_NO_OPERANDS:   {0b111111, 6, 10, nil},
}

// Formats iterates over all formats in catalog order.
func Formats() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for format := range Format(FORMAT_COUNT) {
			if !yield(format) {
				return
			}
		}
	}
}

// Valid returns true if the format is in the catalog.
func (format Format) Valid() bool {
	return format >= 0 && format < FORMAT_COUNT
}

// Prefix returns the prefix bits of the format, right aligned.
func (format Format) Prefix() uint16 {
	return layouts[format].prefix
}

// PrefixWidth returns the number of prefix bits.
func (format Format) PrefixWidth() int {
	return layouts[format].prefixWidth
}

// OpcodeWidth returns the number of opcode bits.
func (format Format) OpcodeWidth() int {
	return layouts[format].opcodeWidth
}

// Fields returns the operand fields, in word order.
func (format Format) Fields() []Field {
	return append([]Field(nil), layouts[format].fields...)
}

// Match returns true if the word carries this format's prefix.
func (format Format) Match(word uint16) bool {
	lay := &layouts[format]
	return word>>(WORD_BITS-lay.prefixWidth) == lay.prefix
}

// FormatOf classifies a word by its prefix.
func FormatOf(word uint16) (format Format, err error) {
	for candidate := range Formats() {
		if candidate.Match(word) {
			format = candidate
			return
		}
	}

	err = &ErrWord{Word: word, Err: ErrFormat}
	return
}
