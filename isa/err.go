package isa

import (
	"errors"

	"github.com/ezrec/retroludos/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrDecode   = errors.New(f("decode"))
	ErrFormat   = errors.New(f("no format matches prefix"))
	ErrOpcode   = errors.New(f("unknown opcode"))
	ErrRegister = errors.New(f("unknown register"))

	// Encode errors
	ErrInstructionNil = errors.New(f("nil instruction"))
)

// ErrWord is a decode failure of a specific word.
type ErrWord struct {
	Word uint16
	Err  error
}

func (err *ErrWord) Error() string {
	return f("decode 0x%04x: %v", err.Word, err.Err)
}

func (err *ErrWord) Unwrap() error {
	return err.Err
}

// Is matches ErrDecode, in addition to the wrapped cause.
func (err *ErrWord) Is(target error) bool {
	return target == ErrDecode
}

// ErrInstruction reports an instruction value holding an invalid field.
type ErrInstruction struct {
	Format Format
	Field  string
	Err    error
}

func (err *ErrInstruction) Error() string {
	return f("%v %v: %v", err.Format, err.Field, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
