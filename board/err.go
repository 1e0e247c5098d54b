package board

import (
	"errors"

	"github.com/ezrec/retroludos/translate"
)

var f = translate.From

var (
	ErrBoard    = errors.New(f("board"))
	ErrArgument = errors.New(f("argument out of range"))
	ErrRomData  = errors.New(f("rom data must be bytes, a string, or a list of byte values"))
	ErrDefine   = errors.New(f("define is not an integer"))
)

// ErrScript is a failure while running a board script.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v %v: %v", ErrBoard, err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}

func (err *ErrScript) Is(target error) bool {
	return target == ErrBoard
}
