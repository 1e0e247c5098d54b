package mem

import (
	"errors"

	"github.com/ezrec/retroludos/translate"
)

var f = translate.From

var (
	// Access errors
	ErrAddress  = errors.New(f("invalid memory address"))
	ErrReadOnly = errors.New(f("read-only memory"))

	// Registration errors
	ErrDevice         = errors.New(f("invalid memory device"))
	ErrDeviceNil      = errors.New(f("nil device"))
	ErrDeviceOverflow = errors.New(f("device overflows the address space"))
	ErrDeviceOverlap  = errors.New(f("device overlaps a registered device"))
	ErrDeviceTooLarge = errors.New(f("device image too large"))
)

// ErrAccess is a failed read or write.
type ErrAccess struct {
	Addr  uint16 // Address of the access.
	Width int    // Width of the access, in bytes.
	Err   error  // ErrAddress or ErrReadOnly.
}

func (err *ErrAccess) Error() string {
	return f("0x%04x/%d: %v", err.Addr, err.Width, err.Err)
}

func (err *ErrAccess) Unwrap() error {
	return err.Err
}

// ErrRange is a rejected device registration. It matches ErrDevice.
type ErrRange struct {
	Base uint16
	Size uint16
	Err  error
}

func (err *ErrRange) Error() string {
	return f("%v at 0x%04x size 0x%04x: %v", ErrDevice, err.Base, err.Size, err.Err)
}

func (err *ErrRange) Unwrap() error {
	return err.Err
}

func (err *ErrRange) Is(target error) bool {
	return target == ErrDevice
}
