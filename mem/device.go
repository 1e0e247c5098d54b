// Package mem models the 16-bit address space of the RetroLudos CPU.
//
// A Device is a byte addressable store starting at address 0. The
// Multiplexer places devices at base addresses in one flat address space
// and routes every access to the single device that owns it.
//
// Words are little-endian: the low byte lives at the lower address.
package mem

import (
	"fmt"
	"iter"
	"maps"
)

const (
	ADDRESS_MAX = 0xffff // Highest address of the 16-bit address space.
)

var _mem_defines = map[string]string{
	"ADDRESS_MAX": fmt.Sprintf("0x%x", ADDRESS_MAX),
}

// Defines returns the memory constants as name/value pairs.
func Defines() iter.Seq2[string, string] {
	return maps.All(_mem_defines)
}

// Device is an addressable byte store. Addresses are relative to the start
// of the device, and an access fails with ErrAddress unless every byte
// touched lies in [0, Size()).
type Device interface {
	// Size returns the number of addressable bytes.
	Size() uint16
	// Read8 reads the byte at addr.
	Read8(addr uint16) (value uint8, err error)
	// Read16 reads the little-endian word at addr and addr+1.
	Read16(addr uint16) (value uint16, err error)
	// Write8 writes the byte at addr.
	Write8(addr uint16, value uint8) (err error)
	// Write16 writes the little-endian word at addr and addr+1.
	Write16(addr uint16, value uint16) (err error)
}

// span checks that [addr, addr+width) lies within size bytes.
func span(addr uint16, width int, size uint16) (err error) {
	last := uint32(addr) + uint32(width) - 1
	if last > ADDRESS_MAX || last >= uint32(size) {
		err = &ErrAccess{Addr: addr, Width: width, Err: ErrAddress}
	}
	return
}
