package mem

import (
	"encoding/binary"
	"math"
	"slices"
)

// Rom is a read-only device over a fixed image.
type Rom struct {
	data []byte
}

var _ Device = (*Rom)(nil)

// NewRom creates a ROM holding a copy of image.
func NewRom(image []byte) (rom *Rom, err error) {
	if len(image) > math.MaxUint16 {
		err = ErrDeviceTooLarge
		return
	}

	rom = &Rom{data: slices.Clone(image)}
	if rom.data == nil {
		rom.data = []byte{}
	}

	return
}

func (rom *Rom) Size() uint16 {
	return uint16(len(rom.data))
}

func (rom *Rom) Read8(addr uint16) (value uint8, err error) {
	err = span(addr, 1, rom.Size())
	if err != nil {
		return
	}

	value = rom.data[addr]
	return
}

func (rom *Rom) Read16(addr uint16) (value uint16, err error) {
	err = span(addr, 2, rom.Size())
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint16(rom.data[addr:])
	return
}

// Write8 fails with ErrReadOnly for any address inside the ROM.
func (rom *Rom) Write8(addr uint16, value uint8) (err error) {
	err = span(addr, 1, rom.Size())
	if err != nil {
		return
	}

	return &ErrAccess{Addr: addr, Width: 1, Err: ErrReadOnly}
}

// Write16 fails with ErrReadOnly for any word inside the ROM.
func (rom *Rom) Write16(addr uint16, value uint16) (err error) {
	err = span(addr, 2, rom.Size())
	if err != nil {
		return
	}

	return &ErrAccess{Addr: addr, Width: 2, Err: ErrReadOnly}
}
