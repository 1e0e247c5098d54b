package mem

import (
	"cmp"
	"errors"
	"fmt"
	"iter"
	"log"
	"slices"
	"strings"
)

// entry is a device mapped at a base address.
type entry struct {
	base   uint16
	device Device
}

// end returns the first address past the device. Registration guarantees
// this never wraps.
func (ent *entry) end() uint16 {
	return ent.base + ent.device.Size()
}

// Multiplexer routes accesses in the 16-bit address space to the device
// mapped there. Devices never overlap, and a device at base B sees the
// address A as the offset A-B. A word access straddling two devices is
// not merged; it fails the owning device's bounds check.
//
// A Multiplexer has no internal locking.
type Multiplexer struct {
	Verbose bool // If set, logs device registration.

	entries []entry // Sorted by base.
}

// NewMultiplexer creates an empty multiplexer.
func NewMultiplexer() *Multiplexer {
	return &Multiplexer{}
}

// search returns the index of the first entry with a base >= addr, and
// whether that entry starts exactly at addr.
func (mux *Multiplexer) search(addr uint16) (index int, found bool) {
	return slices.BinarySearchFunc(mux.entries, addr, func(ent entry, addr uint16) int {
		return cmp.Compare(ent.base, addr)
	})
}

// AddDevice maps a device at base. It fails with an *ErrRange when the
// device would run past the end of the address space or overlap a mapped
// device, and the multiplexer is left unchanged.
//
// The multiplexer takes ownership of the device.
func (mux *Multiplexer) AddDevice(base uint16, device Device) (err error) {
	defer func() {
		if err != nil && mux.Verbose {
			log.Printf("mem: reject %T at 0x%04x: %v", device, base, err)
		}
	}()

	if device == nil {
		err = &ErrRange{Base: base, Err: ErrDeviceNil}
		return
	}

	size := device.Size()
	fail := func(reason error) error {
		return &ErrRange{Base: base, Size: size, Err: reason}
	}

	end := base + size
	if end < base {
		err = fail(ErrDeviceOverflow)
		return
	}

	index, found := mux.search(base)
	if found {
		err = fail(ErrDeviceOverlap)
		return
	}

	if index > 0 {
		below := &mux.entries[index-1]
		if below.end() > base {
			err = fail(ErrDeviceOverlap)
			return
		}
	}

	if index < len(mux.entries) {
		above := &mux.entries[index]
		if end > above.base {
			err = fail(ErrDeviceOverlap)
			return
		}
	}

	mux.entries = slices.Insert(mux.entries, index, entry{base: base, device: device})

	if mux.Verbose {
		log.Printf("mem: map %T at 0x%04x..0x%04x", device, base, end)
	}

	return
}

// lookup returns the entry with the greatest base <= addr.
func (mux *Multiplexer) lookup(addr uint16, width int) (ent *entry, err error) {
	index, found := mux.search(addr)
	if !found {
		index--
	}

	if index < 0 {
		err = &ErrAccess{Addr: addr, Width: width, Err: ErrAddress}
		return
	}

	ent = &mux.entries[index]
	return
}

// fault reports a device failure at the global address.
func fault(addr uint16, width int, err error) error {
	var access *ErrAccess
	if errors.As(err, &access) {
		return &ErrAccess{Addr: addr, Width: width, Err: access.Err}
	}
	return err
}

// Device returns the device that owns addr, and its base address.
func (mux *Multiplexer) Device(addr uint16) (base uint16, device Device, ok bool) {
	ent, err := mux.lookup(addr, 1)
	if err != nil || addr-ent.base >= ent.device.Size() {
		return
	}

	return ent.base, ent.device, true
}

// Devices iterates over the mapped devices in address order.
func (mux *Multiplexer) Devices() iter.Seq2[uint16, Device] {
	return func(yield func(base uint16, device Device) bool) {
		for _, ent := range mux.entries {
			if !yield(ent.base, ent.device) {
				return
			}
		}
	}
}

// Len returns the number of mapped devices.
func (mux *Multiplexer) Len() int {
	return len(mux.entries)
}

// String lists the mapped address ranges.
func (mux *Multiplexer) String() string {
	ranges := make([]string, 0, len(mux.entries))
	for _, ent := range mux.entries {
		ranges = append(ranges, fmt.Sprintf("0x%04x..0x%04x", ent.base, ent.end()))
	}
	return "[" + strings.Join(ranges, " ") + "]"
}

func (mux *Multiplexer) Read8(addr uint16) (value uint8, err error) {
	ent, err := mux.lookup(addr, 1)
	if err != nil {
		return
	}

	value, err = ent.device.Read8(addr - ent.base)
	if err != nil {
		err = fault(addr, 1, err)
	}
	return
}

func (mux *Multiplexer) Read16(addr uint16) (value uint16, err error) {
	ent, err := mux.lookup(addr, 2)
	if err != nil {
		return
	}

	value, err = ent.device.Read16(addr - ent.base)
	if err != nil {
		err = fault(addr, 2, err)
	}
	return
}

func (mux *Multiplexer) Write8(addr uint16, value uint8) (err error) {
	ent, err := mux.lookup(addr, 1)
	if err != nil {
		return
	}

	err = ent.device.Write8(addr-ent.base, value)
	if err != nil {
		err = fault(addr, 1, err)
	}
	return
}

func (mux *Multiplexer) Write16(addr uint16, value uint16) (err error) {
	ent, err := mux.lookup(addr, 2)
	if err != nil {
		return
	}

	err = ent.device.Write16(addr-ent.base, value)
	if err != nil {
		err = fault(addr, 2, err)
	}
	return
}
