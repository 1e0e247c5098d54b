package mem

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplexer_AddDevice(t *testing.T) {
	assert := assert.New(t)

	mux := NewMultiplexer()
	assert.NoError(mux.AddDevice(0x0000, NewCard(16)))
	assert.NoError(mux.AddDevice(0x0010, NewCard(16)))

	err := mux.AddDevice(0x0008, NewCard(8))
	assert.ErrorIs(err, ErrDevice)
	assert.ErrorIs(err, ErrDeviceOverlap)

	var rng *ErrRange
	assert.True(errors.As(err, &rng))
	assert.Equal(uint16(0x0008), rng.Base)
	assert.Equal(uint16(8), rng.Size)

	assert.Equal(2, mux.Len())
	assert.Equal("[0x0000..0x0010 0x0010..0x0020]", mux.String())
}

func TestMultiplexer_Overlap(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		base uint16
		size uint16
		err  error
	}){
		{"same base", 0x1000, 0x10, ErrDeviceOverlap},
		{"same base, empty", 0x1000, 0, ErrDeviceOverlap},
		{"from below", 0x0ff0, 0x11, ErrDeviceOverlap},
		{"inside", 0x1004, 0x04, ErrDeviceOverlap},
		{"covering", 0x0f00, 0x0200, ErrDeviceOverlap},
		{"from above", 0x10ff, 0x10, ErrDeviceOverlap},
		{"into next", 0x1100, 0x0f01, ErrDeviceOverlap},
		{"overflow", 0xff00, 0x0100, ErrDeviceOverflow},
		{"overflow, far", 0xffff, 0xffff, ErrDeviceOverflow},
		{"touching below", 0x0ff0, 0x10, nil},
		{"touching above", 0x1100, 0x0f00, nil},
		{"last byte", 0xfffe, 0x01, nil},
	}

	for _, entry := range table {
		mux := NewMultiplexer()
		assert.NoError(mux.AddDevice(0x1000, NewCard(0x100)))
		assert.NoError(mux.AddDevice(0x2000, NewCard(0x100)))

		err := mux.AddDevice(entry.base, NewCard(entry.size))
		if entry.err == nil {
			assert.NoError(err, entry.name)
			assert.Equal(3, mux.Len(), entry.name)
			continue
		}

		assert.ErrorIs(err, entry.err, entry.name)
		assert.ErrorIs(err, ErrDevice, entry.name)
		assert.Equal("[0x1000..0x1100 0x2000..0x2100]", mux.String(), entry.name)
	}
}

func TestMultiplexer_Nil(t *testing.T) {
	assert := assert.New(t)

	mux := NewMultiplexer()
	err := mux.AddDevice(0, nil)
	assert.ErrorIs(err, ErrDeviceNil)
	assert.ErrorIs(err, ErrDevice)
	assert.Equal(0, mux.Len())
}

func TestMultiplexer_Disjoint(t *testing.T) {
	assert := assert.New(t)

	rnd := rand.New(rand.NewSource(0x5eed))

	mux := NewMultiplexer()
	for range 2000 {
		base := uint16(rnd.Intn(0x10000))
		size := uint16(rnd.Intn(0x400))
		before := mux.String()
		err := mux.AddDevice(base, NewCard(size))
		if err != nil {
			assert.ErrorIs(err, ErrDevice)
			assert.Equal(before, mux.String())
		}
	}

	assert.Greater(mux.Len(), 1)

	var lastEnd uint32
	first := true
	for base, device := range mux.Devices() {
		end := uint32(base) + uint32(device.Size())
		assert.LessOrEqual(end, uint32(ADDRESS_MAX))
		if !first {
			assert.LessOrEqual(lastEnd, uint32(base))
		}
		first = false
		lastEnd = end
	}
}

func TestMultiplexer_Access(t *testing.T) {
	assert := assert.New(t)

	mux := NewMultiplexer()
	assert.NoError(mux.AddDevice(0x0000, NewCard(16)))
	assert.NoError(mux.AddDevice(0x0010, NewCard(16)))
	assert.NoError(mux.AddDevice(0x8000, NewCard(0x100)))

	assert.NoError(mux.Write8(0x0, 0xab))
	value, err := mux.Read8(0x0)
	assert.NoError(err)
	assert.Equal(uint8(0xab), value)

	assert.NoError(mux.Write16(0x8010, 0x1234))
	lo, err := mux.Read8(0x8010)
	assert.NoError(err)
	hi, err := mux.Read8(0x8011)
	assert.NoError(err)
	assert.Equal(uint8(0x34), lo)
	assert.Equal(uint8(0x12), hi)

	// Devices see offsets from their own base.
	_, device, ok := mux.Device(0x8011)
	assert.True(ok)
	word, err := device.Read16(0x10)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), word)

	// Round trip every word that fits in each device.
	for base, device := range mux.Devices() {
		end := uint32(base) + uint32(device.Size())
		for addr := uint32(base); addr+1 < end; addr++ {
			want := uint16(addr*7 + 3)
			assert.NoError(mux.Write16(uint16(addr), want))
			got, err := mux.Read16(uint16(addr))
			assert.NoError(err)
			assert.Equal(want, got, "0x%04x", addr)
		}
	}
}

func TestMultiplexer_Boundary(t *testing.T) {
	assert := assert.New(t)

	mux := NewMultiplexer()
	assert.NoError(mux.AddDevice(0x0100, NewCard(16)))

	_, err := mux.Read8(0x010f)
	assert.NoError(err)

	_, err = mux.Read8(0x0110)
	assert.ErrorIs(err, ErrAddress)

	var access *ErrAccess
	assert.True(errors.As(err, &access))
	assert.Equal(uint16(0x0110), access.Addr)

	// Below every device.
	_, err = mux.Read8(0x00ff)
	assert.ErrorIs(err, ErrAddress)
	assert.ErrorIs(mux.Write8(0, 1), ErrAddress)
	_, err = mux.Read16(0xffff)
	assert.ErrorIs(err, ErrAddress)

	// An adjacent device picks up the next address.
	assert.NoError(mux.AddDevice(0x0110, NewCard(16)))
	assert.NoError(mux.Write8(0x0110, 0x77))
	value, err := mux.Read8(0x0110)
	assert.NoError(err)
	assert.Equal(uint8(0x77), value)

	// Words are never merged across devices.
	_, err = mux.Read16(0x010f)
	assert.ErrorIs(err, ErrAddress)
	assert.True(errors.As(err, &access))
	assert.Equal(uint16(0x010f), access.Addr)
	assert.Equal(2, access.Width)
	assert.ErrorIs(mux.Write16(0x010f, 0xffff), ErrAddress)

	_, _, ok := mux.Device(0x0120)
	assert.False(ok)
	_, _, ok = mux.Device(0x0000)
	assert.False(ok)
	base, _, ok := mux.Device(0x011f)
	assert.True(ok)
	assert.Equal(uint16(0x0110), base)
}

func TestMultiplexer_Rom(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom([]byte{0x00, 0x12, 0x34})
	assert.NoError(err)

	mux := NewMultiplexer()
	mux.Verbose = true
	assert.NoError(mux.AddDevice(0xf000, rom))

	word, err := mux.Read16(0xf001)
	assert.NoError(err)
	assert.Equal(uint16(0x3412), word)

	err = mux.Write8(0xf000, 1)
	assert.ErrorIs(err, ErrReadOnly)

	var access *ErrAccess
	assert.True(errors.As(err, &access))
	assert.Equal(uint16(0xf000), access.Addr)
}

func TestMultiplexer_Empty(t *testing.T) {
	assert := assert.New(t)

	mux := NewMultiplexer()
	assert.Equal("[]", mux.String())

	_, err := mux.Read8(0)
	assert.ErrorIs(err, ErrAddress)
	_, err = mux.Read16(0x1234)
	assert.ErrorIs(err, ErrAddress)
	assert.ErrorIs(mux.Write16(0x1234, 0), ErrAddress)

	for range mux.Devices() {
		t.Fatal("empty multiplexer yielded a device")
	}
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for key, value := range Defines() {
		defines[key] = value
	}
	assert.Equal("0xffff", defines["ADDRESS_MAX"])
}
