package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	assert := assert.New(t)

	card := NewCard(16)
	assert.Equal(uint16(16), card.Size())

	for addr := range uint16(16) {
		value, err := card.Read8(addr)
		assert.NoError(err)
		assert.Equal(uint8(0), value)
	}

	assert.NoError(card.Write8(0, 0xab))
	value, err := card.Read8(0)
	assert.NoError(err)
	assert.Equal(uint8(0xab), value)

	assert.NoError(card.Write16(4, 0x1234))
	lo, _ := card.Read8(4)
	hi, _ := card.Read8(5)
	assert.Equal(uint8(0x34), lo)
	assert.Equal(uint8(0x12), hi)

	word, err := card.Read16(4)
	assert.NoError(err)
	assert.Equal(uint16(0x1234), word)

	// Unaligned words are fine.
	word, err = card.Read16(3)
	assert.NoError(err)
	assert.Equal(uint16(0x3400), word)
}

func TestCard_Bounds(t *testing.T) {
	assert := assert.New(t)

	card := NewCard(16)

	_, err := card.Read8(15)
	assert.NoError(err)

	_, err = card.Read8(16)
	assert.ErrorIs(err, ErrAddress)

	_, err = card.Read16(14)
	assert.NoError(err)

	_, err = card.Read16(15)
	assert.ErrorIs(err, ErrAddress)

	var access *ErrAccess
	assert.True(errors.As(err, &access))
	assert.Equal(uint16(15), access.Addr)
	assert.Equal(2, access.Width)

	assert.ErrorIs(card.Write8(16, 1), ErrAddress)
	assert.ErrorIs(card.Write16(15, 1), ErrAddress)

	// A failed word write leaves the low byte alone.
	value, _ := card.Read8(15)
	assert.Equal(uint8(0), value)
}

func TestCard_Full(t *testing.T) {
	assert := assert.New(t)

	card := NewCard(0xffff)
	assert.Equal(uint16(0xffff), card.Size())

	assert.NoError(card.Write8(0xfffe, 0x5a))
	_, err := card.Read8(0xffff)
	assert.ErrorIs(err, ErrAddress)

	// The high byte address would overflow 16 bits.
	_, err = card.Read16(0xffff)
	assert.ErrorIs(err, ErrAddress)
	assert.ErrorIs(card.Write16(0xffff, 0), ErrAddress)
}

func TestCard_Empty(t *testing.T) {
	assert := assert.New(t)

	card := NewCard(0)
	assert.Equal(uint16(0), card.Size())

	_, err := card.Read8(0)
	assert.ErrorIs(err, ErrAddress)
	_, err = card.Read16(0)
	assert.ErrorIs(err, ErrAddress)
}

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom, err := NewRom([]byte{0x01, 0x02, 0x03})
	assert.NoError(err)
	assert.Equal(uint16(3), rom.Size())

	value, err := rom.Read8(2)
	assert.NoError(err)
	assert.Equal(uint8(0x03), value)

	word, err := rom.Read16(0)
	assert.NoError(err)
	assert.Equal(uint16(0x0201), word)

	_, err = rom.Read16(2)
	assert.ErrorIs(err, ErrAddress)

	err = rom.Write8(1, 0xff)
	assert.ErrorIs(err, ErrReadOnly)
	assert.NotErrorIs(err, ErrAddress)

	assert.ErrorIs(rom.Write16(0, 0xffff), ErrReadOnly)
	assert.ErrorIs(rom.Write8(3, 0), ErrAddress)

	value, _ = rom.Read8(1)
	assert.Equal(uint8(0x02), value)

	_, err = NewRom(make([]byte, 0x10000))
	assert.ErrorIs(err, ErrDeviceTooLarge)

	empty, err := NewRom(nil)
	assert.NoError(err)
	assert.Equal(uint16(0), empty.Size())
}

func TestRom_Copy(t *testing.T) {
	assert := assert.New(t)

	image := []byte{0xaa}
	rom, err := NewRom(image)
	assert.NoError(err)

	image[0] = 0x55
	value, _ := rom.Read8(0)
	assert.Equal(uint8(0xaa), value)
}
