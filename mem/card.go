package mem

import (
	"encoding/binary"
)

// Card is a virtual memory card: a zero filled RAM buffer.
type Card struct {
	data []byte
}

var _ Device = (*Card)(nil)

// NewCard creates a zero filled card of size bytes.
func NewCard(size uint16) *Card {
	return &Card{data: make([]byte, size)}
}

func (card *Card) Size() uint16 {
	return uint16(len(card.data))
}

func (card *Card) Read8(addr uint16) (value uint8, err error) {
	err = span(addr, 1, card.Size())
	if err != nil {
		return
	}

	value = card.data[addr]
	return
}

func (card *Card) Read16(addr uint16) (value uint16, err error) {
	err = span(addr, 2, card.Size())
	if err != nil {
		return
	}

	value = binary.LittleEndian.Uint16(card.data[addr:])
	return
}

func (card *Card) Write8(addr uint16, value uint8) (err error) {
	err = span(addr, 1, card.Size())
	if err != nil {
		return
	}

	card.data[addr] = value
	return
}

func (card *Card) Write16(addr uint16, value uint16) (err error) {
	err = span(addr, 2, card.Size())
	if err != nil {
		return
	}

	binary.LittleEndian.PutUint16(card.data[addr:], value)
	return
}
