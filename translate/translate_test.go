package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	SetLanguage(language.AmericanEnglish)

	assert.Equal("invalid memory address", From("invalid memory address"))
	assert.Equal("address 0x0010 width 2", From("address 0x%04x width %d", uint16(0x10), 2))
	assert.Equal("1,024 bytes", From("%d bytes", 1024))
}
