package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagsByteBit5AlwaysSet(t *testing.T) {
	f := Flags{}
	assert.Equal(t, byte(0b00100000), f.Byte())

	all := Flags{Negative: true, Overflow: true, B: true, Decimal: true, DisableInterrupt: true, Zero: true, Carry: true}
	assert.Equal(t, byte(0b11111111), all.Byte())
}

func TestFlagsFromByteRoundTrip(t *testing.T) {
	for _, b := range []byte{0x00, 0xFF, 0b10110100, 0b01000001, 0b00000000} {
		f := FlagsFromByte(b)
		// bit 5 always reads back as 1 regardless of the input byte.
		assert.Equal(t, b|0b00100000, f.Byte())
	}
}

func TestFlagsFromByteFieldMapping(t *testing.T) {
	f := FlagsFromByte(0b10110100)
	assert.True(t, f.Negative)
	assert.False(t, f.Overflow)
	assert.True(t, f.B)
	assert.False(t, f.Decimal)
	assert.True(t, f.DisableInterrupt)
	assert.False(t, f.Zero)
	assert.False(t, f.Carry)
}

func TestSetZN(t *testing.T) {
	var f Flags
	setZN(&f, 0x00)
	assert.True(t, f.Zero)
	assert.False(t, f.Negative)

	setZN(&f, 0x80)
	assert.False(t, f.Zero)
	assert.True(t, f.Negative)

	setZN(&f, 0x01)
	assert.False(t, f.Zero)
	assert.False(t, f.Negative)
}
