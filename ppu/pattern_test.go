package ppu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestColourIndexFormula checks the quantified invariant: reading pixel
// (r,c) of a tile equals bit(plane1[r],7-c) | (bit(plane2[r],7-c)<<1).
func TestColourIndexFormula(t *testing.T) {
	var tile PatternTableTile
	tile.PlaneOne[0] = 0b1000_0001 // bit7=1 (col 0), bit0=1 (col 7)
	tile.PlaneTwo[0] = 0b0000_0001 // bit0=1 (col 7)

	assert.Equal(t, byte(1), tile.ColourIndexAt(0, 0)) // plane1 bit set, plane2 clear
	assert.Equal(t, byte(0), tile.ColourIndexAt(0, 1))
	assert.Equal(t, byte(3), tile.ColourIndexAt(0, 7)) // both planes set at col 7
}

func TestPatternTableTileLookup(t *testing.T) {
	var table PatternTable
	table[42].PlaneOne[3] = 0x55
	assert.Equal(t, byte(0x55), table.Tile(42).PlaneOne[3])
}
