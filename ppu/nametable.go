package ppu

// nametableDataSize is the 960-byte (30x32) tile-index grid.
const nametableDataSize = 30 * 32

// attributeTableSize is the 64-byte palette-selection table trailing each
// nametable.
const attributeTableSize = 0x40

// nametableWidth is the tile-grid's column count, used to flatten (row,
// col) into the linear Data index.
const nametableWidth = 32

// Nametable is a 960-byte tile-index grid plus its trailing 64-byte
// attribute table.
type Nametable struct {
	Index      byte
	Data       [nametableDataSize]byte
	Attributes [attributeTableSize]byte
}

// quadrant names the four 2x2-tile regions an attribute byte packs palette
// selectors for.
type quadrant int

const (
	topLeft quadrant = iota
	topRight
	bottomLeft
	bottomRight
)

// quadrantFor maps a tile's position within its 4x4-tile attribute block to
// one of the four quadrants.
func quadrantFor(row, col byte) quadrant {
	switch {
	case col%2 == 0 && row%2 == 0:
		return topLeft
	case col%2 == 1 && row%2 == 0:
		return topRight
	case col%2 == 0 && row%2 == 1:
		return bottomLeft
	default:
		return bottomRight
	}
}

// paletteNumForQuadrant extracts the 2-bit palette selector for q from an
// attribute byte. Bit assignment: TL bits 1-0, TR bits 3-2, BL bits 5-4, BR
// bits 7-6 -- per this design's quadrant-bit layout, not the source's.
func paletteNumForQuadrant(attr byte, q quadrant) byte {
	switch q {
	case topLeft:
		return attr & 0b11
	case topRight:
		return (attr >> 2) & 0b11
	case bottomLeft:
		return (attr >> 4) & 0b11
	default:
		return (attr >> 6) & 0b11
	}
}

// PaletteNumAt returns the 2-bit palette selector covering tile (row, col).
func (nt Nametable) PaletteNumAt(row, col byte) byte {
	attrRow := row / 4
	attrCol := col / 4
	entry := nt.Attributes[int(attrRow)*8+int(attrCol)]
	return paletteNumForQuadrant(entry, quadrantFor(row, col))
}

// NametableTile is one decoded tile drawn from a nametable: the underlying
// pattern-table bit planes plus a per-pixel palette index.
type NametableTile struct {
	PatternTableTileIndex byte
	Pattern               PatternTableTile
	PaletteIndices        [8][8]byte
}

// GetTile resolves tile (row, col) against patternTable: looks up the tile
// index from Data, then combines each pixel's colour index with the
// attribute-selected palette number.
func (nt Nametable) GetTile(row, col byte, patternTable PatternTable) NametableTile {
	tileIndex := nt.Data[int(row)*nametableWidth+int(col)]
	pattern := patternTable.Tile(tileIndex)
	paletteNum := nt.PaletteNumAt(row, col)

	var out NametableTile
	out.PatternTableTileIndex = tileIndex
	out.Pattern = pattern

	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			colourIndex := pattern.ColourIndexAt(r, c)
			out.PaletteIndices[r][c] = 0b0001_1111 & ((paletteNum << 2) & colourIndex)
		}
	}
	return out
}
