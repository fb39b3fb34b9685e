package mem

// space distinguishes which mirror table an Address was classified against:
// the CPU's 64 KiB map, or the PPU's.
type space int

const (
	cpuSpace space = iota
	ppuSpace
)

// An Address is a 16-bit address tagged with the mirror region it fell
// into at construction time. Two Addresses are equal iff they resolve to
// the same raw location, regardless of which alias produced them.
//
// https://www.nesdev.org/wiki/Mirroring
type Address struct {
	raw      uint16
	resolved uint16
	space    space
}

// NewCPUAddress classifies raw against the CPU memory map: 0x0000-0x07FF
// direct RAM, 0x0800-0x1FFF a mirror of it, 0x2000-0x2007 PPU registers,
// 0x2008-0x3FFF a mirror of those eight bytes, 0x4000-0xFFFF direct
// (APU/IO/PRG-ROM).
func NewCPUAddress(raw uint16) Address {
	return Address{raw: raw, resolved: resolveCPU(raw), space: cpuSpace}
}

// NewPPUAddress classifies raw against the PPU memory map: 0x0000-0x2FFF
// direct (pattern tables + nametables), 0x3000-0x3EFF mirrors the
// nametables, 0x3F00-0x3F1F direct palette RAM, 0x3F20-0x3FFF mirrors the
// palette, 0x4000+ mirrors the whole 0x0000-0x3FFF range.
func NewPPUAddress(raw uint16) Address {
	return Address{raw: raw, resolved: resolvePPU(raw), space: ppuSpace}
}

func resolveCPU(raw uint16) uint16 {
	switch {
	case raw <= 0x07FF:
		return raw
	case raw <= 0x1FFF:
		return mirror(raw, 0x0000, 0x0800)
	case raw <= 0x2007:
		return raw
	case raw <= 0x3FFF:
		return mirror(raw, 0x2000, 8)
	default:
		return raw
	}
}

func resolvePPU(raw uint16) uint16 {
	// 0x4000+ mirrors the entire 0x0000-0x3FFF range; fold it down first,
	// then resolve the nametable/palette mirrors within that range.
	raw = mirror(raw, 0x0000, 0x4000)
	switch {
	case raw <= 0x2FFF:
		return raw
	case raw <= 0x3EFF:
		return mirror(raw, 0x2000, 0x1000)
	case raw <= 0x3F1F:
		return raw
	default: // 0x3F20-0x3FFF
		return mirror(raw, 0x3F00, 0x20)
	}
}

// mirror resolves raw onto the canonical window [low, low+size) per
// spec.md §3: low + ((raw - low) mod size).
func mirror(raw uint16, low uint16, size uint16) uint16 {
	return low + (raw-low)%size
}

// Resolve returns the effective raw address this value stands for.
func (a Address) Resolve() uint16 { return a.resolved }

// Equal reports whether two addresses resolve to the same location.
func (a Address) Equal(other Address) bool { return a.resolved == other.resolved }

func (a Address) reclassify(raw uint16) Address {
	if a.space == ppuSpace {
		return NewPPUAddress(raw)
	}
	return NewCPUAddress(raw)
}

// AddSigned adds a signed 8-bit offset, wrapping at 16 bits.
func (a Address) AddSigned(offset int8) Address {
	return a.reclassify(a.raw + uint16(int16(offset)))
}

// AddUnsigned adds an unsigned 8-bit offset, wrapping at 16 bits. Used by
// indexed addressing modes (X/Y register offsets).
func (a Address) AddUnsigned(offset uint8) Address {
	return a.reclassify(a.raw + uint16(offset))
}

// Add16 adds a 16-bit offset, wrapping at 16 bits.
func (a Address) Add16(offset uint16) Address {
	return a.reclassify(a.raw + offset)
}

// PageOf returns the 256-byte page of the raw (pre-mirror) address, i.e.
// the address with its low byte cleared. Comparing the pages of a base and
// an indexed address detects a page crossing in indexed addressing.
func (a Address) PageOf() uint16 { return a.raw & 0xFF00 }
