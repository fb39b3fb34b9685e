// Package ppu implements the NES Picture Processing Unit's register
// interface and the pattern/name/attribute table decoders built on top of
// it. Rendering itself -- pixel output, sprite-0 hit, scroll/mask registers
// -- is out of scope; this package stops at the data a graphics front-end
// would need to draw a frame.
package ppu

import "nesgo/mem"

// ppuctrlAddr, ppuaddrAddr, and ppudataAddr are the three CPU-bus addresses
// this package reacts to. Writes into the $2008-$3FFF mirror window arrive
// already resolved to $2000-$2007 -- mirror resolution is the CPU bus's
// job, not this package's.
const (
	ppuctrlAddr uint16 = 0x2000
	ppuaddrAddr uint16 = 0x2006
	ppudataAddr uint16 = 0x2007
)

// Ppu owns the PPU's memory and register state. It never reaches back into
// the CPU bus it is subscribed to: the coupling is strictly one-way.
type Ppu struct {
	Bus *mem.PPUBus

	ctrl PpuCtrl

	// pendingHigh holds the high byte of a $2006 write in flight between
	// the first and second write of the latch; nil when the latch is
	// clear. This module follows real hardware order (high byte first),
	// a deliberate deviation from the source's low-byte-first reading --
	// see the PPUADDR write order decision.
	pendingHigh *byte

	vramAddr uint16
}

// New returns a Ppu wired to bus, idle until Start is called.
func New(bus *mem.PPUBus) *Ppu {
	return &Ppu{Bus: bus}
}

// Start resets register state to power-on defaults: PPUCTRL = 0, which
// decodes to a VRAM increment of 1, not the zero value's 0.
func (p *Ppu) Start() {
	p.ctrl = decodePpuCtrl(0)
	p.pendingHigh = nil
	p.vramAddr = 0
}

// Clock is the PPU's half of the NES facade's per-tick drive. This
// register-only model has no per-cycle state machine to advance; Clock
// exists so the facade's tick() has a symmetric CPU/PPU call pair.
func (p *Ppu) Clock() {}

// HandleCPUAccess is the callback the NES facade subscribes onto the CPU
// bus. It reacts only to Set events at $2000, $2006, and $2007; everything
// else, including all Get events, is ignored (read-latched register
// behavior is out of scope).
func (p *Ppu) HandleCPUAccess(event mem.AccessEvent) {
	if event.Kind != mem.Set {
		return
	}

	switch event.Addr {
	case ppuctrlAddr:
		p.ctrl = decodePpuCtrl(event.Value)

	case ppuaddrAddr:
		p.writePpuAddr(event.Value)

	case ppudataAddr:
		p.writePpuData(event.Value)
	}
}

// writePpuAddr implements the two-write $2006 latch, high byte first.
func (p *Ppu) writePpuAddr(b byte) {
	if p.pendingHigh == nil {
		hi := b
		p.pendingHigh = &hi
		return
	}
	p.vramAddr = uint16(*p.pendingHigh)<<8 | uint16(b)
	p.pendingHigh = nil
}

// writePpuData writes b at the current VRAM cursor, then advances the
// cursor by the PPUCTRL-selected increment.
func (p *Ppu) writePpuData(b byte) {
	p.Bus.SetRaw(p.vramAddr, b)
	p.vramAddr += uint16(p.ctrl.VramAddrIncr)
}

// Ctrl returns the most recently decoded PPUCTRL state.
func (p *Ppu) Ctrl() PpuCtrl { return p.ctrl }

// VramAddr returns the current VRAM cursor, for tests and inspection.
func (p *Ppu) VramAddr() uint16 { return p.vramAddr }

// ReadPatternTable decodes the 256-tile pattern table starting at base,
// which must be 0x0000 or 0x1000.
func (p *Ppu) ReadPatternTable(base uint16) PatternTable {
	var table PatternTable
	for i := 0; i < NumTiles; i++ {
		addr := base + uint16(i)*tileByteSize
		table[i] = p.readTile(addr)
	}
	return table
}

func (p *Ppu) readTile(addr uint16) PatternTableTile {
	var tile PatternTableTile
	for i := 0; i < tilePlaneSize; i++ {
		tile.PlaneOne[i] = p.Bus.GetRaw(addr + uint16(i))
		tile.PlaneTwo[i] = p.Bus.GetRaw(addr + tilePlaneSize + uint16(i))
	}
	return tile
}

// ActivePatternTable returns the table selected by the last PPUCTRL write's
// background-pattern-table bit.
func (p *Ppu) ActivePatternTable() PatternTable {
	base := uint16(0x0000)
	if p.ctrl.BgPatternTableIndex == 1 {
		base = 0x1000
	}
	return p.ReadPatternTable(base)
}

// GetNametable decodes the 960-byte tile-index grid and 64-byte attribute
// table at nametableAddresses[index].
func (p *Ppu) GetNametable(index byte) Nametable {
	base := nametableAddresses[index&0b11]

	var nt Nametable
	nt.Index = index
	for i := range nt.Data {
		nt.Data[i] = p.Bus.GetRaw(base + uint16(i))
	}
	for i := range nt.Attributes {
		nt.Attributes[i] = p.Bus.GetRaw(base + nametableDataSize + uint16(i))
	}
	return nt
}

// ActiveNametable returns the nametable selected by the last PPUCTRL
// write's nametable-index bits.
func (p *Ppu) ActiveNametable() Nametable {
	return p.GetNametable(p.ctrl.NametableIndex)
}
