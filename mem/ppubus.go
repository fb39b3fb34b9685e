package mem

// PPUBus is the flat 64 KiB PPU address space: same contract as CPUBus but
// with no event dispatch -- nothing downstream of the PPU observes its own
// memory accesses.
type PPUBus struct {
	vram [64 * 1024]byte
}

// NewPPUBus returns an empty PPU bus.
func NewPPUBus() *PPUBus {
	return &PPUBus{}
}

// Get reads the byte at addr's resolved location.
func (b *PPUBus) Get(addr Address) byte {
	return b.vram[addr.Resolve()]
}

// Set writes v at addr's resolved location.
func (b *PPUBus) Set(addr Address, v byte) {
	b.vram[addr.Resolve()] = v
}

// GetRaw is a convenience for Get(NewPPUAddress(raw)).
func (b *PPUBus) GetRaw(raw uint16) byte {
	return b.Get(NewPPUAddress(raw))
}

// SetRaw is a convenience for Set(NewPPUAddress(raw), v).
func (b *PPUBus) SetRaw(raw uint16, v byte) {
	b.Set(NewPPUAddress(raw), v)
}

// WriteBytes bulk-copies bytes starting at raw -- used by the cartridge
// loader to place CHR-ROM into PPU memory.
func (b *PPUBus) WriteBytes(raw uint16, bytes []byte) {
	for i, v := range bytes {
		b.SetRaw(raw+uint16(i), v)
	}
}
