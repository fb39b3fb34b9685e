// Package nes wires a Cpu and a Ppu into a single facade, resolving the
// cyclic CPU/PPU/memory relationship the original implementation expressed
// with shared interior-mutable handles: here, a single owning facade
// subscribes the PPU's callback onto the CPU's bus at construction time, so
// neither side holds a reference to the other's type.
package nes

import (
	"nesgo/cart"
	"nesgo/cpu"
	"nesgo/mem"
	"nesgo/ppu"
)

// Nes holds one Cpu and one Ppu, wired together at construction.
type Nes struct {
	Cpu *cpu.Cpu
	Ppu *ppu.Ppu
}

// New constructs a Cpu and a Ppu over fresh buses and subscribes the Ppu's
// memory-bus handler onto the Cpu's bus, so every subsequent CPU write is
// visible to the Ppu synchronously, before the write call returns.
func New() *Nes {
	cpuBus := mem.NewCPUBus()
	ppuBus := mem.NewPPUBus()

	c := cpu.New(cpuBus)
	p := ppu.New(ppuBus)

	cpuBus.Subscribe(p.HandleCPUAccess)

	return &Nes{Cpu: c, Ppu: p}
}

// Start brings the Cpu up first, then the Ppu, matching the source's
// ordering.
func (n *Nes) Start() {
	n.Cpu.Start()
	n.Ppu.Start()
}

// Reset reinitializes the Cpu; the Ppu has no equivalent lifecycle state to
// restore.
func (n *Nes) Reset() {
	n.Cpu.Reset()
}

// Tick steps the Cpu one instruction, then clocks the Ppu.
func (n *Nes) Tick() error {
	if err := n.Cpu.Step(); err != nil {
		return err
	}
	n.Ppu.Clock()
	return nil
}

// LoadCartridge parses romData as an iNES image and copies its PRG-ROM,
// CHR-ROM, and optional trainer into the Cpu and Ppu buses.
func (n *Nes) LoadCartridge(romData []byte) error {
	return cart.Load(n.Cpu.Bus, n.Ppu.Bus, romData)
}

// GetActiveNametable returns the nametable selected by the Ppu's current
// PPUCTRL state, for a graphics front-end to enumerate tiles from.
func (n *Nes) GetActiveNametable() ppu.Nametable {
	return n.Ppu.ActiveNametable()
}

// GetActivePatternTable returns the pattern table selected by the Ppu's
// current PPUCTRL state.
func (n *Nes) GetActivePatternTable() ppu.PatternTable {
	return n.Ppu.ActivePatternTable()
}
