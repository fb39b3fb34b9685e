package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCpuWriteReachesPpuSynchronously checks the load-bearing ordering
// invariant: a CPU write into the PPU register window delivers its PPU
// side effect before the write call returns.
func TestCpuWriteReachesPpuSynchronously(t *testing.T) {
	n := New()
	n.Start()

	n.Cpu.Bus.SetRaw(0x2000, 0b1000_0000) // PPUCTRL, GenNmi bit
	assert.True(t, n.Ppu.Ctrl().GenNmi)
}

func TestLoadCartridgeWritesThroughToBothBuses(t *testing.T) {
	n := New()
	n.Start()

	header := make([]byte, 16)
	copy(header[0:4], []byte{'N', 'E', 'S', 0x1A})
	header[4] = 1 // 1 PRG bank
	header[5] = 1 // 1 CHR bank

	prg := make([]byte, 16384)
	for i := range prg {
		prg[i] = 0xEA // NOP, so a naive Run would not crash
	}
	chr := make([]byte, 8192)
	for i := range chr {
		chr[i] = 0x77
	}

	rom := append(append(header, prg...), chr...)
	assert.NoError(t, n.LoadCartridge(rom))

	assert.Equal(t, byte(0xEA), n.Cpu.Bus.GetRaw(0x8000))
	assert.Equal(t, byte(0xEA), n.Cpu.Bus.GetRaw(0xC000))
	assert.Equal(t, byte(0x77), n.Ppu.Bus.GetRaw(0x0000))
}

func TestTickStepsCpuAndClocksPpu(t *testing.T) {
	n := New()
	n.Cpu.Bus.SetRaw(0xFFFC, 0x00)
	n.Cpu.Bus.SetRaw(0xFFFD, 0x06)
	n.Cpu.Bus.SetRaw(0x0600, 0xEA) // NOP
	n.Start()

	assert.NoError(t, n.Tick())
	assert.Equal(t, uint16(0x0601), n.Cpu.ProgramCounter)
}

func TestGetActivePatternTableAndNametableAreReachable(t *testing.T) {
	n := New()
	n.Start()

	assert.NotPanics(t, func() {
		_ = n.GetActiveNametable()
		_ = n.GetActivePatternTable()
	})
}
