package ppu

// PpuCtrl is the decoded form of a PPUCTRL ($2000) write.
//
// https://www.nesdev.org/wiki/PPU_registers#PPUCTRL
type PpuCtrl struct {
	NametableIndex         byte // 0-3: which of the four nametable base addresses is active
	VramAddrIncr           byte // 1 or 32, the PPUDATA auto-increment step
	SpritePatternTableBase uint16 // 0x0000 or 0x1000
	BgPatternTableIndex    byte // 0 or 1
	SpriteSizeType         bool
	MasterSlaveSelect      bool
	GenNmi                 bool
}

// decodePpuCtrl unpacks a PPUCTRL byte into its named fields, bit 0 to bit 7.
func decodePpuCtrl(b byte) PpuCtrl {
	ctrl := PpuCtrl{NametableIndex: b & 0b11}

	if b&(1<<2) != 0 {
		ctrl.VramAddrIncr = 32
	} else {
		ctrl.VramAddrIncr = 1
	}

	if b&(1<<3) != 0 {
		ctrl.SpritePatternTableBase = 0x1000
	} else {
		ctrl.SpritePatternTableBase = 0x0000
	}

	if b&(1<<4) != 0 {
		ctrl.BgPatternTableIndex = 1
	}

	ctrl.SpriteSizeType = b&(1<<5) != 0
	ctrl.MasterSlaveSelect = b&(1<<6) != 0
	ctrl.GenNmi = b&(1<<7) != 0

	return ctrl
}

// nametableAddresses are the four canonical nametable base addresses,
// indexed by PpuCtrl.NametableIndex.
var nametableAddresses = [4]uint16{0x2000, 0x2400, 0x2800, 0x2C00}
