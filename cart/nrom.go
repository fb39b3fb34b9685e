package cart

import "nesgo/mem"

// Load parses data as an iNES image and, for mapper 0 (NROM), copies its
// trainer (if present), PRG-ROM, and CHR-ROM into cpuBus and ppuBus. Any
// other mapper id fails with UnsupportedMapperError.
func Load(cpuBus *mem.CPUBus, ppuBus *mem.PPUBus, data []byte) error {
	header, err := ParseHeader(data)
	if err != nil {
		return err
	}
	if header.MapperID != 0 {
		return &UnsupportedMapperError{ID: header.MapperID}
	}

	offset := headerSize

	if header.HasTrainer {
		end := offset + trainerSize
		if len(data) < end {
			return &TruncatedRomError{Need: end, Have: len(data)}
		}
		cpuBus.WriteBytes(0x7000, data[offset:end])
		offset = end
	}

	prgLen := int(header.PrgBanks) * prgBankSize
	prgEnd := offset + prgLen
	if len(data) < prgEnd {
		return &TruncatedRomError{Need: prgEnd, Have: len(data)}
	}
	prgROM := data[offset:prgEnd]
	cpuBus.WriteBytes(0x8000, prgROM)
	if header.PrgBanks == 1 {
		cpuBus.WriteBytes(0xC000, prgROM)
	}

	chrLen := int(header.ChrBanks) * chrBankSize
	chrEnd := prgEnd + chrLen
	if len(data) < chrEnd {
		return &TruncatedRomError{Need: chrEnd, Have: len(data)}
	}
	chrROM := data[prgEnd:chrEnd]
	ppuBus.WriteBytes(0x0000, chrROM)

	return nil
}
