// Package cart implements the iNES ROM header parser and the NROM (mapper
// 0) loader: the only mapper this engine supports, per the documented
// Non-goal of mappers beyond NROM.
package cart

import (
	"bytes"
	"fmt"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgBankSize = 16384
	chrBankSize = 8192
)

var headerMagic = [4]byte{'N', 'E', 'S', 0x1A}

// BadHeaderError reports a ROM image whose first four bytes don't spell the
// iNES magic.
type BadHeaderError struct {
	Got [4]byte
}

func (e *BadHeaderError) Error() string {
	return fmt.Sprintf("cart: bad iNES header, got magic %v", e.Got)
}

// TruncatedRomError reports a ROM image shorter than its own header
// declares it to be.
type TruncatedRomError struct {
	Need int
	Have int
}

func (e *TruncatedRomError) Error() string {
	return fmt.Sprintf("cart: truncated rom: need %d bytes, have %d", e.Need, e.Have)
}

// UnsupportedMapperError reports a mapper id other than 0 (NROM).
type UnsupportedMapperError struct {
	ID byte
}

func (e *UnsupportedMapperError) Error() string {
	return fmt.Sprintf("cart: unsupported mapper id %d", e.ID)
}

// Header is the parsed form of an iNES file's 16-byte header.
type Header struct {
	PrgBanks   byte // each 16 KiB
	ChrBanks   byte // each 8 KiB
	RamBanks   byte
	MapperID   byte
	HasTrainer bool
}

// ParseHeader validates and decodes an iNES header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < headerSize {
		return Header{}, &TruncatedRomError{Need: headerSize, Have: len(data)}
	}

	var got [4]byte
	copy(got[:], data[0:4])
	if !bytes.Equal(got[:], headerMagic[:]) {
		return Header{}, &BadHeaderError{Got: got}
	}

	control := data[6]
	control2 := data[7]

	return Header{
		PrgBanks:   data[4],
		ChrBanks:   data[5],
		RamBanks:   data[8],
		MapperID:   (control2 & 0xF0) | (control >> 4),
		HasTrainer: control&(1<<2) != 0,
	}, nil
}
