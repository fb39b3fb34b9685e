package cpu

import "nesgo/mask"

// Flags is the 6502 processor status register, held as named booleans
// rather than a raw byte so instruction semantics read naturally; Byte/
// FlagsFromByte convert to and from the packed N V 1 B D I Z C layout for
// push/pull and the debug printer.
type Flags struct {
	Negative         bool
	Overflow         bool
	B                bool
	Decimal          bool
	DisableInterrupt bool
	Zero             bool
	Carry            bool
}

// Byte packs the flags into the processor status layout, bit 7 to bit 0:
// N V 1 B D I Z C. Bit 5 is hard-wired to 1.
func (f Flags) Byte() byte {
	var b byte
	if f.Negative {
		b |= 1 << 7
	}
	if f.Overflow {
		b |= 1 << 6
	}
	b |= 1 << 5
	if f.B {
		b |= 1 << 4
	}
	if f.Decimal {
		b |= 1 << 3
	}
	if f.DisableInterrupt {
		b |= 1 << 2
	}
	if f.Zero {
		b |= 1 << 1
	}
	if f.Carry {
		b |= 1 << 0
	}
	return b
}

// FlagsFromByte unpacks a pushed/pulled status byte into Flags. Bit 5 is
// ignored on the way in; it always reads as 1 on the way out.
func FlagsFromByte(b byte) Flags {
	return Flags{
		Negative:         mask.IsSet(b, mask.I1),
		Overflow:         mask.IsSet(b, mask.I2),
		B:                mask.IsSet(b, mask.I4),
		Decimal:          mask.IsSet(b, mask.I5),
		DisableInterrupt: mask.IsSet(b, mask.I6),
		Zero:             mask.IsSet(b, mask.I7),
		Carry:            mask.IsSet(b, mask.I8),
	}
}

// setZN sets Zero and Negative from result, the way every load/transfer/
// ALU instruction does.
func setZN(f *Flags, result byte) {
	f.Zero = result == 0
	f.Negative = result&0x80 != 0
}
