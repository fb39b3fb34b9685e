package cpu

// An Opcode is associated with a unique byte value (0x00-0xff). There are
// 256 possible opcodes, but only 151 (plus STP) correspond to a valid Cpu
// instruction for this engine.
//
// Multiple Opcodes may execute the same Exec function, differing only in
// which AddressingMode supplies the operand; that distinction is resolved
// by the Cpu before Exec is called, not inside Exec itself.
type Opcode struct {
	Name string
	Mode AddressingMode

	// Clock cycles required; tracked for fidelity with the published
	// table even though this engine is instruction-accurate, not
	// cycle-accurate (see the CPU engine's design notes).
	Cycles byte

	Exec func(c *Cpu, operand Operand) error
}

// Opcodes is the opcode table: built once, read-only thereafter. Unknown
// bytes are absent from the map; Cpu.Step turns a missing entry into an
// UnimplementedOpcodeError.
var Opcodes = map[byte]Opcode{
	// load/store
	0xA9: {"lda", Immediate, 2, lda}, 0xA5: {"lda", ZeroPage, 3, lda}, 0xB5: {"lda", ZeroPageX, 4, lda},
	0xAD: {"lda", Absolute, 4, lda}, 0xBD: {"lda", AbsoluteX, 4, lda}, 0xB9: {"lda", AbsoluteY, 4, lda},
	0xA1: {"lda", IndexedIndirect, 6, lda}, 0xB1: {"lda", IndirectIndexed, 5, lda},

	0xA2: {"ldx", Immediate, 2, ldx}, 0xA6: {"ldx", ZeroPage, 3, ldx}, 0xB6: {"ldx", ZeroPageY, 4, ldx},
	0xAE: {"ldx", Absolute, 4, ldx}, 0xBE: {"ldx", AbsoluteY, 4, ldx},

	0xA0: {"ldy", Immediate, 2, ldy}, 0xA4: {"ldy", ZeroPage, 3, ldy}, 0xB4: {"ldy", ZeroPageX, 4, ldy},
	0xAC: {"ldy", Absolute, 4, ldy}, 0xBC: {"ldy", AbsoluteX, 4, ldy},

	0x85: {"sta", ZeroPage, 3, sta}, 0x95: {"sta", ZeroPageX, 4, sta}, 0x8D: {"sta", Absolute, 4, sta},
	0x9D: {"sta", AbsoluteX, 5, sta}, 0x99: {"sta", AbsoluteY, 5, sta},
	0x81: {"sta", IndexedIndirect, 6, sta}, 0x91: {"sta", IndirectIndexed, 6, sta},

	0x86: {"stx", ZeroPage, 3, stx}, 0x96: {"stx", ZeroPageY, 4, stx}, 0x8E: {"stx", Absolute, 4, stx},

	0x84: {"sty", ZeroPage, 3, sty}, 0x94: {"sty", ZeroPageX, 4, sty}, 0x8C: {"sty", Absolute, 4, sty},

	// transfers
	0xAA: {"tax", Implied, 2, tax}, 0xA8: {"tay", Implied, 2, tay}, 0xBA: {"tsx", Implied, 2, tsx},
	0x8A: {"txa", Implied, 2, txa}, 0x9A: {"txs", Implied, 2, txs}, 0x98: {"tya", Implied, 2, tya},

	// stack
	0x48: {"pha", Implied, 3, pha}, 0x08: {"php", Implied, 3, php},
	0x68: {"pla", Implied, 4, pla}, 0x28: {"plp", Implied, 4, plp},

	// logic
	0x29: {"and", Immediate, 2, and}, 0x25: {"and", ZeroPage, 3, and}, 0x35: {"and", ZeroPageX, 4, and},
	0x2D: {"and", Absolute, 4, and}, 0x3D: {"and", AbsoluteX, 4, and}, 0x39: {"and", AbsoluteY, 4, and},
	0x21: {"and", IndexedIndirect, 6, and}, 0x31: {"and", IndirectIndexed, 5, and},

	0x49: {"eor", Immediate, 2, eor}, 0x45: {"eor", ZeroPage, 3, eor}, 0x55: {"eor", ZeroPageX, 4, eor},
	0x4D: {"eor", Absolute, 4, eor}, 0x5D: {"eor", AbsoluteX, 4, eor}, 0x59: {"eor", AbsoluteY, 4, eor},
	0x41: {"eor", IndexedIndirect, 6, eor}, 0x51: {"eor", IndirectIndexed, 5, eor},

	0x09: {"ora", Immediate, 2, ora}, 0x05: {"ora", ZeroPage, 3, ora}, 0x15: {"ora", ZeroPageX, 4, ora},
	0x0D: {"ora", Absolute, 4, ora}, 0x1D: {"ora", AbsoluteX, 4, ora}, 0x19: {"ora", AbsoluteY, 4, ora},
	0x01: {"ora", IndexedIndirect, 6, ora}, 0x11: {"ora", IndirectIndexed, 5, ora},

	0x24: {"bit", ZeroPage, 3, bit}, 0x2C: {"bit", Absolute, 4, bit},

	// arithmetic
	0x69: {"adc", Immediate, 2, adc}, 0x65: {"adc", ZeroPage, 3, adc}, 0x75: {"adc", ZeroPageX, 4, adc},
	0x6D: {"adc", Absolute, 4, adc}, 0x7D: {"adc", AbsoluteX, 4, adc}, 0x79: {"adc", AbsoluteY, 4, adc},
	0x61: {"adc", IndexedIndirect, 6, adc}, 0x71: {"adc", IndirectIndexed, 5, adc},

	0xE9: {"sbc", Immediate, 2, sbc}, 0xE5: {"sbc", ZeroPage, 3, sbc}, 0xF5: {"sbc", ZeroPageX, 4, sbc},
	0xED: {"sbc", Absolute, 4, sbc}, 0xFD: {"sbc", AbsoluteX, 4, sbc}, 0xF9: {"sbc", AbsoluteY, 4, sbc},
	0xE1: {"sbc", IndexedIndirect, 6, sbc}, 0xF1: {"sbc", IndirectIndexed, 5, sbc},

	// compares
	0xC9: {"cmp", Immediate, 2, cmp}, 0xC5: {"cmp", ZeroPage, 3, cmp}, 0xD5: {"cmp", ZeroPageX, 4, cmp},
	0xCD: {"cmp", Absolute, 4, cmp}, 0xDD: {"cmp", AbsoluteX, 4, cmp}, 0xD9: {"cmp", AbsoluteY, 4, cmp},
	0xC1: {"cmp", IndexedIndirect, 6, cmp}, 0xD1: {"cmp", IndirectIndexed, 5, cmp},

	0xE0: {"cpx", Immediate, 2, cpx}, 0xE4: {"cpx", ZeroPage, 3, cpx}, 0xEC: {"cpx", Absolute, 4, cpx},
	0xC0: {"cpy", Immediate, 2, cpy}, 0xC4: {"cpy", ZeroPage, 3, cpy}, 0xCC: {"cpy", Absolute, 4, cpy},

	// shifts/rotates
	0x0A: {"asl", Accumulator, 2, asl(Accumulator)}, 0x06: {"asl", ZeroPage, 5, asl(ZeroPage)},
	0x16: {"asl", ZeroPageX, 6, asl(ZeroPageX)}, 0x0E: {"asl", Absolute, 6, asl(Absolute)},
	0x1E: {"asl", AbsoluteX, 7, asl(AbsoluteX)},

	0x4A: {"lsr", Accumulator, 2, lsr(Accumulator)}, 0x46: {"lsr", ZeroPage, 5, lsr(ZeroPage)},
	0x56: {"lsr", ZeroPageX, 6, lsr(ZeroPageX)}, 0x4E: {"lsr", Absolute, 6, lsr(Absolute)},
	0x5E: {"lsr", AbsoluteX, 7, lsr(AbsoluteX)},

	0x2A: {"rol", Accumulator, 2, rol(Accumulator)}, 0x26: {"rol", ZeroPage, 5, rol(ZeroPage)},
	0x36: {"rol", ZeroPageX, 6, rol(ZeroPageX)}, 0x2E: {"rol", Absolute, 6, rol(Absolute)},
	0x3E: {"rol", AbsoluteX, 7, rol(AbsoluteX)},

	0x6A: {"ror", Accumulator, 2, ror(Accumulator)}, 0x66: {"ror", ZeroPage, 5, ror(ZeroPage)},
	0x76: {"ror", ZeroPageX, 6, ror(ZeroPageX)}, 0x6E: {"ror", Absolute, 6, ror(Absolute)},
	0x7E: {"ror", AbsoluteX, 7, ror(AbsoluteX)},

	// increments/decrements
	0xE6: {"inc", ZeroPage, 5, inc}, 0xF6: {"inc", ZeroPageX, 6, inc},
	0xEE: {"inc", Absolute, 6, inc}, 0xFE: {"inc", AbsoluteX, 7, inc},

	0xC6: {"dec", ZeroPage, 5, dec}, 0xD6: {"dec", ZeroPageX, 6, dec},
	0xCE: {"dec", Absolute, 6, dec}, 0xDE: {"dec", AbsoluteX, 7, dec},

	0xE8: {"inx", Implied, 2, inx}, 0xC8: {"iny", Implied, 2, iny},
	0xCA: {"dex", Implied, 2, dex}, 0x88: {"dey", Implied, 2, dey},

	// branches
	0x90: {"bcc", Relative, 2, bcc}, 0xB0: {"bcs", Relative, 2, bcs},
	0xF0: {"beq", Relative, 2, beq}, 0x30: {"bmi", Relative, 2, bmi},
	0xD0: {"bne", Relative, 2, bne}, 0x10: {"bpl", Relative, 2, bpl},
	0x50: {"bvc", Relative, 2, bvc}, 0x70: {"bvs", Relative, 2, bvs},

	// jumps/subroutines
	0x4C: {"jmp", Absolute, 3, jmp}, 0x6C: {"jmp", Indirect, 5, jmp},
	0x20: {"jsr", Absolute, 6, jsr}, 0x60: {"rts", Implied, 6, rts},

	// flag ops
	0x18: {"clc", Implied, 2, clc}, 0xD8: {"cld", Implied, 2, cld},
	0x58: {"cli", Implied, 2, cli}, 0xB8: {"clv", Implied, 2, clv},
	0x38: {"sec", Implied, 2, sec}, 0xF8: {"sed", Implied, 2, sed},
	0x78: {"sei", Implied, 2, sei},

	// interrupt/control
	0x00: {"brk", Implied, 7, brk}, 0x40: {"rti", Implied, 6, rti},
	0xEA: {"nop", Implied, 2, nop}, 0xDB: {"stp", Implied, 1, stp},
}
