// Package cpu implements the MOS Technology 6502 microprocessor, as used in
// the NES.

package cpu

import (
	"fmt"

	"nesgo/mask"
	"nesgo/mem"
)

// https://www.nesdev.org/wiki/CPU_interrupts
// http://www.6502.org/users/andre/65k/af65002/af65002int.html

// Interrupt vector addresses. BRK deliberately does not share IRQVector: it
// loads from its own override, a documented deviation from real hardware
// kept for fidelity with the system this core reproduces.
const (
	NMIVector   uint16 = 0xFFFA
	ResetVector uint16 = 0xFFFC
	IRQVector   uint16 = 0xFFFE
	BRKVector   uint16 = 0xFFE6
)

const stackPage uint16 = 0x0100

// UnimplementedOpcodeError is returned by Step when the fetched byte has no
// entry in the opcode table.
type UnimplementedOpcodeError struct {
	Opcode byte
}

func (e *UnimplementedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: opcode %#02x not implemented", e.Opcode)
}

// The Cpu has no memory of its own (aside from its registers). Instead, it
// interfaces with a Bus that provides the full 64 KiB address space.
type Cpu struct {
	Bus *mem.CPUBus

	Flags Flags

	Accumulator byte // a byte value held for immediate use, similar to a local variable
	X           byte
	Y           byte

	// Stack instructions (PHA, PLA, PHP, PLP, JSR, RTS, BRK, RTI) always
	// access page 1 (0x0100-0x01FF); Stack holds the low byte of that
	// address.
	Stack byte

	// ProgramCounter increments (almost) continuously; the byte it points
	// at is the next opcode to fetch.
	ProgramCounter uint16

	PageCrossed bool // set by indexed addressing modes that cross a page boundary

	running bool
}

// New returns a Cpu wired to bus, uninitialized until Start is called.
func New(bus *mem.CPUBus) *Cpu {
	return &Cpu{Bus: bus}
}

// IsRunning reports whether the engine has executed STP yet.
func (c *Cpu) IsRunning() bool { return c.running }

// Start moves the engine from Uninitialized to Running: SP=0xFD, PC loaded
// from the reset vector.
func (c *Cpu) Start() {
	c.Stack = 0xFD
	c.Flags.B = true
	c.ProgramCounter = c.readVector(ResetVector)
	c.running = true
}

// Reset returns the engine to Running with PC reloaded from the reset
// vector, SP reset to 0xFD, B set, and the DisableInterrupt flag preserved.
func (c *Cpu) Reset() {
	di := c.Flags.DisableInterrupt
	c.Stack = 0xFD
	c.Flags.B = true
	c.ProgramCounter = c.readVector(ResetVector)
	c.Flags.DisableInterrupt = di
	c.running = true
}

// WriteBytesTo is a bulk write used by boot/test code only.
func (c *Cpu) WriteBytesTo(addr uint16, bytes []byte) {
	c.Bus.WriteBytes(addr, bytes)
}

// Step fetches, decodes, and executes exactly one instruction.
func (c *Cpu) Step() error {
	opcodeByte := c.nextU8()
	opcode, ok := Opcodes[opcodeByte]
	if !ok {
		c.running = false
		return &UnimplementedOpcodeError{Opcode: opcodeByte}
	}
	operand := c.ResolveOperand(opcode.Mode)
	return opcode.Exec(c, operand)
}

// Run steps repeatedly until STP halts the engine or Step returns an error.
func (c *Cpu) Run() error {
	for c.running {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Clock is an alias of Step, named for the external tick driver's vocabulary.
func (c *Cpu) Clock() error { return c.Step() }

func (c *Cpu) nextU8() byte {
	v := c.Bus.GetRaw(c.ProgramCounter)
	c.ProgramCounter++
	return v
}

func (c *Cpu) nextU16() uint16 {
	lo := c.nextU8()
	hi := c.nextU8()
	return mask.Word(hi, lo)
}

func (c *Cpu) readVector(addr uint16) uint16 {
	lo := c.Bus.GetRaw(addr)
	hi := c.Bus.GetRaw(addr + 1)
	return mask.Word(hi, lo)
}

// push writes v to the stack at the current SP, then decrements SP,
// wrapping within 0x00-0xFF.
func (c *Cpu) push(v byte) {
	c.Bus.SetRaw(stackPage+uint16(c.Stack), v)
	c.Stack--
}

// pop increments SP, wrapping within 0x00-0xFF, then reads the stack byte.
func (c *Cpu) pop() byte {
	c.Stack++
	return c.Bus.GetRaw(stackPage + uint16(c.Stack))
}

// pushWord pushes a 16-bit value as two bytes, high byte first.
func (c *Cpu) pushWord(v uint16) {
	c.push(mask.Msb(v))
	c.push(mask.Lsb(v))
}

// popWord pulls two bytes low-then-high and reassembles them.
func (c *Cpu) popWord() uint16 {
	lo := c.pop()
	hi := c.pop()
	return mask.Word(hi, lo)
}

// triggerInterrupt pushes PC and P, then loads PC from vector. brk
// distinguishes a software BRK from a hardware NMI/IRQ in the pushed flags
// byte.
func (c *Cpu) triggerInterrupt(vector uint16, brk bool) {
	c.pushWord(c.ProgramCounter)
	flags := c.Flags
	flags.B = brk
	c.push(flags.Byte())
	c.Flags.DisableInterrupt = true
	c.ProgramCounter = c.readVector(vector)
}

// Nmi services a non-maskable interrupt: it cannot be disabled by the I
// flag.
func (c *Cpu) Nmi() {
	c.triggerInterrupt(NMIVector, false)
}

// Irq services a maskable interrupt request; ignored while DisableInterrupt
// is set.
func (c *Cpu) Irq() {
	if c.Flags.DisableInterrupt {
		return
	}
	c.triggerInterrupt(IRQVector, false)
}

// DebugString renders the current register file in the fixed inspector
// format: A: 0xNN, X: 0xNN, Y: 0xNN, SP: 0xNN, PC: 0xNNNN, P: NV-BDIZC (bbbbbbbb).
func (c *Cpu) DebugString() string {
	return fmt.Sprintf(
		"A: 0x%02X, X: 0x%02X, Y: 0x%02X, SP: 0x%02X, PC: 0x%04X, P: %s (%08b)",
		c.Accumulator, c.X, c.Y, c.Stack, c.ProgramCounter, flagLetters(c.Flags), c.Flags.Byte(),
	)
}

func flagLetters(f Flags) string {
	letter := func(set bool, ch byte) byte {
		if set {
			return ch
		}
		return '-'
	}
	out := []byte{
		letter(f.Negative, 'N'),
		letter(f.Overflow, 'V'),
		'-',
		letter(f.B, 'B'),
		letter(f.Decimal, 'D'),
		letter(f.DisableInterrupt, 'I'),
		letter(f.Zero, 'Z'),
		letter(f.Carry, 'C'),
	}
	return string(out)
}
