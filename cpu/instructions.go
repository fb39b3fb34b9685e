package cpu

import "nesgo/mask"

// Each instruction function has the same shape: it receives the already-
// resolved Operand for its addressing mode and returns an error only when
// the operand resolver was fed a mode it cannot honor (ErrInvalidAddressingOperand).
//
// https://www.nesdev.org/wiki/Instruction_reference
// http://www.6502.org/tutorials/6502opcodes.html

// ---- load/store ----

func lda(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.Accumulator = byte(v)
	setZN(&c.Flags, c.Accumulator)
	return nil
}

func ldx(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.X = byte(v)
	setZN(&c.Flags, c.X)
	return nil
}

func ldy(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.Y = byte(v)
	setZN(&c.Flags, c.Y)
	return nil
}

func sta(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	c.Bus.Set(addr, c.Accumulator)
	return nil
}

func stx(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	c.Bus.Set(addr, c.X)
	return nil
}

func sty(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	c.Bus.Set(addr, c.Y)
	return nil
}

// ---- transfers ----

func tax(c *Cpu, op Operand) error {
	c.X = c.Accumulator
	setZN(&c.Flags, c.X)
	return nil
}

func tay(c *Cpu, op Operand) error {
	c.Y = c.Accumulator
	setZN(&c.Flags, c.Y)
	return nil
}

func tsx(c *Cpu, op Operand) error {
	c.X = c.Stack
	setZN(&c.Flags, c.X)
	return nil
}

func txa(c *Cpu, op Operand) error {
	c.Accumulator = c.X
	setZN(&c.Flags, c.Accumulator)
	return nil
}

// txs alone among the transfers does not touch Z/N.
func txs(c *Cpu, op Operand) error {
	c.Stack = c.X
	return nil
}

func tya(c *Cpu, op Operand) error {
	c.Accumulator = c.Y
	setZN(&c.Flags, c.Accumulator)
	return nil
}

// ---- stack ----

func pha(c *Cpu, op Operand) error {
	c.push(c.Accumulator)
	return nil
}

// php pushes P with bits 4 and 5 forced to 1.
func php(c *Cpu, op Operand) error {
	flags := c.Flags
	flags.B = true
	c.push(flags.Byte())
	return nil
}

func pla(c *Cpu, op Operand) error {
	c.Accumulator = c.pop()
	setZN(&c.Flags, c.Accumulator)
	return nil
}

// plp restores P from the stack, ignoring bits 4 and 5 (B keeps its prior
// live value; bit 5 is always hard-wired to 1 regardless).
func plp(c *Cpu, op Operand) error {
	pulled := FlagsFromByte(c.pop())
	pulled.B = c.Flags.B
	c.Flags = pulled
	return nil
}

// ---- logic ----

func and(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.Accumulator &= byte(v)
	setZN(&c.Flags, c.Accumulator)
	return nil
}

func eor(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.Accumulator ^= byte(v)
	setZN(&c.Flags, c.Accumulator)
	return nil
}

func ora(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	c.Accumulator |= byte(v)
	setZN(&c.Flags, c.Accumulator)
	return nil
}

// bit copies bit 6 of the operand into V, bit 7 into N, and sets Z from
// (ACC AND operand) == 0.
func bit(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	m := byte(v)
	c.Flags.Overflow = m&(1<<6) != 0
	c.Flags.Negative = m&(1<<7) != 0
	c.Flags.Zero = c.Accumulator&m == 0
	return nil
}

// ---- arithmetic ----

func adc(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	addWithCarry(c, byte(v))
	return nil
}

// sbc is adc with the operand bit-inverted; C=1 means no borrow.
func sbc(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	addWithCarry(c, ^byte(v))
	return nil
}

func addWithCarry(c *Cpu, operand byte) {
	a := c.Accumulator
	var carryIn uint16
	if c.Flags.Carry {
		carryIn = 1
	}
	sum := uint16(a) + uint16(operand) + carryIn
	result := byte(sum)

	c.Flags.Carry = sum > 0xFF
	c.Flags.Overflow = (a^result)&(operand^result)&0x80 != 0
	setZN(&c.Flags, result)

	c.Accumulator = result
}

// ---- compares ----

func compare(c *Cpu, reg byte, operand byte) {
	result := reg - operand
	c.Flags.Carry = reg >= operand
	c.Flags.Zero = reg == operand
	c.Flags.Negative = result&0x80 != 0
}

func cmp(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	compare(c, c.Accumulator, byte(v))
	return nil
}

func cpx(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	compare(c, c.X, byte(v))
	return nil
}

func cpy(c *Cpu, op Operand) error {
	v, err := op.ResolveValue(c)
	if err != nil {
		return err
	}
	compare(c, c.Y, byte(v))
	return nil
}

// ---- shifts/rotates ----

// shiftTarget reads the byte an accumulator-or-memory instruction operates
// on, and returns a writer that stores the result back to the same place.
func shiftTarget(c *Cpu, op Operand, mode AddressingMode) (byte, func(byte), error) {
	if mode == Accumulator {
		return c.Accumulator, func(b byte) { c.Accumulator = b }, nil
	}
	addr, err := op.ResolveAddr()
	if err != nil {
		return 0, nil, err
	}
	return c.Bus.Get(addr), func(b byte) { c.Bus.Set(addr, b) }, nil
}

// asl's carry-out is the bit mask.RotateLeft evicts off the top; clearing
// the wrapped-in bit 0 turns the rotate into a plain shift.
func asl(mode AddressingMode) func(*Cpu, Operand) error {
	return func(c *Cpu, op Operand) error {
		v, write, err := shiftTarget(c, op, mode)
		if err != nil {
			return err
		}
		rotated, evicted := mask.RotateLeft(v)
		result := rotated &^ 0x01
		c.Flags.Carry = evicted
		setZN(&c.Flags, result)
		write(result)
		return nil
	}
}

func lsr(mode AddressingMode) func(*Cpu, Operand) error {
	return func(c *Cpu, op Operand) error {
		v, write, err := shiftTarget(c, op, mode)
		if err != nil {
			return err
		}
		rotated, evicted := mask.RotateRight(v)
		result := rotated &^ 0x80
		c.Flags.Carry = evicted
		setZN(&c.Flags, result)
		write(result)
		return nil
	}
}

// rol is mask.RotateLeft with the wrapped-in bit 0 replaced by the incoming
// carry, so the 9-bit (value, carry) pair rotates rather than the byte alone.
func rol(mode AddressingMode) func(*Cpu, Operand) error {
	return func(c *Cpu, op Operand) error {
		v, write, err := shiftTarget(c, op, mode)
		if err != nil {
			return err
		}
		var carryIn byte
		if c.Flags.Carry {
			carryIn = 1
		}
		rotated, evicted := mask.RotateLeft(v)
		result := (rotated &^ 0x01) | carryIn
		c.Flags.Carry = evicted
		setZN(&c.Flags, result)
		write(result)
		return nil
	}
}

func ror(mode AddressingMode) func(*Cpu, Operand) error {
	return func(c *Cpu, op Operand) error {
		v, write, err := shiftTarget(c, op, mode)
		if err != nil {
			return err
		}
		var carryIn byte
		if c.Flags.Carry {
			carryIn = 0x80
		}
		rotated, evicted := mask.RotateRight(v)
		result := (rotated &^ 0x80) | carryIn
		c.Flags.Carry = evicted
		setZN(&c.Flags, result)
		write(result)
		return nil
	}
}

// ---- increments/decrements ----

func inc(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	result := c.Bus.Get(addr) + 1
	c.Bus.Set(addr, result)
	setZN(&c.Flags, result)
	return nil
}

func dec(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	result := c.Bus.Get(addr) - 1
	c.Bus.Set(addr, result)
	setZN(&c.Flags, result)
	return nil
}

func inx(c *Cpu, op Operand) error {
	c.X++
	setZN(&c.Flags, c.X)
	return nil
}

func iny(c *Cpu, op Operand) error {
	c.Y++
	setZN(&c.Flags, c.Y)
	return nil
}

func dex(c *Cpu, op Operand) error {
	c.X--
	setZN(&c.Flags, c.X)
	return nil
}

func dey(c *Cpu, op Operand) error {
	c.Y--
	setZN(&c.Flags, c.Y)
	return nil
}

// ---- branches ----

// branch takes the relative offset iff cond holds. Relative is always
// computed from PC as it stands after the operand byte has been consumed.
func branch(cond func(*Cpu) bool) func(*Cpu, Operand) error {
	return func(c *Cpu, op Operand) error {
		offset, err := op.ResolveValue(c)
		if err != nil {
			return err
		}
		if cond(c) {
			c.ProgramCounter = uint16(int32(c.ProgramCounter) + int32(offset))
		}
		return nil
	}
}

var (
	bcc = branch(func(c *Cpu) bool { return !c.Flags.Carry })
	bcs = branch(func(c *Cpu) bool { return c.Flags.Carry })
	beq = branch(func(c *Cpu) bool { return c.Flags.Zero })
	bmi = branch(func(c *Cpu) bool { return c.Flags.Negative })
	bne = branch(func(c *Cpu) bool { return !c.Flags.Zero })
	bpl = branch(func(c *Cpu) bool { return !c.Flags.Negative })
	bvc = branch(func(c *Cpu) bool { return !c.Flags.Overflow })
	bvs = branch(func(c *Cpu) bool { return c.Flags.Overflow })
)

// ---- jumps/subroutines ----

func jmp(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	c.ProgramCounter = addr.Resolve()
	return nil
}

// jsr pushes the full return address -- by the time it runs, the operand
// resolver has already consumed both operand bytes, so ProgramCounter is
// already the address of the instruction after JSR -- then jumps. rts below
// pops it back with no adjustment; the pair cancels exactly.
func jsr(c *Cpu, op Operand) error {
	addr, err := op.ResolveAddr()
	if err != nil {
		return err
	}
	c.pushWord(c.ProgramCounter)
	c.ProgramCounter = addr.Resolve()
	return nil
}

// rts pulls the return address pushed by jsr and resumes there.
func rts(c *Cpu, op Operand) error {
	c.ProgramCounter = c.popWord()
	return nil
}

// ---- flag ops ----

func clc(c *Cpu, op Operand) error { c.Flags.Carry = false; return nil }
func cld(c *Cpu, op Operand) error { c.Flags.Decimal = false; return nil }
func cli(c *Cpu, op Operand) error { c.Flags.DisableInterrupt = false; return nil }
func clv(c *Cpu, op Operand) error { c.Flags.Overflow = false; return nil }
func sec(c *Cpu, op Operand) error { c.Flags.Carry = true; return nil }
func sed(c *Cpu, op Operand) error { c.Flags.Decimal = true; return nil }
func sei(c *Cpu, op Operand) error { c.Flags.DisableInterrupt = true; return nil }

// ---- interrupt/control ----

// brk pushes PC then P (with B forced to 1 in the pushed copy only), sets
// I=1, and loads PC from the BRK-vector override documented in §9.
func brk(c *Cpu, op Operand) error {
	c.triggerInterrupt(BRKVector, true)
	return nil
}

func rti(c *Cpu, op Operand) error {
	pulled := FlagsFromByte(c.pop())
	c.Flags = pulled
	c.ProgramCounter = c.popWord()
	return nil
}

func nop(c *Cpu, op Operand) error { return nil }

// stp halts the engine; IsRunning reports false from here on.
func stp(c *Cpu, op Operand) error {
	c.running = false
	return nil
}
