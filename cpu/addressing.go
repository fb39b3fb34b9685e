package cpu

import (
	"errors"

	"nesgo/mask"
	"nesgo/mem"
)

// ErrInvalidAddressingOperand is returned when ResolveValue or ResolveAddr
// is asked to produce something an addressing mode never promised: value
// or address resolution on an Implied/Accumulator operand.
var ErrInvalidAddressingOperand = errors.New("cpu: invalid addressing operand")

// AddressingMode names one of the 6502's thirteen operand shapes.
type AddressingMode int

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect
	IndirectIndexed
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageX:
		return "ZeroPageX"
	case ZeroPageY:
		return "ZeroPageY"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case AbsoluteX:
		return "AbsoluteX"
	case AbsoluteY:
		return "AbsoluteY"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	default:
		return "Unknown"
	}
}

// An Operand is what an addressing mode resolves to: a plain signed Value,
// an effective memory Address, both (IndexedIndirect and IndirectIndexed
// carry the dereferenced byte AND the address it came from, so STA can
// still resolve a target through these two modes), or neither (Implied and
// Accumulator, which are illegal to resolve at all).
type Operand struct {
	hasValue bool
	value    int8
	hasAddr  bool
	addr     mem.Address
}

// ValueOperand wraps a bare signed value (Immediate, Relative).
func ValueOperand(v int8) Operand {
	return Operand{hasValue: true, value: v}
}

// AddressOperand wraps a bare effective address (ZeroPage*, Absolute*,
// Indirect).
func AddressOperand(a mem.Address) Operand {
	return Operand{hasAddr: true, addr: a}
}

// ValueAndAddressOperand wraps both a dereferenced value and the address it
// was read from (IndexedIndirect, IndirectIndexed).
func ValueAndAddressOperand(v int8, a mem.Address) Operand {
	return Operand{hasValue: true, value: v, hasAddr: true, addr: a}
}

// ResolveValue returns the operand's value: the wrapped Value directly, or
// a dereference through the bus for an Address-only operand.
func (o Operand) ResolveValue(c *Cpu) (int8, error) {
	if o.hasValue {
		return o.value, nil
	}
	if o.hasAddr {
		return int8(c.Bus.Get(o.addr)), nil
	}
	return 0, ErrInvalidAddressingOperand
}

// ResolveAddr returns the operand's effective address: the wrapped Address
// directly, or -- for a Value-only operand -- the value's low byte
// reinterpreted as a zero-page address, matching how a store instruction
// fed an out-of-contract operand would be expected to behave.
func (o Operand) ResolveAddr() (mem.Address, error) {
	if o.hasAddr {
		return o.addr, nil
	}
	if o.hasValue {
		return mem.NewCPUAddress(uint16(byte(o.value))), nil
	}
	return mem.Address{}, ErrInvalidAddressingOperand
}

// ResolveOperand consumes the addressing mode's operand bytes from PC and
// produces the Operand the mode's table entry describes.
func (c *Cpu) ResolveOperand(mode AddressingMode) Operand {
	switch mode {
	case Implied, Accumulator:
		return Operand{}

	case Immediate:
		return ValueOperand(int8(c.nextU8()))

	case ZeroPage:
		b := c.nextU8()
		return AddressOperand(mem.NewCPUAddress(uint16(b)))

	case ZeroPageX:
		b := c.nextU8() + c.X
		return AddressOperand(mem.NewCPUAddress(uint16(b)))

	case ZeroPageY:
		b := c.nextU8() + c.Y
		return AddressOperand(mem.NewCPUAddress(uint16(b)))

	case Relative:
		return ValueOperand(int8(c.nextU8()))

	case Absolute:
		w := c.nextU16()
		return AddressOperand(mem.NewCPUAddress(w))

	case AbsoluteX:
		w := c.nextU16()
		base := mem.NewCPUAddress(w)
		target := base.AddUnsigned(c.X)
		c.PageCrossed = base.PageOf() != target.PageOf()
		return AddressOperand(target)

	case AbsoluteY:
		w := c.nextU16()
		base := mem.NewCPUAddress(w)
		target := base.AddUnsigned(c.Y)
		c.PageCrossed = base.PageOf() != target.PageOf()
		return AddressOperand(target)

	case Indirect:
		ptr := c.nextU16()
		lo := c.Bus.GetRaw(ptr)
		// Documented 6502 page-wrap bug: if the pointer's low byte is 0xFF,
		// the high byte is fetched from the start of the same page, not the
		// next one.
		var hiAddr uint16
		if mask.Lsb(ptr) == 0xFF {
			hiAddr = ptr & 0xFF00
		} else {
			hiAddr = ptr + 1
		}
		hi := c.Bus.GetRaw(hiAddr)
		return AddressOperand(mem.NewCPUAddress(mask.Word(hi, lo)))

	case IndexedIndirect:
		zp := c.nextU8() + c.X
		lo := c.Bus.GetRaw(uint16(zp))
		hi := c.Bus.GetRaw(uint16(zp + 1))
		effective := mem.NewCPUAddress(mask.Word(hi, lo))
		value := int8(c.Bus.Get(effective))
		return ValueAndAddressOperand(value, effective)

	case IndirectIndexed:
		zp := c.nextU8()
		lo := c.Bus.GetRaw(uint16(zp))
		hi := c.Bus.GetRaw(uint16(zp + 1))
		base := mem.NewCPUAddress(mask.Word(hi, lo))
		effective := base.AddUnsigned(c.Y)
		c.PageCrossed = base.PageOf() != effective.PageOf()
		value := int8(c.Bus.Get(effective))
		return ValueAndAddressOperand(value, effective)

	default:
		return Operand{}
	}
}
