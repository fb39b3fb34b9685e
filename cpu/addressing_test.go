package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nesgo/mem"
)

func newBareCpu() *Cpu {
	return New(mem.NewCPUBus())
}

func TestResolveOperandImmediate(t *testing.T) {
	c := newBareCpu()
	c.Bus.SetRaw(0x0600, 0x42)
	c.ProgramCounter = 0x0600

	op := c.ResolveOperand(Immediate)
	v, err := op.ResolveValue(c)
	assert.NoError(t, err)
	assert.Equal(t, int8(0x42), v)
	assert.Equal(t, uint16(0x0601), c.ProgramCounter)
}

func TestResolveOperandZeroPageX(t *testing.T) {
	c := newBareCpu()
	c.X = 0x05
	c.Bus.SetRaw(0x0600, 0xFE) // 0xFE + 0x05 wraps to 0x03 within zero page
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0003, 0x77)

	op := c.ResolveOperand(ZeroPageX)
	v, err := op.ResolveValue(c)
	assert.NoError(t, err)
	assert.Equal(t, int8(0x77), v)
}

func TestResolveOperandIndirectPageWrapBug(t *testing.T) {
	c := newBareCpu()
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0600, 0xFF) // pointer low byte
	c.Bus.SetRaw(0x0601, 0x02) // pointer high byte -> ptr = 0x02FF
	c.Bus.SetRaw(0x02FF, 0x34)
	c.Bus.SetRaw(0x0200, 0x12) // the "wrap" source: same page, not 0x0300
	c.Bus.SetRaw(0x0300, 0x99) // decoy: must NOT be read

	op := c.ResolveOperand(Indirect)
	addr, err := op.ResolveAddr()
	assert.NoError(t, err)
	// target 0x1234 lies in the RAM mirror and resolves to 0x0234
	assert.Equal(t, uint16(0x0234), addr.Resolve())
}

func TestResolveOperandIndirectNoPageWrap(t *testing.T) {
	c := newBareCpu()
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0600, 0x10)
	c.Bus.SetRaw(0x0601, 0x02) // ptr = 0x0210
	c.Bus.SetRaw(0x0210, 0x34)
	c.Bus.SetRaw(0x0211, 0x12)

	op := c.ResolveOperand(Indirect)
	addr, err := op.ResolveAddr()
	assert.NoError(t, err)
	// target 0x1234 lies in the RAM mirror and resolves to 0x0234
	assert.Equal(t, uint16(0x0234), addr.Resolve())
}

func TestResolveOperandIndexedIndirectCarriesValueAndAddress(t *testing.T) {
	c := newBareCpu()
	c.X = 0x04
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0600, 0x20)  // zp operand byte
	c.Bus.SetRaw(0x0024, 0x00) // (0x20+0x04) low byte of effective addr
	c.Bus.SetRaw(0x0025, 0x03) // high byte -> effective = 0x0300
	c.Bus.SetRaw(0x0300, 0x9A)

	op := c.ResolveOperand(IndexedIndirect)

	v, err := op.ResolveValue(c)
	assert.NoError(t, err)
	assert.Equal(t, int8(0x9A), v)

	addr, err := op.ResolveAddr()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0300), addr.Resolve())
}

func TestResolveOperandIndirectIndexedCarriesValueAndAddress(t *testing.T) {
	c := newBareCpu()
	c.Y = 0x10
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0600, 0x30)
	c.Bus.SetRaw(0x0030, 0x00) // base low
	c.Bus.SetRaw(0x0031, 0x04) // base high -> base = 0x0400
	c.Bus.SetRaw(0x0410, 0x5C) // base + Y

	op := c.ResolveOperand(IndirectIndexed)

	v, err := op.ResolveValue(c)
	assert.NoError(t, err)
	assert.Equal(t, int8(0x5C), v)

	addr, err := op.ResolveAddr()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x0410), addr.Resolve())
}

func TestOperandImpliedIsIllegalToResolve(t *testing.T) {
	c := newBareCpu()
	op := c.ResolveOperand(Implied)

	_, err := op.ResolveValue(c)
	assert.ErrorIs(t, err, ErrInvalidAddressingOperand)

	_, err = op.ResolveAddr()
	assert.ErrorIs(t, err, ErrInvalidAddressingOperand)
}

func TestResolveOperandAbsoluteXPageCross(t *testing.T) {
	c := newBareCpu()
	c.X = 0xFF
	c.ProgramCounter = 0x0600
	c.Bus.SetRaw(0x0600, 0x01)
	c.Bus.SetRaw(0x0601, 0x02) // base = 0x0201, + 0xFF = 0x0300

	c.ResolveOperand(AbsoluteX)
	assert.True(t, c.PageCrossed)
}
