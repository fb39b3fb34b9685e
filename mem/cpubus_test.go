package mem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPUBusSetGet(t *testing.T) {
	bus := NewCPUBus()
	bus.SetRaw(0x0000, 0x42)
	assert.Equal(t, byte(0x42), bus.GetRaw(0x0000))
}

func TestCPUBusRAMMirrorRoundTrip(t *testing.T) {
	bus := NewCPUBus()
	bus.SetRaw(0x0000, 0x42)
	assert.Equal(t, byte(0x42), bus.GetRaw(0x0800))
	assert.Equal(t, byte(0x42), bus.GetRaw(0x1000))
	assert.Equal(t, byte(0x42), bus.GetRaw(0x1800))

	bus.SetRaw(0x1801, 0x99)
	assert.Equal(t, byte(0x99), bus.GetRaw(0x0001))
}

func TestCPUBusNotifiesSubscribersInOrder(t *testing.T) {
	bus := NewCPUBus()
	var order []string

	bus.Subscribe(func(e AccessEvent) { order = append(order, "first") })
	bus.Subscribe(func(e AccessEvent) { order = append(order, "second") })

	bus.SetRaw(0x2000, 0x80)

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestCPUBusEventCarriesResolvedAddrAndValue(t *testing.T) {
	bus := NewCPUBus()
	var got AccessEvent
	bus.Subscribe(func(e AccessEvent) { got = e })

	bus.SetRaw(0x2008, 0x07)

	assert.Equal(t, Set, got.Kind)
	assert.Equal(t, uint16(0x2000), got.Addr)
	assert.Equal(t, byte(0x07), got.Value)
}

func TestCPUBusGetNotifies(t *testing.T) {
	bus := NewCPUBus()
	var kinds []AccessKind
	bus.Subscribe(func(e AccessEvent) { kinds = append(kinds, e.Kind) })

	bus.SetRaw(0x0000, 0x01)
	bus.GetRaw(0x0000)

	assert.Equal(t, []AccessKind{Set, Get}, kinds)
}

func TestCPUBusWriteBytes(t *testing.T) {
	bus := NewCPUBus()
	bus.WriteBytes(0x8000, []byte{0xA9, 0x01, 0x00})
	assert.Equal(t, byte(0xA9), bus.GetRaw(0x8000))
	assert.Equal(t, byte(0x01), bus.GetRaw(0x8001))
	assert.Equal(t, byte(0x00), bus.GetRaw(0x8002))
}

func TestCPUBusDoesNotRejectPPURegisterWrites(t *testing.T) {
	bus := NewCPUBus()
	assert.NotPanics(t, func() { bus.SetRaw(0x2006, 0xFF) })
}
