package mem

// AccessKind distinguishes a bus Get from a bus Set.
type AccessKind int

const (
	Get AccessKind = iota
	Set
)

// An AccessEvent describes a single CPU bus read or write, as delivered to
// subscribers of CPUBus.Subscribe. Addr is already resolved: listeners
// never need to re-run mirror classification.
type AccessEvent struct {
	Kind  AccessKind
	Addr  uint16
	Value byte
}

// CPUBus is the flat 64 KiB CPU address space. Every Get/Set resolves its
// Address through the CPU mirror table and fires an AccessEvent
// synchronously to every subscriber, in registration order, before
// returning -- this is how the PPU register machine learns of writes into
// its $2000-$2007 window.
type CPUBus struct {
	ram      [64 * 1024]byte
	observer Subject[AccessEvent]
}

// NewCPUBus returns an empty CPU bus.
func NewCPUBus() *CPUBus {
	return &CPUBus{}
}

// Subscribe registers handler to receive every subsequent Get and Set.
func (b *CPUBus) Subscribe(handler func(AccessEvent)) {
	b.observer.Subscribe(handler)
}

// Get reads the byte at addr's resolved location and notifies subscribers.
func (b *CPUBus) Get(addr Address) byte {
	resolved := addr.Resolve()
	v := b.ram[resolved]
	b.observer.Notify(AccessEvent{Kind: Get, Addr: resolved, Value: v})
	return v
}

// Set writes v at addr's resolved location and notifies subscribers. No
// address is rejected: writes into the PPU register window are how the PPU
// observes them, not a special case handled here.
func (b *CPUBus) Set(addr Address, v byte) {
	resolved := addr.Resolve()
	b.ram[resolved] = v
	b.observer.Notify(AccessEvent{Kind: Set, Addr: resolved, Value: v})
}

// GetRaw is a convenience for Get(NewCPUAddress(raw)).
func (b *CPUBus) GetRaw(raw uint16) byte {
	return b.Get(NewCPUAddress(raw))
}

// SetRaw is a convenience for Set(NewCPUAddress(raw), v).
func (b *CPUBus) SetRaw(raw uint16, v byte) {
	b.Set(NewCPUAddress(raw), v)
}

// WriteBytes bulk-copies bytes starting at raw, without going through
// per-byte event dispatch suppression -- boot/test code only, per
// spec.md's write_bytes_to.
func (b *CPUBus) WriteBytes(raw uint16, bytes []byte) {
	for i, v := range bytes {
		b.SetRaw(raw+uint16(i), v)
	}
}
