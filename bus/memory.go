package bus

import "github.com/pkg/errors"

// Width is the data bus width of the emulated machine.
type Width int

// An 8088 moves every word in two bus cycles; an 8086 needs two only
// for odd-aligned words.
const (
	Width8  Width = 8
	Width16 Width = 16
)

// byteCost is the cost of one bus cycle: four clocks, no wait states.
const byteCost Cost = 4

// DefaultRAMSize fills the conventional 640 KiB.
const DefaultRAMSize = 640 * 1024

// MappedDevice is a device claiming a window of the physical address
// space. Offsets passed to ReadByte/WriteByte are relative to Base.
type MappedDevice interface {
	Base() Physical
	Size() uint32
	ReadByte(off uint32) (byte, error)
	WriteByte(off uint32, v byte) error
}

// SystemBus is the standard Bus implementation: a flat RAM array from
// address 0, plus any attached device windows. Accesses that hit
// neither fail with ErrUnmapped.
type SystemBus struct {
	ram     []byte
	width   Width
	devices []MappedDevice
}

// NewSystemBus returns a bus with ramSize bytes of RAM and the given
// data bus width.
func NewSystemBus(ramSize uint32, width Width) *SystemBus {
	return &SystemBus{
		ram:   make([]byte, ramSize),
		width: width,
	}
}

// Attach adds a memory-mapped device window. Windows must not overlap
// RAM or each other; the caller owns the memory map.
func (b *SystemBus) Attach(dev MappedDevice) {
	b.devices = append(b.devices, dev)
}

func (b *SystemBus) findDevice(addr Physical) MappedDevice {
	for _, dev := range b.devices {
		if addr >= dev.Base() && addr < dev.Base()+Physical(dev.Size()) {
			return dev
		}
	}
	return nil
}

// ReadByte reads one byte. Cost is one bus cycle.
func (b *SystemBus) ReadByte(addr Physical) (byte, Cost, error) {
	addr &= AddressMask
	if addr < Physical(len(b.ram)) {
		return b.ram[addr], byteCost, nil
	}
	if dev := b.findDevice(addr); dev != nil {
		v, err := dev.ReadByte(uint32(addr - dev.Base()))
		if err != nil {
			return 0, byteCost, errors.Wrapf(ErrDeviceFault, "read byte at %05x: %v", addr, err)
		}
		return v, byteCost, nil
	}
	return 0, 0, errors.Wrapf(ErrUnmapped, "read byte at %05x", addr)
}

// ReadWord reads a little-endian word. The second byte wraps at the
// top of the address space.
func (b *SystemBus) ReadWord(addr Physical) (uint16, Cost, error) {
	lo, _, err := b.ReadByte(addr)
	if err != nil {
		return 0, 0, err
	}
	hi, _, err := b.ReadByte((addr + 1) & AddressMask)
	if err != nil {
		return 0, byteCost, err
	}
	return uint16(hi)<<8 | uint16(lo), b.wordCost(addr), nil
}

// WriteByte writes one byte. Cost is one bus cycle.
func (b *SystemBus) WriteByte(addr Physical, v byte) (Cost, error) {
	addr &= AddressMask
	if addr < Physical(len(b.ram)) {
		b.ram[addr] = v
		return byteCost, nil
	}
	if dev := b.findDevice(addr); dev != nil {
		if err := dev.WriteByte(uint32(addr-dev.Base()), v); err != nil {
			return byteCost, errors.Wrapf(ErrDeviceFault, "write byte at %05x: %v", addr, err)
		}
		return byteCost, nil
	}
	return 0, errors.Wrapf(ErrUnmapped, "write byte at %05x", addr)
}

// WriteWord writes a little-endian word, wrapping the second byte at
// the top of the address space.
func (b *SystemBus) WriteWord(addr Physical, v uint16) (Cost, error) {
	if _, err := b.WriteByte(addr, byte(v)); err != nil {
		return 0, err
	}
	if _, err := b.WriteByte((addr+1)&AddressMask, byte(v>>8)); err != nil {
		return byteCost, err
	}
	return b.wordCost(addr), nil
}

// wordCost is the cycle cost of a word transfer: two bus cycles on an
// 8-bit bus or for an odd-aligned word, one otherwise.
func (b *SystemBus) wordCost(addr Physical) Cost {
	if b.width == Width8 || addr&1 == 1 {
		return 2 * byteCost
	}
	return byteCost
}
