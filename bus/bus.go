// Package bus models the 8086 system bus: a 20-bit physical address
// space backed by RAM and memory-mapped devices. Every access reports
// its cycle cost so a cycle-accounting layer can consume it.
package bus

import "github.com/pkg/errors"

// Physical is a 20-bit address on the system bus.
type Physical uint32

// AddressMask wraps addresses into the 1 MiB physical space. A
// segment:offset pair near the top of the range wraps to address 0,
// the way the real hardware (without an A20 gate) does.
const AddressMask Physical = 0xFFFFF

// PhysicalAddress folds a segment:offset pair into a physical address:
// segment*16 + offset, wrapped to 20 bits.
func PhysicalAddress(segment, offset uint16) Physical {
	return Physical(uint32(segment)<<4+uint32(offset)) & AddressMask
}

// Cost is the clock-cycle cost of a single bus access, as reported by
// the bus. The operand-access layer surfaces it unaggregated.
type Cost int

// Bus services byte and word transactions against the physical address
// space. Words are little-endian. A failed access reports zero value
// and whatever cost was incurred before the fault.
type Bus interface {
	ReadByte(addr Physical) (byte, Cost, error)
	ReadWord(addr Physical) (uint16, Cost, error)
	WriteByte(addr Physical, v byte) (Cost, error)
	WriteWord(addr Physical, v uint16) (Cost, error)
}

// Sentinel bus faults. Callers distinguish them with errors.Cause.
var (
	// ErrUnmapped - the address falls outside RAM and every attached
	// device window.
	ErrUnmapped = errors.New("address not mapped")

	// ErrDeviceFault - an attached device refused the access.
	ErrDeviceFault = errors.New("device fault")
)
