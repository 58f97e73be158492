package system

import (
	"strings"

	"github.com/pkg/errors"

	"i8086/arch"
	"i8086/bus"
)

// Front-panel monitor operations: examine and deposit memory by
// segment:offset, read and set registers by name. These are the
// monitor's own accesses, so the per-access costs are summed here --
// this is the consumer side of the cost the bus reports.

var registers16 = map[string]arch.Register16{
	"ax": arch.AX, "cx": arch.CX, "dx": arch.DX, "bx": arch.BX,
	"sp": arch.SP, "bp": arch.BP, "si": arch.SI, "di": arch.DI,
	"es": arch.ES, "cs": arch.CS, "ss": arch.SS, "ds": arch.DS,
}

var registers8 = map[string]arch.Register8{
	"al": arch.AL, "cl": arch.CL, "dl": arch.DL, "bl": arch.BL,
	"ah": arch.AH, "ch": arch.CH, "dh": arch.DH, "bh": arch.BH,
}

// Examine reads count bytes starting at segment:offset.
func (sys *System) Examine(segment, offset uint16, count int) ([]byte, bus.Cost, error) {
	data := make([]byte, 0, count)
	var total bus.Cost

	for i := 0; i < count; i++ {
		addr := bus.PhysicalAddress(segment, offset+uint16(i))
		b, cost, err := sys.Bus.ReadByte(addr)
		total += cost
		if err != nil {
			return data, total, errors.Wrapf(err, "examine %04x:%04x", segment, offset+uint16(i))
		}
		data = append(data, b)
	}
	return data, total, nil
}

// Deposit writes the given bytes starting at segment:offset.
func (sys *System) Deposit(segment, offset uint16, data []byte) (bus.Cost, error) {
	var total bus.Cost

	for i, b := range data {
		addr := bus.PhysicalAddress(segment, offset+uint16(i))
		cost, err := sys.Bus.WriteByte(addr, b)
		total += cost
		if err != nil {
			return total, errors.Wrapf(err, "deposit %04x:%04x", segment, offset+uint16(i))
		}
	}
	return total, nil
}

// Register returns the value of the register with the given name.
// 8-bit registers are returned in the low byte.
func (sys *System) Register(name string) (uint16, error) {
	name = strings.ToLower(name)
	if name == "ip" {
		return sys.CPU.IP, nil
	}
	if r, ok := registers16[name]; ok {
		return sys.CPU.Register16(r), nil
	}
	if r, ok := registers8[name]; ok {
		return uint16(sys.CPU.Register8(r)), nil
	}
	return 0, errors.Errorf("unknown register %q", name)
}

// SetRegister sets the register with the given name. 8-bit registers
// take the low byte of the value.
func (sys *System) SetRegister(name string, value uint16) error {
	name = strings.ToLower(name)
	if name == "ip" {
		sys.CPU.IP = value
		return nil
	}
	if r, ok := registers16[name]; ok {
		sys.CPU.SetRegister16(r, value)
		return nil
	}
	if r, ok := registers8[name]; ok {
		sys.CPU.SetRegister8(r, byte(value))
		return nil
	}
	return errors.Errorf("unknown register %q", name)
}
