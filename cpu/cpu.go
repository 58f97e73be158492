// Package cpu holds the 8086 register file and the operand-access
// layer: segment resolution, effective-address calculation and the
// read/write entry points the instruction-execution layer calls.
package cpu

import (
	"fmt"
	"strings"

	"i8086/arch"
)

// CPU is the register file. The 8-bit registers are the halves of the
// first four 16-bit registers; only the masked accessors below touch
// them, so writing one half never corrupts the other.
type CPU struct {
	AX, CX, DX, BX uint16
	SP, BP, SI, DI uint16
	ES, CS, SS, DS uint16
	IP             uint16
}

// NewCPU returns a CPU in its reset state.
func NewCPU() *CPU {
	c := new(CPU)
	c.Reset()
	return c
}

// Reset puts the register file into the documented power-on state:
// execution starts at FFFF:0000, everything else cleared.
func (c *CPU) Reset() {
	*c = CPU{CS: 0xFFFF}
}

// Register8 returns the value of an 8-bit register.
func (c *CPU) Register8(r arch.Register8) byte {
	switch r {
	case arch.AL:
		return byte(c.AX)
	case arch.AH:
		return byte(c.AX >> 8)
	case arch.CL:
		return byte(c.CX)
	case arch.CH:
		return byte(c.CX >> 8)
	case arch.DL:
		return byte(c.DX)
	case arch.DH:
		return byte(c.DX >> 8)
	case arch.BL:
		return byte(c.BX)
	case arch.BH:
		return byte(c.BX >> 8)
	}
	panic(InvariantViolation{Op: "Register8", Detail: fmt.Sprintf("unknown register id %d", r)})
}

// SetRegister8 sets an 8-bit register, leaving the other half of the
// backing 16-bit register untouched.
func (c *CPU) SetRegister8(r arch.Register8, v byte) {
	switch r {
	case arch.AL:
		c.AX = c.AX&0xFF00 | uint16(v)
	case arch.AH:
		c.AX = c.AX&0x00FF | uint16(v)<<8
	case arch.CL:
		c.CX = c.CX&0xFF00 | uint16(v)
	case arch.CH:
		c.CX = c.CX&0x00FF | uint16(v)<<8
	case arch.DL:
		c.DX = c.DX&0xFF00 | uint16(v)
	case arch.DH:
		c.DX = c.DX&0x00FF | uint16(v)<<8
	case arch.BL:
		c.BX = c.BX&0xFF00 | uint16(v)
	case arch.BH:
		c.BX = c.BX&0x00FF | uint16(v)<<8
	default:
		panic(InvariantViolation{Op: "SetRegister8", Detail: fmt.Sprintf("unknown register id %d", r)})
	}
}

// Register16 returns the value of a 16-bit register. Segment registers
// read like any other 16-bit register here.
func (c *CPU) Register16(r arch.Register16) uint16 {
	switch r {
	case arch.AX:
		return c.AX
	case arch.CX:
		return c.CX
	case arch.DX:
		return c.DX
	case arch.BX:
		return c.BX
	case arch.SP:
		return c.SP
	case arch.BP:
		return c.BP
	case arch.SI:
		return c.SI
	case arch.DI:
		return c.DI
	case arch.ES:
		return c.ES
	case arch.CS:
		return c.CS
	case arch.SS:
		return c.SS
	case arch.DS:
		return c.DS
	}
	panic(InvariantViolation{Op: "Register16", Detail: fmt.Sprintf("unknown register id %d", r)})
}

// SetRegister16 sets a 16-bit register. Segment registers are legal
// targets; whether an instruction may load them is the decoder's call.
func (c *CPU) SetRegister16(r arch.Register16, v uint16) {
	switch r {
	case arch.AX:
		c.AX = v
	case arch.CX:
		c.CX = v
	case arch.DX:
		c.DX = v
	case arch.BX:
		c.BX = v
	case arch.SP:
		c.SP = v
	case arch.BP:
		c.BP = v
	case arch.SI:
		c.SI = v
	case arch.DI:
		c.DI = v
	case arch.ES:
		c.ES = v
	case arch.CS:
		c.CS = v
	case arch.SS:
		c.SS = v
	case arch.DS:
		c.DS = v
	default:
		panic(InvariantViolation{Op: "SetRegister16", Detail: fmt.Sprintf("unknown register id %d", r)})
	}
}

// DumpRegisters returns the register file formatted for the monitor's
// register view.
func (c *CPU) DumpRegisters() string {
	var res strings.Builder
	fmt.Fprintf(&res, "AX %04x  BX %04x  CX %04x  DX %04x\n", c.AX, c.BX, c.CX, c.DX)
	fmt.Fprintf(&res, "SP %04x  BP %04x  SI %04x  DI %04x\n", c.SP, c.BP, c.SI, c.DI)
	fmt.Fprintf(&res, "CS %04x  DS %04x  ES %04x  SS %04x  IP %04x", c.CS, c.DS, c.ES, c.SS, c.IP)
	return res.String()
}
