package cpu

import (
	"fmt"

	"i8086/arch"
)

// defaultSegment is the implicit segment kind of an addressing mode.
type defaultSegment byte

const (
	dataSegment defaultSegment = iota
	stackSegment
)

// resolveSegment yields the segment value for a memory access: the
// override register when a prefix is present, otherwise the mode's
// implicit default (DS, or SS for BP-based modes). An override always
// replaces the default outright.
func (c *CPU) resolveSegment(def defaultSegment, override arch.SegmentOverride) uint16 {
	switch override {
	case arch.NoOverride:
		if def == stackSegment {
			return c.SS
		}
		return c.DS
	case arch.OverrideES:
		return c.ES
	case arch.OverrideCS:
		return c.CS
	case arch.OverrideSS:
		return c.SS
	case arch.OverrideDS:
		return c.DS
	}
	panic(InvariantViolation{Op: "resolveSegment", Detail: fmt.Sprintf("unknown segment override %d", override)})
}

// EffectiveAddress computes the (segment, offset) pair for a memory
// addressing mode. The offset is the wrapping 16-bit sum of the mode's
// base register(s) and displacement; uint16 addition wraps exactly like
// the hardware, so 0xFFFF+1 lands on 0x0000 within the segment.
//
// Addressing modes that reference BP use the stack segment instead of
// the data segment unless a segment override is present:
//
//	ds:[bx+si]   ds:[bx+di]   ss:[bp+si]   ss:[bp+di]
//	ds:[si]      ds:[di]      ss:[bp+disp] ds:[bx]
//	ds:[disp16]
//
// Calling this with RegisterMode is a decoder bug: register-direct
// ModRM operands must be normalized into register operands upstream.
func (c *CPU) EffectiveAddress(mode arch.AddressingMode, override arch.SegmentOverride) (segment, offset uint16) {
	disp := mode.Disp.U16()

	switch mode.Kind {
	case arch.ModBxSi:
		return c.resolveSegment(dataSegment, override), c.BX + c.SI + disp
	case arch.ModBxDi:
		return c.resolveSegment(dataSegment, override), c.BX + c.DI + disp
	case arch.ModBpSi:
		return c.resolveSegment(stackSegment, override), c.BP + c.SI + disp
	case arch.ModBpDi:
		return c.resolveSegment(stackSegment, override), c.BP + c.DI + disp
	case arch.ModSi:
		return c.resolveSegment(dataSegment, override), c.SI + disp
	case arch.ModDi:
		return c.resolveSegment(dataSegment, override), c.DI + disp
	case arch.ModBp:
		return c.resolveSegment(stackSegment, override), c.BP + disp
	case arch.ModBx:
		return c.resolveSegment(dataSegment, override), c.BX + disp
	case arch.ModDirect:
		return c.resolveSegment(dataSegment, override), disp
	case arch.RegisterMode:
		panic(InvariantViolation{Op: "EffectiveAddress", Detail: "register-direct mode has no effective address"})
	}
	panic(InvariantViolation{Op: "EffectiveAddress", Detail: fmt.Sprintf("unknown addressing mode kind %d", mode.Kind)})
}
