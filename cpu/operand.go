package cpu

import (
	"github.com/pkg/errors"

	"i8086/arch"
	"i8086/bus"
)

// The four operand-access entry points. Common conventions:
//
//   - ok reports whether the operand kind can serve the requested
//     width. A mismatch (say, ReadOperand8 on a 16-bit register) is a
//     normal outcome, never an error.
//   - cost is the bus cycle cost of the access, zero for register and
//     immediate operands. It is surfaced for cycle accounting, never
//     aggregated here.
//   - err is non-nil only for bus faults (unmapped address, device
//     fault); the value is absent when err is set.

// ReadOperand8 reads an operand as an 8-bit value.
func (c *CPU) ReadOperand8(b bus.Bus, op arch.Operand, override arch.SegmentOverride) (v byte, cost bus.Cost, ok bool, err error) {
	switch op.Kind {
	case arch.OpImmediate8:
		return byte(op.Imm), 0, true, nil
	case arch.OpRelative8:
		// Reinterpreted bit-for-bit, not numerically converted.
		return byte(op.Rel), 0, true, nil
	case arch.OpRegister8:
		return c.Register8(op.Reg8), 0, true, nil
	case arch.OpMemory:
		segment, offset := c.EffectiveAddress(op.Mode, override)
		addr := bus.PhysicalAddress(segment, offset)
		v, cost, err := b.ReadByte(addr)
		if err != nil {
			return 0, cost, false, errors.Wrapf(err, "read8 %s", op)
		}
		return v, cost, true, nil
	case arch.OpImmediate16, arch.OpRelative16, arch.OpOffset8, arch.OpOffset16,
		arch.OpRegister16, arch.OpNearAddress, arch.OpFarAddress,
		arch.OpNone, arch.OpInvalid:
		return 0, 0, false, nil
	}
	return 0, 0, false, nil
}

// ReadOperand16 reads an operand as a 16-bit value.
func (c *CPU) ReadOperand16(b bus.Bus, op arch.Operand, override arch.SegmentOverride) (v uint16, cost bus.Cost, ok bool, err error) {
	switch op.Kind {
	case arch.OpImmediate16:
		return op.Imm, 0, true, nil
	case arch.OpRelative16:
		// Reinterpreted bit-for-bit, not numerically converted.
		return uint16(op.Rel), 0, true, nil
	case arch.OpRegister16:
		return c.Register16(op.Reg16), 0, true, nil
	case arch.OpMemory:
		segment, offset := c.EffectiveAddress(op.Mode, override)
		addr := bus.PhysicalAddress(segment, offset)
		v, cost, err := b.ReadWord(addr)
		if err != nil {
			return 0, cost, false, errors.Wrapf(err, "read16 %s", op)
		}
		return v, cost, true, nil
	case arch.OpImmediate8, arch.OpRelative8, arch.OpOffset8, arch.OpOffset16,
		arch.OpRegister8, arch.OpNearAddress, arch.OpFarAddress,
		arch.OpNone, arch.OpInvalid:
		return 0, 0, false, nil
	}
	return 0, 0, false, nil
}

// WriteOperand8 writes an 8-bit value through an operand. Operand kinds
// that describe instruction encoding rather than a storable location
// (immediates, relatives, offsets, near/far addresses, no-operand,
// invalid) are silently skipped: no register change, no bus access.
func (c *CPU) WriteOperand8(b bus.Bus, op arch.Operand, override arch.SegmentOverride, v byte) (cost bus.Cost, err error) {
	switch op.Kind {
	case arch.OpRegister8:
		c.SetRegister8(op.Reg8, v)
		return 0, nil
	case arch.OpMemory:
		segment, offset := c.EffectiveAddress(op.Mode, override)
		addr := bus.PhysicalAddress(segment, offset)
		cost, err := b.WriteByte(addr, v)
		if err != nil {
			return cost, errors.Wrapf(err, "write8 %s", op)
		}
		return cost, nil
	}
	return 0, nil
}

// WriteOperand16 writes a 16-bit value through an operand. All four
// segment registers are legal targets here; segment-load legality per
// instruction is enforced upstream.
func (c *CPU) WriteOperand16(b bus.Bus, op arch.Operand, override arch.SegmentOverride, v uint16) (cost bus.Cost, err error) {
	switch op.Kind {
	case arch.OpRegister16:
		c.SetRegister16(op.Reg16, v)
		return 0, nil
	case arch.OpMemory:
		segment, offset := c.EffectiveAddress(op.Mode, override)
		addr := bus.PhysicalAddress(segment, offset)
		cost, err := b.WriteWord(addr, v)
		if err != nil {
			return cost, errors.Wrapf(err, "write16 %s", op)
		}
		return cost, nil
	}
	return 0, nil
}
