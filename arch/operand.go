// Package arch defines the operand and addressing-mode vocabulary shared
// by the instruction decoder and the operand-access layer. The types here
// are plain values produced per instruction and consumed immediately; they
// carry no state of their own.
package arch

import "fmt"

// OperandKind tags what an instruction operand refers to.
type OperandKind byte

// All operand kinds. Every consumer must handle every kind: a kind the
// requested width cannot serve is a normal "not applicable" outcome, not
// an error.
const (
	OpNone OperandKind = iota
	OpImmediate8
	OpImmediate16
	OpRelative8
	OpRelative16
	OpOffset8
	OpOffset16
	OpRegister8
	OpRegister16
	OpMemory
	OpNearAddress
	OpFarAddress
	OpInvalid
)

// Operand is a single decoded instruction operand. Exactly one kind is
// active; only the payload fields for that kind are meaningful.
type Operand struct {
	Kind    OperandKind
	Imm     uint16         // OpImmediate8/16, OpOffset8/16, OpNearAddress
	Rel     int16          // OpRelative8/16
	Reg8    Register8      // OpRegister8
	Reg16   Register16     // OpRegister16
	Mode    AddressingMode // OpMemory
	Segment uint16         // OpFarAddress
	Offset  uint16         // OpFarAddress
}

// Constructors for each operand kind. The decoder builds operands only
// through these, which keeps the kind and its payload consistent.

func Immediate8(v uint8) Operand {
	return Operand{Kind: OpImmediate8, Imm: uint16(v)}
}

func Immediate16(v uint16) Operand {
	return Operand{Kind: OpImmediate16, Imm: v}
}

func Relative8(v int8) Operand {
	return Operand{Kind: OpRelative8, Rel: int16(v)}
}

func Relative16(v int16) Operand {
	return Operand{Kind: OpRelative16, Rel: v}
}

func Offset8(v uint16) Operand {
	return Operand{Kind: OpOffset8, Imm: v}
}

func Offset16(v uint16) Operand {
	return Operand{Kind: OpOffset16, Imm: v}
}

func Reg8(r Register8) Operand {
	return Operand{Kind: OpRegister8, Reg8: r}
}

func Reg16(r Register16) Operand {
	return Operand{Kind: OpRegister16, Reg16: r}
}

func Memory(m AddressingMode) Operand {
	return Operand{Kind: OpMemory, Mode: m}
}

func NearAddress(offset uint16) Operand {
	return Operand{Kind: OpNearAddress, Imm: offset}
}

func FarAddress(segment, offset uint16) Operand {
	return Operand{Kind: OpFarAddress, Segment: segment, Offset: offset}
}

func NoOperand() Operand {
	return Operand{Kind: OpNone}
}

func InvalidOperand() Operand {
	return Operand{Kind: OpInvalid}
}

func (o Operand) String() string {
	switch o.Kind {
	case OpNone:
		return "none"
	case OpImmediate8:
		return fmt.Sprintf("imm8 0x%02x", o.Imm)
	case OpImmediate16:
		return fmt.Sprintf("imm16 0x%04x", o.Imm)
	case OpRelative8:
		return fmt.Sprintf("rel8 %+d", o.Rel)
	case OpRelative16:
		return fmt.Sprintf("rel16 %+d", o.Rel)
	case OpOffset8:
		return fmt.Sprintf("off8 0x%04x", o.Imm)
	case OpOffset16:
		return fmt.Sprintf("off16 0x%04x", o.Imm)
	case OpRegister8:
		return o.Reg8.String()
	case OpRegister16:
		return o.Reg16.String()
	case OpMemory:
		return o.Mode.String()
	case OpNearAddress:
		return fmt.Sprintf("near 0x%04x", o.Imm)
	case OpFarAddress:
		return fmt.Sprintf("far 0x%04x:0x%04x", o.Segment, o.Offset)
	case OpInvalid:
		return "invalid"
	}
	return "operand?"
}
