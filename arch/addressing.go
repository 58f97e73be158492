package arch

import "fmt"

// SegmentOverride carries an instruction's segment override prefix.
// NoOverride means the addressing mode's implicit default segment applies.
type SegmentOverride byte

// Segment override states. An override always replaces the default
// segment outright; there is no partial combination.
const (
	NoOverride SegmentOverride = iota
	OverrideES
	OverrideCS
	OverrideSS
	OverrideDS
)

func (s SegmentOverride) String() string {
	switch s {
	case NoOverride:
		return "none"
	case OverrideES:
		return "es:"
	case OverrideCS:
		return "cs:"
	case OverrideSS:
		return "ss:"
	case OverrideDS:
		return "ds:"
	}
	return "seg?"
}

// DispKind tells which displacement form a ModRM encoding carried.
type DispKind byte

// The three displacement forms of the ModRM byte.
const (
	DispNone DispKind = iota
	Disp8
	Disp16
)

// Displacement is the optional displacement of an addressing mode.
// An 8-bit displacement is sign-extended at construction time, so the
// 16-bit value can be added to a base register with plain wrapping
// arithmetic. Two's complement does the rest.
type Displacement struct {
	kind  DispKind
	value uint16
}

// NoDisp returns the empty displacement.
func NoDisp() Displacement {
	return Displacement{}
}

// NewDisp8 returns an 8-bit displacement, sign-extended to 16 bits.
func NewDisp8(v int8) Displacement {
	return Displacement{kind: Disp8, value: uint16(int16(v))}
}

// NewDisp16 returns a raw 16-bit displacement.
func NewDisp16(v uint16) Displacement {
	return Displacement{kind: Disp16, value: v}
}

// Kind returns the displacement form.
func (d Displacement) Kind() DispKind {
	return d.kind
}

// U16 returns the displacement as a 16-bit value ready for wrapping
// addition. Zero for DispNone.
func (d Displacement) U16() uint16 {
	return d.value
}

// AddressingModeKind is the base/index form of a ModRM memory operand.
type AddressingModeKind byte

// The eight base/index forms, the direct-address form, and the
// register-direct sentinel. RegisterMode never legally reaches
// effective-address calculation: the decoder normalizes register-direct
// ModRM operands into Register8/Register16 operands.
const (
	ModBxSi AddressingModeKind = iota
	ModBxDi
	ModBpSi
	ModBpDi
	ModSi
	ModDi
	ModBp
	ModBx
	ModDirect
	RegisterMode
)

func (k AddressingModeKind) String() string {
	switch k {
	case ModBxSi:
		return "bx+si"
	case ModBxDi:
		return "bx+di"
	case ModBpSi:
		return "bp+si"
	case ModBpDi:
		return "bp+di"
	case ModSi:
		return "si"
	case ModDi:
		return "di"
	case ModBp:
		return "bp"
	case ModBx:
		return "bx"
	case ModDirect:
		return "direct"
	case RegisterMode:
		return "register"
	}
	return "mode?"
}

// AddressingMode is one of the 8086 ModRM memory addressing forms:
// a base/index kind crossed with an optional displacement. BP-based
// kinds default to the stack segment, everything else to the data
// segment.
type AddressingMode struct {
	Kind AddressingModeKind
	Disp Displacement
}

// BPBased reports whether the mode uses BP as a base and therefore
// defaults to the stack segment.
func (m AddressingMode) BPBased() bool {
	switch m.Kind {
	case ModBpSi, ModBpDi, ModBp:
		return true
	}
	return false
}

func (m AddressingMode) String() string {
	switch m.Disp.Kind() {
	case DispNone:
		return fmt.Sprintf("[%s]", m.Kind)
	default:
		return fmt.Sprintf("[%s+0x%04x]", m.Kind, m.Disp.U16())
	}
}
