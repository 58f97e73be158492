package arch

// Register8 identifies one of the eight 8-bit general registers.
// The 8-bit registers are the high and low halves of AX, BX, CX and DX;
// the register file owns the aliasing, this is just the identity.
type Register8 byte

// 8-bit register identities, in 8086 encoding order.
const (
	AL Register8 = iota
	CL
	DL
	BL
	AH
	CH
	DH
	BH
)

func (r Register8) String() string {
	switch r {
	case AL:
		return "al"
	case CL:
		return "cl"
	case DL:
		return "dl"
	case BL:
		return "bl"
	case AH:
		return "ah"
	case CH:
		return "ch"
	case DH:
		return "dh"
	case BH:
		return "bh"
	}
	return "reg8?"
}

// Register16 identifies one of the twelve 16-bit registers.
// The four segment registers are ordinary 16-bit storage as far as
// operand access is concerned; whether an instruction may target them
// is decided by the decoder, not here.
type Register16 byte

// 16-bit register identities, general registers in 8086 encoding order,
// segment registers after.
const (
	AX Register16 = iota
	CX
	DX
	BX
	SP
	BP
	SI
	DI
	ES
	CS
	SS
	DS
)

func (r Register16) String() string {
	switch r {
	case AX:
		return "ax"
	case CX:
		return "cx"
	case DX:
		return "dx"
	case BX:
		return "bx"
	case SP:
		return "sp"
	case BP:
		return "bp"
	case SI:
		return "si"
	case DI:
		return "di"
	case ES:
		return "es"
	case CS:
		return "cs"
	case SS:
		return "ss"
	case DS:
		return "ds"
	}
	return "reg16?"
}
