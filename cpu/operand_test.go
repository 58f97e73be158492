package cpu

import (
	"testing"

	"github.com/pkg/errors"

	"i8086/arch"
	"i8086/bus"
)

func TestCPU_ReadOperand8(t *testing.T) {
	c.Reset()
	c.SetRegister8(arch.CH, 0x7E)

	type args struct {
		op arch.Operand
	}
	tests := []struct {
		name   string
		args   args
		want   byte
		wantOk bool
	}{
		{"immediate8", args{arch.Immediate8(0x42)}, 0x42, true},
		{"relative8 keeps sign bits", args{arch.Relative8(-1)}, 0xFF, true},
		{"register8", args{arch.Reg8(arch.CH)}, 0x7E, true},
		{"immediate16 mismatch", args{arch.Immediate16(0x1234)}, 0, false},
		{"relative16 mismatch", args{arch.Relative16(-2)}, 0, false},
		{"offset8 mismatch", args{arch.Offset8(0x10)}, 0, false},
		{"offset16 mismatch", args{arch.Offset16(0x10)}, 0, false},
		{"register16 mismatch", args{arch.Reg16(arch.AX)}, 0, false},
		{"near address mismatch", args{arch.NearAddress(0x100)}, 0, false},
		{"far address mismatch", args{arch.FarAddress(0x100, 0x10)}, 0, false},
		{"no operand", args{arch.NoOperand()}, 0, false},
		{"invalid operand", args{arch.InvalidOperand()}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, cost, ok, err := c.ReadOperand8(b, tt.args.op, arch.NoOverride)
			if err != nil {
				t.Fatalf("ReadOperand8() error = %v", err)
			}
			if ok != tt.wantOk {
				t.Fatalf("ReadOperand8() ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("ReadOperand8() = %02x, want %02x", got, tt.want)
			}
			if cost != 0 {
				t.Errorf("non-memory operand reported cost %d", cost)
			}
		})
	}
}

func TestCPU_ReadOperand16(t *testing.T) {
	c.Reset()
	c.DX = 0xCAFE
	c.SS = 0x9000

	type args struct {
		op arch.Operand
	}
	tests := []struct {
		name   string
		args   args
		want   uint16
		wantOk bool
	}{
		{"immediate16", args{arch.Immediate16(0x1234)}, 0x1234, true},
		{"relative16 keeps sign bits", args{arch.Relative16(-2)}, 0xFFFE, true},
		{"register16", args{arch.Reg16(arch.DX)}, 0xCAFE, true},
		{"segment register read", args{arch.Reg16(arch.SS)}, 0x9000, true},
		{"immediate8 mismatch", args{arch.Immediate8(0x42)}, 0, false},
		{"relative8 mismatch", args{arch.Relative8(-1)}, 0, false},
		{"register8 mismatch", args{arch.Reg8(arch.AL)}, 0, false},
		{"near address mismatch", args{arch.NearAddress(0x100)}, 0, false},
		{"far address mismatch", args{arch.FarAddress(0x100, 0x10)}, 0, false},
		{"no operand", args{arch.NoOperand()}, 0, false},
		{"invalid operand", args{arch.InvalidOperand()}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, ok, err := c.ReadOperand16(b, tt.args.op, arch.NoOverride)
			if err != nil {
				t.Fatalf("ReadOperand16() error = %v", err)
			}
			if ok != tt.wantOk {
				t.Fatalf("ReadOperand16() ok = %v, want %v", ok, tt.wantOk)
			}
			if got != tt.want {
				t.Errorf("ReadOperand16() = %04x, want %04x", got, tt.want)
			}
		})
	}
}

func TestCPU_MemoryOperandRoundTrip(t *testing.T) {
	c.Reset()
	c.DS = 0x0100
	c.BX = 0x0020
	op := arch.Memory(arch.AddressingMode{Kind: arch.ModBx, Disp: arch.NewDisp8(4)})

	// write8 through ds:[bx+4], read back through the same operand
	cost, err := c.WriteOperand8(b, op, arch.NoOverride, 0x5C)
	if err != nil {
		t.Fatalf("WriteOperand8() error = %v", err)
	}
	if cost == 0 {
		t.Error("memory write reported zero cost")
	}

	v, cost, ok, err := c.ReadOperand8(b, op, arch.NoOverride)
	if err != nil || !ok {
		t.Fatalf("ReadOperand8() ok = %v, error = %v", ok, err)
	}
	if v != 0x5C {
		t.Errorf("ReadOperand8() = %02x, want 5c", v)
	}
	if cost == 0 {
		t.Error("memory read reported zero cost")
	}

	// the byte really landed at DS*16 + BX + 4
	raw, _, _ := b.ReadByte(bus.PhysicalAddress(0x0100, 0x0024))
	if raw != 0x5C {
		t.Errorf("byte at 0100:0024 = %02x, want 5c", raw)
	}

	// word round trip through the same mode
	if _, err := c.WriteOperand16(b, op, arch.NoOverride, 0xBEEF); err != nil {
		t.Fatalf("WriteOperand16() error = %v", err)
	}
	w, _, ok, err := c.ReadOperand16(b, op, arch.NoOverride)
	if err != nil || !ok {
		t.Fatalf("ReadOperand16() ok = %v, error = %v", ok, err)
	}
	if w != 0xBEEF {
		t.Errorf("ReadOperand16() = %04x, want beef", w)
	}
}

func TestCPU_MemoryOperandHonorsOverride(t *testing.T) {
	c.Reset()
	c.DS = 0x0100
	c.ES = 0x0200
	c.SI = 0x0010
	op := arch.Memory(arch.AddressingMode{Kind: arch.ModSi})

	if _, err := c.WriteOperand8(b, op, arch.OverrideES, 0xA7); err != nil {
		t.Fatalf("WriteOperand8() error = %v", err)
	}

	raw, _, _ := b.ReadByte(bus.PhysicalAddress(0x0200, 0x0010))
	if raw != 0xA7 {
		t.Errorf("byte at es:si = %02x, want a7", raw)
	}
	raw, _, _ = b.ReadByte(bus.PhysicalAddress(0x0100, 0x0010))
	if raw == 0xA7 {
		t.Error("write with ES override landed in DS")
	}
}

// Writing through encoding-only operand kinds is a no-op: no register
// change, no bus access.
func TestCPU_WriteNonStorableKinds(t *testing.T) {
	c.Reset()
	c.AX = 0x1111
	c.DS = 0x0300
	before := *c

	canary := bus.PhysicalAddress(0x0300, 0x0042)
	if _, err := b.WriteByte(canary, 0xEE); err != nil {
		t.Fatalf("priming canary byte: %v", err)
	}

	ops := []arch.Operand{
		arch.Immediate8(0x42),
		arch.Immediate16(0x4242),
		arch.Relative8(-4),
		arch.Relative16(-4),
		arch.Offset8(0x0042),
		arch.Offset16(0x0042),
		arch.NearAddress(0x0042),
		arch.FarAddress(0x0300, 0x0042),
		arch.NoOperand(),
		arch.InvalidOperand(),
	}
	for _, op := range ops {
		cost, err := c.WriteOperand8(b, op, arch.NoOverride, 0x99)
		if err != nil || cost != 0 {
			t.Errorf("WriteOperand8(%s) cost = %d, error = %v; want no-op", op, cost, err)
		}
		cost, err = c.WriteOperand16(b, op, arch.NoOverride, 0x9999)
		if err != nil || cost != 0 {
			t.Errorf("WriteOperand16(%s) cost = %d, error = %v; want no-op", op, cost, err)
		}
	}

	if *c != before {
		t.Error("register state changed by a non-storable write")
	}
	if raw, _, _ := b.ReadByte(canary); raw != 0xEE {
		t.Errorf("memory changed by a non-storable write: %02x", raw)
	}
}

// MOV to a segment register is decided upstream; the accessor itself
// lets all four through.
func TestCPU_WriteOperand16SegmentRegisters(t *testing.T) {
	c.Reset()

	for _, r := range []arch.Register16{arch.ES, arch.CS, arch.SS, arch.DS} {
		if _, err := c.WriteOperand16(b, arch.Reg16(r), arch.NoOverride, 0xABCD); err != nil {
			t.Fatalf("WriteOperand16(%s) error = %v", r, err)
		}
		if got := c.Register16(r); got != 0xABCD {
			t.Errorf("%s = %04x, want abcd", r, got)
		}
	}
}

// Bus faults surface as errors the caller can distinguish, not as
// silent zero values.
func TestCPU_MemoryOperandBusError(t *testing.T) {
	c.Reset()
	c.DS = 0xF000 // points above RAM top, nothing mapped there

	op := arch.Memory(arch.AddressingMode{Kind: arch.ModDirect, Disp: arch.NewDisp16(0x0000)})

	_, _, ok, err := c.ReadOperand8(b, op, arch.NoOverride)
	if err == nil {
		t.Fatal("ReadOperand8() into unmapped memory should fail")
	}
	if ok {
		t.Error("ReadOperand8() reported a value alongside a bus error")
	}
	if errors.Cause(err) != bus.ErrUnmapped {
		t.Errorf("error cause = %v, want ErrUnmapped", errors.Cause(err))
	}

	if _, _, _, err := c.ReadOperand16(b, op, arch.NoOverride); errors.Cause(err) != bus.ErrUnmapped {
		t.Errorf("ReadOperand16() error cause = %v, want ErrUnmapped", errors.Cause(err))
	}
	if _, err := c.WriteOperand8(b, op, arch.NoOverride, 1); errors.Cause(err) != bus.ErrUnmapped {
		t.Errorf("WriteOperand8() error cause = %v, want ErrUnmapped", errors.Cause(err))
	}
	if _, err := c.WriteOperand16(b, op, arch.NoOverride, 1); errors.Cause(err) != bus.ErrUnmapped {
		t.Errorf("WriteOperand16() error cause = %v, want ErrUnmapped", errors.Cause(err))
	}
}
