// This file is part of NIS.

package isa_test

import (
	"testing"

	"github.com/nldk/NIS/isa"
)

func TestLookupRoundTrip(t *testing.T) {
	for op := isa.MinOpcode; op <= isa.MaxOpcode; op++ {
		name := op.String()
		if name == "" {
			t.Fatalf("opcode %d has no mnemonic", op)
		}
		got, ok := isa.Lookup(name)
		if !ok || got != op {
			t.Errorf("Lookup(%q) = %v, %v; want %v, true", name, got, ok, op)
		}
	}
}

func TestOpcodeRangeIsTwentySix(t *testing.T) {
	if isa.MinOpcode != 1 || isa.MaxOpcode != 26 {
		t.Fatalf("opcode range is [%d, %d], want [1, 26]", isa.MinOpcode, isa.MaxOpcode)
	}
}

func TestControlTransferMnemonics(t *testing.T) {
	want := map[string]bool{
		"call": true, "jmp": true, "jz": true, "jnz": true,
		"mov": false, "add": false, "hlt": false, "ret": false,
	}
	for name, expect := range want {
		op, ok := isa.Lookup(name)
		if !ok {
			t.Fatalf("unknown mnemonic %q", name)
		}
		if got := op.IsControlTransfer(); got != expect {
			t.Errorf("%s.IsControlTransfer() = %v, want %v", name, got, expect)
		}
	}
}

func TestRegisterTable(t *testing.T) {
	names := []string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "sp"}
	for i, name := range names {
		r, ok := isa.LookupRegister(name)
		if !ok || int(r) != i {
			t.Errorf("LookupRegister(%q) = %v, %v; want %d, true", name, r, ok, i)
		}
		if r.String() != name {
			t.Errorf("Register(%d).String() = %q, want %q", i, r.String(), name)
		}
	}
	if isa.SP != 9 {
		t.Fatalf("sp index = %d, want 9", isa.SP)
	}
}

func TestLooksLikeRegister(t *testing.T) {
	cases := map[string]bool{"r0": true, "sp": true, "s9": true, "42": false, "": false, "0x10": false}
	for s, want := range cases {
		if got := isa.LooksLikeRegister(s); got != want {
			t.Errorf("LooksLikeRegister(%q) = %v, want %v", s, got, want)
		}
	}
}
