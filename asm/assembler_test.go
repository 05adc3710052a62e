// This file is part of NIS.

package asm_test

import (
	"bytes"
	"testing"

	"github.com/nldk/NIS/asm"
	"github.com/nldk/NIS/bytecode"
	"github.com/nldk/NIS/isa"
	"github.com/pkg/errors"
)

func TestPrologueJumpsToMain(t *testing.T) {
	instrs, err := asm.New().AssembleString("t", "main:\nset r0 1\nhlt\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if len(instrs) != 3 {
		t.Fatalf("len(instrs) = %d, want 3", len(instrs))
	}
	if instrs[0].Opcode != isa.OpJmp || instrs[0].Arg1 != 1 {
		t.Fatalf("prologue = %+v, want jmp to 1", instrs[0])
	}
}

func TestMissingMainIsFatal(t *testing.T) {
	_, err := asm.New().AssembleString("t", "start:\nhlt\n")
	if errors.Cause(err) != asm.ErrMissingMain {
		t.Fatalf("err = %v, want ErrMissingMain", err)
	}
}

func TestDuplicateLabelIsFatal(t *testing.T) {
	_, err := asm.New().AssembleString("t", "main:\nhlt\nmain:\nhlt\n")
	if errors.Cause(err) != asm.ErrDuplicateLabel {
		t.Fatalf("err = %v, want ErrDuplicateLabel", err)
	}
}

func TestUndefinedLabelIsFatal(t *testing.T) {
	_, err := asm.New().AssembleString("t", "main:\njmp nowhere\n")
	if errors.Cause(err) != asm.ErrUndefinedLabel {
		t.Fatalf("err = %v, want ErrUndefinedLabel", err)
	}
}

func TestUnknownMnemonicIsFatal(t *testing.T) {
	_, err := asm.New().AssembleString("t", "main:\nfrobnicate r0\n")
	if errors.Cause(err) != asm.ErrUnknownMnemonic {
		t.Fatalf("err = %v, want ErrUnknownMnemonic", err)
	}
}

func TestMovRejectsNonRegisterSecondOperand(t *testing.T) {
	_, err := asm.New().AssembleString("t", "main:\nmov r0 5\n")
	if errors.Cause(err) != asm.ErrUnknownRegister {
		t.Fatalf("err = %v, want ErrUnknownRegister", err)
	}
}

func TestDeterministic(t *testing.T) {
	src := "main:\nset r0 1\nloop:\nadd r0 r0\nsub r0 1\neq r0 0\njnz loop\nhlt\n"
	a, err := asm.New().AssembleString("t", src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	b, err := asm.New().AssembleString("t", src)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	var bufA, bufB bytes.Buffer
	bytecode.Encode(&bufA, a)
	bytecode.Encode(&bufB, b)
	if !bytes.Equal(bufA.Bytes(), bufB.Bytes()) {
		t.Fatal("identical source produced different bytes across runs")
	}
}

func TestConditionalJumpResolvesLabel(t *testing.T) {
	// Only the assembled form is checked: jz's operand becomes the address
	// bound to its label, counting the prologue at index 0.
	instrs, err := asm.New().AssembleString("t", `
main:
      eq r0 r0
      jz taken
      hlt
taken:
       set r1 1
       hlt
`)
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	// instrs[0] prologue, [1] eq, [2] jz, [3] hlt, [4] set, [5] hlt
	if instrs[2].Opcode != isa.OpJz {
		t.Fatalf("instrs[2] = %+v, want jz", instrs[2])
	}
	if instrs[2].Arg1 != 4 {
		t.Fatalf("jz target = %d, want 4 (taken's bound address)", instrs[2].Arg1)
	}
}

func TestWarnHookFiresOnMalformedLiteral(t *testing.T) {
	var warned string
	_, err := asm.New(asm.WithWarn(func(format string, args ...interface{}) {
		warned = format
	})).AssembleString("t", "main:\nset r0 0xZZ\nhlt\n")
	if err != nil {
		t.Fatalf("assemble: %v", err)
	}
	if warned == "" {
		t.Fatal("expected warn hook to fire on malformed hex literal")
	}
}
