// This file is part of NIS.

// Package isa is the single source of truth for the NIS instruction set:
// the opcode table and the register table. Both the assembler (encoding)
// and the VM/disassembler (decoding, for diagnostics) read from the same
// descriptor slices here, so the two directions can never drift apart.
package isa

import "strings"

// Opcode identifies an operation. Valid opcodes are in [1, 26]; opcode 0
// is reserved and never emitted by the assembler.
type Opcode uint8

// The NIS opcode table, in mnemonic-table order: opcode value is exactly
// the table position, so mov is 1 and ret is 26.
const (
	OpMov Opcode = iota + 1
	OpAdd
	OpSub
	OpDiv
	OpMul
	OpAnd
	OpOr
	OpXor
	OpShr
	OpShl
	OpStore
	OpLoad
	OpPush
	OpPop
	OpJmp
	OpJz
	OpJnz
	OpEq
	OpNeq
	OpBig
	OpSm
	OpHlt
	OpInt
	OpSet
	OpCall
	OpRet

	// MinOpcode and MaxOpcode bound the valid opcode range.
	MinOpcode = OpMov
	MaxOpcode = OpRet
)

var mnemonics = [...]string{
	OpMov:   "mov",
	OpAdd:   "add",
	OpSub:   "sub",
	OpDiv:   "div",
	OpMul:   "mul",
	OpAnd:   "and",
	OpOr:    "or",
	OpXor:   "xor",
	OpShr:   "shr",
	OpShl:   "shl",
	OpStore: "store",
	OpLoad:  "load",
	OpPush:  "push",
	OpPop:   "pop",
	OpJmp:   "jmp",
	OpJz:    "jz",
	OpJnz:   "jnz",
	OpEq:    "eq",
	OpNeq:   "neq",
	OpBig:   "big",
	OpSm:    "sm",
	OpHlt:   "hlt",
	OpInt:   "int",
	OpSet:   "set",
	OpCall:  "call",
	OpRet:   "ret",
}

var mnemonicIndex = func() map[string]Opcode {
	m := make(map[string]Opcode, len(mnemonics))
	for op, name := range mnemonics {
		if name != "" {
			m[name] = Opcode(op)
		}
	}
	return m
}()

// Lookup returns the opcode bound to mnemonic and whether it was found.
func Lookup(mnemonic string) (Opcode, bool) {
	op, ok := mnemonicIndex[mnemonic]
	return op, ok
}

// String returns the mnemonic for op, or "" if op is out of range.
func (op Opcode) String() string {
	if int(op) < len(mnemonics) {
		return mnemonics[op]
	}
	return ""
}

// Valid reports whether op is in the defined [1, 26] range.
func (op Opcode) Valid() bool {
	return op >= MinOpcode && op <= MaxOpcode
}

// IsControlTransfer reports whether op's first operand names a label that
// pass 1 must resolve to an instruction index (call, jmp, jz, jnz).
func (op Opcode) IsControlTransfer() bool {
	switch op {
	case OpCall, OpJmp, OpJz, OpJnz:
		return true
	default:
		return false
	}
}

// Register identifies one of the ten register-file slots.
type Register uint8

// Register indices. SP doubles as the general-purpose data-stack pointer
// consulted by push/pop.
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	SP

	RegisterCount = int(SP) + 1
)

var registerNames = [RegisterCount]string{"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", "r8", "sp"}

var registerIndex = func() map[string]Register {
	m := make(map[string]Register, len(registerNames))
	for i, name := range registerNames {
		m[name] = Register(i)
	}
	return m
}()

// LookupRegister resolves a register name to its index.
func LookupRegister(name string) (Register, bool) {
	r, ok := registerIndex[name]
	return r, ok
}

// String returns the canonical register name.
func (r Register) String() string {
	if int(r) < len(registerNames) {
		return registerNames[r]
	}
	return ""
}

// LooksLikeRegister reports whether s is lexically shaped like a register
// operand (anything beginning with "r" or "s"), independent of whether the
// name actually resolves.
func LooksLikeRegister(s string) bool {
	return strings.HasPrefix(s, "r") || strings.HasPrefix(s, "s")
}
