// This file is part of NIS.

// Package bytecode implements the fixed-width binary encoding of NIS
// instructions: an 18-byte record (1-byte opcode, two 8-byte little-endian
// operands, 1 flags byte) with no header, trailer, or length prefix. See
// the package-level round-trip law in codec.go.
package bytecode

import (
	"encoding/binary"
	"strconv"

	"github.com/nldk/NIS/isa"
)

// RecordSize is the fixed on-disk/in-memory size of one encoded instruction.
const RecordSize = 18

const (
	flagArg1Reg byte = 1 << 0
	flagArg2Reg byte = 1 << 1
)

// Instruction is a decoded bytecode record.
type Instruction struct {
	Opcode    isa.Opcode
	Arg1      uint64
	Arg2      uint64
	Arg1IsReg bool
	Arg2IsReg bool
}

// Value1 resolves Arg1 against regs: the register value if Arg1IsReg,
// otherwise the literal Arg1.
func (ins Instruction) Value1(regs *[isa.RegisterCount]uint64) uint64 {
	if ins.Arg1IsReg {
		return regs[ins.Arg1]
	}
	return ins.Arg1
}

// Value2 resolves Arg2 against regs: the register value if Arg2IsReg,
// otherwise the literal Arg2.
func (ins Instruction) Value2(regs *[isa.RegisterCount]uint64) uint64 {
	if ins.Arg2IsReg {
		return regs[ins.Arg2]
	}
	return ins.Arg2
}

// Encode writes the 18-byte record for ins into buf, which must be at
// least RecordSize bytes long.
func (ins Instruction) Encode(buf []byte) {
	buf[0] = byte(ins.Opcode)
	binary.LittleEndian.PutUint64(buf[1:9], ins.Arg1)
	binary.LittleEndian.PutUint64(buf[9:17], ins.Arg2)
	var flags byte
	if ins.Arg1IsReg {
		flags |= flagArg1Reg
	}
	if ins.Arg2IsReg {
		flags |= flagArg2Reg
	}
	buf[17] = flags
}

// DecodeRecord parses the 18-byte record in buf into an Instruction. buf
// must be exactly RecordSize bytes; the caller validates the length.
func DecodeRecord(buf []byte) Instruction {
	flags := buf[17]
	return Instruction{
		Opcode:    isa.Opcode(buf[0]),
		Arg1:      binary.LittleEndian.Uint64(buf[1:9]),
		Arg2:      binary.LittleEndian.Uint64(buf[9:17]),
		Arg1IsReg: flags&flagArg1Reg != 0,
		Arg2IsReg: flags&flagArg2Reg != 0,
	}
}

// Disassemble renders ins as readable mnemonic-plus-operand text, e.g.
// "add r0 r1" or "jmp 12 0"; both operands are always printed. It never affects program semantics; it exists
// only for --trace output and test failure messages.
func Disassemble(ins Instruction) string {
	name := ins.Opcode.String()
	if name == "" {
		return "???"
	}
	return name + " " + operandText(ins.Arg1, ins.Arg1IsReg) + " " + operandText(ins.Arg2, ins.Arg2IsReg)
}

func operandText(v uint64, isReg bool) string {
	if isReg {
		return isa.Register(v).String()
	}
	return strconv.FormatUint(v, 10)
}
