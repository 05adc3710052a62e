// This file is part of NIS.

package asm

import (
	"fmt"
	"os"

	"github.com/nldk/NIS/bytecode"
	"github.com/nldk/NIS/isa"
	"github.com/pkg/errors"
)

// Assembler runs the NIS assembly pipeline: preprocessing, IR parsing, and
// two-pass label resolution and encoding.
type Assembler struct {
	warn        func(format string, args ...interface{})
	includeRoot string
}

// New creates an Assembler. By default, malformed-literal warnings are
// printed to os.Stderr and #include paths resolve relative to the
// directory of the file containing them.
func New(opts ...Option) *Assembler {
	a := &Assembler{
		warn: func(format string, args ...interface{}) { fmt.Fprintf(os.Stderr, format+"\n", args...) },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// AssembleFile runs the full pipeline against a source file on disk,
// including #include expansion.
func (a *Assembler) AssembleFile(path string) ([]bytecode.Instruction, error) {
	raw, err := a.preprocess(path)
	if err != nil {
		return nil, err
	}
	return a.assembleLines(raw)
}

// AssembleString runs the IR-parse-and-assemble stages directly against
// in-memory source text, without #include expansion. name is used only to
// annotate diagnostics.
func (a *Assembler) AssembleString(name, src string) ([]bytecode.Instruction, error) {
	return a.assembleLines(splitSource(name, src))
}

func (a *Assembler) assembleLines(raw []rawLine) ([]bytecode.Instruction, error) {
	ir, err := parseLines(raw)
	if err != nil {
		return nil, err
	}
	return a.assemble(ir)
}

// assemble performs two-pass label binding and emission, then prepends the
// jmp-to-main prologue at index 0.
func (a *Assembler) assemble(ir []irLine) ([]bytecode.Instruction, error) {
	symtab, err := bindLabels(ir)
	if err != nil {
		return nil, err
	}
	mainAddr, ok := symtab["main"]
	if !ok {
		return nil, ErrMissingMain
	}

	instrs := make([]bytecode.Instruction, 0, len(ir)+1)
	instrs = append(instrs, bytecode.Instruction{Opcode: isa.OpJmp, Arg1: uint64(mainAddr)})

	for _, ln := range ir {
		if ln.kind != kindInstruction {
			continue
		}
		ins, err := a.emit(ln, symtab)
		if err != nil {
			return nil, err
		}
		instrs = append(instrs, ins)
	}
	return instrs, nil
}

// bindLabels is assembler pass 1: walk the IR once, binding each label to
// the index its successor instruction will occupy once the prologue jump
// at index 0 is accounted for.
func bindLabels(ir []irLine) (map[string]int, error) {
	symtab := make(map[string]int)
	idx := 0
	for _, ln := range ir {
		switch ln.kind {
		case kindInstruction:
			idx++
		case kindLabel:
			if _, dup := symtab[ln.label]; dup {
				return nil, errors.Wrapf(ErrDuplicateLabel, "%s:%d: %q", ln.file, ln.num, ln.label)
			}
			symtab[ln.label] = idx + 1
		}
	}
	return symtab, nil
}

// emit is assembler pass 2 for a single instruction line.
func (a *Assembler) emit(ln irLine, symtab map[string]int) (bytecode.Instruction, error) {
	op, ok := isa.Lookup(ln.mnemonic)
	if !ok {
		return bytecode.Instruction{}, errors.Wrapf(ErrUnknownMnemonic, "%s:%d: %q", ln.file, ln.num, ln.mnemonic)
	}
	ins := bytecode.Instruction{Opcode: op}

	if op.IsControlTransfer() {
		target, ok := symtab[ln.arg1]
		if !ok {
			return bytecode.Instruction{}, errors.Wrapf(ErrUndefinedLabel, "%s:%d: %q", ln.file, ln.num, ln.arg1)
		}
		ins.Arg1, ins.Arg1IsReg = uint64(target), false
	} else {
		v1, isReg1, err := a.classify(ln.arg1)
		if err != nil {
			return bytecode.Instruction{}, errors.Wrapf(err, "%s:%d: operand 1", ln.file, ln.num)
		}
		ins.Arg1, ins.Arg1IsReg = v1, isReg1
	}

	if op == isa.OpMov {
		// mov's second operand is always a register index; reject anything
		// that doesn't name a register rather than falling back to a literal.
		reg, ok := isa.LookupRegister(ln.arg2)
		if !ok {
			return bytecode.Instruction{}, errors.Wrapf(ErrUnknownRegister, "%s:%d: %q", ln.file, ln.num, ln.arg2)
		}
		ins.Arg2, ins.Arg2IsReg = uint64(reg), true
		return ins, nil
	}

	v2, isReg2, err := a.classify(ln.arg2)
	if err != nil {
		return bytecode.Instruction{}, errors.Wrapf(err, "%s:%d: operand 2", ln.file, ln.num)
	}
	ins.Arg2, ins.Arg2IsReg = v2, isReg2

	return ins, nil
}
