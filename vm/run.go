// This file is part of NIS.

package vm

import (
	"fmt"

	"github.com/nldk/NIS/bytecode"
	"github.com/nldk/NIS/isa"
	"github.com/pkg/errors"
)

// Run executes instrs from ip = 0 until a clean exit (hlt or interrupt 0,
// reported as *ExitError), the instruction pointer runs off the end of
// instrs (also a clean exit, with code 0), or a fatal runtime condition
// occurs.
func (i *Instance) Run(instrs []bytecode.Instruction) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = errors.Errorf("vm: %v at ip=%d", e, i.ip)
		}
	}()
	i.ip = 0
	for i.ip < len(instrs) {
		ins := instrs[i.ip]
		if i.trace != nil {
			fmt.Fprintf(i.trace, "% 4d  %-24s %v\n", i.ip, bytecode.Disassemble(ins), i.registers)
		}
		jumped, err := i.step(ins)
		if err != nil {
			return err
		}
		if !jumped {
			i.ip++
		}
		i.insCount++
	}
	return nil
}

// step dispatches a single instruction. It returns jumped = true when the
// handler already updated i.ip itself, so Run must not also advance it.
func (i *Instance) step(ins bytecode.Instruction) (jumped bool, err error) {
	switch ins.Opcode {
	case isa.OpMov:
		v, err := i.reg(ins.Arg2)
		if err != nil {
			return false, err
		}
		return false, i.setReg(ins.Arg1, v)

	case isa.OpAdd:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a + b })
	case isa.OpSub:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a - b })
	case isa.OpMul:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a * b })
	case isa.OpDiv:
		b := ins.Value2(&i.registers)
		if b == 0 {
			return false, ErrDivideByZero
		}
		return false, i.arith(ins, func(a, b uint64) uint64 { return a / b })
	case isa.OpAnd:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a & b })
	case isa.OpOr:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a | b })
	case isa.OpXor:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a ^ b })
	case isa.OpShr:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a >> b })
	case isa.OpShl:
		return false, i.arith(ins, func(a, b uint64) uint64 { return a << b })

	case isa.OpStore:
		addr := ins.Value1(&i.registers)
		v := ins.Value2(&i.registers)
		return false, i.heapSet(addr, v)
	case isa.OpLoad:
		addr := ins.Value2(&i.registers)
		v, err := i.heapGet(addr)
		if err != nil {
			return false, err
		}
		return false, i.setReg(ins.Arg1, v)

	case isa.OpPush:
		v := ins.Value1(&i.registers)
		sp, err := i.reg(uint64(isa.SP))
		if err != nil {
			return false, err
		}
		sp++
		if err := i.setReg(uint64(isa.SP), sp); err != nil {
			return false, err
		}
		return false, i.heapSet(sp, v)
	case isa.OpPop:
		sp, err := i.reg(uint64(isa.SP))
		if err != nil {
			return false, err
		}
		v, err := i.heapGet(sp)
		if err != nil {
			return false, err
		}
		if err := i.setReg(ins.Arg1, v); err != nil {
			return false, err
		}
		return false, i.setReg(uint64(isa.SP), sp-1)

	case isa.OpJmp:
		i.ip = int(ins.Value1(&i.registers))
		return true, nil
	case isa.OpJz:
		if i.flag {
			i.ip = int(ins.Value1(&i.registers))
			return true, nil
		}
		return false, nil
	case isa.OpJnz:
		if !i.flag {
			i.ip = int(ins.Value1(&i.registers))
			return true, nil
		}
		return false, nil

	case isa.OpEq:
		i.flag = ins.Value1(&i.registers) == ins.Value2(&i.registers)
		return false, nil
	case isa.OpNeq:
		i.flag = ins.Value1(&i.registers) != ins.Value2(&i.registers)
		return false, nil
	case isa.OpBig:
		i.flag = ins.Value1(&i.registers) > ins.Value2(&i.registers)
		return false, nil
	case isa.OpSm:
		i.flag = ins.Value1(&i.registers) < ins.Value2(&i.registers)
		return false, nil

	case isa.OpHlt:
		_, _, err := i.interrupt(intExit, 0)
		return false, err

	case isa.OpInt:
		r8, err := i.reg(uint64(isa.R8))
		if err != nil {
			return false, err
		}
		code := uint8(r8 & 0xFF)
		arg := ins.Value1(&i.registers)
		result, hasResult, err := i.interrupt(code, arg)
		if err != nil {
			return false, err
		}
		if hasResult {
			if err := i.setReg(uint64(isa.R7), result); err != nil {
				return false, err
			}
		}
		return false, nil

	case isa.OpSet:
		return false, i.setReg(ins.Arg1, ins.Arg2)

	case isa.OpCall:
		i.callStack = append(i.callStack, i.ip+1)
		i.ip = int(ins.Value1(&i.registers))
		return true, nil
	case isa.OpRet:
		n := len(i.callStack)
		if n == 0 {
			return false, ErrEmptyCallStack
		}
		i.ip = i.callStack[n-1]
		i.callStack = i.callStack[:n-1]
		return true, nil

	default:
		return false, errors.Wrapf(ErrUnknownOpcode, "opcode %d at ip=%d", ins.Opcode, i.ip)
	}
}

// arith applies op to the register named by Arg1 and the resolved value
// of Arg2, storing the (possibly wrapped) result back into Arg1.
func (i *Instance) arith(ins bytecode.Instruction, op func(a, b uint64) uint64) error {
	a, err := i.reg(ins.Arg1)
	if err != nil {
		return err
	}
	b := ins.Value2(&i.registers)
	return i.setReg(ins.Arg1, op(a, b))
}

func (i *Instance) reg(idx uint64) (uint64, error) {
	if idx >= uint64(isa.RegisterCount) {
		return 0, errors.Wrapf(ErrRegisterOutOfRange, "index %d", idx)
	}
	return i.registers[idx], nil
}

func (i *Instance) setReg(idx uint64, v uint64) error {
	if idx >= uint64(isa.RegisterCount) {
		return errors.Wrapf(ErrRegisterOutOfRange, "index %d", idx)
	}
	i.registers[idx] = v
	return nil
}

func (i *Instance) heapGet(addr uint64) (uint64, error) {
	if addr >= uint64(len(i.heap)) {
		return 0, errors.Wrapf(ErrHeapOutOfBounds, "address %d, heap size %d", addr, len(i.heap))
	}
	return i.heap[addr], nil
}

func (i *Instance) heapSet(addr, v uint64) error {
	if addr >= uint64(len(i.heap)) {
		return errors.Wrapf(ErrHeapOutOfBounds, "address %d, heap size %d", addr, len(i.heap))
	}
	i.heap[addr] = v
	return nil
}
