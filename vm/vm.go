// This file is part of NIS.

// Package vm implements the NIS register-and-stack interpreter: ten
// 64-bit registers, a single comparison flag, a dynamically growable
// heap, and a disjoint call stack of return addresses. See run.go for the
// dispatch loop and interrupt.go for the software interrupt table.
package vm

import (
	"io"
	"os"

	"github.com/nldk/NIS/internal/nisio"
	"github.com/nldk/NIS/isa"
)

// Option configures an Instance at construction time.
type Option func(*Instance) error

// WithHeapCapacity preallocates the heap to cap words (still starting
// logically empty; only the alloc interrupt grows its length).
func WithHeapCapacity(cap int) Option {
	return func(i *Instance) error { i.heap = make([]uint64, 0, cap); return nil }
}

// WithOutput sets the writer interrupts 2 (putc) and 3 (putu) print to.
// The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Instance) error { i.out = w; return nil }
}

// WithTrace enables per-instruction disassembly on trace, written to w.
func WithTrace(w io.Writer) Option {
	return func(i *Instance) error { i.trace = w; return nil }
}

// Instance is one NIS virtual machine. Its state — registers, flag, heap,
// call stack, and instruction pointer — is owned entirely by the
// instance for the duration of a Run and is never shared across threads.
type Instance struct {
	registers [isa.RegisterCount]uint64
	flag      bool
	heap      []uint64
	callStack []int
	ip        int

	out      io.Writer
	trace    io.Writer
	insCount int64
}

// New creates an Instance with all ten registers zeroed, an empty heap,
// an empty call stack, and ip = 0.
func New(opts ...Option) (*Instance, error) {
	i := &Instance{out: os.Stdout}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	i.out = nisio.NewErrWriter(i.out)
	return i, nil
}

// Registers returns a copy of the register file, for inspection in tests
// and diagnostics.
func (i *Instance) Registers() [isa.RegisterCount]uint64 {
	return i.registers
}

// Flag returns the current comparison flag — the result of the most
// recent eq/neq/big/sm, not an arithmetic carry bit.
func (i *Instance) Flag() bool {
	return i.flag
}

// Heap returns the current heap contents.
func (i *Instance) Heap() []uint64 {
	return i.heap
}

// InstructionCount returns the number of instructions dispatched so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// OutputError returns the first error encountered writing to the output
// writer, if any. putc/putu failures do not abort execution on their own;
// callers should check this after Run returns.
func (i *Instance) OutputError() error {
	if ew, ok := i.out.(*nisio.ErrWriter); ok {
		return ew.Err
	}
	return nil
}
