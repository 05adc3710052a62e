// This file is part of NIS.

package vm

import "github.com/pkg/errors"

// Sentinel runtime errors. Each is fatal: the interpreter aborts
// execution and returns the error to its caller.
var (
	ErrDivideByZero       = errors.New("vm: divide by zero")
	ErrEmptyCallStack     = errors.New("vm: ret with empty call stack")
	ErrHeapOutOfBounds    = errors.New("vm: heap access out of bounds")
	ErrRegisterOutOfRange = errors.New("vm: register index out of range")
	ErrUnknownInterrupt   = errors.New("vm: unknown interrupt number")
	ErrUnknownOpcode      = errors.New("vm: unknown opcode")
)

// ExitError signals a clean program termination requested via interrupt
// 0 (directly, or through hlt). Code is the process exit code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return "vm: exit"
}
