// This file is part of NIS.

package vm

import "fmt"

const (
	intExit    = 0
	intAlloc   = 1
	intPutc    = 2
	intPutu    = 3
	intHeapEnd = 4
)

// interrupt dispatches software interrupt code with argument value. It
// returns (result, hasResult) when the interrupt produces a pointer that
// the caller must write into r7.
func (i *Instance) interrupt(code uint8, value uint64) (result uint64, hasResult bool, err error) {
	switch code {
	case intExit:
		return 0, false, &ExitError{Code: int(value)}

	case intAlloc:
		start := len(i.heap)
		i.heap = append(i.heap, make([]uint64, value)...)
		return uint64(start), true, nil

	case intPutc:
		fmt.Fprintf(i.out, "%c", rune(value))
		return 0, false, nil

	case intPutu:
		fmt.Fprintf(i.out, "%d", value)
		return 0, false, nil

	case intHeapEnd:
		return uint64(len(i.heap)), true, nil

	default:
		return 0, false, ErrUnknownInterrupt
	}
}
