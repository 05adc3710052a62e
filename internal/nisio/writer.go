// This file is part of NIS.

// Package nisio holds small I/O helpers used by the VM.
package nisio

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter wraps an io.Writer and latches the first error it sees; every
// write after that returns the same error without touching the
// underlying writer again.
type ErrWriter struct {
	w   io.Writer
	Err error
}

func (w *ErrWriter) Write(p []byte) (n int, err error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err = w.w.Write(p)
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// NewErrWriter returns a new ErrWriter wrapping w.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}
