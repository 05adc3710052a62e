// This file is part of NIS.

package asm

import "github.com/pkg/errors"

// Sentinel errors. Wrap with errors.Wrapf to attach source position before
// returning; test with errors.Cause or errors.Is.
var (
	ErrUnreadableFile   = errors.New("asm: unreadable source file")
	ErrUnknownDirective = errors.New("asm: unknown preprocessor directive")
	ErrUnknownMnemonic  = errors.New("asm: unknown mnemonic")
	ErrUndefinedLabel   = errors.New("asm: undefined label")
	ErrDuplicateLabel   = errors.New("asm: duplicate label definition")
	ErrMissingMain      = errors.New("asm: missing required label \"main\"")
	ErrUnknownRegister  = errors.New("asm: unknown register name")
	ErrEmptyLabel       = errors.New("asm: empty label name")
)
