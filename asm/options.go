// This file is part of NIS.

package asm

// Option configures an Assembler, following the same functional-option
// shape used by vm.Option in the VM package.
type Option func(*Assembler)

// WithWarn installs a hook invoked whenever the operand classifier falls
// back to its lenient "malformed literal becomes 0" behavior. The default
// hook writes to os.Stderr.
func WithWarn(fn func(format string, args ...interface{})) Option {
	return func(a *Assembler) { a.warn = fn }
}

// WithIncludeRoot overrides the base directory used to resolve #include
// paths. By default, each #include is resolved relative to the directory
// of the file containing it.
func WithIncludeRoot(dir string) Option {
	return func(a *Assembler) { a.includeRoot = dir }
}
