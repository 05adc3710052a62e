// This file is part of NIS.

package asm

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/nldk/NIS/isa"
	"github.com/pkg/errors"
)

// classify turns a textual operand into (value, isRegister). It is pure
// except for the warn hook invoked on the lenient fallback paths. An
// unknown register name is the only condition this function treats as
// fatal; malformed numeric literals warn and decode as zero.
func (a *Assembler) classify(s string) (value uint64, isRegister bool, err error) {
	switch {
	case s == "":
		return 0, false, nil

	case isa.LooksLikeRegister(s):
		reg, ok := isa.LookupRegister(s)
		if !ok {
			return 0, false, errors.Wrapf(ErrUnknownRegister, "%q", s)
		}
		return uint64(reg), true, nil

	case strings.HasPrefix(s, "0x"):
		v, perr := strconv.ParseUint(s[2:], 16, 64)
		if perr != nil {
			a.warnf("asm: malformed hex literal %q, treating as 0", s)
			return 0, false, nil
		}
		return v, false, nil

	case len(s) >= 3 && s[0] == '"' && s[len(s)-1] == '"':
		r, _ := utf8.DecodeRuneInString(s[1 : len(s)-1])
		return uint64(r), false, nil

	default:
		v, perr := strconv.ParseUint(s, 10, 64)
		if perr != nil {
			a.warnf("asm: malformed numeric literal %q, treating as 0", s)
			return 0, false, nil
		}
		return v, false, nil
	}
}

func (a *Assembler) warnf(format string, args ...interface{}) {
	if a.warn != nil {
		a.warn(format, args...)
	}
}
