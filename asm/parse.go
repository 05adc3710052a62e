// This file is part of NIS.

package asm

import (
	"strings"

	"github.com/nldk/NIS/isa"
	"github.com/pkg/errors"
)

// parseLines classifies each preprocessed line as a label definition or an
// instruction. Unknown mnemonics are fatal; stray preprocessor lines
// reaching here (already consumed by preprocess for real files) are
// skipped defensively, never reparsed as directives.
func parseLines(lines []rawLine) ([]irLine, error) {
	out := make([]irLine, 0, len(lines))
	for _, ln := range lines {
		trimmed := strings.TrimSpace(ln.text)
		// A ';' outside a quoted character literal starts a comment that
		// runs to the end of the line.
		inQuote := false
		for j, c := range trimmed {
			if c == '"' {
				inQuote = !inQuote
			} else if c == ';' && !inQuote {
				trimmed = strings.TrimSpace(trimmed[:j])
				break
			}
		}
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, ";"):
			continue
		case strings.HasPrefix(trimmed, "#"):
			continue
		case strings.HasSuffix(trimmed, ":"):
			name := strings.TrimSuffix(trimmed, ":")
			if name == "" {
				return nil, errors.Wrapf(ErrEmptyLabel, "%s:%d", ln.file, ln.num)
			}
			out = append(out, irLine{kind: kindLabel, label: name, file: ln.file, num: ln.num})
		default:
			fields := strings.Split(trimmed, " ")
			var tokens []string
			for _, f := range fields {
				if f != "" {
					tokens = append(tokens, f)
				}
			}
			if len(tokens) == 0 {
				continue
			}
			mnemonic := tokens[0]
			if _, ok := isa.Lookup(mnemonic); !ok {
				return nil, errors.Wrapf(ErrUnknownMnemonic, "%s:%d: %q", ln.file, ln.num, mnemonic)
			}
			var a1, a2 string
			if len(tokens) > 1 {
				a1 = tokens[1]
			}
			if len(tokens) > 2 {
				a2 = tokens[2]
			}
			out = append(out, irLine{kind: kindInstruction, mnemonic: mnemonic, arg1: a1, arg2: a2, file: ln.file, num: ln.num})
		}
	}
	return out, nil
}
