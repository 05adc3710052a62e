// This file is part of NIS.

package asm

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// rawLine is one logical line surviving blank-line stripping, tagged with
// its origin for diagnostics.
type rawLine struct {
	text string
	file string
	num  int
}

// readLines reads path and returns its non-blank lines.
func readLines(path string) ([]rawLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(ErrUnreadableFile, "%s: %v", path, err)
	}
	var out []rawLine
	for i, text := range strings.Split(string(data), "\n") {
		text = strings.TrimRight(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, rawLine{text: text, file: path, num: i + 1})
	}
	return out, nil
}

// directive splits a trimmed line into a directive name and its remaining
// argument text, if the line's first non-blank token begins with '#'.
func directive(trimmed string) (name, arg string, ok bool) {
	if !strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	fields := strings.Fields(trimmed)
	name = fields[0]
	if len(fields) > 1 {
		arg = strings.Join(fields[1:], " ")
	}
	return name, arg, true
}

// preprocess reads path and resolves #include directives with a
// basename-keyed include guard. Expansion is single-level by design: lines
// pulled in by an #include are appended to the end of the line set and are
// never themselves re-scanned for further #include directives.
func (a *Assembler) preprocess(path string) ([]rawLine, error) {
	visited := map[string]bool{filepath.Base(path): true}
	initial, err := readLines(path)
	if err != nil {
		return nil, err
	}

	var result []rawLine
	var appended []rawLine
	for _, ln := range initial {
		trimmed := strings.TrimSpace(ln.text)
		name, arg, isDirective := directive(trimmed)
		if !isDirective {
			result = append(result, ln)
			continue
		}
		switch {
		case strings.HasPrefix(name, "#/"):
			// comment line, drop it
		case name == "#include":
			incPath := a.resolveInclude(path, arg)
			base := filepath.Base(incPath)
			if visited[base] {
				continue
			}
			visited[base] = true
			incLines, err := readLines(incPath)
			if err != nil {
				return nil, errors.Wrapf(err, "included from %s:%d", path, ln.num)
			}
			appended = append(appended, incLines...)
		default:
			return nil, errors.Wrapf(ErrUnknownDirective, "%s:%d: %q", path, ln.num, name)
		}
	}
	return append(result, appended...), nil
}

func (a *Assembler) resolveInclude(fromFile, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	root := a.includeRoot
	if root == "" {
		root = filepath.Dir(fromFile)
	}
	return filepath.Join(root, path)
}

// splitSource turns in-memory assembly text into non-blank raw lines,
// without any #include processing (used by AssembleString for tests and
// for the single-file, no-includes case).
func splitSource(name, src string) []rawLine {
	var out []rawLine
	for i, text := range strings.Split(src, "\n") {
		text = strings.TrimRight(text, "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, rawLine{text: text, file: name, num: i + 1})
	}
	return out
}
