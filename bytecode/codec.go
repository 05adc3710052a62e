// This file is part of NIS.

package bytecode

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// Round-trip law: for every instruction slice xs produced by the
// assembler, Decode(bytes.NewReader(Encode(xs))) == xs. Encode/Decode
// never inspect opcode validity or operand semantics; they are a pure
// binary transcoding of whatever Instruction values they're given.

// Encode serializes instrs to w as a flat concatenation of 18-byte
// records, little-endian, with no header, trailer, or length prefix.
func Encode(w io.Writer, instrs []Instruction) error {
	bw := bufio.NewWriter(w)
	var buf [RecordSize]byte
	for i, ins := range instrs {
		ins.Encode(buf[:])
		if _, err := bw.Write(buf[:]); err != nil {
			return errors.Wrapf(err, "bytecode: write instruction %d", i)
		}
	}
	return errors.Wrap(bw.Flush(), "bytecode: flush")
}

// ErrTruncated indicates the input ended in the middle of a record.
var ErrTruncated = errors.New("bytecode: truncated instruction record")

// Decode reads a flat sequence of 18-byte records from r until clean EOF.
// A partial trailing record (neither 0 nor RecordSize bytes read on the
// final read) is fatal and reported as ErrTruncated.
func Decode(r io.Reader) ([]Instruction, error) {
	br := bufio.NewReader(r)
	var instrs []Instruction
	var buf [RecordSize]byte
	for {
		n, err := io.ReadFull(br, buf[:])
		switch {
		case err == io.EOF:
			return instrs, nil
		case err == io.ErrUnexpectedEOF:
			return nil, errors.Wrapf(ErrTruncated, "got %d of %d bytes for record %d", n, RecordSize, len(instrs))
		case err != nil:
			return nil, errors.Wrapf(err, "bytecode: read instruction %d", len(instrs))
		}
		instrs = append(instrs, DecodeRecord(buf[:]))
	}
}
