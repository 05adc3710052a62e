// This file is part of NIS.

package asm

import "testing"

func TestParseLinesLabelAndInstruction(t *testing.T) {
	raw := []rawLine{
		{text: "main:", file: "t", num: 1},
		{text: "  set r0 1  ", file: "t", num: 2},
		{text: "; a comment", file: "t", num: 3},
		{text: "hlt", file: "t", num: 4},
	}
	ir, err := parseLines(raw)
	if err != nil {
		t.Fatalf("parseLines: %v", err)
	}
	if len(ir) != 3 {
		t.Fatalf("len(ir) = %d, want 3", len(ir))
	}
	if ir[0].kind != kindLabel || ir[0].label != "main" {
		t.Fatalf("ir[0] = %+v, want label main", ir[0])
	}
	if ir[1].kind != kindInstruction || ir[1].mnemonic != "set" || ir[1].arg1 != "r0" || ir[1].arg2 != "1" {
		t.Fatalf("ir[1] = %+v, want set r0 1", ir[1])
	}
	if ir[2].mnemonic != "hlt" || ir[2].arg1 != "" || ir[2].arg2 != "" {
		t.Fatalf("ir[2] = %+v, want bare hlt", ir[2])
	}
}

func TestParseLinesEmptyLabelIsFatal(t *testing.T) {
	_, err := parseLines([]rawLine{{text: ":", file: "t", num: 1}})
	if err == nil {
		t.Fatal("expected error for empty label name")
	}
}

func TestParseLinesUnknownMnemonicIsFatal(t *testing.T) {
	_, err := parseLines([]rawLine{{text: "nope r0", file: "t", num: 1}})
	if err == nil {
		t.Fatal("expected error for unknown mnemonic")
	}
}
