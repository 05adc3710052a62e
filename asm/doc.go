// This file is part of NIS.

// Package asm implements the NIS two-pass assembler: a source reader and
// preprocessor, an IR parser, an operand classifier, and the two-pass
// label-resolving assembler itself.
//
// Supported mnemonics, in opcode order:
//
//	opcode	mnemonic	operands	effect
//	1	mov		r, r		r[a1] = r[a2]
//	2	add		r, r|imm	r[a1] += value(a2)
//	3	sub		r, r|imm	r[a1] -= value(a2)
//	4	div		r, r|imm	r[a1] /= value(a2)
//	5	mul		r, r|imm	r[a1] *= value(a2)
//	6	and		r, r|imm	r[a1] &= value(a2)
//	7	or		r, r|imm	r[a1] |= value(a2)
//	8	xor		r, r|imm	r[a1] ^= value(a2)
//	9	shr		r, r|imm	r[a1] >>= value(a2)
//	10	shl		r, r|imm	r[a1] <<= value(a2)
//	11	store		r|imm, r|imm	heap[value(a1)] = value(a2)
//	12	load		r, r|imm	r[a1] = heap[value(a2)]
//	13	push		r|imm		heap[++sp] = value(a1)
//	14	pop		r		r[a1] = heap[sp--]
//	15	jmp		label		ip = label
//	16	jz		label		if flag: ip = label
//	17	jnz		label		if !flag: ip = label
//	18	eq		r|imm, r|imm	flag = value(a1) == value(a2)
//	19	neq		r|imm, r|imm	flag = value(a1) != value(a2)
//	20	big		r|imm, r|imm	flag = value(a1) > value(a2)
//	21	sm		r|imm, r|imm	flag = value(a1) < value(a2)
//	22	hlt				interrupt 0 with value 0
//	23	int		r|imm		dispatch interrupt r8&0xFF with value(a1)
//	24	set		r, imm		r[a1] = a2 literal
//	25	call		label		push ip+1; ip = label
//	26	ret				ip = pop()
//
// Comments start with ';' and run to end of line. Preprocessor directives
// start with '#': "#include <path>" textually includes another file
// (guarded against re-inclusion by basename, see preprocess), and "#/" is
// a comment line. Labels are an identifier on its own line ending in ':'.
// The label "main" is required and is the program's entry point; the
// assembler inserts an unconditional jump to it at instruction index 0.
package asm
