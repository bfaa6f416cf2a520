// Package asm implements the leg16 assembler.
//
// Each source line holds at most one instruction of the form
//
//	MNEMONIC OP1, OP2, OP3
//
// where commas and the brackets around load/store address operands are
// optional. A line whose last operand is all decimal digits selects the
// immediate form of the mnemonic. Blank lines and lines starting with '#'
// are skipped.
//
// Before a line is encoded, every $(...) in it is evaluated as a Starlark
// integer expression and replaced by its decimal value. Expressions see the
// constants IMM_MAX, REGISTERS, WORDS, ROW_WORDS, LINENO and ADDRESS, plus
// any names given to Assembler.Predefine.
package asm
