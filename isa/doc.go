// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package isa describes the leg16 instruction set: a 16-bit fixed width
// encoding of ADD, SUB, LDR and STR over four registers (X0-X3).
//
// Every instruction word starts with a 7-bit opcode. Register format (R)
// words carry three 2-bit register fields and three zero padding bits:
//
//	opcode[15:9] Rm[8:7] 000[6:4] Rn[3:2] Rd[1:0]
//
// Immediate format (I) words carry a 5-bit unsigned immediate:
//
//	opcode[15:9] imm[8:4] Rn[3:2] Rt[1:0]
//
// The instruction table and register file are read-only values; callers
// that need them take a fresh copy from DefaultTable and DefaultRegisters.
package isa
