// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"iter"
	"maps"
	"strings"
)

const (
	OPCODE_BITS    = 7                         // Width of the opcode field.
	REGISTER_BITS  = 2                         // Width of a register field.
	IMMEDIATE_BITS = 5                         // Width of the I-format immediate.
	IMMEDIATE_MAX  = (1 << IMMEDIATE_BITS) - 1 // Largest encodable immediate.
	REGISTER_COUNT = 1 << REGISTER_BITS        // Number of addressable registers.

	// IMMEDIATE_SUFFIX is appended to a mnemonic to form the table key of
	// its immediate-mode variant.
	IMMEDIATE_SUFFIX = "_I"
)

// Spec is a single instruction table entry.
type Spec struct {
	Opcode uint8  // 7-bit opcode.
	Format Format // Operand layout.
	Memory bool   // Load/store operand syntax ([Rn, Rm]).
}

// Table maps an instruction key (mnemonic, or mnemonic plus
// IMMEDIATE_SUFFIX) to its Spec.
type Table map[string]Spec

var defaultTable = Table{
	"ADD":   {Opcode: 0b1100000, Format: FORMAT_R},               // ADD Rd, Rn, Rm
	"ADD_I": {Opcode: 0b0101000, Format: FORMAT_I},               // ADD Rd, Rn, imm5
	"SUB":   {Opcode: 0b1110000, Format: FORMAT_R},               // SUB Rd, Rn, Rm
	"SUB_I": {Opcode: 0b0111000, Format: FORMAT_I},               // SUB Rd, Rn, imm5
	"LDR":   {Opcode: 0b1100011, Format: FORMAT_R, Memory: true}, // LDR Rt, [Rn, Rm]
	"LDR_I": {Opcode: 0b0101011, Format: FORMAT_I, Memory: true}, // LDR Rt, [Rn, imm5]
	"STR":   {Opcode: 0b1000100, Format: FORMAT_R, Memory: true}, // STR Rt, [Rn, Rm]
	"STR_I": {Opcode: 0b0001100, Format: FORMAT_I, Memory: true}, // STR Rt, [Rn, imm5]
}

// DefaultTable returns a copy of the leg16 instruction table.
func DefaultTable() Table {
	return maps.Clone(defaultTable)
}

// Key returns the table key for a mnemonic in register or immediate mode.
func Key(mnemonic string, immediate bool) string {
	if immediate {
		return mnemonic + IMMEDIATE_SUFFIX
	}
	return mnemonic
}

// Mnemonic strips the immediate suffix from a table key.
func Mnemonic(key string) string {
	return strings.TrimSuffix(key, IMMEDIATE_SUFFIX)
}

// Lookup finds the table entry with the given opcode.
func (table Table) Lookup(opcode uint8) (key string, spec Spec, ok bool) {
	for key, spec = range table {
		if spec.Opcode == opcode {
			ok = true
			return
		}
	}

	return "", Spec{}, false
}

// Register is a 2-bit register code.
type Register uint8

// RegisterFile maps register names to their codes.
type RegisterFile map[string]Register

var defaultRegisters = RegisterFile{
	"X0": 0b00,
	"X1": 0b01,
	"X2": 0b10,
	"X3": 0b11,
}

// DefaultRegisters returns a copy of the leg16 register file.
func DefaultRegisters() RegisterFile {
	return maps.Clone(defaultRegisters)
}

// Name returns the name of a register code.
func (rf RegisterFile) Name(reg Register) (name string, ok bool) {
	for name, code := range rf {
		if code == reg {
			return name, true
		}
	}

	return "", false
}

// Defines returns an iterator over the instruction set constants
// visible to compile-time expressions.
func Defines() iter.Seq2[string, int] {
	return maps.All(map[string]int{
		"IMM_MAX":   IMMEDIATE_MAX,
		"REGISTERS": REGISTER_COUNT,
	})
}
