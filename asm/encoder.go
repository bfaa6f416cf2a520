// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strconv"

	"github.com/ezrec/leg16/isa"
)

// OPERAND_COUNT is the number of operands every instruction takes.
const OPERAND_COUNT = 3

var (
	defaultTable     = isa.DefaultTable()
	defaultRegisters = isa.DefaultRegisters()
)

// Encoder translates single source lines into instruction words.
// A nil Table or Registers uses the leg16 defaults.
type Encoder struct {
	Table     isa.Table
	Registers isa.RegisterFile
}

func (enc *Encoder) tables() (isa.Table, isa.RegisterFile) {
	table := enc.Table
	if table == nil {
		table = defaultTable
	}
	regs := enc.Registers
	if regs == nil {
		regs = defaultRegisters
	}
	return table, regs
}

// Translate encodes one trimmed, non-comment, non-blank source line.
func (enc *Encoder) Translate(line string) (word isa.Word, err error) {
	ops, err := ParseOperands(line)
	if err != nil {
		return
	}

	return enc.Encode(ops)
}

// Encode encodes an already tokenized line.
func (enc *Encoder) Encode(ops Operands) (word isa.Word, err error) {
	key := isa.Key(ops.Mnemonic, ops.Immediate())

	table, _ := enc.tables()

	spec, ok := table[key]
	if !ok {
		err = ErrToken{Token: ops.Mnemonic, Err: ErrInstructionUnknown}
		return
	}

	if len(ops.Args) != OPERAND_COUNT {
		err = ErrOperandCount{Key: key, Want: OPERAND_COUNT, Got: len(ops.Args)}
		return
	}

	switch spec.Format {
	case isa.FORMAT_R:
		var rd, rn, rm isa.Register
		rd, err = enc.register(ops.Args[0])
		if err != nil {
			return
		}
		rn, err = enc.register(ops.Args[1])
		if err != nil {
			return
		}
		rm, err = enc.register(ops.Args[2])
		if err != nil {
			return
		}
		word = isa.MakeWordR(spec.Opcode, rd, rn, rm)
	case isa.FORMAT_I:
		var rt, rn isa.Register
		var imm uint8
		rt, err = enc.register(ops.Args[0])
		if err != nil {
			return
		}
		rn, err = enc.register(ops.Args[1])
		if err != nil {
			return
		}
		imm, err = immediate(ops.Args[2])
		if err != nil {
			return
		}
		word = isa.MakeWordI(spec.Opcode, rt, rn, imm)
	default:
		err = ErrToken{Token: spec.Format.String(), Err: ErrFormatUnsupported}
	}

	return
}

// register looks up a register operand.
func (enc *Encoder) register(word string) (reg isa.Register, err error) {
	_, regs := enc.tables()

	reg, ok := regs[word]
	if !ok {
		err = ErrToken{Token: word, Err: ErrRegisterInvalid}
	}
	return
}

// immediate parses an unsigned decimal immediate that fits in
// isa.IMMEDIATE_BITS.
func immediate(word string) (imm uint8, err error) {
	if !isDigits(word) {
		err = ErrToken{Token: word, Err: ErrImmediateNotNumeric}
		return
	}

	v, perr := strconv.ParseUint(word, 10, 8)
	if perr != nil || v > isa.IMMEDIATE_MAX {
		err = ErrToken{Token: word, Err: ErrImmediateRange}
		return
	}

	imm = uint8(v)
	return
}
