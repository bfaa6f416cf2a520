// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strconv"
)

// Instruction is a decoded instruction word.
type Instruction struct {
	Key      string    // Table key, including IMMEDIATE_SUFFIX for I format.
	Spec     Spec      // Table entry.
	Operands [3]string // Rd/Rt, Rn, then Rm or the decimal immediate.
}

// Mnemonic returns the instruction mnemonic without the immediate suffix.
func (inst Instruction) Mnemonic() string {
	return Mnemonic(inst.Key)
}

// String returns the canonical assembly source for the instruction.
func (inst Instruction) String() string {
	ops := inst.Operands
	if inst.Spec.Memory {
		return fmt.Sprintf("%v %v, [%v, %v]", inst.Mnemonic(), ops[0], ops[1], ops[2])
	}
	return fmt.Sprintf("%v %v, %v, %v", inst.Mnemonic(), ops[0], ops[1], ops[2])
}

// Decoder turns words back into instructions. A nil Table or Registers
// uses the leg16 defaults.
type Decoder struct {
	Table     Table
	Registers RegisterFile
}

func (dec *Decoder) tables() (Table, RegisterFile) {
	table := dec.Table
	if table == nil {
		table = defaultTable
	}
	regs := dec.Registers
	if regs == nil {
		regs = defaultRegisters
	}
	return table, regs
}

// Decode unpacks a word by reverse opcode lookup.
func (dec *Decoder) Decode(w Word) (inst Instruction, err error) {
	defer func() {
		if err != nil {
			err = ErrWord{Word: w, Err: err}
		}
	}()

	table, regs := dec.tables()

	key, spec, ok := table.Lookup(w.Opcode())
	if !ok {
		err = ErrOpcodeUnknown
		return
	}

	name := func(reg Register) (s string) {
		s, ok := regs.Name(reg)
		if !ok && err == nil {
			err = ErrRegisterName
		}
		return
	}

	inst.Key = key
	inst.Spec = spec

	switch spec.Format {
	case FORMAT_R:
		rd, rn, rm, pad := w.RDecode()
		if pad != 0 {
			err = ErrPadding
			return
		}
		inst.Operands = [3]string{name(rd), name(rn), name(rm)}
	case FORMAT_I:
		rt, rn, imm := w.IDecode()
		inst.Operands = [3]string{name(rt), name(rn), strconv.Itoa(int(imm))}
	default:
		err = ErrOpcodeUnknown
	}

	return
}
