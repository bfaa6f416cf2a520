// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

import (
	"fmt"
	"strconv"
)

// Word is one 16-bit instruction word.
type Word uint16

const (
	opcodeShift = 9
	rmShift     = 7
	padShift    = 4
	immShift    = 4
	rnShift     = 2
	rdShift     = 0

	opcodeMask   = (1 << OPCODE_BITS) - 1
	registerMask = (1 << REGISTER_BITS) - 1
	padMask      = 0x7
	immMask      = IMMEDIATE_MAX
)

// WORD_HEX_DIGITS is the width of a word's hexadecimal form.
const WORD_HEX_DIGITS = 4

// MakeWordR packs a register format instruction.
func MakeWordR(opcode uint8, rd, rn, rm Register) Word {
	return Word((uint16(opcode&opcodeMask) << opcodeShift) |
		(uint16(rm&registerMask) << rmShift) |
		(uint16(rn&registerMask) << rnShift) |
		(uint16(rd&registerMask) << rdShift))
}

// MakeWordI packs an immediate format instruction. Immediate bits above
// IMMEDIATE_BITS are discarded; range checking is the caller's job.
func MakeWordI(opcode uint8, rt, rn Register, imm uint8) Word {
	return Word((uint16(opcode&opcodeMask) << opcodeShift) |
		(uint16(imm&immMask) << immShift) |
		(uint16(rn&registerMask) << rnShift) |
		(uint16(rt&registerMask) << rdShift))
}

// Opcode returns the 7-bit opcode field.
func (w Word) Opcode() uint8 {
	return uint8((uint16(w) >> opcodeShift) & opcodeMask)
}

// RDecode unpacks the register format fields.
func (w Word) RDecode() (rd, rn, rm Register, pad uint8) {
	word := uint16(w)
	rd = Register((word >> rdShift) & registerMask)
	rn = Register((word >> rnShift) & registerMask)
	rm = Register((word >> rmShift) & registerMask)
	pad = uint8((word >> padShift) & padMask)
	return
}

// IDecode unpacks the immediate format fields.
func (w Word) IDecode() (rt, rn Register, imm uint8) {
	word := uint16(w)
	rt = Register((word >> rdShift) & registerMask)
	rn = Register((word >> rnShift) & registerMask)
	imm = uint8((word >> immShift) & immMask)
	return
}

// String returns the 4-digit lowercase hexadecimal form of the word.
func (w Word) String() string {
	return fmt.Sprintf("%04x", uint16(w))
}

// ParseWord parses the 4-digit hexadecimal form of a word.
func ParseWord(s string) (w Word, err error) {
	if len(s) != WORD_HEX_DIGITS {
		err = ErrWordText(s)
		return
	}

	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		err = ErrWordText(s)
		return
	}

	w = Word(v)
	return
}
