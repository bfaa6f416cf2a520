// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"strings"
)

// Operands is a source line split into its mnemonic and operand tokens.
type Operands struct {
	Mnemonic string
	Args     []string
}

// punctuation is dropped from a line before it is split into tokens.
var punctuation = strings.NewReplacer(",", "", "[", "", "]", "")

// ParseOperands normalizes and tokenizes one source line.
func ParseOperands(line string) (ops Operands, err error) {
	words := strings.Fields(punctuation.Replace(strings.TrimSpace(line)))
	if len(words) == 0 {
		err = ErrMnemonicMissing
		return
	}

	ops.Mnemonic = words[0]
	ops.Args = words[1:]
	return
}

// Immediate is true if the last operand is written entirely in decimal
// digits. A line with no operands tests its mnemonic.
func (ops Operands) Immediate() bool {
	last := ops.Mnemonic
	if len(ops.Args) > 0 {
		last = ops.Args[len(ops.Args)-1]
	}
	return isDigits(last)
}

func isDigits(word string) bool {
	if len(word) == 0 {
		return false
	}
	for _, c := range word {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
