package asm

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ezrec/leg16/isa"
	"github.com/ezrec/leg16/memory"
)

// Opcode represents a line of assembled code with its source location and generated word.
type Opcode struct {
	LineNo  int
	Address int
	Words   []string
	Word    isa.Word
}

type Program struct {
	Opcodes []Opcode
}

// Debug finds the opcode at an address, or nil if none is there.
func (prog *Program) Debug(address int) *Opcode {
	for n, op := range prog.Opcodes {
		if op.Address == address {
			return &prog.Opcodes[n]
		}
	}

	return nil
}

func (prog *Program) Codes() iter.Seq2[int, isa.Word] {
	return func(yield func(address int, word isa.Word) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Address, op.Word) {
				return
			}
		}
	}
}

// Image stores the program words into a fresh memory image.
func (prog *Program) Image() (img *memory.Image, err error) {
	img = &memory.Image{}
	for _, word := range prog.Codes() {
		_, err = img.Store(word)
		if err != nil {
			img = nil
			return
		}
	}

	return
}

// WriteListing writes one line per word: address, word, then the source
// line number and tokens it came from.
func (prog *Program) WriteListing(w io.Writer) (err error) {
	for address, word := range prog.Codes() {
		op := prog.Debug(address)
		if op == nil {
			_, err = fmt.Fprintf(w, "%02x: %v\n", address, word)
		} else {
			_, err = fmt.Fprintf(w, "%02x: %v  %d: %v\n", address, word, op.LineNo, strings.Join(op.Words, " "))
		}
		if err != nil {
			return
		}
	}

	return
}
