// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/leg16/internal"
	"github.com/ezrec/leg16/isa"
	"github.com/ezrec/leg16/memory"
)

// COMMENT starts a comment line.
const COMMENT = "#"

var reParen = regexp.MustCompile(`\$\([^\$]*\)`)

// Assembler is a single pass assembler for leg16 programs.
type Assembler struct {
	Encoder          // Instruction encoder.
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]int // Predefines
}

// Predefine defines a new expression constant or redefines an existing one.
func (asm *Assembler) Predefine(name string, value int) {
	if asm.predefine == nil {
		asm.predefine = map[string]int{name: value}
	} else {
		asm.predefine[name] = value
	}
}

// defines gathers the constants visible to expressions on a line.
func (asm *Assembler) defines(lineno int) map[string]int {
	return internal.CollectDefines(
		isa.Defines(),
		memory.Defines(),
		maps.All(map[string]int{
			"LINENO":  lineno,
			"ADDRESS": asm.currentAddress(),
		}),
		maps.All(asm.predefine),
	)
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string, defines map[string]int) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, val := range defines {
		pred[key] = starlark.MakeInt(val)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrParseExpression(expr), err)
		return
	}
	st_int, ok := dict["rc"].(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value, ok = st_int.Int64()
	if !ok || value < 0 {
		err = ErrParseExpression(expr)
		return
	}
	return
}

// expand replaces every $(...) in a line with its decimal value.
func (asm *Assembler) expand(line string, lineno int) (out string, err error) {
	if !strings.Contains(line, "$(") {
		out = line
		return
	}

	defines := asm.defines(lineno)
	out = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2:len(str)-1], defines)
		if _err != nil {
			if err == nil {
				err = _err
			}
			return str
		}
		return strconv.FormatInt(value, 10)
	})

	return
}

// currentAddress gets the address of the next instruction.
func (asm *Assembler) currentAddress() int {
	return len(asm.Opcode)
}

// Parse parses an input stream into a Program. Any error aborts the whole
// parse; no partial program is returned.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	asm.Opcode = asm.Opcode[:0]

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		line = strings.TrimSpace(text)
		if len(line) == 0 || strings.HasPrefix(line, COMMENT) {
			continue
		}

		var expanded string
		expanded, err = asm.expand(line, lineno)
		if err != nil {
			return
		}

		var ops Operands
		ops, err = ParseOperands(expanded)
		if err != nil {
			return
		}

		var word isa.Word
		word, err = asm.Encode(ops)
		if err != nil {
			return
		}

		address := asm.currentAddress()
		if address >= memory.WORDS {
			err = ErrProgramTooLarge
			return
		}

		if asm.Verbose {
			log.Printf("%02x: %v\n", address, word)
		}

		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo:  lineno,
			Address: address,
			Words:   append([]string{ops.Mnemonic}, ops.Args...),
			Word:    word,
		})
	}

	err = scanner.Err()
	if err != nil {
		line = ""
		return
	}

	prog = &Program{
		Opcodes: slices.Clone(asm.Opcode),
	}

	return
}

// Assemble parses an input stream into a memory image.
func (asm *Assembler) Assemble(input io.Reader) (img *memory.Image, err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	return prog.Image()
}
