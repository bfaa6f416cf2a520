// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command leg16asm assembles a leg16 source file into an addressed hex
// listing of the 256 word memory image.
//
//	leg16asm [-v] [-l] [-D NAME=VALUE]... <input_file> <output_file>
package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/leg16/asm"
	"github.com/ezrec/leg16/memory"
	"github.com/ezrec/leg16/translate"
)

// atExit registers a handler run by atexit.Fatalf and atexit.Exit.
var atExit = func(handler func()) {
	atexit.Register(handler)
}

func main() {
	err := run(os.Args[0], os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		atexit.Fatalf("%v", f("Error: %v", err))
	}

	atexit.Exit(0)
}

// run assembles args[0] into args[1]. The output file is only replaced
// once the whole source has assembled.
func run(name string, args []string, stdout, stderr io.Writer) (err error) {
	var verbose bool
	var listing bool
	defines := Defines{}

	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.BoolVar(&verbose, "v", false, "Verbose mode")
	flags.BoolVar(&listing, "l", false, "Print address, word and source of each instruction")
	flags.Var(defines, "D", "Predefine NAME=VALUE for $(...) expressions")

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 2 {
		flags.Usage()
		err = ErrUsage
		return
	}

	input := flags.Arg(0)
	output := flags.Arg(1)

	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	// Also close the input and drop any scratch listing when the process
	// exits through atexit, which skips deferred calls.
	scratch := output + memory.TEMP_SUFFIX
	atExit(func() {
		inf.Close()
		os.Remove(scratch)
	})

	assembler := &asm.Assembler{Verbose: verbose}
	for key, value := range defines {
		assembler.Predefine(key, value)
	}

	prog, err := assembler.Parse(inf)
	if err != nil {
		return
	}

	if listing {
		err = prog.WriteListing(stderr)
		if err != nil {
			return
		}
	}

	img, err := prog.Image()
	if err != nil {
		return
	}

	err = img.Marshal(memory.DirFS(filepath.Dir(output)), filepath.Base(output))
	if err != nil {
		return
	}

	_, err = io.WriteString(stdout, f("Assembly complete. Output written to %v\n", output))
	return
}

var f = translate.From
