// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Command leg16dis prints the instructions held in an addressed hex
// listing written by leg16asm. Zero words are skipped.
//
//	leg16dis <listing_file>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tebeka/atexit"

	"github.com/ezrec/leg16/isa"
	"github.com/ezrec/leg16/memory"
	"github.com/ezrec/leg16/translate"
)

var f = translate.From

var ErrUsage = errors.New(f("usage: leg16dis <listing_file>"))

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

func run(name string, args []string, stdout, stderr io.Writer) (err error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(stderr)

	err = flags.Parse(args)
	if err != nil {
		return
	}

	if flags.NArg() != 1 {
		flags.Usage()
		err = ErrUsage
		return
	}

	inf, err := os.Open(flags.Arg(0))
	if err != nil {
		return
	}
	defer inf.Close()
	atExit(func() { inf.Close() })

	img := &memory.Image{}
	err = img.Unmarshal(inf)
	if err != nil {
		return
	}

	dec := &isa.Decoder{}
	for address, w := range img.Words {
		if w == 0 {
			continue
		}

		var text string
		inst, derr := dec.Decode(w)
		if derr != nil {
			text = f("; %v", derr)
		} else {
			text = inst.String()
		}

		_, err = fmt.Fprintf(stdout, "%02x: %v  %v\n", address, w, text)
		if err != nil {
			return
		}
	}

	return
}
