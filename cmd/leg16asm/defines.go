package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrUsage        = errors.New(f("usage: leg16asm [-v] [-l] [-D NAME=VALUE]... <input_file> <output_file>"))
	ErrDefineSyntax = errors.New(f("define must be NAME=VALUE"))
)

// Defines collects repeated -D NAME=VALUE flags.
type Defines map[string]int

func (defs Defines) String() string {
	var out []string
	for key, value := range defs {
		out = append(out, fmt.Sprintf("%v=%v", key, value))
	}
	return strings.Join(out, ",")
}

func (defs Defines) Set(text string) (err error) {
	key, value, ok := strings.Cut(text, "=")
	if !ok || len(key) == 0 {
		err = ErrDefineSyntax
		return
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrDefineSyntax, err)
		return
	}

	defs[key] = v
	return
}
