// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package isa

// Format is the operand layout of an instruction word.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R = Format(0) // R
	FORMAT_I = Format(1) // I
)
