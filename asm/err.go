package asm

import (
	"errors"

	"github.com/ezrec/leg16/memory"
	"github.com/ezrec/leg16/translate"
)

var f = translate.From

var (
	// Encoder errors
	ErrMnemonicMissing     = errors.New(f("mnemonic missing"))
	ErrInstructionUnknown  = errors.New(f("unknown instruction"))
	ErrOperandsMalformed   = errors.New(f("malformed operands"))
	ErrRegisterInvalid     = errors.New(f("invalid register"))
	ErrImmediateNotNumeric = errors.New(f("immediate value must be a number"))
	ErrImmediateRange      = errors.New(f("immediate value out of range"))
	ErrFormatUnsupported   = errors.New(f("unsupported instruction format"))

	// Assembler errors
	ErrProgramTooLarge = memory.ErrFull
)

// ErrToken names the source token an encoder error is about.
type ErrToken struct {
	Token string
	Err   error
}

func (err ErrToken) Error() string {
	return f("%v: %v", err.Err, err.Token)
}

func (err ErrToken) Unwrap() error {
	return err.Err
}

// ErrOperandCount is a malformed operand list.
type ErrOperandCount struct {
	Key  string
	Want int
	Got  int
}

func (err ErrOperandCount) Error() string {
	return f("%v needs %d operands, got %d", err.Key, err.Want, err.Got)
}

func (err ErrOperandCount) Is(target error) bool {
	return target == ErrOperandsMalformed
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrSyntax locates an error in the assembler source.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
