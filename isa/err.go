package isa

import (
	"errors"

	"github.com/ezrec/leg16/translate"
)

var f = translate.From

var (
	// Decode errors
	ErrOpcodeUnknown = errors.New(f("opcode unknown"))
	ErrPadding       = errors.New(f("padding bits set"))
	ErrRegisterName  = errors.New(f("register has no name"))
)

// ErrWord locates a decode error.
type ErrWord struct {
	Word Word
	Err  error
}

func (err ErrWord) Error() string {
	return f("word %v %v", err.Word.String(), err.Err)
}

func (err ErrWord) Unwrap() error {
	return err.Err
}

type ErrWordText string

func (err ErrWordText) Error() string {
	return f("'%v' is not a 4 digit hex word", string(err))
}
