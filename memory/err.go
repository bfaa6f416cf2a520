package memory

import (
	"errors"

	"github.com/ezrec/leg16/translate"
)

var f = translate.From

var (
	// Image errors
	ErrFull = errors.New(f("program exceeds memory size (%d words)", WORDS))

	// Listing errors
	ErrListingHeader  = errors.New(f("listing header missing"))
	ErrListingAddress = errors.New(f("listing row address out of sequence"))
	ErrListingRow     = errors.New(f("listing row must have %d words", ROW_WORDS))
	ErrListingShort   = errors.New(f("listing must have %d rows", ROWS))
	ErrListingExtra   = errors.New(f("listing has extra rows"))
)

// ErrListing locates an error in a listing.
type ErrListing struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrListing) Error() string {
	return f("listing line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrListing) Unwrap() error {
	return err.Err
}
