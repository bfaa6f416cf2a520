// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package memory holds the fixed 256 word memory image of an assembled
// leg16 program, and reads and writes its addressed hex listing.
package memory

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"maps"
	"strings"

	"github.com/ezrec/leg16/isa"
)

const (
	WORDS     = 256                        // Words in a memory image.
	ROW_WORDS = 16                         // Words per listing row.
	ROWS      = WORDS / ROW_WORDS          // Rows in a listing.
	HEADER    = "v3.0 hex words addressed" // First line of a listing.
)

// Defines returns an iterator over the memory layout constants visible to
// compile-time expressions.
func Defines() iter.Seq2[string, int] {
	return maps.All(map[string]int{
		"WORDS":     WORDS,
		"ROW_WORDS": ROW_WORDS,
	})
}

// Image is a memory image. Unwritten words are zero.
type Image struct {
	Words [WORDS]isa.Word
	next  int
}

// Len returns the number of words stored so far.
func (img *Image) Len() int {
	return img.next
}

// Store writes a word at the next free address.
func (img *Image) Store(w isa.Word) (address int, err error) {
	if img.next >= WORDS {
		err = ErrFull
		return
	}

	address = img.next
	img.Words[address] = w
	img.next++

	return
}

// Rows returns an iterator over the listing rows, by start address.
func (img *Image) Rows() iter.Seq2[int, []isa.Word] {
	return func(yield func(address int, words []isa.Word) bool) {
		for address := 0; address < WORDS; address += ROW_WORDS {
			if !yield(address, img.Words[address:address+ROW_WORDS]) {
				return
			}
		}
	}
}

// MarshalText renders the addressed hex listing.
func (img *Image) MarshalText() (text []byte, err error) {
	var sb strings.Builder

	sb.WriteString(HEADER)
	sb.WriteByte('\n')

	for address, words := range img.Rows() {
		fmt.Fprintf(&sb, "%02x:", address)
		for _, w := range words {
			sb.WriteByte(' ')
			sb.WriteString(w.String())
		}
		sb.WriteByte('\n')
	}

	text = []byte(sb.String())
	return
}

// WriteTo writes the addressed hex listing to w.
func (img *Image) WriteTo(w io.Writer) (n int64, err error) {
	text, err := img.MarshalText()
	if err != nil {
		return
	}

	written, err := w.Write(text)
	n = int64(written)
	return
}

// Unmarshal reads an addressed hex listing, replacing the image contents.
// The store position is left after the last non-zero word.
func (img *Image) Unmarshal(r io.Reader) (err error) {
	var words [WORDS]isa.Word

	scanner := bufio.NewScanner(r)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrListing{LineNo: lineno, Line: line, Err: err}
		}
	}()

	row := 0
	for scanner.Scan() {
		line = scanner.Text()
		lineno++

		if lineno == 1 {
			if strings.TrimSpace(line) != HEADER {
				err = ErrListingHeader
				return
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if row >= ROWS {
			err = ErrListingExtra
			return
		}

		address := row * ROW_WORDS
		if fields[0] != fmt.Sprintf("%02x:", address) {
			err = ErrListingAddress
			return
		}
		if len(fields) != 1+ROW_WORDS {
			err = ErrListingRow
			return
		}

		for n, field := range fields[1:] {
			words[address+n], err = isa.ParseWord(field)
			if err != nil {
				return
			}
		}
		row++
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if lineno == 0 {
		err = ErrListingHeader
		return
	}

	if row != ROWS {
		line = ""
		err = ErrListingShort
		return
	}

	img.Words = words
	img.next = 0
	for n, w := range words {
		if w != 0 {
			img.next = n + 1
		}
	}

	return
}
