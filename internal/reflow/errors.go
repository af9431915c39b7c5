package reflow

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the source yields no bytes at all.
	// Nothing is written to the sink in that case.
	ErrEmptyInput = errors.New("input contains zero bytes")

	// ErrWordTooLong is matched (via errors.Is) by *WordTooLongError.
	ErrWordTooLong = errors.New("input contains a word longer than the line width")

	// ErrInvalidWidth is returned by New for widths below 1.
	ErrInvalidWidth = errors.New("line width must be a positive integer")
)

// WordTooLongError reports that at least one word could not fit on a line by
// itself. It is returned only after the whole input has been written, so the
// output it accompanies is complete.
type WordTooLongError struct {
	Width   int // configured line width
	Longest int // length in bytes of the longest word seen
	Count   int // number of words longer than Width
}

// Error implements the error interface.
func (e *WordTooLongError) Error() string {
	noun := "word"
	if e.Count != 1 {
		noun = "words"
	}
	return fmt.Sprintf("%s: %d %s over %d bytes (longest is %d)", ErrWordTooLong, e.Count, noun, e.Width, e.Longest)
}

// Is reports whether target is ErrWordTooLong.
func (e *WordTooLongError) Is(target error) bool {
	return target == ErrWordTooLong
}
