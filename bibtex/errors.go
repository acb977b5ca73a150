package bibtex

import (
	"errors"
	"fmt"
)

// Sentinel errors for page parsing.
var (
	// ErrEmptyPages indicates the input holds no page reference at all.
	ErrEmptyPages = errors.New("empty page reference")

	// ErrMalformedStart indicates a segment does not start with a page number.
	ErrMalformedStart = errors.New("segment must start with a page number")

	// ErrMalformedSegment indicates a segment holds more than one range separator.
	ErrMalformedSegment = errors.New("segment has more than one range separator")
)

// PageError wraps a page parsing failure with the offending input.
type PageError struct {
	Input   string // Raw value passed to ParsePage
	Segment string // Segment that failed, empty when the whole input is at fault
	Index   int    // Zero-based segment index, -1 when not applicable
	Err     error  // Underlying sentinel error
}

// Error implements the error interface.
func (e *PageError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("parse pages %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parse pages %q: segment %d (%q): %v", e.Input, e.Index, e.Segment, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *PageError) Unwrap() error {
	return e.Err
}

func newPageError(input, segment string, index int, err error) *PageError {
	return &PageError{
		Input:   input,
		Segment: segment,
		Index:   index,
		Err:     err,
	}
}
