package radix

import (
	"errors"
	"fmt"
)

// ErrInvalidNumber is returned when a literal does not parse under its radix
var ErrInvalidNumber = errors.New("invalid number")

// ParseError describes a literal that failed to parse
type ParseError struct {
	Literal string
	Radix   int
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid number %q (base %d): %s", e.Literal, e.Radix, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidNumber
func (e *ParseError) Unwrap() error {
	return ErrInvalidNumber
}
