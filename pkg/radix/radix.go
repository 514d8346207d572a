/*
Package radix converts arbitrary-precision unsigned integers between their
decimal, hexadecimal and binary text forms.

A literal may carry a "0x" (hexadecimal) or "0b" (binary) prefix; anything
else is read as decimal:

	n, err := radix.Parse("0xff")
	if err != nil {
		return err
	}
	fmt.Println(radix.Format(n, radix.Bin)) // 11111111
*/
package radix

import (
	"fmt"
	"math/big"
	"strings"
)

// Base selects the rendering of a Number
type Base int

const (
	// Dec renders base-10 digits
	Dec Base = iota
	// Hex renders upper-case base-16 digits without prefix
	Hex
	// Bin renders base-2 digits without prefix
	Bin
)

// Radix returns the numeric base
func (b Base) Radix() int {
	switch b {
	case Hex:
		return 16
	case Bin:
		return 2
	default:
		return 10
	}
}

func (b Base) String() string {
	switch b {
	case Hex:
		return "hex"
	case Bin:
		return "bin"
	default:
		return "dec"
	}
}

// ParseBase maps a command name (hex, bin, dec) to its Base
func ParseBase(name string) (Base, error) {
	switch strings.ToLower(name) {
	case "hex":
		return Hex, nil
	case "bin":
		return Bin, nil
	case "dec":
		return Dec, nil
	default:
		return Dec, fmt.Errorf("unknown base %q: must be one of [hex bin dec]", name)
	}
}

// Number is an immutable non-negative integer of unbounded magnitude.
// The zero value is 0
type Number struct {
	v *big.Int
}

// NewNumber returns the Number for a uint64
func NewNumber(x uint64) Number {
	return Number{v: new(big.Int).SetUint64(x)}
}

// FromBig returns a Number holding a copy of x. x must be non-negative
func FromBig(x *big.Int) (Number, error) {
	if x.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: negative value %s", ErrInvalidNumber, x.String())
	}
	return Number{v: new(big.Int).Set(x)}, nil
}

// Big returns a copy of the value as a *big.Int
func (n Number) Big() *big.Int {
	if n.v == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n.v)
}

// Equal reports whether n and m hold the same value
func (n Number) Equal(m Number) bool {
	return n.Big().Cmp(m.Big()) == 0
}

func (n Number) String() string {
	return Format(n, Dec)
}

// Parse reads a literal with an optional 0x or 0b prefix
func Parse(literal string) (Number, error) {
	body, r := literal, 10
	switch {
	case strings.HasPrefix(literal, "0x"):
		body, r = literal[2:], 16
	case strings.HasPrefix(literal, "0b"):
		body, r = literal[2:], 2
	}

	if body == "" {
		return Number{}, &ParseError{Literal: literal, Radix: r, Reason: "no digits"}
	}

	// big.Int.SetString also accepts signs, so digits are checked first.
	for i, c := range body {
		if digitValue(c) >= r {
			return Number{}, &ParseError{
				Literal: literal,
				Radix:   r,
				Reason:  fmt.Sprintf("unexpected %q at offset %d", c, i+len(literal)-len(body)),
			}
		}
	}

	v, ok := new(big.Int).SetString(body, r)
	if !ok {
		return Number{}, &ParseError{Literal: literal, Radix: r, Reason: "malformed digits"}
	}
	return Number{v: v}, nil
}

// Format renders n in base b. Zero renders as "0"
func Format(n Number, b Base) string {
	s := n.Big().Text(b.Radix())
	if b == Hex {
		return strings.ToUpper(s)
	}
	return s
}

// Convert parses literal and renders it in base b
func Convert(literal string, b Base) (string, error) {
	n, err := Parse(literal)
	if err != nil {
		return "", err
	}
	return Format(n, b), nil
}

// digitValue returns the value of an ASCII digit, or 99 for anything else
func digitValue(c rune) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}
