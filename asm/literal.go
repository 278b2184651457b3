package asm

import (
	"fmt"
	"regexp"
	"strconv"
)

// Base is the radix of a numeric literal.
type Base int

const (
	BASE_DECIMAL = Base(10)
	BASE_HEX     = Base(16)
	BASE_BINARY  = Base(2)
)

// Literal forms, tried in order. A hex literal must start with a digit.
var (
	reDecimal = regexp.MustCompile(`^([0-9]+)$`)
	reHex     = regexp.MustCompile(`(?i)^([0-9][0-9a-z]*)h$`)
	reBinary  = regexp.MustCompile(`(?i)^([0-9]+)[by]$`)
)

// parseLiteral parses a decimal, hex or binary literal.
// ok is false when word does not have the shape of a literal at all; err is
// set when it has the shape but the digits do not fit the base.
func parseLiteral(word string) (value uint, ok bool, err error) {
	var digits string
	var base Base

	if match := reDecimal.FindStringSubmatch(word); match != nil {
		digits, base = match[1], BASE_DECIMAL
	} else if match := reHex.FindStringSubmatch(word); match != nil {
		digits, base = match[1], BASE_HEX
	} else if match := reBinary.FindStringSubmatch(word); match != nil {
		digits, base = match[1], BASE_BINARY
	} else {
		return
	}

	ok = true

	v64, perr := strconv.ParseUint(digits, int(base), 32)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint(v64)
	return
}

// FormatLiteral renders value as a literal in the given base, using the
// suffix conventions accepted by the operand classifier.
func FormatLiteral(value uint, base Base) string {
	switch base {
	case BASE_HEX:
		text := fmt.Sprintf("%X", value)
		if text[0] > '9' {
			text = "0" + text
		}
		return text + "h"
	case BASE_BINARY:
		return fmt.Sprintf("%bb", value)
	default:
		return strconv.FormatUint(uint64(value), 10)
	}
}
