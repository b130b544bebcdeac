package word

// Copyright (c) 2025 Colin McRae

import (
	"strconv"

	"github.com/pkg/errors"
)

// Parse reads a word in compact form. Letters a..z are generators 0..25
// and upper-case letters their inverses ("aBBaa" is a b^-2 a^2); g<k> is
// generator k ("g0^3 g1^-2"). Any generator may carry ^<exponent>.
// Whitespace is ignored. The result is freely reduced.
func Parse(s string) (Word, error) {
	var retVal Word
	pos := 0
	for pos < len(s) {
		c := s[pos]
		switch {
		case isSpace(c):
			pos++
			continue
		case c == 'g' && pos+1 < len(s) && isDigit(s[pos+1]):
			end := scanDigits(s, pos+1)
			index, err := strconv.Atoi(s[pos+1 : end])
			if err != nil {
				return Word{}, errors.Wrapf(ErrParse, "Parse: generator index at offset %d in %q", pos+1, s)
			}
			term := Term{Generator: index, Exponent: 1}
			pos, err = parseExponent(s, end, &term)
			if err != nil {
				return Word{}, err
			}
			retVal.terms = append(retVal.terms, term)
		case c >= 'a' && c <= 'z':
			term := Term{Generator: int(c - 'a'), Exponent: 1}
			var err error
			pos, err = parseExponent(s, pos+1, &term)
			if err != nil {
				return Word{}, err
			}
			retVal.terms = append(retVal.terms, term)
		case c >= 'A' && c <= 'Z':
			term := Term{Generator: int(c - 'A'), Exponent: -1}
			var err error
			pos, err = parseExponent(s, pos+1, &term)
			if err != nil {
				return Word{}, err
			}
			retVal.terms = append(retVal.terms, term)
		default:
			return Word{}, errors.Wrapf(ErrParse, "Parse: unexpected %q at offset %d in %q", c, pos, s)
		}
	}
	retVal.Simplify(false)
	return retVal, nil
}

// parseExponent reads an optional ^[-]digits at pos, multiplying it into
// term.Exponent, and returns the offset after it
func parseExponent(s string, pos int, term *Term) (int, error) {
	if pos >= len(s) || s[pos] != '^' {
		return pos, nil
	}
	start := pos + 1
	sign := 1
	if start < len(s) && s[start] == '-' {
		sign = -1
		start++
	}
	end := scanDigits(s, start)
	if end == start {
		return 0, errors.Wrapf(ErrParse, "Parse: missing exponent at offset %d in %q", start, s)
	}
	exponent, err := strconv.Atoi(s[start:end])
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "Parse: exponent at offset %d in %q", start, s)
	}
	term.Exponent *= sign * exponent
	return end, nil
}

func scanDigits(s string, pos int) int {
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	return pos
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
