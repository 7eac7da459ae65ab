package dollcode

import (
	"strings"
	"unicode"
)

// encodeCodePoint returns the bijective base-3 group for a single code
// point, most significant digit first. The digit alphabet is {1,2,3} with
// no zero digit, so every non-negative integer has exactly one
// representation and every group is non-empty; zero itself has no native
// form and is written as a single Char1.
func encodeCodePoint(n rune, cs CharSet) string {
	if n == 0 {
		return cs.Char1
	}
	var digits [24]byte
	i := len(digits)
	for n > 0 {
		d := n % 3
		if d == 0 {
			d = 3
		}
		i--
		digits[i] = byte(d)
		n = (n - d) / 3
	}
	var b strings.Builder
	for _, d := range digits[i:] {
		switch d {
		case 1:
			b.WriteString(cs.Char1)
		case 2:
			b.WriteString(cs.Char2)
		default:
			b.WriteString(cs.Char3)
		}
	}
	return b.String()
}

// decodeGroup parses one separator-free group back into the code point it
// encodes. Symbols are matched with fixed priority Char3, Char2, Char1 -
// not longest-match - so overlapping alphabets decode deterministically.
// The accumulator is plain positional base 3 over the digit values, which
// is the exact inverse of the bijective encoding. ok is false for an
// empty group, an unmatched position, or a value above the Unicode range
// (an overlong group); the whole group is then discarded.
func decodeGroup(group string, cs CharSet) (n rune, ok bool) {
	if group == "" {
		return 0, false
	}
	for len(group) > 0 {
		switch {
		case strings.HasPrefix(group, cs.Char3):
			n = n*3 + 3
			group = group[len(cs.Char3):]
		case strings.HasPrefix(group, cs.Char2):
			n = n*3 + 2
			group = group[len(cs.Char2):]
		case strings.HasPrefix(group, cs.Char1):
			n = n*3 + 1
			group = group[len(cs.Char1):]
		default:
			return 0, false
		}
		// Digits only grow the accumulator, so once past MaxRune the
		// group can never decode to a valid code point. Bailing here
		// also keeps long hostile groups from overflowing.
		if n > unicode.MaxRune {
			return 0, false
		}
	}
	return n, true
}
