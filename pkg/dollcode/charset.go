// Package dollcode implements a reversible text encoding that represents
// each Unicode code point as a bijective base-3 numeral over three
// configurable digit symbols, with encoded groups joined by a separator
// symbol.
package dollcode

// CharSet holds the four symbols an encoding is built from: three digit
// glyphs for the base-3 digit values 1, 2 and 3, and a separator emitted
// after every encoded code point. A symbol is any non-empty string, not
// necessarily a single code point.
type CharSet struct {
	Char1     string
	Char2     string
	Char3     string
	Separator string
}

// Default is the canonical dollcode character set: the block glyphs
// ▖ (U+2596), ▘ (U+2598) and ▌ (U+258C), joined by a zero-width joiner
// (U+200D). It is a plain value; callers may copy and share it freely.
var Default = CharSet{
	Char1:     "▖",
	Char2:     "▘",
	Char3:     "▌",
	Separator: "‍",
}

// Valid reports whether the set is usable: all four symbols non-empty
// and pairwise distinct. Encode and Decode do not call Valid themselves;
// an invalid set yields ambiguous output, so callers configuring custom
// symbols should check it before use. A symbol being a prefix of another
// is not rejected here - Decode resolves such overlaps by fixed match
// priority (Char3, then Char2, then Char1).
func (c CharSet) Valid() bool {
	symbols := [4]string{c.Char1, c.Char2, c.Char3, c.Separator}
	for i, s := range symbols {
		if s == "" {
			return false
		}
		for _, prev := range symbols[:i] {
			if s == prev {
				return false
			}
		}
	}
	return true
}
