package dollcode

import (
	"strings"
	"unicode/utf8"
)

// DecodeResult is the outcome of one Decode call. Decode never fails
// outright: each group that does not parse contributes one U+FFFD
// replacement character to Text and is tallied in ErrorCount.
type DecodeResult struct {
	Text       string `json:"text"`
	HasErrors  bool   `json:"hasErrors"`
	ErrorCount int    `json:"errorCount"`
}

// Encode returns the dollcode encoding of text: one base-3 group per code
// point, each followed by one separator, trailing separator included.
// The empty string encodes to "". Iteration is by code point, so
// supplementary-plane characters encode as a single group each.
func Encode(text string, cs CharSet) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range text {
		b.WriteString(encodeCodePoint(r, cs))
		b.WriteString(cs.Separator)
	}
	return b.String()
}

// Decode parses dollcode back into the text it encodes. The input is
// split on every separator occurrence and empty fragments are dropped,
// which absorbs the trailing separator as well as accidental repeats.
// Groups decode independently: a malformed or out-of-range group becomes
// one replacement character and bumps ErrorCount, and decoding carries on
// with the next group. Decoding "" yields the zero DecodeResult.
func Decode(dollcode string, cs CharSet) DecodeResult {
	var res DecodeResult
	if dollcode == "" {
		return res
	}
	var b strings.Builder
	for _, group := range strings.Split(dollcode, cs.Separator) {
		if group == "" {
			continue
		}
		n, ok := decodeGroup(group, cs)
		if !ok {
			b.WriteRune(utf8.RuneError)
			res.ErrorCount++
			continue
		}
		b.WriteRune(n)
	}
	res.Text = b.String()
	res.HasErrors = res.ErrorCount > 0
	return res
}
