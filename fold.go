package minigrep

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// foldCase lowers every rune of s with unicode.ToLower.
// Unlike strings.ToLower, bytes that are not valid UTF-8 are kept as is
// instead of being replaced with utf8.RuneError.
func foldCase(s string) string {
	if utf8.ValidString(s) {
		return strings.ToLower(s)
	}

	var buf strings.Builder
	buf.Grow(len(s))
	for s != "" {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size == 1 {
			buf.WriteByte(s[0])
		} else {
			buf.WriteRune(unicode.ToLower(r))
		}
		s = s[size:]
	}
	return buf.String()
}
