package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Name cleans the left-hand side of an assignment.
// Surrounding whitespace is trimmed, a leading "export" keyword is dropped
// when it is followed by blanks and a token, and any quote characters are removed.
// Examples:
//   - "export FOO" → "FOO"
//   - "  'BAR'  " → "BAR"
//   - "export" → "export"
//   - "exportFOO" → "exportFOO"
func Name(raw string) string {
	name := StripExport(strings.TrimSpace(raw))
	return strings.NewReplacer(`'`, "", `"`, "").Replace(name)
}

// StripExport removes a leading "export" keyword and the blanks after it.
// The keyword is only removed when at least one space or tab separates it
// from a non-whitespace token; otherwise the input is returned unchanged.
func StripExport(name string) string {
	rest, ok := strings.CutPrefix(name, "export")
	if !ok {
		return name
	}

	token := strings.TrimLeft(rest, " \t")
	if len(token) == len(rest) || token == "" {
		return name
	}

	if r, _ := utf8.DecodeRuneInString(token); unicode.IsSpace(r) {
		return name
	}
	return token
}

// IsRefByte reports whether b may appear in a ${NAME} reference.
func IsRefByte(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '_', b == '.':
		return true
	default:
		return false
	}
}
