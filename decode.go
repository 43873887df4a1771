package dotenv

import (
	"errors"
	"strings"
	"unicode"

	"github.com/Azhovan/dotenv/internal/normalize"
)

// errUnquotedSpace is wrapped into a *MalformedValueError by the loader,
// which knows the file and line.
var errUnquotedSpace = errors.New("unquoted value contains whitespace")

// splitLine extracts the raw name and value of an assignment line.
// ok is false for full-line comments and lines without "=".
func splitLine(line string) (name, value string, ok bool) {
	if strings.HasPrefix(strings.TrimSpace(line), "#") {
		return "", "", false
	}

	name, value, ok = strings.Cut(line, "=")
	if !ok {
		return "", "", false
	}
	return normalize.Name(name), strings.TrimSpace(value), true
}

// decodeValue removes quoting from a trimmed raw value.
//
// Quoted values run to the next unescaped matching quote; \\ and an escaped
// matching quote are unescaped and anything after the closing quote is
// dropped. A value whose quote is never closed decodes to "".
// Unquoted values lose a trailing " #" comment and must not contain whitespace.
func decodeValue(raw string) (string, error) {
	if raw == "" {
		return "", nil
	}

	if q := raw[0]; q == '"' || q == '\'' {
		return unquote(raw[1:], q), nil
	}

	if i := strings.Index(raw, " #"); i >= 0 {
		raw = raw[:i]
	}
	value := strings.TrimSpace(raw)

	if strings.IndexFunc(value, unicode.IsSpace) >= 0 {
		return "", errUnquotedSpace
	}
	return value, nil
}

// unquote scans s, the text following an opening quote q.
func unquote(s string, q byte) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '\\' && i+1 < len(s) && (s[i+1] == '\\' || s[i+1] == q):
			i++
			b.WriteByte(s[i])
		case c == q:
			return b.String()
		default:
			b.WriteByte(c)
		}
	}

	// no closing quote
	return ""
}
