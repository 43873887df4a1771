package dotenv

import (
	"strings"

	"github.com/Azhovan/dotenv/internal/normalize"
)

// Expand replaces every ${NAME} reference in value with the current value of
// NAME in the namespace, where NAME is made of letters, digits, '_' and '.'.
// References that do not resolve are left as they are. Substituted text is
// not expanded again.
func (ns *Namespace) Expand(value string) string {
	if !strings.Contains(value, "${") {
		return value
	}

	var b strings.Builder
	b.Grow(len(value))

	for i := 0; i < len(value); {
		name, end, ok := reference(value, i)
		if !ok {
			b.WriteByte(value[i])
			i++
			continue
		}

		if resolved, found := ns.Get(name); found {
			b.WriteString(resolved)
		} else {
			b.WriteString(value[i:end])
		}
		i = end
	}

	return b.String()
}

// reference matches ${NAME} at s[i:], returning NAME and the index just past "}".
func reference(s string, i int) (name string, end int, ok bool) {
	if !strings.HasPrefix(s[i:], "${") {
		return "", 0, false
	}

	start := i + 2
	j := start
	for j < len(s) && normalize.IsRefByte(s[j]) {
		j++
	}
	if j == start || j >= len(s) || s[j] != '}' {
		return "", 0, false
	}
	return s[start:j], j + 1, true
}
