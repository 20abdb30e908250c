package google

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// XrefRegex matches cross-reference markup such as :class:`Foo` or
	// :py:meth:`a.b`. Colons inside a match never split a line.
	xrefRegex = regexp.MustCompile("(:(?:[a-zA-Z0-9]+[-_+:.])*[a-zA-Z0-9]+:`.+?`)")

	// TypedNameRegex matches "name (type)" at the start of a field header.
	typedNameRegex = regexp.MustCompile(`^\s*(.+?)\s*\(\s*(.*[^\s]+)\s*\)`)

	// RoleRegex matches a single role reference such as :exc:`ValueError`.
	roleRegex = regexp.MustCompile("^\\s*:\\w+:`([a-zA-Z0-9_.-]+)`\\s*")
)

// partition splits line on its first single colon outside cross-reference
// markup. before and after are trimmed. If no such colon exists, sep and
// after are empty and before is the whole (trimmed) line.
func partition(line string) (before, sep, after string) {
	spans := xrefRegex.FindAllStringIndex(line, -1)

	start := 0
	for i := 0; i <= len(spans); i++ {
		end := len(line)
		if i < len(spans) {
			end = spans[i][0]
		}

		if idx := singleColon(line[start:end]); idx >= 0 {
			at := start + idx

			return strings.TrimSpace(line[:at]), ":", strings.TrimSpace(line[at+1:])
		}

		if i < len(spans) {
			start = spans[i][1]
		}
	}

	return strings.TrimSpace(line), "", ""
}

// singleColon returns the index of the first colon in s that is neither
// preceded nor followed by another colon, or -1.
func singleColon(s string) int {
	for i := range len(s) {
		if s[i] != ':' {
			continue
		}

		if i > 0 && s[i-1] == ':' {
			continue
		}

		if i+1 < len(s) && s[i+1] == ':' {
			continue
		}

		return i
	}

	return -1
}

// splitNameType splits a field header of the form "name (type)". When the
// header has no parenthesized type, it is returned whole as the name and
// datatype is empty.
func splitNameType(header string) (name, datatype string) {
	m := typedNameRegex.FindStringSubmatch(header)
	if m == nil {
		return header, ""
	}

	return m[1], m[2]
}

// resolveRole returns the target of a role reference (:exc:`ValueError` ->
// ValueError), or s unchanged.
func resolveRole(s string) string {
	m := roleRegex.FindStringSubmatch(s)
	if m == nil {
		return s
	}

	return m[1]
}

// splitIndent returns the number of leading whitespace characters of line
// and the remainder.
func splitIndent(line string) (int, string) {
	content := strings.TrimLeftFunc(line, unicode.IsSpace)

	return utf8.RuneCountInString(line[:len(line)-len(content)]), content
}
