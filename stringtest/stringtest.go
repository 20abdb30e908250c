// Package stringtest provides helpers for building multi-line test
// fixtures.
package stringtest

import "strings"

// Input dedents a raw string literal so fixtures can be indented with the
// surrounding test code. One leading newline and one trailing
// whitespace-only line are removed, then the indentation shared by all
// non-blank lines is stripped. Whitespace-only lines become empty.
//
// Example:
//
//	text := stringtest.Input(`
//		Summary.
//
//		Args:
//		    x: value.
//	`) // -> "Summary.\n\nArgs:\n    x: value."
func Input(s string) string {
	lines := strings.Split(s, "\n")

	if lines[0] == "" {
		lines = lines[1:]
	}

	if n := len(lines); n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		lines = lines[:n-1]
	}

	margin := -1

	for _, line := range lines {
		content := strings.TrimLeft(line, " \t")
		if content == "" {
			continue
		}

		if indent := len(line) - len(content); margin < 0 || indent < margin {
			margin = indent
		}
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""

			continue
		}

		lines[i] = line[max(margin, 0):]
	}

	return strings.Join(lines, "\n")
}

// JoinLF joins multiple strings with LF line endings.
// Use this to construct expected test output with explicit line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"line1",
//		"line2",
//		"line3",
//	) // -> "line1\nline2\nline3"
func JoinLF(ss ...string) string {
	return strings.Join(ss, "\n")
}
