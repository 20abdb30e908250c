package docparse

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const tabSize = 8

// Clean normalizes raw annotation text before parsing. Line breaks ("\r\n",
// "\r") become "\n", tabs are expanded, leading whitespace is removed from
// the first line, the common indentation of the remaining lines is removed,
// and leading and trailing blank lines are dropped. Whitespace-only lines do
// not count towards the common indentation.
//
// This matches the conventional treatment of docstrings whose first line
// sits next to the opening quotes while the rest is indented with the code:
//
//	Clean("Summary.\n\n    Args:\n        x: value.\n    ")
//	// -> "Summary.\n\nArgs:\n    x: value."
func Clean(text string) string {
	lines := strings.Split(expandTabs(normalizeNewlines(text)), "\n")

	margin := -1

	for _, line := range lines[1:] {
		content := strings.TrimLeftFunc(line, unicode.IsSpace)
		if content == "" {
			continue
		}

		indent := utf8.RuneCountInString(line[:len(line)-len(content)])
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	lines[0] = strings.TrimLeftFunc(lines[0], unicode.IsSpace)

	if margin > 0 {
		for i := 1; i < len(lines); i++ {
			lines[i] = trimIndent(lines[i], margin)
		}
	}

	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	return strings.Join(lines, "\n")
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")

	return strings.ReplaceAll(s, "\r", "\n")
}

// trimIndent removes up to n leading whitespace runes from line.
func trimIndent(line string, n int) string {
	for i, r := range line {
		if n == 0 || !unicode.IsSpace(r) {
			return line[i:]
		}

		n--
	}

	return ""
}

// expandTabs replaces tabs with spaces using tab stops every [tabSize]
// columns. The column resets at each newline.
func expandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder

	col := 0

	for _, r := range s {
		switch r {
		case '\t':
			n := tabSize - col%tabSize
			sb.WriteString(strings.Repeat(" ", n))

			col += n
		case '\n':
			sb.WriteRune(r)

			col = 0
		default:
			sb.WriteRune(r)

			col++
		}
	}

	return sb.String()
}
