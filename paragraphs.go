package docparse

import "strings"

// Paragraphs is an ordered sequence of paragraph strings. When used as a
// description, the first element is the summary line.
//
// Build values with [GroupParagraphs]; no element is ever empty.
type Paragraphs []string

// GroupParagraphs joins runs of consecutive non-empty lines with a single
// space. Empty lines separate paragraphs and never produce an entry of
// their own, so leading, trailing, or repeated blank lines are dropped.
//
// Lines are expected to be stripped of block indentation already; only the
// exact empty string counts as a separator.
func GroupParagraphs(lines []string) Paragraphs {
	var paragraphs Paragraphs

	start := 0
	for start < len(lines) {
		end := start
		for end < len(lines) && lines[end] != "" {
			end++
		}

		if end > start {
			paragraphs = append(paragraphs, strings.Join(lines[start:end], " "))
		}

		start = end + 1
	}

	return paragraphs
}

// String joins the paragraphs with newlines.
func (p Paragraphs) String() string {
	return strings.Join(p, "\n")
}

// First returns the first paragraph, if any.
func (p Paragraphs) First() (string, bool) {
	if len(p) == 0 {
		return "", false
	}

	return p[0], true
}
