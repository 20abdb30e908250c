package google

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"go.jacobcolvin.com/docparse"
)

// descriptionSection names the implicit section holding text before the
// first header.
const descriptionSection = "Description"

var (
	// SectionHeaderRegex matches a header candidate such as "Args:". The
	// captured name must still resolve to a known section.
	sectionHeaderRegex = regexp.MustCompile(`^(\w[\w ]+):$`)

	// DirectiveHeaderRegex matches ".. name:" with optional inline content.
	directiveHeaderRegex = regexp.MustCompile(`^\.\. ([\w ]+):(?:\s+(.*))?$`)
)

// Parser parses Google-style docstrings.
//
// A Parser holds only its section table, which is built by [New] and never
// modified, so a single Parser is safe for concurrent use.
type Parser struct {
	table *sectionTable
}

// New creates a [Parser] with the standard Google section table.
func New() *Parser {
	return &Parser{table: newSectionTable()}
}

var defaultParser = New()

// Parse parses text with the default [Parser].
func Parse(text string, directives bool) (*docparse.Document, error) {
	return defaultParser.Parse(text, directives)
}

// Register adds the Google dialect to r under [docparse.StyleGoogle].
func Register(r docparse.Registry) {
	r.Add(docparse.StyleGoogle, defaultParser.Parse)
}

// Sections returns the canonical names of all recognized sections, sorted.
func (p *Parser) Sections() []string {
	names := make([]string, 0, len(p.table.parsers))
	for name := range p.table.parsers {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// block is the run of lines collected under one header.
type block struct {
	name      string
	lines     []string
	directive bool
}

// Parse converts text into a [docparse.Document] in a single top-to-bottom
// pass. Text is expected to be normalized already (see [docparse.Clean]).
// When directives is false, ".. name:" lines are kept as content.
//
// Parse fails only when a field-list section is malformed, returning an
// error wrapping [docparse.ErrUnexpectedLine].
func (p *Parser) Parse(text string, directives bool) (*docparse.Document, error) {
	doc := docparse.NewDocument()

	cur := block{name: descriptionSection}

	for _, line := range splitLines(text) {
		if name, ok := p.sectionHeader(line); ok {
			err := p.add(doc, cur)
			if err != nil {
				return nil, err
			}

			cur = block{name: name}

			continue
		}

		if directives {
			if m := directiveHeaderRegex.FindStringSubmatch(line); m != nil {
				err := p.add(doc, cur)
				if err != nil {
					return nil, err
				}

				cur = block{name: m[1], directive: true}
				if m[2] != "" {
					cur.lines = append(cur.lines, m[2])
				}

				continue
			}
		}

		cur.lines = append(cur.lines, line)
	}

	if len(cur.lines) > 0 {
		err := p.add(doc, cur)
		if err != nil {
			return nil, err
		}
	}

	return doc, nil
}

// sectionHeader reports whether line is the header of a known section, and
// returns the section's canonical name.
func (p *Parser) sectionHeader(line string) (string, bool) {
	m := sectionHeaderRegex.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}

	name, ok := p.table.resolve(m[1])
	if !ok {
		slog.Debug("header-like line is not a known section",
			slog.String("line", line),
		)
	}

	return name, ok
}

// add parses b and stores the result in doc.
func (p *Parser) add(doc *docparse.Document, b block) error {
	if b.directive {
		doc.AddDirective(b.name, docparse.GroupParagraphs(trimLines(b.lines)))

		return nil
	}

	section, err := p.table.parser(b.name)(b.lines)
	if err != nil {
		return fmt.Errorf("section %q: %w", b.name, err)
	}

	doc.AddSection(docparse.CanonicalKey(b.name), section)

	return nil
}

// splitLines splits text at "\n", "\r\n", or "\r". A trailing line break
// does not produce an empty final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
