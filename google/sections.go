package google

import (
	"fmt"
	"strings"
	"unicode"

	"go.jacobcolvin.com/docparse"
)

// sectionParser converts the lines of one section into its value.
type sectionParser func(lines []string) (docparse.Section, error)

// fieldOptions controls how field headers are read.
type fieldOptions struct {
	// ParseType extracts "(type)" from "name (type)" headers.
	parseType bool
	// PreferType uses the header as the type when no inline type was found.
	preferType bool
}

func fieldsParser(opts fieldOptions) sectionParser {
	return func(lines []string) (docparse.Section, error) {
		fields, err := parseFields(lines, opts)
		if err != nil {
			return docparse.Section{}, err
		}

		fs := docparse.NewFields()
		for _, f := range fields {
			fs.Set(f)
		}

		return docparse.FieldsSection(fs), nil
	}
}

// parseFields reads an indentation-delimited field list. A non-empty line
// indented no deeper than the current field's header starts a new field;
// deeper lines continue the current field. Before the first field, the
// reference indentation is the shallowest non-empty line of the block.
func parseFields(lines []string, opts fieldOptions) ([]*docparse.Field, error) {
	type pending struct {
		name     string
		datatype string
		desc     []string
	}

	var fields []*pending

	curIndent := fieldIndent(lines)

	for _, line := range lines {
		indent, content := splitIndent(line)

		switch {
		case content != "" && indent <= curIndent:
			curIndent = indent

			before, _, after := partition(content)

			var name, datatype string
			if opts.parseType {
				name, datatype = splitNameType(before)
			} else {
				name = before
			}

			if opts.preferType && datatype == "" {
				name, datatype = datatype, name
			}

			fields = append(fields, &pending{
				name:     docparse.EscapeSplat(name),
				datatype: datatype,
				desc:     []string{after},
			})

		case len(fields) > 0:
			fields[len(fields)-1].desc = append(fields[len(fields)-1].desc, content)

		case content != "":
			return nil, fmt.Errorf("%w: %q", docparse.ErrUnexpectedLine, line)
		}
	}

	out := make([]*docparse.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, &docparse.Field{
			Name:        f.name,
			Datatype:    f.datatype,
			Description: docparse.GroupParagraphs(f.desc),
		})
	}

	return out, nil
}

// parseRaises reads a field list whose headers are exception types. Each
// entry is keyed by its type, with role markup resolved to the bare name.
func parseRaises(lines []string) (docparse.Section, error) {
	fields, err := parseFields(lines, fieldOptions{preferType: true})
	if err != nil {
		return docparse.Section{}, err
	}

	fs := docparse.NewFields()
	for _, f := range fields {
		f.Datatype = resolveRole(f.Datatype)

		key := f.Name
		if key == "" {
			key = f.Datatype
		}

		fs.Put(key, f)
	}

	return docparse.FieldsSection(fs), nil
}

// parseTyped reads a single-value section. If the first line has a colon,
// the text before it is the type.
func parseTyped(lines []string) (docparse.Section, error) {
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}

	t := &docparse.Typed{}
	if len(lines) == 0 {
		return docparse.TypedSection(t), nil
	}

	var desc []string

	before, sep, after := partition(lines[0])
	if sep != "" {
		t.Datatype = before
		if after != "" {
			desc = append(desc, after)
		}

		desc = append(desc, trimLines(lines[1:])...)
	} else {
		desc = trimLines(lines)
	}

	t.Description = docparse.GroupParagraphs(desc)

	return docparse.TypedSection(t), nil
}

// parseGeneric groups trimmed lines into paragraphs.
func parseGeneric(lines []string) (docparse.Section, error) {
	return docparse.ParagraphsSection(docparse.GroupParagraphs(trimLines(lines))), nil
}

// parseVerbatim keeps lines as they are, minus their common indentation.
func parseVerbatim(lines []string) (docparse.Section, error) {
	return docparse.VerbatimSection(dedent(lines)), nil
}

// dedent removes the indentation shared by all non-empty lines.
func dedent(lines []string) []string {
	margin := minIndent(lines)

	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = dropRunes(line, margin)
	}

	return out
}

// minIndent returns the smallest indentation among non-empty lines, or 0.
func minIndent(lines []string) int {
	margin := -1

	for _, line := range lines {
		if line == "" {
			continue
		}

		indent, _ := splitIndent(line)
		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	return max(margin, 0)
}

// fieldIndent returns the smallest indentation among lines with content,
// or 0.
func fieldIndent(lines []string) int {
	margin := -1

	for _, line := range lines {
		indent, content := splitIndent(line)
		if content == "" {
			continue
		}

		if margin < 0 || indent < margin {
			margin = indent
		}
	}

	return max(margin, 0)
}

func dropRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[i:]
		}

		n--
	}

	return ""
}

func trimLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimFunc(line, unicode.IsSpace)
	}

	return out
}
