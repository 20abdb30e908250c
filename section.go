package docparse

import (
	"encoding/json"
	"regexp"
	"strings"
)

var nonWordRegex = regexp.MustCompile(`\W`)

// CanonicalKey returns the mapping key for a section header: lowercased,
// with every non-word character replaced by an underscore. For example,
// "Keyword Arguments" becomes "keyword_arguments".
func CanonicalKey(header string) string {
	return nonWordRegex.ReplaceAllString(strings.ToLower(header), "_")
}

// Canonical keys of the well-known sections.
const (
	KeyDescription      = "description"
	KeyParameters       = "parameters"
	KeyKeywordArguments = "keyword_arguments"
	KeyOtherParameters  = "other_parameters"
	KeyReturns          = "returns"
	KeyYields           = "yields"
	KeyRaises           = "raises"
	KeyExamples         = "examples"
)

// Kind identifies the shape of a [Section] value.
type Kind int

// Section kinds.
const (
	// KindParagraphs is free text grouped into [Paragraphs].
	KindParagraphs Kind = iota
	// KindFields is a field list, held as [*Fields].
	KindFields
	// KindTyped is a single optionally-typed value, held as [*Typed].
	KindTyped
	// KindVerbatim is a dedented block of raw lines.
	KindVerbatim
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindParagraphs:
		return "paragraphs"
	case KindFields:
		return "fields"
	case KindTyped:
		return "typed"
	case KindVerbatim:
		return "verbatim"
	}

	return "unknown"
}

// Section is the parsed value of one section. Exactly one of its variants
// is set, as reported by [Section.Kind]; use the matching accessor to read
// it.
type Section struct {
	fields     *Fields
	typed      *Typed
	paragraphs Paragraphs
	lines      []string
	kind       Kind
}

// ParagraphsSection returns a [KindParagraphs] section.
func ParagraphsSection(p Paragraphs) Section {
	return Section{kind: KindParagraphs, paragraphs: p}
}

// FieldsSection returns a [KindFields] section.
func FieldsSection(fs *Fields) Section {
	return Section{kind: KindFields, fields: fs}
}

// TypedSection returns a [KindTyped] section.
func TypedSection(t *Typed) Section {
	return Section{kind: KindTyped, typed: t}
}

// VerbatimSection returns a [KindVerbatim] section.
func VerbatimSection(lines []string) Section {
	return Section{kind: KindVerbatim, lines: lines}
}

// Kind returns the section kind.
func (s Section) Kind() Kind {
	return s.kind
}

// Paragraphs returns the value of a [KindParagraphs] section.
func (s Section) Paragraphs() (Paragraphs, bool) {
	return s.paragraphs, s.kind == KindParagraphs
}

// Fields returns the value of a [KindFields] section.
func (s Section) Fields() (*Fields, bool) {
	if s.kind != KindFields {
		return nil, false
	}

	return s.fields, true
}

// Typed returns the value of a [KindTyped] section.
func (s Section) Typed() (*Typed, bool) {
	if s.kind != KindTyped {
		return nil, false
	}

	return s.typed, true
}

// Lines returns the value of a [KindVerbatim] section.
func (s Section) Lines() ([]string, bool) {
	if s.kind != KindVerbatim {
		return nil, false
	}

	return s.lines, true
}

func (s Section) value() any {
	switch s.kind {
	case KindFields:
		if s.fields == nil {
			return NewFields()
		}

		return s.fields
	case KindTyped:
		if s.typed == nil {
			return &Typed{}
		}

		return s.typed
	case KindVerbatim:
		if s.lines == nil {
			return []string{}
		}

		return s.lines
	case KindParagraphs:
	}

	if s.paragraphs == nil {
		return []string{}
	}

	return s.paragraphs
}

// MarshalJSON encodes the section's value.
func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value())
}

// MarshalYAML encodes the section's value.
func (s Section) MarshalYAML() (any, error) {
	return s.value(), nil
}
