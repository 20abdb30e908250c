package docparse

import (
	"encoding/json"
	"fmt"
)

// Document is a parsed annotation: a set of sections keyed by canonical key
// plus a set of directives keyed by name.
//
// Documents are built by a dialect parser during a single parse call with
// [NewDocument], [Document.AddSection], and [Document.AddDirective], and are
// not modified afterwards.
type Document struct {
	sections      map[string]Section
	directives    map[string]Paragraphs
	sectionKeys   []string
	directiveKeys []string
}

// NewDocument returns an empty [Document].
func NewDocument() *Document {
	return &Document{
		sections:   make(map[string]Section),
		directives: make(map[string]Paragraphs),
	}
}

// AddSection stores s under key. A later section with the same key replaces
// the earlier one.
func (d *Document) AddSection(key string, s Section) {
	if _, ok := d.sections[key]; !ok {
		d.sectionKeys = append(d.sectionKeys, key)
	}

	d.sections[key] = s
}

// AddDirective stores p under the directive name.
func (d *Document) AddDirective(name string, p Paragraphs) {
	if _, ok := d.directives[name]; !ok {
		d.directiveKeys = append(d.directiveKeys, name)
	}

	d.directives[name] = p
}

// Section returns the section stored under the canonical key.
func (d *Document) Section(key string) (Section, bool) {
	s, ok := d.sections[key]

	return s, ok
}

// Has reports whether the document contains a section with the canonical key.
func (d *Document) Has(key string) bool {
	_, ok := d.sections[key]

	return ok
}

// SectionKeys returns the canonical keys of all sections in the order they
// were first seen.
func (d *Document) SectionKeys() []string {
	keys := make([]string, len(d.sectionKeys))
	copy(keys, d.sectionKeys)

	return keys
}

// Description returns the description paragraphs, if present.
func (d *Document) Description() (Paragraphs, bool) {
	return d.paragraphs(KeyDescription)
}

// Summary returns the first paragraph of the description. It reports false
// when there is no description or the description is empty.
func (d *Document) Summary() (string, bool) {
	desc, ok := d.Description()
	if !ok {
		return "", false
	}

	return desc.First()
}

// Parameters returns the Parameters section (also spelled Args or
// Arguments).
func (d *Document) Parameters() (*Fields, bool) {
	return d.fields(KeyParameters)
}

// KeywordArguments returns the Keyword Arguments section.
func (d *Document) KeywordArguments() (*Fields, bool) {
	return d.fields(KeyKeywordArguments)
}

// OtherParameters returns the Other Parameters section.
func (d *Document) OtherParameters() (*Fields, bool) {
	return d.fields(KeyOtherParameters)
}

// Raises returns the Raises section, keyed by exception type.
func (d *Document) Raises() (*Fields, bool) {
	return d.fields(KeyRaises)
}

// Returns returns the Returns section.
func (d *Document) Returns() (*Typed, bool) {
	return d.typed(KeyReturns)
}

// Yields returns the Yields section.
func (d *Document) Yields() (*Typed, bool) {
	return d.typed(KeyYields)
}

// Examples returns the dedented lines of the Examples section.
func (d *Document) Examples() ([]string, bool) {
	s, ok := d.sections[KeyExamples]
	if !ok {
		return nil, false
	}

	return s.Lines()
}

func (d *Document) paragraphs(key string) (Paragraphs, bool) {
	s, ok := d.sections[key]
	if !ok {
		return nil, false
	}

	return s.Paragraphs()
}

func (d *Document) fields(key string) (*Fields, bool) {
	s, ok := d.sections[key]
	if !ok {
		return nil, false
	}

	return s.Fields()
}

func (d *Document) typed(key string) (*Typed, bool) {
	s, ok := d.sections[key]
	if !ok {
		return nil, false
	}

	return s.Typed()
}

// HasDirective reports whether the document contains the named directive.
func (d *Document) HasDirective(name string) bool {
	_, ok := d.directives[name]

	return ok
}

// Directive returns the named directive. It returns [ErrDirectiveNotFound]
// if the document has no such directive.
func (d *Document) Directive(name string) (Paragraphs, error) {
	p, ok := d.directives[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrDirectiveNotFound, name)
	}

	return p, nil
}

// DirectiveNames returns the directive names in the order they were first
// seen.
func (d *Document) DirectiveNames() []string {
	names := make([]string, len(d.directiveKeys))
	copy(names, d.directiveKeys)

	return names
}

// MarshalJSON encodes the document as an object with "summary",
// "sections", and "directives" members.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.ordered())
}

// MarshalYAML encodes the document like [Document.MarshalJSON].
func (d *Document) MarshalYAML() (any, error) {
	return d.ordered().MarshalYAML()
}

func (d *Document) ordered() orderedMap {
	var sections, directives, out orderedMap

	for _, key := range d.sectionKeys {
		sections.add(key, d.sections[key])
	}

	for _, name := range d.directiveKeys {
		directives.add(name, d.directives[name])
	}

	if summary, ok := d.Summary(); ok {
		out.add("summary", summary)
	}

	out.add("sections", sections)
	out.add("directives", directives)

	return out
}
