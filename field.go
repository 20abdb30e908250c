package docparse

import (
	"iter"
	"strings"
)

// Field is one named entry of a field-list section, such as a parameter.
//
// An empty Datatype means no type was given. A nil Description means no
// description was given.
type Field struct {
	Name        string     `json:"name,omitempty"        yaml:"name,omitempty"`
	Datatype    string     `json:"type,omitempty"        yaml:"type,omitempty"`
	Description Paragraphs `json:"description,omitempty" yaml:"description,omitempty"`
}

// EscapeSplat escapes leading "*" and "**" markers so a variadic name such
// as "**kwargs" cannot be mistaken for markup: "*args" becomes `\*args` and
// "**kwargs" becomes `\*\*kwargs`.
func EscapeSplat(name string) string {
	switch {
	case strings.HasPrefix(name, "**"):
		return `\*\*` + name[2:]
	case strings.HasPrefix(name, "*"):
		return `\*` + name[1:]
	}

	return name
}

// Fields is an insertion-ordered mapping of field name to [*Field].
//
// Create instances with [NewFields].
type Fields struct {
	byName map[string]*Field
	names  []string
}

// NewFields returns an empty [Fields].
func NewFields() *Fields {
	return &Fields{byName: make(map[string]*Field)}
}

// Set stores f under f.Name. A field with the same name is replaced but
// keeps its original position.
func (fs *Fields) Set(f *Field) {
	fs.Put(f.Name, f)
}

// Put stores f under key, with the same replacement rule as [Fields.Set].
func (fs *Fields) Put(key string, f *Field) {
	if _, ok := fs.byName[key]; !ok {
		fs.names = append(fs.names, key)
	}

	fs.byName[key] = f
}

// Get returns the field with the given name.
func (fs *Fields) Get(name string) (*Field, bool) {
	if fs == nil {
		return nil, false
	}

	f, ok := fs.byName[name]

	return f, ok
}

// Has reports whether a field with the given name exists.
func (fs *Fields) Has(name string) bool {
	_, ok := fs.Get(name)

	return ok
}

// Len returns the number of fields.
func (fs *Fields) Len() int {
	if fs == nil {
		return 0
	}

	return len(fs.names)
}

// Names returns the field names in insertion order.
func (fs *Fields) Names() []string {
	if fs == nil {
		return nil
	}

	names := make([]string, len(fs.names))
	copy(names, fs.names)

	return names
}

// All iterates over the fields in insertion order.
func (fs *Fields) All() iter.Seq2[string, *Field] {
	return func(yield func(string, *Field) bool) {
		if fs == nil {
			return
		}

		for _, name := range fs.names {
			if !yield(name, fs.byName[name]) {
				return
			}
		}
	}
}

// MarshalJSON encodes the fields as a JSON object in insertion order.
func (fs *Fields) MarshalJSON() ([]byte, error) {
	return fs.ordered().MarshalJSON()
}

// MarshalYAML encodes the fields as a YAML mapping in insertion order.
func (fs *Fields) MarshalYAML() (any, error) {
	return fs.ordered().MarshalYAML()
}

func (fs *Fields) ordered() orderedMap {
	var m orderedMap
	for name, f := range fs.All() {
		m.add(name, f)
	}

	return m
}

// Typed is the value of a single-value section such as Returns or Yields.
type Typed struct {
	Datatype    string     `json:"type,omitempty"        yaml:"type,omitempty"`
	Description Paragraphs `json:"description,omitempty" yaml:"description,omitempty"`
}
