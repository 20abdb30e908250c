package schema

import (
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/docparse"
)

// Option configures [FromDocument].
type Option func(*options)

type options struct {
	title    string
	splat    bool
	required bool
}

// WithTitle sets the title of the generated schema.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithSplat controls whether variadic parameters ("*args", "**kwargs") are
// included as properties. They are skipped by default.
func WithSplat(include bool) Option {
	return func(o *options) {
		o.splat = include
	}
}

// WithRequired controls whether parameters not marked optional are listed
// as required. Enabled by default.
func WithRequired(required bool) Option {
	return func(o *options) {
		o.required = required
	}
}

// parameterKeys are the field sections that contribute properties, in
// priority order.
var parameterKeys = []string{
	docparse.KeyParameters,
	docparse.KeyKeywordArguments,
	docparse.KeyOtherParameters,
}

// FromDocument builds an object schema describing the parameters documented
// in doc. When a name is documented in more than one parameter section, the
// first definition wins.
func FromDocument(doc *docparse.Document, opts ...Option) *jsonschema.Schema {
	o := &options{required: true}
	for _, opt := range opts {
		opt(o)
	}

	s := &jsonschema.Schema{
		Type:  typeObject,
		Title: o.title,
	}

	if desc, ok := doc.Description(); ok {
		s.Description = joinParagraphs(desc)
	}

	properties := make(map[string]*jsonschema.Schema)

	for _, key := range parameterKeys {
		sec, ok := doc.Section(key)
		if !ok {
			continue
		}

		fields, ok := sec.Fields()
		if !ok {
			continue
		}

		for name, field := range fields.All() {
			if strings.HasPrefix(name, `\*\*`) {
				s.AdditionalProperties = &jsonschema.Schema{}
			}

			if strings.HasPrefix(name, `\*`) {
				if !o.splat {
					continue
				}

				name = strings.ReplaceAll(name, `\*`, "*")
			}

			if _, seen := properties[name]; seen {
				continue
			}

			prop, optional := MapType(field.Datatype)
			prop.Description = joinParagraphs(field.Description)

			properties[name] = prop
			s.PropertyOrder = append(s.PropertyOrder, name)

			if o.required && !optional && !strings.HasPrefix(name, "*") {
				s.Required = append(s.Required, name)
			}
		}
	}

	if len(properties) > 0 {
		s.Properties = properties
	} else {
		s.PropertyOrder = nil
	}

	return s
}

func joinParagraphs(p docparse.Paragraphs) string {
	return strings.Join(p, "\n\n")
}
