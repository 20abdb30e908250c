package docparse_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docparse"
	"go.jacobcolvin.com/docparse/stringtest"
)

func newTestDocument() *docparse.Document {
	params := docparse.NewFields()
	params.Set(&docparse.Field{
		Name:        "b",
		Datatype:    "int",
		Description: docparse.Paragraphs{"The b."},
	})
	params.Set(&docparse.Field{Name: "a"})

	doc := docparse.NewDocument()
	doc.AddSection(docparse.KeyDescription, docparse.ParagraphsSection(docparse.Paragraphs{"Summary.", "More."}))
	doc.AddSection(docparse.KeyParameters, docparse.FieldsSection(params))
	doc.AddSection(docparse.KeyReturns, docparse.TypedSection(&docparse.Typed{Datatype: "bool"}))
	doc.AddSection(docparse.KeyExamples, docparse.VerbatimSection([]string{">>> f()", "True"}))
	doc.AddDirective("_link", docparse.Paragraphs{"https://example.com"})

	return doc
}

func TestCanonicalKey(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"single word":    {input: "Returns", want: "returns"},
		"two words":      {input: "Keyword Arguments", want: "keyword_arguments"},
		"lowercase word": {input: "See also", want: "see_also"},
		"punctuation":    {input: "Q&A", want: "q_a"},
		"already key":    {input: "other_parameters", want: "other_parameters"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, docparse.CanonicalKey(tc.input))
		})
	}
}

func TestEscapeSplat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `\*args`, docparse.EscapeSplat("*args"))
	assert.Equal(t, `\*\*kwargs`, docparse.EscapeSplat("**kwargs"))
	assert.Equal(t, "name", docparse.EscapeSplat("name"))
	assert.Equal(t, "a*b", docparse.EscapeSplat("a*b"))
	assert.Empty(t, docparse.EscapeSplat(""))
}

func TestFields(t *testing.T) {
	t.Parallel()

	fs := docparse.NewFields()
	fs.Set(&docparse.Field{Name: "x", Datatype: "int"})
	fs.Set(&docparse.Field{Name: "y"})
	fs.Set(&docparse.Field{Name: "x", Datatype: "str"})
	fs.Put("KeyError", &docparse.Field{Datatype: "KeyError"})

	assert.Equal(t, 3, fs.Len())
	assert.Equal(t, []string{"x", "y", "KeyError"}, fs.Names())
	assert.True(t, fs.Has("KeyError"))
	assert.False(t, fs.Has("z"))

	x, ok := fs.Get("x")
	require.True(t, ok)
	assert.Equal(t, "str", x.Datatype)

	var names []string
	for name := range fs.All() {
		names = append(names, name)
		if name == "y" {
			break
		}
	}

	assert.Equal(t, []string{"x", "y"}, names)

	var nilFields *docparse.Fields
	assert.Equal(t, 0, nilFields.Len())
	assert.Nil(t, nilFields.Names())
	assert.False(t, nilFields.Has("x"))
}

func TestSectionAccessors(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		section docparse.Section
		kind    docparse.Kind
	}{
		"paragraphs": {section: docparse.ParagraphsSection(docparse.Paragraphs{"a"}), kind: docparse.KindParagraphs},
		"fields":     {section: docparse.FieldsSection(docparse.NewFields()), kind: docparse.KindFields},
		"typed":      {section: docparse.TypedSection(&docparse.Typed{}), kind: docparse.KindTyped},
		"verbatim":   {section: docparse.VerbatimSection([]string{"a"}), kind: docparse.KindVerbatim},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			s := tc.section
			assert.Equal(t, tc.kind, s.Kind())
			assert.Equal(t, name, s.Kind().String())

			_, ok := s.Paragraphs()
			assert.Equal(t, tc.kind == docparse.KindParagraphs, ok)

			_, ok = s.Fields()
			assert.Equal(t, tc.kind == docparse.KindFields, ok)

			_, ok = s.Typed()
			assert.Equal(t, tc.kind == docparse.KindTyped, ok)

			_, ok = s.Lines()
			assert.Equal(t, tc.kind == docparse.KindVerbatim, ok)
		})
	}
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()

	summary, ok := doc.Summary()
	require.True(t, ok)
	assert.Equal(t, "Summary.", summary)

	assert.Equal(t, []string{"description", "parameters", "returns", "examples"}, doc.SectionKeys())

	params, ok := doc.Parameters()
	require.True(t, ok)
	assert.Equal(t, []string{"b", "a"}, params.Names())

	returns, ok := doc.Returns()
	require.True(t, ok)
	assert.Equal(t, "bool", returns.Datatype)

	examples, ok := doc.Examples()
	require.True(t, ok)
	assert.Equal(t, []string{">>> f()", "True"}, examples)

	// A section stored with the wrong kind reads as absent.
	doc.AddSection(docparse.KeyYields, docparse.ParagraphsSection(nil))

	_, ok = doc.Yields()
	assert.False(t, ok)

	_, ok = doc.KeywordArguments()
	assert.False(t, ok)

	_, ok = doc.OtherParameters()
	assert.False(t, ok)

	_, ok = doc.Raises()
	assert.False(t, ok)

	_, ok = doc.Section("notes")
	assert.False(t, ok)
}

func TestDocumentDirective(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()

	assert.True(t, doc.HasDirective("_link"))
	assert.Equal(t, []string{"_link"}, doc.DirectiveNames())

	p, err := doc.Directive("_link")
	require.NoError(t, err)
	assert.Equal(t, docparse.Paragraphs{"https://example.com"}, p)

	_, err = doc.Directive("missing")
	require.Error(t, err)
	require.ErrorIs(t, err, docparse.ErrDirectiveNotFound)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestDocumentSummaryEmptyDescription(t *testing.T) {
	t.Parallel()

	doc := docparse.NewDocument()
	doc.AddSection(docparse.KeyDescription, docparse.ParagraphsSection(nil))

	_, ok := doc.Summary()
	assert.False(t, ok)
}

func TestDocumentMarshalJSON(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(newTestDocument())
	require.NoError(t, err)

	want := `{
		"summary": "Summary.",
		"sections": {
			"description": ["Summary.", "More."],
			"parameters": {
				"b": {"name": "b", "type": "int", "description": ["The b."]},
				"a": {"name": "a"}
			},
			"returns": {"type": "bool"},
			"examples": [">>> f()", "True"]
		},
		"directives": {"_link": ["https://example.com"]}
	}`
	assert.JSONEq(t, want, string(got))

	// Key order follows insertion order, not sort order.
	assert.Less(t, strings.Index(string(got), `"b":`), strings.Index(string(got), `"a":`))
}

func TestDocumentMarshalYAML(t *testing.T) {
	t.Parallel()

	got, err := yaml.Marshal(newTestDocument())
	require.NoError(t, err)

	want := stringtest.Input(`
		summary: Summary.
		sections:
		  description:
		  - Summary.
		  - More.
		  parameters:
		    b:
		      name: b
		      type: int
		      description:
		      - The b.
		    a:
		      name: a
		  returns:
		    type: bool
		  examples:
		  - '>>> f()'
		  - "True"
		directives:
		  _link:
		  - https://example.com
	`)
	assert.YAMLEq(t, want, string(got))
}

func TestEmptyDocumentMarshalJSON(t *testing.T) {
	t.Parallel()

	got, err := json.Marshal(docparse.NewDocument())
	require.NoError(t, err)
	assert.JSONEq(t, `{"sections": {}, "directives": {}}`, string(got))
}
