package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docparse"
	"go.jacobcolvin.com/docparse/google"
	"go.jacobcolvin.com/docparse/schema"
	"go.jacobcolvin.com/docparse/stringtest"
)

func marshal(t *testing.T, s *jsonschema.Schema) string {
	t.Helper()

	b, err := json.Marshal(s)
	require.NoError(t, err)

	return string(b)
}

func TestMapType(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input    string
		want     string
		optional bool
	}{
		"empty":              {input: "", want: `true`},
		"int":                {input: "int", want: `{"type": "integer"}`},
		"float":              {input: "float", want: `{"type": "number"}`},
		"bool":               {input: "bool", want: `{"type": "boolean"}`},
		"str":                {input: "str", want: `{"type": "string"}`},
		"none":               {input: "None", want: `{"type": "null"}`},
		"unknown class":      {input: "Connection", want: `true`},
		"bare list":          {input: "list", want: `{"type": "array"}`},
		"bare dict":          {input: "dict", want: `{"type": "object"}`},
		"dotted name":        {input: "typing.List[str]", want: `{"type": "array", "items": {"type": "string"}}`},
		"generic list":       {input: "List[int]", want: `{"type": "array", "items": {"type": "integer"}}`},
		"lowercase generic":  {input: "list[float]", want: `{"type": "array", "items": {"type": "number"}}`},
		"variadic tuple":     {input: "Tuple[int, ...]", want: `{"type": "array", "items": {"type": "integer"}}`},
		"nested list":        {input: "List[List[str]]", want: `{"type": "array", "items": {"type": "array", "items": {"type": "string"}}}`},
		"dict values":        {input: "Dict[str, int]", want: `{"type": "object", "additionalProperties": {"type": "integer"}}`},
		"mapping any":        {input: "Mapping[str, Any]", want: `{"type": "object"}`},
		"or alternatives":    {input: "int or str", want: `{"type": ["integer", "string"]}`},
		"pipe alternatives":  {input: "int | None", want: `{"type": ["integer", "null"]}`},
		"union":              {input: "Union[int, float]", want: `{"type": ["integer", "number"]}`},
		"duplicate union":    {input: "int or int", want: `{"type": "integer"}`},
		"union with unknown": {input: "int or Path", want: `true`},
		"union with generic": {
			input: "str or List[str]",
			want:  `{"anyOf": [{"type": "string"}, {"type": "array", "items": {"type": "string"}}]}`,
		},
		"optional wrapper": {input: "Optional[int]", want: `{"type": "integer"}`, optional: true},
		"optional suffix":  {input: "str, optional", want: `{"type": "string"}`, optional: true},
		"optional generic": {
			input:    "List[int], optional",
			want:     `{"type": "array", "items": {"type": "integer"}}`,
			optional: true,
		},
		"surrounding space": {input: "  int  ", want: `{"type": "integer"}`},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, optional := schema.MapType(tc.input)
			assert.JSONEq(t, tc.want, marshal(t, got))
			assert.Equal(t, tc.optional, optional)
		})
	}
}

const connectDoc = `
	Open a connection.

	The connection is closed when the context ends.

	Args:
	    host (str): Host name.
	    port (int, optional): Port number.
	        Defaults to 80.
	    *args: Extra arguments.
	    **kwargs: Passed through.

	Keyword Args:
	    host (int): Shadowed by the parameter above.
	    retries (Optional[int]): Retry count.

	Other Parameters:
	    tags (List[str]): Labels.

	Returns:
	    Connection: The connection.
`

func parse(t *testing.T, text string) *docparse.Document {
	t.Helper()

	doc, err := google.Parse(stringtest.Input(text), true)
	require.NoError(t, err)

	return doc
}

func TestFromDocument(t *testing.T) {
	t.Parallel()

	doc := parse(t, connectDoc)

	tcs := map[string]struct {
		want string
		opts []schema.Option
	}{
		"defaults": {
			want: `{
				"type": "object",
				"description": "Open a connection.\n\nThe connection is closed when the context ends.",
				"properties": {
					"host": {"type": "string", "description": "Host name."},
					"port": {"type": "integer", "description": "Port number. Defaults to 80."},
					"retries": {"type": "integer", "description": "Retry count."},
					"tags": {"type": "array", "items": {"type": "string"}, "description": "Labels."}
				},
				"required": ["host", "tags"],
				"additionalProperties": true
			}`,
		},
		"title and splat": {
			opts: []schema.Option{schema.WithTitle("connect"), schema.WithSplat(true)},
			want: `{
				"type": "object",
				"title": "connect",
				"description": "Open a connection.\n\nThe connection is closed when the context ends.",
				"properties": {
					"host": {"type": "string", "description": "Host name."},
					"port": {"type": "integer", "description": "Port number. Defaults to 80."},
					"*args": {"description": "Extra arguments."},
					"**kwargs": {"description": "Passed through."},
					"retries": {"type": "integer", "description": "Retry count."},
					"tags": {"type": "array", "items": {"type": "string"}, "description": "Labels."}
				},
				"required": ["host", "tags"],
				"additionalProperties": true
			}`,
		},
		"nothing required": {
			opts: []schema.Option{schema.WithRequired(false)},
			want: `{
				"type": "object",
				"description": "Open a connection.\n\nThe connection is closed when the context ends.",
				"properties": {
					"host": {"type": "string", "description": "Host name."},
					"port": {"type": "integer", "description": "Port number. Defaults to 80."},
					"retries": {"type": "integer", "description": "Retry count."},
					"tags": {"type": "array", "items": {"type": "string"}, "description": "Labels."}
				},
				"additionalProperties": true
			}`,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.JSONEq(t, tc.want, marshal(t, schema.FromDocument(doc, tc.opts...)))
		})
	}
}

func TestFromDocumentPropertyOrder(t *testing.T) {
	t.Parallel()

	s := schema.FromDocument(parse(t, connectDoc))
	assert.Equal(t, []string{"host", "port", "retries", "tags"}, s.PropertyOrder)
}

func TestFromDocumentNoParameters(t *testing.T) {
	t.Parallel()

	s := schema.FromDocument(parse(t, "Do nothing."))
	assert.JSONEq(t, `{"type": "object", "description": "Do nothing."}`, marshal(t, s))
	assert.Nil(t, s.PropertyOrder)
}

func TestFromDocumentEmpty(t *testing.T) {
	t.Parallel()

	s := schema.FromDocument(docparse.NewDocument())
	assert.JSONEq(t, `{"type": "object"}`, marshal(t, s))
}
