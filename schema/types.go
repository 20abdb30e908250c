package schema

import (
	"slices"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
)

// JSON Schema type constants.
const (
	typeBoolean = "boolean"
	typeInteger = "integer"
	typeNumber  = "number"
	typeString  = "string"
	typeArray   = "array"
	typeObject  = "object"
	typeNull    = "null"
)

const optionalSuffix = ", optional"

// scalarTypes maps bare annotation names (lowercased) to JSON Schema types.
var scalarTypes = map[string]string{
	"bool":      typeBoolean,
	"boolean":   typeBoolean,
	"int":       typeInteger,
	"integer":   typeInteger,
	"float":     typeNumber,
	"number":    typeNumber,
	"complex":   typeNumber,
	"str":       typeString,
	"string":    typeString,
	"bytes":     typeString,
	"none":      typeNull,
	"nonetype":  typeNull,
	"list":      typeArray,
	"tuple":     typeArray,
	"set":       typeArray,
	"frozenset": typeArray,
	"sequence":  typeArray,
	"iterable":  typeArray,
	"dict":      typeObject,
	"mapping":   typeObject,
}

// MapType converts a docstring type annotation into a JSON Schema. The
// second result reports whether the annotation marks the value as optional,
// either with an "Optional[X]" wrapper or a trailing ", optional".
//
// Unknown names produce an empty schema, which accepts any value.
//
//	MapType("List[int]")      // {"type": "array", "items": {"type": "integer"}}
//	MapType("str, optional")  // {"type": "string"}, true
//	MapType("int or None")    // {"type": ["integer", "null"]}
func MapType(datatype string) (*jsonschema.Schema, bool) {
	t := strings.TrimSpace(datatype)

	optional := false

	if strings.HasSuffix(strings.ToLower(t), optionalSuffix) {
		optional = true
		t = strings.TrimSpace(t[:len(t)-len(optionalSuffix)])
	}

	name, args, generic := splitGeneric(t)
	if generic && strings.EqualFold(name, "optional") && len(args) == 1 {
		optional = true
		t = args[0]
	}

	return mapType(t), optional
}

func mapType(t string) *jsonschema.Schema {
	t = strings.TrimSpace(t)
	if t == "" {
		return &jsonschema.Schema{}
	}

	if alts := splitTop(t, " or "); len(alts) > 1 {
		return union(alts)
	}

	if alts := splitTop(t, "|"); len(alts) > 1 {
		return union(alts)
	}

	name, args, generic := splitGeneric(t)
	if !generic {
		return scalar(t)
	}

	switch strings.ToLower(name) {
	case "union":
		return union(args)
	case "optional":
		if len(args) == 1 {
			return mapType(args[0])
		}

		return &jsonschema.Schema{}
	}

	s := scalar(name)

	switch s.Type {
	case typeArray:
		if len(args) > 0 && args[0] != "..." {
			s.Items = mapType(args[0])
		}
	case typeObject:
		if len(args) == 2 {
			if v := mapType(args[1]); !isEmpty(v) {
				s.AdditionalProperties = v
			}
		}
	}

	return s
}

// scalar maps a bare (non-generic) name. Dotted names are matched on their
// last component, so "typing.List" maps like "List".
func scalar(name string) *jsonschema.Schema {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	t, ok := scalarTypes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return &jsonschema.Schema{}
	}

	return &jsonschema.Schema{Type: t}
}

// union combines alternatives. Plain typed alternatives collapse into a
// type list; anything richer is kept as anyOf. An unknown alternative makes
// the whole union unconstrained.
func union(alts []string) *jsonschema.Schema {
	var (
		types   []string
		schemas []*jsonschema.Schema
		simple  = true
	)

	for _, alt := range alts {
		s := mapType(alt)
		if isEmpty(s) {
			return &jsonschema.Schema{}
		}

		schemas = append(schemas, s)

		if s.Type == "" || s.Items != nil || s.AdditionalProperties != nil {
			simple = false

			continue
		}

		if !slices.Contains(types, s.Type) {
			types = append(types, s.Type)
		}
	}

	if !simple {
		return &jsonschema.Schema{AnyOf: schemas}
	}

	if len(types) == 1 {
		return &jsonschema.Schema{Type: types[0]}
	}

	return &jsonschema.Schema{Types: types}
}

// splitGeneric splits "Name[a, b]" into its name and top-level arguments.
func splitGeneric(t string) (string, []string, bool) {
	open := strings.IndexByte(t, '[')
	if open <= 0 || !strings.HasSuffix(t, "]") {
		return "", nil, false
	}

	inner := t[open+1 : len(t)-1]
	if strings.TrimSpace(inner) == "" {
		return strings.TrimSpace(t[:open]), nil, true
	}

	return strings.TrimSpace(t[:open]), splitTop(inner, ","), true
}

// splitTop splits s on sep, ignoring separators nested inside brackets.
func splitTop(s, sep string) []string {
	var (
		parts []string
		depth int
		start int
	)

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[', '(':
			depth++
		case ']', ')':
			depth--
		default:
			if depth == 0 && strings.HasPrefix(s[i:], sep) {
				parts = append(parts, strings.TrimSpace(s[start:i]))
				start = i + len(sep)
				i += len(sep) - 1
			}
		}
	}

	return append(parts, strings.TrimSpace(s[start:]))
}

// isEmpty reports whether s places no constraint on a value.
func isEmpty(s *jsonschema.Schema) bool {
	return s.Type == "" &&
		len(s.Types) == 0 &&
		s.Items == nil &&
		s.AdditionalProperties == nil &&
		len(s.AnyOf) == 0
}
