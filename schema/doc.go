// Package schema derives JSON Schemas from parsed documentation.
//
// A [docparse.Document] that documents a callable carries its parameters in
// the "parameters", "keyword_arguments" and "other_parameters" sections.
// [FromDocument] turns those into the properties of an object schema, so the
// documented signature can be used to validate call arguments supplied as
// JSON or YAML:
//
//	doc, err := google.Parse(text, true)
//	if err != nil {
//		return err
//	}
//
//	s := schema.FromDocument(doc, schema.WithTitle("connect"))
//
// # Types
//
// Type annotations are mapped by [MapType]. Common builtin names map to
// their JSON Schema counterparts ("int" to integer, "str" to string and so
// on). Containers such as "List[int]" and "Dict[str, float]" produce array
// and object schemas with mapped element types. Alternatives written as
// "X or Y", "X | Y" or "Union[X, Y]" produce a list of types.
//
// A parameter annotated "Optional[X]" or "X, optional" maps to X and is left
// out of the schema's required list. Names the mapper does not recognize
// produce an empty schema, which accepts any value.
//
// # Variadic Parameters
//
// Parameters documented as "*args" or "**kwargs" are skipped unless
// [WithSplat] is set. A documented "**kwargs" always permits additional
// properties.
package schema
