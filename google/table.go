package google

// sectionTable maps section names to their parsers and alternate spellings
// to section names. It is built once by [newSectionTable].
type sectionTable struct {
	parsers map[string]sectionParser
	aliases map[string]string
}

func newSectionTable() *sectionTable {
	t := &sectionTable{
		parsers: make(map[string]sectionParser),
		aliases: make(map[string]string),
	}

	t.alias("Examples", "Example")
	t.alias("Keyword Arguments", "Keyword Args")
	t.alias("Notes", "Note")
	t.alias("Parameters", "Args", "Arguments")
	t.alias("Returns", "Return")
	t.alias("Warning", "Warnings")
	t.alias("Yields", "Yield")

	t.bind(parseGeneric,
		"Attention",
		"Caution",
		"Danger",
		"Error",
		"Hint",
		"Important",
		"Notes",
		"References",
		"See also",
		"Tip",
		"Todo",
		"Warning",
	)
	t.bind(parseVerbatim, "Examples")
	t.bind(fieldsParser(fieldOptions{parseType: true}),
		"Parameters",
		"Keyword Arguments",
		"Other Parameters",
	)
	t.bind(fieldsParser(fieldOptions{}), "Methods", "Warns")
	t.bind(parseTyped, "Returns", "Yields")
	t.bind(parseRaises, "Raises")

	return t
}

func (t *sectionTable) alias(name string, aliases ...string) {
	for _, a := range aliases {
		t.aliases[a] = name
	}
}

func (t *sectionTable) bind(fn sectionParser, names ...string) {
	for _, name := range names {
		t.parsers[name] = fn
	}
}

// resolve maps header text to a known section name.
func (t *sectionTable) resolve(header string) (string, bool) {
	name := header
	if canonical, ok := t.aliases[header]; ok {
		name = canonical
	}

	_, ok := t.parsers[name]

	return name, ok
}

// parser returns the parser for a section name, falling back to the
// paragraph parser for the description and unknown names.
func (t *sectionTable) parser(name string) sectionParser {
	if fn, ok := t.parsers[name]; ok {
		return fn
	}

	return parseGeneric
}
