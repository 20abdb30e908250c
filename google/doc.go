// Package google parses Google-style docstrings into a
// [docparse.Document].
//
// # Sections
//
// A section starts at a header line consisting of a word-and-space run
// followed by a colon, with nothing else on the line:
//
//	Args:
//	    x (int): The first value.
//
// Header text is resolved through a fixed alias table ("Args" and
// "Arguments" mean "Parameters", "Return" means "Returns", and so on) and
// is only accepted if the resolved name is a known section. Anything else
// that happens to end with a colon stays ordinary content. Text before the
// first header belongs to the "description" section.
//
// Each section kind has its own parser:
//
//   - Parameters, Keyword Arguments, Other Parameters: field lists with
//     inline types ("name (type): description").
//   - Methods, Warns: field lists without type extraction.
//   - Raises: field lists whose header is the exception type; role markup
//     such as :exc:`ValueError` is resolved to the bare name.
//   - Returns, Yields: a single optionally-typed value ("type: description").
//   - Examples: verbatim lines with common indentation removed.
//   - Everything else (Attention, Caution, Danger, Error, Hint, Important,
//     Notes, References, See also, Tip, Todo, Warning) and the description:
//     paragraphs.
//
// # Field Lists
//
// Field boundaries are decided by indentation alone: a line indented no
// deeper than the current field's header starts a new field, any deeper line
// continues the current one. Colons inside cross-reference markup
// (:role:`target`) and double colons never split a header from its
// description.
//
// # Directives
//
// When enabled, a line of the form ".. name:" opens a directive block. Text
// after the colon on the same line, and following lines up to the next
// header, become the directive's paragraphs:
//
//	.. _PEP 484: https://www.python.org/dev/peps/pep-0484/
package google
