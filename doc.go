// Package docparse converts semi-structured annotation text, such as Python
// docstrings, into a typed [Document].
//
// The package holds the dialect-independent parts: the document model
// ([Paragraphs], [Field], [Fields], [Typed], [Section], [Document]), a
// [Registry] mapping a [Style] to its [ParseFunc], and [Clean] for
// normalizing raw annotation text before it is parsed. Dialects live in
// subpackages; the Google dialect is [go.jacobcolvin.com/docparse/google].
//
// Typical usage registers the dialects at startup and parses through the
// registry:
//
//	reg := make(docparse.Registry)
//	google.Register(reg)
//
//	doc, err := reg.Parse(docparse.StyleGoogle, text, true)
//	if err != nil {
//		return err
//	}
//
//	if summary, ok := doc.Summary(); ok {
//		fmt.Println(summary)
//	}
//
// Sections are looked up by canonical key (see [CanonicalKey]). A missing
// section is reported as absent rather than as an error, so optional
// sections can be probed freely:
//
//	if params, ok := doc.Parameters(); ok {
//		for name, field := range params.All() {
//			fmt.Println(name, field.Datatype)
//		}
//	}
//
// Directives (".. name:" blocks) are kept apart from sections and are
// fetched with [Document.Directive], which returns [ErrDirectiveNotFound]
// for unknown names.
package docparse
