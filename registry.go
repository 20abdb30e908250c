package docparse

import (
	"fmt"
	"log/slog"
	"slices"
)

// Style identifies an annotation dialect.
type Style string

// StyleGoogle is the Google docstring dialect ("Args:", "Returns:", ...).
const StyleGoogle Style = "google"

// ParseFunc parses cleaned annotation text into a [Document]. When
// directives is false, ".. name:" lines are treated as ordinary content.
type ParseFunc func(text string, directives bool) (*Document, error)

// Registry maps a [Style] to the [ParseFunc] implementing it.
//
// A Registry is populated once at startup (see google.Register) and only
// read afterwards, so it is safe for concurrent lookups.
type Registry map[Style]ParseFunc

// Add registers fn for style, replacing any previous registration.
func (r Registry) Add(style Style, fn ParseFunc) {
	r[style] = fn
}

// Lookup returns the parse function registered for style.
func (r Registry) Lookup(style Style) (ParseFunc, error) {
	fn, ok := r[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	return fn, nil
}

// Styles returns the registered styles in sorted order.
func (r Registry) Styles() []Style {
	styles := make([]Style, 0, len(r))
	for s := range r {
		styles = append(styles, s)
	}

	slices.Sort(styles)

	return styles
}

// StyleStrings returns [Registry.Styles] as strings, for flag help and
// completions.
func (r Registry) StyleStrings() []string {
	styles := r.Styles()

	out := make([]string, len(styles))
	for i, s := range styles {
		out[i] = string(s)
	}

	return out
}

// Parse runs [Clean] on text and parses the result with the parser
// registered for style. It returns [ErrNoText] if nothing is left after
// cleaning.
func (r Registry) Parse(style Style, text string, directives bool) (*Document, error) {
	fn, err := r.Lookup(style)
	if err != nil {
		return nil, err
	}

	cleaned := Clean(text)
	if cleaned == "" {
		return nil, ErrNoText
	}

	doc, err := fn(cleaned, directives)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", style, err)
	}

	slog.Debug("parsed annotation",
		slog.String("style", string(style)),
		slog.Int("sections", len(doc.sectionKeys)),
		slog.Int("directives", len(doc.directiveKeys)),
	)

	return doc, nil
}
