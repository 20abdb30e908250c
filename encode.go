package docparse

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// Format is an output encoding.
type Format string

const (
	// FormatJSON encodes values as JSON.
	FormatJSON Format = "json"
	// FormatYAML encodes values as YAML.
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat indicates an unrecognized output format string.
var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat parses an output format string, case-insensitively.
func ParseFormat(format string) (Format, error) {
	switch f := Format(strings.ToLower(format)); f {
	case FormatJSON, FormatYAML:
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// GetAllFormatStrings returns all output format names.
func GetAllFormatStrings() []string {
	return []string{string(FormatJSON), string(FormatYAML)}
}

// Encoder writes values such as a [*Document] in a chosen [Format]. An
// Indent of zero produces compact JSON.
type Encoder struct {
	Format Format
	Indent int
}

// Marshal encodes v, terminated by a newline. Values without YAML tags or
// a YAML marshaler are encoded through their JSON representation.
func (e *Encoder) Marshal(v any) ([]byte, error) {
	switch e.Format {
	case FormatYAML:
		indent := e.Indent
		if indent < 1 {
			indent = 2
		}

		out, err := yaml.MarshalWithOptions(v,
			yaml.Indent(indent),
			yaml.IndentSequence(true),
			yaml.UseJSONMarshaler(),
		)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return out, nil

	case FormatJSON:
		var (
			out []byte
			err error
		)

		if e.Indent > 0 {
			out, err = json.MarshalIndent(v, "", strings.Repeat(" ", e.Indent))
		} else {
			out, err = json.Marshal(v)
		}

		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, e.Format)
}
