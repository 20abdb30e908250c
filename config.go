package docparse

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Flags holds CLI flag names for parse configuration, allowing callers to
// customize flag names while keeping sensible defaults.
type Flags struct {
	Style        string
	NoDirectives string
	Format       string
	Output       string
	Indent       string
}

// Config holds CLI flag values for parse configuration.
//
// Create instances with [NewConfig] and register CLI flags with
// [Config.RegisterFlags]. Set [Config.Registry] before calling
// [Config.Parse].
type Config struct {
	Flags        Flags
	Registry     Registry
	Style        string
	Format       string
	Output       string
	Indent       int
	NoDirectives bool
}

// NewConfig returns a new [Config] with default flag names.
func NewConfig() *Config {
	f := Flags{
		Style:        "style",
		NoDirectives: "no-directives",
		Format:       "format",
		Output:       "output",
		Indent:       "indent",
	}

	return &Config{Flags: f}
}

// RegisterFlags adds parse flags to the given [*pflag.FlagSet].
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&c.Style, c.Flags.Style, "s", string(StyleGoogle),
		fmt.Sprintf("annotation style, one of: %s", strings.Join(c.Registry.StyleStrings(), ", ")))
	flags.BoolVar(&c.NoDirectives, c.Flags.NoDirectives, false,
		"treat \".. name:\" directive lines as ordinary content")
	flags.StringVarP(&c.Format, c.Flags.Format, "f", "",
		fmt.Sprintf("output format, one of: %s (default yaml on a terminal, json otherwise)",
			strings.Join(GetAllFormatStrings(), ", ")))
	flags.StringVarP(&c.Output, c.Flags.Output, "o", "-",
		"output file path (- for stdout)")
	flags.IntVar(&c.Indent, c.Flags.Indent, 2,
		"output indentation spaces")
}

// RegisterCompletions registers shell completions for parse flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	err := cmd.RegisterFlagCompletionFunc(c.Flags.Style,
		cobra.FixedCompletions(c.Registry.StyleStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Style, err)
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Format,
		cobra.FixedCompletions(GetAllFormatStrings(), cobra.ShellCompDirectiveNoFileComp))
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Format, err)
	}

	noFileComp := func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	err = cmd.RegisterFlagCompletionFunc(c.Flags.Indent, noFileComp)
	if err != nil {
		return fmt.Errorf("registering %s completion: %w", c.Flags.Indent, err)
	}

	return nil
}

// Parse cleans and parses text with the configured style.
func (c *Config) Parse(text string) (*Document, error) {
	if c.Registry == nil {
		return nil, fmt.Errorf("%w: no styles registered", ErrInvalidOption)
	}

	return c.Registry.Parse(Style(c.Style), text, !c.NoDirectives)
}

// NewEncoder returns an [Encoder] for the configured format. An empty
// format resolves to [FormatYAML] when terminal is true and [FormatJSON]
// otherwise.
func (c *Config) NewEncoder(terminal bool) (*Encoder, error) {
	format := FormatJSON
	if terminal {
		format = FormatYAML
	}

	if c.Format != "" {
		f, err := ParseFormat(c.Format)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidOption, err)
		}

		format = f
	}

	if c.Indent < 0 {
		return nil, fmt.Errorf("%w: negative indent %d", ErrInvalidOption, c.Indent)
	}

	return &Encoder{Format: format, Indent: c.Indent}, nil
}
