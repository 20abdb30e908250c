package log

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// DefaultLevel is the level used when no level flag is given. Parsed
// documents go to standard output, so only problems are logged by default.
const DefaultLevel = LevelWarn

// Flags holds the CLI flag names used by [Config.RegisterFlags].
type Flags struct {
	Level   string
	Format  string
	Verbose string
}

// NewConfig creates a new [Config] embedding these flag names.
func (f Flags) NewConfig() *Config {
	return &Config{
		Flags: f,
	}
}

// Config holds logging flag values. [Config.NewHandler] turns them into a
// [Handler] writing to standard error, which the CLI installs as the
// [slog] default so parser debug output follows the same flags.
type Config struct {
	Flags   Flags
	Level   string
	Format  string
	Verbose bool
}

// NewConfig returns a new [Config] with the default flag names
// "log-level", "log-format" and "verbose".
func NewConfig() *Config {
	f := Flags{
		Level:   "log-level",
		Format:  "log-format",
		Verbose: "verbose",
	}

	return f.NewConfig()
}

// RegisterFlags adds logging flags to the given [*pflag.FlagSet]. The
// verbose flag is also available as -v.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.Level, c.Flags.Level, string(DefaultLevel),
		fmt.Sprintf("log level, one of: %s", GetAllLevelStrings()))
	flags.StringVar(&c.Format, c.Flags.Format, string(FormatText),
		fmt.Sprintf("log format, one of: %s", GetAllFormatStrings()))
	flags.BoolVarP(&c.Verbose, c.Flags.Verbose, "v", false,
		"log parser decisions at debug level (overrides the log level)")
}

// RegisterCompletions registers shell completions for log flags on cmd.
func (c *Config) RegisterCompletions(cmd *cobra.Command) error {
	completions := map[string][]string{
		c.Flags.Level:  GetAllLevelStrings(),
		c.Flags.Format: GetAllFormatStrings(),
	}

	for flag, values := range completions {
		err := cmd.RegisterFlagCompletionFunc(flag,
			cobra.FixedCompletions(values, cobra.ShellCompDirectiveNoFileComp))
		if err != nil {
			return fmt.Errorf("registering %s completion: %w", flag, err)
		}
	}

	return nil
}

// EffectiveLevel returns the level name the handler will use: debug when
// Verbose is set, otherwise Level, or [DefaultLevel] when Level is empty.
func (c *Config) EffectiveLevel() string {
	switch {
	case c.Verbose:
		return string(LevelDebug)
	case c.Level == "":
		return string(DefaultLevel)
	}

	return c.Level
}

// NewHandler creates a [Handler] that writes to w at
// [Config.EffectiveLevel]. An empty Format selects [FormatText].
func (c *Config) NewHandler(w io.Writer) (Handler, error) {
	format := c.Format
	if format == "" {
		format = string(FormatText)
	}

	return NewHandlerFromStrings(w, c.EffectiveLevel(), format)
}
