// Package main provides the CLI entry point for docparse, a tool that parses
// structured documentation strings into JSON or YAML.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"go.jacobcolvin.com/docparse"
	"go.jacobcolvin.com/docparse/google"
	"go.jacobcolvin.com/docparse/log"
	"go.jacobcolvin.com/docparse/profile"
	"go.jacobcolvin.com/docparse/schema"
	"go.jacobcolvin.com/docparse/version"
)

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// input is one source of annotation text.
type input struct {
	path string
	text string
}

// result pairs an encoded value with its input when several inputs are
// given.
type result struct {
	Path  string `json:"path"   yaml:"path"`
	Value any    `json:"result" yaml:"result"`
}

func newRootCommand() *cobra.Command {
	logCfg := log.NewConfig()
	profCfg := profile.NewConfig()

	var profiler *profile.Profiler

	rootCmd := &cobra.Command{
		Use:   "docparse",
		Short: "Parse structured documentation strings",
		Long: `docparse parses documentation strings written in a known annotation style
(Google style by default) into sections such as parameters, returns and
raises, and prints the result as JSON or YAML.`,
		Version:       version.Get().String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			handler, err := logCfg.NewHandler(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			slog.SetDefault(slog.New(handler))

			profiler = profCfg.NewProfiler()

			return profiler.Start()
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if profiler == nil {
				return nil
			}

			return profiler.Stop()
		},
	}

	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	profCfg.RegisterFlags(rootCmd.PersistentFlags())

	for _, register := range []func(*cobra.Command) error{
		logCfg.RegisterCompletions,
		profCfg.RegisterCompletions,
	} {
		err := register(rootCmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
		}
	}

	rootCmd.AddCommand(
		newParseCommand(),
		newSchemaCommand(),
		newVersionCommand(),
	)

	return rootCmd
}

func newConfig(cmd *cobra.Command) *docparse.Config {
	cfg := docparse.NewConfig()
	cfg.Registry = docparse.Registry{}
	google.Register(cfg.Registry)

	cfg.RegisterFlags(cmd.Flags())

	err := cfg.RegisterCompletions(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	return cfg
}

func newParseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] [file ...]",
		Short: "Parse documentation strings into sections",
		Long: `Parse reads each file (or standard input when no file or "-" is given),
parses its contents as one documentation string and prints the sections.`,
	}

	cfg := newConfig(cmd)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, cfg, args, func(doc *docparse.Document, _ string) any {
			return doc
		})
	}

	return cmd
}

func newSchemaCommand() *cobra.Command {
	var (
		title string
		splat bool
	)

	cmd := &cobra.Command{
		Use:   "schema [flags] [file ...]",
		Short: "Generate a JSON Schema from documented parameters",
		Long: `Schema parses each input like the parse command and prints a JSON Schema
describing the documented parameters.`,
	}

	cfg := newConfig(cmd)

	cmd.Flags().StringVar(&title, "title", "",
		"schema title (default: input file name without extension)")
	cmd.Flags().BoolVar(&splat, "splat", false,
		"include *args and **kwargs parameters as properties")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return run(cmd, cfg, args, func(doc *docparse.Document, path string) any {
			t := title
			if t == "" && path != "-" {
				t = trimExt(filepath.Base(path))
			}

			return schema.FromDocument(doc, schema.WithTitle(t), schema.WithSplat(splat))
		})
	}

	return cmd
}

func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), version.Get())
		if err != nil {
			return fmt.Errorf("%w: %w", docparse.ErrWriteOutput, err)
		}

		return nil
	}

	return cmd
}

// run parses every input and writes the converted results. A single input
// is written as is; several are written as a list tagged with their paths.
func run(
	cmd *cobra.Command,
	cfg *docparse.Config,
	args []string,
	convert func(doc *docparse.Document, path string) any,
) error {
	inputs, err := readInputs(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	results := make([]result, 0, len(inputs))

	for _, in := range inputs {
		doc, err := cfg.Parse(in.text)
		if err != nil {
			return fmt.Errorf("%s: %w", in.path, err)
		}

		slog.Debug("parsed input",
			slog.String("path", in.path),
			slog.Any("sections", doc.SectionKeys()),
		)

		results = append(results, result{Path: in.path, Value: convert(doc, in.path)})
	}

	if len(results) == 1 {
		return write(cmd, cfg, results[0].Value)
	}

	return write(cmd, cfg, results)
}

func readInputs(stdin io.Reader, args []string) ([]input, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}

	inputs := make([]input, 0, len(args))

	for _, arg := range args {
		var (
			data []byte
			err  error
		)

		if arg == "-" {
			data, err = io.ReadAll(stdin)
			if err != nil {
				return nil, fmt.Errorf("%w: stdin: %w", docparse.ErrReadInput, err)
			}
		} else {
			data, err = os.ReadFile(arg) //nolint:gosec // Input path from CLI argument is expected.
			if err != nil {
				return nil, fmt.Errorf("%w: %w", docparse.ErrReadInput, err)
			}
		}

		inputs = append(inputs, input{path: arg, text: string(data)})
	}

	return inputs, nil
}

func write(cmd *cobra.Command, cfg *docparse.Config, v any) error {
	stdout := cmd.OutOrStdout()

	enc, err := cfg.NewEncoder(cfg.Output == "-" && isTerminal(stdout))
	if err != nil {
		return err
	}

	out, err := enc.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", docparse.ErrWriteOutput, err)
	}

	if cfg.Output == "" || cfg.Output == "-" {
		_, err = stdout.Write(out)
		if err != nil {
			return fmt.Errorf("%w: %w", docparse.ErrWriteOutput, err)
		}

		return nil
	}

	err = os.WriteFile(cfg.Output, out, 0o644) //nolint:gosec // Output file is meant to be readable.
	if err != nil {
		return fmt.Errorf("%w: %w", docparse.ErrWriteOutput, err)
	}

	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // File descriptors fit in an int.
}

func trimExt(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
