package docparse_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/docparse"
	"go.jacobcolvin.com/docparse/google"
)

func newTestConfig(t *testing.T, args ...string) *docparse.Config {
	t.Helper()

	cfg := docparse.NewConfig()
	cfg.Registry = docparse.Registry{}
	google.Register(cfg.Registry)

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))
	require.NoError(t, cmd.Flags().Parse(args))

	return cfg
}

func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig(t)

	assert.Equal(t, "google", cfg.Style)
	assert.Empty(t, cfg.Format)
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, 2, cfg.Indent)
	assert.False(t, cfg.NoDirectives)
}

func TestConfigCompletions(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		flag string
		want []string
	}{
		"style":  {flag: "style", want: []string{"google"}},
		"format": {flag: "format", want: []string{"json", "yaml"}},
		"indent": {flag: "indent", want: nil},
	}

	cfg := docparse.NewConfig()
	cfg.Registry = docparse.Registry{}
	google.Register(cfg.Registry)

	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			completionFn, ok := cmd.GetFlagCompletionFunc(tc.flag)
			require.True(t, ok)

			values, directive := completionFn(cmd, nil, "")
			assert.Equal(t, cobra.ShellCompDirectiveNoFileComp, directive)
			assert.Equal(t, tc.want, values)
		})
	}
}

func TestConfigParse(t *testing.T) {
	t.Parallel()

	text := "Summary.\n\n.. _link: https://example.com"

	doc, err := newTestConfig(t).Parse(text)
	require.NoError(t, err)
	assert.True(t, doc.HasDirective("_link"))

	doc, err = newTestConfig(t, "--no-directives").Parse(text)
	require.NoError(t, err)
	assert.False(t, doc.HasDirective("_link"))

	_, err = docparse.NewConfig().Parse(text)
	require.ErrorIs(t, err, docparse.ErrInvalidOption)
}

func TestConfigNewEncoder(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr  error
		args     []string
		want     docparse.Format
		terminal bool
	}{
		"json when piped": {
			want: docparse.FormatJSON,
		},
		"yaml on a terminal": {
			terminal: true,
			want:     docparse.FormatYAML,
		},
		"explicit format wins": {
			args:     []string{"--format", "JSON"},
			terminal: true,
			want:     docparse.FormatJSON,
		},
		"unknown format": {
			args:    []string{"-f", "toml"},
			wantErr: docparse.ErrUnknownFormat,
		},
		"negative indent": {
			args:    []string{"--indent", "-2"},
			wantErr: docparse.ErrInvalidOption,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			enc, err := newTestConfig(t, tc.args...).NewEncoder(tc.terminal)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.ErrorIs(t, err, docparse.ErrInvalidOption)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, enc.Format)
		})
	}
}

func TestEncoderMarshal(t *testing.T) {
	t.Parallel()

	doc := newTestDocument()

	tcs := map[string]struct {
		enc  docparse.Encoder
		want string
	}{
		"compact json": {
			enc:  docparse.Encoder{Format: docparse.FormatJSON},
			want: `{"summary":"Summary.",`,
		},
		"indented json": {
			enc:  docparse.Encoder{Format: docparse.FormatJSON, Indent: 4},
			want: "{\n    \"summary\": \"Summary.\",\n",
		},
		"yaml": {
			enc:  docparse.Encoder{Format: docparse.FormatYAML, Indent: 2},
			want: "summary: Summary.\nsections:\n  description:\n    - Summary.\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			out, err := tc.enc.Marshal(doc)
			require.NoError(t, err)
			assert.Contains(t, string(out), tc.want)
			assert.Equal(t, byte('\n'), out[len(out)-1])
		})
	}

	_, err := (&docparse.Encoder{Format: "toml"}).Marshal(doc)
	require.ErrorIs(t, err, docparse.ErrUnknownFormat)
}
