package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngcorex/ngcorex"
)

type testEnv struct {
	dir        string
	configPath string
	tokensPath string
	outPath    string
	cmd        *cobra.Command
	stdout     *bytes.Buffer
	stderr     *bytes.Buffer
}

// newTestEnv prepares a project directory and a command whose --config
// points into it. config and tokensJSON may be empty.
func newTestEnv(t *testing.T, config, tokensJSON string) *testEnv {
	t.Helper()
	resetKoanf()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")

	dir := t.TempDir()
	env := &testEnv{
		dir:        dir,
		configPath: filepath.Join(dir, defaultConfigFile),
		tokensPath: filepath.Join(dir, defaultTokensFile),
		outPath:    filepath.Join(dir, "styles", "ngcorex.css"),
		stdout:     &bytes.Buffer{},
		stderr:     &bytes.Buffer{},
	}
	if config != "" {
		require.NoError(t, os.WriteFile(env.configPath, []byte(config), 0644))
	}
	if tokensJSON != "" {
		require.NoError(t, os.WriteFile(env.tokensPath, []byte(tokensJSON), 0644))
	}

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("config", env.configPath, "")
	cmd.SetOut(env.stdout)
	cmd.SetErr(env.stderr)
	cmd.SetContext(context.Background())
	env.cmd = cmd

	require.NoError(t, loadConfigFromPath(env.configPath))
	require.NoError(t, k.Set("tokens-file", env.tokensPath))
	require.NoError(t, k.Set("out", env.outPath))
	return env
}

func TestBuild_WritesStylesheet(t *testing.T) {
	env := newTestEnv(t, `
output:
  layer: tokens
tokens:
  spacing:
    sm: 8px
`, `{"spacing": {"md": "1rem"}, "colors": {"primary": {"500": "#2563eb"}}}`)

	paths, err := buildOnce(env.cmd)
	require.NoError(t, err)
	assert.Equal(t, []string{env.tokensPath}, paths)

	data, err := os.ReadFile(env.outPath)
	require.NoError(t, err)

	want := "@layer tokens {\n" +
		"  :root {\n" +
		"    --nx-spacing-sm: 8px;\n" +
		"    --nx-spacing-md: 1rem;\n" +
		"    --nx-color-primary-500: #2563eb;\n" +
		"  }\n" +
		"}"
	assert.Equal(t, want, string(data))

	out := env.stdout.String()
	assert.Contains(t, out, "Build Summary")
	assert.Contains(t, out, "  • spacing         2 tokens\n")
	assert.Contains(t, out, "  • colors          1 tokens\n")
	assert.Contains(t, out, "  • File:  "+env.outPath+"\n")
	assert.Contains(t, out, "Build completed successfully!")
}

func TestBuild_FileTokensOverrideConfigTokens(t *testing.T) {
	env := newTestEnv(t, `
tokens:
  spacing:
    sm: 8px
    md: 16px
`, `{"spacing": {"md": "1rem"}}`)

	_, err := buildOnce(env.cmd)
	require.NoError(t, err)

	data, err := os.ReadFile(env.outPath)
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --nx-spacing-sm: 8px;\n  --nx-spacing-md: 1rem;\n}", string(data))
}

func TestBuild_DryRun(t *testing.T) {
	env := newTestEnv(t, "", `{"spacing": {"sm": "8px"}}`)
	require.NoError(t, k.Set("dry-run", true))

	_, err := buildOnce(env.cmd)
	require.NoError(t, err)

	_, statErr := os.Stat(env.outPath)
	assert.True(t, os.IsNotExist(statErr), "dry run must not write %s", env.outPath)

	out := env.stdout.String()
	assert.Contains(t, out, fmt.Sprintf("Dry run: skipping write to %s\n", env.outPath))
	assert.Contains(t, out, "  • Mode:  dry run, nothing written\n")
}

func TestBuild_HealingWarning(t *testing.T) {
	env := newTestEnv(t, "", `{"spacing": {"sm": "8"}}`)

	_, err := buildOnce(env.cmd)
	require.NoError(t, err)

	data, err := os.ReadFile(env.outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "--nx-spacing-sm: 8px;")

	assert.Contains(t, env.stderr.String(), "(spacing.unit)")
	assert.Contains(t, env.stdout.String(), "1 warning\n")
}

func TestBuild_Quiet(t *testing.T) {
	env := newTestEnv(t, "", `{"spacing": {"sm": "8"}}`)
	require.NoError(t, k.Set("quiet", true))

	_, err := buildOnce(env.cmd)
	require.NoError(t, err)
	assert.Empty(t, env.stdout.String())
	assert.Empty(t, env.stderr.String())
}

func TestBuild_ValidationPrintedBeforeBuild(t *testing.T) {
	env := newTestEnv(t, "", `{"spacing": {"xs": "1rem", "sm": "0.5rem"}}`)

	_, err := buildOnce(env.cmd)
	require.NoError(t, err)
	assert.Contains(t, env.stderr.String(), "(SCALE_CONSISTENCY)")

	env = newTestEnv(t, "validation:\n  enabled: false\n", `{"spacing": {"xs": "1rem", "sm": "0.5rem"}}`)
	_, err = buildOnce(env.cmd)
	require.NoError(t, err)
	assert.NotContains(t, env.stderr.String(), "SCALE_CONSISTENCY")
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name     string
		config   string
		tokens   string
		wantExit int
	}{
		{
			name:     "constraint violation",
			tokens:   `{"colors": {"primary": {"500": "notacolor"}}}`,
			wantExit: 3,
		},
		{
			name:     "unknown preset",
			config:   "presets:\n  - brand\n",
			tokens:   `{"spacing": {"sm": "8px"}}`,
			wantExit: 4,
		},
		{
			name:     "normalization type error",
			config:   "constraints:\n  spacing:\n    type: off\n",
			tokens:   `{"spacing": {"sm": 8}}`,
			wantExit: 2,
		},
		{
			name:     "malformed token file",
			tokens:   `{"spacing": `,
			wantExit: 2,
		},
		{
			name:     "token file shape",
			tokens:   `{"colors": {"primary": "#2563eb"}}`,
			wantExit: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.config, tt.tokens)

			_, err := buildOnce(env.cmd)
			require.Error(t, err)
			assert.Equal(t, tt.wantExit, exitCodeForError(err))

			_, statErr := os.Stat(env.outPath)
			assert.True(t, os.IsNotExist(statErr), "failed build must not write output")
		})
	}
}

func TestBuild_NoTokenFile(t *testing.T) {
	env := newTestEnv(t, "tokens:\n  radius:\n    sm: 2px\n", "")

	paths, err := buildOnce(env.cmd)
	require.NoError(t, err)
	assert.Empty(t, paths)

	data, err := os.ReadFile(env.outPath)
	require.NoError(t, err)
	assert.Equal(t, ":root {\n  --nx-radius-sm: 2px;\n}", string(data))
}

func TestWriteOutput_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.css")

	require.NoError(t, writeOutput(path, ":root {\n}"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":root {\n}", string(data))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "constraint violation",
			err:  &ngcorex.BuildError{Kind: ngcorex.KindConstraintViolation, Rule: "color.format"},
			want: 3,
		},
		{
			name: "unknown preset",
			err:  &ngcorex.BuildError{Kind: ngcorex.KindUnknownPreset},
			want: 4,
		},
		{
			name: "normalization type error",
			err:  &ngcorex.BuildError{Kind: ngcorex.KindNormalizationTypeError, Path: "spacing.sm"},
			want: 2,
		},
		{
			name: "wrapped build error",
			err:  fmt.Errorf("build: %w", &ngcorex.BuildError{Kind: ngcorex.KindConstraintViolation}),
			want: 3,
		},
		{
			name: "invalid argument",
			err:  errbuilder.New().WithCode(errbuilder.CodeInvalidArgument).WithMsg("bad"),
			want: 2,
		},
		{
			name: "failed validation",
			err:  errbuilder.New().WithCode(errbuilder.CodeFailedPrecondition).WithMsg("validation failed"),
			want: 3,
		},
		{
			name: "not found",
			err:  errbuilder.New().WithCode(errbuilder.CodeNotFound).WithMsg("missing"),
			want: 4,
		},
		{
			name: "internal",
			err:  errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("disk"),
			want: 5,
		},
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCodeForError(tt.err))
		})
	}
}

func TestPrintError(t *testing.T) {
	resetKoanf()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("GITHUB_ACTIONS", "")
	var buf bytes.Buffer
	cmd := &cobra.Command{Use: "test"}
	cmd.SetErr(&buf)

	printError(cmd, errbuilder.New().WithCode(errbuilder.CodeInternal).WithMsg("writing out.css: disk full"))
	assert.Equal(t, "Error: writing out.css: disk full\n", buf.String())

	buf.Reset()
	printError(cmd, &ngcorex.BuildError{
		Kind:    ngcorex.KindConstraintViolation,
		Rule:    "color.format",
		Message: "Token colors.primary.500 has invalid value \"notacolor\".",
		Fix:     "Use a hex color.",
	})
	assert.Contains(t, buf.String(), "Constraint violation: color.format\n")
	assert.Contains(t, buf.String(), "Fix:\nUse a hex color.\n")
}
