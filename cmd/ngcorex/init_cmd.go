package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter tokens.json and ngcorex.yaml",
	Long: `Create tokens.json and ngcorex.yaml in the current directory.
Existing files are left untouched unless --force is given.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")
		return runInit(cmd.OutOrStdout(), ".", force)
	},
}

const defaultTokens = `{
  "spacing": {
    "1": "0.25rem",
    "2": "0.5rem"
  },
  "colors": {
    "gray": {
      "100": "#f3f4f6",
      "900": "#111827"
    }
  }
}
`

const defaultConfig = `# ngcorex configuration

# Presets merged underneath your tokens
presets: []

# Token files, plain paths or glob patterns
tokens-file: tokens.json

output:
  file: src/styles/ngcorex.css
  # layer: tokens

# Constraint levels: error | warning | off
constraints:
  spacing:
    unit: warning

validation:
  enabled: true
  severity: warning        # info | warning | error
  hide-info: false
  fail-on-error: true
`

type starterFile struct {
	name    string
	content string
}

func runInit(out io.Writer, dir string, force bool) error {
	created := false
	for _, f := range []starterFile{
		{name: defaultTokensFile, content: defaultTokens},
		{name: defaultConfigFile, content: defaultConfig},
	} {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err == nil && !force {
			fmt.Fprintf(out, "%s already exists (skipped)\n", f.name)
			continue
		}
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("writing %s: %s", f.name, err)).
				WithCause(err)
		}
		fmt.Fprintf(out, "Created %s\n", f.name)
		created = true
	}

	if created {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, "Next steps:")
		fmt.Fprintln(out, "- Run `ngcorex build` to generate CSS")
		fmt.Fprintln(out, "- Edit tokens.json to customize your design tokens")
	}
	return nil
}

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing files")
}
