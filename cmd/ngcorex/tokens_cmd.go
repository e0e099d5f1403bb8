package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ngcorex/ngcorex"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Print the resolved token tree",
	Long: `Print the tokens a build would use: presets, then config tokens, then
token files, merged in that order. Constraints are not applied.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runTokens,
}

func init() {
	f := tokensCmd.Flags()
	f.StringSlice("preset", nil, "Presets to merge under the tokens")
	f.StringSlice("tokens-file", []string{defaultTokensFile}, "Token files or glob patterns")
	f.String("format", "tree", "Output format: tree|json|yaml")
}

func runTokens(cmd *cobra.Command, _ []string) error {
	cfg, err := buildEngineConfig(configFilePath(cmd))
	if err != nil {
		return err
	}
	fileTokens, _, err := loadTokenFiles(cmd)
	if err != nil {
		return err
	}
	cfg.Tokens = mergeTokens(cfg.Tokens, fileTokens)

	resolved, err := ngcorex.NewBuilder(nil).ResolveTokens(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format := getStringWithFallback("format", "format", "tree"); format {
	case "json":
		data, err := json.MarshalIndent(resolved, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case "yaml":
		data, err := yaml.Marshal(resolved)
		if err != nil {
			return fmt.Errorf("encoding tokens: %w", err)
		}
		fmt.Fprint(out, string(data))
	case "tree":
		fmt.Fprint(out, tokens.Tree(resolved, "tokens").String())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}
