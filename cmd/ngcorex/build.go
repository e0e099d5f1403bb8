package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ngcorex/ngcorex"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the CSS variables stylesheet",
	Long: `Merge presets, config tokens and token files, enforce constraints and
write every token as a --nx-* custom property.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runBuild,
}

func init() {
	f := buildCmd.Flags()
	f.String("out", ngcorex.DefaultOutputFile, "Output stylesheet path")
	f.String("layer", "", "Wrap the output in @layer <name>")
	f.StringSlice("preset", nil, "Presets to merge under the tokens")
	f.StringSlice("tokens-file", []string{defaultTokensFile}, "Token files or glob patterns")
	f.Bool("dry-run", false, "Build without writing the output file")
	f.Bool("watch", false, "Rebuild when the config or token files change")
	f.Bool("validate", true, "Run validation checks on the token files first")
	f.Bool("hide-info", false, "Hide info-level validation results")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	if getBoolWithFallback("watch", "build.watch", false) {
		return runWatch(cmd)
	}
	_, err := buildOnce(cmd)
	return err
}

// buildOnce runs one complete build and returns the token files it read,
// which watch mode follows.
func buildOnce(cmd *cobra.Command) ([]string, error) {
	start := time.Now()
	ctx := commandContext(cmd)
	logger := log.Ctx(ctx)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	reportConfig := ngcorex.ReportConfig{
		UseColors: getBoolWithFallback("color", "color", false),
		Verbose:   getBoolWithFallback("verbose", "verbose", false),
	}
	stderr := ngcorex.NewReporter(cmd.ErrOrStderr(), reportConfig)
	stdout := ngcorex.NewReporter(cmd.OutOrStdout(), reportConfig)

	cfg, err := buildEngineConfig(configFilePath(cmd))
	if err != nil {
		return nil, err
	}
	assert.NotEmpty(ctx, cfg.Output.File, "output file must be resolved")

	fileTokens, paths, err := loadTokenFiles(cmd)
	if err != nil {
		return nil, err
	}

	if fileTokens != nil && getBoolWithFallback("validate", "validation.enabled", true) {
		report := ngcorex.Validate(fileTokens, buildValidationConfig())
		if getBoolWithFallback("hide-info", "validation.hide-info", false) {
			report = report.WithoutInfo()
		}
		logger.Debug().
			Int("errors", report.Summary.Error).
			Int("warnings", report.Summary.Warning).
			Int("info", report.Summary.Info).
			Msg("validated token files")
		if !quiet && report.HasResults() {
			stderr.PrintIssues(ngcorex.IssuesFromReport(report))
		}
	}

	cfg.Tokens = mergeTokens(cfg.Tokens, fileTokens)

	result, err := ngcorex.Build(ctx, cfg)
	if err != nil {
		return paths, err
	}
	for _, w := range result.Warnings {
		logger.Debug().Str("rule", w.Rule).Str("path", w.Path).Msg("constraint warning")
	}
	if !quiet && len(result.Warnings) > 0 {
		stderr.PrintIssues(ngcorex.IssuesFromWarnings(result.Warnings))
	}
	if result.CSS == "" {
		logger.Warn().Msg("no tokens resolved, output is empty")
	}

	dryRun := getBoolWithFallback("dry-run", "build.dry-run", false)
	if dryRun {
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "Dry run: skipping write to %s\n", cfg.Output.File)
		}
	} else if err := writeOutput(cfg.Output.File, result.CSS); err != nil {
		return paths, err
	}

	if !quiet {
		stdout.PrintBuildSummary(ngcorex.BuildSummary{
			Categories: result.Categories,
			OutputFile: cfg.Output.File,
			OutputSize: len(result.CSS),
			Duration:   time.Since(start),
			Warnings:   len(result.Warnings),
			DryRun:     dryRun,
		})
	}
	return paths, nil
}

// loadTokenFiles expands the configured patterns and merges every match.
func loadTokenFiles(cmd *cobra.Command) (*tokens.Map, []string, error) {
	logger := log.Ctx(commandContext(cmd))

	patterns := tokenFilePatterns()
	paths, err := ngcorex.ExpandTokenFiles(patterns)
	if err != nil {
		return nil, nil, err
	}
	if len(paths) == 0 {
		logger.Debug().Strs("patterns", patterns).Msg("no token files found")
		return nil, nil, nil
	}

	m, err := ngcorex.LoadTokenFiles(paths)
	if err != nil {
		return nil, paths, err
	}
	logger.Debug().Strs("files", paths).Msg("loaded token files")
	return m, paths, nil
}

// mergeTokens deep-merges file tokens over config tokens.
func mergeTokens(configTokens, fileTokens *tokens.Map) *tokens.Map {
	switch {
	case fileTokens == nil:
		return configTokens
	case configTokens == nil:
		return fileTokens
	default:
		return tokens.Merge(configTokens, fileTokens)
	}
}

// writeOutput writes css to path, creating parent directories.
func writeOutput(path, css string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("creating output directory %s: %s", dir, err)).
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, []byte(css), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("writing %s: %s", path, err)).
			WithCause(err)
	}
	return nil
}
