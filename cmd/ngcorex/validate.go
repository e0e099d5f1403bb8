package main

import (
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"

	"github.com/ngcorex/ngcorex"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check token files for quality issues",
	Long: `Run the validation checks (duplicates, scale order, color, spacing,
shadow and z-index formats) against the token files without building.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runValidate,
}

func init() {
	f := validateCmd.Flags()
	f.StringSlice("tokens-file", []string{defaultTokensFile}, "Token files or glob patterns")
	f.String("format", "", "Output format: text|json|markdown")
	f.String("severity", "warning", "Severity for configurable findings: info|warning|error")
	f.Bool("hide-info", false, "Hide info-level results")
	f.Bool("fail-on-error", true, "Exit non-zero when an error-level result is found")
}

func runValidate(cmd *cobra.Command, _ []string) error {
	fileTokens, _, err := loadTokenFiles(cmd)
	if err != nil {
		return err
	}
	if fileTokens == nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no token files found")
	}

	report := ngcorex.Validate(fileTokens, buildValidationConfig())
	if getBoolWithFallback("hide-info", "validation.hide-info", false) {
		report = report.WithoutInfo()
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := ngcorex.DetermineOutputFormat(getStringWithFallback("format", "validation.format", ""), quiet)
	if !quiet {
		err := ngcorex.WriteReport(cmd.OutOrStdout(), ngcorex.IssuesFromReport(report), report.Valid, format, ngcorex.ReportConfig{
			UseColors: getBoolWithFallback("color", "color", false),
			Verbose:   getBoolWithFallback("verbose", "verbose", false),
		})
		if err != nil {
			return err
		}
	}

	if !report.Valid && getBoolWithFallback("fail-on-error", "validation.fail-on-error", true) {
		return errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("validation failed")
	}
	return nil
}
