package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ngcorex/ngcorex"
)

var rootCmd = &cobra.Command{
	Use:   "ngcorex",
	Short: "Compile design tokens into CSS custom properties",
	Long: `Design tokens in, CSS variables out.
Presets and token files are merged, checked against constraints and
emitted as --nx-* custom properties in a single :root block.`,
	// Default behavior: run build when no subcommand is given.
	// We must call loadConfig here because PreRunE of buildCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runBuild(cmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show examples under each issue")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command and exits with a code derived from the
// returned error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err == nil {
		return
	}

	printError(rootCmd, err)
	os.Exit(exitCodeForError(err))
}

func printError(cmd *cobra.Command, err error) {
	var buildErr *ngcorex.BuildError
	if errors.As(err, &buildErr) {
		reporter := ngcorex.NewReporter(cmd.ErrOrStderr(), ngcorex.ReportConfig{
			UseColors: getBoolWithFallback("color", "color", false),
		})
		reporter.PrintBuildError(buildErr)
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Error: "+errorMessage(err))
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func exitCodeForError(err error) int {
	var buildErr *ngcorex.BuildError
	if errors.As(err, &buildErr) {
		if buildErr.Kind == ngcorex.KindConstraintViolation {
			return 3
		}
		return exitCodeForCode(buildErr.Code())
	}
	return exitCodeForCode(errbuilder.CodeOf(err))
}

func exitCodeForCode(code errbuilder.ErrCode) int {
	switch code {
	case errbuilder.CodeInvalidArgument:
		return 2
	case errbuilder.CodeFailedPrecondition:
		return 3
	case errbuilder.CodeNotFound:
		return 4
	case errbuilder.CodeInternal:
		return 5
	default:
		return 1
	}
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
