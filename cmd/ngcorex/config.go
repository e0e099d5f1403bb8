package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ngcorex/ngcorex"
	"github.com/ngcorex/ngcorex/internal/tokens"
	"github.com/ngcorex/ngcorex/internal/validation"
)

const (
	defaultConfigFile = "ngcorex.yaml"
	defaultTokensFile = "tokens.json"
	envPrefix         = "NGCOREX_"
)

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	return applyConfig(cmd, commandContext(cmd))
}

// reloadConfig starts over from an empty koanf instance. Watch mode calls
// it before every rebuild with the context the watch started from, so the
// command context does not grow with each reload.
func reloadConfig(cmd *cobra.Command, base context.Context) error {
	k = koanf.New(".")
	return applyConfig(cmd, base)
}

// applyConfig loads file, env and flag values into k, then sets up logging
// and attaches the logger to base as the command context.
func applyConfig(cmd *cobra.Command, base context.Context) error {
	if err := loadConfigFromPath(configFilePath(cmd)); err != nil {
		return err
	}

	// Only explicitly set flags, so a flag default never hides a file value.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	setupLogging(getStringWithFallback("log-level", "log.level", "info"))
	cmd.SetContext(log.Logger.WithContext(base))
	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("loading config file %s: %s", configPath, err)).
				WithCause(err)
		}
	}

	// NGCOREX_OUTPUT_FILE -> output.file
	// NGCOREX_CONSTRAINTS_SPACING_UNIT -> constraints.spacing.unit
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

func configFilePath(cmd *cobra.Command) string {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}
	return configPath
}

// configFile is the part of the config file koanf cannot represent: the
// inline token tree, whose key order and duplicate keys matter.
type configFile struct {
	Tokens *tokens.Map `yaml:"tokens"`
}

// loadConfigTokens decodes the "tokens" section of the config file. A
// missing file or section yields nil.
func loadConfigTokens(configPath string) (*tokens.Map, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("reading config file %s: %s", configPath, err)).
			WithCause(err)
	}

	var doc configFile
	if err := yamlv3.Unmarshal(data, &doc); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid tokens in config file %s: %s", configPath, err)).
			WithCause(err)
	}
	return doc.Tokens, nil
}

// buildEngineConfig constructs the engine's Config from koanf state and the
// config file's token tree.
func buildEngineConfig(configPath string) (ngcorex.Config, error) {
	configTokens, err := loadConfigTokens(configPath)
	if err != nil {
		return ngcorex.Config{}, err
	}

	return ngcorex.Config{
		Tokens:      configTokens,
		Constraints: buildConstraintConfig(),
		Presets:     getStringsWithFallback("preset", "presets"),
		Output: ngcorex.OutputConfig{
			File:  getStringWithFallback("out", "output.file", ngcorex.DefaultOutputFile),
			Layer: getStringWithFallback("layer", "output.layer", ""),
		},
	}, nil
}

// buildConstraintConfig collects every "constraints.<rule family>" key.
func buildConstraintConfig() ngcorex.ConstraintConfig {
	const prefix = "constraints."

	cfg := ngcorex.ConstraintConfig{}
	for key, v := range k.All() {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		cfg[strings.TrimPrefix(key, prefix)] = fmt.Sprint(v)
	}
	return cfg
}

// buildValidationConfig constructs the validation engine config. Checker
// keys are matched case-insensitively since env vars arrive lowercased.
func buildValidationConfig() ngcorex.ValidationConfig {
	const prefix = "validation.checks."

	cfg := ngcorex.DefaultValidationConfig()
	keys := k.Keys()
	sort.Strings(keys)
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		name := strings.TrimPrefix(key, prefix)
		for _, c := range validation.Checkers {
			if strings.EqualFold(name, string(c)) {
				cfg.Enabled[c] = k.Bool(key)
			}
		}
	}

	cfg.Severity = validation.ParseSeverity(
		getStringWithFallback("severity", "validation.severity", ""),
		validation.SeverityWarning,
	)
	return cfg
}

// tokenFilePatterns returns the configured token file paths or globs.
func tokenFilePatterns() []string {
	if patterns := getStringsWithFallback("tokens-file", "tokens.file"); len(patterns) > 0 {
		return patterns
	}
	return []string{defaultTokensFile}
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getStringsWithFallback reads a list from the flag key, then the config
// key. A plain string is split on commas, which is how env vars carry lists.
// An empty list counts as unset.
func getStringsWithFallback(flagKey, configKey string) []string {
	for _, key := range []string{flagKey, configKey} {
		if v := k.Strings(key); len(v) > 0 {
			return v
		}
		if v, ok := k.Get(key).(string); ok && v != "" {
			return splitList(v)
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
