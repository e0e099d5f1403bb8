// Package ngcorex turns design tokens into CSS custom properties.
//
// A build merges named presets and user tokens, enforces hard constraints,
// flattens every category into namespaced variables and renders them in a
// single ":root" block, optionally wrapped in a cascade layer.
//
// # Building
//
//	result, err := ngcorex.Build(ctx, ngcorex.Config{
//		Presets: []string{"default"},
//		Tokens:  tree,
//		Output:  ngcorex.OutputConfig{Layer: "tokens"},
//	})
//	// result.CSS:
//	// @layer tokens {
//	//   :root {
//	//     --nx-spacing-xs: 0.25rem;
//	//     ...
//
// # Validation
//
// Validate runs advisory checks (duplicates, scale order, color, spacing,
// shadow and z-index formats) without touching the tree:
//
//	report := ngcorex.Validate(tree, ngcorex.DefaultValidationConfig())
//	if !report.Valid { ... }
//
// # CLI Tool
//
//	go install github.com/ngcorex/ngcorex/cmd/ngcorex@latest
package ngcorex

import (
	"context"

	engine "github.com/ngcorex/ngcorex/internal/ngcorex"
	"github.com/ngcorex/ngcorex/internal/tokens"
	"github.com/ngcorex/ngcorex/internal/validation"
)

// Engine types re-exported for library callers.
type (
	Config           = engine.Config
	OutputConfig     = engine.OutputConfig
	ConstraintConfig = engine.ConstraintConfig
	BuildResult      = engine.BuildResult
	BuildError       = engine.BuildError
	ErrorKind        = engine.ErrorKind
	Warning          = engine.Warning
	NormalizedToken  = engine.NormalizedToken
	CategoryCount    = engine.CategoryCount
	Builder          = engine.Builder
	Preset           = engine.Preset
	PresetRegistry   = engine.PresetRegistry

	TokenMap = tokens.Map

	ValidationConfig = validation.Config
	ValidationReport = validation.Report
	ValidationResult = validation.Result
)

// Build error kinds
const (
	KindUnknownPreset          = engine.KindUnknownPreset
	KindConstraintViolation    = engine.KindConstraintViolation
	KindNormalizationTypeError = engine.KindNormalizationTypeError
)

// DefaultOutputFile is the stylesheet path used when none is configured.
const DefaultOutputFile = engine.DefaultOutputFile

// Build runs a build against the built-in presets.
func Build(ctx context.Context, cfg Config) (*BuildResult, error) {
	return engine.Build(ctx, cfg)
}

// NewBuilder returns a builder bound to registry. A nil registry selects the
// built-in presets.
func NewBuilder(registry *PresetRegistry) *Builder {
	return engine.NewBuilder(registry)
}

// DefaultPresets returns the built-in preset registry.
func DefaultPresets() *PresetRegistry {
	return engine.DefaultPresets()
}

// DecodeTokens parses a JSON or YAML token document.
func DecodeTokens(data []byte) (*TokenMap, error) {
	return tokens.Decode(data)
}

// Validate runs the advisory checks enabled in cfg.
func Validate(tree *TokenMap, cfg ValidationConfig) *ValidationReport {
	return validation.Run(tree, cfg)
}

// DefaultValidationConfig enables every checker at warning severity.
func DefaultValidationConfig() ValidationConfig {
	return validation.DefaultConfig()
}
