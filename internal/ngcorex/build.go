package ngcorex

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

// Builder runs the build pipeline against a fixed preset registry.
type Builder struct {
	presets *PresetRegistry
}

// NewBuilder creates a builder. A nil registry selects DefaultPresets.
func NewBuilder(presets *PresetRegistry) *Builder {
	if presets == nil {
		presets = DefaultPresets()
	}
	return &Builder{presets: presets}
}

// Presets returns the registry the builder resolves against.
func (b *Builder) Presets() *PresetRegistry {
	return b.presets
}

// ResolveTokens merges the configured presets and the config tokens into a
// fresh tree. The caller's tree is never modified.
func (b *Builder) ResolveTokens(cfg Config) (*tokens.Map, error) {
	return b.presets.Resolve(cfg.Presets, cfg.Tokens)
}

// Build resolves presets, enforces constraints, normalizes every category
// and renders the stylesheet. An empty resolved tree yields an empty CSS
// string and no error.
func (b *Builder) Build(ctx context.Context, cfg Config) (*BuildResult, error) {
	start := time.Now()
	logger := log.Ctx(ctx)

	resolved, err := b.ResolveTokens(cfg)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Strs("presets", cfg.Presets).
		Int("categories", resolved.Len()).
		Msg("resolved tokens")

	result := &BuildResult{}
	if resolved.Len() == 0 {
		return result, nil
	}

	result.Warnings, err = RunConstraints(ctx, resolved, cfg.Constraints)
	if err != nil {
		return nil, err
	}
	logger.Debug().Int("warnings", len(result.Warnings)).Msg("constraints passed")

	set := newTokenSet()
	add := func(category string, toks []NormalizedToken) {
		set.add(toks...)
		result.Categories = append(result.Categories, CategoryCount{Category: category, Count: len(toks)})
	}

	for _, category := range []string{CategorySpacing, CategoryColors, CategoryRadius, CategoryZIndex} {
		scale, ok, err := section(resolved, category)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var toks []NormalizedToken
		if category == CategoryColors {
			toks, err = NormalizeColors(scale)
		} else {
			toks, err = NormalizeScale(category, scale)
		}
		if err != nil {
			return nil, err
		}
		add(category, toks)
	}

	typography, ok, err := section(resolved, CategoryTypography)
	if err != nil {
		return nil, err
	}
	if ok {
		for _, group := range TypographyGroups {
			scale, ok, err := section(typography, group)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			toks, err := NormalizeScale(group, scale)
			if err != nil {
				return nil, err
			}
			add(group, toks)
		}
	}

	if shadows, ok, err := section(resolved, CategoryShadows); err != nil {
		return nil, err
	} else if ok {
		toks, err := NormalizeScale(CategoryShadows, shadows)
		if err != nil {
			return nil, err
		}
		add(CategoryShadows, toks)
	}

	result.Tokens = set.list()
	result.CSS = WrapLayer(GenerateCSS(result.Tokens), cfg.Output.Layer)

	logger.Debug().
		Int("tokens", len(result.Tokens)).
		Str("layer", cfg.Output.Layer).
		Dur("took", time.Since(start)).
		Msg("generated css")
	return result, nil
}

// section returns m[name] as a mapping. A present value of another shape is
// a normalization error.
func section(m *tokens.Map, name string) (*tokens.Map, bool, error) {
	node, ok := m.Get(name)
	if !ok {
		return nil, false, nil
	}
	sub, ok := node.Map()
	if !ok {
		return nil, false, normalizationError(name, "object", node)
	}
	return sub, true, nil
}

// Build runs a build with the built-in presets.
func Build(ctx context.Context, cfg Config) (*BuildResult, error) {
	return NewBuilder(nil).Build(ctx, cfg)
}
