// Package ngcorex is the design-token engine: preset resolution, hard
// constraints, normalization and CSS custom-property generation.
package ngcorex

import (
	"strings"

	"github.com/ngcorex/ngcorex/internal/tokens"
)

// Level is the enforcement level of a constraint rule family.
type Level string

// Constraint levels
const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelOff     Level = "off"
)

// ResolveConstraintLevel returns the level named by user, or def when user
// is empty or not a known level.
func ResolveConstraintLevel(user string, def Level) Level {
	switch Level(user) {
	case LevelOff, LevelWarning, LevelError:
		return Level(user)
	default:
		return def
	}
}

// ConstraintConfig maps a dotted rule family key ("spacing.unit",
// "colors.shadeKey", "typography.fontSize.format") to a level name.
// Keys are matched case-insensitively.
type ConstraintConfig map[string]string

// Level resolves the configured level for key, falling back to def.
func (c ConstraintConfig) Level(key string, def Level) Level {
	if v, ok := c[key]; ok {
		return ResolveConstraintLevel(v, def)
	}
	for k, v := range c {
		if strings.EqualFold(k, key) {
			return ResolveConstraintLevel(v, def)
		}
	}
	return def
}

// OutputConfig controls where and how the stylesheet is emitted.
type OutputConfig struct {
	File  string // "src/styles/ngcorex.css"
	Layer string // cascade layer name; empty means no wrapping
}

// DefaultOutputFile is used when OutputConfig.File is empty.
const DefaultOutputFile = "src/styles/ngcorex.css"

// Config is the resolved build configuration.
type Config struct {
	Tokens      *tokens.Map
	Constraints ConstraintConfig
	Presets     []string
	Output      OutputConfig
}

// NormalizedToken is a single flat CSS custom property.
type NormalizedToken struct {
	Name        string `json:"name"`        // "spacing-sm", "color-primary-500"
	CSSVariable string `json:"cssVariable"` // "--nx-spacing-sm"
	Value       string `json:"value"`
}

// Warning is a constraint violation reported at warning level.
type Warning struct {
	Rule    string `json:"rule"`
	Path    string `json:"path"`
	Message string `json:"message"`
	Fix     string `json:"fix"`
}

// String renders the warning in the same layout as a constraint error.
func (w Warning) String() string {
	return "ngCorex Warning: " + w.Rule + "\n\n" + w.Message + "\n\nFix:\n" + w.Fix
}

// CategoryCount is the number of tokens emitted for one category.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// BuildResult contains the generated stylesheet and build stats.
type BuildResult struct {
	CSS        string
	Tokens     []NormalizedToken
	Categories []CategoryCount
	Warnings   []Warning
}

// TokenCount returns the total number of emitted tokens.
func (r *BuildResult) TokenCount() int {
	return len(r.Tokens)
}

// Token categories in emission order. Typography groups are categories of
// their own once normalized.
const (
	CategorySpacing    = "spacing"
	CategoryColors     = "colors"
	CategoryRadius     = "radius"
	CategoryZIndex     = "zIndex"
	CategoryTypography = "typography"
	CategoryFontSize   = "fontSize"
	CategoryFontWeight = "fontWeight"
	CategoryLineHeight = "lineHeight"
	CategoryShadows    = "shadows"
)

// TypographyGroups lists the typography sub-scales in emission order.
var TypographyGroups = []string{CategoryFontSize, CategoryFontWeight, CategoryLineHeight}

// TopLevelCategories lists the token file sections the engine understands.
var TopLevelCategories = []string{
	CategorySpacing,
	CategoryColors,
	CategoryRadius,
	CategoryZIndex,
	CategoryTypography,
	CategoryShadows,
}
