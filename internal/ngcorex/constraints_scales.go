package ngcorex

import (
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

func (r *constraintRunner) checkSpacing(tree *tokens.Map) error {
	scale, ok, err := r.section(tree, CategorySpacing, CategorySpacing, CategorySpacing)
	if !ok {
		return err
	}
	return r.checkScale(scale, scaleRule{
		path:        CategorySpacing,
		typeExample: `"8px" or "0.5rem"`,
		unitFix:     `Explicitly add a unit (e.g. "px", "rem") to %s.`,
		valid: func(v string) bool {
			_, ok := cssvalue.ParseUnitLength(v, cssvalue.ConstraintUnits)
			return ok
		},
		formatFix: "Use a numeric value with a unit.",
	})
}

func (r *constraintRunner) checkRadius(tree *tokens.Map) error {
	scale, ok, err := r.section(tree, CategoryRadius, CategoryRadius, CategoryRadius)
	if !ok {
		return err
	}
	return r.checkScale(scale, scaleRule{
		path:        CategoryRadius,
		typeExample: `"4px" or "0.5rem"`,
		unitFix:     `Explicitly add a unit (e.g. "px", "rem", "em", "%%") to %s.`,
		valid: func(v string) bool {
			return isNonNegativeUnitLength(v) || cssvalue.IsKeyword(v, cssvalue.RadiusKeywords...)
		},
		formatFix: `Use a numeric value with a unit (px, rem, em, %) or the "full" keyword.`,
	})
}

func (r *constraintRunner) checkZIndex(tree *tokens.Map) error {
	scale, ok, err := r.section(tree, CategoryZIndex, CategoryZIndex, CategoryZIndex)
	if !ok {
		return err
	}
	return r.checkScale(scale, scaleRule{
		path:        CategoryZIndex,
		typeExample: `"1000" or "auto"`,
		valid: func(v string) bool {
			return cssvalue.IsUnsignedInteger(v) || cssvalue.IsKeyword(v, cssvalue.ZIndexKeywords...)
		},
		formatFix: `Use a positive integer string (e.g., "1000", "2000") or the "auto" keyword.`,
	})
}

var numericWeight = regexp.MustCompile(`^[1-9]00$`)

func (r *constraintRunner) checkTypography(tree *tokens.Map) error {
	typography, ok, err := r.section(tree, CategoryTypography, CategoryTypography, CategoryTypography)
	if !ok {
		return err
	}

	rules := map[string]scaleRule{
		CategoryFontSize: {
			typeExample: `"16px" or "1rem"`,
			valid:       isNonNegativeUnitLength,
			formatFix:   "Use a numeric value with a unit (px, rem, em, %).",
		},
		CategoryFontWeight: {
			typeExample: `"400" or "bold"`,
			valid: func(v string) bool {
				return numericWeight.MatchString(v) || cssvalue.IsKeyword(v, cssvalue.FontWeightWords...)
			},
			formatFix: "Use a numeric weight (100-900) or a named weight (normal, bold, etc.).",
		},
		CategoryLineHeight: {
			typeExample: `"1.5" or "24px"`,
			valid: func(v string) bool {
				if cssvalue.IsKeyword(v, cssvalue.LineHeightWords...) {
					return true
				}
				l, ok := cssvalue.ParseLength(v, cssvalue.ConstraintUnits)
				return ok && !l.Negative()
			},
			formatFix: "Use a unitless number, or a value with a unit (px, rem, em, %).",
		},
	}

	for _, group := range TypographyGroups {
		path := CategoryTypography + "." + group
		node, present := typography.Get(group)
		if !present {
			continue
		}
		scale, isMap := node.Map()
		if !isMap {
			log.Ctx(r.ctx).Debug().Str("path", path).Msg("skipping non-object typography group")
			continue
		}
		rule := rules[group]
		rule.path = path
		if err := r.checkScale(scale, rule); err != nil {
			return err
		}
	}
	return nil
}

func (r *constraintRunner) checkShadows(tree *tokens.Map) error {
	scale, ok, err := r.section(tree, CategoryShadows, CategoryShadows, CategoryShadows)
	if !ok {
		return err
	}
	return r.checkScale(scale, scaleRule{
		path:        CategoryShadows,
		typeExample: `"0 1px 3px 0 rgba(0,0,0,0.1)"`,
		valid: func(v string) bool {
			_, err := cssvalue.ParseShadowList(v)
			return err == nil
		},
		formatFix: `Use a valid box-shadow syntax: "offset-x offset-y blur-radius spread-radius color".`,
	})
}

func isNonNegativeUnitLength(v string) bool {
	l, ok := cssvalue.ParseUnitLength(v, cssvalue.ConstraintUnits)
	return ok && !l.Negative()
}
