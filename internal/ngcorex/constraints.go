package ngcorex

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ngcorex/ngcorex/internal/cssvalue"
	"github.com/ngcorex/ngcorex/internal/tokens"
)

// RunConstraints enforces the hard constraint rules on tree, in category
// order spacing, colors, radius, zIndex, typography, shadows.
//
// Unitless spacing and radius values are healed in place by appending "px",
// so callers pass a tree they own. A rule at level error aborts with a
// *BuildError; rules at level warning are logged and returned.
func RunConstraints(ctx context.Context, tree *tokens.Map, config ConstraintConfig) ([]Warning, error) {
	r := &constraintRunner{ctx: ctx, config: config}
	checks := []func(*tokens.Map) error{
		r.checkSpacing,
		r.checkColors,
		r.checkRadius,
		r.checkZIndex,
		r.checkTypography,
		r.checkShadows,
	}
	for _, check := range checks {
		if err := check(tree); err != nil {
			return r.warnings, err
		}
	}
	return r.warnings, nil
}

type constraintRunner struct {
	ctx      context.Context
	config   ConstraintConfig
	warnings []Warning
}

// violation reports a broken rule at the given level. It returns a non-nil
// error only for LevelError.
func (r *constraintRunner) violation(level Level, rule, path, value, message, fix string) error {
	switch level {
	case LevelOff:
		return nil
	case LevelError:
		return &BuildError{
			Kind:    KindConstraintViolation,
			Rule:    rule,
			Path:    path,
			Value:   value,
			Message: message,
			Fix:     fix,
		}
	}

	log.Ctx(r.ctx).Warn().
		Str("rule", rule).
		Str("path", path).
		Msg(message)
	r.warnings = append(r.warnings, Warning{Rule: rule, Path: path, Message: message, Fix: fix})
	return nil
}

// section returns tree[name] when it is a mapping. A present value of any
// other shape is reported under "<rule>.type" and skipped.
func (r *constraintRunner) section(tree *tokens.Map, name, configKey, rule string) (*tokens.Map, bool, error) {
	node, ok := tree.Get(name)
	if !ok {
		return nil, false, nil
	}
	if m, ok := node.Map(); ok {
		return m, true, nil
	}
	err := r.violation(
		r.config.Level(configKey+".type", LevelError),
		rule+".type",
		name,
		node.Text(),
		fmt.Sprintf("Token %s must be an object, got %s.", name, node.Kind()),
		fmt.Sprintf("Change %s to an object mapping token names to values.", name),
	)
	return nil, false, err
}

// scaleRule describes the checks applied to every leaf of a flat scale.
type scaleRule struct {
	path        string // "spacing", "typography.fontSize"
	typeExample string // `"8px" or "0.5rem"`
	unitFix     string // non-empty enables unit healing; %s is the token path
	valid       func(string) bool
	formatFix   string
}

func (r *constraintRunner) checkScale(scale *tokens.Map, rule scaleRule) error {
	for _, key := range scale.Keys() {
		node, _ := scale.Get(key)
		path := rule.path + "." + key

		value, ok := node.Str()
		if !ok {
			// a type violation stops the whole category
			return r.violation(
				r.config.Level(rule.path+".type", LevelError),
				rule.path+".type",
				path,
				node.Text(),
				fmt.Sprintf("Token %s is not a string.", path),
				fmt.Sprintf("Change %s to a string value like %s.", path, rule.typeExample),
			)
		}

		if rule.unitFix != "" && cssvalue.IsBareNumber(value) {
			healed := value + "px"
			scale.SetString(key, healed)
			err := r.violation(
				r.config.Level(rule.path+".unit", LevelWarning),
				rule.path+".unit",
				path,
				value,
				fmt.Sprintf("Token %s had no unit. Defaulted to %q.", path, healed),
				fmt.Sprintf(rule.unitFix, path),
			)
			if err != nil {
				return err
			}
			continue
		}

		if rule.valid(value) {
			continue
		}

		err := r.violation(
			r.config.Level(rule.path+".format", LevelError),
			rule.path+".format",
			path,
			value,
			fmt.Sprintf("Token %s has invalid value %q.", path, value),
			rule.formatFix,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
