// Package cssvalue holds the value grammars shared by the constraint engine
// and the validation checkers: numeric lengths, colors and box shadows.
package cssvalue

import (
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// UnitSet is an ordered allow-list of CSS units.
type UnitSet []string

// Has reports whether unit is in the set.
func (u UnitSet) Has(unit string) bool {
	return slices.Contains(u, unit)
}

// String joins the units for use in messages.
func (u UnitSet) String() string {
	return strings.Join(u, ", ")
}

// Unit sets used across the rule layers.
var (
	// ConstraintUnits is accepted by the hard spacing, radius and typography rules.
	ConstraintUnits = UnitSet{"px", "rem", "em", "%"}
	// SpacingUnits is the broader allow-list of the spacing format checker.
	SpacingUnits = UnitSet{"px", "rem", "em", "%", "vh", "vw", "vmin", "vmax", "ch", "ex", "fr"}
	// RecommendedSpacingUnits are the units the spacing checker does not flag.
	RecommendedSpacingUnits = UnitSet{"rem", "px"}
	// ScaleUnits covers every unit a scale magnitude may carry.
	ScaleUnits = UnitSet{"px", "rem", "em", "%", "vh", "vw", "vmin", "vmax", "ch", "ex", "fr", "deg", "rad", "turn", "s", "ms"}
	// ShadowUnits is accepted for shadow offsets, blur and spread.
	ShadowUnits = UnitSet{"px", "rem", "em", "%", "vh", "vw", "vmin", "vmax", "cm", "mm", "in", "pt", "pc", "ex", "ch"}
)

var (
	numberWithSuffix = regexp.MustCompile(`^(-?\d*\.?\d+)([a-zA-Z%]*)$`)
	bareNumber       = regexp.MustCompile(`^-?\d*\.?\d+$`)
	unsignedInteger  = regexp.MustCompile(`^\d+$`)
	signedInteger    = regexp.MustCompile(`^-?\d+$`)
)

// Length is a number with an optional unit.
type Length struct {
	Value float64
	Unit  string
	Raw   string
}

// Negative reports whether the literal carries a minus sign.
func (l Length) Negative() bool {
	return strings.HasPrefix(l.Raw, "-")
}

// SplitNumber separates a numeric literal from its suffix without checking
// the suffix against any allow-list.
func SplitNumber(s string) (Length, bool) {
	m := numberWithSuffix.FindStringSubmatch(s)
	if m == nil {
		return Length{}, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Length{}, false
	}
	return Length{Value: v, Unit: m[2], Raw: s}, true
}

// ParseLength parses s as a number followed by an optional unit from units.
func ParseLength(s string, units UnitSet) (Length, bool) {
	l, ok := SplitNumber(s)
	if !ok {
		return Length{}, false
	}
	if l.Unit != "" && !units.Has(l.Unit) {
		return Length{}, false
	}
	return l, true
}

// ParseUnitLength is ParseLength with a mandatory unit.
func ParseUnitLength(s string, units UnitSet) (Length, bool) {
	l, ok := ParseLength(s, units)
	if !ok || l.Unit == "" {
		return Length{}, false
	}
	return l, true
}

// IsBareNumber reports whether s is a number with no unit, such as "8" or "-0.5".
func IsBareNumber(s string) bool {
	return bareNumber.MatchString(s)
}

// IsUnsignedInteger reports whether s consists only of digits.
func IsUnsignedInteger(s string) bool {
	return unsignedInteger.MatchString(s)
}

// ParseInteger parses an optionally signed integer literal. Values outside
// the int64 range report ok with overflow set.
func ParseInteger(s string) (v int64, overflow bool, ok bool) {
	if !signedInteger.MatchString(s) {
		return 0, false, false
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, true, true
	}
	return v, false, true
}

// IsKeyword reports whether s equals one of the keywords.
func IsKeyword(s string, keywords ...string) bool {
	return slices.Contains(keywords, s)
}

// CSS-wide keywords accepted by several token categories.
var (
	GlobalKeywords  = []string{"inherit", "initial", "revert", "unset"}
	RadiusKeywords  = append([]string{"full", "none"}, GlobalKeywords...)
	ZIndexKeywords  = append([]string{"auto"}, GlobalKeywords...)
	ShadowKeywords  = append([]string{"none"}, GlobalKeywords...)
	LineHeightWords = append([]string{"normal"}, GlobalKeywords...)
	FontWeightWords = []string{"normal", "bold", "bolder", "lighter"}
)
