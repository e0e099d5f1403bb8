// Package validation runs non-blocking quality checks over a token tree.
//
// Checks never modify the tree and never abort a build. Each checker emits
// Results; Run aggregates them into a Report whose Valid flag is false only
// when an error-severity result was produced.
package validation

import (
	"github.com/ngcorex/ngcorex/internal/tokens"
)

// Severity of a validation result.
type Severity string

// Severities
const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// ParseSeverity returns the severity named by s, or def when s is unknown.
func ParseSeverity(s string, def Severity) Severity {
	switch Severity(s) {
	case SeverityInfo, SeverityWarning, SeverityError:
		return Severity(s)
	default:
		return def
	}
}

// Result codes
const (
	CodeDuplicateToken   = "DUPLICATE_TOKEN"
	CodeScaleConsistency = "SCALE_CONSISTENCY"
	CodeColorFormat      = "COLOR_FORMAT"
	CodeSpacingFormat    = "SPACING_FORMAT"
	CodeShadowFormat     = "SHADOW_FORMAT"
	CodeZIndexLogic      = "ZINDEX_LOGIC"
)

// Result is a single finding.
type Result struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Path       string   `json:"path"` // "spacing.xs", "colors.primary"
	Suggestion string   `json:"suggestion,omitempty"`
	Example    string   `json:"example,omitempty"`
}

// Summary counts results by severity.
type Summary struct {
	Info    int `json:"info"`
	Warning int `json:"warning"`
	Error   int `json:"error"`
}

// Report is the outcome of a validation run.
type Report struct {
	Valid   bool     `json:"valid"`
	Results []Result `json:"results"`
	Summary Summary  `json:"summary"`
}

// HasResults reports whether any result was produced.
func (r *Report) HasResults() bool { return len(r.Results) > 0 }

// HasErrors reports whether any error result was produced.
func (r *Report) HasErrors() bool { return r.Summary.Error > 0 }

// HasWarnings reports whether any warning result was produced.
func (r *Report) HasWarnings() bool { return r.Summary.Warning > 0 }

// BySeverity returns the results of one severity in report order.
func (r *Report) BySeverity(s Severity) []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Severity == s {
			out = append(out, res)
		}
	}
	return out
}

// Checker names a validation pass.
type Checker string

// Checkers in execution order.
const (
	CheckDuplicateTokens  Checker = "duplicateTokens"
	CheckScaleConsistency Checker = "scaleConsistency"
	CheckColorFormat      Checker = "colorFormat"
	CheckSpacingFormat    Checker = "spacingFormat"
	CheckShadowFormat     Checker = "shadowFormat"
	CheckZIndexLogic      Checker = "zIndexLogic"
)

// Checkers lists every checker in execution order.
var Checkers = []Checker{
	CheckDuplicateTokens,
	CheckScaleConsistency,
	CheckColorFormat,
	CheckSpacingFormat,
	CheckShadowFormat,
	CheckZIndexLogic,
}

// Config selects checkers and the severity used for configurable findings.
type Config struct {
	Enabled  map[Checker]bool
	Severity Severity
}

// DefaultConfig enables every checker at warning severity.
func DefaultConfig() Config {
	enabled := make(map[Checker]bool, len(Checkers))
	for _, c := range Checkers {
		enabled[c] = true
	}
	return Config{Enabled: enabled, Severity: SeverityWarning}
}

type checkFunc func(tree *tokens.Map, severity Severity) []Result

var checkFuncs = map[Checker]checkFunc{
	CheckDuplicateTokens:  checkDuplicates,
	CheckScaleConsistency: checkScales,
	CheckColorFormat:      checkColors,
	CheckSpacingFormat:    checkSpacing,
	CheckShadowFormat:     checkShadows,
	CheckZIndexLogic:      checkZIndex,
}

// Run executes every enabled checker against tree.
func Run(tree *tokens.Map, cfg Config) *Report {
	severity := ParseSeverity(string(cfg.Severity), SeverityWarning)

	var results []Result
	for _, c := range Checkers {
		if !cfg.Enabled[c] {
			continue
		}
		results = append(results, checkFuncs[c](tree, severity)...)
	}
	return newReport(results)
}

// RunWithoutInfo is Run with info results removed. Valid still reflects
// the full run.
func RunWithoutInfo(tree *tokens.Map, cfg Config) *Report {
	return Run(tree, cfg).WithoutInfo()
}

// WithoutInfo returns a copy of the report without info results.
func (r *Report) WithoutInfo() *Report {
	filtered := make([]Result, 0, len(r.Results))
	for _, res := range r.Results {
		if res.Severity != SeverityInfo {
			filtered = append(filtered, res)
		}
	}
	out := newReport(filtered)
	out.Valid = r.Valid
	return out
}

func newReport(results []Result) *Report {
	if results == nil {
		results = []Result{}
	}
	var s Summary
	for _, res := range results {
		switch res.Severity {
		case SeverityInfo:
			s.Info++
		case SeverityWarning:
			s.Warning++
		case SeverityError:
			s.Error++
		}
	}
	return &Report{Valid: s.Error == 0, Results: results, Summary: s}
}

// scale returns tree[name] when it is a mapping.
func scale(tree *tokens.Map, name string) (*tokens.Map, bool) {
	return tree.GetMap(name)
}

// typographyScale returns tree.typography[group] when both are mappings.
func typographyScale(tree *tokens.Map, group string) (*tokens.Map, bool) {
	typography, ok := tree.GetMap("typography")
	if !ok {
		return nil, false
	}
	return typography.GetMap(group)
}

// scalarText returns the literal of a string or number leaf.
func scalarText(n *tokens.Node) (string, bool) {
	switch n.Kind() {
	case tokens.KindString, tokens.KindNumber:
		return n.Text(), true
	default:
		return "", false
	}
}
