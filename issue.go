package ngcorex

import (
	"github.com/ngcorex/ngcorex/internal/validation"
)

// Issue is a single finding from either rule layer, flattened for output.
type Issue struct {
	Source   string `json:"source"`   // "constraints" or "validation"
	Code     string `json:"code"`     // "spacing.unit", "SCALE_CONSISTENCY"
	Severity string `json:"severity"` // "error", "warning", "info"
	Path     string `json:"path"`     // "spacing.sm"
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
	Example  string `json:"example,omitempty"`
}

// Issue sources
const (
	SourceConstraints = "constraints"
	SourceValidation  = "validation"
)

// Issue severities
const (
	SeverityError   = string(validation.SeverityError)
	SeverityWarning = string(validation.SeverityWarning)
	SeverityInfo    = string(validation.SeverityInfo)
)

// severityOrder is the order in which issue groups are printed.
var severityOrder = []string{SeverityError, SeverityWarning, SeverityInfo}

// IssuesFromWarnings converts constraint warnings into issues.
func IssuesFromWarnings(warnings []Warning) []Issue {
	issues := make([]Issue, 0, len(warnings))
	for _, w := range warnings {
		issues = append(issues, Issue{
			Source:   SourceConstraints,
			Code:     w.Rule,
			Severity: SeverityWarning,
			Path:     w.Path,
			Message:  w.Message,
			Fix:      w.Fix,
		})
	}
	return issues
}

// IssuesFromReport converts validation results into issues.
func IssuesFromReport(report *ValidationReport) []Issue {
	if report == nil {
		return nil
	}
	issues := make([]Issue, 0, len(report.Results))
	for _, r := range report.Results {
		issues = append(issues, Issue{
			Source:   SourceValidation,
			Code:     r.Code,
			Severity: string(r.Severity),
			Path:     r.Path,
			Message:  r.Message,
			Fix:      r.Suggestion,
			Example:  r.Example,
		})
	}
	return issues
}

// countSeverities tallies issues by severity.
func countSeverities(issues []Issue) (errors, warnings, infos int) {
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}
