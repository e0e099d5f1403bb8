package ngcorex

import (
	"fmt"
	"io"
)

// OutputFormat selects how a validation report is written.
type OutputFormat string

// Output formats
const (
	OutputText     OutputFormat = "text"
	OutputJSON     OutputFormat = "json"
	OutputMarkdown OutputFormat = "markdown"
)

// DetermineOutputFormat selects the output format from the --format flag.
// Unknown values fall back to text.
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// quiet keeps text output, which the caller suppresses
	if quiet {
		return OutputText
	}

	switch formatFlag {
	case "json":
		return OutputJSON
	case "markdown", "md":
		return OutputMarkdown
	default:
		return OutputText
	}
}

// WriteReport writes issues in the requested format. valid is the overall
// verdict of the run that produced them.
func WriteReport(w io.Writer, issues []Issue, valid bool, format OutputFormat, config ReportConfig) error {
	switch format {
	case OutputJSON:
		return WriteJSON(w, issues, valid)
	case OutputMarkdown:
		return WriteMarkdown(w, issues, valid)
	case OutputText:
		reporter := NewReporter(w, config)
		reporter.PrintIssues(issues)
		reporter.PrintSummary(issues)
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
