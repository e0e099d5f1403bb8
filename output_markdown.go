package ngcorex

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes issues as a Markdown report suitable for pull
// request comments.
func WriteMarkdown(w io.Writer, issues []Issue, valid bool) error {
	var b strings.Builder
	errs, warnings, infos := countSeverities(issues)

	b.WriteString("# ngCorex Validation Report\n\n")
	if valid {
		b.WriteString("**Status:** passed\n\n")
	} else {
		b.WriteString("**Status:** failed\n\n")
	}
	b.WriteString("| Severity | Count |\n|---|---|\n")
	fmt.Fprintf(&b, "| Errors | %d |\n| Warnings | %d |\n| Info | %d |\n", errs, warnings, infos)

	if len(issues) == 0 {
		b.WriteString("\nNo issues found.\n")
	}

	for _, severity := range severityOrder {
		var group []Issue
		for _, issue := range issues {
			if issue.Severity == severity {
				group = append(group, issue)
			}
		}
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## %s\n\n", severityTitle(severity))
		for _, issue := range group {
			fmt.Fprintf(&b, "- **`%s`** %s (`%s`)\n", issue.Path, issue.Message, issue.Code)
			if issue.Fix != "" {
				fmt.Fprintf(&b, "  - %s\n", strings.ReplaceAll(issue.Fix, "\n", " "))
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
