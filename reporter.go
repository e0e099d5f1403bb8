package ngcorex

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReportConfig controls human-readable output.
type ReportConfig struct {
	UseColors bool // force colors even without a terminal
	Verbose   bool // print examples under each issue
}

// Reporter prints issues, summaries and build errors for humans.
type Reporter struct {
	w         io.Writer
	useColors bool
	verbose   bool
}

// NewReporter creates a reporter writing to w.
func NewReporter(w io.Writer, config ReportConfig) *Reporter {
	return &Reporter{
		w:         w,
		useColors: ShouldUseColors(config.UseColors),
		verbose:   config.Verbose,
	}
}

// ShouldUseColors decides whether to emit ANSI styles.
func ShouldUseColors(force bool) bool {
	if force {
		return true
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions renders colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode()&os.ModeCharDevice != 0
}

// PrintIssues prints issues grouped by severity, errors first.
func (r *Reporter) PrintIssues(issues []Issue) {
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

		title := severityTitle(severity)
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(severityStyle(severity), title, r.useColors))
		fmt.Fprintln(r.w, strings.Repeat("-", len(title)))
		for _, issue := range group {
			r.printIssue(issue)
		}
	}
}

func severityTitle(severity string) string {
	switch severity {
	case SeverityError:
		return "Errors"
	case SeverityWarning:
		return "Warnings"
	default:
		return "Info"
	}
}

// printIssue prints "path: message (code)" followed by the indented fix.
func (r *Reporter) printIssue(issue Issue) {
	location := issue.Path + ":"
	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		issue.Message,
		RenderStyle(StyleGray, " ("+issue.Code+")", r.useColors))

	for _, line := range splitLines(issue.Fix) {
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleGray, line, r.useColors))
	}
	if r.verbose {
		for _, line := range splitLines(issue.Example) {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}
	}
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// PrintSummary prints issue counts by severity and by code.
func (r *Reporter) PrintSummary(issues []Issue) {
	fmt.Fprintln(r.w, "")
	if len(issues) == 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "No issues found", r.useColors))
		return
	}

	errs, warnings, infos := countSeverities(issues)
	var parts []string
	if errs > 0 {
		parts = append(parts, pluralizeCount(errs, "error", "errors"))
	}
	if warnings > 0 {
		parts = append(parts, pluralizeCount(warnings, "warning", "warnings"))
	}
	if infos > 0 {
		parts = append(parts, pluralizeCount(infos, "info", "info"))
	}

	if len(parts) > 1 {
		fmt.Fprintf(r.w, "%s (%s):\n", pluralizeCount(len(issues), "issue", "issues"), strings.Join(parts, ", "))
	} else {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(len(issues), "issue", "issues"))
	}

	codeCounts := make(map[string]int)
	hasExamples := false
	for _, issue := range issues {
		codeCounts[issue.Code]++
		hasExamples = hasExamples || issue.Example != ""
	}
	codes := make([]string, 0, len(codeCounts))
	for code := range codeCounts {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		fmt.Fprintf(r.w, "* %s: %d\n", code, codeCounts[code])
	}

	if hasExamples && !r.verbose {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --verbose to see examples", r.useColors))
	}
}

// PrintBuildError prints err. A *BuildError is rendered with its title and
// fix hint; anything else as a single line.
func (r *Reporter) PrintBuildError(err error) {
	var buildErr *BuildError
	if !errors.As(err, &buildErr) {
		fmt.Fprintln(r.w, RenderStyle(StyleRed, "Error: ", r.useColors)+err.Error())
		return
	}

	fmt.Fprintln(r.w, RenderStyle(StyleRed, buildErr.Title(), r.useColors))
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, buildErr.Message)
	if buildErr.Fix != "" {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Fix:", r.useColors))
		fmt.Fprintln(r.w, buildErr.Fix)
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
