package ngcorex

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(verbose bool) (*Reporter, *bytes.Buffer) {
	var buf bytes.Buffer
	return &Reporter{w: &buf, verbose: verbose}, &buf
}

func TestReporter_PrintIssues(t *testing.T) {
	reporter, buf := newTestReporter(false)

	reporter.PrintIssues(sampleIssues)

	want := "\nErrors\n------\n" +
		"colors.primary.500: Invalid color format: \"notacolor\" (COLOR_FORMAT)\n" +
		"\nWarnings\n--------\n" +
		"spacing.sm: Non-monotonic progression in spacing scale: \"sm\" (0.5rem) is not greater than \"xs\" (1rem) (SCALE_CONSISTENCY)\n" +
		"\tConsider adjusting the value of \"sm\" to be greater than \"xs\" for a consistent scale.\n" +
		"\nInfo\n----\n" +
		"colors.neutral.0: Using deprecated color format: \"hex3\" (COLOR_FORMAT)\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintIssuesVerbose(t *testing.T) {
	reporter, buf := newTestReporter(true)

	reporter.PrintIssues(sampleIssues[:1])

	assert.Contains(t, buf.String(), "\t// Example:\n\t// spacing.xs: 1rem\n")
}

func TestReporter_PrintSummary(t *testing.T) {
	tests := []struct {
		name    string
		issues  []Issue
		verbose bool
		want    string
	}{
		{
			name: "no issues",
			want: "\nNo issues found\n",
		},
		{
			name:   "single severity",
			issues: sampleIssues[1:2],
			want:   "\n1 issue:\n* COLOR_FORMAT: 1\n",
		},
		{
			name:   "mixed severities with hint",
			issues: sampleIssues,
			want: "\n3 issues (1 error, 1 warning, 1 info):\n" +
				"* COLOR_FORMAT: 2\n* SCALE_CONSISTENCY: 1\n" +
				"\nHint: Run with --verbose to see examples\n",
		},
		{
			name:    "verbose drops hint",
			issues:  sampleIssues[:1],
			verbose: true,
			want:    "\n1 issue:\n* SCALE_CONSISTENCY: 1\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reporter, buf := newTestReporter(tt.verbose)
			reporter.PrintSummary(tt.issues)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestReporter_PrintBuildError(t *testing.T) {
	reporter, buf := newTestReporter(false)

	reporter.PrintBuildError(&BuildError{
		Kind:    "ConstraintViolation",
		Rule:    "spacing.format",
		Message: "Token spacing.sm has invalid value \"1vh\".",
		Fix:     "Use a numeric value with a unit.",
	})

	assert.Equal(t,
		"Constraint violation: spacing.format\n\nToken spacing.sm has invalid value \"1vh\".\n\nFix:\nUse a numeric value with a unit.\n",
		buf.String(),
	)

	buf.Reset()
	reporter.PrintBuildError(errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestReporter_PrintBuildSummary(t *testing.T) {
	reporter, buf := newTestReporter(false)

	reporter.PrintBuildSummary(BuildSummary{
		Categories: []CategoryCount{{Category: "spacing", Count: 5}, {Category: "colors", Count: 7}},
		OutputFile: "src/styles/ngcorex.css",
		OutputSize: 2048,
		Duration:   12 * time.Millisecond,
	})

	want := "\nBuild Summary\n-------------\n" +
		"\nTokens Processed:\n" +
		"  • spacing         5 tokens\n" +
		"  • colors          7 tokens\n" +
		"  ────────────────────\n" +
		"  Total          12 tokens\n" +
		"\nOutput:\n" +
		"  • File:  src/styles/ngcorex.css\n" +
		"  • Size:  2.00 KB\n" +
		"\nDuration: 12ms\n\n" +
		"Build completed successfully!\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_PrintBuildSummaryWarnings(t *testing.T) {
	reporter, buf := newTestReporter(false)

	reporter.PrintBuildSummary(BuildSummary{OutputFile: "out.css", DryRun: true, Warnings: 2})

	out := buf.String()
	assert.Contains(t, out, "  • Mode:  dry run, nothing written\n")
	assert.Contains(t, out, "  • Size:  0 B\n")
	assert.Contains(t, out, "2 warnings\n")
	assert.NotContains(t, out, "Tokens Processed")
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		bytes int
		want  string
	}{
		{bytes: 0, want: "0 B"},
		{bytes: 1023, want: "1023 B"},
		{bytes: 1536, want: "1.50 KB"},
		{bytes: 3 * 1024 * 1024, want: "3.00 MB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatSize(tt.bytes))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "999ms", FormatDuration(999*time.Millisecond))
	assert.Equal(t, "1.50s", FormatDuration(1500*time.Millisecond))
}

func TestShouldUseColors(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("FORCE_COLOR", "1")
	assert.True(t, ShouldUseColors(false))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, ShouldUseColors(false))
	assert.True(t, ShouldUseColors(true))
}

func TestIssuesFromReport(t *testing.T) {
	report := Validate(mustDecode(t, `{"spacing": {"xs": "1rem", "sm": "0.5rem"}}`), DefaultValidationConfig())

	issues := IssuesFromReport(report)

	require.Len(t, issues, 1)
	assert.Equal(t, SourceValidation, issues[0].Source)
	assert.Equal(t, "SCALE_CONSISTENCY", issues[0].Code)
	assert.Equal(t, SeverityWarning, issues[0].Severity)
	assert.Equal(t, "spacing.sm", issues[0].Path)
	assert.NotEmpty(t, issues[0].Example)
	assert.Nil(t, IssuesFromReport(nil))
}

func TestIssuesFromWarnings(t *testing.T) {
	issues := IssuesFromWarnings([]Warning{{Rule: "spacing.unit", Path: "spacing.sm", Message: "m", Fix: "f"}})

	assert.Equal(t, []Issue{{
		Source:   SourceConstraints,
		Code:     "spacing.unit",
		Severity: SeverityWarning,
		Path:     "spacing.sm",
		Message:  "m",
		Fix:      "f",
	}}, issues)
}
