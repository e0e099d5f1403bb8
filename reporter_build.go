package ngcorex

import (
	"fmt"
	"strings"
	"time"
)

// BuildSummary is what a finished build reports to the terminal.
type BuildSummary struct {
	Categories []CategoryCount
	OutputFile string
	OutputSize int
	Duration   time.Duration
	Warnings   int
	DryRun     bool
}

// Total returns the number of tokens across all categories.
func (s BuildSummary) Total() int {
	total := 0
	for _, c := range s.Categories {
		total += c.Count
	}
	return total
}

// PrintBuildSummary prints token counts per category, the output file and
// the build duration.
func (r *Reporter) PrintBuildSummary(s BuildSummary) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Build Summary", r.useColors))
	fmt.Fprintln(r.w, "-------------")

	if len(s.Categories) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, "Tokens Processed:")
		for _, c := range s.Categories {
			fmt.Fprintf(r.w, "  • %-12s %4d tokens\n", c.Category, c.Count)
		}
		fmt.Fprintf(r.w, "  %s\n", strings.Repeat("─", 20))
		fmt.Fprintf(r.w, "  %-12s %4d tokens\n", "Total", s.Total())
	}

	if s.OutputFile != "" {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, "Output:")
		fmt.Fprintf(r.w, "  • File:  %s\n", s.OutputFile)
		fmt.Fprintf(r.w, "  • Size:  %s\n", FormatSize(s.OutputSize))
		if s.DryRun {
			fmt.Fprintln(r.w, "  • Mode:  dry run, nothing written")
		}
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintf(r.w, "Duration: %s\n", FormatDuration(s.Duration))
	fmt.Fprintln(r.w, "")

	if s.Warnings > 0 {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, pluralizeCount(s.Warnings, "warning", "warnings"), r.useColors))
		return
	}
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Build completed successfully!", r.useColors))
}

// FormatSize renders a byte count as B, KB or MB.
func FormatSize(bytes int) string {
	switch {
	case bytes < 1024:
		return fmt.Sprintf("%d B", bytes)
	case bytes < 1024*1024:
		return fmt.Sprintf("%.2f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/(1024*1024))
	}
}

// FormatDuration renders d as whole milliseconds below one second and as
// seconds with two decimals above.
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
